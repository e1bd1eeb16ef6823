package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkg-linkcheck/internal/app"
	"pkg-linkcheck/internal/types"
)

func newStrategyCommand(global *globalOptions, strategy types.Strategy, short string) *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   string(strategy) + " [packages...]",
		Short: short,
		Example: "  pkg-linkcheck " + string(strategy) + " foo,bar\n" +
			"  pkg-linkcheck -c " + string(strategy) + " --all-packages -i libfoo.so.1",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd, strategy, global, opts, args)
		},
	}
	cmd.Flags().BoolVarP(&opts.AllPackages, "all-packages", "a", false, "Check all installed packages marked as local")
	cmd.Flags().StringSliceVarP(&opts.IgnoreLibs, "ignore-libs", "i", nil, "Libraries to ignore (eg lib1,lib2)")
	cmd.Flags().StringArrayVar(&opts.IgnorePatterns, "ignore-pattern", nil, "Regular expression of libraries to ignore (repeatable)")

	_ = viper.BindPFlag("all_packages", cmd.Flags().Lookup("all-packages"))
	_ = viper.BindPFlag("ignore_libs", cmd.Flags().Lookup("ignore-libs"))
	_ = viper.BindPFlag("ignore_patterns", cmd.Flags().Lookup("ignore-pattern"))
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, strategy types.Strategy, global *globalOptions, opts checkOptions, args []string) error {
	ctx = log.Logger.WithContext(ctx)
	settings, err := buildSettings(ctx, cmd, strategy, global, opts, args)
	if err != nil {
		return err
	}
	service, err := newAppService(settings)
	if err != nil {
		return err
	}
	result, err := service.Check(ctx, app.NewCheckRequest(settings))
	if err != nil {
		return err
	}
	if err := service.WriteReport(cmd.OutOrStdout(), result, settings.Grouping); err != nil {
		return err
	}
	if result.HasIssues() {
		return types.IssuesFoundError(result.IssuesCount())
	}
	return nil
}

var newAppService = app.NewService
