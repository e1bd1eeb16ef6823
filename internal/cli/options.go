package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkg-linkcheck/internal/types"
)

// globalOptions are the persistent flags shared by both strategies.
type globalOptions struct {
	ShowCandidates      bool
	OutputJSON          bool
	Output              string
	Quiet               bool
	GroupByFile         bool
	GroupByLibrary      bool
	GroupByContainingPk bool
	Backend             string
	Jobs                int
	ToolTimeout         time.Duration
}

func (o *globalOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&o.ShowCandidates, "show-candidates", "c", false, "Print packages that may contain each missing library (requires pkgfile or apt-file)")
	flags.BoolVarP(&o.OutputJSON, "output-json", "j", false, "Shorthand for --output json")
	flags.StringVar(&o.Output, "output", string(types.OutputFormatConsole), "Report format (console, json, yaml)")
	flags.BoolVarP(&o.Quiet, "quiet", "q", false, "Hide all log messages")
	flags.BoolVar(&o.GroupByFile, "group-by-file", false, "Group output by files missing libraries")
	flags.BoolVar(&o.GroupByLibrary, "group-by-library", false, "Group output by libraries required in files")
	flags.BoolVar(&o.GroupByContainingPk, "group-by-containing-package", false, "Group output by packages containing libraries")
	flags.StringVar(&o.Backend, "backend", string(types.BackendPacman), "Package database backend (pacman, dpkg)")
	flags.IntVar(&o.Jobs, "jobs", 0, "Maximum concurrent subprocesses (0 = number of CPUs)")
	flags.DurationVar(&o.ToolTimeout, "tool-timeout", 0, "Per-subprocess timeout (0 = none)")

	_ = viper.BindPFlag("show_candidates", flags.Lookup("show-candidates"))
	_ = viper.BindPFlag("output_json", flags.Lookup("output-json"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("group_by_file", flags.Lookup("group-by-file"))
	_ = viper.BindPFlag("group_by_library", flags.Lookup("group-by-library"))
	_ = viper.BindPFlag("group_by_containing_package", flags.Lookup("group-by-containing-package"))
	_ = viper.BindPFlag("backend", flags.Lookup("backend"))
	_ = viper.BindPFlag("jobs", flags.Lookup("jobs"))
	_ = viper.BindPFlag("tool_timeout", flags.Lookup("tool-timeout"))
}

// checkOptions are the flags of a strategy subcommand.
type checkOptions struct {
	AllPackages    bool
	IgnoreLibs     []string
	IgnorePatterns []string
}

// buildSettings merges flags, environment and config file into one
// immutable settings value. Explicit flags win.
func buildSettings(ctx context.Context, cmd *cobra.Command, strategy types.Strategy, global *globalOptions, opts checkOptions, args []string) (types.Settings, error) {
	assert.NotEmpty(ctx, string(strategy), "strategy must be set")

	settings := types.Settings{
		Strategy:        strategy,
		Backend:         types.Backend(resolveString(cmd, global.Backend, "backend", "backend")),
		Packages:        splitPackages(args),
		AllPackages:     resolveBool(cmd, opts.AllPackages, "all_packages", "all-packages"),
		IgnoreLibraries: resolveStrings(cmd, opts.IgnoreLibs, "ignore_libs", "ignore-libs"),
		IgnorePatterns:  resolveStrings(cmd, opts.IgnorePatterns, "ignore_patterns", "ignore-pattern"),
		ShowCandidates:  resolveBool(cmd, global.ShowCandidates, "show_candidates", "show-candidates"),
		Output:          types.OutputFormat(resolveString(cmd, global.Output, "output", "output")),
		Quiet:           resolveBool(cmd, global.Quiet, "quiet", "quiet"),
		Parallelism:     resolveInt(cmd, global.Jobs, "jobs", "jobs"),
		ToolTimeout:     resolveDuration(cmd, global.ToolTimeout, "tool_timeout", "tool-timeout"),
	}
	if resolveBool(cmd, global.OutputJSON, "output_json", "output-json") {
		settings.Output = types.OutputFormatJSON
	}
	settings.Grouping = types.ResolveGrouping(types.Grouping{
		ByFile:              resolveBool(cmd, global.GroupByFile, "group_by_file", "group-by-file"),
		ByLibrary:           resolveBool(cmd, global.GroupByLibrary, "group_by_library", "group-by-library"),
		ByContainingPackage: resolveBool(cmd, global.GroupByContainingPk, "group_by_containing_package", "group-by-containing-package"),
	}, settings.ShowCandidates)

	if len(settings.Packages) > 0 && settings.AllPackages {
		return types.Settings{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package names and --all-packages are mutually exclusive")
	}
	if len(settings.Packages) == 0 && !settings.AllPackages {
		return types.Settings{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no packages to check: pass package names or --all-packages")
	}
	if settings.Parallelism < 0 {
		return types.Settings{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("--jobs must not be negative, got %d", settings.Parallelism))
	}
	if settings.ToolTimeout < 0 {
		return types.Settings{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("--tool-timeout must not be negative, got %s", settings.ToolTimeout))
	}
	return settings, nil
}

// splitPackages accepts names as separate arguments or comma-delimited.
func splitPackages(args []string) []string {
	var packages []string
	for _, arg := range args {
		for _, name := range strings.Split(arg, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				packages = append(packages, name)
			}
		}
	}
	return packages
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func resolveDuration(cmd *cobra.Command, value time.Duration, key string, flagName string) time.Duration {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetDuration(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
