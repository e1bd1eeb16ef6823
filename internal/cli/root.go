package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkg-linkcheck/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "PKG_LINKCHECK"

const (
	exitGeneric         = 1
	exitInvalidArgument = 2
	exitMissingTool     = 3
	exitToolFailure     = 4
	exitIssuesFound     = 10
)

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	root := newRootCommand()
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		code := exitCodeForError(err)
		if code != exitIssuesFound {
			fmt.Fprintf(os.Stderr, "error: %s\n", errorMessage(err))
		}
		os.Exit(code)
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:   "pkg-linkcheck",
		Short: "Find installed packages whose binaries have unresolved shared libraries",
		Long: `pkg-linkcheck lists the files owned by installed packages, inspects every
ELF object with ldd or readelf and reports the shared libraries the dynamic
loader cannot resolve.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"), resolveBool(cmd, opts.Quiet, "quiet", "quiet"))
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(err.Error()).
			WithCause(err)
	})
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	opts.register(cmd)

	cmd.AddCommand(newStrategyCommand(opts, types.StrategyLdd, "Checks packages using ldd"))
	cmd.AddCommand(newStrategyCommand(opts, types.StrategyReadelf, "Checks packages using readelf"))
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("pkg-linkcheck")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/pkg-linkcheck")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

// setupLogging sends diagnostics to stderr so stdout carries only the report.
func setupLogging(level string, quiet bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
		return
	}
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return exitInvalidArgument
	case errbuilder.CodeNotFound:
		return exitMissingTool
	case errbuilder.CodeInternal:
		return exitToolFailure
	case errbuilder.CodeFailedPrecondition:
		return exitIssuesFound
	default:
		return exitGeneric
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
