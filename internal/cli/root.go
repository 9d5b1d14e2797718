package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"anonapi/internal/app"
	"anonapi/internal/core"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "ANONAPI"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
	WorkDir    string
	Settings   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "anonapi",
		Short:   "Prepare and submit anonymization jobs",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.WorkDir, "dir", "", "Working directory (defaults to the current directory)")
	cmd.PersistentFlags().StringVar(&cfg.Settings, "settings", "", "Settings file path")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("dir", cmd.PersistentFlags().Lookup("dir"))
	_ = viper.BindPFlag("settings", cmd.PersistentFlags().Lookup("settings"))

	cmd.AddCommand(newMapCommand())
	cmd.AddCommand(newSelectCommand())
	cmd.AddCommand(newCreateCommand())
	cmd.AddCommand(newBatchCommand())
	cmd.AddCommand(newServerCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
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

	viper.SetConfigName("anonapi")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/anonapi")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
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

// newAppService builds a service for the resolved working directory.
func newAppService(cmd *cobra.Command) (app.Service, error) {
	dir := viper.GetString("dir")
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return app.Service{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("cannot determine working directory").
				WithCause(err)
		}
		dir = cwd
	}
	return app.NewService(dir, viper.GetString("settings")), nil
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	message := errorMessage(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 3
	case errbuilder.CodeInternal:
		if strings.HasPrefix(message, core.MsgJobCreation) {
			return 4
		}
		return 5
	case errbuilder.CodeNotFound:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
