package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/sonido-escala/config"
	"github.com/RyanBlaney/sonido-escala/explorer"
	"github.com/RyanBlaney/sonido-escala/logging"
	"github.com/RyanBlaney/sonido-escala/render"
	"github.com/RyanBlaney/sonido-escala/theory"
)

var rootCmd = &cobra.Command{
	Use:   "escala",
	Short: "Spell musical scales and their key signatures",
	Long: "escala resolves a scale type and a transposition index into a key signature " +
		"and the correctly spelled notes of two octaves of the scale.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// settings is filled by loadSettings before any subcommand runs.
var settings config.Config

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .escala.yaml)")
	flags.String("format", render.FormatText, "output format: text, json or toml")
	flags.Int("notes", theory.SequenceLength, "number of notes to print")
	flags.Int("base-octave", theory.DefaultBaseOctave, "octave of the first note")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("state-file", "", "file holding the persisted index=N&scale=NAME state")
	flags.Bool("no-color", false, "disable colored log output")

	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("notes", flags.Lookup("notes"))
	_ = viper.BindPFlag("base_octave", flags.Lookup("base-octave"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("state_file", flags.Lookup("state-file"))
	_ = viper.BindPFlag("no_color", flags.Lookup("no-color"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".escala")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ESCALA")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	settings = cfg
	logging.SetGlobalLogger(newLogger(cfg))
	return nil
}

func newLogger(cfg config.Config) *logging.DefaultLogger {
	logger := logging.NewDefaultLogger()
	if cfg.NoColor {
		logger = logging.NewDefaultLoggerNoColor()
	}
	logger.SetLevel(cfg.Level())
	return logger
}

// commandLogger is the global logger tagged with the running command.
func commandLogger(cmd *cobra.Command) logging.Logger {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.ContextWithFields(ctx, logging.Fields{"command": cmd.Name()})
	return logging.WithContext(ctx)
}

// initialState picks the state a command starts from: the state file if
// one is configured, then the config/flag values.
func initialState() (explorer.State, error) {
	if settings.StateFile != "" {
		return explorer.LoadStateFile(settings.StateFile)
	}
	state := explorer.State{ScaleID: settings.Scale, Index: settings.Index}
	if _, err := theory.LookupScale(state.ScaleID); err != nil {
		logging.Warn("unknown scale in config, using default", logging.Fields{"scale": state.ScaleID})
		state.ScaleID = theory.DefaultScale().Name
	}
	return state, nil
}

// checkResolveErr turns a transition-table gap into a fatal log. Other
// errors are returned to cobra.
func checkResolveErr(err error, state explorer.State) error {
	if errors.Is(err, theory.ErrUndefinedTransition) {
		logging.Fatal(err, "transition table is incomplete", logging.Fields{"scale": state.ScaleID, "index": state.Index})
	}
	return err
}
