package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/RyanBlaney/sonido-escala/algorithms/tonal"
	"github.com/RyanBlaney/sonido-escala/logging"
	"github.com/RyanBlaney/sonido-escala/render"
	"github.com/RyanBlaney/sonido-escala/theory"
)

// Config holds the runtime settings of the escala CLI.
// Values are populated from .escala.yaml, ESCALA_* env vars, and CLI flags.
type Config struct {
	Scale      string `mapstructure:"scale"`
	Index      int    `mapstructure:"index"`
	BaseOctave int    `mapstructure:"base_octave"`
	Notes      int    `mapstructure:"notes"`
	Format     string `mapstructure:"format"`
	LogLevel   string `mapstructure:"log_level"`
	StateFile  string `mapstructure:"state_file"`
	Profile    string `mapstructure:"profile"`
	NoColor    bool   `mapstructure:"no_color"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("scale", theory.DefaultScale().Name)
	v.SetDefault("index", 0)
	v.SetDefault("base_octave", theory.DefaultBaseOctave)
	v.SetDefault("notes", theory.SequenceLength)
	v.SetDefault("format", render.FormatText)
	v.SetDefault("log_level", "info")
	v.SetDefault("state_file", "")
	v.SetDefault("profile", "krumhansl")
	v.SetDefault("no_color", false)
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no command could use.
func (c Config) Validate() error {
	if c.Notes < 1 || c.Notes > theory.SequenceLength {
		return fmt.Errorf("notes must be between 1 and %d, got %d", theory.SequenceLength, c.Notes)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := render.New(c.Format); err != nil {
		return err
	}
	if _, err := tonal.ParseKeyProfile(c.Profile); err != nil {
		return err
	}
	return nil
}

// ResolveOptions converts the settings into engine options.
func (c Config) ResolveOptions() []theory.Option {
	return []theory.Option{
		theory.WithBaseOctave(c.BaseOctave),
		theory.WithNoteCount(c.Notes),
	}
}

// Level is the parsed log level; Validate guarantees it parses.
func (c Config) Level() logging.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}
