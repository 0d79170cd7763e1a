// Package config loads the settings of the meshgen command from defaults, an
// optional config file, MESHGEN_* environment variables and command line
// flags, in increasing order of precedence.
package config

import (
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "MESHGEN"

// Config holds everything the command needs besides its input.
type Config struct {
	// Format of the domain document: yaml (also accepts JSON), wkt, or points
	InputFormat string `mapstructure:"input_format" validate:"required,oneof=yaml wkt points"`
	// Format of the mesh document
	OutputFormat string `mapstructure:"output_format" validate:"required,oneof=json yaml wkt"`
	// Fit the domain into Rect before meshing
	Normalize      bool       `mapstructure:"normalize"`
	Rect           RectConfig `mapstructure:"rect"`
	BoundaryMarker int        `mapstructure:"boundary_marker"`
	// Trailing tag of every element in the mesh document
	ElementTag int    `mapstructure:"element_tag"`
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Color      bool   `mapstructure:"color"`
}

// RectConfig is the normalization target. X and Y give the lower left corner.
type RectConfig struct {
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
	Width  float64 `mapstructure:"width" validate:"gt=0"`
	Height float64 `mapstructure:"height" validate:"gt=0"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("input_format", "yaml")
	v.SetDefault("output_format", "json")
	v.SetDefault("normalize", false)
	v.SetDefault("rect.x", 0.0)
	v.SetDefault("rect.y", 0.0)
	v.SetDefault("rect.width", 1.0)
	v.SetDefault("rect.height", 1.0)
	v.SetDefault("boundary_marker", 1)
	v.SetDefault("element_tag", 0)
	v.SetDefault("log_level", "warn")
	v.SetDefault("color", true)
}

// Load reads the configuration out of v. Flags should already be bound to v,
// and if a config file was set with SetConfigFile it is read here.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", v.ConfigFileUsed())
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Level converts LogLevel for slog. The value was validated by Load, so
// anything unknown falls back to warn.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
