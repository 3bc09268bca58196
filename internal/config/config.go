// Package config loads the intake CLI configuration.
//
// Values are resolved in this order, later sources winning: built-in
// defaults, the YAML config file, a .env file in the working directory,
// INTAKE_* environment variables and finally command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. INTAKE_RENDERER.
const EnvPrefix = "INTAKE"

// DefaultFileName is the config file looked up in the working directory
// when no explicit path is given. The extension is implied.
const DefaultFileName = "intake"

// Config is the CLI configuration.
type Config struct {
	// Renderer selects the interactive front end.
	Renderer string `mapstructure:"renderer" yaml:"renderer" validate:"oneof=tui prompt"`
	// Output selects how receipts and reports are printed.
	Output string `mapstructure:"output" yaml:"output" validate:"oneof=text json yaml"`
	// Log configures the stderr logger.
	Log LogConfig `mapstructure:"log" yaml:"log"`
	// MetricsFile, when set, receives a prometheus textfile dump on exit.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=console json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Renderer: "tui",
		Output:   "text",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"renderer":     "renderer",
	"output":       "output",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"metrics-file": "metrics_file",
}

// Load resolves the configuration. path may be empty, in which case an
// optional intake.yaml in the working directory is used. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	def := Default()
	v.SetDefault("renderer", def.Renderer)
	v.SetDefault("output", def.Output)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("metrics_file", "")

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultFileName)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Renderer = strings.ToLower(strings.TrimSpace(c.Renderer))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", fieldKey(fe), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// fieldKey turns a validator namespace such as Config.Log.Level into the
// config key log.level.
func fieldKey(fe validator.FieldError) string {
	ns := strings.TrimPrefix(fe.StructNamespace(), "Config.")
	switch ns {
	case "MetricsFile":
		return "metrics_file"
	}
	return strings.ToLower(ns)
}
