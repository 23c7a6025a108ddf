package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/csheth/mailcat/internal/classify"
)

const envPrefix = "MAILCAT"

// Config holds every runtime option of the mailcat client.
type Config struct {
	Endpoint    string        `mapstructure:"endpoint" validate:"required,url"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	LogFile     string        `mapstructure:"log_file"`
	LogLevel    string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	EmailFile   string        `mapstructure:"file"`
	NoAltScreen bool          `mapstructure:"no_alt_screen"`
}

// Flags registers the command-line flags Load understands.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, toml or json)")
	fs.String("endpoint", classify.DefaultEndpoint, "classification endpoint URL")
	fs.Duration("timeout", 30*time.Second, "timeout for a single prediction request")
	fs.String("log-file", "mailcat.log", "diagnostic log path; empty disables logging")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("file", "", "preload the email text from a file")
	fs.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	return fs
}

// Load resolves configuration from defaults, an optional .env file, MAILCAT_*
// environment variables, an optional config file, and finally the flags in
// fs, which must already be parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("endpoint", classify.DefaultEndpoint)
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("log_file", "mailcat.log")
	v.SetDefault("log_level", "info")
	v.SetDefault("file", "")
	v.SetDefault("no_alt_screen", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		bindings := map[string]string{
			"endpoint":      "endpoint",
			"timeout":       "timeout",
			"log_file":      "log-file",
			"log_level":     "log-level",
			"file":          "file",
			"no_alt_screen": "no-alt-screen",
		}
		for key, flag := range bindings {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
		if path, err := fs.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags on cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			parts := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				parts = append(parts, fmt.Sprintf("%s failed %q", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(parts, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
