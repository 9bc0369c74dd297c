package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/phpshell/protoreg/domain/errors"
	"github.com/phpshell/protoreg/log"
	"github.com/phpshell/protoreg/registry"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. PROTOHELP_LOG_LEVEL.
const EnvPrefix = "PROTOHELP"

// Config is the resolved CLI configuration.
type Config struct {
	// Overlays are table files layered over the embedded table, in order.
	Overlays  []string
	Policy    registry.DuplicatePolicy
	LogLevel  slog.Level
	LogFormat log.Format
}

// newViper returns a viper instance with defaults and env binding applied.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("overlays", []string{})
	v.SetDefault("policy", registry.Reject.String())
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", string(log.FormatText))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the optional config file and resolves every key.
func loadConfig(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, &errors.ConfigError{Field: "config", Err: fmt.Errorf("reading %s: %w", file, err)}
		}
	}

	policy, err := registry.ParseDuplicatePolicy(v.GetString("policy"))
	if err != nil {
		return nil, &errors.ConfigError{Field: "policy", Err: err}
	}
	level, err := log.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, &errors.ConfigError{Field: "log.level", Err: err}
	}
	format, err := log.ParseFormat(v.GetString("log.format"))
	if err != nil {
		return nil, &errors.ConfigError{Field: "log.format", Err: err}
	}

	return &Config{
		Overlays:  v.GetStringSlice("overlays"),
		Policy:    policy,
		LogLevel:  level,
		LogFormat: format,
	}, nil
}
