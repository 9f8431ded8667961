package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/s0up4200/wynnapi/wapi"
)

// EnvPrefix prefixes environment overrides, e.g. WYNNAPI_API_MAX_RETRIES
const EnvPrefix = "WYNNAPI"

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
	validOutputs = []string{"table", "json", "yaml"}
)

// Load reads the configuration. An explicit path must exist; without one
// the standard locations are searched and defaults are used when none of
// them holds a config file.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "wynnapi"))
		}
		v.AddConfigPath("/etc/wynnapi/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file is present
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, _ := decode(v)
	return cfg
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Client defaults mirror the library's
	v.SetDefault("api.base_url", wapi.DefaultBaseURL)
	v.SetDefault("api.user_agent", wapi.DefaultUserAgent)
	v.SetDefault("api.connect_timeout", wapi.DefaultConnectTimeout.String())
	v.SetDefault("api.request_timeout", wapi.DefaultRequestTimeout.String())
	v.SetDefault("api.max_retries", wapi.DefaultMaxRetries)
	v.SetDefault("api.retry_delay", wapi.DefaultRetryDelay.String())
	v.SetDefault("api.max_concurrent", 0)
	v.SetDefault("api.max_connections", wapi.DefaultMaxConnections)
	v.SetDefault("api.idle_conn_timeout", wapi.DefaultIdleConnTimeout.String())

	v.SetDefault("output.format", "table")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("update.repository", "s0up4200/wynnapi")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if cfg.API.MaxRetries < 0 || cfg.API.MaxRetries > wapi.MaxRetryAttemptsCeiling {
		return fmt.Errorf("api.max_retries must be between 0 and %d", wapi.MaxRetryAttemptsCeiling)
	}
	if cfg.API.MaxConnections < 1 {
		return fmt.Errorf("api.max_connections must be at least 1")
	}
	for key, d := range map[string]time.Duration{
		"api.connect_timeout": cfg.API.ConnectTimeout,
		"api.request_timeout": cfg.API.RequestTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}

	if !slices.Contains(validLevels, cfg.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}
	if !slices.Contains(validFormats, cfg.Logging.Format) {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}
	if err := ValidateOutput(cfg.Output.Format); err != nil {
		return err
	}

	return nil
}

// ValidateOutput checks an output format name
func ValidateOutput(format string) error {
	if !slices.Contains(validOutputs, format) {
		return fmt.Errorf("invalid output format: %s (must be one of %s)", format, strings.Join(validOutputs, ", "))
	}
	return nil
}

// ClientOptions translates the API section into client options
func (c APIConfig) ClientOptions() []wapi.Option {
	return []wapi.Option{
		wapi.WithBaseURL(c.BaseURL),
		wapi.WithUserAgent(c.UserAgent),
		wapi.WithConnectTimeout(c.ConnectTimeout),
		wapi.WithRequestTimeout(c.RequestTimeout),
		wapi.WithMaxRetries(c.MaxRetries),
		wapi.WithRetryDelay(c.RetryDelay),
		wapi.WithMaxConcurrent(c.MaxConcurrent),
		wapi.WithMaxConnections(c.MaxConnections),
		wapi.WithIdleConnTimeout(c.IdleConnTimeout),
	}
}
