package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hheat/hheat/internal/hive"
	"github.com/hheat/hheat/internal/logging"
)

var (
	// ErrConfigMissing means the settings file does not exist.
	ErrConfigMissing = errors.New("config file not found")

	// ErrConfigMalformed means the settings file could not be parsed or lacks a required key.
	ErrConfigMalformed = errors.New("config file is malformed")
)

// EndpointEnvVar overrides the API endpoint from the config file.
const EndpointEnvVar = "HHEAT_ENDPOINT"

// Config holds the user settings.
type Config struct {
	Username string
	Password string
	Endpoint string
}

// Credentials returns the login credentials.
func (c *Config) Credentials() hive.Credentials {
	return hive.Credentials{Username: c.Username, Password: c.Password}
}

// Load reads ~/.hheat/conf.toml.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFile(path)
}

// LoadFile reads settings from a TOML file at path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault("endpoint", hive.DefaultBaseURL)
	if err := v.BindEnv("endpoint", EndpointEnvVar); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", EndpointEnvVar, err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %s", ErrConfigMissing, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigMalformed, path, err)
	}

	cfg := &Config{
		Username: strings.TrimSpace(v.GetString("username")),
		Password: v.GetString("password"),
		Endpoint: strings.TrimSpace(v.GetString("endpoint")),
	}

	var missing []string
	if cfg.Username == "" {
		missing = append(missing, "username")
	}
	if cfg.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s: missing %s", ErrConfigMalformed, path, strings.Join(missing, ", "))
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = hive.DefaultBaseURL
	}

	logging.Debug("Loaded config",
		zap.String("path", path),
		zap.String("username", cfg.Username),
		zap.String("endpoint", cfg.Endpoint),
	)
	return cfg, nil
}
