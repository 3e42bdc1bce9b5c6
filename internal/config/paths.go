package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirName    = ".hheat"
	configFile = "conf.toml"
	tokenFile  = "token"
)

// GetConfigDir returns ~/.hheat.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, dirName), nil
}

// GetConfigPath returns the full path to the settings file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// TokenPath returns the full path to the session token cache.
func TokenPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, tokenFile), nil
}
