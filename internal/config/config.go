// Package config loads and validates the guestprep TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/virtbuild/guestprep/internal/log"
	"github.com/virtbuild/guestprep/internal/utils"
)

func dirOf(path string) string {
	return filepath.Dir(path)
}

// LoadConfig reads and parses the TOML configuration at configPath.
// Relative paths inside the file are resolved against the config directory.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Errorf("Configuration file not found: %s", configFile)
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile
	config.applyDefaults()

	log.Debugf("Configuration file path: %s", configFile)
	if config.General != nil {
		log.Debugf("Data directory: %s", config.General.DataDir)
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.General != nil {
		if c.General.DataDir != "" {
			c.General.DataDir = utils.GetAbsolutePath(c.General.DataDir, c.GetConfigDir())
		}
		if c.General.ListenAddr == "" {
			c.General.ListenAddr = "0.0.0.0:8000"
		}
	}

	if c.SSH == nil {
		c.SSH = &SSHConfig{}
	}
	if c.SSH.User == "" {
		c.SSH.User = "root"
	}
	if c.SSH.ConnectTimeout == 0 {
		c.SSH.ConnectTimeout = 10
	}
	if c.SSH.PrivateKey != "" {
		c.SSH.PrivateKey = utils.GetAbsolutePath(c.SSH.PrivateKey, c.GetConfigDir())
	}

	if c.Fetch == nil {
		c.Fetch = &FetchConfig{}
	}
	if c.Fetch.MediaDir == "" && c.General != nil {
		c.Fetch.MediaDir = filepath.Join(c.General.DataDir, "media")
	} else if c.Fetch.MediaDir != "" {
		c.Fetch.MediaDir = utils.GetAbsolutePath(c.Fetch.MediaDir, c.GetConfigDir())
	}
}
