package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server      string   `toml:"server"`
	Nick        string   `toml:"nick"`
	User        string   `toml:"user"`
	RealName    string   `toml:"real_name"`
	Password    string   `toml:"password"`
	Channels    []string `toml:"channels"`
	QuitMessage string   `toml:"quit_message"`
}

// ValidateConfig checks if all required configuration fields are properly set
func ValidateConfig(cfg *Config) error {
	var missingFields []string

	if cfg.Server == "" {
		missingFields = append(missingFields, "server")
	}
	if cfg.Nick == "" {
		missingFields = append(missingFields, "nick")
	}
	if cfg.User == "" {
		missingFields = append(missingFields, "user")
	}
	if cfg.RealName == "" {
		missingFields = append(missingFields, "real_name")
	}

	if cfg.Server != "" && !strings.Contains(cfg.Server, ":") {
		return fmt.Errorf("server address does not contain a port (format should be host:port)")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required configuration fields: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GetConfigPath returns the path for the config file
func GetConfigPath() string {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./data/config.toml"
	}
	return configPath
}
