package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config defines assistant configuration.
type Config struct {
	Data DataConfig `yaml:"data"`
	Log  LogConfig  `yaml:"log"`
}

type DataConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Log: LogConfig{
			Level: "info",
		},
	}
	if dir, err := defaultDataDir(); err == nil {
		cfg.Data.Dir = dir
	}

	if path := os.Getenv("DAYBOOK_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dir := os.Getenv("DAYBOOK_DATA_DIR"); dir != "" {
		cfg.Data.Dir = dir
	}
	if level := os.Getenv("DAYBOOK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Data.Dir == "" {
		return Config{}, fmt.Errorf("data directory not set; set DAYBOOK_DATA_DIR")
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func defaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "daybook"), nil
}
