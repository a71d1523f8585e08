package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the CLI configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Session SessionConfig `yaml:"session" mapstructure:"session"`
	Poll    PollConfig    `yaml:"poll" mapstructure:"poll"`
	Debug   bool          `yaml:"debug" mapstructure:"debug"`
}

// ServerConfig contains backend connection settings
type ServerConfig struct {
	URL     string        `yaml:"url" mapstructure:"url"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// SessionConfig contains local session storage settings
type SessionConfig struct {
	DBPath string `yaml:"db_path" mapstructure:"db_path"`
}

// PollConfig contains contact polling settings
type PollConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

var globalConfig *Config

// Initialize loads the configuration from file. The base URL and every other
// setting is read once at startup; commands never re-read the file.
func Initialize(configFile string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".portfolioctl")
	}

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("could not read config file: %w", err)
		}
		// Config file not found, defaults apply
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("could not unmarshal config: %w", err)
	}

	globalConfig = cfg
	return nil
}

func setDefaults() {
	home, _ := os.UserHomeDir()

	viper.SetDefault("server.url", "http://localhost:4000")
	viper.SetDefault("server.timeout", "10s")
	viper.SetDefault("session.db_path", filepath.Join(home, ".portfolioctl.db"))
	viper.SetDefault("poll.interval", "30s")
	viper.SetDefault("debug", false)
}

// Get returns the loaded configuration
func Get() *Config {
	if globalConfig == nil {
		// Fall back to defaults when Initialize was never called
		setDefaults()
		cfg := &Config{}
		_ = viper.Unmarshal(cfg)
		globalConfig = cfg
	}
	return globalConfig
}
