package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

// Config holds runtime settings for the garden CLI.
type Config struct {
	ServerEndpointAddr string
	TickInterval       time.Duration
	SessionFile        string
	LogLevel           string
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.TickInterval = 60 * time.Second
	c.SessionFile = defaultSessionFile()
	c.LogLevel = "warn"
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "garden-session.db"
	}
	return filepath.Join(dir, "virtualgarden", "session.db")
}

// LoadConfig applies defaults, the JSON file and the flags changed on fs,
// in that order. fs must have been prepared with RegisterFlags.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}
	return cfg, nil
}
