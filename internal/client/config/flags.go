package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

const (
	flagConfig   = "config"
	flagAddr     = "addr"
	flagInterval = "interval"
	flagFile     = "file"
	flagLogLevel = "log-level"
)

// RegisterFlags declares the client flags on fs. Defaults shown in help are
// the built-in ones; a JSON file may still override them.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagConfig, "c", "", "path to a JSON config file")
	fs.StringP(flagAddr, "a", d.ServerEndpointAddr, "address and port of the garden server")
	fs.IntP(flagInterval, "i", int(d.TickInterval.Seconds()), "simulation tick interval (in seconds)")
	fs.StringP(flagFile, "f", d.SessionFile, "local session database file")
	fs.StringP(flagLogLevel, "l", d.LogLevel, "log level (debug, info, warn, error)")
}

func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs.Changed(flagAddr) {
		v, err := fs.GetString(flagAddr)
		if err != nil {
			return err
		}
		cfg.ServerEndpointAddr = v
	}
	if fs.Changed(flagInterval) {
		v, err := fs.GetInt(flagInterval)
		if err != nil {
			return err
		}
		if v <= 0 {
			return fmt.Errorf("tick interval must be positive, got %d", v)
		}
		cfg.TickInterval = time.Duration(v) * time.Second
	}
	if fs.Changed(flagFile) {
		v, err := fs.GetString(flagFile)
		if err != nil {
			return err
		}
		cfg.SessionFile = v
	}
	if fs.Changed(flagLogLevel) {
		v, err := fs.GetString(flagLogLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = v
	}
	return nil
}
