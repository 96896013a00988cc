package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/virtualgarden/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. The tick interval
// accepts "60s"-style strings or integer nanoseconds. Absent keys keep the
// value already in Config.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	TickInterval       *timex.Duration `json:"tick_interval"`
	SessionFile        *string         `json:"session_file"`
	LogLevel           *string         `json:"log_level"`
}

func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.TickInterval != nil {
		if jc.TickInterval.Duration <= 0 {
			return fmt.Errorf("tick_interval must be positive")
		}
		cfg.TickInterval = jc.TickInterval.Duration
	}
	if jc.SessionFile != nil {
		cfg.SessionFile = *jc.SessionFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
