package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/edgesync/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// accept "5s" strings or integer nanoseconds; absent fields keep their
// current value.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	TerminalID         *string         `json:"terminal_id"`
	Token              *string         `json:"token"`
	HeartbeatInterval  *timex.Duration `json:"heartbeat_interval"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	LogLevel           *string         `json:"log_level"`
}

func parseJson(cfg *Config, path string) error {
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.TerminalID != nil {
		cfg.TerminalID = *jc.TerminalID
	}
	if jc.Token != nil {
		cfg.Token = *jc.Token
	}
	if jc.HeartbeatInterval != nil {
		cfg.HeartbeatInterval = jc.HeartbeatInterval.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
