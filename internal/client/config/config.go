package config

import (
	"errors"
	"fmt"
	"time"
)

// ConfigEnvVar names the environment variable consulted when no --config
// flag is given.
const ConfigEnvVar = "EDGESYNC_TERMINAL_CONFIG"

// Config holds runtime settings for the terminal CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the server gRPC endpoint.
//   - TerminalID: identity of this terminal; required by capture, heartbeat, sync and agent.
//   - Token: bearer token issued for TerminalID. Empty when the server runs without a secret.
//   - HeartbeatInterval: agent heartbeat period.
//   - RequestTimeout: deadline applied to every RPC.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr string
	TerminalID         string
	Token              string
	HeartbeatInterval  time.Duration
	RequestTimeout     time.Duration
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.TerminalID = ""
	c.Token = ""
	c.HeartbeatInterval = 5 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
}

func (c *Config) Validate() error {
	if c.ServerEndpointAddr == "" {
		return errors.New("server address is required")
	}
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("heartbeat interval must be positive, got %s", c.HeartbeatInterval)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

// Load returns defaults overlaid with the JSON file at path. An empty path
// falls back to $EDGESYNC_TERMINAL_CONFIG; no path at all means defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}
