package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/flagx"
	"github.com/dmitrijs2005/edgesync/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Durations accept
// both "20s" strings and integer nanoseconds. Only fields present in the
// file override the current values.
type JsonConfig struct {
	HTTPAddr            *string         `json:"http_addr"`
	GRPCAddr            *string         `json:"grpc_addr"`
	EdgeDatabasePath    *string         `json:"edge_database_path"`
	CentralBackend      *string         `json:"central_backend"`
	CentralDatabasePath *string         `json:"central_database_path"`
	CentralDatabaseDSN  *string         `json:"central_database_dsn"`
	HeartbeatTimeout    *timex.Duration `json:"heartbeat_timeout"`
	SyncInterval        *timex.Duration `json:"sync_interval"`
	SecretKey           *string         `json:"secret_key"`
	TokenValidity       *timex.Duration `json:"token_validity"`
	DefaultCurrency     *string         `json:"default_currency"`
	LogLevel            *string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config or
// $EDGESYNC_CONFIG. No path means nothing to load.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.GRPCAddr, c.GRPCAddr)
	setString(&config.EdgeDatabasePath, c.EdgeDatabasePath)
	setString(&config.CentralBackend, c.CentralBackend)
	setString(&config.CentralDatabasePath, c.CentralDatabasePath)
	setString(&config.CentralDatabaseDSN, c.CentralDatabaseDSN)
	setDuration(&config.HeartbeatTimeout, c.HeartbeatTimeout)
	setDuration(&config.SyncInterval, c.SyncInterval)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.TokenValidity, c.TokenValidity)
	setString(&config.DefaultCurrency, c.DefaultCurrency)
	setString(&config.LogLevel, c.LogLevel)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
