// Package config loads runtime configuration for the terminal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with --config/-c or $EDGESYNC_TERMINAL_CONFIG.
//  3. Command-line flags the user set explicitly, which override earlier values.
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "5s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "terminal_id": "ICA-STHLM-001",
//	  "token": "eyJ...",
//	  "heartbeat_interval": "5s",
//	  "request_timeout": "10s"
//	}
package config
