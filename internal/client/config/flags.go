package config

import (
	"github.com/spf13/cobra"
)

// Flag names shared by BindFlags and Resolve.
const (
	FlagConfig            = "config"
	FlagAddr              = "addr"
	FlagTerminal          = "terminal"
	FlagToken             = "token"
	FlagHeartbeatInterval = "heartbeat-interval"
	FlagRequestTimeout    = "timeout"
	FlagLogLevel          = "log-level"
)

// Flags carries the raw values of the persistent flags bound to a command.
type Flags struct {
	ConfigPath string
	Config
}

// BindFlags registers the persistent flags on cmd. Defaults shown in help
// are the built-in ones.
func BindFlags(cmd *cobra.Command) *Flags {
	f := &Flags{}
	f.LoadDefaults()

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.ConfigPath, FlagConfig, "c", "", "path to JSON config file (or $"+ConfigEnvVar+")")
	pf.StringVarP(&f.ServerEndpointAddr, FlagAddr, "a", f.ServerEndpointAddr, "server gRPC address")
	pf.StringVarP(&f.TerminalID, FlagTerminal, "t", f.TerminalID, "terminal id")
	pf.StringVar(&f.Token, FlagToken, f.Token, "access token for the terminal")
	pf.DurationVarP(&f.HeartbeatInterval, FlagHeartbeatInterval, "i", f.HeartbeatInterval, "agent heartbeat interval")
	pf.DurationVar(&f.RequestTimeout, FlagRequestTimeout, f.RequestTimeout, "per-request timeout")
	pf.StringVarP(&f.LogLevel, FlagLogLevel, "l", f.LogLevel, "log level (debug|info|warn|error)")
	return f
}

// Resolve loads defaults and the JSON file, then applies only the flags the
// user set on cmd.
func (f *Flags) Resolve(cmd *cobra.Command) (*Config, error) {
	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed(FlagAddr) {
		cfg.ServerEndpointAddr = f.ServerEndpointAddr
	}
	if changed(FlagTerminal) {
		cfg.TerminalID = f.TerminalID
	}
	if changed(FlagToken) {
		cfg.Token = f.Token
	}
	if changed(FlagHeartbeatInterval) {
		cfg.HeartbeatInterval = f.HeartbeatInterval
	}
	if changed(FlagRequestTimeout) {
		cfg.RequestTimeout = f.RequestTimeout
	}
	if changed(FlagLogLevel) {
		cfg.LogLevel = f.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
