package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/edgesync/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g. ":8080")
//	-g string     gRPC bind address (e.g. ":50051")
//	-e string     edge SQLite database path
//	-b string     central backend: sqlite | postgres
//	-r string     central SQLite database path
//	-d string     central PostgreSQL DSN
//	-t duration   heartbeat timeout window (e.g. "20s")
//	-i duration   sync sweeper interval, 0 disables
//	-s string     token HMAC secret, empty disables auth
//	-v duration   token validity
//	-y string     default currency
//	-l string     log level
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-e", "-b", "-r", "-d", "-t", "-i", "-s", "-v", "-y", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "HTTP address and port")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "gRPC address and port")
	fs.StringVar(&config.EdgeDatabasePath, "e", config.EdgeDatabasePath, "edge database path")
	fs.StringVar(&config.CentralBackend, "b", config.CentralBackend, "central backend (sqlite|postgres)")
	fs.StringVar(&config.CentralDatabasePath, "r", config.CentralDatabasePath, "central database path")
	fs.StringVar(&config.CentralDatabaseDSN, "d", config.CentralDatabaseDSN, "central database DSN")
	fs.DurationVar(&config.HeartbeatTimeout, "t", config.HeartbeatTimeout, "heartbeat timeout window")
	fs.DurationVar(&config.SyncInterval, "i", config.SyncInterval, "sync sweeper interval (0 disables)")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidity, "v", config.TokenValidity, "token validity")
	fs.StringVar(&config.DefaultCurrency, "y", config.DefaultCurrency, "default currency")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	return fs.Parse(args)
}
