package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/edgesync/internal/api"
	"github.com/dmitrijs2005/edgesync/internal/client/agent"
	"github.com/dmitrijs2005/edgesync/internal/client/client"
	"github.com/dmitrijs2005/edgesync/internal/client/config"
	"github.com/dmitrijs2005/edgesync/internal/logging"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/spf13/cobra"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Client is the server surface the commands use.
type Client interface {
	agent.EdgeClient
	Capture(ctx context.Context, req *api.CaptureRequest) (*api.CaptureResponse, error)
	Overview(ctx context.Context) (*api.OverviewResponse, error)
	TerminalStats(ctx context.Context, terminalID string) ([]*models.TerminalStats, error)
	Close() error
}

// Dialer opens a Client for the resolved config.
type Dialer func(cfg *config.Config) (Client, error)

func dialGRPC(cfg *config.Config) (Client, error) {
	return client.NewGRPCClient(cfg.ServerEndpointAddr, cfg.Token)
}

// RootOptions holds global state shared by all commands.
type RootOptions struct {
	Format string

	flags *config.Flags
	dial  Dialer
}

// NewRootCommand creates the root command wired to the gRPC server.
func NewRootCommand() *cobra.Command {
	return newRootCommand(dialGRPC)
}

func newRootCommand(dial Dialer) *cobra.Command {
	opts := &RootOptions{dial: dial}

	cmd := &cobra.Command{
		Use:           "edgesync-terminal",
		Short:         "Point-of-sale terminal client for edgesync",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	opts.flags = config.BindFlags(cmd)
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewCaptureCommand(opts))
	cmd.AddCommand(NewHeartbeatCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewAgentCommand(opts))
	cmd.AddCommand(NewOverviewCommand(opts))
	cmd.AddCommand(NewTerminalsCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))

	return cmd
}

// session is what a connected command works with.
type session struct {
	cfg    *config.Config
	client Client
	logger logging.Logger
}

func (s *session) close() {
	_ = s.client.Close()
}

// requestContext bounds one RPC by the configured timeout.
func (s *session) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.RequestTimeout)
}

// connect resolves the config and dials the server. needTerminal rejects an
// empty terminal id before any network traffic.
func (o *RootOptions) connect(cmd *cobra.Command, needTerminal bool) (*session, error) {
	cfg, err := o.flags.Resolve(cmd)
	if err != nil {
		return nil, err
	}
	if needTerminal && cfg.TerminalID == "" {
		return nil, errors.New("terminal id is required (--terminal or terminal_id in config)")
	}

	c, err := o.dial(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.ServerEndpointAddr, err)
	}

	return &session{
		cfg:    cfg,
		client: c,
		logger: logging.New(cmd.ErrOrStderr(), "text", cfg.LogLevel),
	}, nil
}
