package cli

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/server/auth"
	"github.com/spf13/cobra"
)

// NewHeartbeatCommand creates the heartbeat command.
func NewHeartbeatCommand(rootOpts *RootOptions) *cobra.Command {
	var linkUp bool

	cmd := &cobra.Command{
		Use:   "heartbeat",
		Short: "Report liveness and the central-link flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.connect(cmd, true)
			if err != nil {
				return err
			}
			defer s.close()

			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()

			resp, err := s.client.Heartbeat(ctx, s.cfg.TerminalID, linkUp)
			if err != nil {
				return fmt.Errorf("heartbeat: %w", err)
			}
			if rootOpts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			printHeartbeat(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&linkUp, "link-up", true, "report the central link as up")

	return cmd
}

// NewSyncCommand creates the sync command.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push pending records of the terminal to the central store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.connect(cmd, true)
			if err != nil {
				return err
			}
			defer s.close()

			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()

			resp, err := s.client.Sync(ctx, s.cfg.TerminalID)
			if err != nil {
				return fmt.Errorf("sync: %w", err)
			}
			if rootOpts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			printSync(cmd.OutOrStdout(), resp)
			return nil
		},
	}
}

// NewOverviewCommand creates the overview command.
func NewOverviewCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show dashboard totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.connect(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()

			o, err := s.client.Overview(ctx)
			if err != nil {
				return fmt.Errorf("overview: %w", err)
			}
			if rootOpts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), o)
			}
			printOverview(cmd.OutOrStdout(), o)
			return nil
		},
	}
}

// NewTerminalsCommand creates the terminals command.
func NewTerminalsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "terminals [terminal-id]",
		Short: "Show per-terminal dashboard stats",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			}

			s, err := rootOpts.connect(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()

			stats, err := s.client.TerminalStats(ctx, id)
			if err != nil {
				return fmt.Errorf("terminals: %w", err)
			}
			if rootOpts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			return printTerminalStats(cmd.OutOrStdout(), stats)
		},
	}
}

// NewTokenCommand creates the token command. It signs locally and needs the
// server's secret key.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		secret string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.flags.Resolve(cmd)
			if err != nil {
				return err
			}
			if cfg.TerminalID == "" {
				return fmt.Errorf("terminal id is required (--terminal or terminal_id in config)")
			}
			if secret == "" {
				return fmt.Errorf("--secret is required")
			}

			token, err := auth.GenerateToken(cfg.TerminalID, []byte(secret), ttl)
			if err != nil {
				return fmt.Errorf("token: %w", err)
			}
			if rootOpts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]string{"terminal_id": cfg.TerminalID, "token": token})
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "server secret key")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token validity")

	return cmd
}
