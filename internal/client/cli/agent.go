package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/edgesync/internal/client/agent"
	"github.com/spf13/cobra"
)

// NewAgentCommand creates the agent command: the heartbeat/auto-sync loop
// plus a small prompt on stdin to flip the simulated central link.
func NewAgentCommand(rootOpts *RootOptions) *cobra.Command {
	var linkUp bool

	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Run the heartbeat and auto-sync loop",
		Long: `Run the heartbeat and auto-sync loop.

While running, type on stdin:
  up       mark the central link up (records sync on the next tick)
  down     mark the central link down
  status   print the current link flag
  quit     stop the agent`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rootOpts.connect(cmd, true)
			if err != nil {
				return err
			}
			defer s.close()

			a := agent.New(s.client, s.cfg.TerminalID, s.cfg.HeartbeatInterval, s.cfg.RequestTimeout, linkUp, s.logger)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			done := make(chan error, 1)
			go func() { done <- a.Run(ctx) }()

			runPrompt(ctx, cancel, cmd.InOrStdin(), cmd.OutOrStdout(), a)

			return <-done
		},
	}

	cmd.Flags().BoolVar(&linkUp, "link-up", true, "start with the central link up")

	return cmd
}

// runPrompt reads commands until quit or ctx is done. EOF stops reading but
// leaves the agent running.
func runPrompt(ctx context.Context, cancel context.CancelFunc, in io.Reader, out io.Writer, a *agent.Agent) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				<-ctx.Done()
				return
			}
			switch line {
			case "":
			case "up":
				a.SetLinkUp(true)
			case "down":
				a.SetLinkUp(false)
			case "status":
				fmt.Fprintf(out, "central link up: %t\n", a.LinkUp())
			case "quit", "exit":
				cancel()
				return
			default:
				fmt.Fprintln(out, "Unknown command:", line, "(up, down, status, quit)")
			}
		}
	}
}
