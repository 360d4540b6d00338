package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/tui"
	"github.com/abdidvp/transformspec/internal/domain"
)

func newTransformCmd() *cobra.Command {
	var (
		workDir string
		remote  bool
		backend string
	)

	cmd := &cobra.Command{
		Use:   "transform <spec>",
		Short: "Run the code-generation agent on a spec",
		Long: "Build the instruction payload for a spec and run the code-generation agent in the working directory, " +
			"streaming its output. With --remote the run goes through the transformspec backend instead of a local agent.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(workDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			if backend != "" {
				a.cfg.BackendURL = backend
				remote = true
			}
			spec, err := a.specs.Load(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			wait := startWaiting(cmd.ErrOrStderr(), "Starting agent ")
			sink := func(ev domain.ProgressEvent) {
				wait.Stop()
				fmt.Fprint(out, tui.RenderEvent(ev))
			}

			outcome, err := a.transforms(remote).Run(ctx, spec, absDir, sink)
			wait.Stop()
			fmt.Fprint(out, tui.RenderOutcome(outcome, absDir))
			if err != nil {
				return fmt.Errorf("transform failed: %w", err)
			}
			if outcome == domain.OutcomeFailed {
				return fmt.Errorf("transform failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&workDir, "dir", ".", "Working directory the agent generates code in")
	cmd.Flags().BoolVar(&remote, "remote", false, "Run through the backend configured as backend_url")
	cmd.Flags().StringVar(&backend, "backend", "", "Backend URL (implies --remote)")

	return cmd
}
