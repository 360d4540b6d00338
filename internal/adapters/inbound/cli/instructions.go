package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/transformspec/internal/domain"
)

func newInstructionsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "instructions <spec>",
		Short: "Print the code-generation instructions for a spec",
		Long:  "Print the payload handed to the code-generation agent. It references the exported reports inside the artifact directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			spec, err := a.specs.Load(args[0])
			if err != nil {
				return err
			}
			if dir == "" {
				dir = a.cfg.WorkspaceDir
			}

			payload, err := a.renders.Instructions(spec, domain.DefaultArtifactNames(dir))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), payload)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Artifact directory used in file references (defaults to workspace_dir)")

	return cmd
}
