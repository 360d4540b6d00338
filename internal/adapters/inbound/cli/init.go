package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const defaultSpecFile = "transformspec.yaml"

func newInitCmd() *cobra.Command {
	var (
		target string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Create a spec file with the wizard defaults",
		Long:  "Write a transformspec.yaml holding a blank TransformationSpec with the default coverage, logging and migration settings.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultSpecFile
			if len(args) > 0 {
				path = args[0]
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			if _, err := a.specs.Init(path, target, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Target project name")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing spec file")

	return cmd
}
