package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/tui"
	"github.com/abdidvp/transformspec/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate <spec>",
		Short: "Check a spec for missing required fields",
		Long:  "Run the wizard checks (required fields, coverage range, migration approach) against a spec file. Exits non-zero when any check fails.",
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

			issues := a.specs.Validate(spec)
			if jsonOutput {
				if issues == nil {
					issues = []domain.ValidationIssue{}
				}
				if err := renderJSON(cmd, map[string]interface{}{"valid": len(issues) == 0, "issues": issues}); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderIssues(issues))
			}

			if len(issues) > 0 {
				return fmt.Errorf("%d validation issues", len(issues))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output issues as JSON")

	return cmd
}
