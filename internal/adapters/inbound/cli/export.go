package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/history"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/tui"
)

func newExportCmd() *cobra.Command {
	var (
		root        string
		jsonOutput  bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "export [spec]",
		Short: "Write the reports and agent payload into a project",
		Long: "Export renders both reports in both formats and writes them, the uploaded documents, their text " +
			"conversions and the agent payload into the project's artifact directory (.kiro by default).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absRoot, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			if showHistory {
				dir := filepath.Join(absRoot, a.cfg.WorkspaceDir)
				entries, err := history.New().Load(dir)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				return renderJSON(cmd, entries)
			}

			if len(args) == 0 {
				return fmt.Errorf("export needs a spec file")
			}
			spec, err := a.specs.Load(args[0])
			if err != nil {
				return err
			}

			wait := startWaiting(cmd.ErrOrStderr(), "Rendering reports ")
			result, err := a.exports().Export(cmd.Context(), spec, absRoot)
			wait.Stop()
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderExport(spec.TargetProject, result))
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Project root that receives the artifact directory")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the export result as JSON")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show previous exports instead of exporting")

	return cmd
}
