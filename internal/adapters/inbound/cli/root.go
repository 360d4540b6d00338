package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transformspec",
		Short: "Render transformation specs into reports and agent instructions",
		Long: "transformspec turns a TransformationSpec into a Requirements Specification and a Technical Details " +
			"report (Markdown and PDF), exports them for the code-generation agent and drives the agent run.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("config", "", "Config file (defaults to $XDG_CONFIG_HOME/transformspec/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Override the configured log level")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newInstructionsCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newTransformCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
