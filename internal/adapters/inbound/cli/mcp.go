package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/abdidvp/transformspec/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the transformspec MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var specPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start transformspec MCP server (stdio)",
		Long:  "Start the transformspec MCP server using stdio transport. This allows AI coding assistants to render reports, build instructions and validate specs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			s := mcpadapter.NewServer(mcpadapter.Deps{
				Specs:       a.specs,
				Renders:     a.renders,
				SpecPath:    specPath,
				ArtifactDir: a.cfg.WorkspaceDir,
			}, version)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "Default spec file for tools and resources")

	return cmd
}
