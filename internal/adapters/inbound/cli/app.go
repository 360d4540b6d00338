package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/codegen"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/config"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/docconv"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/history"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/markdown"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/pdf"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/specfile"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/validation"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/workspace"
	"github.com/abdidvp/transformspec/internal/application"
	"github.com/abdidvp/transformspec/internal/domain"
	"github.com/abdidvp/transformspec/internal/logging"
)

// app holds the configuration and services shared by the commands.
type app struct {
	cfg     domain.AppConfig
	log     *logging.Logger
	store   *specfile.Store
	specs   *application.SpecService
	renders *application.RenderService
}

// loadApp reads the config named by the persistent flags and wires the
// services.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.New(flagValue(cmd, "config")).Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if level := flagValue(cmd, "log-level"); level != "" {
		cfg.LogLevel = level
	}

	log := logging.New(cfg)
	store := specfile.New()
	return &app{
		cfg:     cfg,
		log:     log,
		store:   store,
		specs:   application.NewSpecService(store, store, validation.New()),
		renders: application.NewRenderService(markdown.New(), pdf.New(), log),
	}, nil
}

func (a *app) exports() *application.ExportService {
	return application.NewExportService(
		a.renders,
		workspace.New(a.cfg.WorkspaceDir),
		docconv.New(),
		a.store,
		history.New(),
		gitinfo.New(),
		a.log,
	)
}

// transforms drives the agent locally, or through the backend when remote
// is set.
func (a *app) transforms(remote bool) *application.TransformService {
	var gen domain.CodeGenerator = codegen.NewRunner(a.cfg.KiroBinary, a.cfg.WorkspaceDir, docconv.New())
	if remote {
		gen = codegen.NewClient(a.cfg.BackendURL, nil)
	}
	return application.NewTransformService(a.renders, gen, a.cfg.WorkspaceDir, a.log)
}

func flagValue(cmd *cobra.Command, name string) string {
	if f := cmd.Flag(name); f != nil {
		return f.Value.String()
	}
	return ""
}

func renderJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
