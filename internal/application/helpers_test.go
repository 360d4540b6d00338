package application_test

import (
	"errors"
	"time"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/docconv"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/history"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/markdown"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/pdf"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/specfile"
	"github.com/abdidvp/transformspec/internal/adapters/outbound/workspace"
	"github.com/abdidvp/transformspec/internal/application"
	"github.com/abdidvp/transformspec/internal/domain"
	"github.com/abdidvp/transformspec/internal/logging"
)

var fixedTime = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func renderService() *application.RenderService {
	return application.NewRenderService(markdown.New(), pdf.New(), logging.Discard()).
		WithClock(func() time.Time { return fixedTime })
}

type stubRepo struct {
	commit, remote string
}

func (r stubRepo) CommitHash(string) (string, error) {
	if r.commit == "" {
		return "", errors.New("not a repository")
	}
	return r.commit, nil
}

func (r stubRepo) RemoteURL(string) (string, error) {
	if r.remote == "" {
		return "", errors.New("no remotes")
	}
	return r.remote, nil
}

func exportService(repo domain.RepoInspector) *application.ExportService {
	return application.NewExportService(
		renderService(),
		workspace.New(".kiro"),
		docconv.New(),
		specfile.New(),
		history.New(),
		repo,
		logging.Discard(),
	)
}

func orderService() *domain.TransformationSpec {
	s := domain.NewSpec()
	s.TransformationType = []string{"API"}
	s.TargetProject = "OrderService"
	s.TransformationGoal = "Split the monolith"
	s.ArchitecturalPattern = "Clean Architecture"
	s.LayerStructure = []domain.Layer{{Name: "Domain", Description: "Entities"}}
	return s
}
