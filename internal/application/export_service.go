package application

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abdidvp/transformspec/internal/domain"
)

// ExportService writes the reports, the uploaded documents and the agent
// payload into a project's artifact directory. Only rendering and report
// writes are fatal; everything else becomes a warning.
type ExportService struct {
	renders   *RenderService
	workspace domain.Workspace
	converter domain.DocumentConverter
	snapshots domain.SpecWriter
	history   domain.ExportHistory
	repo      domain.RepoInspector
	log       logrus.FieldLogger
}

func NewExportService(
	renders *RenderService,
	workspace domain.Workspace,
	converter domain.DocumentConverter,
	snapshots domain.SpecWriter,
	history domain.ExportHistory,
	repo domain.RepoInspector,
	log logrus.FieldLogger,
) *ExportService {
	return &ExportService{
		renders:   renders,
		workspace: workspace,
		converter: converter,
		snapshots: snapshots,
		history:   history,
		repo:      repo,
		log:       log,
	}
}

func (s *ExportService) Export(ctx context.Context, spec *domain.TransformationSpec, root string) (*domain.ExportResult, error) {
	if err := domain.CheckContract(spec); err != nil {
		return nil, err
	}
	spec = s.withRepository(spec, root)

	// 1. Render the four reports
	artifacts, err := s.renders.RenderAll(ctx, spec)
	if err != nil {
		return nil, err
	}

	// 2. Prepare the artifact directory
	dir, err := s.workspace.Prepare(root)
	if err != nil {
		return nil, fmt.Errorf("preparing workspace: %w", err)
	}
	result := &domain.ExportResult{Dir: dir, Files: []string{}}
	log := s.log.WithField("path", dir)

	reserved := map[string]bool{
		domain.InstructionsFileName: true,
		domain.SnapshotFileName:     true,
	}
	for _, a := range artifacts {
		if _, err := s.workspace.Write(dir, a.Name, a.Data); err != nil {
			return nil, fmt.Errorf("writing %s: %w", a.Name, err)
		}
		result.Files = append(result.Files, a.Name)
		reserved[a.Name] = true
	}

	// 3. Reference documents and their text conversions
	if spec.DocumentSource != domain.DocumentSourceMCP {
		for _, o := range []domain.Optional[domain.DocumentRef]{
			spec.RequirementsSpecDocument, spec.UANDocument, spec.UADDocument,
		} {
			if doc, ok := o.Get(); ok {
				s.writeDocument(dir, doc, reserved, result)
			}
		}
	}
	for _, cs := range spec.CodingStandardDocuments {
		s.writeDocument(dir, cs.Ref(), reserved, result)
	}

	// 4. Agent payload and spec snapshot
	names := domain.DefaultArtifactNames(filepath.Base(dir))
	if payload, err := s.renders.Instructions(spec, names); err != nil {
		s.warn(result, "building %s: %v", domain.InstructionsFileName, err)
	} else if _, err := s.workspace.Write(dir, domain.InstructionsFileName, []byte(payload)); err != nil {
		s.warn(result, "writing %s: %v", domain.InstructionsFileName, err)
	} else {
		result.Files = append(result.Files, domain.InstructionsFileName)
	}

	if err := s.snapshots.Save(filepath.Join(dir, domain.SnapshotFileName), spec); err != nil {
		s.warn(result, "writing %s: %v", domain.SnapshotFileName, err)
	} else {
		result.Files = append(result.Files, domain.SnapshotFileName)
	}

	// 5. History
	entry := domain.ExportEntry{
		Timestamp:     s.renders.Now().UTC().Format(time.RFC3339),
		TargetProject: spec.TargetProject,
		Files:         result.Files,
		Warnings:      len(result.Warnings),
	}
	if s.repo != nil {
		entry.CommitHash, _ = s.repo.CommitHash(root)
	}
	if err := s.history.Save(dir, entry); err != nil {
		s.warn(result, "recording export history: %v", err)
	}

	log.WithFields(logrus.Fields{"files": len(result.Files), "warnings": len(result.Warnings)}).Info("export complete")
	return result, nil
}

// writeDocument stores an uploaded document and, for PDF and DOCX, its text
// conversion. A named document without content, or one named like a
// generated file, is skipped with a warning.
func (s *ExportService) writeDocument(dir string, doc domain.DocumentRef, reserved map[string]bool, result *domain.ExportResult) {
	if doc.FileName == "" {
		return
	}
	name := filepath.Base(doc.FileName)
	if len(doc.Content) == 0 {
		s.warn(result, "could not read %s", name)
		return
	}
	if reserved[name] {
		s.warn(result, "skipping %s: name is reserved for a generated file", name)
		return
	}
	if _, err := s.workspace.Write(dir, name, doc.Content); err != nil {
		s.warn(result, "writing %s: %v", name, err)
		return
	}
	result.Files = append(result.Files, name)

	if s.converter == nil || !s.converter.Supports(name) {
		return
	}
	text, err := s.converter.ToText(name, doc.Content)
	if err != nil {
		s.warn(result, "could not convert %s: %v", name, err)
		return
	}
	txt := textName(name)
	if _, err := s.workspace.Write(dir, txt, []byte(text)); err != nil {
		s.warn(result, "writing %s: %v", txt, err)
		return
	}
	result.Files = append(result.Files, txt)
}

// withRepository fills an empty repository from the project's git remote.
// The caller's spec is not modified.
func (s *ExportService) withRepository(spec *domain.TransformationSpec, root string) *domain.TransformationSpec {
	if spec.Repository != "" || s.repo == nil {
		return spec
	}
	url, err := s.repo.RemoteURL(root)
	if err != nil || url == "" {
		return spec
	}
	c := *spec
	c.Repository = url
	return &c
}

func (s *ExportService) warn(result *domain.ExportResult, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.log.Warn(msg)
	result.Warnings = append(result.Warnings, msg)
}

func textName(name string) string {
	return name[:len(name)-len(filepath.Ext(name))] + ".txt"
}
