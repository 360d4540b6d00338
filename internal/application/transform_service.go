package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/abdidvp/transformspec/internal/domain"
)

// TransformService hands the agent payload to the configured code generator.
type TransformService struct {
	renders   *RenderService
	generator domain.CodeGenerator
	dirName   string
	log       logrus.FieldLogger
}

func NewTransformService(renders *RenderService, generator domain.CodeGenerator, dirName string, log logrus.FieldLogger) *TransformService {
	return &TransformService{renders: renders, generator: generator, dirName: dirName, log: log}
}

// Run builds the payload for spec and streams the run to sink.
func (s *TransformService) Run(ctx context.Context, spec *domain.TransformationSpec, workingDir string, sink domain.EventSink) (domain.Outcome, error) {
	payload, err := s.renders.Instructions(spec, domain.DefaultArtifactNames(s.dirName))
	if err != nil {
		return domain.OutcomeFailed, err
	}
	return s.RunPayload(ctx, domain.TransformRequest{KiroContent: payload, WorkingDir: workingDir}, sink)
}

// RunPayload streams a run for a payload built elsewhere.
func (s *TransformService) RunPayload(ctx context.Context, req domain.TransformRequest, sink domain.EventSink) (domain.Outcome, error) {
	log := s.log.WithField("path", req.WorkingDir)
	log.Info("transformation started")

	outcome, err := s.generator.Generate(ctx, req, sink)
	if err != nil {
		log.WithError(err).Error("transformation failed")
		return outcome, err
	}
	log.WithField("outcome", outcome).Info("transformation finished")
	return outcome, nil
}
