package outline

import (
	"time"

	"github.com/abdidvp/transformspec/internal/domain"
)

// Requirements composes the requirements specification report.
func Requirements(spec *domain.TransformationSpec, at time.Time) (*domain.Document, error) {
	if err := domain.CheckContract(spec); err != nil {
		return nil, err
	}

	b := newBuilder(domain.KindRequirements, "Requirements Specification", at)

	b.section("TRANSFORMATION OVERVIEW").
		sub("Transformation Type", domain.FieldBlock("Type", transformationTypes(spec))).
		sub("Project Context", domain.FieldListBlock(
			domain.Field{Label: "Source Project", Value: orNotSpecified(spec.SourceProject)},
			domain.Field{Label: "Target Project", Value: orNotSpecified(spec.TargetProject)},
			domain.Field{Label: "Repository", Value: orNotSpecified(spec.Repository)},
		)).
		sub("Reference Documents", referenceBlocks(spec)...).
		sub("Transformation Goal", textOr(spec.TransformationGoal))

	b.section("BUSINESS JUSTIFICATION", textOr(spec.BusinessJustification))

	b.section("SOURCE PROJECT INFORMATION").
		sub("Current Architecture/Pattern", domain.FieldBlock("Pattern", orNotSpecified(spec.CurrentPattern))).
		sub("Key Issues", textOr(spec.KeyIssues)).
		sub("Core Business Logic", textOr(spec.CoreBusinessLogic))

	b.section("TARGET STATE").
		sub("Target Architectural Pattern", domain.FieldBlock("Pattern", orNotSpecified(spec.ArchitecturalPattern))).
		sub("Target Location", domain.FieldBlock("New files location", orNotSpecified(spec.TargetLocation)))

	b.section("SUCCESS CRITERIA").
		sub("Functional Success", checklistOr(spec.FunctionalSuccess, NoFunctionalSuccess)).
		sub("Business Success", checklistOr(spec.BusinessSuccess, NoBusinessSuccess))

	return b.doc, nil
}

func referenceBlocks(spec *domain.TransformationSpec) []domain.Block {
	var blocks []domain.Block

	if spec.DocumentSource == domain.DocumentSourceMCP {
		blocks = append(blocks, domain.FieldListBlock(
			domain.Field{Label: "MCP URL", Value: orNotSpecified(spec.MCPURL)},
			domain.Field{Label: "Project ID", Value: orNotSpecified(spec.MCPProjectID)},
			domain.Field{Label: "Project Name", Value: orNotSpecified(spec.MCPProjectName)},
		))
	} else if docs := spec.ReferenceDocuments(); len(docs) > 0 {
		fields := make([]domain.Field, 0, len(docs))
		for _, d := range docs {
			fields = append(fields, domain.Field{Label: d.Label, Value: d.Document.DisplayPath()})
		}
		blocks = append(blocks, domain.FieldListBlock(fields...))
	}

	if len(spec.CodingStandardDocuments) > 0 {
		items := make([]string, 0, len(spec.CodingStandardDocuments))
		for _, cs := range spec.CodingStandardDocuments {
			items = append(items, orNotSpecified(cs.TechnologyName)+": "+cs.Ref().DisplayPath())
		}
		blocks = append(blocks, domain.NestedBlock("Coding Standards", items))
	}

	if len(blocks) == 0 {
		return []domain.Block{domain.SentinelBlock(NoReferenceDocuments)}
	}
	return blocks
}
