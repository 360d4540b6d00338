package outline

import (
	"fmt"
	"time"

	"github.com/abdidvp/transformspec/internal/domain"
)

// Technical composes the technical details report. The API Design
// subsection is emitted only for API transformations; the Testing
// Requirements number follows from the subsections emitted before it.
func Technical(spec *domain.TransformationSpec, at time.Time) (*domain.Document, error) {
	if err := domain.CheckContract(spec); err != nil {
		return nil, err
	}

	b := newBuilder(domain.KindTechnical, "Technical Details", at)

	b.section("SOURCE ANALYSIS").
		sub("Legacy Code Location", bulletsOr(spec.LegacyCodePaths, NoLegacyCodePaths)).
		sub("Current Architecture/Pattern", domain.FieldListBlock(
			domain.Field{Label: "Pattern", Value: orNotSpecified(spec.CurrentPattern)},
			domain.Field{Label: "Key issues", Value: orNotSpecified(spec.KeyIssues)},
		)).
		sub("Core Business Logic", textOr(spec.CoreBusinessLogic))

	b.section("TARGET ARCHITECTURE").
		sub("Architectural Pattern", domain.FieldBlock("Pattern", orNotSpecified(spec.ArchitecturalPattern))).
		sub("Layer Structure", layerBlock(spec.LayerStructure)).
		sub("Target Project Structure", domain.FieldBlock("New files location", orNotSpecified(spec.TargetLocation)))

	b.section("DEPENDENCIES & INTEGRATIONS").
		sub("Internal Dependencies", internalDependencyBlock(spec.InternalDependencies)).
		sub("External Systems", externalSystemBlock(spec.ExternalSystems))

	req := b.section("TECHNICAL REQUIREMENTS").
		numbered("Authentication & Authorization", domain.FieldListBlock(
			domain.Field{Label: "Method", Value: orNotSpecified(spec.AuthMethod)},
			domain.Field{Label: "Implementation", Value: orNotSpecified(spec.AuthImplementation)},
		)).
		numbered("Error Handling", domain.FieldListBlock(
			domain.Field{Label: "Strategy", Value: orNotSpecified(spec.ErrorStrategy)},
			domain.Field{Label: "Logging", Value: fmt.Sprintf("%s (Level: %s)",
				orNotSpecified(spec.LoggingFramework), orNotSpecified(spec.LoggingLevel))},
		))
	if spec.IncludesAPIDesign() {
		req.numbered("API Design",
			domain.FieldBlock("Resource Naming", orNotSpecified(spec.APIResourceNaming)),
			domain.FieldBlock("Naming Convention", orNotSpecified(spec.APINamingConvention)),
			domain.FieldBlock("Versioning Strategy", orNotSpecified(spec.APIVersioningStrategy)),
		)
	}
	req.numbered("Testing Requirements", domain.FieldListBlock(
		domain.Field{Label: "Unit test coverage", Value: coverage(spec.UnitTestCoverage)},
		domain.Field{Label: "Integration tests", Value: required(spec.IntegrationTestsRequired)},
		domain.Field{Label: "Testing framework", Value: orNotSpecified(spec.TestingFramework)},
	))

	b.section("DATA MODELS & MAPPING").
		sub("Mapping Approach", textOr(spec.MappingApproach))

	b.section("CODE QUALITY STANDARDS").
		sub("Must Follow", checklistOr(spec.MustFollow, NoConstraints)).
		sub("Must NOT Do", checklistOr(spec.MustNotDo, NoConstraints)).
		sub("Preferred Approaches", bulletsOr(spec.PreferredApproaches, NoPreferredApproaches))

	b.section("IMPLEMENTATION CONSTRAINTS").
		sub("Technical Success Criteria", checklistOr(spec.TechnicalSuccess, NoTechnicalSuccess))

	b.section("MIGRATION STRATEGY").
		sub("Approach", domain.FieldBlock("Migration Type", orNotSpecified(string(spec.MigrationApproach)))).
		sub("Rollback Plan", textOr(spec.RollbackPlan))

	return b.doc, nil
}

func layerBlock(layers []domain.Layer) domain.Block {
	if len(layers) == 0 {
		return domain.SentinelBlock(NoLayerStructure)
	}
	groups := make([]domain.Group, 0, len(layers))
	for _, l := range layers {
		groups = append(groups, domain.Group{Title: orNotSpecified(l.Name), Items: l.Details()})
	}
	return domain.GroupsBlock(groups)
}

func internalDependencyBlock(deps []domain.InternalDependency) domain.Block {
	if len(deps) == 0 {
		return domain.SentinelBlock(NoInternalDependencies)
	}
	t := domain.Table{Columns: []string{"Dependency", "Purpose", "Location", "Notes"}}
	for _, d := range deps {
		t.Rows = append(t.Rows, domain.TableRow{
			Cells:   []string{d.Name, d.Purpose, d.Location, d.Notes},
			Summary: fmt.Sprintf("%s: %s (%s)", d.Name, d.Purpose, d.Location),
			Notes:   d.Notes,
		})
	}
	return domain.TableBlock(t)
}

func externalSystemBlock(systems []domain.ExternalSystem) domain.Block {
	if len(systems) == 0 {
		return domain.SentinelBlock(NoExternalSystems)
	}
	t := domain.Table{Columns: []string{"System", "Connection Type", "Purpose", "Notes"}}
	for _, s := range systems {
		t.Rows = append(t.Rows, domain.TableRow{
			Cells:   []string{s.Name, s.ConnectionType, s.Purpose, s.Notes},
			Summary: fmt.Sprintf("%s (%s): %s", s.Name, s.ConnectionType, s.Purpose),
			Notes:   s.Notes,
		})
	}
	return domain.TableBlock(t)
}

func coverage(pct string) string {
	if pct == "" {
		return NotSpecified
	}
	return pct + "% minimum"
}

func required(b bool) string {
	if b {
		return "Required"
	}
	return "Not required"
}
