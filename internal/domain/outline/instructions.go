package outline

import (
	"fmt"
	"path"
	"strings"

	"github.com/abdidvp/transformspec/internal/domain"
)

// Instructions builds the code-generation payload handed to the agent. It
// references the exported artifacts by name and restates the architecture and
// goal. Output depends only on spec and names.
func Instructions(spec *domain.TransformationSpec, names domain.ArtifactNames) (string, error) {
	if err := domain.CheckContract(spec); err != nil {
		return "", err
	}
	if names.Dir == "" {
		names = domain.DefaultArtifactNames(".kiro")
	}

	ref := func(name string) string {
		return "#[[file:" + path.Join(names.Dir, name) + "]]"
	}

	var sb strings.Builder
	title := spec.TargetProject
	if strings.TrimSpace(title) == "" {
		title = "Transformation"
	}
	fmt.Fprintf(&sb, "# %s Specification\n\n", title)

	sb.WriteString("## Reference Documents\n\n")
	sb.WriteString("Please read and follow the specifications in these documents:\n\n")
	fmt.Fprintf(&sb, "- Requirements: %s\n", ref(names.Requirements))
	fmt.Fprintf(&sb, "- Technical Details: %s\n", ref(names.Technical))

	uploads := []struct {
		label string
		doc   domain.Optional[domain.DocumentRef]
	}{
		{"User Stories", spec.RequirementsSpecDocument},
		{"UAN Document", spec.UANDocument},
		{"UAD Document", spec.UADDocument},
	}
	if spec.DocumentSource != domain.DocumentSourceMCP {
		for _, u := range uploads {
			if d, ok := u.doc.Get(); ok && d.FileName != "" {
				fmt.Fprintf(&sb, "- %s: %s\n", u.label, ref(d.FileName))
			}
		}
	}
	for _, cs := range spec.CodingStandardDocuments {
		if cs.FileName != "" {
			fmt.Fprintf(&sb, "- Coding Standards: %s\n", ref(cs.FileName))
		}
	}

	sb.WriteString("\n---\n\n")
	fmt.Fprintf(&sb, "Architectural Pattern: %s\n\n", spec.ArchitecturalPattern)

	if len(spec.LayerStructure) > 0 {
		sb.WriteString("## Implementation Structure\n\n")
		for _, l := range spec.LayerStructure {
			fmt.Fprintf(&sb, "### %s\n", l.Name)
			for _, d := range l.Details() {
				fmt.Fprintf(&sb, "- %s\n", d)
			}
			sb.WriteString("\n")
		}
	}

	if spec.TransformationGoal != "" {
		fmt.Fprintf(&sb, "\n## Transformation Goal\n%s\n", spec.TransformationGoal)
	}

	sb.WriteString("\n## Task: Generate Complete Application Code\n\n")
	fmt.Fprintf(&sb, "You MUST generate a complete, working application with %s architecture.\n\n", spec.ArchitecturalPattern)
	sb.WriteString(taskSteps)

	return sb.String(), nil
}

const taskSteps = `### Step 1: Analyze Requirements
Read ALL the reference documents above and extract:
- All domain entities with their properties and relationships
- All business validation rules and constraints
- All workflows and business processes
- All API endpoints and operations

### Step 2: Generate Complete Code
Create ALL files for a production-ready application:

1. **Domain Layer**: Generate entity classes for EVERY entity found in the documents
2. **Application Layer**: Generate commands, handlers, validators, and DTOs for ALL operations
3. **Infrastructure Layer**: Generate DbContext, repositories, services, and migrations
4. **API Layer**: Generate controllers for ALL endpoints with proper routing
5. **Configuration**: Generate appsettings.json, Program.cs, and dependency injection setup
6. **Database**: Generate EF Core migrations for all entities
7. **Docker**: Generate Dockerfile and docker-compose.yml
8. **Tests**: Generate unit tests for key business logic

### Step 3: Implementation Requirements
- Use .NET 8 with C# 12
- Implement ALL entities, not just examples
- Include ALL validation rules from the documents
- Add proper error handling and logging
- Follow clean architecture principles strictly
- Generate working, compilable code

### Step 4: Create Project Structure
Organize code in the src/ folder following the layer structure below.

DO NOT just analyze - you must CREATE all the actual code files!
`
