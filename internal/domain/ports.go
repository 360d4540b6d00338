package domain

import "context"

// SpecLoader reads a TransformationSpec from a file. Implementations must
// return a normalized spec.
type SpecLoader interface {
	Load(path string) (*TransformationSpec, error)
}

// SpecDecoder parses a spec payload. name selects the format by its
// extension.
type SpecDecoder interface {
	Decode(name string, data []byte) (*TransformationSpec, error)
}

// SpecWriter persists a TransformationSpec.
type SpecWriter interface {
	Save(path string, spec *TransformationSpec) error
}

// ConfigLoader loads application configuration.
type ConfigLoader interface {
	Load() (AppConfig, error)
}

// SpecValidator checks the wizard's required fields.
type SpecValidator interface {
	Validate(spec *TransformationSpec) []ValidationIssue
}

// TextRenderer serializes a Document as structured text.
type TextRenderer interface {
	Render(doc *Document) (string, error)
}

// PagedRenderer lays out and serializes a Document as a paginated document.
type PagedRenderer interface {
	Render(doc *Document) (PagedDocument, error)
}

// PagedDocument is a rendered paginated artifact.
type PagedDocument interface {
	Bytes() []byte
	Blob() Blob
	PageCount() int
}

// Blob is a MIME-typed payload suitable for display or download.
type Blob struct {
	MIMEType string
	Data     []byte
}

// DocumentConverter extracts plain text from uploaded documents.
type DocumentConverter interface {
	Supports(fileName string) bool
	ToText(fileName string, data []byte) (string, error)
}

// Workspace stores exported artifacts under a project root.
type Workspace interface {
	// Prepare creates the artifact directory and returns its path.
	Prepare(root string) (string, error)
	Write(dir, name string, data []byte) (string, error)
}

// ExportHistory records exports made into a workspace directory.
type ExportHistory interface {
	Save(dir string, entry ExportEntry) error
	Load(dir string) ([]ExportEntry, error)
}

// RepoInspector reads version-control metadata for a project directory.
type RepoInspector interface {
	CommitHash(projectPath string) (string, error)
	RemoteURL(projectPath string) (string, error)
}

// CodeGenerator hands an instruction payload to the code-generation agent
// and streams its progress to sink until the run ends or ctx is cancelled.
type CodeGenerator interface {
	Generate(ctx context.Context, req TransformRequest, sink EventSink) (Outcome, error)
}

// ValidationIssue is one failed wizard check.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
