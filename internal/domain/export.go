package domain

// ExportResult lists what an export wrote. Warnings are non-fatal I/O
// problems such as a document that could not be converted.
type ExportResult struct {
	Dir      string   `json:"dir"`
	Files    []string `json:"files"`
	Warnings []string `json:"warnings,omitempty"`
}

// ExportEntry is one line of the export history.
type ExportEntry struct {
	Timestamp     string   `json:"timestamp"`
	CommitHash    string   `json:"commit_hash,omitempty"`
	TargetProject string   `json:"target_project"`
	Files         []string `json:"files"`
	Warnings      int      `json:"warnings"`
}

// ArtifactNames are the file names the instruction payload refers to.
type ArtifactNames struct {
	Dir          string
	Requirements string
	Technical    string
}

// DefaultArtifactNames returns the names used by exports into dir.
func DefaultArtifactNames(dir string) ArtifactNames {
	return ArtifactNames{
		Dir:          dir,
		Requirements: KindRequirements.BaseName() + ".md",
		Technical:    KindTechnical.BaseName() + ".md",
	}
}

// InstructionsFileName is the payload file handed to the agent.
const InstructionsFileName = "transformation-spec.kiro"

// SnapshotFileName is the JSON copy of the spec written on export.
const SnapshotFileName = "transformation-spec.json"
