package domain

import (
	"fmt"
	"strings"
)

// DocumentSource selects how reference documents were supplied.
type DocumentSource string

const (
	DocumentSourceManual DocumentSource = "manual"
	DocumentSourceMCP    DocumentSource = "mcp"
)

// MigrationApproach is the cut-over strategy for the transformation.
type MigrationApproach string

const (
	MigrationBigBang      MigrationApproach = "Big Bang"
	MigrationPhased       MigrationApproach = "Phased"
	MigrationStranglerFig MigrationApproach = "Strangler Fig"
	MigrationFeatureFlag  MigrationApproach = "Feature Flag"
)

const (
	TransformationTypeAPI   = "API"
	DefaultLoggingLevel     = "Debug"
	DefaultUnitTestCoverage = "90"
	DefaultTestingFramework = "XUnit"
)

// ValidMigrationApproaches enumerates the accepted migration approaches.
var ValidMigrationApproaches = []MigrationApproach{
	MigrationBigBang,
	MigrationPhased,
	MigrationStranglerFig,
	MigrationFeatureFlag,
}

// ValidTransformationTypes lists the transformation types offered by the wizard.
var ValidTransformationTypes = []string{
	"API", "UI", "Business Logic", "Database", "Infrastructure", "Full Stack", "Other",
}

// DocumentRef is an uploaded reference document.
type DocumentRef struct {
	FileName string `yaml:"file_name"           json:"fileName"`
	FilePath string `yaml:"file_path,omitempty" json:"filePath,omitempty"`
	FileType string `yaml:"file_type,omitempty" json:"fileType,omitempty"`
	Content  []byte `yaml:"-"                   json:"fileContent,omitempty"`
}

// DisplayPath is the path shown in reports: the full path when known,
// otherwise the bare file name.
func (d DocumentRef) DisplayPath() string {
	if d.FilePath != "" {
		return d.FilePath
	}
	return d.FileName
}

// CodingStandard is a coding-standards document attached to a technology.
type CodingStandard struct {
	ID             string `yaml:"id,omitempty"        json:"id"`
	TechnologyName string `yaml:"technology"          json:"technologyName"`
	FileName       string `yaml:"file_name"           json:"fileName"`
	FilePath       string `yaml:"file_path,omitempty" json:"filePath,omitempty"`
	FileType       string `yaml:"file_type,omitempty" json:"fileType,omitempty"`
	Content        []byte `yaml:"-"                   json:"fileContent,omitempty"`
}

// Ref returns the document part of the coding standard.
func (c CodingStandard) Ref() DocumentRef {
	return DocumentRef{FileName: c.FileName, FilePath: c.FilePath, FileType: c.FileType, Content: c.Content}
}

// Layer is one layer of the target architecture. Description holds one
// detail per line.
type Layer struct {
	Name        string `yaml:"name"        json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Details returns the trimmed, non-blank description lines in order.
func (l Layer) Details() []string {
	var out []string
	for _, line := range strings.Split(l.Description, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

type InternalDependency struct {
	Name     string `yaml:"name"     json:"name"`
	Purpose  string `yaml:"purpose"  json:"purpose"`
	Location string `yaml:"location" json:"location"`
	Notes    string `yaml:"notes"    json:"notes"`
}

type ExternalSystem struct {
	Name           string `yaml:"name"            json:"name"`
	ConnectionType string `yaml:"connection_type" json:"connectionType"`
	Purpose        string `yaml:"purpose"         json:"purpose"`
	Notes          string `yaml:"notes"           json:"notes"`
}

// TransformationSpec is the wizard record describing a modernization effort.
// Renderers treat it as an immutable snapshot.
type TransformationSpec struct {
	// Overview
	TransformationType    []string `yaml:"transformation_type"    json:"transformationType"    validate:"min=1,dive,required"`
	SourceProject         string   `yaml:"source_project"         json:"sourceProject"`
	TargetProject         string   `yaml:"target_project"         json:"targetProject"         validate:"required"`
	Repository            string   `yaml:"repository"             json:"repository"`
	TransformationGoal    string   `yaml:"transformation_goal"    json:"transformationGoal"    validate:"required"`
	BusinessJustification string   `yaml:"business_justification" json:"businessJustification"`

	// Reference documents
	DocumentSource           DocumentSource        `yaml:"document_source"                     json:"documentUploadType"         validate:"omitempty,oneof=manual mcp"`
	RequirementsSpecDocument Optional[DocumentRef] `yaml:"requirements_spec_document,omitempty" json:"requirementsSpecDocument"`
	UANDocument              Optional[DocumentRef] `yaml:"uan_document,omitempty"               json:"uanDocument"`
	UADDocument              Optional[DocumentRef] `yaml:"uad_document,omitempty"               json:"uadDocument"`
	MCPURL                   string                `yaml:"mcp_url,omitempty"                    json:"mcpUrl,omitempty"`
	MCPProjectID             string                `yaml:"mcp_project_id,omitempty"             json:"mcpProjectId,omitempty"`
	MCPProjectName           string                `yaml:"mcp_project_name,omitempty"           json:"mcpProjectName,omitempty"`
	CodingStandardDocuments  []CodingStandard      `yaml:"coding_standards"                     json:"codingStandardDocuments"`

	// Source analysis
	LegacyCodePaths   []string `yaml:"legacy_code_paths"   json:"legacyCodePaths"`
	CurrentPattern    string   `yaml:"current_pattern"     json:"currentPattern"`
	KeyIssues         string   `yaml:"key_issues"          json:"keyIssues"`
	CoreBusinessLogic string   `yaml:"core_business_logic" json:"coreBusinessLogic"`

	// Target architecture
	ArchitecturalPattern string  `yaml:"architectural_pattern" json:"architecturalPattern" validate:"required"`
	LayerStructure       []Layer `yaml:"layer_structure"       json:"layerStructure"`
	TargetLocation       string  `yaml:"target_location"       json:"targetLocation"`

	// Dependencies
	InternalDependencies []InternalDependency `yaml:"internal_dependencies" json:"internalDependencies"`
	ExternalSystems      []ExternalSystem     `yaml:"external_systems"      json:"externalSystems"`

	// Technical requirements
	AuthMethod            string `yaml:"auth_method"                       json:"authMethod"`
	AuthImplementation    string `yaml:"auth_implementation"               json:"authImplementation"`
	ErrorStrategy         string `yaml:"error_strategy"                    json:"errorStrategy"`
	LoggingFramework      string `yaml:"logging_framework"                 json:"loggingFramework"`
	LoggingLevel          string `yaml:"logging_level"                     json:"loggingLevel"`
	APIResourceNaming     string `yaml:"api_resource_naming,omitempty"     json:"apiResourceNaming,omitempty"`
	APINamingConvention   string `yaml:"api_naming_convention,omitempty"   json:"apiNamingConvention,omitempty"`
	APIVersioningStrategy string `yaml:"api_versioning_strategy,omitempty" json:"apiVersioningStrategy,omitempty"`

	// Testing
	UnitTestCoverage         string `yaml:"unit_test_coverage"         json:"unitTestCoverage"         validate:"omitempty,numeric,coverage"`
	IntegrationTestsRequired bool   `yaml:"integration_tests_required" json:"integrationTestsRequired"`
	TestingFramework         string `yaml:"testing_framework"          json:"testingFramework"`

	// Mapping
	MappingApproach string `yaml:"mapping_approach" json:"mappingApproach"`

	// Constraints
	MustFollow          []string `yaml:"must_follow"          json:"mustFollow"`
	MustNotDo           []string `yaml:"must_not_do"          json:"mustNotDo"`
	PreferredApproaches []string `yaml:"preferred_approaches" json:"preferredApproaches"`

	// Success criteria
	FunctionalSuccess []string `yaml:"functional_success" json:"functionalSuccess"`
	TechnicalSuccess  []string `yaml:"technical_success"  json:"technicalSuccess"`
	BusinessSuccess   []string `yaml:"business_success"   json:"businessSuccess"`

	// Migration
	MigrationApproach MigrationApproach `yaml:"migration_approach" json:"migrationApproach" validate:"omitempty,migration"`
	RollbackPlan      string            `yaml:"rollback_plan"      json:"rollbackPlan"`
}

// NewSpec returns the record as the wizard starts it: empty collections,
// empty strings, and the wizard's preset testing and logging defaults.
func NewSpec() *TransformationSpec {
	s := &TransformationSpec{
		DocumentSource:           DocumentSourceManual,
		LoggingLevel:             DefaultLoggingLevel,
		UnitTestCoverage:         DefaultUnitTestCoverage,
		IntegrationTestsRequired: true,
		TestingFramework:         DefaultTestingFramework,
	}
	s.Normalize()
	return s
}

// Normalize replaces nil collections with empty ones so that renderers only
// ever branch on emptiness.
func (s *TransformationSpec) Normalize() {
	if s.TransformationType == nil {
		s.TransformationType = []string{}
	}
	if s.CodingStandardDocuments == nil {
		s.CodingStandardDocuments = []CodingStandard{}
	}
	if s.LayerStructure == nil {
		s.LayerStructure = []Layer{}
	}
	if s.InternalDependencies == nil {
		s.InternalDependencies = []InternalDependency{}
	}
	if s.ExternalSystems == nil {
		s.ExternalSystems = []ExternalSystem{}
	}
	for _, name := range StringListNames {
		l, _ := s.StringList(name)
		if *l == nil {
			*l = []string{}
		}
	}
}

// CheckContract reports a programmer error when the spec is nil or one of its
// collections is absent. Empty collections are fine.
func CheckContract(s *TransformationSpec) error {
	if s == nil {
		return fmt.Errorf("%w: spec is nil", ErrInvalidSpec)
	}
	absent := func(name string) error {
		return fmt.Errorf("%w: collection %q is absent", ErrInvalidSpec, name)
	}
	switch {
	case s.TransformationType == nil:
		return absent("transformation_type")
	case s.CodingStandardDocuments == nil:
		return absent("coding_standards")
	case s.LayerStructure == nil:
		return absent("layer_structure")
	case s.InternalDependencies == nil:
		return absent("internal_dependencies")
	case s.ExternalSystems == nil:
		return absent("external_systems")
	}
	for _, name := range StringListNames {
		l, _ := s.StringList(name)
		if *l == nil {
			return absent(name)
		}
	}
	return nil
}

// HasTransformationType reports whether t was selected.
func (s *TransformationSpec) HasTransformationType(t string) bool {
	for _, v := range s.TransformationType {
		if v == t {
			return true
		}
	}
	return false
}

// IncludesAPIDesign reports whether the API Design section applies.
func (s *TransformationSpec) IncludesAPIDesign() bool {
	return s.HasTransformationType(TransformationTypeAPI)
}

// ReferenceDocuments returns the manual-mode uploads with their report labels,
// in report order.
func (s *TransformationSpec) ReferenceDocuments() []LabeledDocument {
	if s.DocumentSource != DocumentSourceManual && s.DocumentSource != "" {
		return nil
	}
	var out []LabeledDocument
	add := func(label string, o Optional[DocumentRef]) {
		if d, ok := o.Get(); ok {
			out = append(out, LabeledDocument{Label: label, Document: d})
		}
	}
	add("User Story Document", s.RequirementsSpecDocument)
	add("UAN Document", s.UANDocument)
	add("UAD Document", s.UADDocument)
	return out
}

// LabeledDocument pairs a reference document with the label used in reports.
type LabeledDocument struct {
	Label    string
	Document DocumentRef
}
