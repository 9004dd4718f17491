package models

// CheckRules is the YAML configuration for the validator and comparator.
// Identifier attribute candidates are per dialect and listed in priority
// order; the dialect is always passed explicitly by the caller, never
// sniffed from document content.
type CheckRules struct {
	// SourceIDAttrs are identity attribute candidates in the source dialect.
	SourceIDAttrs []string `json:"sourceIdAttrs" yaml:"source_id_attrs"`
	// OutputIDAttrs are identity attribute candidates in the output dialect.
	OutputIDAttrs []string `json:"outputIdAttrs" yaml:"output_id_attrs"`
	// SkipTags are element tags the validator ignores, compared
	// case-insensitively.
	SkipTags []string `json:"skipTags" yaml:"skip_tags"`
	// ProgressInterval is how many source elements the validator checks
	// between progress lines.
	ProgressInterval int `json:"progressInterval" yaml:"progress_interval"`
}

// DefaultCheckRules mirrors the conventions of the two dialects.
func DefaultCheckRules() *CheckRules {
	return &CheckRules{
		SourceIDAttrs:    []string{"id", "Name"},
		OutputIDAttrs:    []string{"x:Name", "Name"},
		SkipTags:         []string{"root"},
		ProgressInterval: 100,
	}
}
