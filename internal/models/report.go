package models

// MismatchKind distinguishes the two validation findings.
type MismatchKind string

const (
	MismatchMissingTag   MismatchKind = "missing_tag"
	MismatchMissingValue MismatchKind = "missing_value"
)

// Mismatch is one validation finding: a source tag or attribute value that
// never appears in the generated output.
type Mismatch struct {
	Kind      MismatchKind `json:"kind"`
	Tag       string       `json:"tag"`
	Attribute string       `json:"attribute,omitempty"`
	Value     string       `json:"value,omitempty"`
}

func (m Mismatch) String() string {
	if m.Kind == MismatchMissingTag {
		return "Missing tag: " + m.Tag
	}
	return m.Tag + " - Missing value: " + m.Attribute + "=" + m.Value
}

// ValidationReport is the outcome of validating one source/output pair.
// An empty Mismatches list means the pair validated cleanly. This is a
// set-membership check only: duplicated, misplaced, or miscounted content
// is invisible to it.
type ValidationReport struct {
	SourcePath string     `json:"sourcePath"`
	OutputPath string     `json:"outputPath"`
	Checked    int        `json:"checked"` // source elements examined
	Mismatches []Mismatch `json:"mismatches"`
}

// OK reports whether validation found no mismatches.
func (r *ValidationReport) OK() bool {
	return len(r.Mismatches) == 0
}

// ComparisonVerdict is the outcome of one attribute comparison.
type ComparisonVerdict string

const (
	ComparisonMatch      ComparisonVerdict = "match"
	ComparisonMismatch   ComparisonVerdict = "mismatch"
	ComparisonIncomplete ComparisonVerdict = "incomplete" // one or both values missing
)

// ComparisonResult reports an attribute comparison between the two dialects.
type ComparisonResult struct {
	Verdict     ComparisonVerdict `json:"verdict"`
	Attribute   string            `json:"attribute"`
	ShapeID     string            `json:"shapeId"`
	SourceValue string            `json:"sourceValue,omitempty"`
	OutputValue string            `json:"outputValue,omitempty"`
}
