// Package comparator locates shapes by partial identifier in a source or
// output document and compares a single attribute value between the two.
// Identifier attribute candidates are a per-dialect capability selected by
// an explicit dialect tag; they are never inferred from document content.
package comparator

import (
	"fmt"
	"strings"

	"github.com/diagram-converter/backend/internal/models"
	"github.com/diagram-converter/backend/internal/xmltree"
)

// Dialect selects which identifier attribute convention applies.
type Dialect string

const (
	DialectSource Dialect = "source"
	DialectOutput Dialect = "output"
)

// ErrNoMatch is returned when no element identifier contains the substring.
var ErrNoMatch = fmt.Errorf("no matching shape found")

// Match is one candidate element: its identifier and the requested
// attribute's value ("" with Found=false when the attribute is absent).
type Match struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Found bool   `json:"found"`
}

// Comparator resolves identifier candidates from check rules.
type Comparator struct {
	rules *models.CheckRules
}

// New creates a Comparator. A nil rules argument uses the defaults.
func New(rules *models.CheckRules) *Comparator {
	if rules == nil {
		rules = models.DefaultCheckRules()
	}
	return &Comparator{rules: rules}
}

// ParseLenient parses a document for comparison. Output-dialect files are
// often multi-rooted, so the strict parser does not apply here.
func ParseLenient(path string) (*xmltree.Node, error) {
	return xmltree.ParseLenient(path)
}

// idCandidates returns the identifier attribute names for a dialect in
// priority order.
func (c *Comparator) idCandidates(d Dialect) []string {
	if d == DialectOutput {
		return c.rules.OutputIDAttrs
	}
	return c.rules.SourceIDAttrs
}

// FindMatches scans every element whose identifier attribute contains
// shapeID and records the value of the requested attribute.
func (c *Comparator) FindMatches(root *xmltree.Node, shapeID, attribute string, dialect Dialect) []Match {
	if root == nil {
		return nil
	}

	candidates := c.idCandidates(dialect)
	var matches []Match
	root.Walk(func(n *xmltree.Node) bool {
		var id string
		for _, cand := range candidates {
			if v, ok := n.Attr(cand); ok && v != "" {
				id = v
				break
			}
		}
		if id != "" && strings.Contains(id, shapeID) {
			value, found := n.Attr(attribute)
			matches = append(matches, Match{ID: id, Value: value, Found: found})
		}
		return true
	})
	return matches
}

// SelectMatch resolves a candidate list to one match. A single candidate is
// used directly regardless of ordinal; multiple candidates require a valid
// 1-based ordinal. The retry-until-valid loop belongs to the caller.
func SelectMatch(matches []Match, ordinal int) (Match, error) {
	switch {
	case len(matches) == 0:
		return Match{}, ErrNoMatch
	case len(matches) == 1:
		return matches[0], nil
	case ordinal < 1 || ordinal > len(matches):
		return Match{}, fmt.Errorf("invalid selection %d: expected 1-%d", ordinal, len(matches))
	default:
		return matches[ordinal-1], nil
	}
}

// CompareValues compares the two documents' values for the same attribute.
// A missing value on either side makes the comparison incomplete.
func CompareValues(source, output Match, shapeID, attribute string) models.ComparisonResult {
	result := models.ComparisonResult{
		Attribute:   attribute,
		ShapeID:     shapeID,
		SourceValue: source.Value,
		OutputValue: output.Value,
	}
	switch {
	case !source.Found || !output.Found:
		result.Verdict = models.ComparisonIncomplete
	case source.Value == output.Value:
		result.Verdict = models.ComparisonMatch
	default:
		result.Verdict = models.ComparisonMismatch
	}
	return result
}
