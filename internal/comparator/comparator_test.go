package comparator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diagram-converter/backend/internal/models"
	"github.com/diagram-converter/backend/internal/xmltree"
)

func mustParse(t *testing.T, content string) *xmltree.Node {
	t.Helper()
	root, err := xmltree.Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return root
}

const sourceDoc = `<Root>
  <Shape id="pump-A1" color="255"/>
  <Shape id="pump-A2" color="65280"/>
  <Shape Name="valve-B1" color="16711680"/>
  <Shape id="tank-C1"/>
</Root>`

const outputDoc = `<Canvas>
  <Rectangle x:Name="pump-A1-rect-0-1" Fill="#0000FF"/>
  <Rectangle Name="pump-A2-rect-0-2" Fill="#00FF00"/>
  <Polygon x:Name="valve-B1-poly-0-3" Fill="#FF0000"/>
</Canvas>`

func TestFindMatchesSourceDialect(t *testing.T) {
	root := mustParse(t, sourceDoc)
	c := New(nil)

	matches := c.FindMatches(root, "pump", "color", DialectSource)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].ID != "pump-A1" || matches[0].Value != "255" || !matches[0].Found {
		t.Errorf("unexpected first match: %+v", matches[0])
	}
	if matches[1].ID != "pump-A2" || matches[1].Value != "65280" {
		t.Errorf("unexpected second match: %+v", matches[1])
	}
}

func TestFindMatchesFallbackIDAttr(t *testing.T) {
	root := mustParse(t, sourceDoc)
	c := New(nil)

	// valve-B1 carries Name instead of id.
	matches := c.FindMatches(root, "valve", "color", DialectSource)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].ID != "valve-B1" || matches[0].Value != "16711680" {
		t.Errorf("unexpected match: %+v", matches[0])
	}
}

func TestFindMatchesOutputDialect(t *testing.T) {
	root := mustParse(t, outputDoc)
	c := New(nil)

	matches := c.FindMatches(root, "pump", "Fill", DialectOutput)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].ID != "pump-A1-rect-0-1" || matches[0].Value != "#0000FF" {
		t.Errorf("unexpected x:Name match: %+v", matches[0])
	}
	if matches[1].ID != "pump-A2-rect-0-2" || matches[1].Value != "#00FF00" {
		t.Errorf("unexpected Name match: %+v", matches[1])
	}
}

func TestFindMatchesAbsentAttribute(t *testing.T) {
	root := mustParse(t, sourceDoc)
	c := New(nil)

	matches := c.FindMatches(root, "tank", "color", DialectSource)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Found || matches[0].Value != "" {
		t.Errorf("expected absent attribute, got %+v", matches[0])
	}
}

func TestFindMatchesNone(t *testing.T) {
	root := mustParse(t, sourceDoc)
	if matches := New(nil).FindMatches(root, "nonexistent", "color", DialectSource); len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestSelectMatch(t *testing.T) {
	two := []Match{{ID: "a"}, {ID: "b"}}

	if _, err := SelectMatch(nil, 1); err != ErrNoMatch {
		t.Errorf("expected ErrNoMatch, got %v", err)
	}

	m, err := SelectMatch([]Match{{ID: "only"}}, 99)
	if err != nil || m.ID != "only" {
		t.Errorf("single match should ignore ordinal: %+v, %v", m, err)
	}

	if _, err := SelectMatch(two, 0); err == nil {
		t.Error("expected error for ordinal 0")
	}
	if _, err := SelectMatch(two, 3); err == nil {
		t.Error("expected error for out-of-range ordinal")
	}

	m, err = SelectMatch(two, 2)
	if err != nil || m.ID != "b" {
		t.Errorf("unexpected selection: %+v, %v", m, err)
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name    string
		source  Match
		output  Match
		verdict models.ComparisonVerdict
	}{
		{"equal", Match{Value: "255", Found: true}, Match{Value: "255", Found: true}, models.ComparisonMatch},
		{"different", Match{Value: "255", Found: true}, Match{Value: "#0000FF", Found: true}, models.ComparisonMismatch},
		{"source missing", Match{}, Match{Value: "x", Found: true}, models.ComparisonIncomplete},
		{"output missing", Match{Value: "x", Found: true}, Match{}, models.ComparisonIncomplete},
		{"both missing", Match{}, Match{}, models.ComparisonIncomplete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompareValues(tt.source, tt.output, "pump-A1", "color")
			if result.Verdict != tt.verdict {
				t.Errorf("expected %s, got %s", tt.verdict, result.Verdict)
			}
			if result.ShapeID != "pump-A1" || result.Attribute != "color" {
				t.Errorf("identity fields not carried: %+v", result)
			}
		})
	}
}

func TestLoadCheckRulesMissingFile(t *testing.T) {
	rules, err := LoadCheckRules(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	def := models.DefaultCheckRules()
	if len(rules.SourceIDAttrs) != len(def.SourceIDAttrs) || rules.ProgressInterval != def.ProgressInterval {
		t.Errorf("expected defaults, got %+v", rules)
	}
}

func TestLoadCheckRulesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "check_rules.yaml")
	content := `source_id_attrs:
  - ObjectID
skip_tags:
  - root
  - MetaData
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadCheckRules(path)
	if err != nil {
		t.Fatalf("LoadCheckRules failed: %v", err)
	}
	if len(rules.SourceIDAttrs) != 1 || rules.SourceIDAttrs[0] != "ObjectID" {
		t.Errorf("source_id_attrs not overridden: %v", rules.SourceIDAttrs)
	}
	if len(rules.SkipTags) != 2 {
		t.Errorf("skip_tags not overridden: %v", rules.SkipTags)
	}
	// Omitted fields keep their defaults.
	if rules.ProgressInterval != 100 {
		t.Errorf("progress interval should stay default, got %d", rules.ProgressInterval)
	}
	if len(rules.OutputIDAttrs) != 2 {
		t.Errorf("output_id_attrs should stay default, got %v", rules.OutputIDAttrs)
	}
}
