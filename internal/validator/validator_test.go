package validator

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

func TestValidateCleanPair(t *testing.T) {
	source := mustParse(t, `<Root><Shape id="a1"><Label>text</Label></Shape></Root>`)
	output := mustParse(t, `<Canvas><Shape id="a1" extra="x"/><Label/></Canvas>`)

	report := New(nil).Validate(source, output)
	if !report.OK() {
		t.Fatalf("expected clean report, got %v", report.Mismatches)
	}
	// Root is skipped, Shape and Label are checked.
	if report.Checked != 2 {
		t.Errorf("expected 2 checked elements, got %d", report.Checked)
	}
}

func TestValidateMissingTag(t *testing.T) {
	source := mustParse(t, `<Root><Shape/><Widget/></Root>`)
	output := mustParse(t, `<Canvas><Shape/></Canvas>`)

	report := New(nil).Validate(source, output)
	if len(report.Mismatches) != 1 {
		t.Fatalf("expected 1 mismatch, got %d", len(report.Mismatches))
	}
	m := report.Mismatches[0]
	if m.Kind != models.MismatchMissingTag || m.Tag != "Widget" {
		t.Errorf("unexpected mismatch: %+v", m)
	}
}

func TestValidateMissingValue(t *testing.T) {
	source := mustParse(t, `<Root><Shape id="a1" color="255"/></Root>`)
	output := mustParse(t, `<Canvas><Shape id="a1"/></Canvas>`)

	report := New(nil).Validate(source, output)
	if len(report.Mismatches) != 1 {
		t.Fatalf("expected 1 mismatch, got %d", len(report.Mismatches))
	}
	m := report.Mismatches[0]
	if m.Kind != models.MismatchMissingValue || m.Attribute != "color" || m.Value != "255" {
		t.Errorf("unexpected mismatch: %+v", m)
	}
}

func TestValidateValueMatchesAnywhereInOutput(t *testing.T) {
	// Set membership: the value may appear on an unrelated output element.
	source := mustParse(t, `<Root><Shape id="a1"/></Root>`)
	output := mustParse(t, `<Canvas><Other tag="a1"/><Shape/></Canvas>`)

	report := New(nil).Validate(source, output)
	if !report.OK() {
		t.Errorf("expected clean report, got %v", report.Mismatches)
	}
}

func TestValidateSkipTagsCaseInsensitive(t *testing.T) {
	source := mustParse(t, `<ROOT missing="nowhere"><Shape/></ROOT>`)
	output := mustParse(t, `<Canvas><Shape/></Canvas>`)

	report := New(nil).Validate(source, output)
	if !report.OK() {
		t.Errorf("ROOT should be skipped case-insensitively, got %v", report.Mismatches)
	}
	if report.Checked != 1 {
		t.Errorf("expected 1 checked element, got %d", report.Checked)
	}
}

func TestValidateCustomSkipTags(t *testing.T) {
	rules := models.DefaultCheckRules()
	rules.SkipTags = append(rules.SkipTags, "MetaData")

	source := mustParse(t, `<Root><MetaData secret="zzz"/><Shape/></Root>`)
	output := mustParse(t, `<Canvas><Shape/></Canvas>`)

	report := New(rules).Validate(source, output)
	if !report.OK() {
		t.Errorf("MetaData should be skipped, got %v", report.Mismatches)
	}
}

func TestValidatePairParseError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.xml")
	out := filepath.Join(dir, "out.xaml")
	if err := os.WriteFile(src, []byte(`<Root><Shape/></Root>`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(out, []byte(`<A/><B/>`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(nil).ValidatePair(src, out); err == nil {
		t.Fatal("expected parse error for multi-rooted output")
	}
}

func TestValidateAllSkipsMissingOutputs(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	write := func(dir, name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write(inputDir, "a.xml", `<Root><Shape id="s1"/></Root>`)
	write(inputDir, "b.xml", `<Root><Shape id="s2"/></Root>`)
	write(outputDir, "a.xaml", `<Canvas><Shape id="s1"/></Canvas>`)

	reports := New(nil).ValidateAll(inputDir, outputDir, "xml")
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	if !reports[0].OK() {
		t.Errorf("expected clean report for a.xml, got %v", reports[0].Mismatches)
	}
	if filepath.Base(reports[0].SourcePath) != "a.xml" {
		t.Errorf("unexpected source path: %s", reports[0].SourcePath)
	}
}

func TestValidateAllNoInputs(t *testing.T) {
	if reports := New(nil).ValidateAll(t.TempDir(), t.TempDir(), "xml"); reports != nil {
		t.Errorf("expected no reports, got %d", len(reports))
	}
}
