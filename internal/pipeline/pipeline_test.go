package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const pumpDoc = `<Root>
  <ViewObject>
    <SysName>Pump</SysName>
    <SymbolKey>7</SymbolKey>
    <SHAPEARRAY>
      <ShapeObject>
        <SHAPE>
          <MetaData><ClassName>CRectangle</ClassName></MetaData>
          <RectShape>
            <Left>0</Left><Top>0</Top><Right>40</Right><Bottom>20</Bottom>
          </RectShape>
        </SHAPE>
      </ShapeObject>
    </SHAPEARRAY>
  </ViewObject>
</Root>`

const emptyDoc = `<Root>
  <ViewObject>
    <SysName>Empty</SysName>
    <SHAPEARRAY/>
  </ViewObject>
</Root>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("/out", "/in/diagram.xml")
	want := filepath.Join("/out", "diagram.xaml")
	if got != want {
		t.Errorf("OutputPath = %s, want %s", got, want)
	}
}

func TestGetFilesToleratesFormatNoise(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.xml", pumpDoc)
	writeFile(t, dir, "b.txt", "not xml")

	for _, format := range []string{"xml", "*.xml", ".xml"} {
		files, err := GetFiles(dir, format)
		if err != nil {
			t.Fatalf("GetFiles(%q) failed: %v", format, err)
		}
		if len(files) != 1 || filepath.Base(files[0]) != "a.xml" {
			t.Errorf("GetFiles(%q) = %v", format, files)
		}
	}
}

func TestConvertToWritesMarkup(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "pump.xml", pumpDoc)
	out := filepath.Join(dir, "generated", "pump.xaml")

	saved, err := ConvertTo(src, out)
	if err != nil {
		t.Fatalf("ConvertTo failed: %v", err)
	}
	if !saved {
		t.Fatal("expected file to be saved")
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `Name="Pump-rect-7-1"`) {
		t.Errorf("element name missing from output:\n%s", content)
	}
	if !strings.Contains(content, `Width="40"`) || !strings.Contains(content, `Height="20"`) {
		t.Errorf("geometry missing from output:\n%s", content)
	}
}

func TestConvertToSkipsEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "empty.xml", emptyDoc)
	out := filepath.Join(dir, "empty.xaml")

	saved, err := ConvertTo(src, out)
	if err != nil {
		t.Fatalf("ConvertTo failed: %v", err)
	}
	if saved {
		t.Error("expected no output for a shapeless document")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output file should not exist")
	}
}

func TestConvertToParseError(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "bad.xml", "<Root><unclosed>")

	if _, err := ConvertTo(src, filepath.Join(dir, "bad.xaml")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRunBatch(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeFile(t, inputDir, "pump.xml", pumpDoc)
	writeFile(t, inputDir, "empty.xml", emptyDoc)
	writeFile(t, inputDir, "bad.xml", "<Root><unclosed>")

	summary, err := Run(inputDir, outputDir, "xml", nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.FilesFound != 3 {
		t.Errorf("FilesFound = %d, want 3", summary.FilesFound)
	}
	if summary.Saved != 1 {
		t.Errorf("Saved = %d, want 1", summary.Saved)
	}
	if summary.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", summary.Skipped)
	}
	if summary.Failed != 1 {
		t.Errorf("Failed = %d, want 1", summary.Failed)
	}

	// Only the pump pair has an output to validate against.
	if len(summary.Reports) != 1 {
		t.Fatalf("expected 1 validation report, got %d", len(summary.Reports))
	}
	if filepath.Base(summary.Reports[0].SourcePath) != "pump.xml" {
		t.Errorf("unexpected report source: %s", summary.Reports[0].SourcePath)
	}
}

func TestRunEmptyInputDir(t *testing.T) {
	summary, err := Run(t.TempDir(), t.TempDir(), "xml", nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.FilesFound != 0 || summary.Saved != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}
