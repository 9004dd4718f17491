// Package pipeline drives the batch conversion run: scan the input
// directory, convert each document, write the generated markup, then
// validate every source/output pair.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diagram-converter/backend/internal/converter"
	"github.com/diagram-converter/backend/internal/models"
	"github.com/diagram-converter/backend/internal/validator"
)

// Summary reports the outcome of one batch run.
type Summary struct {
	FilesFound int
	Saved      int
	Skipped    int // files with zero recognized shapes
	Failed     int // files that did not parse
	Reports    []*models.ValidationReport
	Elapsed    time.Duration
}

// GetFiles lists the files in inputDir matching the configured format
// (e.g. "xml"). Leading "*." noise in the format is tolerated.
func GetFiles(inputDir, fileFormat string) ([]string, error) {
	pattern := filepath.Join(inputDir, "*."+strings.TrimLeft(fileFormat, "*."))
	return filepath.Glob(pattern)
}

// OutputPath returns the output file path for a source file: same base
// name, ".xaml" extension, under outputDir.
func OutputPath(outputDir, sourcePath string) string {
	base := filepath.Base(sourcePath)
	return filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".xaml")
}

// ConvertTo converts one source document and writes the newline-joined
// markup elements to outPath. Documents with zero recognized shapes produce
// no output file and return (false, nil).
func ConvertTo(sourcePath, outPath string) (bool, error) {
	result, err := converter.ConvertFile(sourcePath)
	if err != nil {
		return false, err
	}
	if len(result.Elements) == 0 {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return false, fmt.Errorf("creating output directory: %w", err)
	}
	content := strings.Join(result.Elements, "\n")
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", outPath, err)
	}
	return true, nil
}

// Run executes the full batch: convert everything in inputDir, then
// validate all pairs. Per-file failures are logged and the batch continues.
func Run(inputDir, outputDir, fileFormat string, rules *models.CheckRules) (*Summary, error) {
	start := time.Now()
	summary := &Summary{}

	files, err := GetFiles(inputDir, fileFormat)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", inputDir, err)
	}
	summary.FilesFound = len(files)

	if len(files) == 0 {
		fmt.Printf("[Convert] No files to process in %s\n", inputDir)
		summary.Elapsed = time.Since(start)
		return summary, nil
	}

	fmt.Println("Files found:")
	for _, f := range files {
		fmt.Println(f)
	}

	fmt.Println("\nOutput files:")
	for _, f := range files {
		fmt.Printf("[Convert] Processing file: %s\n", f)
		outPath := OutputPath(outputDir, f)

		saved, err := ConvertTo(f, outPath)
		switch {
		case err != nil:
			fmt.Printf("[Convert] Error converting %s: %v\n", f, err)
			summary.Failed++
		case saved:
			fmt.Printf("Saved to %s\n", outPath)
			summary.Saved++
		default:
			fmt.Printf("[Convert] Warning: no shapes found in %s\n", f)
			summary.Skipped++
		}
	}

	fmt.Println("\nValidating generated files...")
	summary.Reports = validator.New(rules).ValidateAll(inputDir, outputDir, fileFormat)

	summary.Elapsed = time.Since(start)
	return summary, nil
}
