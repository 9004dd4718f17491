// Package validator checks that a generated output document still contains
// every tag and attribute value of its source document. This is a
// set-membership check, not a structural comparison: it detects absence
// only, never duplication, misplacement, or count mismatches.
package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diagram-converter/backend/internal/models"
	"github.com/diagram-converter/backend/internal/xmltree"
)

// Validator compares source documents against their generated outputs.
type Validator struct {
	rules *models.CheckRules
}

// New creates a Validator. A nil rules argument uses the defaults.
func New(rules *models.CheckRules) *Validator {
	if rules == nil {
		rules = models.DefaultCheckRules()
	}
	return &Validator{rules: rules}
}

// ValidatePair validates one source/output file pair. A parse failure on
// either file is returned as an error and aborts this pair only.
func (v *Validator) ValidatePair(sourcePath, outputPath string) (*models.ValidationReport, error) {
	source, err := xmltree.ParseFile(sourcePath)
	if err != nil {
		return nil, err
	}
	output, err := xmltree.ParseFile(outputPath)
	if err != nil {
		return nil, err
	}

	report := v.Validate(source, output)
	report.SourcePath = sourcePath
	report.OutputPath = outputPath
	return report, nil
}

// Validate collects every tag name and stringified attribute value from the
// output tree, then reports each source element whose tag or attribute
// value is absent from those sets. Elements whose tag matches a skip tag
// (case-insensitively, "root" by default) are ignored. Neither document is
// mutated.
func (v *Validator) Validate(source, output *xmltree.Node) *models.ValidationReport {
	outputTags := make(map[string]struct{})
	outputValues := make(map[string]struct{})
	output.Walk(func(n *xmltree.Node) bool {
		outputTags[n.Tag()] = struct{}{}
		for _, a := range n.Attrs {
			outputValues[a.Value] = struct{}{}
		}
		return true
	})

	report := &models.ValidationReport{}
	interval := v.rules.ProgressInterval
	source.Walk(func(n *xmltree.Node) bool {
		if v.skip(n.Tag()) {
			return true
		}

		report.Checked++
		if interval > 0 && report.Checked%interval == 0 {
			fmt.Printf("[Validate]   ...checked %d elements\n", report.Checked)
		}

		if _, ok := outputTags[n.Tag()]; !ok {
			report.Mismatches = append(report.Mismatches, models.Mismatch{
				Kind: models.MismatchMissingTag,
				Tag:  n.Tag(),
			})
		}
		for _, a := range n.Attrs {
			if _, ok := outputValues[a.Value]; !ok {
				report.Mismatches = append(report.Mismatches, models.Mismatch{
					Kind:      models.MismatchMissingValue,
					Tag:       n.Tag(),
					Attribute: xmltree.AttrKey(a),
					Value:     a.Value,
				})
			}
		}
		return true
	})

	return report
}

func (v *Validator) skip(tag string) bool {
	for _, s := range v.rules.SkipTags {
		if strings.EqualFold(tag, s) {
			return true
		}
	}
	return false
}

// ValidateAll validates every input file against the same-basename output
// file. Missing outputs and per-pair errors are logged and the batch
// continues; the reports for pairs that validated (cleanly or not) are
// returned in input order.
func (v *Validator) ValidateAll(inputDir, outputDir, fileFormat string) []*models.ValidationReport {
	pattern := filepath.Join(inputDir, "*."+strings.TrimLeft(fileFormat, "*."))
	sources, err := filepath.Glob(pattern)
	if err != nil || len(sources) == 0 {
		fmt.Printf("[Validate] No files matching %s to validate\n", pattern)
		return nil
	}

	var reports []*models.ValidationReport
	for _, src := range sources {
		base := filepath.Base(src)
		out := filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".xaml")
		if _, err := os.Stat(out); err != nil {
			fmt.Printf("[Validate] Warning: output file for %s not found: %s\n", base, out)
			continue
		}

		fmt.Printf("[Validate] Validating %s against %s\n", src, out)
		report, err := v.ValidatePair(src, out)
		if err != nil {
			fmt.Printf("[Validate] Error for %s: %v\n", base, err)
			continue
		}

		if report.OK() {
			fmt.Printf("[Validate] Validation successful for %s\n", src)
		} else {
			fmt.Printf("[Validate] Validation failed for %s:\n", src)
			for _, m := range report.Mismatches {
				fmt.Printf("[Validate]   - %s\n", m)
			}
		}
		reports = append(reports, report)
	}
	return reports
}
