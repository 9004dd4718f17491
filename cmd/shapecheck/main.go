// Command shapecheck interactively compares one attribute of a shape
// between a source document and its generated output. The prompt/retry
// loops live here; match selection itself is a pure library call.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/diagram-converter/backend/internal/comparator"
	"github.com/diagram-converter/backend/internal/models"
)

func main() {
	in := bufio.NewReader(os.Stdin)

	shapeID := prompt(in, "Enter the full or partial shape ID (e.g., SKN689Tc): ")
	attribute := prompt(in, "Enter the attribute to check (e.g., Canvas.Left): ")
	sourcePath := prompt(in, "Enter the path to the source XML file: ")
	outputPath := prompt(in, "Enter the path to the generated XAML file: ")

	comp := comparator.New(nil)

	fmt.Println("\nParsing source file...")
	sourcePick := pickFrom(in, comp, sourcePath, shapeID, attribute, comparator.DialectSource)

	fmt.Println("\nParsing output file...")
	outputPick := pickFrom(in, comp, outputPath, shapeID, attribute, comparator.DialectOutput)

	result := comparator.CompareValues(sourcePick, outputPick, shapeID, attribute)
	printResult(result)
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

// pickFrom finds the matches in one document and resolves ambiguity by
// asking for an ordinal until the selection is valid. A document that does
// not parse, or has no match, yields an empty (not-found) pick.
func pickFrom(in *bufio.Reader, comp *comparator.Comparator, path, shapeID, attribute string, dialect comparator.Dialect) comparator.Match {
	root, err := comparator.ParseLenient(path)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		return comparator.Match{}
	}

	matches := comp.FindMatches(root, shapeID, attribute, dialect)
	switch len(matches) {
	case 0:
		fmt.Println("No matches found.")
		return comparator.Match{}
	case 1:
		m := matches[0]
		fmt.Printf("One match found: Shape ID = '%s', Attribute '%s' = '%s'\n", m.ID, attribute, m.Value)
		return m
	}

	fmt.Printf("Multiple matches found for shape ID containing '%s':\n", shapeID)
	for i, m := range matches {
		fmt.Printf(" [%d] Shape ID: %s, Attribute '%s': %s\n", i+1, m.ID, attribute, m.Value)
	}

	for {
		choice := prompt(in, fmt.Sprintf("Enter the number (1-%d) of the shape to compare: ", len(matches)))
		ordinal, err := strconv.Atoi(choice)
		if err == nil {
			if m, err := comparator.SelectMatch(matches, ordinal); err == nil {
				fmt.Printf("Selected shape ID: %s\n", m.ID)
				return m
			}
		}
		fmt.Println("Invalid choice. Try again.")
	}
}

func printResult(result models.ComparisonResult) {
	fmt.Println("\nComparison Result:")
	switch result.Verdict {
	case models.ComparisonIncomplete:
		fmt.Println("Comparison failed. One or both values are missing.")
	case models.ComparisonMatch:
		fmt.Printf("Attribute '%s' matches for shape '%s': %s\n",
			result.Attribute, result.ShapeID, result.SourceValue)
	default:
		fmt.Printf("Mismatch for attribute '%s' in shape '%s':\n", result.Attribute, result.ShapeID)
		fmt.Printf("  Source: %s\n", result.SourceValue)
		fmt.Printf("  Output: %s\n", result.OutputValue)
	}
}
