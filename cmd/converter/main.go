// Command converter runs the batch pipeline: every source document in the
// input folder is converted to canvas markup, written next to its base name
// in the output folder, and validated against its source.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diagram-converter/backend/internal/comparator"
	"github.com/diagram-converter/backend/internal/config"
	"github.com/diagram-converter/backend/internal/events"
	"github.com/diagram-converter/backend/internal/pipeline"
)

func main() {
	// Get the executable's directory for config resolution
	exePath, err := os.Executable()
	if err != nil {
		fmt.Printf("Failed to get executable path: %v\n", err)
		os.Exit(1)
	}
	exeDir := filepath.Dir(exePath)

	// Load XML configuration
	configPath := filepath.Join(exeDir, "DiagramConverter.config.xml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Printf("Failed to create directories: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Configuration loaded. Input folder: %s, Output folder: %s, File format: %s\n",
		cfg.Settings.InputFolder, cfg.Settings.OutputFolder, cfg.Settings.FileFormat)

	// Completion-event demo: listener and sender run as daemon goroutines.
	if cfg.UDP.Enabled {
		go func() {
			if err := events.Listen(cfg.GetUDPAddr()); err != nil {
				fmt.Printf("[UDP] Listener stopped: %v\n", err)
			}
		}()
		go func() {
			interval := time.Duration(cfg.UDP.SendIntervalSeconds) * time.Second
			if err := events.Send(cfg.GetUDPAddr(), interval); err != nil {
				fmt.Printf("[UDP] Sender stopped: %v\n", err)
			}
		}()
	}

	// Check rules are optional; defaults apply when the file is absent.
	rules, err := comparator.LoadCheckRules(cfg.Checks.RulesFile)
	if err != nil {
		fmt.Printf("Warning: failed to load check rules (%v), using defaults\n", err)
		rules = nil
	}

	summary, err := pipeline.Run(cfg.Settings.InputFolder, cfg.Settings.OutputFolder,
		cfg.Settings.FileFormat, rules)
	if err != nil {
		fmt.Printf("Conversion run failed: %v\n", err)
		os.Exit(1)
	}

	if summary.FilesFound == 0 {
		fmt.Println("No files to process.")
		return
	}

	fmt.Printf("\nFiles: %d found, %d saved, %d without shapes, %d failed\n",
		summary.FilesFound, summary.Saved, summary.Skipped, summary.Failed)
	fmt.Printf("Execution Time: %.2f seconds\n", summary.Elapsed.Seconds())
}
