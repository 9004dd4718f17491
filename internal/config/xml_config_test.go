package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "DiagramConverter.config.xml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file not created: %v", err)
	}
	if cfg.Server.Port != 8089 {
		t.Errorf("Port = %d, want 8089", cfg.Server.Port)
	}
	if cfg.Settings.FileFormat != "xml" {
		t.Errorf("FileFormat = %s, want xml", cfg.Settings.FileFormat)
	}
	if cfg.Checks.ProgressInterval != 100 {
		t.Errorf("ProgressInterval = %d, want 100", cfg.Checks.ProgressInterval)
	}
	if cfg.UDP.Enabled {
		t.Error("UDP should be disabled by default")
	}

	// Relative folders are resolved against the config file's directory.
	if cfg.Settings.InputFolder != filepath.Join(dir, "input") {
		t.Errorf("InputFolder = %s", cfg.Settings.InputFolder)
	}
	if cfg.Checks.RulesFile != filepath.Join(dir, "check_rules.yaml") {
		t.Errorf("RulesFile = %s", cfg.Checks.RulesFile)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "DiagramConverter.config.xml")
	content := `<?xml version="1.0" encoding="UTF-8"?>
<DiagramConverter>
  <Settings>
    <InputFolder>./diagrams</InputFolder>
    <OutputFolder>./markup</OutputFolder>
    <FileFormat>xml</FileFormat>
    <DataFolder>./data</DataFolder>
  </Settings>
  <Server>
    <Port>9090</Port>
    <BindAddress>127.0.0.1</BindAddress>
    <BodyLimit>16M</BodyLimit>
  </Server>
  <Checks>
    <RulesFile>./rules.yaml</RulesFile>
    <ProgressInterval>50</ProgressInterval>
  </Checks>
  <UDP>
    <Enabled>true</Enabled>
    <Host>10.0.0.1</Host>
    <Port>6000</Port>
  </UDP>
</DiagramConverter>`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GetServerAddr() != "127.0.0.1:9090" {
		t.Errorf("GetServerAddr = %s", cfg.GetServerAddr())
	}
	if cfg.GetUDPAddr() != "10.0.0.1:6000" {
		t.Errorf("GetUDPAddr = %s", cfg.GetUDPAddr())
	}
	if cfg.Checks.ProgressInterval != 50 {
		t.Errorf("ProgressInterval = %d, want 50", cfg.Checks.ProgressInterval)
	}
	if cfg.Settings.InputFolder != filepath.Join(dir, "diagrams") {
		t.Errorf("InputFolder = %s", cfg.Settings.InputFolder)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "DiagramConverter.config.xml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "7777")
	t.Setenv("INPUT_DIR", "/abs/input")
	t.Setenv("DATA_DIR", "/abs/data")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 7777 {
		t.Errorf("Port = %d, want 7777", cfg.Server.Port)
	}
	if cfg.Settings.InputFolder != "/abs/input" {
		t.Errorf("InputFolder = %s", cfg.Settings.InputFolder)
	}
	if cfg.Settings.DataFolder != "/abs/data" {
		t.Errorf("DataFolder = %s", cfg.Settings.DataFolder)
	}
	// Non-overridden folders still resolve relative to the config dir.
	if cfg.Settings.OutputFolder != filepath.Join(dir, "output") {
		t.Errorf("OutputFolder = %s", cfg.Settings.OutputFolder)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.xml")

	cfg := DefaultConfig()
	cfg.Server.Port = 12345
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<Port>12345</Port>") {
		t.Errorf("port not serialized:\n%s", data)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Server.Port != 12345 {
		t.Errorf("Port = %d after round trip", loaded.Server.Port)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.resolvePaths(dir)

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, d := range []string{cfg.Settings.InputFolder, cfg.Settings.OutputFolder, cfg.Settings.DataFolder} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %s not created: %v", d, err)
		}
	}
}
