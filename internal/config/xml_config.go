// Package config provides XML-based configuration management for the
// converter and its service mode.
package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// AppConfig represents the root XML configuration structure
type AppConfig struct {
	XMLName xml.Name `xml:"DiagramConverter"`

	// Conversion settings
	Settings SettingsConfig `xml:"Settings"`

	// HTTP server configuration (service mode)
	Server ServerConfig `xml:"Server"`

	// Validation/comparison check options
	Checks ChecksConfig `xml:"Checks"`

	// UDP completion-event demo
	UDP UDPConfig `xml:"UDP"`
}

// SettingsConfig contains the batch conversion settings.
type SettingsConfig struct {
	InputFolder  string `xml:"InputFolder"`
	OutputFolder string `xml:"OutputFolder"`
	FileFormat   string `xml:"FileFormat"` // input extension, e.g. "xml"
	DataFolder   string `xml:"DataFolder"` // uploads in service mode
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port         int    `xml:"Port"`
	BindAddress  string `xml:"BindAddress"`
	EnableCORS   bool   `xml:"EnableCORS"`
	AllowOrigins string `xml:"AllowOrigins"`
	ReadTimeout  int    `xml:"ReadTimeoutSeconds"`
	WriteTimeout int    `xml:"WriteTimeoutSeconds"`
	IdleTimeout  int    `xml:"IdleTimeoutSeconds"`
	BodyLimit    string `xml:"BodyLimit"`
}

// ChecksConfig contains validator/comparator settings.
type ChecksConfig struct {
	RulesFile            string `xml:"RulesFile"` // check-rules YAML path
	ProgressInterval     int    `xml:"ProgressInterval"`
	EnableRequestLogging bool   `xml:"EnableRequestLogging"`
	JobTimeoutMinutes    int    `xml:"JobTimeoutMinutes"`
	CleanupIntervalMin   int    `xml:"CleanupIntervalMinutes"`
}

// UDPConfig contains the completion-event listener/sender settings.
type UDPConfig struct {
	Enabled             bool   `xml:"Enabled"`
	Host                string `xml:"Host"`
	Port                int    `xml:"Port"`
	SendIntervalSeconds int    `xml:"SendIntervalSeconds"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Settings: SettingsConfig{
			InputFolder:  "./input",
			OutputFolder: "./output",
			FileFormat:   "xml",
			DataFolder:   "./data",
		},
		Server: ServerConfig{
			Port:         8089,
			BindAddress:  "0.0.0.0",
			EnableCORS:   true,
			AllowOrigins: "*",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  120,
			BodyLimit:    "32M",
		},
		Checks: ChecksConfig{
			RulesFile:            "./check_rules.yaml",
			ProgressInterval:     100,
			EnableRequestLogging: true,
			JobTimeoutMinutes:    30,
			CleanupIntervalMin:   5,
		},
		UDP: UDPConfig{
			Enabled:             false,
			Host:                "127.0.0.1",
			Port:                5005,
			SendIntervalSeconds: 2,
		},
	}
}

// LoadConfig loads configuration from XML file
func LoadConfig(configPath string) (*AppConfig, error) {
	// If file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := config.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		config.resolvePaths(filepath.Dir(configPath))
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &AppConfig{}
	if err := xml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides
	config.applyEnvironmentOverrides()

	// Resolve relative paths
	config.resolvePaths(filepath.Dir(configPath))

	return config, nil
}

// Save saves the configuration to XML file
func (c *AppConfig) Save(configPath string) error {
	output, err := xml.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(xml.Header + "\n<!-- Diagram Converter Configuration -->\n<!-- This file is auto-generated on first run -->\n\n")
	content := append(header, output...)

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnvironmentOverrides allows environment variables to override config values
func (c *AppConfig) applyEnvironmentOverrides() {
	// PORT override
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	// INPUT_DIR / OUTPUT_DIR overrides
	if inputDir := os.Getenv("INPUT_DIR"); inputDir != "" {
		c.Settings.InputFolder = inputDir
	}
	if outputDir := os.Getenv("OUTPUT_DIR"); outputDir != "" {
		c.Settings.OutputFolder = outputDir
	}

	// DATA_DIR override
	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		c.Settings.DataFolder = dataDir
	}
}

// resolvePaths converts relative paths to absolute based on config file location
func (c *AppConfig) resolvePaths(configDir string) {
	if !filepath.IsAbs(c.Settings.InputFolder) {
		c.Settings.InputFolder = filepath.Join(configDir, c.Settings.InputFolder)
	}
	if !filepath.IsAbs(c.Settings.OutputFolder) {
		c.Settings.OutputFolder = filepath.Join(configDir, c.Settings.OutputFolder)
	}
	if !filepath.IsAbs(c.Settings.DataFolder) {
		c.Settings.DataFolder = filepath.Join(configDir, c.Settings.DataFolder)
	}
	if !filepath.IsAbs(c.Checks.RulesFile) {
		c.Checks.RulesFile = filepath.Join(configDir, c.Checks.RulesFile)
	}
}

// GetDataDir returns the absolute data directory path
func (c *AppConfig) GetDataDir() string {
	return c.Settings.DataFolder
}

// GetServerAddr returns the server bind address
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

// GetUDPAddr returns the completion-event socket address.
func (c *AppConfig) GetUDPAddr() string {
	return fmt.Sprintf("%s:%d", c.UDP.Host, c.UDP.Port)
}

// EnsureDirectories creates all necessary directories
func (c *AppConfig) EnsureDirectories() error {
	dirs := []string{
		c.Settings.InputFolder,
		c.Settings.OutputFolder,
		c.Settings.DataFolder,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
