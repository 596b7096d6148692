// Package config provides configuration management for the gfpoly CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gfpoly/gfpoly/internal/validation"
	"github.com/gfpoly/gfpoly/pkg/gf2"
)

// Config represents the persisted tool configuration
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
	Export   ExportConfig    `json:"export"`
}

// DefaultSettings contains default values for common operations
type DefaultSettings struct {
	Format        string `json:"format"`          // bits, hex, poly
	MaxDegree     int    `json:"max_degree"`      // Cap for check/search candidates
	MaxScanDegree int    `json:"max_scan_degree"` // Cap for whole-degree scans
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor bool `json:"use_color"` // Enable colored output
}

// ExportConfig contains table export settings
type ExportConfig struct {
	DefaultPath string `json:"default_path"` // Directory for generated table files
	GoPackage   string `json:"go_package"`   // Package clause in generated Go files
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
}

// NewConfigManager creates a new configuration manager
func NewConfigManager() (*ConfigManager, error) {
	cm := &ConfigManager{}

	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	cm.configPath = configPath

	// Load or create default config
	if err := cm.LoadConfig(); err != nil {
		cm.config = DefaultConfig()
		if err := cm.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return cm, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Format:        "bits",
			MaxDegree:     24,
			MaxScanDegree: 14,
		},
		UI: UIConfig{
			UseColor: true,
		},
		Export: ExportConfig{
			DefaultPath: "",
			GoPackage:   "gftables",
		},
	}
}

// LoadConfig loads the configuration from disk
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	config.normalize()
	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	config.normalize()
	cm.config = config
}

// Path returns the resolved configuration file path
func (cm *ConfigManager) Path() string {
	return cm.configPath
}

// Set updates a single setting addressed by its dotted key and persists the
// result. Values are validated before anything is written.
func (cm *ConfigManager) Set(key, value string) error {
	switch key {
	case "defaults.format":
		if !validFormat(value) {
			return fmt.Errorf("format must be bits, hex, or poly (got %q)", value)
		}
		cm.config.Defaults.Format = value

	case "defaults.max_degree":
		degree, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_degree must be a number: %w", err)
		}
		if err := validation.ValidateDegree(degree, gf2.MaxDegree); err != nil {
			return err
		}
		cm.config.Defaults.MaxDegree = degree

	case "defaults.max_scan_degree":
		degree, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_scan_degree must be a number: %w", err)
		}
		if err := validation.ValidateScanDegree(degree, validation.MaxScanDegree); err != nil {
			return err
		}
		cm.config.Defaults.MaxScanDegree = degree

	case "ui.use_color":
		useColor, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("use_color must be true or false: %w", err)
		}
		cm.config.UI.UseColor = useColor

	case "export.default_path":
		cm.config.Export.DefaultPath = value

	case "export.go_package":
		if value == "" {
			return fmt.Errorf("go_package cannot be empty")
		}
		cm.config.Export.GoPackage = value

	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	return cm.SaveConfig()
}

// normalize pulls out-of-range values back to the defaults, so a hand-edited
// config cannot push the tool past its representation limits.
func (c *Config) normalize() {
	defaults := DefaultConfig()

	if !validFormat(c.Defaults.Format) {
		c.Defaults.Format = defaults.Defaults.Format
	}
	if c.Defaults.MaxDegree < 2 || c.Defaults.MaxDegree > gf2.MaxDegree {
		c.Defaults.MaxDegree = defaults.Defaults.MaxDegree
	}
	if c.Defaults.MaxScanDegree < 2 || c.Defaults.MaxScanDegree > validation.MaxScanDegree {
		c.Defaults.MaxScanDegree = defaults.Defaults.MaxScanDegree
	}
	if c.Export.GoPackage == "" {
		c.Export.GoPackage = defaults.Export.GoPackage
	}
}

func validFormat(format string) bool {
	switch format {
	case "bits", "hex", "poly":
		return true
	}
	return false
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	// Check for custom config path
	if customPath := os.Getenv("GFPOLY_CONFIG"); customPath != "" {
		return customPath, nil
	}

	// Use XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "gfpoly", "config.json"), nil
	}

	// Default to ~/.config/gfpoly/config.json
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "gfpoly", "config.json"), nil
}
