package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-genindex/internal/fileutil"
	"github.com/alnah/go-genindex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // Typical filesystem limit
	MaxTitleLength    = 200  // Page title
	MaxHeadingLength  = 200  // Marker heading line
	MaxURLLength      = 2048 // Browser limit
	MaxLinkTextLength = 100  // Reference link text
)

// Default values reproduce the tool's fixed no-config behavior.
const (
	DefaultInputPath  = "README.md"
	DefaultOutputPath = "index.html"
	DefaultPageTitle  = "eliben browser-tools"
	DefaultHeading    = "## List of tools"
	DefaultRepoURL    = "https://github.com/eliben/browser-tools"
	DefaultRepoText   = "the GitHub repository"
)

// Config holds all configuration for index generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Page   PageConfig   `yaml:"page"`
}

// InputConfig defines the markdown source.
type InputConfig struct {
	Path string `yaml:"path"` // Markdown file to read (default: README.md)
}

// OutputConfig defines the HTML destination.
type OutputConfig struct {
	Path string `yaml:"path"` // HTML file to write (default: index.html)
}

// PageConfig defines the fixed boilerplate of the rendered page.
type PageConfig struct {
	Title    string `yaml:"title"`    // <title> text
	Heading  string `yaml:"heading"`  // Marker heading; its text (sans markers) becomes the <h1>
	RepoURL  string `yaml:"repoUrl"`  // Project reference link target
	RepoText string `yaml:"repoText"` // Project reference link text
}

// Validate checks field lengths and basic shape.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.path", c.Input.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.title", c.Page.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.heading", c.Page.Heading, MaxHeadingLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.repoUrl", c.Page.RepoURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.repoText", c.Page.RepoText, MaxLinkTextLength); err != nil {
		return err
	}
	if c.Page.Heading != "" && !strings.HasPrefix(strings.TrimSpace(c.Page.Heading), "#") {
		return fmt.Errorf("page.heading: must be a markdown heading line, got %q", c.Page.Heading)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the fixed configuration the tool runs with when no
// config file is given: read README.md, write index.html, render the
// standard page boilerplate.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Path: DefaultInputPath},
		Output: OutputConfig{Path: DefaultOutputPath},
		Page: PageConfig{
			Title:    DefaultPageTitle,
			Heading:  DefaultHeading,
			RepoURL:  DefaultRepoURL,
			RepoText: DefaultRepoText,
		},
	}
}

// ApplyDefaults fills empty fields with the fixed defaults.
// Allows partial config files to override only what they name.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.Input.Path == "" {
		c.Input.Path = d.Input.Path
	}
	if c.Output.Path == "" {
		c.Output.Path = d.Output.Path
	}
	if c.Page.Title == "" {
		c.Page.Title = d.Page.Title
	}
	if c.Page.Heading == "" {
		c.Page.Heading = d.Page.Heading
	}
	if c.Page.RepoURL == "" {
		c.Page.RepoURL = d.Page.RepoURL
	}
	if c.Page.RepoText == "" {
		c.Page.RepoText = d.Page.RepoText
	}
}

// HeadingText returns the heading's display text with the leading markdown
// markers stripped, for use as the page <h1>.
func (c *Config) HeadingText() string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(c.Page.Heading), "#"))
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-genindex/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-genindex", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
