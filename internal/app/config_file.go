package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/sermonnotes/internal/render"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Input     string `yaml:"input" json:"input"`
	Output    string `yaml:"output" json:"output"`
	OutputDir string `yaml:"outputDir" json:"outputDir"`
	Format    string `yaml:"format" json:"format"`

	Render struct {
		PDFPageSize string `yaml:"pdfPageSize" json:"pdfPageSize"`
		TermWidth   int    `yaml:"termWidth" json:"termWidth"`
		Footer      bool   `yaml:"footer" json:"footer"`
	} `yaml:"render" json:"render"`

	RequireHeader bool `yaml:"requireHeader" json:"requireHeader"`
	Verbose       bool `yaml:"verbose" json:"verbose"`

	Cache struct {
		Dir         string        `yaml:"dir" json:"dir"`
		MaxAge      time.Duration `yaml:"maxAge" json:"maxAge"`
		Clear       bool          `yaml:"clear" json:"clear"`
		StrictPerms bool          `yaml:"strictPerms" json:"strictPerms"`
	} `yaml:"cache" json:"cache"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from fc into any field of cfg that is
// still zero. Defaults are applied afterwards by ApplyDefaults.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if cfg.OutputPath == "" && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.OutputDir == "" && fc.OutputDir != "" {
		cfg.OutputDir = fc.OutputDir
	}
	if cfg.Format == "" && fc.Format != "" {
		cfg.Format = fc.Format
	}

	if cfg.PDFPageSize == "" && fc.Render.PDFPageSize != "" {
		cfg.PDFPageSize = fc.Render.PDFPageSize
	}
	if cfg.TermWidth == 0 && fc.Render.TermWidth > 0 {
		cfg.TermWidth = fc.Render.TermWidth
	}
	if !cfg.Footer && fc.Render.Footer {
		cfg.Footer = true
	}
	if !cfg.RequireHeader && fc.RequireHeader {
		cfg.RequireHeader = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}

	if cfg.CacheDir == "" && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = fc.Cache.MaxAge
	}
	if !cfg.CacheClear && fc.Cache.Clear {
		cfg.CacheClear = true
	}
	if !cfg.CacheStrictPerms && fc.Cache.StrictPerms {
		cfg.CacheStrictPerms = true
	}
}

// ValidateConfig performs minimal validation of required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	format := cfg.Format
	if format == "" {
		format = DefaultFormat
	}
	if _, err := render.ForFormat(format, render.Options{}); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if strings.EqualFold(strings.TrimSpace(format), "pdf") && isStdout(cfg) {
		return errors.New("config: pdf output needs an output path or output dir")
	}
	if cfg.TermWidth < 0 || cfg.CacheMaxAge < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	return nil
}
