// Package config loads ~/.sharelist/config.yaml. A missing file means defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/sharelist/internal/linkrule"
	"github.com/Makepad-fr/sharelist/internal/model"
)

const (
	configFileName     = "config.yaml"
	DefaultBaseURL     = "https://listassist.app/share.html"
	DefaultCopyRevert  = 2 * time.Second
	DefaultLogLevel    = "warn"
	envHome            = "SHARELIST_HOME"
	envBaseURL         = "SHARELIST_BASE_URL"
	envLogLevel        = "SHARELIST_LOG_LEVEL"
	defaultDirBasename = ".sharelist"
)

type Config struct {
	BaseURL        string               `yaml:"baseURL"`
	DefaultTheme   *model.ThemeSettings `yaml:"defaultTheme"`
	AffiliateRules []linkrule.Rule      `yaml:"affiliateRules"`
	CopyFeedback   time.Duration        `yaml:"copyFeedback"`
	OutputDir      string               `yaml:"outputDir"`
	LogLevel       string               `yaml:"logLevel"`
	Borders        string               `yaml:"borders"`
}

// Default is the configuration used when no file exists.
func Default() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		AffiliateRules: []linkrule.Rule{linkrule.EbayRule},
		CopyFeedback:   DefaultCopyRevert,
		OutputDir:      ".",
		LogLevel:       DefaultLogLevel,
		Borders:        "rounded",
	}
}

// Dir is $SHARELIST_HOME, falling back to ~/.sharelist.
func Dir() (string, error) {
	if d := strings.TrimSpace(os.Getenv(envHome)); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, defaultDirBasename), nil
}

// Path is the default config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the file at path (or the default path when empty), fills unset
// fields from Default and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg Config
		if err := yaml.Unmarshal(b, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg = merge(cfg, fileCfg)
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv(envBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

func merge(base, over Config) Config {
	if over.BaseURL != "" {
		base.BaseURL = over.BaseURL
	}
	if over.DefaultTheme != nil {
		base.DefaultTheme = over.DefaultTheme
	}
	if over.AffiliateRules != nil {
		base.AffiliateRules = over.AffiliateRules
	}
	if over.CopyFeedback > 0 {
		base.CopyFeedback = over.CopyFeedback
	}
	if over.OutputDir != "" {
		base.OutputDir = over.OutputDir
	}
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	if over.Borders != "" {
		base.Borders = over.Borders
	}
	return base
}

// LinkTable compiles the affiliate rules.
func (c Config) LinkTable() (*linkrule.Table, error) {
	return linkrule.NewTable(c.AffiliateRules)
}
