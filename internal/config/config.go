package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/logging"
)

// FileName is the project configuration file written by `ledger init`.
const FileName = "ledger.yaml"

// ChartDefault selects the built-in reference chart of accounts.
const ChartDefault = "default"

// Config represents the top-level ledger.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Chart    ChartConfig    `yaml:"chart"`
	Display  DisplayConfig  `yaml:"display"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// BusinessConfig identifies the business whose books are kept.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// ChartConfig selects the chart of accounts.
type ChartConfig struct {
	Source string `yaml:"source"` // "default" or a CSV path relative to the config file
}

// DisplayConfig controls presentation only; the ledger itself never formats amounts.
type DisplayConfig struct {
	Currency string `yaml:"currency"` // ISO 4217 code
	Style    string `yaml:"style"`    // glamour style: notty, dark, light, ascii
}

// ServerConfig controls `ledger serve`.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Environment variables that override file settings.
const (
	EnvAddr     = "LEDGER_ADDR"
	EnvLogLevel = "LEDGER_LOG_LEVEL"
	EnvCurrency = "LEDGER_CURRENCY"
	EnvStyle    = "LEDGER_STYLE"
)

// Load reads a ledger.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads path, falling back to defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Chart:    ChartConfig{Source: ChartDefault},
		Display:  DisplayConfig{Currency: "USD", Style: "notty"},
		Server:   ServerConfig{Addr: ":8080"},
		Log:      LogConfig{Level: "info"},
	}
}

// ApplyEnv overrides settings from LEDGER_* variables. Values from envFile
// (a .env file, optional) are used only where the process environment does
// not set the variable. A missing envFile is not an error.
func (c *Config) ApplyEnv(envFile string) error {
	fileEnv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading %s: %w", envFile, err)
		}
		if m != nil {
			fileEnv = m
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok && v != ""
	}

	if v, ok := lookup(EnvAddr); ok {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvCurrency); ok {
		c.Display.Currency = strings.ToUpper(v)
	}
	if v, ok := lookup(EnvStyle); ok {
		c.Display.Style = v
	}
	return nil
}

// Validate checks settings that would otherwise fail later at startup.
func (c *Config) Validate() error {
	var problems []string
	if c.Chart.Source == "" {
		problems = append(problems, "chart.source is required")
	}
	if len(c.Display.Currency) != 3 {
		problems = append(problems, fmt.Sprintf("display.currency %q is not an ISO 4217 code", c.Display.Currency))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, "log.level: "+err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// LoadChart builds the configured chart of accounts. Relative CSV paths are
// resolved against baseDir, normally the directory holding ledger.yaml.
func (c *Config) LoadChart(baseDir string) (*accounts.Chart, error) {
	if c.Chart.Source == "" || c.Chart.Source == ChartDefault {
		return accounts.DefaultChart(), nil
	}
	path := c.Chart.Source
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return accounts.LoadFile(path)
}
