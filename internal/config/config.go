// Package config loads trainer settings from an HCL file and RANGETRAINER_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"github.com/lox/rangetrainer/ranges"
)

// Environment variable names
const (
	EnvTableSize     = "RANGETRAINER_TABLE_SIZE"
	EnvPosition      = "RANGETRAINER_POSITION"
	EnvScenario      = "RANGETRAINER_SCENARIO"
	EnvLocale        = "RANGETRAINER_LOCALE"
	EnvSeed          = "RANGETRAINER_SEED"
	EnvLogLevel      = "RANGETRAINER_LOG_LEVEL"
	EnvFeedbackDelay = "RANGETRAINER_FEEDBACK_DELAY"
	EnvNoColor       = "RANGETRAINER_NO_COLOR"
)

// Config is the complete trainer configuration
type Config struct {
	Trainer *TrainerSettings `hcl:"trainer,block"`
	Ranges  []RangeConfig    `hcl:"range,block"`
}

// TrainerSettings holds the quiz defaults
type TrainerSettings struct {
	TableSize     string `hcl:"table_size,optional"`
	Position      string `hcl:"position,optional"`
	Scenario      string `hcl:"scenario,optional"`
	Locale        string `hcl:"locale,optional"`
	Seed          int64  `hcl:"seed,optional"`
	LogLevel      string `hcl:"log_level,optional"`
	HistorySize   int    `hcl:"history_size,optional"`
	FeedbackDelay string `hcl:"feedback_delay,optional"`
	NoColor       bool   `hcl:"no_color,optional"`
}

// RangeConfig replaces one chart of the built-in catalog
type RangeConfig struct {
	TableSize string   `hcl:"table_size,label"`
	Scenario  string   `hcl:"scenario,label"`
	Position  string   `hcl:"position,label"`
	Raise     []string `hcl:"raise,optional"`
	ThreeBet  []string `hcl:"three_bet,optional"`
	Call      []string `hcl:"call,optional"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Trainer == nil {
		c.Trainer = &TrainerSettings{}
	}
	t := c.Trainer
	if t.TableSize == "" {
		t.TableSize = ranges.SixMax.String()
	}
	if t.Scenario == "" {
		t.Scenario = ranges.Open.String()
	}
	if t.Locale == "" {
		t.Locale = string(ranges.English)
	}
	if t.LogLevel == "" {
		t.LogLevel = "warn"
	}
	if t.HistorySize == 0 {
		t.HistorySize = 50
	}
	if t.FeedbackDelay == "" {
		t.FeedbackDelay = "1s"
	}
}

// Load reads an HCL config file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadDotEnv loads KEY=value pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(filenames ...string) error {
	for _, name := range filenames {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from RANGETRAINER_* variables
func (c *Config) ApplyEnv() error {
	t := c.Trainer
	if v := os.Getenv(EnvTableSize); v != "" {
		t.TableSize = v
	}
	if v := os.Getenv(EnvPosition); v != "" {
		t.Position = v
	}
	if v := os.Getenv(EnvScenario); v != "" {
		t.Scenario = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		t.Locale = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		t.LogLevel = v
	}
	if v := os.Getenv(EnvFeedbackDelay); v != "" {
		t.FeedbackDelay = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		t.Seed = seed
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvNoColor, err)
		}
		t.NoColor = noColor
	}
	return nil
}

// Validate checks every setting and custom range
func (c *Config) Validate() error {
	t := c.Trainer
	size, err := ranges.ParseTableSize(t.TableSize)
	if err != nil {
		return err
	}
	if _, err := ranges.ParseScenario(t.Scenario); err != nil {
		return err
	}
	if t.Position != "" {
		position, err := ranges.ParsePosition(t.Position)
		if err != nil {
			return err
		}
		if !ranges.IsValidPosition(size, position) {
			return fmt.Errorf("position %s is not a seat at %s", position, size)
		}
	}
	if t.Locale != string(ranges.English) && ranges.ParseLocale(t.Locale) != ranges.Portuguese {
		return fmt.Errorf("unsupported locale %q", t.Locale)
	}
	if _, err := log.ParseLevel(t.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", t.LogLevel)
	}
	if t.HistorySize < 1 {
		return fmt.Errorf("history size must be positive, got %d", t.HistorySize)
	}
	if d, err := time.ParseDuration(t.FeedbackDelay); err != nil || d < 0 {
		return fmt.Errorf("invalid feedback delay %q", t.FeedbackDelay)
	}

	if _, err := c.Catalog(); err != nil {
		return err
	}
	return nil
}

// Delay returns the parsed feedback delay
func (c *Config) Delay() time.Duration {
	d, err := time.ParseDuration(c.Trainer.FeedbackDelay)
	if err != nil {
		return 0
	}
	return d
}

// Locale returns the display language
func (c *Config) Locale() ranges.Locale {
	return ranges.ParseLocale(c.Trainer.Locale)
}

// Level returns the parsed log level, defaulting to warn
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Trainer.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// Overrides converts the range blocks to catalog overrides
func (c *Config) Overrides() ([]ranges.Override, error) {
	overrides := make([]ranges.Override, 0, len(c.Ranges))
	for _, r := range c.Ranges {
		size, err := ranges.ParseTableSize(r.TableSize)
		if err != nil {
			return nil, fmt.Errorf("range %s/%s/%s: %w", r.TableSize, r.Scenario, r.Position, err)
		}
		scenario, err := ranges.ParseScenario(r.Scenario)
		if err != nil {
			return nil, fmt.Errorf("range %s/%s/%s: %w", r.TableSize, r.Scenario, r.Position, err)
		}
		position, err := ranges.ParsePosition(r.Position)
		if err != nil {
			return nil, fmt.Errorf("range %s/%s/%s: %w", r.TableSize, r.Scenario, r.Position, err)
		}
		overrides = append(overrides, ranges.Override{
			Size:     size,
			Scenario: scenario,
			Position: position,
			Lists:    ranges.Lists{Raise: r.Raise, ThreeBet: r.ThreeBet, Call: r.Call},
		})
	}
	return overrides, nil
}

// Catalog returns the built-in catalog with the custom ranges applied
func (c *Config) Catalog() (*ranges.Catalog, error) {
	overrides, err := c.Overrides()
	if err != nil {
		return nil, err
	}
	if len(overrides) == 0 {
		return ranges.Default(), nil
	}
	return ranges.NewCatalog(ranges.Default(), overrides...)
}

// Selection returns the parsed table size, seat and scenario. The seat is
// empty when none was configured.
func (c *Config) Selection() (ranges.TableSize, ranges.Position, ranges.Scenario, error) {
	size, err := ranges.ParseTableSize(c.Trainer.TableSize)
	if err != nil {
		return 0, "", 0, err
	}
	scenario, err := ranges.ParseScenario(c.Trainer.Scenario)
	if err != nil {
		return 0, "", 0, err
	}
	var position ranges.Position
	if c.Trainer.Position != "" {
		if position, err = ranges.ParsePosition(c.Trainer.Position); err != nil {
			return 0, "", 0, err
		}
	}
	return size, position, scenario, nil
}
