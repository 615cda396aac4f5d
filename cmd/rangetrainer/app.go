package main

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/rangetrainer/internal/chart"
	"github.com/lox/rangetrainer/internal/config"
	"github.com/lox/rangetrainer/ranges"
)

// Globals are flags shared by every command. Flags win over the environment,
// which wins over the config file.
type Globals struct {
	Config   string `short:"c" default:"rangetrainer.hcl" help:"Path to HCL configuration file"`
	EnvFile  string `name:"env-file" default:".env" help:"Dotenv file loaded before reading RANGETRAINER_* variables"`
	LogLevel string `short:"l" name:"log-level" help:"Log level (overrides config)"`
	Locale   string `help:"Display language: en or pt-BR (overrides config)"`
	NoColor  bool   `name:"no-color" help:"Disable colour output"`
}

// App carries what commands need at run time.
type App struct {
	Context context.Context
	Config  *config.Config
	Catalog *ranges.Catalog
	Logger  *log.Logger
	Out     io.Writer
}

// NewApp loads configuration and builds the logger and catalog.
func NewApp(ctx context.Context, g Globals, out, errOut io.Writer) (*App, error) {
	if err := config.LoadDotEnv(g.EnvFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Trainer.LogLevel = g.LogLevel
	}
	if g.Locale != "" {
		cfg.Trainer.Locale = g.Locale
	}
	if g.NoColor {
		cfg.Trainer.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(errOut, log.Options{
		Level:  cfg.Level(),
		Prefix: "rangetrainer",
	})

	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded configuration",
		"config", g.Config,
		"charts", catalog.Len(),
		"custom_ranges", len(cfg.Ranges))

	return &App{
		Context: ctx,
		Config:  cfg,
		Catalog: catalog,
		Logger:  logger,
		Out:     out,
	}, nil
}

// Renderer returns a chart renderer for the app's output.
func (a *App) Renderer() *chart.Renderer {
	return chart.New(a.Out, a.Config.Locale(), a.Config.Trainer.NoColor)
}

// Selection picks a chart. Empty flags fall back to the configuration.
type Selection struct {
	Table    string `short:"t" help:"Table size: 6max, 9max or headsup"`
	Position string `short:"p" help:"Seat, e.g. UTG, UTG+1, CO, BTN"`
	Scenario string `short:"s" help:"Scenario: open, facing-raise or facing-3bet"`
}

// resolve merges the flags over the configuration. The seat is empty when
// neither names one.
func (s Selection) resolve(cfg *config.Config) (ranges.TableSize, ranges.Position, ranges.Scenario, error) {
	size, position, scenario, err := cfg.Selection()
	if err != nil {
		return 0, "", 0, err
	}
	if s.Table != "" {
		if size, err = ranges.ParseTableSize(s.Table); err != nil {
			return 0, "", 0, err
		}
		if s.Position == "" && !ranges.IsValidPosition(size, position) {
			position = ""
		}
	}
	if s.Scenario != "" {
		if scenario, err = ranges.ParseScenario(s.Scenario); err != nil {
			return 0, "", 0, err
		}
	}
	if s.Position != "" {
		if position, err = ranges.ParsePosition(s.Position); err != nil {
			return 0, "", 0, err
		}
	}
	return size, position, scenario, nil
}

// firstSeat returns the first seat with a chart for the scenario.
func firstSeat(catalog *ranges.Catalog, size ranges.TableSize, scenario ranges.Scenario) ranges.Position {
	for _, p := range ranges.ValidPositions(size) {
		if catalog.Has(p, scenario, size) {
			return p
		}
	}
	return ""
}
