package main

import (
	"fmt"

	"github.com/lox/rangetrainer/poker"
	"github.com/lox/rangetrainer/ranges"
)

// ValidateCmd rebuilds the built-in catalog and checks every chart in use.
// The config file has already been validated by the time it runs.
type ValidateCmd struct{}

func (c *ValidateCmd) Run(app *App) error {
	if err := ranges.Validate(); err != nil {
		return fmt.Errorf("built-in catalog: %w", err)
	}

	for _, e := range app.Catalog.Entries() {
		total := 0
		for _, n := range ranges.Stats(e.Table) {
			total += n
		}
		if total != poker.NumHandClasses {
			return fmt.Errorf("%s %s %s: %d hands classified, want %d",
				e.Size, e.Scenario, e.Position, total, poker.NumHandClasses)
		}
		if e.Table.Scenario() != e.Scenario {
			return fmt.Errorf("%s %s %s: chart built for %s", e.Size, e.Scenario, e.Position, e.Table.Scenario())
		}
	}

	app.Logger.Info("Catalog valid", "charts", app.Catalog.Len(), "custom_ranges", len(app.Config.Ranges))
	fmt.Fprintf(app.Out, "ok: %d charts, %d custom ranges\n", app.Catalog.Len(), len(app.Config.Ranges))
	return nil
}
