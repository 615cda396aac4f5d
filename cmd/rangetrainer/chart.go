package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/rangetrainer/ranges"
)

// ChartCmd prints one chart, or every chart at a table size.
type ChartCmd struct {
	Selection `embed:""`
	All       bool `help:"Print every chart at the table size"`
}

func (c *ChartCmd) Run(app *App) error {
	size, position, scenario, err := c.resolve(app.Config)
	if err != nil {
		return err
	}
	r := app.Renderer()

	if c.All {
		for _, e := range app.Catalog.Entries() {
			if e.Size != size {
				continue
			}
			fmt.Fprintln(app.Out, r.Render(e.Table, e.Size, e.Position))
			fmt.Fprintln(app.Out)
		}
		return nil
	}

	if position == "" {
		position = firstSeat(app.Catalog, size, scenario)
	}
	t, err := app.Catalog.RangeFor(position, scenario, size)
	if err != nil {
		return err
	}
	app.Logger.Debug("Rendering chart", "table", size, "position", position, "scenario", scenario)
	fmt.Fprintln(app.Out, r.Render(t, size, position))
	return nil
}

// StatsCmd tabulates action counts for every chart.
type StatsCmd struct {
	Table string `short:"t" help:"Only show one table size"`
}

func (c *StatsCmd) Run(app *App) error {
	var only *ranges.TableSize
	if c.Table != "" {
		size, err := ranges.ParseTableSize(c.Table)
		if err != nil {
			return err
		}
		only = &size
	}

	locale := app.Config.Locale()
	rows := [][]string{}
	for _, e := range app.Catalog.Entries() {
		if only != nil && e.Size != *only {
			continue
		}
		stats := ranges.Stats(e.Table)
		played := ranges.TotalCombos - e.Table.Combos(ranges.Fold)
		rows = append(rows, []string{
			ranges.TableSizeLabel(locale, e.Size),
			e.Scenario.String(),
			string(e.Position),
			strconv.Itoa(stats[ranges.Raise]),
			strconv.Itoa(stats[ranges.ThreeBet]),
			strconv.Itoa(stats[ranges.Call]),
			strconv.Itoa(stats[ranges.Fold]),
			fmt.Sprintf("%.1f%%", 100*float64(played)/ranges.TotalCombos),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Table", "Scenario", "Seat", "Raise", "3-Bet", "Call", "Fold", "Played").
		Rows(rows...)
	fmt.Fprintln(app.Out, t.String())
	return nil
}
