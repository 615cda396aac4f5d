package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/rangetrainer/internal/randutil"
	"github.com/lox/rangetrainer/poker"
	"github.com/lox/rangetrainer/ranges"
)

// HandCmd shows one hand across every chart.
type HandCmd struct {
	Label string `arg:"" help:"Hand label, e.g. AKs, T9o or 77"`
	Table string `short:"t" help:"Only show one table size"`
}

func (c *HandCmd) Run(app *App) error {
	label := normaliseLabel(c.Label)
	category, err := poker.CategoryOf(label)
	if err != nil {
		return err
	}
	var only *ranges.TableSize
	if c.Table != "" {
		size, err := ranges.ParseTableSize(c.Table)
		if err != nil {
			return err
		}
		only = &size
	}

	locale := app.Config.Locale()
	fmt.Fprintf(app.Out, "%s: %s, %d combos, %s\n\n", label, category, category.Combos(), poker.CategorizeHand(label))

	rows := [][]string{}
	for _, e := range app.Catalog.Entries() {
		if only != nil && e.Size != *only {
			continue
		}
		action, err := e.Table.Action(label)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			ranges.TableSizeLabel(locale, e.Size),
			e.Scenario.String(),
			string(e.Position),
			ranges.ActionLabelIn(locale, action, e.Scenario),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Table", "Scenario", "Seat", "Action").
		Rows(rows...)
	fmt.Fprintln(app.Out, t.String())
	return nil
}

// normaliseLabel upper-cases ranks and lower-cases the suitedness suffix, so
// "aks" and "AKS" both read as "AKs".
func normaliseLabel(label string) string {
	label = strings.TrimSpace(label)
	if len(label) == 3 {
		return strings.ToUpper(label[:2]) + strings.ToLower(label[2:])
	}
	return strings.ToUpper(label)
}

// RandomCmd deals hands uniformly from the grid.
type RandomCmd struct {
	Selection `embed:""`
	Count     int   `short:"n" default:"1" help:"Number of hands to deal"`
	Seed      int64 `help:"Deterministic seed (0 = random)"`
}

func (c *RandomCmd) Run(app *App) error {
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	seed := c.Seed
	if seed == 0 {
		seed = app.Config.Trainer.Seed
	}
	rng := randutil.ForSeed(seed)

	var chart *ranges.Table
	size, position, scenario, err := c.resolve(app.Config)
	if err != nil {
		return err
	}
	if c.Position != "" {
		if chart, err = app.Catalog.RangeFor(position, scenario, size); err != nil {
			return err
		}
	}

	locale := app.Config.Locale()
	for range c.Count {
		hand := ranges.RandomHandFrom(rng)
		cards, err := poker.DealClass(hand.Label, rng)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%-4s %s %s", hand.Label, cards[0], cards[1])
		if chart != nil {
			action := chart.At(hand.Row, hand.Col)
			line += "  " + ranges.ActionLabelIn(locale, action, scenario)
		}
		fmt.Fprintln(app.Out, line)
	}
	return nil
}
