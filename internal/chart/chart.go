// Package chart renders range tables as coloured 13x13 grids for the terminal.
package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/rangetrainer/poker"
	"github.com/lox/rangetrainer/ranges"
	"github.com/muesli/termenv"
)

const cellWidth = 5

// plainMarks stand in for colours when the profile has none.
var plainMarks = map[ranges.Action]string{
	ranges.Raise:    "R",
	ranges.ThreeBet: "3",
	ranges.Call:     "C",
	ranges.Fold:     ".",
}

// Renderer draws charts for one output.
type Renderer struct {
	locale ranges.Locale
	plain  bool

	header    lipgloss.Style
	title     lipgloss.Style
	muted     lipgloss.Style
	highlight lipgloss.Style
	cells     map[ranges.Action]lipgloss.Style
}

// New returns a renderer for w. With noColor set, or when w is not a colour
// terminal, cells carry a letter instead of a colour.
func New(w io.Writer, locale ranges.Locale, noColor bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if noColor {
		lg.SetColorProfile(termenv.Ascii)
	}
	return newRenderer(lg, locale)
}

// NewWithProfile returns a renderer with a fixed colour profile.
func NewWithProfile(w io.Writer, locale ranges.Locale, profile termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(profile)
	return newRenderer(lg, locale)
}

func newRenderer(lg *lipgloss.Renderer, locale ranges.Locale) *Renderer {
	r := &Renderer{
		locale: locale,
		plain:  lg.ColorProfile() == termenv.Ascii,
		header: lg.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center),
		title: lg.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		muted: lg.NewStyle().Foreground(lipgloss.Color(ranges.MutedText)),
		highlight: lg.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center),
		cells: make(map[ranges.Action]lipgloss.Style),
	}
	for _, action := range ranges.Actions() {
		r.cells[action] = lg.NewStyle().
			Foreground(lipgloss.Color(ranges.ActionTextColor(action))).
			Background(lipgloss.Color(ranges.ActionColor(action))).
			Width(cellWidth).
			Align(lipgloss.Center)
	}
	return r
}

// Plain reports whether output carries no colour.
func (r *Renderer) Plain() bool {
	return r.plain
}

// Title renders a heading such as "6-max · BTN · Open".
func (r *Renderer) Title(size ranges.TableSize, position ranges.Position, scenario ranges.Scenario) string {
	text := fmt.Sprintf("%s · %s · %s",
		ranges.TableSizeLabel(r.locale, size),
		ranges.PositionLabel(r.locale, position),
		ranges.ScenarioLabel(r.locale, scenario))
	if r.plain {
		return text
	}
	return r.title.Render(text)
}

// Grid renders the 13x13 table. A non-nil highlight marks one cell.
func (r *Renderer) Grid(t *ranges.Table, highlight *ranges.Hand) string {
	var b strings.Builder

	cols := make([]string, 0, poker.GridSize+1)
	cols = append(cols, r.header.Render(""))
	for _, rank := range poker.Ranks {
		cols = append(cols, r.header.Render(rank.String()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteByte('\n')

	for row := range poker.GridSize {
		cols = cols[:0]
		cols = append(cols, r.header.Render(poker.Ranks[row].String()))
		for col := range poker.GridSize {
			cols = append(cols, r.cell(t, row, col, highlight))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
		if row < poker.GridSize-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (r *Renderer) cell(t *ranges.Table, row, col int, highlight *ranges.Hand) string {
	action := t.At(row, col)
	label := poker.HandLabel(row, col)
	text := label
	if r.plain {
		text = label + plainMarks[action]
	}
	if highlight != nil && highlight.Row == row && highlight.Col == col {
		if r.plain {
			text = "[" + label + "]"
		}
		return r.highlight.Render(text)
	}
	return r.cells[action].Render(text)
}

// Legend lists the actions that make sense in the table's scenario with
// their colour, count and share of combos.
func (r *Renderer) Legend(t *ranges.Table) string {
	stats := ranges.Stats(t)
	parts := make([]string, 0, 4)
	for _, action := range ranges.AvailableActions(t.Scenario()) {
		name := ranges.ActionLabelIn(r.locale, action, t.Scenario())
		combos := t.Combos(action)
		pct := 100 * float64(combos) / ranges.TotalCombos
		swatch := r.cells[action].Width(0).Render("  ")
		if r.plain {
			swatch = plainMarks[action]
		}
		parts = append(parts, fmt.Sprintf("%s %s %d (%.1f%%)", swatch, name, stats[action], pct))
	}
	return strings.Join(parts, "   ")
}

// StatsLine summarises how many hand classes are played.
func (r *Renderer) StatsLine(t *ranges.Table) string {
	stats := ranges.Stats(t)
	played := poker.NumHandClasses - stats[ranges.Fold]
	combos := ranges.TotalCombos - t.Combos(ranges.Fold)
	line := fmt.Sprintf("%d/%d hands played, %d/%d combos (%.1f%%)",
		played, poker.NumHandClasses, combos, ranges.TotalCombos,
		100*float64(combos)/ranges.TotalCombos)
	if r.plain {
		return line
	}
	return r.muted.Render(line)
}

// Render draws title, grid, legend and stats line.
func (r *Renderer) Render(t *ranges.Table, size ranges.TableSize, position ranges.Position) string {
	return strings.Join([]string{
		r.Title(size, position, t.Scenario()),
		"",
		r.Grid(t, nil),
		"",
		r.Legend(t),
		r.StatsLine(t),
	}, "\n")
}
