package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lox/rangetrainer/ranges"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func btnOpen(t *testing.T) *ranges.Table {
	t.Helper()
	table, err := ranges.RangeFor(ranges.BTN, ranges.Open, ranges.SixMax)
	require.NoError(t, err)
	return table
}

func TestGridPlain(t *testing.T) {
	r := New(&bytes.Buffer{}, ranges.English, true)
	require.True(t, r.Plain())

	grid := r.Grid(btnOpen(t), nil)
	lines := strings.Split(grid, "\n")
	require.Len(t, lines, 14, "header plus 13 rows")

	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[0], "2")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[1]), "A"))
	assert.Contains(t, lines[1], "AAR")
	assert.Contains(t, lines[1], "AKsR")
	assert.Contains(t, lines[8], "72s.", "suited hands sit above the diagonal")
	assert.Contains(t, lines[13], "72o.", "offsuit hands sit below the diagonal")
	assert.NotContains(t, grid, "\x1b[", "no escape codes without colour")
}

func TestGridHighlight(t *testing.T) {
	r := New(&bytes.Buffer{}, ranges.English, true)
	hand := ranges.Hand{Row: 0, Col: 1, Label: "AKs"}

	grid := r.Grid(btnOpen(t), &hand)
	assert.Contains(t, grid, "[AKs]")
	assert.NotContains(t, grid, "AKsR")
}

func TestLegendUsesScenarioLabels(t *testing.T) {
	r := New(&bytes.Buffer{}, ranges.English, true)

	legend := r.Legend(btnOpen(t))
	assert.Contains(t, legend, "R Raise 82")
	assert.Contains(t, legend, ". Fold 87")
	assert.NotContains(t, legend, "Call")

	vs3bet, err := ranges.RangeFor(ranges.UTG, ranges.Facing3Bet, ranges.SixMax)
	require.NoError(t, err)
	legend = r.Legend(vs3bet)
	assert.Contains(t, legend, "4-Bet 3")
	assert.Contains(t, legend, "Call 7")
	assert.Contains(t, legend, "Fold 159")

	pt := New(&bytes.Buffer{}, ranges.Portuguese, true)
	assert.Contains(t, pt.Legend(vs3bet), "Pagar 7")
}

func TestStatsLine(t *testing.T) {
	r := New(&bytes.Buffer{}, ranges.English, true)
	line := r.StatsLine(btnOpen(t))
	assert.True(t, strings.HasPrefix(line, "82/169 hands played"), line)
	assert.Contains(t, line, "/1326 combos")
}

func TestRenderColour(t *testing.T) {
	r := NewWithProfile(&bytes.Buffer{}, ranges.English, termenv.TrueColor)
	require.False(t, r.Plain())

	out := r.Render(btnOpen(t), ranges.SixMax, ranges.BTN)
	assert.Contains(t, out, "\x1b[", "colour output carries escape codes")
	assert.Contains(t, out, "Button (BTN)")
	assert.Contains(t, out, "AKs")
	assert.NotContains(t, out, "AKsR")
}

func TestRenderPlain(t *testing.T) {
	r := New(&bytes.Buffer{}, ranges.English, true)
	out := r.Render(btnOpen(t), ranges.SixMax, ranges.BTN)
	assert.True(t, strings.HasPrefix(out, "6-Max · Button (BTN) · Open (RFI)"), out)
	assert.Contains(t, out, "hands played")
}
