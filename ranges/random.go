package ranges

import (
	rand "math/rand/v2"

	"github.com/lox/rangetrainer/poker"
)

// Hand is a grid cell together with its label.
type Hand struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Label string `json:"label"`
}

// Category returns the shape of the hand.
func (h Hand) Category() poker.HandCategory {
	return poker.CategoryAt(h.Row, h.Col)
}

// Source supplies uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

// IntN uses the top-level math/rand/v2 generator, which is safe for concurrent use.
func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// RandomHand draws a grid cell uniformly. Row and column are drawn
// independently, so pairs come up 13/169 of the time and suited and offsuit
// hands 78/169 each. Nothing is remembered between calls.
func RandomHand() Hand {
	return RandomHandFrom(globalSource{})
}

// RandomHandFrom is RandomHand with an explicit source.
func RandomHandFrom(src Source) Hand {
	row := src.IntN(poker.GridSize)
	col := src.IntN(poker.GridSize)
	return Hand{Row: row, Col: col, Label: poker.HandLabel(row, col)}
}
