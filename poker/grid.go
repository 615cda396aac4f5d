// Package poker models the 169 preflop starting-hand classes laid out on the
// standard 13x13 grid.
//
// Rows and columns are both indexed by rank, 0 = Ace through 12 = Deuce. Cells
// on the diagonal are pocket pairs, cells above it (row < col) are suited and
// cells below it (row > col) are offsuit.
package poker

import (
	"errors"
	"fmt"
)

// GridSize is the number of ranks along each axis of the hand grid.
const GridSize = 13

// NumHandClasses is the number of canonical starting hands (13 pairs, 78 suited, 78 offsuit).
const NumHandClasses = GridSize * GridSize

// Rank is a card rank symbol.
type Rank byte

// Ranks in grid order, highest first.
var Ranks = [GridSize]Rank{'A', 'K', 'Q', 'J', 'T', '9', '8', '7', '6', '5', '4', '3', '2'}

func (r Rank) String() string {
	return string(r)
}

// Index returns the grid index of the rank (0 for Ace, 12 for Deuce), or -1
// for anything that isn't a rank symbol.
func (r Rank) Index() int {
	for i, rank := range Ranks {
		if rank == r {
			return i
		}
	}
	return -1
}

// HandCategory describes the shape of a starting hand.
type HandCategory uint8

const (
	Pair HandCategory = iota
	Suited
	Offsuit
)

func (c HandCategory) String() string {
	switch c {
	case Pair:
		return "pair"
	case Suited:
		return "suited"
	case Offsuit:
		return "offsuit"
	default:
		return "unknown"
	}
}

// Combos is the number of concrete two-card combinations in the category.
func (c HandCategory) Combos() int {
	switch c {
	case Pair:
		return 6
	case Suited:
		return 4
	case Offsuit:
		return 12
	default:
		return 0
	}
}

// ErrInvalidHandLabel is returned when a string is not one of the 169 canonical labels.
var ErrInvalidHandLabel = errors.New("invalid hand label")

func checkCell(row, col int) {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		panic(fmt.Sprintf("poker: grid cell (%d, %d) out of range [0,%d)", row, col, GridSize))
	}
}

// HandLabel returns the canonical label of a grid cell: "AA" for pairs, "AKs"
// above the diagonal and "AKo" below it. It panics if either index is outside
// [0, 13).
func HandLabel(row, col int) string {
	checkCell(row, col)
	switch {
	case row == col:
		return string([]byte{byte(Ranks[row]), byte(Ranks[col])})
	case row < col:
		return string([]byte{byte(Ranks[row]), byte(Ranks[col]), 's'})
	default:
		return string([]byte{byte(Ranks[col]), byte(Ranks[row]), 'o'})
	}
}

// CategoryAt returns the category of a grid cell, consistent with HandLabel.
// It panics if either index is outside [0, 13).
func CategoryAt(row, col int) HandCategory {
	checkCell(row, col)
	switch {
	case row == col:
		return Pair
	case row < col:
		return Suited
	default:
		return Offsuit
	}
}

// ParseHandLabel maps a canonical label back to its grid cell.
func ParseHandLabel(label string) (row, col int, err error) {
	if len(label) < 2 || len(label) > 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidHandLabel, label)
	}

	high := Rank(label[0]).Index()
	low := Rank(label[1]).Index()
	if high < 0 || low < 0 {
		return 0, 0, fmt.Errorf("%w: %q has an unknown rank", ErrInvalidHandLabel, label)
	}

	if high == low {
		if len(label) != 2 {
			return 0, 0, fmt.Errorf("%w: pocket pair %q cannot be suited or offsuit", ErrInvalidHandLabel, label)
		}
		return high, high, nil
	}

	// Higher rank must come first, which is the lower index.
	if high > low {
		return 0, 0, fmt.Errorf("%w: %q must list the higher rank first", ErrInvalidHandLabel, label)
	}
	if len(label) != 3 {
		return 0, 0, fmt.Errorf("%w: %q needs an s or o suffix", ErrInvalidHandLabel, label)
	}

	switch label[2] {
	case 's':
		return high, low, nil
	case 'o':
		return low, high, nil
	default:
		return 0, 0, fmt.Errorf("%w: invalid modifier %q in %q", ErrInvalidHandLabel, label[2], label)
	}
}

// GridIndex returns row*13+col for a canonical label.
func GridIndex(label string) (int, bool) {
	idx, ok := labelIndex[label]
	return idx, ok
}

// IsHandLabel reports whether label is one of the 169 canonical labels.
func IsHandLabel(label string) bool {
	_, ok := labelIndex[label]
	return ok
}

// CategoryOf returns the category of a canonical label.
func CategoryOf(label string) (HandCategory, error) {
	row, col, err := ParseHandLabel(label)
	if err != nil {
		return 0, err
	}
	return CategoryAt(row, col), nil
}

// AllHandLabels returns the 169 labels in row-major grid order.
func AllHandLabels() []string {
	out := make([]string, len(gridLabels))
	copy(out, gridLabels[:])
	return out
}

var (
	gridLabels [NumHandClasses]string
	labelIndex = make(map[string]int, NumHandClasses)
)

func init() {
	for row := range GridSize {
		for col := range GridSize {
			idx := row*GridSize + col
			label := HandLabel(row, col)
			gridLabels[idx] = label
			labelIndex[label] = idx
		}
	}
}
