// Package ranges holds the authored preflop charts and the lookups built on
// top of them.
//
// A Table assigns one Action to each of the 169 starting-hand classes for a
// single (table size, position, scenario). Tables are materialised in full when
// they are built, so a lookup never has to fall back to a default. The authored
// catalog is built once at package initialisation and is read-only afterwards;
// it is safe for concurrent use without locking.
package ranges

import (
	"errors"
	"fmt"

	"github.com/lox/rangetrainer/poker"
)

var (
	// ErrUnknownHand means an authored list contained something that is not one of the 169 hand labels.
	ErrUnknownHand = errors.New("unknown hand")
	// ErrInvalidCombination means the position does not exist at the table size, or the scenario or table size is unknown.
	ErrInvalidCombination = errors.New("invalid combination")
	// ErrNoRange means the combination is valid but no chart was authored for it.
	ErrNoRange = errors.New("no range authored")
)

// Table is a complete chart: every one of the 169 hands maps to exactly one Action.
type Table struct {
	scenario Scenario
	actions  [poker.NumHandClasses]Action
}

// Scenario returns the scenario the table was built for.
func (t *Table) Scenario() Scenario {
	return t.scenario
}

// Action returns the action for a canonical hand label.
func (t *Table) Action(label string) (Action, error) {
	idx, ok := poker.GridIndex(label)
	if !ok {
		return Fold, fmt.Errorf("%w: %q", ErrUnknownHand, label)
	}
	return t.actions[idx], nil
}

// At returns the action for a grid cell. It panics if the cell is out of range.
func (t *Table) At(row, col int) Action {
	if row < 0 || row >= poker.GridSize || col < 0 || col >= poker.GridSize {
		panic(fmt.Sprintf("ranges: grid cell (%d, %d) out of range", row, col))
	}
	return t.actions[row*poker.GridSize+col]
}

// Map returns the table as a label to action map. The map is a fresh copy.
func (t *Table) Map() map[string]Action {
	out := make(map[string]Action, poker.NumHandClasses)
	for idx, label := range poker.AllHandLabels() {
		out[label] = t.actions[idx]
	}
	return out
}

// Hands returns the labels assigned to action, in grid order.
func (t *Table) Hands(action Action) []string {
	var out []string
	for idx, label := range poker.AllHandLabels() {
		if t.actions[idx] == action {
			out = append(out, label)
		}
	}
	return out
}

// Equal reports whether two tables assign the same action to every hand.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.scenario == other.scenario && t.actions == other.actions
}
