package ranges

import "github.com/lox/rangetrainer/poker"

// Stats counts how many of the 169 hand classes take each action. Every action
// is present in the result and the counts always sum to 169.
func Stats(t *Table) map[Action]int {
	stats := map[Action]int{Raise: 0, ThreeBet: 0, Call: 0, Fold: 0}
	for _, action := range t.actions {
		stats[action]++
	}
	return stats
}

// Frequency returns the share of hand classes that take action.
func (t *Table) Frequency(action Action) float64 {
	n := 0
	for _, a := range t.actions {
		if a == action {
			n++
		}
	}
	return float64(n) / poker.NumHandClasses
}

// Combos counts the concrete two-card combinations that take action, out of 1326.
func (t *Table) Combos(action Action) int {
	total := 0
	for row := range poker.GridSize {
		for col := range poker.GridSize {
			if t.actions[row*poker.GridSize+col] == action {
				total += poker.CategoryAt(row, col).Combos()
			}
		}
	}
	return total
}

// TotalCombos is the number of distinct two-card starting hands.
const TotalCombos = 1326
