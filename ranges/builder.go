package ranges

import (
	"fmt"

	"github.com/lox/rangetrainer/poker"
)

// Lists is the authored form of a chart: the hands for each non-fold action.
// Entries are hand labels or range notation ("TT+", "A5s-A2s").
//
// Which lists apply depends on the scenario: Open uses Raise; FacingRaise uses
// ThreeBet then Call; Facing3Bet uses Raise (the 4-bet) then Call. The first
// list wins when a hand appears in two.
type Lists struct {
	Raise    []string `json:"raise,omitempty"`
	ThreeBet []string `json:"three_bet,omitempty"`
	Call     []string `json:"call,omitempty"`
}

// Empty reports whether no hands are listed at all.
func (l Lists) Empty() bool {
	return len(l.Raise) == 0 && len(l.ThreeBet) == 0 && len(l.Call) == 0
}

// BuildOpen builds a first-in chart: listed hands raise, everything else folds.
func BuildOpen(raise []string) (*Table, error) {
	return build(Open, assignment{Raise, raise})
}

// BuildFacingRaise builds a chart against an open. A hand in both lists 3-bets.
func BuildFacingRaise(threeBet, call []string) (*Table, error) {
	return build(FacingRaise, assignment{ThreeBet, threeBet}, assignment{Call, call})
}

// BuildFacing3Bet builds a chart against a 3-bet. 4-bets are stored as Raise.
// A hand in both lists 4-bets.
func BuildFacing3Bet(fourBet, call []string) (*Table, error) {
	return build(Facing3Bet, assignment{Raise, fourBet}, assignment{Call, call})
}

// Build dispatches to the builder for scenario and rejects lists the scenario
// has no use for.
func Build(scenario Scenario, lists Lists) (*Table, error) {
	switch scenario {
	case Open:
		if len(lists.ThreeBet) > 0 || len(lists.Call) > 0 {
			return nil, fmt.Errorf("%s charts only take raise hands", scenario)
		}
		return BuildOpen(lists.Raise)
	case FacingRaise:
		if len(lists.Raise) > 0 {
			return nil, fmt.Errorf("%s charts take three_bet and call hands, not raise", scenario)
		}
		return BuildFacingRaise(lists.ThreeBet, lists.Call)
	case Facing3Bet:
		if len(lists.ThreeBet) > 0 {
			return nil, fmt.Errorf("%s charts take raise (4-bet) and call hands, not three_bet", scenario)
		}
		return BuildFacing3Bet(lists.Raise, lists.Call)
	default:
		return nil, fmt.Errorf("%w: unknown scenario %d", ErrInvalidCombination, int(scenario))
	}
}

type assignment struct {
	action Action
	hands  []string
}

func build(scenario Scenario, assignments ...assignment) (*Table, error) {
	t := &Table{scenario: scenario}
	for i := range t.actions {
		t.actions[i] = Fold
	}

	var assigned [poker.NumHandClasses]bool
	for _, a := range assignments {
		labels, err := poker.ExpandAll(a.hands)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnknownHand, err)
		}
		for _, label := range labels {
			idx, ok := poker.GridIndex(label)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownHand, label)
			}
			if assigned[idx] {
				continue
			}
			assigned[idx] = true
			t.actions[idx] = a.action
		}
	}

	return t, nil
}

// authored is one entry of the built-in catalog.
type authored struct {
	position Position
	scenario Scenario
	lists    Lists
}

func opens(position Position, raise ...string) authored {
	return authored{position: position, scenario: Open, lists: Lists{Raise: raise}}
}

func versusRaise(position Position, threeBet, call []string) authored {
	return authored{position: position, scenario: FacingRaise, lists: Lists{ThreeBet: threeBet, Call: call}}
}

func versus3Bet(position Position, fourBet, call []string) authored {
	return authored{position: position, scenario: Facing3Bet, lists: Lists{Raise: fourBet, Call: call}}
}

func hands(labels ...string) []string {
	return labels
}
