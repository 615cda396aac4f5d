package ranges

import (
	"fmt"
	"strings"
)

// Action is the recommended preflop action for a hand.
type Action int

const (
	// Fold gives up the hand. Every unlisted hand folds.
	Fold Action = iota
	// Call flats the open or the 3-bet
	Call
	// Raise opens the pot, or 4-bets when facing a 3-bet
	Raise
	// ThreeBet re-raises an open
	ThreeBet
)

// Actions returns every action in legend order.
func Actions() []Action {
	return []Action{Raise, ThreeBet, Call, Fold}
}

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case ThreeBet:
		return "3bet"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (a Action) MarshalText() ([]byte, error) {
	if a < Fold || a > ThreeBet {
		return nil, fmt.Errorf("unknown action %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAction converts a string to an Action.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold", "f":
		return Fold, nil
	case "call", "c":
		return Call, nil
	case "raise", "r", "open", "4bet", "4-bet":
		return Raise, nil
	case "3bet", "3-bet", "threebet", "3":
		return ThreeBet, nil
	default:
		return Fold, fmt.Errorf("unknown action %q", s)
	}
}

// Scenario is the situation the hero faces when the action reaches them.
type Scenario int

const (
	// Open is first in: nobody has entered the pot (RFI).
	Open Scenario = iota
	// FacingRaise means someone opened before us: 3-bet, call or fold.
	FacingRaise
	// Facing3Bet means we opened and were re-raised: 4-bet, call or fold.
	Facing3Bet
)

// Scenarios returns every scenario in display order.
func Scenarios() []Scenario {
	return []Scenario{Open, FacingRaise, Facing3Bet}
}

func (s Scenario) String() string {
	switch s {
	case Open:
		return "open"
	case FacingRaise:
		return "facing-raise"
	case Facing3Bet:
		return "facing-3bet"
	default:
		return "unknown"
	}
}

func (s Scenario) valid() bool {
	return s >= Open && s <= Facing3Bet
}

// MarshalText implements encoding.TextMarshaler
func (s Scenario) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("unknown scenario %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Scenario) UnmarshalText(text []byte) error {
	parsed, err := ParseScenario(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseScenario converts a string to a Scenario.
func ParseScenario(s string) (Scenario, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open", "rfi":
		return Open, nil
	case "facing-raise", "vs-raise", "vsraise":
		return FacingRaise, nil
	case "facing-3bet", "vs-3bet", "vs3bet":
		return Facing3Bet, nil
	default:
		return Open, fmt.Errorf("unknown scenario %q", s)
	}
}

// TableSize is the number of seats at the table.
type TableSize int

const (
	SixMax TableSize = iota
	NineMax
	HeadsUp
)

// TableSizes returns every table size in display order.
func TableSizes() []TableSize {
	return []TableSize{SixMax, NineMax, HeadsUp}
}

func (t TableSize) String() string {
	switch t {
	case SixMax:
		return "6max"
	case NineMax:
		return "9max"
	case HeadsUp:
		return "headsup"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (t TableSize) MarshalText() ([]byte, error) {
	if _, ok := positionsByTable[t]; !ok {
		return nil, fmt.Errorf("unknown table size %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TableSize) UnmarshalText(text []byte) error {
	parsed, err := ParseTableSize(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTableSize converts a string to a TableSize.
func ParseTableSize(s string) (TableSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "6max", "6-max", "6":
		return SixMax, nil
	case "9max", "9-max", "9", "full-ring":
		return NineMax, nil
	case "headsup", "heads-up", "hu", "2":
		return HeadsUp, nil
	default:
		return SixMax, fmt.Errorf("unknown table size %q", s)
	}
}

// Position is a seat relative to the button.
type Position string

const (
	UTG  Position = "UTG"
	UTG1 Position = "UTG+1"
	UTG2 Position = "UTG+2"
	LJ   Position = "LJ"
	HJ   Position = "HJ"
	MP   Position = "MP"
	CO   Position = "CO"
	BTN  Position = "BTN"
	SB   Position = "SB"
	BB   Position = "BB"
)

var allPositions = []Position{UTG, UTG1, UTG2, LJ, HJ, MP, CO, BTN, SB, BB}

// ParsePosition converts a string to a known Position. "UTG1" and "UTG2" are
// accepted for UTG+1 and UTG+2.
func ParsePosition(s string) (Position, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "UTG1":
		return UTG1, nil
	case "UTG2":
		return UTG2, nil
	}
	for _, p := range allPositions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown position %q", s)
}

var positionsByTable = map[TableSize][]Position{
	SixMax:  {UTG, MP, CO, BTN, SB, BB},
	NineMax: {UTG, UTG1, UTG2, LJ, HJ, CO, BTN, SB, BB},
	HeadsUp: {BTN, BB},
}

// ValidPositions returns the seats at a table size in acting order, or nil
// for an unknown table size.
func ValidPositions(size TableSize) []Position {
	positions, ok := positionsByTable[size]
	if !ok {
		return nil
	}
	out := make([]Position, len(positions))
	copy(out, positions)
	return out
}

// IsValidPosition reports whether the seat exists at the table size.
func IsValidPosition(size TableSize, position Position) bool {
	for _, p := range positionsByTable[size] {
		if p == position {
			return true
		}
	}
	return false
}
