package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/lox/rangetrainer/ranges"
)

type keyMap struct {
	Aggressive key.Binding
	ThreeBet   key.Binding
	Call       key.Binding
	Fold       key.Binding
	Next       key.Binding
	Chart      key.Binding
	Position   key.Binding
	Scenario   key.Binding
	Table      key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Aggressive: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "raise")),
		ThreeBet:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "3-bet")),
		Call:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "call")),
		Fold:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fold")),
		Next:       key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "next hand")),
		Chart:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "toggle chart")),
		Position:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next seat")),
		Scenario:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "next scenario")),
		Table:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next table size")),
		Reset:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset score")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// relabel points the answer keys at the scenario's actions. "r" is always
// the aggressive action: open raise, 3-bet or 4-bet.
func (k *keyMap) relabel(locale ranges.Locale, scenario ranges.Scenario) {
	aggressive := ranges.Raise
	if scenario == ranges.FacingRaise {
		aggressive = ranges.ThreeBet
	}
	k.Aggressive.SetHelp("r", ranges.ActionLabelIn(locale, aggressive, scenario))
	k.ThreeBet.SetEnabled(scenario == ranges.FacingRaise)
	k.ThreeBet.SetHelp("3", ranges.ActionLabelIn(locale, ranges.ThreeBet, scenario))
	k.Call.SetEnabled(scenario != ranges.Open)
	k.Call.SetHelp("c", ranges.ActionLabelIn(locale, ranges.Call, scenario))
	k.Fold.SetHelp("f", ranges.ActionLabelIn(locale, ranges.Fold, scenario))
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Aggressive, k.Call, k.Fold, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Aggressive, k.ThreeBet, k.Call, k.Fold},
		{k.Next, k.Chart, k.Reset},
		{k.Position, k.Scenario, k.Table},
		{k.Help, k.Quit},
	}
}
