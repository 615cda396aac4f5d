package ranges

import (
	"testing"

	"github.com/lox/rangetrainer/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actionOf(t *testing.T, table *Table, label string) Action {
	t.Helper()
	a, err := table.Action(label)
	require.NoError(t, err)
	return a
}

func TestBuildOpen(t *testing.T) {
	table, err := BuildOpen([]string{"AA", "KK", "AKs"})
	require.NoError(t, err)

	assert.Equal(t, Raise, actionOf(t, table, "AA"))
	assert.Equal(t, Raise, actionOf(t, table, "AKs"))
	assert.Equal(t, Fold, actionOf(t, table, "AKo"))
	assert.Equal(t, map[Action]int{Raise: 3, ThreeBet: 0, Call: 0, Fold: 166}, Stats(table))
	assert.Equal(t, []string{"AA", "AKs", "KK"}, table.Hands(Raise))
}

func TestBuildOpenEmptyFoldsEverything(t *testing.T) {
	table, err := BuildOpen(nil)
	require.NoError(t, err)
	assert.Equal(t, poker.NumHandClasses, Stats(table)[Fold])
	assert.InDelta(t, 1.0, table.Frequency(Fold), 1e-9)
}

func TestBuildFacingRaisePriority(t *testing.T) {
	table, err := BuildFacingRaise([]string{"AA", "AKs"}, []string{"AKs", "QQ"})
	require.NoError(t, err)

	assert.Equal(t, ThreeBet, actionOf(t, table, "AA"))
	assert.Equal(t, ThreeBet, actionOf(t, table, "AKs"), "3-bet list is checked first")
	assert.Equal(t, Call, actionOf(t, table, "QQ"))
	assert.Equal(t, Fold, actionOf(t, table, "72o"))
	assert.Equal(t, FacingRaise, table.Scenario())
}

func TestBuildFacing3BetPriority(t *testing.T) {
	table, err := BuildFacing3Bet([]string{"AA", "KK"}, []string{"KK", "JJ"})
	require.NoError(t, err)

	assert.Equal(t, Raise, actionOf(t, table, "KK"), "4-bet list is checked first")
	assert.Equal(t, Call, actionOf(t, table, "JJ"))
	assert.Equal(t, Fold, actionOf(t, table, "TT"))
	assert.Zero(t, Stats(table)[ThreeBet])
}

func TestBuildersRejectUnknownHands(t *testing.T) {
	_, err := BuildOpen([]string{"AA", "AKx"})
	assert.ErrorIs(t, err, ErrUnknownHand)

	_, err = BuildFacingRaise([]string{"AA"}, []string{"KAs"})
	assert.ErrorIs(t, err, ErrUnknownHand)

	_, err = BuildFacing3Bet([]string{"1A"}, nil)
	assert.ErrorIs(t, err, ErrUnknownHand)
}

func TestBuildersAcceptNotation(t *testing.T) {
	table, err := BuildOpen([]string{"22+", "A2s+", "KTo+"})
	require.NoError(t, err)

	stats := Stats(table)
	assert.Equal(t, 13+12+3, stats[Raise])
	assert.Equal(t, Raise, actionOf(t, table, "22"))
	assert.Equal(t, Raise, actionOf(t, table, "KTo"))
	assert.Equal(t, Fold, actionOf(t, table, "K9o"))
	assert.Equal(t, 13*6+12*4+3*12, table.Combos(Raise))
}

func TestBuildDispatch(t *testing.T) {
	table, err := Build(Open, Lists{Raise: []string{"AA"}})
	require.NoError(t, err)
	assert.Equal(t, Open, table.Scenario())

	_, err = Build(Open, Lists{Call: []string{"AA"}})
	assert.Error(t, err)

	_, err = Build(FacingRaise, Lists{Raise: []string{"AA"}})
	assert.Error(t, err)

	_, err = Build(Facing3Bet, Lists{ThreeBet: []string{"AA"}})
	assert.Error(t, err)

	table, err = Build(Facing3Bet, Lists{Raise: []string{"AA"}, Call: []string{"KK"}})
	require.NoError(t, err)
	assert.Equal(t, Raise, actionOf(t, table, "AA"))

	_, err = Build(Scenario(5), Lists{})
	assert.ErrorIs(t, err, ErrInvalidCombination)
}

func TestTableActionRejectsUnknownLabel(t *testing.T) {
	table, err := BuildOpen(nil)
	require.NoError(t, err)

	_, err = table.Action("KAo")
	assert.ErrorIs(t, err, ErrUnknownHand)

	assert.Panics(t, func() { table.At(13, 0) })
}

func TestCombosCoverEveryStartingHand(t *testing.T) {
	table, err := RangeFor(BB, FacingRaise, SixMax)
	require.NoError(t, err)

	total := 0
	for _, a := range Actions() {
		total += table.Combos(a)
	}
	assert.Equal(t, TotalCombos, total)
}

func TestNewCatalogOverrides(t *testing.T) {
	base := Default()
	custom, err := NewCatalog(base,
		Override{Size: SixMax, Scenario: Open, Position: BTN, Lists: Lists{Raise: []string{"AA"}}},
		Override{Size: SixMax, Scenario: Open, Position: BB, Lists: Lists{Raise: []string{"22+"}}},
		Override{Size: SixMax, Scenario: Open, Position: UTG},
	)
	require.NoError(t, err)

	btn, err := custom.RangeFor(BTN, Open, SixMax)
	require.NoError(t, err)
	assert.Equal(t, 1, Stats(btn)[Raise])

	bb, err := custom.RangeFor(BB, Open, SixMax)
	require.NoError(t, err)
	assert.Equal(t, 13, Stats(bb)[Raise])

	_, err = custom.RangeFor(UTG, Open, SixMax)
	assert.ErrorIs(t, err, ErrNoRange)

	// The default catalog is untouched.
	original, err := base.RangeFor(BTN, Open, SixMax)
	require.NoError(t, err)
	assert.Equal(t, 82, Stats(original)[Raise])
	assert.True(t, base.Has(UTG, Open, SixMax))
	assert.False(t, base.Has(BB, Open, SixMax))
}

func TestNewCatalogRejectsBadOverrides(t *testing.T) {
	_, err := NewCatalog(Default(), Override{Size: SixMax, Scenario: Open, Position: UTG1, Lists: Lists{Raise: []string{"AA"}}})
	assert.ErrorIs(t, err, ErrInvalidCombination)

	_, err = NewCatalog(Default(), Override{Size: SixMax, Scenario: Open, Position: BTN, Lists: Lists{Raise: []string{"AAA"}}})
	assert.ErrorIs(t, err, ErrUnknownHand)
}
