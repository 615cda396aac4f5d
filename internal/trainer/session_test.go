package trainer

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rangetrainer/internal/randutil"
	"github.com/lox/rangetrainer/internal/sessionid"
	"github.com/lox/rangetrainer/internal/statistics"
	"github.com/lox/rangetrainer/poker"
	"github.com/lox/rangetrainer/ranges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, opts Options) (*Session, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	opts.Clock = clock
	if opts.Source == nil {
		opts.Source = randutil.New(42)
	}
	opts.Logger = log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	s, err := New(opts)
	require.NoError(t, err)
	return s, clock
}

// expected returns the chart answer for the current question.
func expected(s *Session) ranges.Action {
	q := s.Current()
	return s.Table().At(q.Hand.Row, q.Hand.Col)
}

func wrong(s *Session) ranges.Action {
	want := expected(s)
	_, _, scenario := s.Settings()
	for _, a := range ranges.AvailableActions(scenario) {
		if a != want {
			return a
		}
	}
	panic("no wrong answer available")
}

func TestNewDefaults(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open})

	size, pos, scenario := s.Settings()
	assert.Equal(t, ranges.SixMax, size)
	assert.Equal(t, ranges.BTN, pos)
	assert.Equal(t, ranges.Open, scenario)

	q := s.Current()
	assert.True(t, poker.IsHandLabel(q.Hand.Label))
	assert.Equal(t, ranges.BTN, q.Position)
	assert.Equal(t, Summary{}, s.Summary())
	assert.NoError(t, sessionid.Validate(s.ID()))
}

func TestStartedComesFromSessionID(t *testing.T) {
	s, clock := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open})
	start := clock.Now()

	clock.Advance(3 * time.Second)
	_, err := s.Answer(ranges.Fold)
	require.NoError(t, err)

	assert.True(t, start.Truncate(time.Millisecond).Equal(s.Started()), "started %v, want %v", s.Started(), start)
}

func TestStatisticsSeparateTableSizes(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open})
	_, err := s.Answer(ranges.Fold)
	require.NoError(t, err)

	require.NoError(t, s.SetTableSize(ranges.NineMax))
	_, pos, _ := s.Settings()
	require.Equal(t, ranges.BTN, pos)
	_, err = s.Answer(ranges.Fold)
	require.NoError(t, err)

	stats := s.Statistics()
	assert.Equal(t, 1, stats.BySeat[statistics.Seat{Size: ranges.SixMax, Position: ranges.BTN}].Answers)
	assert.Equal(t, 1, stats.BySeat[statistics.Seat{Size: ranges.NineMax, Position: ranges.BTN}].Answers)
}

func TestNewPicksFirstSeatWithChart(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Scenario: ranges.FacingRaise})
	_, pos, _ := s.Settings()
	assert.Equal(t, ranges.MP, pos, "UTG never faces a raise")
}

func TestNewRejectsBadCombinations(t *testing.T) {
	_, err := New(Options{TableSize: ranges.SixMax, Position: ranges.UTG1, Scenario: ranges.Open})
	assert.ErrorIs(t, err, ranges.ErrInvalidCombination)

	_, err = New(Options{TableSize: ranges.SixMax, Position: ranges.BB, Scenario: ranges.Open})
	assert.ErrorIs(t, err, ranges.ErrNoRange)
}

func TestAnswerScoresAndStreaks(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.CO, Scenario: ranges.Open})

	for range 3 {
		res, err := s.Answer(expected(s))
		require.NoError(t, err)
		assert.True(t, res.Correct)
	}
	sum := s.Summary()
	assert.Equal(t, 3, sum.Answered)
	assert.Equal(t, 3, sum.Streak)
	assert.Equal(t, 3, sum.BestStreak)
	assert.InDelta(t, 100.0, sum.Accuracy, 1e-9)

	res, err := s.Answer(wrong(s))
	require.NoError(t, err)
	assert.False(t, res.Correct)

	sum = s.Summary()
	assert.Equal(t, 4, sum.Answered)
	assert.Equal(t, 3, sum.Correct)
	assert.Equal(t, 0, sum.Streak)
	assert.Equal(t, 3, sum.BestStreak)
	assert.InDelta(t, 75.0, sum.Accuracy, 1e-9)

	stats := s.Statistics()
	assert.Equal(t, 4, stats.Answers)
	assert.Equal(t, 3, stats.Correct)
	assert.NoError(t, stats.Validate())
}

func TestAnswerDealsNextHand(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open})

	first := s.Current()
	res, err := s.Answer(ranges.Fold)
	require.NoError(t, err)
	assert.Equal(t, first, res.Question)
	assert.Equal(t, s.Table().At(first.Hand.Row, first.Hand.Col), res.Expected)
}

func TestAnswerRejectsUnavailableAction(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open})

	before := s.Current()
	_, err := s.Answer(ranges.ThreeBet)
	assert.ErrorIs(t, err, ErrActionNotAvailable)
	assert.Equal(t, before, s.Current(), "a rejected answer must not advance the hand")
	assert.Equal(t, 0, s.Summary().Answered)
}

func TestResponseTimeUsesClock(t *testing.T) {
	s, clock := newTestSession(t, Options{TableSize: ranges.NineMax, Position: ranges.HJ, Scenario: ranges.Open})

	clock.Advance(1500 * time.Millisecond)
	res, err := s.Answer(ranges.Fold)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, res.ResponseTime)
	assert.Equal(t, clock.Now(), res.AnsweredAt)
	assert.Equal(t, clock.Now(), s.Current().Asked)
}

func TestHistoryIsCappedNewestFirst(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open, HistorySize: 5})

	var last Result
	for range 8 {
		res, err := s.Answer(ranges.Raise)
		require.NoError(t, err)
		last = res
	}
	history := s.History()
	require.Len(t, history, 5)
	assert.Equal(t, last, history[0])
	assert.Equal(t, 8, s.Summary().Answered, "accuracy counts every answer since reset")

	history[0].Correct = !history[0].Correct
	assert.Equal(t, last, s.History()[0], "History must return a copy")
}

func TestDefaultHistorySize(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open})
	for range DefaultHistorySize + 10 {
		_, err := s.Answer(ranges.Fold)
		require.NoError(t, err)
	}
	assert.Len(t, s.History(), DefaultHistorySize)
}

func TestSetTableSizeFallsBackToValidSeat(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.MP, Scenario: ranges.Open})

	require.NoError(t, s.SetTableSize(ranges.NineMax))
	size, pos, _ := s.Settings()
	assert.Equal(t, ranges.NineMax, size)
	assert.Equal(t, ranges.UTG, pos, "MP does not exist at 9max")

	require.NoError(t, s.SetPosition(ranges.BTN))
	require.NoError(t, s.SetTableSize(ranges.HeadsUp))
	_, pos, _ = s.Settings()
	assert.Equal(t, ranges.BTN, pos, "BTN exists heads-up and keeps its seat")
	assert.Equal(t, ranges.HeadsUp, s.Current().TableSize)
}

func TestSetScenarioMovesOffSeatsWithoutCharts(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.UTG, Scenario: ranges.Open})

	require.NoError(t, s.SetScenario(ranges.FacingRaise))
	_, pos, scenario := s.Settings()
	assert.Equal(t, ranges.FacingRaise, scenario)
	assert.Equal(t, ranges.MP, pos)

	require.NoError(t, s.SetScenario(ranges.Facing3Bet))
	_, pos, _ = s.Settings()
	assert.Equal(t, ranges.MP, pos, "MP has a facing-3bet chart")
}

func TestSetPositionErrorsLeaveStateUnchanged(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open})
	before := s.Current()

	assert.ErrorIs(t, s.SetPosition(ranges.UTG2), ranges.ErrInvalidCombination)
	assert.ErrorIs(t, s.SetPosition(ranges.BB), ranges.ErrNoRange)

	_, pos, _ := s.Settings()
	assert.Equal(t, ranges.BTN, pos)
	assert.Equal(t, before, s.Current())
}

func TestReset(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open})
	for range 4 {
		_, err := s.Answer(ranges.Raise)
		require.NoError(t, err)
	}
	s.Reset()
	assert.Equal(t, Summary{}, s.Summary())
	assert.Empty(t, s.History())
	assert.Equal(t, 0, s.Statistics().Answers)
}

func TestNextDoesNotScore(t *testing.T) {
	s, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open})
	for range 10 {
		q := s.Next()
		assert.Equal(t, q, s.Current())
	}
	assert.Equal(t, 0, s.Summary().Answered)
}

func TestSeededSessionsAreReproducible(t *testing.T) {
	a, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open, Source: randutil.New(7)})
	b, _ := newTestSession(t, Options{TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open, Source: randutil.New(7)})
	for range 20 {
		assert.Equal(t, a.Current().Hand, b.Current().Hand)
		assert.Equal(t, a.Current().Cards, b.Current().Cards)
		a.Next()
		b.Next()
	}
}

func TestCustomCatalog(t *testing.T) {
	catalog, err := ranges.NewCatalog(ranges.Default(), ranges.Override{
		Size:     ranges.SixMax,
		Scenario: ranges.Open,
		Position: ranges.BTN,
		Lists:    ranges.Lists{Raise: poker.AllHandLabels()},
	})
	require.NoError(t, err)

	s, _ := newTestSession(t, Options{Catalog: catalog, TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open})
	for range 20 {
		res, err := s.Answer(ranges.Raise)
		require.NoError(t, err)
		assert.True(t, res.Correct)
	}
}

func TestConcurrentAnswers(t *testing.T) {
	s, err := New(Options{
		TableSize: ranges.SixMax,
		Position:  ranges.BTN,
		Scenario:  ranges.Open,
		Clock:     quartz.NewMock(t),
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				_, _ = s.Answer(ranges.Fold)
				_ = s.Summary()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, s.Summary().Answered)
	assert.NoError(t, s.Statistics().Validate())
}
