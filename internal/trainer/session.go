// Package trainer runs a preflop quiz: it deals a hand class, asks what the
// chart says to do with it and keeps score.
package trainer

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rangetrainer/internal/randutil"
	"github.com/lox/rangetrainer/internal/sessionid"
	"github.com/lox/rangetrainer/internal/statistics"
	"github.com/lox/rangetrainer/poker"
	"github.com/lox/rangetrainer/ranges"
)

// DefaultHistorySize is the number of results kept when Options.HistorySize is zero.
const DefaultHistorySize = 50

// ErrActionNotAvailable is returned when an answer is not one of the
// scenario's available actions.
var ErrActionNotAvailable = errors.New("action not available in this scenario")

// Options configures a Session. Zero values pick sensible defaults.
type Options struct {
	Catalog     *ranges.Catalog // defaults to ranges.Default()
	TableSize   ranges.TableSize
	Position    ranges.Position // defaults to the first seat with a chart
	Scenario    ranges.Scenario
	Source      ranges.Source // overrides Seed when set
	Seed        int64         // 0 means unseeded
	Clock       quartz.Clock
	HistorySize int
	Logger      *log.Logger
}

// Question is the hand currently being asked about.
type Question struct {
	Hand      ranges.Hand
	Cards     [2]poker.Card
	Position  ranges.Position
	Scenario  ranges.Scenario
	TableSize ranges.TableSize
	Asked     time.Time
}

// Result records one answered question.
type Result struct {
	Question     Question
	Answer       ranges.Action
	Expected     ranges.Action
	Correct      bool
	AnsweredAt   time.Time
	ResponseTime time.Duration
}

// Summary is the running score since the last reset.
type Summary struct {
	Answered   int
	Correct    int
	Accuracy   float64 // percent, 0 when nothing has been answered
	Streak     int
	BestStreak int
}

// Session holds quiz state. It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id          string
	catalog     *ranges.Catalog
	source      ranges.Source
	clock       quartz.Clock
	logger      *log.Logger
	historySize int

	size     ranges.TableSize
	position ranges.Position
	scenario ranges.Scenario
	table    *ranges.Table
	current  Question

	history    []Result // newest first
	answered   int
	correct    int
	streak     int
	bestStreak int
	stats      *statistics.Statistics
}

// New creates a session and deals the first hand.
func New(opts Options) (*Session, error) {
	s := &Session{
		catalog:     opts.Catalog,
		source:      opts.Source,
		clock:       opts.Clock,
		logger:      opts.Logger,
		historySize: opts.HistorySize,
		stats:       &statistics.Statistics{},
	}
	if s.catalog == nil {
		s.catalog = ranges.Default()
	}
	if s.source == nil {
		s.source = randutil.ForSeed(opts.Seed)
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.id = sessionid.New(s.clock.Now(), nil)
	s.logger = s.logger.WithPrefix("trainer").With("session", s.id)
	s.logger.Debug("Session started", "started", s.Started())
	if s.historySize <= 0 {
		s.historySize = DefaultHistorySize
	}

	position := opts.Position
	if position == "" {
		position = s.firstSeat(opts.TableSize, opts.Scenario)
	}
	table, err := s.catalog.RangeFor(position, opts.Scenario, opts.TableSize)
	if err != nil {
		return nil, err
	}
	s.size, s.position, s.scenario, s.table = opts.TableSize, position, opts.Scenario, table
	s.deal()
	return s, nil
}

// firstSeat returns the first seat at the table that has a chart for the
// scenario, or the first seat when none has.
func (s *Session) firstSeat(size ranges.TableSize, scenario ranges.Scenario) ranges.Position {
	seats := ranges.ValidPositions(size)
	for _, p := range seats {
		if s.catalog.Has(p, scenario, size) {
			return p
		}
	}
	if len(seats) > 0 {
		return seats[0]
	}
	return ""
}

// deal draws a new question. Callers hold mu.
func (s *Session) deal() {
	hand := ranges.RandomHandFrom(s.source)
	cards, err := poker.DealClass(hand.Label, s.source)
	if err != nil {
		// Labels from the grid are always valid.
		panic(err)
	}
	s.current = Question{
		Hand:      hand,
		Cards:     cards,
		Position:  s.position,
		Scenario:  s.scenario,
		TableSize: s.size,
		Asked:     s.clock.Now(),
	}
	s.logger.Debug("Dealt hand", "hand", hand.Label, "position", s.position, "scenario", s.scenario, "table", s.size)
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Started returns when the session was created, to the millisecond. It is
// read back from the session id.
func (s *Session) Started() time.Time {
	started, err := sessionid.Time(s.id)
	if err != nil {
		// New always produces a valid id.
		panic(err)
	}
	return started
}

// Current returns the question waiting for an answer.
func (s *Session) Current() Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Table returns the chart the current question is checked against.
func (s *Session) Table() *ranges.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// Answer checks action against the chart, records the result and deals the
// next hand.
func (s *Session) Answer(action ranges.Action) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !available(s.scenario, action) {
		return Result{}, fmt.Errorf("%w: %s facing %s", ErrActionNotAvailable, action, s.scenario)
	}

	q := s.current
	expected := s.table.At(q.Hand.Row, q.Hand.Col)
	now := s.clock.Now()
	result := Result{
		Question:     q,
		Answer:       action,
		Expected:     expected,
		Correct:      action == expected,
		AnsweredAt:   now,
		ResponseTime: now.Sub(q.Asked),
	}

	s.answered++
	if result.Correct {
		s.correct++
		s.streak++
		s.bestStreak = max(s.bestStreak, s.streak)
	} else {
		s.streak = 0
	}

	s.history = append([]Result{result}, s.history...)
	if len(s.history) > s.historySize {
		s.history = s.history[:s.historySize]
	}

	s.stats.Add(statistics.AnswerResult{
		Hand:         q.Hand.Label,
		TableSize:    q.TableSize,
		Position:     q.Position,
		Scenario:     q.Scenario,
		Expected:     expected,
		Correct:      result.Correct,
		ResponseTime: result.ResponseTime,
	})

	s.logger.Debug("Answered",
		"hand", q.Hand.Label,
		"answer", action,
		"expected", expected,
		"correct", result.Correct,
		"response", result.ResponseTime)

	s.deal()
	return result, nil
}

func available(scenario ranges.Scenario, action ranges.Action) bool {
	for _, a := range ranges.AvailableActions(scenario) {
		if a == action {
			return true
		}
	}
	return false
}

// Next skips the current hand without scoring it.
func (s *Session) Next() Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deal()
	return s.current
}

// SetTableSize switches table size. If the current seat does not exist at the
// new size, the first seat with a chart for the scenario is used instead.
func (s *Session) SetTableSize(size ranges.TableSize) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	position := s.position
	if !ranges.IsValidPosition(size, position) || !s.catalog.Has(position, s.scenario, size) {
		position = s.firstSeat(size, s.scenario)
	}
	return s.switchTo(size, position, s.scenario)
}

// SetPosition switches seat at the current table size.
func (s *Session) SetPosition(position ranges.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.switchTo(s.size, position, s.scenario)
}

// SetScenario switches scenario, moving to the first seat with a chart when
// the current seat has none.
func (s *Session) SetScenario(scenario ranges.Scenario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	position := s.position
	if !s.catalog.Has(position, scenario, s.size) {
		position = s.firstSeat(s.size, scenario)
	}
	return s.switchTo(s.size, position, scenario)
}

// switchTo changes the chart and deals a fresh hand. On error nothing changes.
// Callers hold mu.
func (s *Session) switchTo(size ranges.TableSize, position ranges.Position, scenario ranges.Scenario) error {
	table, err := s.catalog.RangeFor(position, scenario, size)
	if err != nil {
		return err
	}
	s.size, s.position, s.scenario, s.table = size, position, scenario, table
	s.logger.Info("Switched chart", "table", size, "position", position, "scenario", scenario)
	s.deal()
	return nil
}

// Reset clears the score and history and deals a new hand.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.answered, s.correct, s.streak, s.bestStreak = 0, 0, 0, 0
	s.stats = &statistics.Statistics{}
	s.deal()
}

// Summary returns the score since the last reset.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := Summary{
		Answered:   s.answered,
		Correct:    s.correct,
		Streak:     s.streak,
		BestStreak: s.bestStreak,
	}
	if s.answered > 0 {
		sum.Accuracy = 100 * float64(s.correct) / float64(s.answered)
	}
	return sum
}

// History returns a copy of the most recent results, newest first.
func (s *Session) History() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Result, len(s.history))
	copy(out, s.history)
	return out
}

// Statistics returns a snapshot of the detailed statistics.
func (s *Session) Statistics() *statistics.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Clone()
}

// Settings returns the current table size, seat and scenario.
func (s *Session) Settings() (ranges.TableSize, ranges.Position, ranges.Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size, s.position, s.scenario
}
