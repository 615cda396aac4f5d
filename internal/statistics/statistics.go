package statistics

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/lox/rangetrainer/poker"
	"github.com/lox/rangetrainer/ranges"
)

// AnswerResult represents the outcome of a single quiz answer
type AnswerResult struct {
	Hand         string           // Hand label, e.g. "AKo"
	TableSize    ranges.TableSize // Table the question was asked at
	Position     ranges.Position  // Seat the question was asked for
	Scenario     ranges.Scenario  // Open, facing a raise or facing a 3-bet
	Expected     ranges.Action    // Action the chart recommends
	Correct      bool             // Did the answer match the chart?
	ResponseTime time.Duration    // Time from question to answer
}

// Seat is a position at a given table size. BTN at 6max and BTN at 9max are
// different seats with different charts.
type Seat struct {
	Size     ranges.TableSize
	Position ranges.Position
}

func (s Seat) String() string {
	return fmt.Sprintf("%s %s", s.Position, s.Size)
}

// Breakdown tracks accuracy for one slice of the answers
type Breakdown struct {
	Answers int
	Correct int
}

// Accuracy returns the fraction of correct answers in the slice
func (b Breakdown) Accuracy() float64 {
	if b.Answers == 0 {
		return 0
	}
	return float64(b.Correct) / float64(b.Answers)
}

// Statistics tracks quiz accuracy and response times
type Statistics struct {
	Answers int
	Correct int

	// Response times in seconds
	SumResponse  float64
	SumResponse2 float64
	Responses    []float64

	BySeat     map[Seat]Breakdown
	ByScenario map[ranges.Scenario]Breakdown
	ByCategory map[poker.HandCategory]Breakdown
	ByExpected map[ranges.Action]Breakdown // keyed by the chart's action
}

// Accuracy returns the fraction of correct answers
func (s *Statistics) Accuracy() float64 {
	if s.Answers == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answers)
}

// Variance returns the sample variance of the 0/1 correctness outcomes
func (s *Statistics) Variance() float64 {
	if s.Answers < 2 {
		return 0
	}
	p := s.Accuracy()
	return p * (1 - p) * float64(s.Answers) / float64(s.Answers-1)
}

// StdDev returns the sample standard deviation of correctness
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the accuracy
func (s *Statistics) StdError() float64 {
	if s.Answers == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Answers))
}

// ConfidenceInterval95 returns the 95% confidence interval for the accuracy, clamped to [0, 1]
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Accuracy()
	margin := 1.96 * s.StdError()
	return math.Max(0, mean-margin), math.Min(1, mean+margin)
}

// Add incorporates a new answer into the statistics
func (s *Statistics) Add(result AnswerResult) {
	s.Answers++
	if result.Correct {
		s.Correct++
	}

	secs := result.ResponseTime.Seconds()
	s.SumResponse += secs
	s.SumResponse2 += secs * secs
	s.Responses = append(s.Responses, secs)

	if s.BySeat == nil {
		s.BySeat = make(map[Seat]Breakdown)
		s.ByScenario = make(map[ranges.Scenario]Breakdown)
		s.ByCategory = make(map[poker.HandCategory]Breakdown)
		s.ByExpected = make(map[ranges.Action]Breakdown)
	}

	seat := Seat{Size: result.TableSize, Position: result.Position}
	s.BySeat[seat] = bump(s.BySeat[seat], result.Correct)
	s.ByScenario[result.Scenario] = bump(s.ByScenario[result.Scenario], result.Correct)
	if category, err := poker.CategoryOf(result.Hand); err == nil {
		s.ByCategory[category] = bump(s.ByCategory[category], result.Correct)
	}
	s.ByExpected[result.Expected] = bump(s.ByExpected[result.Expected], result.Correct)
}

func bump(b Breakdown, correct bool) Breakdown {
	b.Answers++
	if correct {
		b.Correct++
	}
	return b
}

// MeanResponse returns the average response time
func (s *Statistics) MeanResponse() time.Duration {
	if s.Answers == 0 {
		return 0
	}
	return time.Duration(s.SumResponse / float64(s.Answers) * float64(time.Second))
}

// MedianResponse returns the median response time
func (s *Statistics) MedianResponse() time.Duration {
	return s.PercentileResponse(0.5)
}

// PercentileResponse returns the response time at the given percentile (0.0 to 1.0)
func (s *Statistics) PercentileResponse(p float64) time.Duration {
	if len(s.Responses) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Responses))
	copy(sorted, s.Responses)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	var secs float64
	if upper >= len(sorted) {
		secs = sorted[len(sorted)-1]
	} else {
		weight := index - float64(lower)
		secs = sorted[lower]*(1-weight) + sorted[upper]*weight
	}
	return time.Duration(secs * float64(time.Second))
}

// Weakest returns the seat with the lowest accuracy among those with at
// least minAnswers answers.
func (s *Statistics) Weakest(minAnswers int) (Seat, Breakdown, bool) {
	var (
		worst    Seat
		worstB   Breakdown
		found    bool
		worstAcc = math.Inf(1)
	)
	seats := slices.Collect(maps.Keys(s.BySeat))
	// Stable tie-breaking.
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].Size != seats[j].Size {
			return seats[i].Size < seats[j].Size
		}
		return seats[i].Position < seats[j].Position
	})

	for _, seat := range seats {
		b := s.BySeat[seat]
		if b.Answers < minAnswers {
			continue
		}
		if acc := b.Accuracy(); acc < worstAcc {
			worst, worstB, worstAcc, found = seat, b, acc, true
		}
	}
	return worst, worstB, found
}

// Validate checks that the breakdowns agree with the totals
func (s *Statistics) Validate() error {
	if s.Correct > s.Answers {
		return fmt.Errorf("correct answers (%d) exceed total answers (%d)", s.Correct, s.Answers)
	}
	if len(s.Responses) != s.Answers {
		return fmt.Errorf("responses length (%d) does not match answers (%d)", len(s.Responses), s.Answers)
	}

	check := func(name string, answers, correct int) error {
		if answers != s.Answers || correct != s.Correct {
			return fmt.Errorf("%s breakdown totals %d/%d do not match %d/%d", name, correct, answers, s.Correct, s.Answers)
		}
		return nil
	}

	var a, c int
	for _, b := range s.BySeat {
		a, c = a+b.Answers, c+b.Correct
	}
	if err := check("seat", a, c); err != nil {
		return err
	}

	a, c = 0, 0
	for _, b := range s.ByScenario {
		a, c = a+b.Answers, c+b.Correct
	}
	if err := check("scenario", a, c); err != nil {
		return err
	}

	a, c = 0, 0
	for _, b := range s.ByExpected {
		a, c = a+b.Answers, c+b.Correct
	}
	return check("action", a, c)
}

// Clone returns a deep copy that shares nothing with s
func (s *Statistics) Clone() *Statistics {
	out := *s
	out.Responses = slices.Clone(s.Responses)
	out.BySeat = maps.Clone(s.BySeat)
	out.ByScenario = maps.Clone(s.ByScenario)
	out.ByCategory = maps.Clone(s.ByCategory)
	out.ByExpected = maps.Clone(s.ByExpected)
	return &out
}
