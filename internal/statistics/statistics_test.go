package statistics

import (
	"math"
	"testing"
	"time"

	"github.com/lox/rangetrainer/poker"
	"github.com/lox/rangetrainer/ranges"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Accuracy() != 0 {
		t.Errorf("Expected accuracy of 0 for empty stats, got %f", stats.Accuracy())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.MedianResponse() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %v", stats.MedianResponse())
	}
	if _, _, ok := stats.Weakest(1); ok {
		t.Error("Expected no weakest position for empty stats")
	}
}

func TestStatistics_SingleAnswer(t *testing.T) {
	stats := &Statistics{}
	stats.Add(AnswerResult{
		Hand:         "AKs",
		Position:     ranges.BTN,
		Scenario:     ranges.Open,
		Expected:     ranges.Raise,
		Correct:      true,
		ResponseTime: 2 * time.Second,
	})

	if stats.Answers != 1 || stats.Correct != 1 {
		t.Errorf("Expected 1/1, got %d/%d", stats.Correct, stats.Answers)
	}
	if stats.Accuracy() != 1 {
		t.Errorf("Expected accuracy 1, got %f", stats.Accuracy())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance 0 for a single answer, got %f", stats.Variance())
	}
	if stats.MeanResponse() != 2*time.Second {
		t.Errorf("Expected mean response 2s, got %v", stats.MeanResponse())
	}
	if b := stats.ByCategory[poker.Suited]; b.Answers != 1 {
		t.Errorf("Expected one suited answer, got %+v", b)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestStatistics_Accuracy(t *testing.T) {
	stats := &Statistics{}
	// 3 correct out of 4
	for i, correct := range []bool{true, true, false, true} {
		stats.Add(AnswerResult{
			Hand:         "72o",
			Position:     ranges.UTG,
			Scenario:     ranges.Open,
			Expected:     ranges.Fold,
			Correct:      correct,
			ResponseTime: time.Duration(i+1) * time.Second,
		})
	}

	if math.Abs(stats.Accuracy()-0.75) > 1e-9 {
		t.Errorf("Expected accuracy 0.75, got %f", stats.Accuracy())
	}
	// p(1-p) * n/(n-1) = 0.1875 * 4/3 = 0.25
	if math.Abs(stats.Variance()-0.25) > 1e-9 {
		t.Errorf("Expected variance 0.25, got %f", stats.Variance())
	}

	lo, hi := stats.ConfidenceInterval95()
	if lo < 0 || hi > 1 || lo > stats.Accuracy() || hi < stats.Accuracy() {
		t.Errorf("Confidence interval [%f, %f] does not bracket %f", lo, hi, stats.Accuracy())
	}
	if hi != 1 {
		t.Errorf("Expected the upper bound to clamp at 1, got %f", hi)
	}

	if got := stats.MedianResponse(); got != 2500*time.Millisecond {
		t.Errorf("Expected median 2.5s, got %v", got)
	}
	if got := stats.PercentileResponse(1); got != 4*time.Second {
		t.Errorf("Expected p100 4s, got %v", got)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestStatistics_Weakest(t *testing.T) {
	stats := &Statistics{}
	add := func(p ranges.Position, correct bool) {
		stats.Add(AnswerResult{Hand: "QQ", TableSize: ranges.SixMax, Position: p, Scenario: ranges.FacingRaise, Expected: ranges.ThreeBet, Correct: correct})
	}
	add(ranges.BTN, true)
	add(ranges.BTN, true)
	add(ranges.SB, false)
	add(ranges.SB, true)
	add(ranges.CO, false) // only one answer

	seat, b, ok := stats.Weakest(2)
	if !ok || seat != (Seat{Size: ranges.SixMax, Position: ranges.SB}) {
		t.Fatalf("Expected SB as weakest, got %s (%v)", seat, ok)
	}
	if b.Accuracy() != 0.5 {
		t.Errorf("Expected SB accuracy 0.5, got %f", b.Accuracy())
	}

	seat, _, _ = stats.Weakest(1)
	if seat.Position != ranges.CO {
		t.Errorf("Expected CO as weakest with min 1, got %s", seat)
	}
}

func TestStatistics_SeatsAreKeyedByTableSize(t *testing.T) {
	stats := &Statistics{}
	for _, correct := range []bool{true, true, true} {
		stats.Add(AnswerResult{Hand: "A9o", TableSize: ranges.SixMax, Position: ranges.BTN, Scenario: ranges.Open, Expected: ranges.Raise, Correct: correct})
	}
	for _, correct := range []bool{false, false, true} {
		stats.Add(AnswerResult{Hand: "A9o", TableSize: ranges.NineMax, Position: ranges.BTN, Scenario: ranges.Open, Expected: ranges.Raise, Correct: correct})
	}

	if got := len(stats.BySeat); got != 2 {
		t.Fatalf("Expected two seats, got %d: %+v", got, stats.BySeat)
	}
	sixMax := stats.BySeat[Seat{Size: ranges.SixMax, Position: ranges.BTN}]
	if sixMax.Answers != 3 || sixMax.Correct != 3 {
		t.Errorf("Expected 3/3 at 6max BTN, got %d/%d", sixMax.Correct, sixMax.Answers)
	}

	seat, b, ok := stats.Weakest(3)
	if !ok || seat != (Seat{Size: ranges.NineMax, Position: ranges.BTN}) {
		t.Fatalf("Expected 9max BTN as weakest, got %s (%v)", seat, ok)
	}
	if b.Answers != 3 || b.Correct != 1 {
		t.Errorf("Expected 1/3 at 9max BTN, got %d/%d", b.Correct, b.Answers)
	}
	if seat.String() != "BTN 9max" {
		t.Errorf("Expected seat to print as %q, got %q", "BTN 9max", seat.String())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestStatistics_ValidateDetectsMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(AnswerResult{Hand: "AA", Position: ranges.BB, Expected: ranges.ThreeBet, Correct: true})
	stats.Correct = 5

	if err := stats.Validate(); err == nil {
		t.Error("Expected Validate to fail when correct exceeds answers")
	}
}

func TestStatistics_Clone(t *testing.T) {
	stats := &Statistics{}
	btn := Seat{Size: ranges.SixMax, Position: ranges.BTN}
	stats.Add(AnswerResult{Hand: "AA", TableSize: ranges.SixMax, Position: ranges.BTN, Expected: ranges.Raise, Correct: true})

	clone := stats.Clone()
	clone.Add(AnswerResult{Hand: "KK", TableSize: ranges.SixMax, Position: ranges.BTN, Expected: ranges.Raise, Correct: false})

	if stats.Answers != 1 || stats.BySeat[btn].Answers != 1 || len(stats.Responses) != 1 {
		t.Errorf("Clone shares state with the original: %+v", stats)
	}
	if clone.Answers != 2 || clone.BySeat[btn].Answers != 2 {
		t.Errorf("Clone did not record the new answer: %+v", clone)
	}
}
