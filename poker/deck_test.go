package poker

import (
	"testing"

	"github.com/lox/rangetrainer/internal/randutil"
)

func TestDealClass(t *testing.T) {
	rng := randutil.New(7)

	for _, label := range AllHandLabels() {
		for range 20 {
			cards, err := DealClass(label, rng)
			if err != nil {
				t.Fatalf("DealClass(%s): %v", label, err)
			}
			if cards[0] == cards[1] {
				t.Fatalf("DealClass(%s) dealt the same card twice: %v", label, cards)
			}

			category, _ := CategoryOf(label)
			if sameSuit := cards[0].Suit == cards[1].Suit; sameSuit != (category == Suited) {
				t.Fatalf("DealClass(%s) = %s %s, suits inconsistent with %s", label, cards[0], cards[1], category)
			}
			if cards[0].Rank != Rank(label[0]) || cards[1].Rank != Rank(label[1]) {
				t.Fatalf("DealClass(%s) = %s %s, wrong ranks", label, cards[0], cards[1])
			}
		}
	}
}

func TestDealClassRejectsUnknownLabel(t *testing.T) {
	if _, err := DealClass("AKx", randutil.New(1)); err == nil {
		t.Error("expected an error for an invalid label")
	}
}

func TestCardString(t *testing.T) {
	c := Card{Rank: 'A', Suit: Spades}
	if c.String() != "A♠" {
		t.Errorf("String() = %q", c.String())
	}
	if !Hearts.Red() || Clubs.Red() {
		t.Error("Red() mismatch")
	}
}
