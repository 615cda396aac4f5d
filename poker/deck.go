package poker

// Suit of a playing card.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suitSymbols = [4]string{"♠", "♥", "♦", "♣"}

func (s Suit) String() string {
	if int(s) < len(suitSymbols) {
		return suitSymbols[s]
	}
	return "?"
}

// Red reports whether the suit is hearts or diamonds.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Card is a concrete playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IntSource is the subset of *rand.Rand used for dealing.
type IntSource interface {
	IntN(n int) int
}

// DealClass picks two concrete cards belonging to the starting-hand class
// named by label. Pairs and offsuit hands get two different suits, suited
// hands share one. The higher card is returned first.
func DealClass(label string, rng IntSource) ([2]Card, error) {
	row, col, err := ParseHandLabel(label)
	if err != nil {
		return [2]Card{}, err
	}

	high := Ranks[min(row, col)]
	low := Ranks[max(row, col)]

	suit1 := Suit(rng.IntN(4))
	suit2 := suit1
	if CategoryAt(row, col) != Suited {
		// Any of the other three suits.
		suit2 = Suit((int(suit1) + 1 + rng.IntN(3)) % 4)
	}

	return [2]Card{{Rank: high, Suit: suit1}, {Rank: low, Suit: suit2}}, nil
}
