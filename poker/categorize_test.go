package poker

import (
	"testing"
)

func TestCategorizeHand(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected StrengthTier
	}{
		// Premium hands
		{"Pocket Aces", "AA", TierPremium},
		{"Pocket Kings", "KK", TierPremium},
		{"Pocket Jacks", "JJ", TierPremium},
		{"Ace King suited", "AKs", TierPremium},
		{"Ace King offsuit", "AKo", TierPremium},

		// Strong hands
		{"Pocket Tens", "TT", TierStrong},
		{"Ace Queen suited", "AQs", TierStrong},
		{"Ace Jack offsuit", "AJo", TierStrong},

		// Medium hands
		{"Pocket Nines", "99", TierMedium},
		{"Pocket Sevens", "77", TierMedium},
		{"King Queen suited", "KQs", TierMedium},
		{"Queen Jack suited", "QJs", TierMedium},

		// Weak hands
		{"Pocket Sixes", "66", TierWeak},
		{"Pocket Twos", "22", TierWeak},
		{"Suited connectors 76s", "76s", TierWeak},
		{"Suited one-gapper 53s", "53s", TierWeak},

		// Trash hands
		{"Seven Two offsuit", "72o", TierTrash},
		{"King Queen offsuit", "KQo", TierTrash},
		{"Jack Four offsuit", "J4o", TierTrash},

		{"Not a hand", "ZZ", TierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategorizeHand(tt.label); got != tt.expected {
				t.Errorf("CategorizeHand(%s) = %s, want %s", tt.label, got, tt.expected)
			}
		})
	}
}
