package poker

// StrengthTier is a coarse strength bucket for a starting hand.
type StrengthTier string

const (
	TierPremium StrengthTier = "Premium"
	TierStrong  StrengthTier = "Strong"
	TierMedium  StrengthTier = "Medium"
	TierWeak    StrengthTier = "Weak"
	TierTrash   StrengthTier = "Trash"
	TierUnknown StrengthTier = "Unknown"
)

// CategorizeHand provides a simple preflop tier for a canonical label.
// Tiers: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77-99, suited broadway),
// Weak (small pairs, suited connectors), Trash (everything else).
func CategorizeHand(label string) StrengthTier {
	row, col, err := ParseHandLabel(label)
	if err != nil {
		return TierUnknown
	}

	// Grid index to 2-14 rank values.
	big := 14 - min(row, col)
	small := 14 - max(row, col)
	isPair := row == col
	suited := row < col

	// Premium: JJ+, AK (any suit)
	if isPair && small >= 11 {
		return TierPremium
	}
	if small == 13 && big == 14 {
		return TierPremium
	}

	// Strong: TT, AQ, AJ
	if isPair && small == 10 {
		return TierStrong
	}
	if big == 14 && (small == 12 || small == 11) {
		return TierStrong
	}

	// Medium: 77-99, suited broadway cards (KQ, KJ, QJ suited)
	if isPair && small >= 7 && small <= 9 {
		return TierMedium
	}
	if suited && small >= 10 && big >= 10 {
		return TierMedium
	}

	// Weak: small pairs (22-66) or suited connectors
	if isPair {
		return TierWeak
	}
	if suited && big-small <= 2 {
		return TierWeak
	}

	return TierTrash
}
