package poker

import (
	"fmt"
	"slices"
	"strings"
)

// ExpandNotation expands standard range notation into canonical hand labels.
// Examples: "AA,KK", "AKs,AKo", "AK", "TT+", "A5s-A2s", "KTs+", "22-66".
// The result is deduplicated and sorted in grid order.
func ExpandNotation(notation string) ([]string, error) {
	seen := make(map[int]struct{})

	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		labels, err := expandPart(part)
		if err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
		for _, label := range labels {
			seen[labelIndex[label]] = struct{}{}
		}
	}

	indices := make([]int, 0, len(seen))
	for idx := range seen {
		indices = append(indices, idx)
	}
	slices.Sort(indices)

	labels := make([]string, len(indices))
	for i, idx := range indices {
		labels[i] = gridLabels[idx]
	}
	return labels, nil
}

// ExpandAll expands each entry of a list with ExpandNotation and concatenates the
// results, preserving first occurrence order.
func ExpandAll(entries []string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	for _, entry := range entries {
		labels, err := ExpandNotation(entry)
		if err != nil {
			return nil, err
		}
		for _, label := range labels {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	return out, nil
}

func expandPart(part string) ([]string, error) {
	if strings.Contains(part, "+") {
		return expandPlus(part)
	}
	if strings.Contains(part, "-") {
		return expandDash(part)
	}
	return expandSingle(part)
}

// shape selects which of suited/offsuit a non-pair notation covers.
type shape struct {
	suited  bool
	offsuit bool
}

func parseShape(base string) (shape, error) {
	if len(base) == 2 {
		return shape{suited: true, offsuit: true}, nil
	}
	switch base[2] {
	case 's':
		return shape{suited: true}, nil
	case 'o':
		return shape{offsuit: true}, nil
	default:
		return shape{}, fmt.Errorf("invalid modifier: %c", base[2])
	}
}

func expandSingle(notation string) ([]string, error) {
	if len(notation) < 2 || len(notation) > 3 {
		return nil, fmt.Errorf("invalid notation length: %s", notation)
	}

	rank1 := parseRank(notation[0])
	rank2 := parseRank(notation[1])
	if rank1 == 0 || rank2 == 0 {
		return nil, fmt.Errorf("invalid rank in: %s", notation)
	}

	if rank1 == rank2 {
		if len(notation) == 3 {
			return nil, fmt.Errorf("pocket pairs cannot have suited/offsuit modifier: %s", notation)
		}
		return []string{pairLabel(rank1)}, nil
	}
	if rank2 > rank1 {
		return nil, fmt.Errorf("higher rank must come first: %s", notation)
	}

	s, err := parseShape(notation)
	if err != nil {
		return nil, err
	}
	return unpairedLabels(rank1, rank2, s), nil
}

// expandPlus handles "TT+" (pairs TT and higher) and "KTs+" (kicker up to one below the high card).
func expandPlus(notation string) ([]string, error) {
	base, rest, _ := strings.Cut(notation, "+")
	if rest != "" {
		return nil, fmt.Errorf("unexpected text after +: %s", notation)
	}
	if len(base) < 2 || len(base) > 3 {
		return nil, fmt.Errorf("invalid base notation: %s", base)
	}

	rank1 := parseRank(base[0])
	rank2 := parseRank(base[1])
	if rank1 == 0 || rank2 == 0 {
		return nil, fmt.Errorf("invalid rank")
	}

	var labels []string
	if rank1 == rank2 {
		if len(base) == 3 {
			return nil, fmt.Errorf("pocket pairs cannot have suited/offsuit modifier: %s", base)
		}
		for rank := rank1; rank <= 14; rank++ {
			labels = append(labels, pairLabel(rank))
		}
		return labels, nil
	}

	if rank2 > rank1 {
		return nil, fmt.Errorf("higher rank must come first: %s", base)
	}
	s, err := parseShape(base)
	if err != nil {
		return nil, err
	}
	for rank := rank2; rank < rank1; rank++ {
		labels = append(labels, unpairedLabels(rank1, rank, s)...)
	}
	return labels, nil
}

// expandDash handles "22-66" and "A5s-A2s".
func expandDash(notation string) ([]string, error) {
	parts := strings.Split(notation, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid dash range format")
	}

	start := strings.TrimSpace(parts[0])
	end := strings.TrimSpace(parts[1])
	if len(start) < 2 || len(end) < 2 || len(start) > 3 || len(end) > 3 {
		return nil, fmt.Errorf("invalid notation in range")
	}

	startRank1 := parseRank(start[0])
	startRank2 := parseRank(start[1])
	endRank1 := parseRank(end[0])
	endRank2 := parseRank(end[1])
	if startRank1 == 0 || startRank2 == 0 || endRank1 == 0 || endRank2 == 0 {
		return nil, fmt.Errorf("invalid ranks in range")
	}

	var labels []string
	if startRank1 == startRank2 && endRank1 == endRank2 {
		for rank := min(startRank1, endRank1); rank <= max(startRank1, endRank1); rank++ {
			labels = append(labels, pairLabel(rank))
		}
		return labels, nil
	}

	if startRank1 != endRank1 {
		return nil, fmt.Errorf("unsupported range format: %s", notation)
	}
	if len(start) != len(end) || (len(start) == 3 && start[2] != end[2]) {
		return nil, fmt.Errorf("mismatched modifiers: %s", notation)
	}

	s, err := parseShape(start)
	if err != nil {
		return nil, err
	}
	lower := min(startRank2, endRank2)
	upper := max(startRank2, endRank2)
	if upper >= startRank1 {
		return nil, fmt.Errorf("kicker must be below the high card: %s", notation)
	}
	for rank := lower; rank <= upper; rank++ {
		labels = append(labels, unpairedLabels(startRank1, rank, s)...)
	}
	return labels, nil
}

// rankSymbol maps a rank value (2-14) back to its symbol.
func rankSymbol(value int) byte {
	return byte(Ranks[14-value])
}

func pairLabel(rank int) string {
	sym := rankSymbol(rank)
	return string([]byte{sym, sym})
}

func unpairedLabels(rank1, rank2 int, s shape) []string {
	high, low := max(rank1, rank2), min(rank1, rank2)
	prefix := []byte{rankSymbol(high), rankSymbol(low)}

	var labels []string
	if s.suited {
		labels = append(labels, string(append(prefix[:2:2], 's')))
	}
	if s.offsuit {
		labels = append(labels, string(append(prefix[:2:2], 'o')))
	}
	return labels
}

// parseRank converts a rank character to its numeric value (2-14), or 0.
func parseRank(c byte) int {
	switch c {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return int(c - '0')
	case 'T':
		return 10
	case 'J':
		return 11
	case 'Q':
		return 12
	case 'K':
		return 13
	case 'A':
		return 14
	default:
		return 0
	}
}
