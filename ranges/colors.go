package ranges

// Color is a presentation colour token in #RRGGBB form.
type Color string

// Chart colours. Each background has a paired foreground that stays readable on it.
const (
	RaiseColor    Color = "#1FC28A" // green
	ThreeBetColor Color = "#E3A33B" // amber
	CallColor     Color = "#3E7FD6" // blue
	FoldColor     Color = "#23262D" // dark neutral

	DarkText  Color = "#0B0C10"
	LightText Color = "#F1F1F1"
	MutedText Color = "#6B6B6B"
)

// ActionColor returns the cell colour for an action. It does not depend on the scenario.
func ActionColor(action Action) Color {
	switch action {
	case Raise:
		return RaiseColor
	case ThreeBet:
		return ThreeBetColor
	case Call:
		return CallColor
	default:
		return FoldColor
	}
}

// ActionTextColor returns the foreground colour paired with ActionColor.
func ActionTextColor(action Action) Color {
	switch action {
	case Raise, ThreeBet:
		return DarkText
	case Call:
		return LightText
	default:
		return MutedText
	}
}
