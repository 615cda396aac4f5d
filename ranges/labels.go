package ranges

// Locale selects the language of display strings.
type Locale string

const (
	English    Locale = "en"
	Portuguese Locale = "pt-BR"
)

// ParseLocale returns the locale for a tag, falling back to English.
func ParseLocale(tag string) Locale {
	switch tag {
	case "pt", "pt-BR", "pt_BR", "pt-br":
		return Portuguese
	default:
		return English
	}
}

type actionWords struct {
	raise, threeBet, fourBet, call, fold string
}

var actionText = map[Locale]actionWords{
	English:    {raise: "Raise", threeBet: "3-Bet", fourBet: "4-Bet", call: "Call", fold: "Fold"},
	Portuguese: {raise: "Raise", threeBet: "3-Bet", fourBet: "4-Bet", call: "Pagar", fold: "Desistir"},
}

// ActionLabel returns the English display name of an action in a scenario.
// The same stored action reads differently by scenario: Raise is "Raise" when
// opening and "4-Bet" when facing a 3-bet. Combinations that cannot occur in
// the scenario (a call when opening) return the action's own name.
func ActionLabel(action Action, scenario Scenario) string {
	return ActionLabelIn(English, action, scenario)
}

// ActionLabelIn is ActionLabel for a specific locale.
func ActionLabelIn(locale Locale, action Action, scenario Scenario) string {
	words, ok := actionText[locale]
	if !ok {
		words = actionText[English]
	}

	switch scenario {
	case Open:
		switch action {
		case Raise:
			return words.raise
		case Fold:
			return words.fold
		}
	case FacingRaise:
		switch action {
		case ThreeBet:
			return words.threeBet
		case Call:
			return words.call
		case Fold:
			return words.fold
		}
	case Facing3Bet:
		switch action {
		case Raise:
			return words.fourBet
		case Call:
			return words.call
		case Fold:
			return words.fold
		}
	}
	return action.String()
}

// AvailableActions returns the answers that make sense in a scenario.
func AvailableActions(scenario Scenario) []Action {
	switch scenario {
	case Open:
		return []Action{Raise, Fold}
	case FacingRaise:
		return []Action{ThreeBet, Call, Fold}
	case Facing3Bet:
		return []Action{Raise, Call, Fold}
	default:
		return nil
	}
}

type labelSet struct {
	tableSizes           map[TableSize]string
	tableSizeDescription map[TableSize]string
	positions            map[Position]string
	scenarios            map[Scenario]string
	scenarioDescription  map[Scenario]string
}

var labels = map[Locale]labelSet{
	English: {
		tableSizes: map[TableSize]string{
			SixMax:  "6-Max",
			NineMax: "9-Max (Full Ring)",
			HeadsUp: "Heads-Up",
		},
		tableSizeDescription: map[TableSize]string{
			SixMax:  "6 players at the table",
			NineMax: "9 players at the table (full ring)",
			HeadsUp: "2 players at the table",
		},
		positions: map[Position]string{
			UTG:  "Under the Gun (UTG)",
			UTG1: "UTG+1",
			UTG2: "UTG+2",
			LJ:   "Lojack (LJ)",
			HJ:   "Hijack (HJ)",
			MP:   "Middle Position (MP)",
			CO:   "Cutoff (CO)",
			BTN:  "Button (BTN)",
			SB:   "Small Blind (SB)",
			BB:   "Big Blind (BB)",
		},
		scenarios: map[Scenario]string{
			Open:        "Open (RFI)",
			FacingRaise: "Facing a Raise (Call / 3-Bet)",
			Facing3Bet:  "Facing a 3-Bet",
		},
		scenarioDescription: map[Scenario]string{
			Open:        "Nobody has opened before you. Raise or fold?",
			FacingRaise: "A player opened with a raise. Call, 3-bet or fold?",
			Facing3Bet:  "You raised and someone 3-bet. Call, fold or 4-bet?",
		},
	},
	Portuguese: {
		tableSizes: map[TableSize]string{
			SixMax:  "6-Max",
			NineMax: "9-Max (Mesa Cheia)",
			HeadsUp: "Heads-Up",
		},
		tableSizeDescription: map[TableSize]string{
			SixMax:  "6 jogadores na mesa",
			NineMax: "9 jogadores na mesa (mesa cheia)",
			HeadsUp: "2 jogadores na mesa",
		},
		positions: map[Position]string{
			UTG:  "Under the Gun (UTG)",
			UTG1: "UTG+1",
			UTG2: "UTG+2",
			LJ:   "Lojack (LJ)",
			HJ:   "Hijack (HJ)",
			MP:   "Posicao do Meio (MP)",
			CO:   "Cutoff (CO)",
			BTN:  "Botao (BTN)",
			SB:   "Small Blind (SB)",
			BB:   "Big Blind (BB)",
		},
		scenarios: map[Scenario]string{
			Open:        "Abrir a Mao (RFI)",
			FacingRaise: "Contra um Raise (Call / 3-Bet)",
			Facing3Bet:  "Contra um 3-Bet",
		},
		scenarioDescription: map[Scenario]string{
			Open:        "Ninguem abriu antes de voce. Voce deve dar raise ou fold?",
			FacingRaise: "Um jogador abriu com raise. Voce deve dar call, 3-bet ou fold?",
			Facing3Bet:  "Voce deu raise e alguem fez 3-bet. Voce deve dar call, fold ou 4-bet?",
		},
	},
}

func labelsFor(locale Locale) labelSet {
	if set, ok := labels[locale]; ok {
		return set
	}
	return labels[English]
}

// TableSizeLabel returns the display name of a table size.
func TableSizeLabel(locale Locale, size TableSize) string {
	if s, ok := labelsFor(locale).tableSizes[size]; ok {
		return s
	}
	return size.String()
}

// TableSizeDescription returns a one-line description of a table size.
func TableSizeDescription(locale Locale, size TableSize) string {
	return labelsFor(locale).tableSizeDescription[size]
}

// PositionLabel returns the display name of a seat.
func PositionLabel(locale Locale, position Position) string {
	if s, ok := labelsFor(locale).positions[position]; ok {
		return s
	}
	return string(position)
}

// ScenarioLabel returns the display name of a scenario.
func ScenarioLabel(locale Locale, scenario Scenario) string {
	if s, ok := labelsFor(locale).scenarios[scenario]; ok {
		return s
	}
	return scenario.String()
}

// ScenarioDescription returns the question a scenario asks.
func ScenarioDescription(locale Locale, scenario Scenario) string {
	return labelsFor(locale).scenarioDescription[scenario]
}
