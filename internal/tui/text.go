package tui

import "github.com/lox/rangetrainer/ranges"

// quizText holds the quiz strings that are not chart vocabulary.
type quizText struct {
	correct string // hand, action
	wrong   string // hand, expected action, given action
	score   string // correct, answered, accuracy, streak, best
}

var quizTexts = map[ranges.Locale]quizText{
	ranges.English: {
		correct: "Correct: %s %s",
		wrong:   "Wrong: %s is %s, not %s",
		score:   "%d/%d (%.0f%%)  streak %d  best %d",
	},
	ranges.Portuguese: {
		correct: "Acertou: %s %s",
		wrong:   "Errou: a jogada certa com %s era %s, nao %s",
		score:   "%d/%d (%.0f%%)  sequencia %d  recorde %d",
	},
}

func textFor(locale ranges.Locale) quizText {
	if t, ok := quizTexts[locale]; ok {
		return t
	}
	return quizTexts[ranges.English]
}
