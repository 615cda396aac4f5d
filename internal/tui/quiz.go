package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rangetrainer/internal/chart"
	"github.com/lox/rangetrainer/internal/trainer"
	"github.com/lox/rangetrainer/poker"
	"github.com/lox/rangetrainer/ranges"
)

// feedbackDoneMsg ends the pause after an answer. seq ties it to the answer
// that started it so a stale tick cannot unlock a later one.
type feedbackDoneMsg struct{ seq int }

// QuizModel is the Bubble Tea model for the quiz
type QuizModel struct {
	session *trainer.Session
	chart   *chart.Renderer
	locale  ranges.Locale
	text    quizText
	logger  *log.Logger
	clock   quartz.Clock
	delay   time.Duration

	keys     keyMap
	help     help.Model
	history  viewport.Model
	showGrid bool

	last    *trainer.Result
	status  string
	waiting bool
	seq     int

	width    int
	height   int
	quitting bool
}

// QuizOptions configures a QuizModel
type QuizOptions struct {
	Session       *trainer.Session
	Chart         *chart.Renderer
	Locale        ranges.Locale
	Logger        *log.Logger
	Clock         quartz.Clock  // times the feedback pause, real clock when nil
	FeedbackDelay time.Duration // pause after each answer, 0 for none
	ShowChart     bool
}

// NewQuizModel creates the quiz model
func NewQuizModel(opts QuizOptions) *QuizModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	vp := viewport.New(40, 8)
	m := &QuizModel{
		session:  opts.Session,
		chart:    opts.Chart,
		locale:   opts.Locale,
		text:     textFor(opts.Locale),
		logger:   logger.WithPrefix("tui"),
		clock:    clock,
		delay:    opts.FeedbackDelay,
		keys:     newKeyMap(),
		help:     help.New(),
		history:  vp,
		showGrid: opts.ShowChart,
	}
	m.relabel()
	return m
}

func (m *QuizModel) relabel() {
	_, _, scenario := m.session.Settings()
	m.keys.relabel(m.locale, scenario)
}

// Init implements tea.Model
func (m *QuizModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.history.Width = max(20, msg.Width/2)
		return m, nil

	case feedbackDoneMsg:
		if msg.seq == m.seq {
			m.waiting = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *QuizModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Chart):
		m.showGrid = !m.showGrid

	case key.Matches(msg, m.keys.Next):
		m.waiting = false
		m.session.Next()
		m.status = ""

	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()
		m.last, m.status, m.waiting = nil, "", false
		m.refreshHistory()

	case key.Matches(msg, m.keys.Position):
		m.cyclePosition()

	case key.Matches(msg, m.keys.Scenario):
		m.cycleScenario()

	case key.Matches(msg, m.keys.Table):
		m.cycleTableSize()

	case key.Matches(msg, m.keys.Aggressive, m.keys.ThreeBet):
		return m.answer(m.aggressiveAction())

	case key.Matches(msg, m.keys.Call):
		return m.answer(ranges.Call)

	case key.Matches(msg, m.keys.Fold):
		return m.answer(ranges.Fold)
	}
	return m, nil
}

func (m *QuizModel) aggressiveAction() ranges.Action {
	_, _, scenario := m.session.Settings()
	if scenario == ranges.FacingRaise {
		return ranges.ThreeBet
	}
	return ranges.Raise
}

func (m *QuizModel) answer(action ranges.Action) (tea.Model, tea.Cmd) {
	if m.waiting {
		return m, nil
	}
	result, err := m.session.Answer(action)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.last = &result
	m.status = ""
	m.refreshHistory()

	if m.delay <= 0 {
		return m, nil
	}
	m.seq++
	m.waiting = true
	return m, m.feedbackTimer(m.seq)
}

// feedbackTimer waits out the feedback pause on the model's clock.
func (m *QuizModel) feedbackTimer(seq int) tea.Cmd {
	clock, delay := m.clock, m.delay
	return func() tea.Msg {
		timer := clock.NewTimer(delay, "feedback")
		<-timer.C
		return feedbackDoneMsg{seq: seq}
	}
}

func (m *QuizModel) cyclePosition() {
	size, current, _ := m.session.Settings()
	seats := ranges.ValidPositions(size)
	start := indexOf(seats, current)
	for i := 1; i <= len(seats); i++ {
		next := seats[(start+i)%len(seats)]
		err := m.session.SetPosition(next)
		if err == nil {
			m.afterSwitch()
			return
		}
		if !errors.Is(err, ranges.ErrNoRange) {
			m.status = err.Error()
			return
		}
	}
}

func (m *QuizModel) cycleScenario() {
	_, _, current := m.session.Settings()
	all := ranges.Scenarios()
	next := all[(indexOf(all, current)+1)%len(all)]
	if err := m.session.SetScenario(next); err != nil {
		m.status = err.Error()
		return
	}
	m.afterSwitch()
}

func (m *QuizModel) cycleTableSize() {
	current, _, _ := m.session.Settings()
	all := ranges.TableSizes()
	next := all[(indexOf(all, current)+1)%len(all)]
	if err := m.session.SetTableSize(next); err != nil {
		m.status = err.Error()
		return
	}
	m.afterSwitch()
}

func (m *QuizModel) afterSwitch() {
	m.relabel()
	m.last, m.status, m.waiting = nil, "", false
	size, pos, scenario := m.session.Settings()
	m.logger.Debug("Chart changed", "table", size, "position", pos, "scenario", scenario)
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

func (m *QuizModel) refreshHistory() {
	var lines []string
	for _, r := range m.session.History() {
		mark := SuccessStyle.Render("✓")
		if !r.Correct {
			mark = ErrorStyle.Render("✗")
		}
		lines = append(lines, fmt.Sprintf("%s %-4s %-4s %s",
			mark,
			r.Question.Hand.Label,
			r.Question.Position,
			ranges.ActionLabelIn(m.locale, r.Expected, r.Question.Scenario)))
	}
	m.history.SetContent(strings.Join(lines, "\n"))
	m.history.GotoTop()
}

// View renders the quiz
func (m *QuizModel) View() string {
	if m.quitting {
		return ""
	}

	size, pos, scenario := m.session.Settings()
	q := m.session.Current()

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%s · %s · %s",
		ranges.TableSizeLabel(m.locale, size),
		ranges.PositionLabel(m.locale, pos),
		ranges.ScenarioLabel(m.locale, scenario))))
	b.WriteString("\n\n")
	b.WriteString(QuestionStyle.Render(ranges.ScenarioDescription(m.locale, scenario)))
	b.WriteString("\n\n")
	b.WriteString(renderCards(q.Cards))
	b.WriteString("  ")
	b.WriteString(HandLabelStyle.Render(q.Hand.Label))
	b.WriteString("\n\n")

	if m.last != nil {
		b.WriteString(m.renderFeedback(*m.last))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(ErrorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.renderScore())
	b.WriteString("\n")

	if m.showGrid && m.chart != nil {
		var highlight *ranges.Hand
		if m.last != nil {
			highlight = &m.last.Question.Hand
		}
		b.WriteString("\n")
		b.WriteString(m.chart.Grid(m.session.Table(), highlight))
		b.WriteString("\n")
		b.WriteString(m.chart.Legend(m.session.Table()))
		b.WriteString("\n")
	}

	if len(m.session.History()) > 0 {
		b.WriteString("\n")
		b.WriteString(HistoryStyle.Render(m.history.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func renderCards(cards [2]poker.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		style := BlackCardStyle
		if c.Suit.Red() {
			style = RedCardStyle
		}
		parts = append(parts, style.Render(c.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts[0], " ", parts[1])
}

func (m *QuizModel) renderFeedback(r trainer.Result) string {
	want := ranges.ActionLabelIn(m.locale, r.Expected, r.Question.Scenario)
	tier := poker.CategorizeHand(r.Question.Hand.Label)
	if r.Correct {
		return SuccessStyle.Render(fmt.Sprintf(m.text.correct, r.Question.Hand.Label, want)) +
			InfoStyle.Render(fmt.Sprintf("  (%s, %.1fs)", tier, r.ResponseTime.Seconds()))
	}
	got := ranges.ActionLabelIn(m.locale, r.Answer, r.Question.Scenario)
	return ErrorStyle.Render(fmt.Sprintf(m.text.wrong, r.Question.Hand.Label, want, got)) +
		InfoStyle.Render(fmt.Sprintf("  (%s)", tier))
}

func (m *QuizModel) renderScore() string {
	sum := m.session.Summary()
	return ScoreStyle.Render(fmt.Sprintf(m.text.score,
		sum.Correct, sum.Answered, sum.Accuracy, sum.Streak, sum.BestStreak))
}

// Waiting reports whether answers are paused after feedback
func (m *QuizModel) Waiting() bool {
	return m.waiting
}

// Run starts the quiz program on the terminal
func Run(m *QuizModel, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	return err
}
