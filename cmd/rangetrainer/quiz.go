package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/lox/rangetrainer/internal/trainer"
	"github.com/lox/rangetrainer/internal/tui"
)

// QuizCmd runs the interactive quiz.
type QuizCmd struct {
	Selection `embed:""`
	Seed      int64          `help:"Deterministic seed (0 = random)"`
	Delay     *time.Duration `help:"Pause after each answer (overrides config)"`
	ShowChart bool           `name:"show-chart" help:"Start with the chart visible"`
}

func (c *QuizCmd) Run(app *App) error {
	size, position, scenario, err := c.resolve(app.Config)
	if err != nil {
		return err
	}
	seed := c.Seed
	if seed == 0 {
		seed = app.Config.Trainer.Seed
	}
	delay := app.Config.Delay()
	if c.Delay != nil {
		delay = *c.Delay
	}

	clock := quartz.NewReal()
	session, err := trainer.New(trainer.Options{
		Catalog:     app.Catalog,
		TableSize:   size,
		Position:    position,
		Scenario:    scenario,
		Seed:        seed,
		Clock:       clock,
		HistorySize: app.Config.Trainer.HistorySize,
		Logger:      app.Logger,
	})
	if err != nil {
		return err
	}

	model := tui.NewQuizModel(tui.QuizOptions{
		Session:       session,
		Chart:         app.Renderer(),
		Locale:        app.Config.Locale(),
		Logger:        app.Logger,
		Clock:         clock,
		FeedbackDelay: delay,
		ShowChart:     c.ShowChart,
	})
	if err := tui.Run(model, tea.WithAltScreen(), tea.WithContext(app.Context)); err != nil {
		return err
	}

	printSummary(app, session)
	return nil
}

func printSummary(app *App, session *trainer.Session) {
	sum := session.Summary()
	if sum.Answered == 0 {
		return
	}
	stats := session.Statistics()
	lo, hi := stats.ConfidenceInterval95()
	fmt.Fprintf(app.Out, "%d/%d correct (%.1f%%, 95%% CI %.0f-%.0f%%), best streak %d, median answer %s\n",
		sum.Correct, sum.Answered, sum.Accuracy, 100*lo, 100*hi, sum.BestStreak,
		stats.MedianResponse().Round(100*time.Millisecond))
	if seat, b, ok := stats.Weakest(5); ok {
		fmt.Fprintf(app.Out, "weakest seat: %s (%.0f%% over %d hands)\n", seat, 100*b.Accuracy(), b.Answers)
	}
}
