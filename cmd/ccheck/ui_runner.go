package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ccheck/internal/config"
	"ccheck/internal/driver"
	"ccheck/internal/ui"
)

type runOutcome struct {
	report *driver.Report
	err    error
}

// runWithUI runs the driver in the background and renders its progress
// events until the run finishes.
func runWithUI(ctx context.Context, title string, files []string, cfg *config.Config, targets []driver.Target, opts driver.Options) (*driver.Report, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Progress = driver.ChannelSink{Ch: events}
		report, err := driver.RunTargets(ctx, cfg, targets, runOpts)
		outcomeCh <- runOutcome{report: report, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}
