package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"graft/internal/driver"
	"graft/internal/ui"
)

type checkOutcome struct {
	reports []driver.FileReport
	err     error
}

// runCheckWithUI runs the batch check behind a progress display. The check
// itself runs on a goroutine feeding the event channel; closing the channel
// tells the model to quit.
func runCheckWithUI(ctx context.Context, title string, files []string, opts driver.CheckOptions) ([]driver.FileReport, error) {
	events := make(chan driver.CheckEvent, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = events
		reports, err := driver.CheckPaths(ctx, files, optsCopy)
		outcomeCh <- checkOutcome{reports: reports, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.reports, uiErr
	}
	return outcome.reports, outcome.err
}
