package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"cppfqn/internal/driver"
	"cppfqn/internal/ui"
)

type parseOutcome struct {
	results []*driver.FileResult
	err     error
}

func runParseWithUI(ctx context.Context, files []string, opts driver.Options, out io.Writer) ([]*driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		opts.Sink = driver.ChannelSink{Ch: events}
		res, err := driver.ParseFiles(ctx, files, opts)
		outcomeCh <- parseOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("parse", files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	if uiErr != nil {
		// Воркеры не должны блокироваться на полном канале
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
