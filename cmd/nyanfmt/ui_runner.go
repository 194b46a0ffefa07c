package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"nyanfmt/internal/driver"
	"nyanfmt/internal/ui"
)

// uiMode is the --ui flag: auto|on|off.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	m := uiMode(strings.ToLower(strings.TrimSpace(value)))
	if m == "" {
		return uiModeAuto, nil
	}
	if m != uiModeAuto && m != uiModeOn && m != uiModeOff {
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
	return m, nil
}

// shouldUseTUI: auto включает прогресс только в терминале и только когда
// stdout не занят отформатированным текстом или JSON.
func shouldUseTUI(mode uiMode, stdoutBusy bool) bool {
	if mode == uiModeAuto {
		return !stdoutBusy && isTerminal(os.Stdout)
	}
	return mode == uiModeOn
}

type formatOutcome struct {
	run *driver.FormatRun
	err error
}

// runFormatWithUI runs FormatPaths in the background and renders its
// progress events until the run finishes.
func runFormatWithUI(ctx context.Context, title string, files []string, opts driver.FormatOptions) (*driver.FormatRun, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		run, err := driver.FormatPaths(ctx, files, optsCopy)
		outcomeCh <- formatOutcome{run: run, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	if uiErr != nil {
		// UI упал: дочитываем события, чтобы воркеры не заблокировались
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.run, uiErr
	}
	return outcome.run, outcome.err
}
