package main

import (
	"fmt"
	"time"

	"github.com/theckman/yacspin"
)

// progressSpinner reports harness progress on the terminal.
// All methods are no-ops on a nil receiver.
type progressSpinner struct {
	spinner *yacspin.Spinner
}

func newProgressSpinner(message string) (*progressSpinner, error) {
	settings := yacspin.Config{
		Frequency:         100 * time.Millisecond,
		ShowCursor:        false,
		SpinnerAtEnd:      false,
		CharSet:           yacspin.CharSets[14],
		Colors:            []string{"fgHiCyan"},
		StopColors:        []string{"fgHiGreen"},
		StopFailColors:    []string{"fgHiRed"},
		StopFailCharacter: "✗",
		StopCharacter:     "✓",
	}

	spinner, err := yacspin.New(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create spinner: %w", err)
	}
	spinner.Message(message)

	if err := spinner.Start(); err != nil {
		return nil, fmt.Errorf("failed to start spinner: %w", err)
	}
	return &progressSpinner{spinner: spinner}, nil
}

func (p *progressSpinner) progress() func(done, total int) {
	if p == nil {
		return nil
	}
	return func(done, total int) {
		p.spinner.Message(progressText(done, total))
	}
}

func (p *progressSpinner) done(fastest string) {
	if p == nil {
		return
	}
	p.spinner.StopMessage(fmt.Sprintf(" finished, fastest: %s", fastest))
	_ = p.spinner.Stop()
}

func (p *progressSpinner) fail(err error) {
	if p == nil {
		return
	}
	p.spinner.StopFailMessage(fmt.Sprintf(" benchmark failed: %v", err))
	_ = p.spinner.StopFail()
}

func progressText(done, total int) string {
	return fmt.Sprintf(" iteration %d/%d - %.0f%%", done, total, float64(done)/float64(total)*100)
}
