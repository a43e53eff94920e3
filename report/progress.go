package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

// CLIProgress renders scan phases as pterm spinners on the terminal.
type CLIProgress struct {
	spinner *pterm.SpinnerPrinter
}

// NewCLIProgress creates a terminal progress emitter.
func NewCLIProgress() *CLIProgress {
	return &CLIProgress{}
}

// Phase finishes the previous phase spinner and starts a new one.
func (p *CLIProgress) Phase(name string, fileCount int) {
	p.finish()

	text := name
	if fileCount > 0 {
		text = fmt.Sprintf("%s (%d files)", name, fileCount)
	}
	spinner, err := pterm.DefaultSpinner.Start(text)
	if err != nil {
		// Fall back to a plain line when the terminal rejects the spinner.
		pterm.Info.Println(text)
		return
	}
	p.spinner = spinner
}

// Done finishes the final phase spinner.
func (p *CLIProgress) Done() {
	p.finish()
}

func (p *CLIProgress) finish() {
	if p.spinner != nil {
		p.spinner.Success()
		p.spinner = nil
	}
}
