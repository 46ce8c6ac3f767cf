package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// statusStyle for routine progress lines
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// warnStyle for non-fatal warnings
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// doneStyle for completion messages
	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// statusPrinter writes progress messages to the given sink (stderr in
// practice, so they never mix with the document on stdout). Quiet mode
// drops routine and completion lines but keeps warnings.
type statusPrinter struct {
	out   io.Writer
	quiet bool
}

func newStatusPrinter(out io.Writer, quiet bool) *statusPrinter {
	return &statusPrinter{out: out, quiet: quiet}
}

func (p *statusPrinter) Infof(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, statusStyle.Render(fmt.Sprintf(format, args...)))
}

func (p *statusPrinter) Warnf(format string, args ...any) {
	fmt.Fprintln(p.out, warnStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

func (p *statusPrinter) Donef(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, doneStyle.Render(fmt.Sprintf(format, args...)))
}
