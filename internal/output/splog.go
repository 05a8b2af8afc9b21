// Package output provides the user-facing printer for grit commands.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Splog provides structured logging and output
type Splog struct {
	writer io.Writer
	errW   io.Writer
	styles styles
}

type styles struct {
	section lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	tip     lipgloss.Style
	dim     lipgloss.Style
}

// NewSplog creates a splog writing to stdout/stderr, with colors enabled
// only on a terminal
func NewSplog() *Splog {
	s := NewSplogTo(os.Stdout, os.Stderr)
	if !colorsEnabled() {
		s.styles = styles{}
	}
	return s
}

// NewSplogTo creates a splog writing to the given writers; used by tests
func NewSplogTo(w, errW io.Writer) *Splog {
	return &Splog{
		writer: w,
		errW:   errW,
		styles: styles{
			section: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
			warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			err:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			tip:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

func colorsEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Info writes a plain info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Section writes a step banner
func (s *Splog) Section(format string, args ...interface{}) {
	fmt.Fprintln(s.writer, s.styles.section.Render(fmt.Sprintf("--- "+format+" ---", args...)))
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintln(s.writer, s.styles.warn.Render(fmt.Sprintf(format, args...)))
}

// Error writes an error message to the error stream
func (s *Splog) Error(format string, args ...interface{}) {
	fmt.Fprintln(s.errW, s.styles.err.Render(fmt.Sprintf(format, args...)))
}

// Tip writes a hint for the operator
func (s *Splog) Tip(format string, args ...interface{}) {
	fmt.Fprintln(s.writer, s.styles.tip.Render(fmt.Sprintf(format, args...)))
}

// Dim writes de-emphasized output
func (s *Splog) Dim(format string, args ...interface{}) {
	fmt.Fprintln(s.writer, s.styles.dim.Render(fmt.Sprintf(format, args...)))
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}
