// Package speech provides the speech input and output collaborators.
//
// Speech synthesis and recognition are delegated to external programs
// configured by the user; the console implementations stand in when none
// are configured.
package speech

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/vassist/internal/domain"
)

// Colors for console output.
var (
	colorAssistant = lipgloss.Color("#6C5CE7") // Purple
	colorUser      = lipgloss.Color("#00B894") // Green
	colorMuted     = lipgloss.Color("#636E72") // Gray
)

// ConsoleSpeaker prints spoken text to a writer.
// It is the stand-in used when no text-to-speech program is available.
type ConsoleSpeaker struct {
	w     io.Writer
	label lipgloss.Style
}

// Ensure ConsoleSpeaker implements domain.Speaker.
var _ domain.Speaker = (*ConsoleSpeaker)(nil)

// NewConsoleSpeaker creates a ConsoleSpeaker writing to w.
func NewConsoleSpeaker(w io.Writer) *ConsoleSpeaker {
	r := lipgloss.NewRenderer(w)
	return &ConsoleSpeaker{
		w:     w,
		label: r.NewStyle().Bold(true).Foreground(colorAssistant),
	}
}

// Speak prints "Assistant: <text>".
func (s *ConsoleSpeaker) Speak(text string) {
	_, _ = fmt.Fprintf(s.w, "%s %s\n", s.label.Render("Assistant:"), text)
}
