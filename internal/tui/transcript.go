package tui

import (
	"sync"

	"github.com/runoshun/vassist/internal/domain"
)

// Transcript collects spoken lines for the chat view and forwards them to an optional voice.
type Transcript struct {
	voice domain.Speaker
	lines []string
	mu    sync.Mutex
}

// Ensure Transcript implements domain.Speaker.
var _ domain.Speaker = (*Transcript)(nil)

// NewTranscript creates a Transcript. voice may be nil.
func NewTranscript(voice domain.Speaker) *Transcript {
	return &Transcript{voice: voice}
}

// Speak records the text, then plays it through the voice.
func (t *Transcript) Speak(text string) {
	t.mu.Lock()
	t.lines = append(t.lines, text)
	t.mu.Unlock()

	if t.voice != nil {
		t.voice.Speak(text)
	}
}

// Drain returns the lines recorded since the previous call.
func (t *Transcript) Drain() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	lines := t.lines
	t.lines = nil
	return lines
}
