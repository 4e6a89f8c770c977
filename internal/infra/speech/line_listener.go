package speech

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/vassist/internal/domain"
)

// LineListener reads typed utterances, one per line.
// Blank lines are reported as unrecognized; the end of input as io.EOF.
type LineListener struct {
	lines  chan lineResult
	in     io.Reader
	out    io.Writer
	prompt lipgloss.Style
	once   sync.Once
}

type lineResult struct {
	err  error
	text string
}

// Ensure LineListener implements domain.Listener.
var _ domain.Listener = (*LineListener)(nil)

// NewLineListener creates a LineListener reading from in.
// A prompt is written to out before each read when out is not nil.
func NewLineListener(in io.Reader, out io.Writer) *LineListener {
	l := &LineListener{
		lines: make(chan lineResult),
		in:    in,
		out:   out,
	}
	if out != nil {
		l.prompt = lipgloss.NewRenderer(out).NewStyle().Foreground(colorUser)
	}
	return l
}

// Listen returns the next typed line, or ctx.Err() if ctx is cancelled while waiting.
func (l *LineListener) Listen(ctx context.Context) (string, error) {
	l.once.Do(func() { go l.read() })
	if l.out != nil {
		_, _ = fmt.Fprint(l.out, l.prompt.Render("You: "))
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		if r.err != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, r.err)
		}
		text := strings.TrimSpace(r.text)
		if text == "" {
			return "", domain.ErrUnrecognized
		}
		return text, nil
	}
}

// read forwards lines until the input ends. Each line is handed over only when
// Listen asks for it, so input is consumed one utterance at a time.
func (l *LineListener) read() {
	defer close(l.lines)
	scanner := bufio.NewScanner(l.in)
	for scanner.Scan() {
		l.lines <- lineResult{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		l.lines <- lineResult{err: err}
	}
}
