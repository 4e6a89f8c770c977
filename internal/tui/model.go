// Package tui provides a terminal chat front-end for the assistant.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Dispatcher handles one utterance and reports whether the session continues.
type Dispatcher interface {
	Dispatch(ctx context.Context, utterance string) bool
}

// Greeter speaks the startup greeting.
type Greeter interface {
	Execute(ctx context.Context) error
}

// Config contains the collaborators of the chat view.
type Config struct {
	Dispatcher Dispatcher
	Greeter    Greeter     // Optional
	Transcript *Transcript // Must be the speaker the dispatcher talks through
}

const (
	prefixUser      = "You: "
	prefixAssistant = "Assistant: "

	defaultWidth  = 80
	defaultHeight = 24
)

type entry struct {
	text string
	user bool
}

// Model is the bubbletea model for the chat view.
// One utterance is handled at a time; sending is disabled until the reply arrives.
type Model struct {
	ctx      context.Context
	config   Config
	styles   Styles
	keys     KeyMap
	entries  []entry
	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int
	busy     bool
	stopped  bool
	quitting bool
}

// New creates a new chat model.
func New(ctx context.Context, cfg Config) *Model {
	if cfg.Transcript == nil {
		cfg.Transcript = NewTranscript(nil)
	}

	ti := textinput.New()
	ti.Placeholder = "Type a command, e.g. what is the weather"
	ti.CharLimit = 512
	ti.Focus()

	m := &Model{
		ctx:      ctx,
		config:   cfg,
		styles:   DefaultStyles(),
		keys:     DefaultKeyMap(),
		input:    ti,
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.updateLayout()
	return m
}

// Stopped reports whether the exit command was handled.
func (m *Model) Stopped() bool {
	return m.stopped
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.greet())
}

func (m *Model) greet() tea.Cmd {
	if m.config.Greeter == nil {
		return nil
	}
	ctx, greeter, transcript := m.ctx, m.config.Greeter, m.config.Transcript
	return func() tea.Msg {
		_ = greeter.Execute(ctx)
		return MsgGreeted{Lines: transcript.Drain()}
	}
}

func (m *Model) dispatch(utterance string) tea.Cmd {
	ctx, dispatcher, transcript := m.ctx, m.config.Dispatcher, m.config.Transcript
	return func() tea.Msg {
		running := dispatcher.Dispatch(ctx, utterance)
		return MsgReplied{Lines: transcript.Drain(), Running: running}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil

	case MsgGreeted:
		m.appendAssistant(msg.Lines)
		return m, nil

	case MsgReplied:
		m.busy = false
		m.appendAssistant(msg.Lines)
		if !msg.Running {
			m.stopped = true
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Send):
		if m.busy || m.config.Dispatcher == nil {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.input.Reset()
		m.entries = append(m.entries, entry{text: text, user: true})
		m.refresh()
		m.busy = true
		return m, m.dispatch(text)

	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) appendAssistant(lines []string) {
	for _, l := range lines {
		m.entries = append(m.entries, entry{text: l})
	}
	m.refresh()
}

func (m *Model) updateLayout() {
	// Header, bordered transcript, bordered input line, status line.
	const chrome = 1 + 2 + 3 + 1

	vpHeight := m.height - chrome
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = m.width - 2
	m.viewport.Height = vpHeight
	m.input.Width = m.width - 6
	m.refresh()
}

func (m *Model) refresh() {
	width := m.viewport.Width - 2
	var lines []string
	for _, e := range m.entries {
		prefix, style := prefixAssistant, m.styles.Assistant
		if e.user {
			prefix, style = prefixUser, m.styles.User
		}
		wrapped := wrap(e.text, width-len(prefix))
		lines = append(lines, style.Render(prefix)+wrapped[0])
		indent := strings.Repeat(" ", len(prefix))
		for _, w := range wrapped[1:] {
			lines = append(lines, indent+w)
		}
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Width(m.width).Render("vassist"))
	b.WriteString("\n")
	b.WriteString(m.styles.Border.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	input := m.input.View()
	if m.busy {
		input = m.styles.Busy.Render("Working on it...")
	}
	b.WriteString(m.styles.Border.Width(m.width - 2).Render(input))
	b.WriteString("\n")
	b.WriteString(m.styles.Status.Width(m.width).Render(m.keys.helpLine()))
	return b.String()
}

// Run starts the chat TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg Config, opts ...tea.ProgramOption) error {
	m := New(ctx, cfg)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
