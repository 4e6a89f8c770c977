package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgGreeted is sent once the startup greeting has been spoken.
type MsgGreeted struct {
	Lines []string
}

func (MsgGreeted) sealed() {}

// MsgReplied is sent when an utterance has been handled.
// Running is false after the exit command.
type MsgReplied struct {
	Lines   []string
	Running bool
}

func (MsgReplied) sealed() {}
