package domain

// ContextState is the single-slot conversational memory.
// It holds the most recent successfully resolved lookup topic.
// The zero value is empty and ready to use.
type ContextState struct {
	lastTopic string
	set       bool
}

// SetTopic records topic as the follow-up subject.
func (c *ContextState) SetTopic(topic string) {
	c.lastTopic = topic
	c.set = true
}

// ClearTopic forgets the follow-up subject.
func (c *ContextState) ClearTopic() {
	c.lastTopic = ""
	c.set = false
}

// LastTopic returns the follow-up subject without consuming it.
func (c *ContextState) LastTopic() (string, bool) {
	return c.lastTopic, c.set
}
