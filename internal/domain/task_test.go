package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task, err := NewTask("  buy milk \n")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", task.Text)

	_, err = NewTask("   ")
	assert.ErrorIs(t, err, ErrEmptyTask)
}

func TestNormalizeTasks(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{name: "nil", lines: nil, want: []string{}},
		{name: "blank lines dropped", lines: []string{"a", "", "  ", "b"}, want: []string{"a", "b"}},
		{name: "trimmed", lines: []string{"  a  ", "\tb\r"}, want: []string{"a", "b"}},
		{name: "duplicates kept in order", lines: []string{"a", "b", "a"}, want: []string{"a", "b", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TaskTexts(NormalizeTasks(tt.lines)))
		})
	}
}

func TestContextState(t *testing.T) {
	var c ContextState

	_, ok := c.LastTopic()
	assert.False(t, ok)

	c.SetTopic("go language")
	topic, ok := c.LastTopic()
	assert.True(t, ok)
	assert.Equal(t, "go language", topic)

	// Reading does not consume the topic
	topic, ok = c.LastTopic()
	assert.True(t, ok)
	assert.Equal(t, "go language", topic)

	c.ClearTopic()
	_, ok = c.LastTopic()
	assert.False(t, ok)
}

func TestIntent_String(t *testing.T) {
	assert.Equal(t, "add_task", IntentAddTask.String())
	assert.Equal(t, "empty", IntentEmpty.String())
	assert.Equal(t, "unknown", Intent(99).String())
}
