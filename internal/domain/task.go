// Package domain contains core business entities and interfaces.
package domain

import "strings"

// Task is a single free-text to-do item.
// Text is always trimmed and non-empty once the task is part of a list.
type Task struct {
	Text string `yaml:"text"`
}

// NewTask creates a task from raw text.
// Returns ErrEmptyTask if the text is blank after trimming.
func NewTask(text string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyTask
	}
	return Task{Text: text}, nil
}

// String returns the task text.
func (t Task) String() string {
	return t.Text
}

// NormalizeTasks converts stored lines into tasks.
// Lines are trimmed and blank lines are dropped; order and duplicates are kept.
func NormalizeTasks(lines []string) []Task {
	tasks := make([]Task, 0, len(lines))
	for _, line := range lines {
		task, err := NewTask(line)
		if err != nil {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// TaskTexts returns the text of each task in order.
func TaskTexts(tasks []Task) []string {
	texts := make([]string, len(tasks))
	for i, t := range tasks {
		texts[i] = t.Text
	}
	return texts
}
