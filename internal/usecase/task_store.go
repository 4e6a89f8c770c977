package usecase

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/runoshun/vassist/internal/domain"
)

// Spoken task list messages.
const (
	msgTaskPrompt    = "What task should I add to your list?"
	msgTaskAdded     = "Task added: %s"
	msgTaskSaveError = "I had trouble saving your task list."
	msgTasksEmpty    = "Your to-do list is currently empty. What task would you like to add?"
	msgTasksHeader   = "Here are your current to-do items:"
	msgTasksCleared  = "All tasks have been successfully cleared from your to-do list."
)

// TaskStore owns the in-memory task list and mirrors it to a TaskFile.
// The in-memory list is the source of truth; the file is rewritten in full
// after every mutation.
type TaskStore struct {
	file    domain.TaskFile
	speaker domain.Speaker
	logger  *slog.Logger
	tasks   []domain.Task
}

// NewTaskStore creates a new TaskStore. Call Load to populate it.
func NewTaskStore(file domain.TaskFile, speaker domain.Speaker, logger *slog.Logger) *TaskStore {
	return &TaskStore{
		file:    file,
		speaker: speaker,
		logger:  orDiscard(logger),
		tasks:   []domain.Task{},
	}
}

// Load replaces the in-memory list with the file contents.
// Read failures are logged and yield an empty list.
func (s *TaskStore) Load() []domain.Task {
	lines, err := s.file.Load()
	if err != nil {
		s.logger.Error("load tasks", "error", err)
		s.tasks = []domain.Task{}
		return s.Tasks()
	}
	s.tasks = domain.NormalizeTasks(lines)
	return s.Tasks()
}

// Tasks returns a copy of the current task list.
func (s *TaskStore) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Add appends a task and saves the list.
// A blank task is rejected with a spoken prompt.
func (s *TaskStore) Add(text string) {
	task, err := domain.NewTask(text)
	if err != nil {
		s.speaker.Speak(msgTaskPrompt)
		return
	}
	s.tasks = append(s.tasks, task)
	_ = s.Save()
	s.speaker.Speak(fmt.Sprintf(msgTaskAdded, task.Text))
	s.logger.Info("task added", "task", task.Text, "count", len(s.tasks))
}

// Save overwrites the file with the current list.
// On failure the in-memory list stays authoritative and a spoken warning is issued.
// The error is returned for callers that want to observe it.
func (s *TaskStore) Save() error {
	if err := s.file.Save(domain.TaskTexts(s.tasks)); err != nil {
		s.logger.Error("save tasks", "error", err)
		s.speaker.Speak(msgTaskSaveError)
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// Summarize renders the task list as a numbered, speakable sentence.
func (s *TaskStore) Summarize() string {
	if len(s.tasks) == 0 {
		return msgTasksEmpty
	}
	parts := make([]string, 0, len(s.tasks)+1)
	parts = append(parts, msgTasksHeader)
	for i, t := range s.tasks {
		parts = append(parts, fmt.Sprintf("Number %d: %s.", i+1, t.Text))
	}
	return strings.Join(parts, " ")
}

// Clear empties the list and saves it.
func (s *TaskStore) Clear() {
	s.tasks = []domain.Task{}
	_ = s.Save()
	s.speaker.Speak(msgTasksCleared)
	s.logger.Info("tasks cleared")
}
