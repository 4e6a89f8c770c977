package usecase

import (
	"context"

	"github.com/runoshun/vassist/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Text string // Extracted task text (may be empty)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Added bool // False when the text was empty and the user was reprompted
}

// AddTask is the use case for adding a task to the list.
type AddTask struct {
	session *Session
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(session *Session) *AddTask {
	return &AddTask{session: session}
}

// Execute adds the task, or reprompts when the text is empty.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	before := uc.session.Tasks.Len()
	uc.session.Tasks.Add(in.Text)
	return &AddTaskOutput{Added: uc.session.Tasks.Len() > before}, nil
}

// ShowTasksOutput contains the spoken task summary.
type ShowTasksOutput struct {
	Summary string
	Tasks   []domain.Task
}

// ShowTasks is the use case for reading the task list aloud.
type ShowTasks struct {
	session *Session
	speaker domain.Speaker
}

// NewShowTasks creates a new ShowTasks use case.
func NewShowTasks(session *Session, speaker domain.Speaker) *ShowTasks {
	return &ShowTasks{session: session, speaker: speaker}
}

// Execute speaks the task summary.
func (uc *ShowTasks) Execute(_ context.Context) (*ShowTasksOutput, error) {
	summary := uc.session.Tasks.Summarize()
	uc.speaker.Speak(summary)
	return &ShowTasksOutput{Summary: summary, Tasks: uc.session.Tasks.Tasks()}, nil
}

// ClearTasks is the use case for removing every task.
type ClearTasks struct {
	session *Session
}

// NewClearTasks creates a new ClearTasks use case.
func NewClearTasks(session *Session) *ClearTasks {
	return &ClearTasks{session: session}
}

// Execute clears the list. It never fails from the caller's perspective.
func (uc *ClearTasks) Execute(_ context.Context) error {
	uc.session.Tasks.Clear()
	return nil
}

// ListTasksOutput contains the current task snapshot.
type ListTasksOutput struct {
	Tasks []domain.Task
}

// ListTasks returns the task list without speaking it.
type ListTasks struct {
	session *Session
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(session *Session) *ListTasks {
	return &ListTasks{session: session}
}

// Execute returns a copy of the task list in insertion order.
func (uc *ListTasks) Execute(_ context.Context) (*ListTasksOutput, error) {
	return &ListTasksOutput{Tasks: uc.session.Tasks.Tasks()}, nil
}
