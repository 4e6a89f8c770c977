package usecase

import "github.com/runoshun/vassist/internal/domain"

// Session is the application state shared by all handlers.
// It is constructed once at startup and passed to every use case that needs it.
type Session struct {
	Tasks   *TaskStore
	Context *domain.ContextState
}

// NewSession creates a Session with an empty follow-up context.
func NewSession(tasks *TaskStore) *Session {
	return &Session{
		Tasks:   tasks,
		Context: &domain.ContextState{},
	}
}
