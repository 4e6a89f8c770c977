package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEmptyTask          = errors.New("task cannot be empty")
	ErrListenTimeout      = errors.New("no speech detected within the time limit")
	ErrUnrecognized       = errors.New("could not understand the audio")
	ErrServiceUnavailable = errors.New("speech recognition service unavailable")
	ErrConfigMissing      = errors.New("configuration missing")
	ErrAppNotFound        = errors.New("application not found")
	ErrNetwork            = errors.New("network request failed")
	ErrConfigExists       = errors.New("config file already exists")
	ErrConfigNil          = errors.New("config is nil")
)

// HTTPStatusError reports a non-success HTTP status from a provider.
type HTTPStatusError struct {
	Service string
	Code    int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.Code)
}
