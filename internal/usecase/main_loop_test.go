package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/vassist/internal/domain"
	"github.com/runoshun/vassist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainLoop_RunsUntilExit(t *testing.T) {
	f := newAssistantFixture(nil)
	listener := testutil.NewMockListener("add task buy milk", "show tasks", "exit", "add task never")
	loop := NewMainLoop(listener, f.dispatcher, NewGreet(f.clock, f.speaker), f.speaker, nil)

	err := loop.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, listener.Calls, "nothing is acquired after exit")
	assert.Equal(t, []string{"buy milk"}, domain.TaskTexts(f.session.Tasks.Tasks()))
	assert.Equal(t, []string{
		"Good Afternoon!",
		msgIntroduction,
		"Task added: buy milk",
		"Here are your current to-do items: Number 1: buy milk.",
		msgFarewell,
	}, f.speaker.Spoken)
}

func TestMainLoop_RecognitionFailures(t *testing.T) {
	f := newAssistantFixture(nil)
	listener := &testutil.MockListener{Script: []testutil.ListenResult{
		{Err: domain.ErrListenTimeout},
		{Err: domain.ErrUnrecognized},
		{Err: domain.ErrServiceUnavailable},
		{Utterance: "none"},
		{Utterance: "quit"},
	}}
	loop := NewMainLoop(listener, f.dispatcher, nil, f.speaker, nil)

	err := loop.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, listener.Calls)
	assert.Equal(t, []string{msgRecognitionUnavailable, msgFarewell}, f.speaker.Spoken)
}

func TestMainLoop_StopsAtEndOfInput(t *testing.T) {
	f := newAssistantFixture(nil)
	listener := testutil.NewMockListener("add task water plants")
	loop := NewMainLoop(listener, f.dispatcher, nil, f.speaker, nil)

	err := loop.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, listener.Calls)
	assert.Equal(t, []string{"water plants"}, f.file.Lines)
	assert.Zero(t, f.speaker.Count(msgFarewell))
}

func TestMainLoop_Cancelled(t *testing.T) {
	f := newAssistantFixture(nil)
	listener := testutil.NewMockListener("add task a")
	loop := NewMainLoop(listener, f.dispatcher, nil, f.speaker, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := loop.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, listener.Calls)
}
