package intent

import (
	"testing"

	"github.com/runoshun/vassist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		utterance string
		want      domain.Intent
	}{
		{"add task buy milk", domain.IntentAddTask},
		{"add to do call mom", domain.IntentAddTask},
		{"show tasks", domain.IntentShowTasks},
		{"what is on my list", domain.IntentShowTasks},
		{"clear tasks", domain.IntentClearTasks},
		{"delete all tasks", domain.IntentClearTasks},
		{"tell me more", domain.IntentFollowUp},
		{"more about that", domain.IntentFollowUp},
		{"weather", domain.IntentWeather},
		{"read news", domain.IntentNews},
		{"latest news please", domain.IntentNews},
		{"top headlines", domain.IntentNews},
		{"wikipedia golang", domain.IntentWikipediaSearch},
		{"who is alan turing", domain.IntentWikipediaSearch},
		{"what is a monad", domain.IntentWikipediaSearch},
		{"search google cats", domain.IntentGoogleSearch},
		{"google for dogs", domain.IntentGoogleSearch},
		{"what's the time", domain.IntentTime},
		{"open youtube", domain.IntentOpenYouTube},
		{"open google", domain.IntentOpenGoogle},
		{"open vs code", domain.IntentOpenApp},
		{"open visual studio", domain.IntentOpenApp},
		{"exit", domain.IntentExit},
		{"quit", domain.IntentExit},
		{"stop listening", domain.IntentExit},
		{"sing a song", domain.IntentUnhandled},
		{"none", domain.IntentEmpty},
		{"", domain.IntentEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.utterance))
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      domain.Intent
	}{
		{"weather beats what is", "what is the weather", domain.IntentWeather},
		{"show list beats wikipedia", "what is on my list", domain.IntentShowTasks},
		{"add task beats exit", "add task exit the building", domain.IntentAddTask},
		{"follow up beats wikipedia", "tell me more about who is that", domain.IntentFollowUp},
		{"wikipedia beats google", "search google what is go", domain.IntentWikipediaSearch},
		{"open google beats exit", "open google and quit", domain.IntentOpenGoogle},
		{"news beats time", "latest news at the time", domain.IntentNews},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.utterance))
		})
	}
}

func TestRules_Order(t *testing.T) {
	want := []domain.Intent{
		domain.IntentAddTask,
		domain.IntentShowTasks,
		domain.IntentClearTasks,
		domain.IntentFollowUp,
		domain.IntentWeather,
		domain.IntentNews,
		domain.IntentWikipediaSearch,
		domain.IntentGoogleSearch,
		domain.IntentTime,
		domain.IntentOpenYouTube,
		domain.IntentOpenGoogle,
		domain.IntentOpenApp,
		domain.IntentExit,
	}
	got := Rules()
	require.Len(t, got, len(want))
	for i, r := range got {
		assert.Equal(t, want[i], r.Intent, "rule %d", i)
	}

	// Returned slice is a copy
	got[0].Intent = domain.IntentExit
	assert.Equal(t, domain.IntentAddTask, Rules()[0].Intent)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "add task buy milk", Normalize("  Add Task Buy Milk \n"))
	assert.Equal(t, "", Normalize("   "))
}
