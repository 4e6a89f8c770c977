// Package intent classifies normalized utterances into intents.
//
// Classification is keyword-substring matching over an ordered rule table.
// Rules are not mutually exclusive, so the first matching rule wins and the
// order of the table is part of the behavior.
package intent

import (
	"strings"

	"github.com/runoshun/vassist/internal/domain"
)

// Rule binds an intent to the keywords that select it.
type Rule struct {
	Keywords []string
	Intent   domain.Intent
}

// Matches reports whether the utterance contains any of the rule's keywords.
func (r Rule) Matches(utterance string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(utterance, kw) {
			return true
		}
	}
	return false
}

// rules is evaluated top to bottom; do not reorder.
var rules = []Rule{
	{Intent: domain.IntentAddTask, Keywords: []string{"add task", "to do"}},
	{Intent: domain.IntentShowTasks, Keywords: []string{"show tasks", "what is on my list"}},
	{Intent: domain.IntentClearTasks, Keywords: []string{"clear tasks", "delete all tasks"}},
	{Intent: domain.IntentFollowUp, Keywords: []string{"tell me more", "more about"}},
	{Intent: domain.IntentWeather, Keywords: []string{"weather"}},
	{Intent: domain.IntentNews, Keywords: []string{"read news", "latest news", "top headlines"}},
	{Intent: domain.IntentWikipediaSearch, Keywords: []string{"wikipedia", "who is", "what is"}},
	{Intent: domain.IntentGoogleSearch, Keywords: []string{"search google", "google for"}},
	{Intent: domain.IntentTime, Keywords: []string{"the time"}},
	{Intent: domain.IntentOpenYouTube, Keywords: []string{"open youtube"}},
	{Intent: domain.IntentOpenGoogle, Keywords: []string{"open google"}},
	{Intent: domain.IntentOpenApp, Keywords: []string{"open vs code", "open visual studio"}},
	{Intent: domain.IntentExit, Keywords: []string{"exit", "quit", "stop listening"}},
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Normalize lower-cases and trims a raw utterance.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsEmpty reports whether the utterance carries no speech.
func IsEmpty(utterance string) bool {
	return utterance == "" || utterance == domain.NoSpeech
}

// Classify returns the intent of a normalized utterance.
func Classify(utterance string) domain.Intent {
	for _, r := range rules {
		if r.Matches(utterance) {
			return r.Intent
		}
	}
	if IsEmpty(utterance) {
		return domain.IntentEmpty
	}
	return domain.IntentUnhandled
}
