package domain

// Intent is the classified purpose of an utterance.
type Intent int

// Intents in dispatch priority order. Unhandled and Empty are fallbacks.
const (
	IntentEmpty Intent = iota
	IntentAddTask
	IntentShowTasks
	IntentClearTasks
	IntentFollowUp
	IntentWeather
	IntentNews
	IntentWikipediaSearch
	IntentGoogleSearch
	IntentTime
	IntentOpenYouTube
	IntentOpenGoogle
	IntentOpenApp
	IntentExit
	IntentUnhandled
)

var intentNames = map[Intent]string{
	IntentEmpty:           "empty",
	IntentAddTask:         "add_task",
	IntentShowTasks:       "show_tasks",
	IntentClearTasks:      "clear_tasks",
	IntentFollowUp:        "follow_up",
	IntentWeather:         "weather",
	IntentNews:            "news",
	IntentWikipediaSearch: "wikipedia_search",
	IntentGoogleSearch:    "google_search",
	IntentTime:            "time",
	IntentOpenYouTube:     "open_youtube",
	IntentOpenGoogle:      "open_google",
	IntentOpenApp:         "open_app",
	IntentExit:            "exit",
	IntentUnhandled:       "unhandled",
}

// String returns the snake_case name of the intent.
func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// NoSpeech is the utterance substituted for any failed or timed-out recognition.
const NoSpeech = "none"

// RunState is the assistant's run state.
type RunState int

// Run states.
const (
	StateRunning RunState = iota
	StateStopped
)
