package intent

import "strings"

// Filler words stripped from encyclopedia queries.
var wikipediaFillers = []string{"wikipedia", "search", "who is", "what is"}

// Google search trigger phrases.
var googleTriggers = []string{"search google", "google for"}

// after returns the text following the first occurrence of sep, or s if sep is absent.
func after(s, sep string) string {
	if _, rest, found := strings.Cut(s, sep); found {
		return rest
	}
	return s
}

// ExtractTask returns the task text of an add-task utterance.
// Text after "add task" and then after "add to do" is kept. An empty result
// or the bare keyword "list" yields "".
func ExtractTask(utterance string) string {
	task := strings.TrimSpace(after(after(utterance, "add task"), "add to do"))
	if task == "list" {
		return ""
	}
	return task
}

// ExtractWikipediaTerm removes every filler phrase from the utterance.
func ExtractWikipediaTerm(utterance string) string {
	term := utterance
	for _, f := range wikipediaFillers {
		term = strings.ReplaceAll(term, f, "")
	}
	return strings.TrimSpace(term)
}

// IsFillerTerm reports whether an extracted lookup term carries no subject.
func IsFillerTerm(term string) bool {
	return term == "" || term == "search" || term == "what is"
}

// ExtractGoogleTerm removes the search trigger phrases from the utterance.
func ExtractGoogleTerm(utterance string) string {
	term := utterance
	for _, tr := range googleTriggers {
		term = strings.ReplaceAll(term, tr, "")
	}
	return strings.TrimSpace(term)
}

// GoogleSearchURL builds the search URL for a term.
func GoogleSearchURL(term string) string {
	return "https://www.google.com/search?q=" + strings.ReplaceAll(term, " ", "+")
}
