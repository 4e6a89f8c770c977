package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/runoshun/vassist/internal/domain"
	"github.com/runoshun/vassist/internal/intent"
)

// Spoken dispatcher messages.
const (
	msgFarewell  = "Goodbye! Shutting down the assistant."
	msgUnhandled = "I heard '%s', but I am not programmed to handle that command yet."
)

// Handlers holds the use case bound to each intent.
type Handlers struct {
	AddTask    *AddTask
	ShowTasks  *ShowTasks
	ClearTasks *ClearTasks
	FollowUp   *FollowUp
	Weather    *WeatherReport
	News       *NewsReport
	Wikipedia  *WikipediaSearch
	Google     *GoogleSearch
	Time       *TellTime
	OpenSite   *OpenSite
	OpenApp    *OpenApp
}

// DispatchOutput contains the result of handling one utterance.
type DispatchOutput struct {
	Intent domain.Intent
	State  domain.RunState
}

// Dispatcher classifies utterances and invokes the bound handler.
type Dispatcher struct {
	speaker  domain.Speaker
	logger   *slog.Logger
	handlers Handlers
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(handlers Handlers, speaker domain.Speaker, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		speaker:  speaker,
		logger:   orDiscard(logger),
		handlers: handlers,
	}
}

// Dispatch handles one raw utterance and reports whether the loop should continue.
func (d *Dispatcher) Dispatch(ctx context.Context, raw string) bool {
	out, err := d.Execute(ctx, raw)
	if err != nil {
		d.logger.Error("dispatch", "error", err)
		return true
	}
	return out.State == domain.StateRunning
}

// Execute handles one raw utterance.
// Handler failures are spoken by the handlers themselves; an error here means
// a handler could not run at all.
func (d *Dispatcher) Execute(ctx context.Context, raw string) (*DispatchOutput, error) {
	utterance := intent.Normalize(raw)
	in := intent.Classify(utterance)
	out := &DispatchOutput{Intent: in, State: domain.StateRunning}
	if in != domain.IntentEmpty {
		d.logger.Info("dispatch", "intent", in.String(), "utterance", utterance)
	}

	var err error
	switch in {
	case domain.IntentEmpty:
		return out, nil
	case domain.IntentAddTask:
		_, err = d.handlers.AddTask.Execute(ctx, AddTaskInput{Text: intent.ExtractTask(utterance)})
	case domain.IntentShowTasks:
		_, err = d.handlers.ShowTasks.Execute(ctx)
	case domain.IntentClearTasks:
		err = d.handlers.ClearTasks.Execute(ctx)
	case domain.IntentFollowUp:
		_, err = d.handlers.FollowUp.Execute(ctx)
	case domain.IntentWeather:
		_, err = d.handlers.Weather.Execute(ctx)
	case domain.IntentNews:
		_, err = d.handlers.News.Execute(ctx)
	case domain.IntentWikipediaSearch:
		_, err = d.handlers.Wikipedia.Execute(ctx, WikipediaSearchInput{Term: intent.ExtractWikipediaTerm(utterance)})
	case domain.IntentGoogleSearch:
		_, err = d.handlers.Google.Execute(ctx, GoogleSearchInput{Term: intent.ExtractGoogleTerm(utterance)})
	case domain.IntentTime:
		_, err = d.handlers.Time.Execute(ctx)
	case domain.IntentOpenYouTube:
		err = d.handlers.OpenSite.Execute(ctx, OpenSiteInput{Site: SiteYouTube})
	case domain.IntentOpenGoogle:
		err = d.handlers.OpenSite.Execute(ctx, OpenSiteInput{Site: SiteGoogle})
	case domain.IntentOpenApp:
		_, err = d.handlers.OpenApp.Execute(ctx)
	case domain.IntentExit:
		d.speaker.Speak(msgFarewell)
		out.State = domain.StateStopped
	default:
		d.speaker.Speak(fmt.Sprintf(msgUnhandled, utterance))
	}
	if err != nil {
		return nil, fmt.Errorf("handle %s: %w", in, err)
	}
	return out, nil
}
