// Package view holds the prediction page state machine. It has no rendering
// of its own: hosts drive it through the transition methods and supply the
// ports it needs for notices, scrolling, timers and visibility.
package view

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/csheth/mailcat/internal/classify"
)

const (
	BlankTextNotice = "Please paste or type an email text first."
	FailureNotice   = "Something went wrong while predicting. Try again later."
)

var (
	// ErrBlankText is returned by Submit when the email text is blank.
	ErrBlankText = classify.ErrBlankText
	// ErrHidden is returned when the form has not been revealed yet.
	ErrHidden = errors.New("prediction form is not revealed")
	// ErrSubmitting is returned by Submit while a request is in flight.
	ErrSubmitting = errors.New("prediction already in flight")
	// ErrNotInput is returned by Submit when a result is being shown.
	ErrNotInput = errors.New("prediction form is not accepting input")
	// ErrNoResult is returned by Reset when there is no result to clear.
	ErrNoResult = errors.New("no prediction to reset")
)

// Options wires a PredictionView to its collaborators.
type Options struct {
	Predictor   Predictor
	Notifier    NotificationPort
	Scroller    ScrollPort
	Scheduler   Scheduler
	Logger      *zap.Logger
	InitialText string
}

// PredictionView owns the page state and every transition between the hidden,
// input and result panels.
type PredictionView struct {
	text       string
	prediction *Prediction
	submitting bool
	inflight   string
	unmounted  bool

	reveal    *RevealController
	scroll    *ScrollCoordinator
	predictor Predictor
	notifier  NotificationPort
	log       *zap.Logger
}

// New returns a view in its initial state: hidden, no text, no prediction.
func New(opts Options) *PredictionView {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("component", "view"))
	v := &PredictionView{
		text:      opts.InitialText,
		predictor: opts.Predictor,
		notifier:  opts.Notifier,
		log:       log,
	}
	v.scroll = NewScrollCoordinator(opts.Scroller, opts.Scheduler)
	v.reveal = NewRevealController(log, v.handleReveal)
	return v
}

// State returns a snapshot of the current state.
func (v *PredictionView) State() ViewState {
	var prediction *Prediction
	if v.prediction != nil {
		copied := *v.prediction
		prediction = &copied
	}
	return ViewState{
		EmailText:  v.text,
		Prediction: prediction,
		Revealed:   v.reveal.Revealed(),
		Submitting: v.submitting,
	}
}

// Panel is shorthand for State().Panel().
func (v *PredictionView) Panel() Panel {
	return v.State().Panel()
}

// Observing reports whether the form region is still being observed.
func (v *PredictionView) Observing() bool {
	return v.reveal.Observing()
}

// Mount acquires the form observation unless the form is already revealed.
func (v *PredictionView) Mount(observer IntersectionObserver) {
	v.unmounted = false
	v.reveal.Attach(observer)
}

// Unmount releases the observation. Results arriving afterwards are dropped.
func (v *PredictionView) Unmount() {
	v.unmounted = true
	v.reveal.Release()
}

// RequestReveal handles the "Go to prediction" action.
func (v *PredictionView) RequestReveal() bool {
	return v.reveal.Reveal()
}

func (v *PredictionView) handleReveal(source RevealSource) {
	if source == RevealByRequest {
		v.scroll.ScrollToBottomSmooth()
	}
}

// SetText records an edit of the email text. Edits are only accepted while the
// input form is showing.
func (v *PredictionView) SetText(text string) bool {
	if v.Panel() != PanelInput {
		return false
	}
	v.text = text
	return true
}

// Submission is one accepted prediction request. Run performs the network
// call and may be executed off the view's loop; its Outcome must be handed
// back through Complete.
type Submission struct {
	ID        string
	Text      string
	predictor Predictor
}

// Outcome is the result of running a Submission.
type Outcome struct {
	SubmissionID string
	Category     string
	Err          error
}

// Run calls the predictor. It never touches view state.
func (s *Submission) Run(ctx context.Context) Outcome {
	if s.predictor == nil {
		return Outcome{SubmissionID: s.ID, Err: errors.New("no predictor configured")}
	}
	category, err := s.predictor.Predict(ctx, s.Text)
	return Outcome{SubmissionID: s.ID, Category: category, Err: err}
}

// Submit validates the text and starts a submission. Blank text raises a
// warning notice and returns ErrBlankText without starting anything.
func (v *PredictionView) Submit() (*Submission, error) {
	switch v.Panel() {
	case PanelHidden:
		return nil, ErrHidden
	case PanelResult:
		return nil, ErrNotInput
	}
	if v.submitting {
		v.log.Debug("submit ignored while in flight", zap.String("submission_id", v.inflight))
		return nil, ErrSubmitting
	}
	if isBlank(v.text) {
		v.notify(v.warn, BlankTextNotice)
		return nil, ErrBlankText
	}
	sub := &Submission{ID: uuid.NewString(), Text: v.text, predictor: v.predictor}
	v.submitting = true
	v.inflight = sub.ID
	v.log.Info("submission started", zap.String("submission_id", sub.ID), zap.Int("chars", len(sub.Text)))
	return sub, nil
}

// Complete applies an Outcome. Outcomes for a submission other than the one in
// flight, or arriving after Unmount, are ignored and reported as false.
func (v *PredictionView) Complete(outcome Outcome) bool {
	log := v.log.With(zap.String("submission_id", outcome.SubmissionID))
	if v.unmounted {
		log.Info("outcome ignored after unmount")
		return false
	}
	if !v.submitting || outcome.SubmissionID != v.inflight {
		log.Warn("stale outcome ignored", zap.String("inflight", v.inflight))
		return false
	}
	v.submitting = false
	v.inflight = ""
	if outcome.Err != nil {
		log.Error("prediction failed", classify.LogFields(outcome.Err)...)
		v.notify(v.fail, FailureNotice)
		return true
	}
	v.prediction = &Prediction{Category: outcome.Category}
	log.Info("prediction shown", zap.String("category", outcome.Category))
	v.scroll.ScrollToBottomSmooth()
	return true
}

// Reset handles "Classify another email": it clears the text and the
// prediction and returns to the input form.
func (v *PredictionView) Reset() error {
	if v.Panel() != PanelResult {
		return ErrNoResult
	}
	v.prediction = nil
	v.text = ""
	v.log.Info("view reset")
	v.scroll.ScrollToBottomSmooth()
	return nil
}

func (v *PredictionView) warn(message string) { v.notifier.Warn(message) }

func (v *PredictionView) fail(message string) { v.notifier.Error(message) }

func (v *PredictionView) notify(send func(string), message string) {
	if v.notifier == nil {
		return
	}
	send(message)
}
