package view

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mocks

import (
	"context"
	"time"
)

// Predictor performs the single classification call for a submission.
type Predictor interface {
	Predict(ctx context.Context, text string) (string, error)
}

// NotificationPort shows user-facing notices. Both kinds are blocking from the
// user's point of view: the host decides how they are dismissed.
type NotificationPort interface {
	Warn(message string)
	Error(message string)
}

// ScrollPort moves the host's viewport to the end of the page.
type ScrollPort interface {
	ScrollToBottom(smooth bool)
}

// Scheduler runs fn once after delay on the same loop that owns the view.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// IntersectionEntry describes how much of an observed region is visible.
type IntersectionEntry struct {
	Target       string
	Ratio        float64
	Intersecting bool
}

// IntersectionObserver reports visibility changes of a named page region.
// The callback must run on the loop that owns the view.
type IntersectionObserver interface {
	Observe(target string, threshold float64, callback func(IntersectionEntry)) Observation
}

// Observation is a live registration returned by IntersectionObserver.Observe.
type Observation interface {
	Disconnect()
}
