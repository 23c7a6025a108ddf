package view

import "go.uber.org/zap"

const (
	// FormTarget names the page region holding the prediction form.
	FormTarget = "prediction-form"
	// RevealThreshold is the visible fraction of the form region that reveals it.
	RevealThreshold = 0.15
)

// RevealSource records what caused the form to become visible.
type RevealSource string

const (
	RevealByRequest      RevealSource = "request"
	RevealByIntersection RevealSource = "intersection"
)

// RevealController flips the form to visible exactly once, either on request
// or when the observed form region scrolls into view. It owns the observation
// and releases it as soon as the form is revealed or the view unmounts.
type RevealController struct {
	target      string
	threshold   float64
	revealed    bool
	observation Observation
	onReveal    func(RevealSource)
	log         *zap.Logger
}

// NewRevealController builds a controller for the form region. onReveal runs
// once, on the first reveal.
func NewRevealController(log *zap.Logger, onReveal func(RevealSource)) *RevealController {
	if log == nil {
		log = zap.NewNop()
	}
	return &RevealController{
		target:    FormTarget,
		threshold: RevealThreshold,
		onReveal:  onReveal,
		log:       log,
	}
}

// Attach starts observing the form region. It is a no-op once revealed or
// while an observation is already held.
func (r *RevealController) Attach(observer IntersectionObserver) {
	if observer == nil || r.revealed || r.observation != nil {
		return
	}
	observation := observer.Observe(r.target, r.threshold, r.handleEntry)
	if r.revealed {
		// The observer delivered an intersecting entry before returning.
		if observation != nil {
			observation.Disconnect()
		}
		return
	}
	r.observation = observation
	r.log.Debug("observing form region", zap.String("target", r.target), zap.Float64("threshold", r.threshold))
}

// Reveal handles an explicit request. It reports whether this call revealed
// the form.
func (r *RevealController) Reveal() bool {
	return r.reveal(RevealByRequest)
}

// Release drops the observation without revealing.
func (r *RevealController) Release() {
	if r.observation == nil {
		return
	}
	r.observation.Disconnect()
	r.observation = nil
	r.log.Debug("form observation released", zap.String("target", r.target))
}

// Revealed reports whether the form has been revealed.
func (r *RevealController) Revealed() bool {
	return r.revealed
}

// Observing reports whether an observation is currently held.
func (r *RevealController) Observing() bool {
	return r.observation != nil
}

func (r *RevealController) handleEntry(entry IntersectionEntry) {
	if r.revealed || entry.Target != r.target {
		return
	}
	if !entry.Intersecting && entry.Ratio < r.threshold {
		return
	}
	r.reveal(RevealByIntersection)
}

func (r *RevealController) reveal(source RevealSource) bool {
	if r.revealed {
		return false
	}
	r.revealed = true
	r.Release()
	r.log.Info("form revealed", zap.String("source", string(source)))
	if r.onReveal != nil {
		r.onReveal(source)
	}
	return true
}
