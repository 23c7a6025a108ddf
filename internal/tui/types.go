package tui

import "time"

type focusTarget int

const (
	focusCTA focusTarget = iota
	focusTextarea
	focusSubmit
	focusReset
)

func (f focusTarget) String() string {
	switch f {
	case focusCTA:
		return "cta"
	case focusTextarea:
		return "textarea"
	case focusSubmit:
		return "submit"
	case focusReset:
		return "reset"
	default:
		return "unknown"
	}
}

const heroTagline = "Paste an email, get its category."

const (
	minViewportWidth  = 40
	minViewportHeight = 8
	footerHeight      = 2
	maxCardWidth      = 88
	textareaRows      = 10
	// The logo is dropped below this viewport height so the hero still fits.
	logoMinHeight = 16
)

const (
	scrollFrameInterval = 16 * time.Millisecond
	scrollFrameDivisor  = 3
)

const (
	ctaLabel        = "Go to prediction"
	submitLabel     = "Predict category"
	submittingLabel = "Predicting..."
	resetLabel      = "Classify another email"
	textareaHint    = "Paste the full email text here..."
)
