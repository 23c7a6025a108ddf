package view

import "strings"

// Panel is the region of the page that currently accepts interaction.
type Panel int

const (
	PanelHidden Panel = iota
	PanelInput
	PanelResult
)

func (p Panel) String() string {
	switch p {
	case PanelHidden:
		return "hidden"
	case PanelInput:
		return "input"
	case PanelResult:
		return "result"
	default:
		return "unknown"
	}
}

// Prediction is the category returned for the submitted email text.
type Prediction struct {
	Category string
}

// ViewState is a snapshot of everything the page renders from.
type ViewState struct {
	EmailText  string
	Prediction *Prediction
	Revealed   bool
	Submitting bool
}

// Panel derives which panel shows from Revealed and Prediction only.
func (s ViewState) Panel() Panel {
	switch {
	case !s.Revealed:
		return PanelHidden
	case s.Prediction == nil:
		return PanelInput
	default:
		return PanelResult
	}
}

// CanSubmit reports whether the submit action is enabled.
func (s ViewState) CanSubmit() bool {
	return s.Panel() == PanelInput && !s.Submitting
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
