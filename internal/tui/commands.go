package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/mailcat/internal/view"
)

// The HTTP client carries its own timeout; this only bounds a stuck job.
const predictJobTimeout = 2 * time.Minute

type predictionResultMsg struct {
	outcome view.Outcome
}

// scheduledMsg carries a Scheduler callback back onto the loop.
type scheduledMsg struct {
	fn func()
}

type scrollFrameMsg struct{}

func predictJob(sub *view.Submission) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, predictJobTimeout)
		defer cancel()
		outcome := sub.Run(ctx)
		return predictionResultMsg{outcome: outcome}, outcome.Err
	}
}

func batchCmds(cmds []tea.Cmd) tea.Cmd {
	valid := make([]tea.Cmd, 0, len(cmds))
	for _, cmd := range cmds {
		if cmd != nil {
			valid = append(valid, cmd)
		}
	}
	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	default:
		return tea.Batch(valid...)
	}
}
