package view

import "time"

// ScrollDelay gives the host time to render a just-applied state change
// before the viewport moves.
const ScrollDelay = 300 * time.Millisecond

// ScrollCoordinator schedules a smooth scroll to the bottom of the page after
// each state transition that adds content there. Calls are not coalesced.
type ScrollCoordinator struct {
	port      ScrollPort
	scheduler Scheduler
	delay     time.Duration
}

// NewScrollCoordinator wires the coordinator to the host's scroll port and
// scheduler. The scheduler must run callbacks on the loop that owns the view;
// a nil port or scheduler makes every call a no-op.
func NewScrollCoordinator(port ScrollPort, scheduler Scheduler) *ScrollCoordinator {
	return &ScrollCoordinator{port: port, scheduler: scheduler, delay: ScrollDelay}
}

// ScrollToBottomSmooth schedules one smooth scroll after ScrollDelay.
func (s *ScrollCoordinator) ScrollToBottomSmooth() {
	if s.port == nil || s.scheduler == nil {
		return
	}
	s.scheduler.After(s.delay, func() {
		s.port.ScrollToBottom(true)
	})
}
