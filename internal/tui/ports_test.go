package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/csheth/mailcat/internal/view"
)

func TestTeaSchedulerQueuesTick(t *testing.T) {
	queue := &effectQueue{}
	called := false
	teaScheduler{effects: queue}.After(0, func() { called = true })

	cmds := queue.drain()
	require.Len(t, cmds, 1)
	require.Empty(t, queue.drain())

	msg, ok := cmds[0]().(scheduledMsg)
	require.True(t, ok)
	require.False(t, called, "callback must wait for the loop")
	msg.fn()
	require.True(t, called)
}

func TestViewportScrollerAnimatesToBottom(t *testing.T) {
	vp := viewport.New(40, 5)
	vp.SetContent(strings.Repeat("line\n", 40))
	queue := &effectQueue{}
	scroller := &viewportScroller{vp: &vp, effects: queue}

	scroller.ScrollToBottom(true)
	scroller.ScrollToBottom(true)
	require.Len(t, queue.drain(), 1, "a running animation is not restarted")

	offsets := []int{}
	for i := 0; i < 50 && scroller.animating; i++ {
		scroller.step()
		offsets = append(offsets, vp.YOffset)
	}
	require.False(t, scroller.animating)
	require.True(t, vp.AtBottom())
	require.Greater(t, len(offsets), 1, "smooth scroll should take several frames")
	for i := 1; i < len(offsets); i++ {
		require.GreaterOrEqual(t, offsets[i], offsets[i-1])
	}
	require.Nil(t, scroller.step())
}

func TestViewportScrollerJumpsWhenNotSmooth(t *testing.T) {
	vp := viewport.New(40, 5)
	vp.SetContent(strings.Repeat("line\n", 40))
	queue := &effectQueue{}
	scroller := &viewportScroller{vp: &vp, effects: queue}

	scroller.ScrollToBottom(false)

	require.True(t, vp.AtBottom())
	require.Empty(t, queue.drain())
}

func TestNoticeBoardKeepsLatest(t *testing.T) {
	board := &noticeBoard{log: zap.NewNop()}
	require.False(t, board.Open())

	board.Warn(view.BlankTextNotice)
	board.Error(view.FailureNotice)

	require.True(t, board.Open())
	require.Equal(t, noticeError, board.current.level)
	require.Equal(t, view.FailureNotice, board.current.message)

	board.Dismiss()
	require.False(t, board.Open())
}

func TestPageObserverReportsFlips(t *testing.T) {
	observer := newPageObserver()
	var entries []view.IntersectionEntry
	observation := observer.Observe("form", 0.15, func(entry view.IntersectionEntry) {
		entries = append(entries, entry)
	})
	require.Equal(t, 1, observer.Watching())

	observer.Check(map[string]float64{"form": 0})
	observer.Check(map[string]float64{"form": 0.1})
	observer.Check(map[string]float64{"other": 1})
	observer.Check(map[string]float64{"form": 0.2})
	observer.Check(map[string]float64{"form": 0.5})

	require.Len(t, entries, 2)
	require.False(t, entries[0].Intersecting)
	require.True(t, entries[1].Intersecting)
	require.InDelta(t, 0.2, entries[1].Ratio, 1e-9)

	observation.Disconnect()
	require.Equal(t, 0, observer.Watching())
	observer.Check(map[string]float64{"form": 0})
	require.Len(t, entries, 2)
}

func TestPageObserverAllowsDisconnectFromCallback(t *testing.T) {
	observer := newPageObserver()
	var observation view.Observation
	calls := 0
	observation = observer.Observe("form", 0.15, func(view.IntersectionEntry) {
		calls++
		observation.Disconnect()
	})
	observer.Observe("form", 0.15, func(view.IntersectionEntry) { calls++ })

	observer.Check(map[string]float64{"form": 1})
	observer.Check(map[string]float64{"form": 0})

	require.Equal(t, 3, calls)
	require.Equal(t, 1, observer.Watching())
}
