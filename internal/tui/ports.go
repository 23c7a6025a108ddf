package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/csheth/mailcat/internal/view"
)

// effectQueue collects commands the page raises through its ports while an
// Update is running. The model drains it before returning.
type effectQueue struct {
	cmds []tea.Cmd
}

func (q *effectQueue) push(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	q.cmds = append(q.cmds, cmd)
}

func (q *effectQueue) drain() []tea.Cmd {
	cmds := q.cmds
	q.cmds = nil
	return cmds
}

// teaScheduler turns Scheduler callbacks into ticks so they run on the
// program loop.
type teaScheduler struct {
	effects *effectQueue
}

func (s teaScheduler) After(delay time.Duration, fn func()) {
	s.effects.push(tea.Tick(delay, func(time.Time) tea.Msg {
		return scheduledMsg{fn: fn}
	}))
}

// viewportScroller animates the page viewport towards its last line, a third
// of the remaining distance per frame.
type viewportScroller struct {
	vp        *viewport.Model
	effects   *effectQueue
	animating bool
}

func (s *viewportScroller) ScrollToBottom(smooth bool) {
	if !smooth {
		s.vp.GotoBottom()
		return
	}
	if s.animating {
		return
	}
	s.animating = true
	s.effects.push(scrollFrameCmd())
}

func (s *viewportScroller) step() tea.Cmd {
	if !s.animating {
		return nil
	}
	target := s.maxOffset()
	remaining := target - s.vp.YOffset
	if remaining <= 0 {
		s.animating = false
		return nil
	}
	delta := (remaining + scrollFrameDivisor - 1) / scrollFrameDivisor
	s.vp.SetYOffset(s.vp.YOffset + delta)
	if s.vp.YOffset >= target {
		s.animating = false
		return nil
	}
	return scrollFrameCmd()
}

func (s *viewportScroller) maxOffset() int {
	return max(0, s.vp.TotalLineCount()-s.vp.Height)
}

func scrollFrameCmd() tea.Cmd {
	return tea.Tick(scrollFrameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{}
	})
}

type noticeLevel int

const (
	noticeWarn noticeLevel = iota
	noticeError
)

type notice struct {
	level   noticeLevel
	message string
}

// noticeBoard holds at most one modal notice. A new notice replaces the
// current one.
type noticeBoard struct {
	current *notice
	log     *zap.Logger
}

func (b *noticeBoard) Warn(message string) {
	b.show(noticeWarn, message)
}

func (b *noticeBoard) Error(message string) {
	b.show(noticeError, message)
}

func (b *noticeBoard) show(level noticeLevel, message string) {
	b.current = &notice{level: level, message: message}
	b.log.Debug("notice shown", zap.Int("level", int(level)), zap.String("message", message))
}

func (b *noticeBoard) Open() bool {
	return b.current != nil
}

func (b *noticeBoard) Dismiss() {
	b.current = nil
}

// pageObserver reports region visibility to its watchers. A watcher hears
// about a region on the first check and whenever its intersecting state
// flips.
type pageObserver struct {
	watches map[int]*regionWatch
	nextID  int
}

type regionWatch struct {
	id        int
	target    string
	threshold float64
	callback  func(view.IntersectionEntry)
	last      *bool
	owner     *pageObserver
}

func newPageObserver() *pageObserver {
	return &pageObserver{watches: map[int]*regionWatch{}}
}

func (o *pageObserver) Observe(target string, threshold float64, callback func(view.IntersectionEntry)) view.Observation {
	o.nextID++
	w := &regionWatch{
		id:        o.nextID,
		target:    target,
		threshold: threshold,
		callback:  callback,
		owner:     o,
	}
	o.watches[w.id] = w
	return w
}

func (o *pageObserver) Watching() int {
	return len(o.watches)
}

func (o *pageObserver) Check(ratios map[string]float64) {
	ids := lo.Keys(o.watches)
	sort.Ints(ids)
	for _, id := range ids {
		w, ok := o.watches[id]
		if !ok {
			continue
		}
		ratio, ok := ratios[w.target]
		if !ok {
			continue
		}
		intersecting := ratio > 0 && ratio >= w.threshold
		if w.last != nil && *w.last == intersecting {
			continue
		}
		w.last = &intersecting
		w.callback(view.IntersectionEntry{Target: w.target, Ratio: ratio, Intersecting: intersecting})
	}
}

func (w *regionWatch) Disconnect() {
	delete(w.owner.watches, w.id)
}
