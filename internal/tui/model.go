package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/mailcat/internal/view"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Predictor   view.Predictor
	Logger      *zap.Logger
	InitialText string
	// Endpoint is only displayed in the status bar.
	Endpoint string
}

type model struct {
	config Config
	log    *zap.Logger

	page     *view.PredictionView
	layout   pageLayout
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	focus    focusTarget

	jobs     *jobBus
	effects  *effectQueue
	observer *pageObserver
	scroller *viewportScroller
	notices  *noticeBoard
	form     region

	pending   *view.Submission
	activeJob *jobSnapshot
	lastJob   *jobSnapshot
	quitting  bool
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	layout := newPageLayout()

	input := textarea.New()
	input.Placeholder = textareaHint
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetWidth(layout.inputWidth)
	input.SetHeight(textareaRows)
	input.SetValue(config.InitialText)
	input.Blur()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = spinnerStyle

	vp := viewport.New(layout.viewportWidth, layout.viewportHeight)
	vp.MouseWheelEnabled = true

	m := &model{
		config:   config,
		log:      log.With(zap.String("component", "tui")),
		layout:   layout,
		viewport: vp,
		textarea: input,
		spinner:  spin,
		focus:    focusCTA,
		jobs:     newJobBus(log),
		effects:  &effectQueue{},
		observer: newPageObserver(),
		notices:  &noticeBoard{log: log.With(zap.String("component", "notices"))},
	}
	m.scroller = &viewportScroller{vp: &m.viewport, effects: m.effects}
	m.page = view.New(view.Options{
		Predictor:   config.Predictor,
		Notifier:    m.notices,
		Scroller:    m.scroller,
		Scheduler:   teaScheduler{effects: m.effects},
		Logger:      log,
		InitialText: config.InitialText,
	})
	m.refreshPage()
	return m
}

func (m *model) Init() tea.Cmd {
	m.page.Mount(m.observer)
	_, cmd := m.settle(textarea.Blink)
	return cmd
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.viewportWidth
		m.viewport.Height = m.layout.viewportHeight
		m.textarea.SetWidth(m.layout.inputWidth)
		return m.settle()
	case tea.KeyMsg:
		return m.settle(m.handleKey(msg))
	case tea.MouseMsg:
		if m.notices.Open() {
			return m.settle()
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m.settle(cmd)
	case spinner.TickMsg:
		if !m.page.State().Submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m.settle(cmd)
	case scheduledMsg:
		if msg.fn != nil {
			msg.fn()
		}
		return m.settle()
	case scrollFrameMsg:
		return m.settle(m.scroller.step())
	case jobSignalMsg:
		snapshot := msg.Snapshot
		m.activeJob = &snapshot
		return m.settle()
	case jobResultEnvelope:
		snapshot := msg.Snapshot
		m.lastJob = &snapshot
		if m.activeJob != nil && m.activeJob.ID == snapshot.ID {
			m.activeJob = nil
		}
		if result, ok := msg.Payload.(predictionResultMsg); ok {
			m.applyOutcome(result.outcome)
		}
		return m.settle()
	}
	if m.focus == focusTextarea {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m.settle(cmd)
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) tea.Cmd {
	if key.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.notices.Open() {
		switch key.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.notices.Dismiss()
		}
		return nil
	}
	switch m.page.Panel() {
	case view.PanelHidden:
		return m.handleHiddenKey(key)
	case view.PanelInput:
		return m.handleInputKey(key)
	case view.PanelResult:
		return m.handleResultKey(key)
	}
	return nil
}

func (m *model) handleHiddenKey(key tea.KeyMsg) tea.Cmd {
	if key.Type == tea.KeyEnter {
		m.page.RequestReveal()
		return nil
	}
	if key.String() == "q" {
		return m.quit()
	}
	m.scrollByKey(key)
	return nil
}

func (m *model) handleInputKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+s":
		return m.submit()
	case "tab", "shift+tab":
		m.toggleInputFocus()
		return nil
	case "pgup", "pgdown":
		m.scrollByKey(key)
		return nil
	}
	if m.focus == focusSubmit {
		switch key.Type {
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyEsc:
			m.focus = focusTextarea
			return nil
		}
		if key.String() == "q" {
			return m.quit()
		}
		m.scrollByKey(key)
		return nil
	}
	if key.Type == tea.KeyEsc {
		m.focus = focusSubmit
		return nil
	}
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(key)
	m.page.SetText(m.textarea.Value())
	return cmd
}

func (m *model) handleResultKey(key tea.KeyMsg) tea.Cmd {
	if key.Type == tea.KeyEnter {
		if err := m.page.Reset(); err != nil {
			m.log.Warn("reset rejected", zap.Error(err))
		}
		return nil
	}
	if key.String() == "q" {
		return m.quit()
	}
	m.scrollByKey(key)
	return nil
}

func (m *model) scrollByKey(key tea.KeyMsg) {
	switch key.String() {
	case "down", "j":
		m.viewport.LineDown(1)
	case "up", "k":
		m.viewport.LineUp(1)
	case "pgdown", " ", "f":
		m.viewport.ViewDown()
	case "pgup", "b":
		m.viewport.ViewUp()
	case "home", "g":
		m.viewport.GotoTop()
	case "end", "G":
		m.viewport.GotoBottom()
	}
}

func (m *model) toggleInputFocus() {
	if m.focus == focusTextarea {
		m.focus = focusSubmit
		return
	}
	m.focus = focusTextarea
}

func (m *model) submit() tea.Cmd {
	sub, err := m.page.Submit()
	if err != nil {
		m.log.Debug("submit rejected", zap.Error(err))
		return nil
	}
	m.pending = sub
	return tea.Batch(m.jobs.Start(jobKindPredict, predictJob(sub)), m.spinner.Tick)
}

func (m *model) applyOutcome(outcome view.Outcome) {
	if !m.page.Complete(outcome) {
		return
	}
	if m.pending != nil && m.pending.ID == outcome.SubmissionID {
		m.pending = nil
	}
}

func (m *model) quit() tea.Cmd {
	m.page.Unmount()
	m.quitting = true
	m.log.Info("quitting", zap.String("panel", m.page.Panel().String()))
	return tea.Quit
}

// settle brings widgets and the page in line with the view state, lets the
// observer see the new layout, then flushes every command the page queued.
func (m *model) settle(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	m.syncWidgets()
	m.refreshPage()
	before := m.page.Panel()
	m.checkIntersections()
	if m.page.Panel() != before {
		m.syncWidgets()
		m.refreshPage()
	}
	cmds = append(cmds, m.effects.drain()...)
	return m, batchCmds(cmds)
}

func (m *model) syncWidgets() {
	state := m.page.State()
	switch state.Panel() {
	case view.PanelHidden:
		m.focus = focusCTA
	case view.PanelInput:
		if m.focus != focusTextarea && m.focus != focusSubmit {
			m.focus = focusTextarea
		}
	case view.PanelResult:
		m.focus = focusReset
	}
	if m.textarea.Value() != state.EmailText {
		m.textarea.SetValue(state.EmailText)
	}
	if m.focus == focusTextarea {
		if !m.textarea.Focused() {
			m.effects.push(m.textarea.Focus())
		}
		return
	}
	m.textarea.Blur()
}

func (m *model) refreshPage() {
	page := m.buildPage()
	m.viewport.SetContent(page.content)
	m.form = page.form
}

func (m *model) checkIntersections() {
	if !m.page.Observing() {
		return
	}
	m.observer.Check(map[string]float64{
		view.FormTarget: m.form.visibleRatio(m.viewport.YOffset, m.viewport.Height),
	})
}
