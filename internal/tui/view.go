package tui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"

	"github.com/csheth/mailcat/internal/view"
)

func (m *model) View() string {
	body := m.viewport.View()
	if m.notices.Open() {
		body = m.noticeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footerView())
}

func (m *model) noticeView() string {
	n := m.notices.current
	width := min(m.layout.viewportWidth-4, 60)
	style := warnBoxStyle
	title := "Heads up"
	if n.level == noticeError {
		style = errorBoxStyle
		title = "Prediction failed"
	}
	content := joinNonEmpty([]string{
		noticeTitleStyle.Render(title),
		wordwrap.String(n.message, width-6),
		helperStyle.Render("Enter or Esc to dismiss"),
	})
	box := style.Width(width - 2).Render(content)
	return lipgloss.Place(m.layout.viewportWidth, m.layout.viewportHeight, lipgloss.Center, lipgloss.Center, box)
}

func (m *model) footerView() string {
	width := m.layout.viewportWidth
	return lipgloss.JoinVertical(lipgloss.Left,
		statusBarStyle.MaxWidth(width).Render(m.statusLine()),
		lipgloss.NewStyle().MaxWidth(width).Render(m.keyHintsView()),
	)
}

func (m *model) statusLine() string {
	state := m.page.State()
	stats := []string{
		fmt.Sprintf("Panel %s", state.Panel()),
		fmt.Sprintf("Chars %d", len([]rune(state.EmailText))),
		fmt.Sprintf("Scroll %3.0f%%", m.viewport.ScrollPercent()*100),
	}
	switch {
	case state.Submitting && m.pending != nil:
		stats = append(stats, "Request "+shortID(m.pending.ID))
	case m.lastJob != nil:
		stats = append(stats, fmt.Sprintf("Last %s in %s", m.lastJob.Status, m.lastJob.Duration.Round(time.Millisecond)))
	}
	if host := endpointHost(m.config.Endpoint); host != "" {
		stats = append(stats, "Backend "+host)
	}
	return strings.Join(stats, "  •  ")
}

type keyHint struct {
	Key         string
	Description string
	Panels      []view.Panel
	Notice      bool
}

var keyHints = []keyHint{
	{Key: "enter", Description: "open form", Panels: []view.Panel{view.PanelHidden}},
	{Key: "↓/j", Description: "scroll", Panels: []view.Panel{view.PanelHidden, view.PanelResult}},
	{Key: "ctrl+s", Description: "predict", Panels: []view.Panel{view.PanelInput}},
	{Key: "tab", Description: "focus", Panels: []view.Panel{view.PanelInput}},
	{Key: "pgup/pgdn", Description: "scroll", Panels: []view.Panel{view.PanelInput}},
	{Key: "enter", Description: "classify another", Panels: []view.Panel{view.PanelResult}},
	{Key: "enter/esc", Description: "dismiss", Notice: true},
	{Key: "ctrl+c", Description: "quit", Panels: []view.Panel{view.PanelHidden, view.PanelInput, view.PanelResult}, Notice: true},
}

func (m *model) keyHintsView() string {
	panel := m.page.Panel()
	open := m.notices.Open()
	hints := lo.Filter(keyHints, func(h keyHint, _ int) bool {
		if open {
			return h.Notice
		}
		return lo.Contains(h.Panels, panel)
	})
	cells := lo.Map(hints, func(h keyHint, _ int) string {
		return keyStyle.Render(h.Key) + " " + keyDescStyle.Render(h.Description)
	})
	return strings.Join(cells, "  ")
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func endpointHost(endpoint string) string {
	if endpoint == "" {
		return ""
	}
	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Host == "" {
		return endpoint
	}
	return parsed.Host
}

func renderLogo(maxWidth int) string {
	width := lo.Max(lo.Map(logoArtLines, func(line string, _ int) int {
		return lipgloss.Width(line)
	}))
	if width == 0 || width+1 > maxWidth {
		return ""
	}
	lines := lo.Map(logoArtLines, func(line string, _ int) string {
		var b strings.Builder
		for _, r := range line {
			switch r {
			case '█':
				b.WriteString(logoFaceStyle.Render(string(r)))
			case ' ':
				b.WriteRune(r)
			default:
				b.WriteString(logoShadowStyle.Render(string(r)))
			}
		}
		return b.String()
	})
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	labelStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("147"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	noticeTitleStyle   = lipgloss.NewStyle().Bold(true)

	heroAccentColor        = lipgloss.Color("#ff8c00")
	heroEmberColor         = lipgloss.Color("#2b1400")
	heroTextColor          = lipgloss.Color("#fff4d0")
	heroSecondaryTextColor = lipgloss.Color("#ffb347")

	heroTitleStyle      = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	taglineStyle        = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	cardStyle           = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(heroAccentColor).Padding(1, 2)
	hiddenCardStyle     = lipgloss.NewStyle().Faint(true)
	resultStyle         = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(heroEmberColor).Padding(0, 1)
	buttonStyle         = lipgloss.NewStyle().Foreground(heroSecondaryTextColor)
	buttonFocusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(heroAccentColor)
	buttonDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnBoxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#ffd166")).Padding(1, 2)
	errorBoxStyle       = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("9")).Padding(1, 2)
	spinnerStyle        = lipgloss.NewStyle().Foreground(heroAccentColor)
	statusBarStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle            = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	logoFaceStyle       = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(heroEmberColor)
	logoShadowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#110600"))
	logoContainerStyle  = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines        = []string{
		"███╗   ███╗   █████╗   ██╗  ██╗        ██████╗   █████╗   ████████╗",
		"████╗ ████║  ██╔══██╗  ██║  ██║       ██╔════╝  ██╔══██╗  ╚══██╔══╝",
		"██╔████╔██║  ███████║  ██║  ██║       ██║       ███████║     ██║   ",
		"██║╚██╔╝██║  ██╔══██║  ██║  ██║       ██║       ██╔══██║     ██║   ",
		"██║ ╚═╝ ██║  ██║  ██║  ██║  ███████╗  ╚██████╗  ██║  ██║     ██║   ",
		"╚═╝     ╚═╝  ╚═╝  ╚═╝  ╚═╝  ╚══════╝   ╚═════╝  ╚═╝  ╚═╝     ╚═╝   ",
	}
)
