package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/mailcat/internal/view"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	cardWidth      int
	inputWidth     int
}

func newPageLayout() pageLayout {
	l := pageLayout{}
	l.Update(80, 24)
	l.windowWidth, l.windowHeight = 0, 0
	return l
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	l.viewportWidth = max(width, minViewportWidth)
	l.viewportHeight = max(height-footerHeight, minViewportHeight)
	l.cardWidth = min(l.viewportWidth-4, maxCardWidth)
	// border and horizontal padding of cardStyle
	l.inputWidth = l.cardWidth - 6
}

// region is a span of page lines.
type region struct {
	start  int
	height int
}

// visibleRatio is the fraction of r inside a viewport of the given height
// scrolled to offset.
func (r region) visibleRatio(offset, viewportHeight int) float64 {
	if r.height <= 0 || viewportHeight <= 0 {
		return 0
	}
	top := max(r.start, offset)
	bottom := min(r.start+r.height, offset+viewportHeight)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(r.height)
}

type pageContent struct {
	content string
	form    region
}

// buildPage renders the whole scrollable page: a hero filling the first
// screen, then the form section.
func (m *model) buildPage() pageContent {
	hero := m.heroView()
	section := m.formSection()
	return pageContent{
		content: hero + "\n" + section,
		form:    region{start: lipgloss.Height(hero), height: lipgloss.Height(section)},
	}
}

func (m *model) heroView() string {
	parts := []string{}
	if m.layout.viewportHeight >= logoMinHeight {
		if logo := renderLogo(m.layout.viewportWidth - 2); logo != "" {
			parts = append(parts, logo)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, heroTitleStyle.Render("mailcat"))
	}
	parts = append(parts,
		taglineStyle.Render(heroTagline),
		"",
		m.button(ctaLabel, m.focus == focusCTA, false),
		helperStyle.Render("Enter opens the form. Scroll down to reach it."),
	)
	block := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(m.layout.viewportWidth, m.layout.viewportHeight, lipgloss.Center, lipgloss.Center, block)
}

func (m *model) formSection() string {
	state := m.page.State()
	header := sectionHeaderStyle.Render("Email classifier")
	var card string
	switch state.Panel() {
	case view.PanelHidden:
		height := lipgloss.Height(m.inputCard(state))
		card = hiddenCardStyle.Render(lipgloss.Place(
			m.layout.cardWidth, height, lipgloss.Center, lipgloss.Center,
			helperStyle.Render("The form opens once you scroll here."),
		))
	case view.PanelInput:
		card = m.inputCard(state)
	case view.PanelResult:
		card = m.resultCard(state)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, header, "", card)
	return lipgloss.PlaceHorizontal(m.layout.viewportWidth, lipgloss.Center, body)
}

func (m *model) inputCard(state view.ViewState) string {
	label := submitLabel
	if state.Submitting {
		label = submittingLabel
	}
	button := m.button(label, m.focus == focusSubmit, !state.CanSubmit())
	if state.Submitting {
		button = lipgloss.JoinHorizontal(lipgloss.Center, m.spinner.View(), " ", button)
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Email text"),
		m.textarea.View(),
		"",
		button,
		helperStyle.Render(m.inputHelpText(state)),
	)
	return cardStyle.Width(m.layout.cardWidth - 2).Render(content)
}

func (m *model) inputHelpText(state view.ViewState) string {
	if state.Submitting {
		return "Waiting for the classifier. You can keep editing."
	}
	return "Ctrl+S predicts. Tab moves between the text and the button."
}

func (m *model) resultCard(state view.ViewState) string {
	category := ""
	if state.Prediction != nil {
		category = state.Prediction.Category
	}
	wrapped := wordwrap.String(category, max(m.layout.inputWidth, 10))
	content := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Prediction"),
		"",
		resultStyle.Render(wrapped),
		"",
		m.button(resetLabel, m.focus == focusReset, false),
	)
	return cardStyle.Width(m.layout.cardWidth - 2).Render(content)
}

func (m *model) button(label string, focused, disabled bool) string {
	text := "[ " + label + " ]"
	switch {
	case disabled:
		return buttonDisabledStyle.Render(text)
	case focused:
		return buttonFocusStyle.Render(text)
	default:
		return buttonStyle.Render(text)
	}
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
