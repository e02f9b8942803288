package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	m.refreshViewportIfDirty()
	parts := []string{
		m.heroView(),
		m.formView(),
	}
	if message := m.errorText(); message != "" {
		parts = append(parts, errorStyle.Render(message))
	}
	if m.notice != "" {
		if m.noticeIsError {
			parts = append(parts, errorStyle.Render(m.notice))
		} else {
			parts = append(parts, helperStyle.Render(m.notice))
		}
	}
	parts = append(parts, m.viewport.View(), m.statusBarView(), m.keyHintsView())
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(heroTitle),
		taglineStyle.Render(heroTagline),
	)
}

func (m *model) formView() string {
	return lipgloss.JoinHorizontal(lipgloss.Center, inputBoxStyle.Render(m.input.View()), " ", m.buttonView())
}

func (m *model) buttonView() string {
	if m.submitEnabled() {
		return buttonStyle.Render(m.submitLabel())
	}
	return buttonDisabledStyle.Render(m.submitLabel())
}

func (m *model) statusBarView() string {
	stats := []string{}
	if m.config.Client != nil {
		stats = append(stats, m.config.Client.Endpoint())
	}
	stats = append(stats, fmt.Sprintf("top_k %d", m.config.TopK))
	switch m.health {
	case healthOK:
		stats = append(stats, healthOKStyle.Render("API online"))
	case healthDown:
		stats = append(stats, "API unreachable")
	}
	if done, ok := m.state.(Succeeded); ok {
		stats = append(stats, fmt.Sprintf("%d match(es)", len(done.Result.Matches)))
	}
	stats = append(stats, m.jobStatusBadges()...)
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) keyHintsView() string {
	hints := []string{"Enter: ask", "Esc: clear", "PgUp/PgDn: scroll"}
	if m.config.TranscriptPath != "" {
		hints = append(hints, "Ctrl+S: export")
	}
	hints = append(hints, "Ctrl+C: quit")
	return helperStyle.Render(strings.Join(hints, " • "))
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
