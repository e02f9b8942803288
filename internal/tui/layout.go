package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/highlightchat/internal/timefmt"
)

// chromeHeight counts the rows around the results viewport: title, tagline, the
// bordered input row, the error/notice line, the status bar and the key hints,
// plus the blank separators between them.
const chromeHeight = 14

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	inputWidth     int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 20,
		inputWidth:     60,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	l.inputWidth = innerWidth - buttonReserve
	if l.inputWidth < minViewportWidth/2 {
		l.inputWidth = minViewportWidth / 2
	}
	l.viewportHeight = height - chromeHeight
	if l.viewportHeight < minViewportHeight {
		l.viewportHeight = minViewportHeight
	}
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width - padding
	if width < 20 {
		width = 20
	}
	return width
}

// buildResultsContent renders the viewport body for the current request state.
func (m *model) buildResultsContent() string {
	switch state := m.state.(type) {
	case Loading:
		return fmt.Sprintf("%s %s", m.spinner.View(), helperStyle.Render("Searching highlights for “"+strings.TrimSpace(state.Query)+"”"))
	case Failed:
		return helperStyle.Render("Edit the question and press Enter to try again.")
	case Succeeded:
		return m.renderResult(state)
	default:
		return helperStyle.Render("Type a question and press Enter. Matches will be listed here.")
	}
}

func (m *model) renderResult(state Succeeded) string {
	var sections []string
	if state.Result.Answer != "" {
		wrapped := wordwrap.String(state.Result.Answer, m.wrapWidth(8))
		sections = append(sections, answerBoxStyle.Render(wrapped))
	}
	if len(state.Result.Matches) > 0 {
		sections = append(sections, m.renderMatches(state))
	}
	if len(sections) == 0 {
		return helperStyle.Render("The service returned no answer and no matches.")
	}
	return strings.Join(sections, "\n\n")
}

func (m *model) renderMatches(state Succeeded) string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Matches"))
	wrap := m.wrapWidth(6)
	for idx, match := range state.Result.Matches {
		marker := fmt.Sprintf("%d. ", idx+1)
		line := fmt.Sprintf("%s [%s] — %s",
			filenameStyle.Render(match.Filename),
			spanStyle.Render(timefmt.Range(match.StartSec, match.EndSec)),
			match.Label(),
		)
		body := wordwrap.String(line, wrap)
		first, rest, _ := strings.Cut(body, "\n")
		b.WriteRune('\n')
		b.WriteString(marker + first)
		if rest != "" {
			b.WriteRune('\n')
			b.WriteString(indent.String(rest, uint(len(marker))))
		}
	}
	return b.String()
}
