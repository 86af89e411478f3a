package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const helpText = "[←/h] Back  [→/l] Forward  [↑↓] Select  [q] Quit"

// View renders the current view.
//
// Sections, top to bottom: the error line when the fetch failed, the spinner
// while it is in flight, then the table and controls only when the current
// page has records. An empty page renders no table and no controls.
func (m *PostsViewModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	if m.state.IsFailed() {
		sections = append(sections, CriticalStyle.Render(m.state.Message))
	}

	if m.state.IsLoading() {
		sections = append(sections, RenderLoading(m.loading))
	}

	if len(m.pager.VisibleSlice()) > 0 {
		sections = append(sections, m.table.View(), m.renderControls())
	}

	sections = append(sections, SubtleStyle.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderControls renders "[ Back ]  Page X of Y  [ Forward ]" with each
// control styled by whether it is enabled.
func (m *PostsViewModel) renderControls() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		renderControl(labelRetreat, m.pager.CanRetreat()),
		PageIndicatorStyle.Render(pageIndicator(m.pager.CurrentPage(), m.pager.TotalPages())),
		renderControl(labelAdvance, m.pager.CanAdvance()),
	)
}

func renderControl(label string, enabled bool) string {
	if enabled {
		return ControlStyle.Render(label)
	}
	return DisabledControlStyle.Render(label)
}

// pageIndicator formats the page position.
func pageIndicator(current, total int) string {
	return fmt.Sprintf("Page %d of %d", current, total)
}
