package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the rig panel and the side column horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, rigPanel, sideColumn, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, rigPanel, sideColumn)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

// RenderRigPanel wraps rig content with a styled border, highlighted while
// the cursor is tracked.
// The actual rig drawing is done externally to keep ui free of geometry.
func RenderRigPanel(width, height int, rigContent, legend string, tracking bool) string {
	style := StylePanelBorder
	if tracking {
		style = StylePanelActive
	}
	content := rigContent + "\n" + legend
	return style.Width(width - 2).Height(height - 2).Render(content)
}
