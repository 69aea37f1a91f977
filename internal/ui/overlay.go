package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"pywalfox/internal/theme"
)

// compositeOverlay renders an overlay centered on top of a dimmed background.
// The background content is visible but dimmed, with the overlay rendered on top.
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	for i := range bgLines {
		bgLines[i] = dimLine(bgLines[i], width)
	}

	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}

	// Center on the terminal, not on the page, so long pages keep the dialog in view
	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := max(width-startX-lipgloss.Width(line), 0)
		bgLines[y] = theme.DimStyle.Render(strings.Repeat(" ", startX)) +
			line +
			theme.DimStyle.Render(strings.Repeat(" ", rightPad))
	}

	return strings.Join(bgLines, "\n")
}

// dimLine strips existing styling from line, dims it and pads it to width.
func dimLine(line string, width int) string {
	dimmed := theme.DimStyle.Render(ansi.Strip(line))
	if w := lipgloss.Width(dimmed); w < width {
		dimmed += strings.Repeat(" ", width-w)
	}
	return dimmed
}
