package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay wraps an error to maxWidth and keeps at most
// maxErrorLines lines, ending with "..." when text was cut.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := strings.Join(strings.Fields(err.Error()), " ")
	if message == "" {
		return errorPrefix + "unknown error"
	}

	maxWidth = max(maxWidth, 10+len(errorPrefix))
	lines := strings.Split(ansi.Wordwrap(errorPrefix+message, maxWidth, ""), "\n")
	if len(lines) <= maxErrorLines {
		return strings.Join(lines, "\n")
	}

	lines = lines[:maxErrorLines]
	last := lines[maxErrorLines-1]
	if ansi.StringWidth(last)+len(truncationMark) > maxWidth {
		last = ansi.Truncate(last, maxWidth-len(truncationMark), "")
	}
	lines[maxErrorLines-1] = last + truncationMark
	return strings.Join(lines, "\n")
}
