package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - section headers
)

// Connection state colors
const (
	ColorConnected    Color = "2" // Green
	ColorDisconnected Color = "1" // Red
	ColorLoading      Color = "3" // Yellow - waiting for the helper
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorFocus     Color = "236" // Dark gray - focused row background
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "2"   // Green - selected option/mode
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorWarning   Color = "214" // Orange - update needed
)
