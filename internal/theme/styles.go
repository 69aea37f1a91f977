package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(28)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Row styles
var (
	FocusedRowStyle = lipgloss.NewStyle().
			Background(ColorFocus).
			Foreground(ColorHighlight)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorLoading).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorSelected).
			Bold(true)
)

// Debugging card styles
var (
	ConnectedStyle = lipgloss.NewStyle().
			Foreground(ColorConnected).
			Bold(true)

	DisconnectedStyle = lipgloss.NewStyle().
				Foreground(ColorDisconnected).
				Bold(true)

	LogStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Dim style for the page behind an open dialog
var DimStyle = lipgloss.NewStyle().Foreground(ColorVersion)

// Dialog box style, drawn over the dimmed settings page
var DialogBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorPrimary).
	Padding(0, 1)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Swatch renders text on a background of the given hex color. Invalid or empty
// colors render as a muted placeholder.
func Swatch(hex, text string) string {
	if hex == "" {
		return MutedStyle.Render(text)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(contrastFor(hex)).
		Render(text)
}

// contrastFor picks black or white text for a #rrggbb background.
func contrastFor(hex string) lipgloss.Color {
	if len(hex) != 7 {
		return "#ffffff"
	}
	var r, g, b int
	for i, dst := range []*int{&r, &g, &b} {
		*dst = hexByte(hex[1+2*i : 3+2*i])
	}
	// ITU-R BT.601 luma
	if (299*r+587*g+114*b)/1000 > 140 {
		return "#000000"
	}
	return "#ffffff"
}

func hexByte(s string) int {
	n := 0
	for _, c := range s {
		n <<= 4
		switch {
		case c >= '0' && c <= '9':
			n |= int(c - '0')
		case c >= 'a' && c <= 'f':
			n |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			n |= int(c-'A') + 10
		}
	}
	return n
}
