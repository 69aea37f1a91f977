package domain

// Semantic palette roles.
const (
	RoleAccentPrimary   = "accentPrimary"
	RoleAccentSecondary = "accentSecondary"
	RoleBackground      = "background"
	RoleBackgroundLight = "backgroundLight"
	RoleForeground      = "foreground"
	RoleText            = "text"
)

// Roles lists every role a palette template may contain, in display order.
var Roles = []string{
	RoleBackground,
	RoleForeground,
	RoleBackgroundLight,
	RoleAccentPrimary,
	RoleAccentSecondary,
	RoleText,
}

// IsKnownRole reports whether role is one of Roles.
func IsKnownRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// BrowserKeys are the Firefox theme color keys the browser template maps to roles.
var BrowserKeys = []string{
	"icons", "icons_attention", "frame", "tab_text", "tab_loading",
	"tab_background_text", "tab_selected", "tab_line", "tab_background_separator",
	"toolbar", "toolbar_field", "toolbar_field_focus", "toolbar_field_text",
	"toolbar_field_text_focus", "toolbar_field_border", "toolbar_field_border_focus",
	"toolbar_field_separator", "toolbar_field_highlight", "toolbar_field_highlight_text",
	"toolbar_bottom_separator", "toolbar_top_separator", "toolbar_vertical_separator",
	"ntp_background", "ntp_text", "popup", "popup_border", "popup_text",
	"popup_highlight", "popup_highlight_text", "sidebar", "sidebar_border",
	"sidebar_text", "sidebar_highlight", "sidebar_highlight_text", "bookmark_text",
	"button_background_hover", "button_background_active",
}

var defaultPaletteTemplate = PaletteTemplate{
	RoleBackground:      0,
	RoleForeground:      15,
	RoleBackgroundLight: 8,
	RoleAccentPrimary:   1,
	RoleAccentSecondary: 2,
	RoleText:            7,
}

var defaultThemeTemplate = ThemeTemplate{
	"icons":                        RoleAccentPrimary,
	"icons_attention":              RoleAccentSecondary,
	"frame":                        RoleBackground,
	"tab_text":                     RoleBackground,
	"tab_loading":                  RoleAccentPrimary,
	"tab_background_text":          RoleText,
	"tab_selected":                 RoleForeground,
	"tab_line":                     RoleForeground,
	"tab_background_separator":     RoleBackground,
	"toolbar":                      RoleBackground,
	"toolbar_field":                RoleBackground,
	"toolbar_field_focus":          RoleBackground,
	"toolbar_field_text":           RoleText,
	"toolbar_field_text_focus":     RoleText,
	"toolbar_field_border":         RoleBackground,
	"toolbar_field_border_focus":   RoleBackground,
	"toolbar_field_separator":      RoleBackground,
	"toolbar_field_highlight":      RoleAccentPrimary,
	"toolbar_field_highlight_text": RoleBackground,
	"toolbar_bottom_separator":     RoleBackground,
	"toolbar_top_separator":        RoleBackground,
	"toolbar_vertical_separator":   RoleBackgroundLight,
	"ntp_background":               RoleBackground,
	"ntp_text":                     RoleForeground,
	"popup":                        RoleBackground,
	"popup_border":                 RoleBackgroundLight,
	"popup_text":                   RoleText,
	"popup_highlight":              RoleBackgroundLight,
	"popup_highlight_text":         RoleForeground,
	"sidebar":                      RoleBackground,
	"sidebar_border":               RoleBackgroundLight,
	"sidebar_text":                 RoleText,
	"sidebar_highlight":            RoleAccentPrimary,
	"sidebar_highlight_text":       RoleBackground,
	"bookmark_text":                RoleText,
	"button_background_hover":      RoleBackgroundLight,
	"button_background_active":     RoleBackgroundLight,
}

// DefaultPaletteTemplate returns a fresh copy of the default role->index mapping.
func DefaultPaletteTemplate() PaletteTemplate {
	return defaultPaletteTemplate.Clone()
}

// DefaultThemeTemplate returns a fresh copy of the default browser key->role mapping.
func DefaultThemeTemplate() ThemeTemplate {
	return defaultThemeTemplate.Clone()
}

// DefaultTemplate returns the template used on first start and after a full reset.
func DefaultTemplate() Template {
	return Template{
		Browser: DefaultThemeTemplate(),
		Palette: DefaultPaletteTemplate(),
	}
}
