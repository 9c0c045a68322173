package tldr

import (
	"sort"
	"strings"

	"pkt.systems/tldr/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Paint wraps s in the style. An empty style leaves s untouched.
func (s Style) Paint(text string) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + palette.Reset
}

// Styles groups the per-role styles used by the page renderer.
type Styles struct {
	Title       Style
	Description Style
	Bullet      Style
	Example     Style
	URL         Style
	InlineCode  Style
	Placeholder Style
}

// Theme provides named styles for page rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Title:       style(palette.Bold, palette.Magenta),
		Description: style(palette.Magenta),
		Bullet:      style(palette.Green),
		Example:     style(palette.Cyan),
		URL:         style(palette.Italic, palette.Red),
		InlineCode:  style(palette.Italic, palette.Yellow),
		Placeholder: style(palette.Italic, palette.Red),
	}},
	"ocean": theme{name: "ocean", styles: Styles{
		Title:       style(palette.Bold, palette.Blue),
		Description: style(palette.White),
		Bullet:      style(palette.Cyan),
		Example:     style(palette.Green),
		URL:         style(palette.Underline, palette.Blue),
		InlineCode:  style(palette.Bold, palette.Cyan),
		Placeholder: style(palette.Italic, palette.Yellow),
	}},
	"boring": theme{name: "boring"},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a theme that applies no styling at all.
func BoringTheme() Theme {
	return builtinThemes["boring"]
}
