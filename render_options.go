package tldr

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

// Indent holds the indentation width of each line role.
type Indent struct {
	Title       int
	Description int
	Bullet      int
	Example     int
}

// DefaultIndent returns the default per-role indentation.
func DefaultIndent() Indent {
	return Indent{Title: 2, Description: 2, Bullet: 2, Example: 4}
}

// DefaultExamplePrefix replaces "- " on bullet lines when hyphens are shown.
const DefaultExamplePrefix = "- "

type renderConfig struct {
	showTitle     bool
	platformTitle bool
	showHyphens   bool
	examplePrefix string
	compact       bool
	raw           bool
	osc8          bool
	width         int
	indent        Indent
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{
		showTitle:     true,
		examplePrefix: DefaultExamplePrefix,
		indent:        DefaultIndent(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithShowTitle enables or disables the page title.
func WithShowTitle(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.showTitle = enabled
	}
}

// WithPlatformTitle prefixes the title with "<platform>/" when the page path
// has a platform directory.
func WithPlatformTitle(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.platformTitle = enabled
	}
}

// WithShowHyphens keeps a marker in front of bullet lines, replacing "- "
// with the example prefix.
func WithShowHyphens(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.showHyphens = enabled
	}
}

// WithExamplePrefix sets the bullet marker used when hyphens are shown.
func WithExamplePrefix(prefix string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.examplePrefix = prefix
	}
}

// WithCompact suppresses blank lines.
func WithCompact(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.compact = enabled
	}
}

// WithRawMarkdown copies the page verbatim instead of rendering it.
func WithRawMarkdown(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.raw = enabled
	}
}

// WithOSC8 enables or disables OSC 8 hyperlinks on URLs.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithWidth wraps title, description and bullet lines at width columns.
// Zero disables wrapping. Wrapping is skipped while WithOSC8 is enabled.
func WithWidth(width int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.width = width
	}
}

// WithIndent sets the per-role indentation.
func WithIndent(indent Indent) RenderOption {
	return func(cfg *renderConfig) {
		cfg.indent = indent
	}
}
