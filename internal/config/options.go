package config

// Option describes a single configuration key, its default value and help text.
type Option struct {
	Key     string
	Default any
	Comment string
}

type roleStyle struct {
	color  string
	bold   bool
	italic bool
}

var defaultRoleStyles = []struct {
	role  string
	style roleStyle
}{
	{"title", roleStyle{color: "magenta", bold: true}},
	{"description", roleStyle{color: "magenta"}},
	{"bullet", roleStyle{color: "green"}},
	{"example", roleStyle{color: "cyan"}},
	{"url", roleStyle{color: "red", italic: true}},
	{"inline_code", roleStyle{color: "yellow", italic: true}},
	{"placeholder", roleStyle{color: "red", italic: true}},
}

// Roles lists the page roles that carry a style section.
func Roles() []string {
	out := make([]string, 0, len(defaultRoleStyles))
	for _, r := range defaultRoleStyles {
		out = append(out, r.role)
	}
	return out
}

// GetOptions returns every configuration key with its default.
func GetOptions() []Option {
	opts := []Option{
		{Key: "quiet", Default: false, Comment: "Suppress warnings"},
		{Key: "output.show_title", Default: true, Comment: "Show the page title"},
		{Key: "output.platform_title", Default: false, Comment: "Prefix the title with the page platform"},
		{Key: "output.show_hyphens", Default: false, Comment: "Keep a marker in front of example descriptions"},
		{Key: "output.example_prefix", Default: "- ", Comment: "Marker used when show_hyphens is enabled"},
		{Key: "output.compact", Default: false, Comment: "Strip empty lines from output"},
		{Key: "output.raw_markdown", Default: false, Comment: "Print pages without rendering"},
		{Key: "output.osc8", Default: "auto", Comment: "OSC 8 hyperlinks for URLs: auto|on|off"},
		{Key: "output.color", Default: "auto", Comment: "Color output: auto|always|never"},
		{Key: "output.width", Default: 0, Comment: "Wrap prose at this width (0 disables wrapping)"},
		{Key: "indent.title", Default: 2, Comment: "Title indentation"},
		{Key: "indent.description", Default: 2, Comment: "Description indentation"},
		{Key: "indent.bullet", Default: 2, Comment: "Bullet indentation"},
		{Key: "indent.example", Default: 4, Comment: "Example indentation"},
		{Key: "cache.dir", Default: "", Comment: "Page cache directory (empty uses the XDG cache dir)"},
		{Key: "cache.platform", Default: "", Comment: "Preferred platform (empty uses the current OS)"},
		{Key: "cache.languages", Default: []string{}, Comment: "Page languages in order of preference"},
	}
	for _, r := range defaultRoleStyles {
		prefix := "style." + r.role + "."
		opts = append(opts,
			Option{Key: prefix + "color", Default: r.style.color, Comment: "Name, 0-255 index or #rrggbb"},
			Option{Key: prefix + "background", Default: "default"},
			Option{Key: prefix + "bold", Default: r.style.bold},
			Option{Key: prefix + "italic", Default: r.style.italic},
			Option{Key: prefix + "underline", Default: false},
			Option{Key: prefix + "dim", Default: false},
			Option{Key: prefix + "strikethrough", Default: false},
		)
	}
	return opts
}
