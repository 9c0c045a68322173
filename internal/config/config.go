// Package config loads tldr settings with precedence defaults < file < env.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"pkt.systems/tldr"
	"pkt.systems/tldr/internal/palette"
)

// Config is the resolved configuration.
type Config struct {
	Quiet  bool         `mapstructure:"quiet"`
	Output OutputConfig `mapstructure:"output"`
	Indent IndentConfig `mapstructure:"indent"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Style  StyleConfig  `mapstructure:"style"`
}

// OutputConfig controls how pages are printed.
type OutputConfig struct {
	ShowTitle     bool   `mapstructure:"show_title"`
	PlatformTitle bool   `mapstructure:"platform_title"`
	ShowHyphens   bool   `mapstructure:"show_hyphens"`
	ExamplePrefix string `mapstructure:"example_prefix"`
	Compact       bool   `mapstructure:"compact"`
	RawMarkdown   bool   `mapstructure:"raw_markdown"`
	OSC8          string `mapstructure:"osc8"`
	Color         string `mapstructure:"color"`
	Width         int    `mapstructure:"width"`
}

// IndentConfig holds per-role indentation widths.
type IndentConfig struct {
	Title       int `mapstructure:"title"`
	Description int `mapstructure:"description"`
	Bullet      int `mapstructure:"bullet"`
	Example     int `mapstructure:"example"`
}

// CacheConfig locates the page cache.
type CacheConfig struct {
	Dir       string   `mapstructure:"dir"`
	Platform  string   `mapstructure:"platform"`
	Languages []string `mapstructure:"languages"`
}

// StyleConfig holds one style descriptor per page role.
type StyleConfig struct {
	Title       StyleDescriptor `mapstructure:"title"`
	Description StyleDescriptor `mapstructure:"description"`
	Bullet      StyleDescriptor `mapstructure:"bullet"`
	Example     StyleDescriptor `mapstructure:"example"`
	URL         StyleDescriptor `mapstructure:"url"`
	InlineCode  StyleDescriptor `mapstructure:"inline_code"`
	Placeholder StyleDescriptor `mapstructure:"placeholder"`
}

// StyleDescriptor is a foreground/background color plus text attributes.
type StyleDescriptor struct {
	Color         string `mapstructure:"color"`
	Background    string `mapstructure:"background"`
	Bold          bool   `mapstructure:"bold"`
	Italic        bool   `mapstructure:"italic"`
	Underline     bool   `mapstructure:"underline"`
	Dim           bool   `mapstructure:"dim"`
	Strikethrough bool   `mapstructure:"strikethrough"`
}

func applyDefaults(v *viper.Viper) {
	for _, o := range GetOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration into v and decodes it. A config file set with
// v.SetConfigFile must exist; otherwise the XDG search path is used and a
// missing file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "tldr"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tldr"))
		}
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("tldr")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// TLDR_CACHE_LANGUAGES=de,fr
	if s := strings.TrimSpace(v.GetString("cache.languages")); s != "" && !strings.HasPrefix(s, "[") {
		v.Set("cache.languages", splitList(s))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = defaultCacheDir()
	}
	return &cfg, nil
}

// Path returns the config file Load would read, used by --config-path.
func Path(v *viper.Viper) string {
	if used := v.ConfigFileUsed(); used != "" {
		return used
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tldr", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tldr", "config.toml")
}

// defaultCacheDir resolves $XDG_CACHE_HOME/tldr or ~/.cache/tldr.
func defaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "tldr")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "tldr")
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CheckValidity reports every invalid value in cfg.
func CheckValidity(cfg *Config) error {
	var problems []string
	indents := []struct {
		name  string
		value int
	}{
		{"indent.title", cfg.Indent.Title},
		{"indent.description", cfg.Indent.Description},
		{"indent.bullet", cfg.Indent.Bullet},
		{"indent.example", cfg.Indent.Example},
	}
	for _, in := range indents {
		if in.value < 0 {
			problems = append(problems, fmt.Sprintf("%s must not be negative", in.name))
		}
	}
	if cfg.Output.Width < 0 {
		problems = append(problems, "output.width must not be negative")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Output.OSC8)) {
	case "", "auto", "on", "off", "true", "false", "1", "0", "yes", "no":
	default:
		problems = append(problems, fmt.Sprintf("output.osc8 %q must be auto, on or off", cfg.Output.OSC8))
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Output.Color)) {
	case "", "auto", "always", "never":
	default:
		problems = append(problems, fmt.Sprintf("output.color %q must be auto, always or never", cfg.Output.Color))
	}
	for _, r := range cfg.Style.byRole() {
		if !palette.ValidColor(r.desc.Color) {
			problems = append(problems, fmt.Sprintf("style.%s.color %q is not a color", r.role, r.desc.Color))
		}
		if !palette.ValidColor(r.desc.Background) {
			problems = append(problems, fmt.Sprintf("style.%s.background %q is not a color", r.role, r.desc.Background))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config:\n  %s", strings.Join(problems, "\n  "))
}

type namedDescriptor struct {
	role string
	desc StyleDescriptor
}

func (s StyleConfig) byRole() []namedDescriptor {
	descs := []StyleDescriptor{
		s.Title,
		s.Description,
		s.Bullet,
		s.Example,
		s.URL,
		s.InlineCode,
		s.Placeholder,
	}
	out := make([]namedDescriptor, 0, len(descs))
	for i, role := range Roles() {
		out = append(out, namedDescriptor{role: role, desc: descs[i]})
	}
	return out
}

// Style converts the descriptor to a renderer style.
func (d StyleDescriptor) Style() (tldr.Style, error) {
	fg, err := palette.Foreground(d.Color)
	if err != nil {
		return tldr.Style{}, err
	}
	bg, err := palette.Background(d.Background)
	if err != nil {
		return tldr.Style{}, err
	}
	attrs := palette.Attributes{
		Bold:          d.Bold,
		Dim:           d.Dim,
		Italic:        d.Italic,
		Underline:     d.Underline,
		Strikethrough: d.Strikethrough,
	}
	return tldr.Style{Prefix: attrs.Prefix() + fg + bg}, nil
}

// Theme builds a theme named "config" from the style section.
func (c *Config) Theme() (tldr.Theme, error) {
	var styles tldr.Styles
	targets := []*tldr.Style{
		&styles.Title,
		&styles.Description,
		&styles.Bullet,
		&styles.Example,
		&styles.URL,
		&styles.InlineCode,
		&styles.Placeholder,
	}
	for i, r := range c.Style.byRole() {
		st, err := r.desc.Style()
		if err != nil {
			return nil, fmt.Errorf("style.%s: %w", r.role, err)
		}
		*targets[i] = st
	}
	return tldr.NewTheme("config", styles), nil
}

// RenderOptions maps the output and indent sections to render options. OSC 8
// depends on the terminal and is resolved by the caller.
func (c *Config) RenderOptions() []tldr.RenderOption {
	prefix := c.Output.ExamplePrefix
	return []tldr.RenderOption{
		tldr.WithShowTitle(c.Output.ShowTitle),
		tldr.WithPlatformTitle(c.Output.PlatformTitle),
		tldr.WithShowHyphens(c.Output.ShowHyphens),
		tldr.WithExamplePrefix(prefix),
		tldr.WithCompact(c.Output.Compact),
		tldr.WithRawMarkdown(c.Output.RawMarkdown),
		tldr.WithWidth(c.Output.Width),
		tldr.WithIndent(tldr.Indent{
			Title:       c.Indent.Title,
			Description: c.Indent.Description,
			Bullet:      c.Indent.Bullet,
			Example:     c.Indent.Example,
		}),
	}
}
