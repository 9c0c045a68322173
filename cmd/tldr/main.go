package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"pkt.systems/version"

	"pkt.systems/tldr"
	"pkt.systems/tldr/internal/cache"
	"pkt.systems/tldr/internal/config"
)

func init() {
	version.SetDefaultModule("pkt.systems/tldr")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	renderPath    string
	platform      string
	languages     []string
	raw           bool
	compact       bool
	noCompact     bool
	quiet         bool
	color         string
	themeName     string
	osc8          string
	width         int
	outPath       string
	configPath    string
	showConfig    bool
	genConfig     bool
	listThemes    bool
	listPages     bool
	listPlatforms bool
	showVersion   bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var o options
	flags := pflag.NewFlagSet("tldr", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&o.renderPath, "render", "f", "", "Render the page at this path instead of looking it up")
	flags.StringVarP(&o.platform, "platform", "p", "", "Platform to prefer (linux, osx, windows, ...)")
	flags.StringSliceVarP(&o.languages, "language", "L", nil, "Page languages in order of preference")
	flags.BoolVarP(&o.raw, "raw", "r", false, "Print the page without rendering it")
	flags.BoolVarP(&o.compact, "compact", "c", false, "Strip empty lines from output")
	flags.BoolVar(&o.noCompact, "no-compact", false, "Keep empty lines in output (overrides config)")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "Suppress warnings")
	flags.StringVar(&o.color, "color", "", "Color output: auto|always|never")
	flags.StringVarP(&o.themeName, "theme", "t", "", "Built-in theme name (overrides config styles)")
	flags.StringVarP(&o.osc8, "osc8", "8", "", "OSC8 hyperlinks: auto|on|off")
	flags.IntVarP(&o.width, "width", "w", -1, "Wrap prose at this width (0 disables wrapping)")
	flags.StringVarP(&o.outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVar(&o.configPath, "config", "", "Config file path")
	flags.BoolVar(&o.showConfig, "config-path", false, "Print the config file path")
	flags.BoolVar(&o.genConfig, "gen-config", false, "Print the default config")
	flags.BoolVar(&o.listThemes, "list-themes", false, "List available themes")
	flags.BoolVarP(&o.listPages, "list", "l", false, "List pages for the platform")
	flags.BoolVar(&o.listPlatforms, "list-platforms", false, "List available platforms")
	flags.BoolVarP(&o.showVersion, "version", "v", false, "Print version")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: tldr [flags] <page...>\n")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	switch {
	case o.showVersion:
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	case o.genConfig:
		fmt.Fprint(stdout, config.RenderDefaultTOML())
		return 0
	case o.listThemes:
		printThemes(stdout)
		return 0
	}

	v := viper.New()
	if o.configPath != "" {
		v.SetConfigFile(normalizePath(o.configPath))
	}
	if o.showConfig {
		fmt.Fprintln(stdout, config.Path(v))
		return 0
	}
	cfg, err := config.Load(v)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	applyFlags(cfg, o)
	if err := config.CheckValidity(cfg); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	pages := cache.New(cfg.Cache.Dir, cfg.Cache.Languages)
	switch {
	case o.listPlatforms:
		return printList(stdout, stderr, pages.Platforms)
	case o.listPages:
		return printList(stdout, stderr, func() ([]string, error) { return pages.List(cfg.Cache.Platform) })
	}

	if o.renderPath == "" && flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	writer, closeOut, err := resolveOutput(o.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	colored, err := resolveColor(cfg.Output.Color, writer)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --color %q: %v\n", cfg.Output.Color, err)
		return 2
	}
	theme, err := resolveTheme(o.themeName, cfg, colored)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n\n", err)
		printThemes(stderr)
		return 2
	}
	osc8, err := resolveOSC8(cfg.Output.OSC8)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --osc8 %q: %v\n", cfg.Output.OSC8, err)
		return 2
	}
	opts := append(cfg.RenderOptions(), tldr.WithOSC8(osc8 && colored))
	warn := tldr.Warner{W: stderr, Quiet: cfg.Quiet, Styled: colored && isTerminal(stderr)}

	if o.renderPath != "" {
		err = tldr.RenderPage(normalizePath(o.renderPath), writer, theme, opts...)
	} else {
		var paths []string
		paths, err = pages.Find(strings.Join(flags.Args(), "-"), cfg.Cache.Platform)
		if err == nil {
			err = tldr.PrintCacheResult(paths, writer, warn, theme, opts...)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

func applyFlags(cfg *config.Config, o options) {
	if o.compact {
		cfg.Output.Compact = true
	}
	if o.noCompact {
		cfg.Output.Compact = false
	}
	if o.raw {
		cfg.Output.RawMarkdown = true
	}
	if o.quiet {
		cfg.Quiet = true
	}
	if o.color != "" {
		cfg.Output.Color = o.color
	}
	if o.osc8 != "" {
		cfg.Output.OSC8 = o.osc8
	}
	if o.width >= 0 {
		cfg.Output.Width = o.width
	}
	if o.platform != "" {
		cfg.Cache.Platform = o.platform
	}
	if len(o.languages) > 0 {
		cfg.Cache.Languages = o.languages
	}
}

func exitCode(err error) int {
	var parseErr *tldr.ParseError
	var ioErr *tldr.IOError
	switch {
	case errors.As(err, &parseErr):
		return 3
	case errors.As(err, &ioErr):
		return 4
	default:
		return 1
	}
}

func printThemes(w io.Writer) {
	for _, name := range tldr.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func printList(stdout, stderr io.Writer, list func() ([]string, error)) int {
	names, err := list()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	return 0
}

func resolveTheme(name string, cfg *config.Config, colored bool) (tldr.Theme, error) {
	if !colored {
		return tldr.BoringTheme(), nil
	}
	if name != "" {
		theme, ok := tldr.ThemeByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown theme %q", name)
		}
		return theme, nil
	}
	return cfg.Theme()
}

func resolveColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return os.Getenv("NO_COLOR") == "" && isTerminal(w), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|always|never")
	}
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return tldr.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
