package tldr

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"pkt.systems/tldr/internal/palette"
)

// Warner prints warnings. A quiet Warner prints nothing.
type Warner struct {
	W      io.Writer
	Quiet  bool
	Styled bool
}

// Warnf prints a single "warning:" line.
func (w Warner) Warnf(format string, args ...any) {
	if w.Quiet || w.W == nil {
		return
	}
	_, _ = fmt.Fprintf(w.W, "%s %s\n", w.paint(style(palette.Bold, palette.Yellow), "warning:"), fmt.Sprintf(format, args...))
}

// Printf prints a continuation line of a warning.
func (w Warner) Printf(format string, args ...any) {
	if w.Quiet || w.W == nil {
		return
	}
	_, _ = fmt.Fprintf(w.W, format, args...)
}

func (w Warner) paint(s Style, text string) string {
	if !w.Styled {
		return text
	}
	return s.Paint(text)
}

// PrintCacheResult renders the first of paths and warns about the others,
// which are the same page found for other platforms.
func PrintCacheResult(paths []string, w io.Writer, warn Warner, theme Theme, opts ...RenderOption) error {
	if len(paths) == 0 {
		return ErrNoPages
	}
	if others := paths[1:]; len(others) > 0 {
		warn.Warnf("%d page(s) found for other platforms:", len(others))
		for i, path := range others {
			platform := PagePlatform(path)
			warn.Printf("%s '%s' (tldr --platform %s %s)\n",
				warn.paint(style(palette.Bold, palette.Green), fmt.Sprintf("%d.", i+1)),
				platform, platform, PageName(path))
		}
	}
	return RenderPage(paths[0], w, theme, opts...)
}

// PagePlatform returns the platform directory of a page path, or "" when the
// path has no parent directory.
func PagePlatform(path string) string {
	if path == "" {
		return ""
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == string(filepath.Separator) {
		return ""
	}
	return filepath.Base(dir)
}

// PageName returns the page name of a page path.
func PageName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".md")
}
