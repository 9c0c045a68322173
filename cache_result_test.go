package tldr

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePage(t *testing.T, root, platform, name, body string) string {
	t.Helper()
	dir := filepath.Join(root, "pages", platform)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, name+".md")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}
	return path
}

func TestPrintCacheResultWarnsAboutOtherPlatforms(t *testing.T) {
	root := t.TempDir()
	linux := writePage(t, root, "linux", "tar", "# tar\n> linux tar\n")
	osx := writePage(t, root, "osx", "tar", "# tar\n> osx tar\n")
	windows := writePage(t, root, "windows", "tar", "# tar\n> windows tar\n")

	var out, warnings bytes.Buffer
	err := PrintCacheResult([]string{linux, osx, windows}, &out, Warner{W: &warnings}, BoringTheme(), WithCompact(true))
	if err != nil {
		t.Fatalf("PrintCacheResult: %v", err)
	}
	if out.String() != "  tar\n  linux tar\n" {
		t.Fatalf("expected first page to be rendered, got %q", out.String())
	}
	want := "warning: 2 page(s) found for other platforms:\n" +
		"1. 'osx' (tldr --platform osx tar)\n" +
		"2. 'windows' (tldr --platform windows tar)\n"
	if warnings.String() != want {
		t.Fatalf("warnings=%q want %q", warnings.String(), want)
	}
}

func TestPrintCacheResultQuiet(t *testing.T) {
	root := t.TempDir()
	linux := writePage(t, root, "linux", "tar", "# tar\n")
	osx := writePage(t, root, "osx", "tar", "# tar\n")
	var out, warnings bytes.Buffer
	err := PrintCacheResult([]string{linux, osx}, &out, Warner{W: &warnings, Quiet: true}, BoringTheme())
	if err != nil {
		t.Fatalf("PrintCacheResult: %v", err)
	}
	if warnings.Len() != 0 {
		t.Fatalf("quiet warner printed %q", warnings.String())
	}
}

func TestPrintCacheResultStyledWarning(t *testing.T) {
	var warnings bytes.Buffer
	Warner{W: &warnings, Styled: true}.Warnf("careful")
	if !strings.Contains(warnings.String(), "\x1b[") || !strings.Contains(stripANSI(warnings.String()), "warning: careful") {
		t.Fatalf("unexpected styled warning %q", warnings.String())
	}
}

func TestPrintCacheResultEmpty(t *testing.T) {
	err := PrintCacheResult(nil, &bytes.Buffer{}, Warner{}, BoringTheme())
	if !errors.Is(err, ErrNoPages) {
		t.Fatalf("expected ErrNoPages, got %v", err)
	}
}

func TestPagePathHelpers(t *testing.T) {
	path := filepath.Join("cache", "pages", "linux", "git-checkout.md")
	if got := PagePlatform(path); got != "linux" {
		t.Fatalf("PagePlatform=%q", got)
	}
	if got := PageName(path); got != "git-checkout" {
		t.Fatalf("PageName=%q", got)
	}
	if got := PagePlatform("tar.md"); got != "" {
		t.Fatalf("expected no platform, got %q", got)
	}
	if got := PagePlatform(""); got != "" {
		t.Fatalf("expected no platform for empty path, got %q", got)
	}
}

func TestDetectOSC8(t *testing.T) {
	env := func(vals map[string]string) func(string) string {
		return func(key string) string { return vals[key] }
	}
	if !detectOSC8(env(map[string]string{"TERM_PROGRAM": "WezTerm"})) {
		t.Fatalf("expected WezTerm to support OSC8")
	}
	if detectOSC8(env(map[string]string{"TERM_PROGRAM": "WezTerm", "OSC8": "0"})) {
		t.Fatalf("OSC8=0 should disable detection")
	}
	if !detectOSC8(env(map[string]string{"VTE_VERSION": "6003"})) {
		t.Fatalf("expected recent VTE to support OSC8")
	}
	if detectOSC8(env(map[string]string{"TERM": "xterm"})) {
		t.Fatalf("plain xterm should not be detected")
	}
}
