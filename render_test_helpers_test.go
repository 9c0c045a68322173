package tldr

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
var osc8Regexp = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")

func stripANSI(s string) string {
	s = ansiRegexp.ReplaceAllString(s, "")
	s = osc8Regexp.ReplaceAllString(s, "")
	return s
}

func renderPage(t *testing.T, src string, opts ...RenderOption) string {
	t.Helper()
	return renderPageWithTheme(t, src, DefaultTheme(), opts...)
}

func renderPageWithTheme(t *testing.T, src string, theme Theme, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Path:    "pages/common/tar.md",
		Theme:   theme,
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

const tarPage = "# tar\n" +
	"\n" +
	"> Archiving utility.\n" +
	"> More information: <https://www.gnu.org/software/tar>.\n" +
	"\n" +
	"- Create an archive from files:\n" +
	"\n" +
	"`tar cf {{target.tar}} {{file1 file2 ...}}`\n" +
	"\n" +
	"- Extract an archive in `verbose` mode:\n" +
	"\n" +
	"`tar xvf {{source.tar}}`\n"
