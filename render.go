package tldr

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 4096)
	},
}

var writerPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(nil, 4096)
	},
}

var (
	padEscapedBraces   = strings.NewReplacer(`\{\{`, ` \{\{ `, `\}\}`, ` \}\} `)
	unpadEscapedBraces = strings.NewReplacer(` \{\{ `, `\{\{`, ` \}\} `, `\}\}`)
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	// Path names the page in errors. Its parent directory is the page platform.
	Path    string
	Theme   Theme
	Options []RenderOption
}

// RenderPage opens the page at path and renders it to w.
func RenderPage(path string, w io.Writer, theme Theme, opts ...RenderOption) error {
	f, err := os.Open(path)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()
	return Render(RenderRequest{
		Reader:  f,
		Writer:  w,
		Path:    path,
		Theme:   theme,
		Options: opts,
	})
}

// Render renders a page from a reader. Output is flushed to the writer only
// when the whole page rendered successfully.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := newRenderConfig(req.Options)
	if cfg.raw {
		if _, err := io.Copy(req.Writer, req.Reader); err != nil {
			return &IOError{Op: "copy", Path: req.Path, Err: err}
		}
		return nil
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}

	reader := readerPool.Get().(*bufio.Reader)
	writer := writerPool.Get().(*bufio.Writer)
	reader.Reset(req.Reader)
	writer.Reset(req.Writer)
	p := pageRenderer{
		path:     req.Path,
		platform: PagePlatform(req.Path),
		r:        reader,
		w:        writer,
		styles:   theme.Styles(),
		cfg:      cfg,
	}
	err := p.render()
	reader.Reset(nil)
	writer.Reset(nil)
	readerPool.Put(reader)
	writerPool.Put(writer)
	return err
}

type pageRenderer struct {
	path     string
	platform string
	r        *bufio.Reader
	w        *bufio.Writer
	// line is the current line without its terminator.
	line   string
	lnum   int
	styles Styles
	cfg    renderConfig
	valid  validator
}

func (p *pageRenderer) render() error {
	for {
		ok, err := p.nextLine()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := p.valid.addLine(p.line); err != nil {
			hint := "page is not valid UTF-8"
			if err == ErrBinaryInput {
				hint = "page looks like binary data"
			}
			return p.parseError(hint, err)
		}
		c := classify(p.line)
		switch c.role {
		case RoleTitle:
			err = p.addTitle(c.body)
		case RoleDescription:
			err = p.addDesc(c.body)
		case RoleBullet:
			err = p.addBullet(c.body)
		case RoleExample:
			err = p.addExample(c.body)
		case RoleBlank:
			err = p.addNewline()
		default:
			err = p.parseError(hintGrammar, nil)
		}
		if err != nil {
			return err
		}
	}
	if err := p.addNewline(); err != nil {
		return err
	}
	if err := p.w.Flush(); err != nil {
		return p.writeError(err)
	}
	return nil
}

func (p *pageRenderer) nextLine() (bool, error) {
	line, err := p.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, &IOError{Op: "read", Path: p.path, Err: err}
	}
	if line == "" {
		return false, nil
	}
	p.lnum++
	line = strings.TrimSuffix(line, "\n")
	p.line = strings.TrimSuffix(line, "\r")
	return true, nil
}

func (p *pageRenderer) addTitle(body string) error {
	if !p.cfg.showTitle {
		return nil
	}
	if err := p.addNewline(); err != nil {
		return err
	}
	if p.cfg.platformTitle && p.platform != "" {
		body = p.platform + "/" + body
	}
	return p.writeLine(p.cfg.indent.Title, p.styles.Title.Paint(body), true)
}

func (p *pageRenderer) addDesc(body string) error {
	return p.writeLine(p.cfg.indent.Description, p.highlightProse(body, p.styles.Description), true)
}

func (p *pageRenderer) addBullet(body string) error {
	if p.cfg.showHyphens {
		body = p.cfg.examplePrefix + body
	}
	return p.writeLine(p.cfg.indent.Bullet, p.highlightProse(body, p.styles.Bullet), true)
}

func (p *pageRenderer) addExample(body string) error {
	inner, ok := strings.CutSuffix(strings.TrimRightFunc(body, unicode.IsSpace), "`")
	if !ok {
		return p.parseError(hintExample, nil)
	}
	// Escaped braces are padded so they cannot join a neighbouring
	// placeholder token, as in "\{\{{{ }}\}\}".
	inner = padEscapedBraces.Replace(inner)
	out := Highlight(Placeholder, inner, p.styles.Example, p.styles.Placeholder)
	return p.writeLine(p.cfg.indent.Example, unpadEscapedBraces.Replace(out), false)
}

// addNewline writes a blank line unless compact mode is on.
func (p *pageRenderer) addNewline() error {
	if p.cfg.compact {
		return nil
	}
	if err := p.w.WriteByte('\n'); err != nil {
		return p.writeError(err)
	}
	return nil
}

// highlightProse styles URLs first and inline code second, so code spans are
// found in text whose URLs are already styled.
func (p *pageRenderer) highlightProse(text string, normal Style) string {
	withURLs := paintSegments(Split(URLBracket, text), normal, p.styles.URL, p.cfg.osc8)
	return Highlight(InlineCode, withURLs, normal, p.styles.InlineCode)
}

// writeLine indents text and terminates it. Lines carrying OSC 8 links are
// never wrapped: wordwrap counts the link target as visible text.
func (p *pageRenderer) writeLine(width int, text string, wrap bool) error {
	switch {
	case wrap && p.cfg.width > 0 && !p.cfg.osc8:
		text = wordwrap.String(text, max(p.cfg.width-width, 1))
		if width > 0 {
			text = indent.String(text, uint(width))
		}
	case width > 0:
		text = strings.Repeat(" ", width) + text
	}
	if _, err := p.w.WriteString(text); err != nil {
		return p.writeError(err)
	}
	if err := p.w.WriteByte('\n'); err != nil {
		return p.writeError(err)
	}
	return nil
}

func (p *pageRenderer) parseError(hint string, err error) error {
	return &ParseError{Path: p.path, Line: p.lnum, Text: p.line, Hint: hint, Err: err}
}

func (p *pageRenderer) writeError(err error) error {
	return &IOError{Op: "write", Path: p.path, Err: err}
}
