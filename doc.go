// Package tldr renders tldr-style command pages to ANSI for terminal display.
//
// A page is a line-oriented, markdown-like document. Every non-blank line
// starts with one of four role prefixes:
//
//	# title
//	> description, may contain <https://urls> and `inline code`
//	- bullet, describing the example that follows
//	`example {{placeholder}}`
//
// The renderer classifies each line, strips the role prefix and highlights
// the spans embedded in it before writing the styled line. Rendering is a
// single forward pass; the first line violating the grammar aborts it with a
// *ParseError.
//
// Example:
//
//	err := tldr.RenderPage("pages/common/tar.md", os.Stdout, tldr.DefaultTheme(),
//		tldr.WithCompact(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
package tldr
