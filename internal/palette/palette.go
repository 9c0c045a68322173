// Package palette holds the ANSI SGR building blocks used by page themes.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Dim           = "\x1b[2m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Strikethrough = "\x1b[9m"
)

const (
	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"
)

var namedColors = map[string]int{
	"black":          0,
	"red":            1,
	"green":          2,
	"yellow":         3,
	"blue":           4,
	"magenta":        5,
	"cyan":           6,
	"white":          7,
	"bright_black":   8,
	"bright_red":     9,
	"bright_green":   10,
	"bright_yellow":  11,
	"bright_blue":    12,
	"bright_magenta": 13,
	"bright_cyan":    14,
	"bright_white":   15,
}

// Attributes are the text attributes a style can switch on.
type Attributes struct {
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// Prefix returns the SGR sequences for the enabled attributes.
func (a Attributes) Prefix() string {
	var b strings.Builder
	if a.Bold {
		b.WriteString(Bold)
	}
	if a.Dim {
		b.WriteString(Dim)
	}
	if a.Italic {
		b.WriteString(Italic)
	}
	if a.Underline {
		b.WriteString(Underline)
	}
	if a.Strikethrough {
		b.WriteString(Strikethrough)
	}
	return b.String()
}

// Foreground returns the SGR sequence selecting value as foreground color.
// value is a color name, a 0-255 palette index or a #rrggbb hex triplet. An
// empty value or "default" yields no sequence.
func Foreground(value string) (string, error) {
	return color(value, false)
}

// Background is Foreground for the background color.
func Background(value string) (string, error) {
	return color(value, true)
}

// ValidColor reports whether value is an accepted color specification.
func ValidColor(value string) bool {
	_, err := color(value, false)
	return err == nil
}

func color(value string, background bool) (string, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	s = strings.ReplaceAll(s, "-", "_")
	if s == "" || s == "default" {
		return "", nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return "", fmt.Errorf("invalid hex color %q", value)
		}
		r, g, b := c.RGB255()
		if background {
			return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b), nil
		}
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b), nil
	}
	idx, ok := namedColors[s]
	if !ok {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > 255 {
			return "", fmt.Errorf("unknown color %q", value)
		}
		idx = n
	}
	return indexed(idx, background), nil
}

func indexed(idx int, background bool) string {
	base := 30
	if background {
		base = 40
	}
	switch {
	case idx < 8:
		return "\x1b[" + strconv.Itoa(base+idx) + "m"
	case idx < 16:
		return "\x1b[" + strconv.Itoa(base+60+idx-8) + "m"
	case background:
		return "\x1b[48;5;" + strconv.Itoa(idx) + "m"
	default:
		return "\x1b[38;5;" + strconv.Itoa(idx) + "m"
	}
}
