package tldr

import "unicode/utf8"

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// validator checks a page line by line, keeping the control character ratio
// across the whole page.
type validator struct {
	total   int
	control int
}

func (v *validator) addLine(line string) error {
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		if err := v.addRune(r, size); err != nil {
			return err
		}
		i += size
	}
	return nil
}

func (v *validator) addRune(r rune, size int) error {
	if r == utf8.RuneError && size == 1 {
		return ErrInvalidUTF8
	}
	if r == 0 {
		return ErrBinaryInput
	}
	v.total += size
	if isControlRune(r) {
		v.control++
		if v.total >= minBinarySample && v.control*100 >= v.total*maxControlPct {
			return ErrBinaryInput
		}
	}
	return nil
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F
}
