package conv

import (
	"bytes"
	"strings"
)

var (
	trimSym  = &textFunc{name: trimName, s: strings.TrimSpace, b: bytes.TrimSpace}
	lowerSym = &textFunc{name: lowerName, s: strings.ToLower, b: bytes.ToLower}
)

const (
	trimName  name = "trim"
	lowerName name = "lower"
)

func Trim() Func {
	return trimSym
}

func Lower() Func {
	return lowerSym
}

// textFunc maps text to text, keeping byte slices as byte slices.
type textFunc struct {
	name
	s func(string) string
	b func([]byte) []byte
}

func (f *textFunc) Apply(v any) (any, error) {
	if b, ok := v.([]byte); ok {
		return f.b(b), nil
	}
	t, err := text(f, v)
	if err != nil {
		return nil, err
	}
	return f.s(t), nil
}
