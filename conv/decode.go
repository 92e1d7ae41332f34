package conv

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

var (
	b64DecSym = &b64DecFunc{name: b64DecName}
	hexDecSym = &hexDecFunc{name: hexDecName}
	bytesSym  = &bytesFunc{name: bytesName}
)

const (
	b64DecName name = "b64dec"
	hexDecName name = "hexdec"
	bytesName  name = "bytes"
)

func B64Dec() Func {
	return b64DecSym
}

type b64DecFunc struct {
	name
}

// Apply decodes standard base64 text, padded or not.
func (s b64DecFunc) Apply(v any) (any, error) {
	t, err := text(s, v)
	if err != nil {
		return nil, err
	}
	t = strings.TrimSpace(t)
	enc := base64.StdEncoding
	if len(t)%4 != 0 {
		enc = base64.RawStdEncoding
	}
	d, err := enc.DecodeString(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s, err)
	}
	return d, nil
}

// HexDec decodes hex text, such as the 40 character form of an info hash.
func HexDec() Func {
	return hexDecSym
}

type hexDecFunc struct {
	name
}

func (s hexDecFunc) Apply(v any) (any, error) {
	t, err := text(s, v)
	if err != nil {
		return nil, err
	}
	d, err := hex.DecodeString(strings.TrimSpace(t))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s, err)
	}
	return d, nil
}

// Bytes encodes text as its bytes.
func Bytes() Func {
	return bytesSym
}

type bytesFunc struct {
	name
}

func (s bytesFunc) Apply(v any) (any, error) {
	t, err := text(s, v)
	if err != nil {
		return nil, err
	}
	return []byte(t), nil
}
