package schema

import (
	"fmt"
	"strings"

	"github.com/beckdong/BitTornado/coerce"
)

// ResolveType turns a decoded type reference into a shape. A reference is
// a registered name, a list of references for a tuple, or the text form of
// such a list, "[string, [int, int]]". A nil reference is nil, which
// accepts anything.
func ResolveType(ref any) (*coerce.Shape, error) {
	switch x := ref.(type) {
	case nil:
		return nil, nil
	case string:
		x = strings.TrimSpace(x)
		if strings.HasPrefix(x, "[") {
			return parseTuple(x)
		}
		s := LookupType(x)
		if s == nil {
			return nil, fmt.Errorf("unknown type %q", x)
		}
		return s, nil
	case []any:
		shapes := make([]*coerce.Shape, len(x))
		for i, sub := range x {
			s, err := ResolveType(sub)
			if err != nil {
				return nil, fmt.Errorf("tuple position %d: %w", i, err)
			}
			shapes[i] = s
		}
		return coerce.Tuple(shapes...), nil
	}
	return nil, fmt.Errorf("type reference must be a name or a list, got %T", ref)
}

func parseTuple(text string) (*coerce.Shape, error) {
	items, rest, err := splitTuple(text)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) != "" {
		return nil, fmt.Errorf("trailing text %q after tuple type", rest)
	}
	return ResolveType(items)
}

// splitTuple parses a bracketed list at the start of text into nested
// []any of names, returning what follows it.
func splitTuple(text string) ([]any, string, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "[") {
		return nil, text, fmt.Errorf("expected '[' in %q", text)
	}
	text = text[1:]
	var items []any
	for {
		text = strings.TrimSpace(text)
		switch {
		case text == "":
			return nil, "", fmt.Errorf("unterminated tuple type")
		case text[0] == ']':
			return items, text[1:], nil
		case len(items) > 0:
			if text[0] != ',' {
				return nil, "", fmt.Errorf("expected ',' at %q", text)
			}
			text = strings.TrimSpace(text[1:])
		}
		if strings.HasPrefix(text, "[") {
			sub, rest, err := splitTuple(text)
			if err != nil {
				return nil, "", err
			}
			items = append(items, sub)
			text = rest
			continue
		}
		i := strings.IndexAny(text, ",]")
		if i < 0 {
			return nil, "", fmt.Errorf("unterminated tuple type")
		}
		name := strings.TrimSpace(text[:i])
		if name == "" {
			return nil, "", fmt.Errorf("empty type name in tuple")
		}
		items = append(items, name)
		text = text[i:]
	}
}
