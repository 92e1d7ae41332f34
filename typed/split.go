package typed

import (
	"reflect"
	"strings"

	"github.com/beckdong/BitTornado/coerce"
)

// DefaultSep separates SplitList tokens unless another separator is given.
const DefaultSep = " "

// splitKind keeps non-empty strings and drops everything else quietly.
var splitKind = &ListKind[string]{
	Name:   "split",
	Accept: func(s string) bool { return coerce.Truth(s) },
	Policy: Lenient,
}

// SplitList is a list of non-empty strings that can be filled from a single
// delimited string.
type SplitList struct {
	*List[string]
	sep string
}

// NewSplitList returns a SplitList separated by sep (DefaultSep if empty)
// and extended with vals.
func NewSplitList(sep string, vals any) (*SplitList, error) {
	if sep == "" {
		sep = DefaultSep
	}
	l, _ := NewList(splitKind)
	s := &SplitList{List: l, sep: sep}
	if vals == nil {
		return s, nil
	}
	if err := s.Extend(vals); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SplitList) Sep() string {
	return s.sep
}

// Extend splits a string on the separator and appends the tokens. Slices
// and arrays are appended item by item, anything else as a single item.
// Empty tokens are dropped.
func (s *SplitList) Extend(vals any) error {
	switch x := vals.(type) {
	case string:
		return s.extendStrings(strings.Split(x, s.sep))
	case []string:
		return s.extendStrings(x)
	case []any:
		return s.List.Extend(x...)
	}
	rv := reflect.ValueOf(vals)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if err := s.Append(rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}
	return s.Append(vals)
}

func (s *SplitList) extendStrings(toks []string) error {
	for _, tok := range toks {
		if err := s.Append(tok); err != nil {
			return err
		}
	}
	return nil
}

// String joins the tokens with the separator.
func (s *SplitList) String() string {
	return strings.Join(s.items, s.sep)
}
