package coerce

import (
	"reflect"

	"github.com/beckdong/BitTornado/debug"
)

// Normalize coerces v into shape s, consulting tbl for conversions keyed by
// the dynamic type of v.
func Normalize(v any, s *Shape, tbl Table) (any, error) {
	if s.Matches(v) {
		return v, nil
	}
	if s.IsTuple() {
		if items, ok := iterable(v); ok {
			return normalizeTuple(items, s, tbl)
		}
	}
	if f, ok := tbl.Lookup(v); ok {
		res, err := f(v)
		if err != nil {
			return nil, &ShapeError{Value: v, Shape: s, Err: err}
		}
		if debug.Coerce() {
			debug.Logf("coerce: table %T -> %T for %s\n", v, res, s)
		}
		return res, nil
	}
	if s.IsTuple() {
		return nil, &ShapeError{Value: v, Shape: s, Err: errNotIterable}
	}
	res, err := Construct(v, s.typ)
	if err != nil {
		return nil, &ShapeError{Value: v, Shape: s, Err: err}
	}
	if debug.Coerce() {
		debug.Logf("coerce: construct %T -> %s\n", v, s)
	}
	return res, nil
}

// normalizeTuple pairs items with the tuple positions. Extra items or extra
// positions are dropped, so a short value yields a short result.
func normalizeTuple(items []any, s *Shape, tbl Table) (any, error) {
	n := min(len(items), len(s.tuple))
	res := make([]any, n)
	for i := range n {
		x, err := Normalize(items[i], s.tuple[i], tbl)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

// iterable lists the items of a slice, an array or a string. A string
// yields one single-rune string per rune.
func iterable(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	case reflect.String:
		var res []any
		for _, r := range rv.String() {
			res = append(res, string(r))
		}
		return res, true
	default:
		return nil, false
	}
	res := make([]any, rv.Len())
	for i := range res {
		res[i] = rv.Index(i).Interface()
	}
	return res, true
}
