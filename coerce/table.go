package coerce

import (
	"maps"
	"reflect"
)

// Func converts a value of one source type towards a target shape.
type Func func(any) (any, error)

// Table maps source types to conversion functions.
type Table map[reflect.Type]Func

// Add registers f for values of type S in tbl, allocating tbl if it is nil,
// and returns tbl.
func Add[S, T any](tbl Table, f func(S) (T, error)) Table {
	if tbl == nil {
		tbl = Table{}
	}
	tbl[reflect.TypeFor[S]()] = func(v any) (any, error) {
		return f(v.(S))
	}
	return tbl
}

// Lookup returns the entry for the dynamic type of v.
func (t Table) Lookup(v any) (Func, bool) {
	if t == nil {
		return nil, false
	}
	f, ok := t[reflect.TypeOf(v)]
	return f, ok
}

// Merge returns a new table holding the entries of all tables, later tables
// taking precedence.
func Merge(tables ...Table) Table {
	res := Table{}
	for _, t := range tables {
		maps.Copy(res, t)
	}
	return res
}
