package coerce

import (
	"reflect"
	"strings"
)

// Shape is a target type, or a tuple of target shapes.
type Shape struct {
	typ   reflect.Type
	tuple []*Shape
}

// Of returns the shape of T.
func Of[T any]() *Shape {
	return &Shape{typ: reflect.TypeFor[T]()}
}

// TypeShape returns the shape of t, or nil if t is nil.
func TypeShape(t reflect.Type) *Shape {
	if t == nil {
		return nil
	}
	return &Shape{typ: t}
}

// Tuple returns a fixed-length shape whose positions are the given shapes.
// A nil position accepts anything.
func Tuple(shapes ...*Shape) *Shape {
	return &Shape{tuple: shapes}
}

// Type is the target type, nil for tuples.
func (s *Shape) Type() reflect.Type {
	if s == nil {
		return nil
	}
	return s.typ
}

func (s *Shape) IsTuple() bool {
	return s != nil && s.typ == nil
}

// Len is the number of tuple positions, 0 for non tuples.
func (s *Shape) Len() int {
	if !s.IsTuple() {
		return 0
	}
	return len(s.tuple)
}

// At returns the shape of tuple position i.
func (s *Shape) At(i int) *Shape {
	return s.tuple[i]
}

// Matches reports whether v is returned unchanged by Normalize(v, s, tbl)
// for any table.
func (s *Shape) Matches(v any) bool {
	if s == nil {
		return true
	}
	if s.IsTuple() {
		return false
	}
	return reflect.TypeOf(v) == s.typ
}

func (s *Shape) String() string {
	if s == nil {
		return "<any>"
	}
	if !s.IsTuple() {
		return s.typ.String()
	}
	parts := make([]string, len(s.tuple))
	for i, sub := range s.tuple {
		parts[i] = sub.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
