package typed

import (
	"fmt"
	"iter"
	"slices"

	"github.com/beckdong/BitTornado/coerce"
	"github.com/beckdong/BitTornado/debug"
)

// Policy decides what happens to an element its list does not accept.
type Policy int

const (
	// Strict lists return a *RejectionError.
	Strict Policy = iota
	// Lenient lists drop the element without error.
	Lenient
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ListKind configures a family of lists. A kind is built once and shared
// by every list created from it.
type ListKind[T any] struct {
	Name string
	// Shape defaults to the shape of T.
	Shape  *coerce.Shape
	Conv   coerce.Table
	Accept func(T) bool
	Policy Policy
}

// List is an ordered sequence whose elements were all coerced to the kind's
// shape and accepted by its predicate when they were stored.
type List[T any] struct {
	kind  *ListKind[T]
	shape *coerce.Shape
	items []T
}

// NewList returns a list of the given kind holding items.
func NewList[T any](kind *ListKind[T], items ...any) (*List[T], error) {
	l := &List[T]{kind: kind, shape: shapeOr[T](kind.Shape)}
	if err := l.Extend(items...); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List[T]) Kind() *ListKind[T] {
	return l.kind
}

// admit runs v through coercion and acceptance. ok is false when v must
// not be stored; err is nil in that case for lenient lists.
func (l *List[T]) admit(v any) (x T, ok bool, err error) {
	x, err = coerceTo[T](v, l.shape, l.kind.Conv, l.kind.Name, RoleElement)
	if err != nil {
		return x, false, err
	}
	if l.kind.Accept == nil || l.kind.Accept(x) {
		return x, true, nil
	}
	if l.kind.Policy == Strict {
		return x, false, &RejectionError{Kind: l.kind.Name, Value: x}
	}
	if debug.Reject() {
		debug.Logf("%s: dropped %#v\n", l.kind.Name, x)
	}
	return x, false, nil
}

func (l *List[T]) Append(v any) error {
	x, ok, err := l.admit(v)
	if !ok {
		return err
	}
	l.items = append(l.items, x)
	return nil
}

// Set replaces the element at i.
func (l *List[T]) Set(i int, v any) error {
	if i < 0 || i >= len(l.items) {
		return &IndexError{Index: i, Len: len(l.items)}
	}
	x, ok, err := l.admit(v)
	if !ok {
		return err
	}
	l.items[i] = x
	return nil
}

// Extend appends each value in turn. It stops at the first error, leaving
// the values before it in place.
func (l *List[T]) Extend(vals ...any) error {
	for _, v := range vals {
		if err := l.Append(v); err != nil {
			return err
		}
	}
	return nil
}

func (l *List[T]) At(i int) T {
	return l.items[i]
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

// Slice returns a copy of the elements.
func (l *List[T]) Slice() []T {
	return slices.Clone(l.items)
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.items)
}
