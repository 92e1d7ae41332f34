package typed

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/beckdong/BitTornado/coerce"
)

var errNotAssignable = errors.New("result not assignable")

// coerceTo normalizes v into s and checks the result is a T.
func coerceTo[T any](v any, s *coerce.Shape, tbl coerce.Table, kind string, role Role) (T, error) {
	var zero T
	x, err := coerce.Normalize(v, s, tbl)
	if err != nil {
		return zero, &CoercionError{Kind: kind, Role: role, Shape: s.String(), Value: v, Err: err}
	}
	res, ok := x.(T)
	if ok {
		return res, nil
	}
	if x == nil && nilable(reflect.TypeFor[T]()) {
		return zero, nil
	}
	return zero, &CoercionError{
		Kind:  kind,
		Role:  role,
		Shape: s.String(),
		Value: v,
		Err:   fmt.Errorf("%w: %T is not %s", errNotAssignable, x, reflect.TypeFor[T]()),
	}
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func shapeOr[T any](s *coerce.Shape) *coerce.Shape {
	if s != nil {
		return s
	}
	return coerce.Of[T]()
}
