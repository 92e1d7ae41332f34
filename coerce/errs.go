package coerce

import (
	"errors"
	"fmt"
)

var (
	ErrShape = errors.New("shape error")

	errNotIterable = errors.New("tuple shape requires a slice, array or string")
	errNoConstruct = errors.New("no construction")
)

// ShapeError reports a value that could not be brought into a shape.
type ShapeError struct {
	Value any
	Shape *Shape
	Err   error
}

func (e *ShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot shape %T as %s: %v", e.Value, e.Shape, e.Err)
	}
	return fmt.Sprintf("cannot shape %T as %s", e.Value, e.Shape)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}
