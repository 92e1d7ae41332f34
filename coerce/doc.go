// Package coerce converts loosely typed values into declared shapes.
//
// # Shapes
//
// A Shape is either a single Go type or a fixed-length tuple of shapes:
//
//	coerce.Of[int]()
//	coerce.Tuple(coerce.Of[string](), coerce.Of[uint16]())
//
// A nil *Shape places no constraint on a value.
//
// # Normalize
//
// Normalize applies the following steps, stopping at the first that
// applies:
//
//  1. the shape is nil, or the value's dynamic type is already the shape's
//     type: the value is returned as is.
//  2. the shape is a tuple and the value is a slice, an array or a string
//     (read rune by rune): elements are normalized position by position
//     into a []any. When the lengths differ the result has the shorter
//     length.
//  3. the conversion Table has an entry for the value's dynamic type: the
//     entry's result is returned.
//  4. the shape's type is constructed directly from the value, see
//     Construct.
//
// Failures are reported as *ShapeError, which matches ErrShape.
package coerce
