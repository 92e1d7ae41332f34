package coerce

import "reflect"

// Truth reports whether v is truthy: nil, false, zero numbers and empty
// strings, slices, arrays and maps are not.
func Truth(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return false
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() != 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	case reflect.Struct:
		return true
	default:
		return !rv.IsZero()
	}
}
