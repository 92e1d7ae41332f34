package coerce

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	stringerType        = reflect.TypeFor[fmt.Stringer]()

	errOverflow = errors.New("overflow")
)

// Construct builds a value of type t directly from v, the way a type's
// constructor would.
//
// Text only becomes a byte slice through an explicit conversion; integers
// never become strings through rune conversion but through decimal
// formatting. Types whose pointer implements encoding.TextUnmarshaler are
// constructed from text only.
func Construct(v any, t reflect.Type) (any, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map:
			return reflect.Zero(t).Interface(), nil
		}
		return nil, fmt.Errorf("%w of %s from nil", errNoConstruct, t)
	}
	if rv.Type() == t {
		return v, nil
	}
	if t.Kind() == reflect.Interface {
		if rv.Type().Implements(t) {
			return v, nil
		}
		return nil, fmt.Errorf("%w: %s does not implement %s", errNoConstruct, rv.Type(), t)
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return fromText(rv, t)
	}
	var (
		res reflect.Value
		err error
	)
	switch {
	case t.Kind() == reflect.String:
		res, err = toString(rv, t)
	case isInt(t.Kind()):
		res, err = toInt(rv, t)
	case isUint(t.Kind()):
		res, err = toUint(rv, t)
	case isFloat(t.Kind()):
		res, err = toFloat(rv, t)
	case t.Kind() == reflect.Bool:
		res, err = toBool(rv, t)
	default:
		res, err = convert(rv, t)
	}
	if err != nil {
		return nil, err
	}
	return res.Interface(), nil
}

func fromText(rv reflect.Value, t reflect.Type) (any, error) {
	text, ok := asText(rv)
	if !ok {
		return nil, fmt.Errorf("%w of %s from %s (want text)", errNoConstruct, t, rv.Type())
	}
	p := reflect.New(t)
	if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText(text); err != nil {
		return nil, err
	}
	return p.Elem().Interface(), nil
}

func toString(rv reflect.Value, t reflect.Type) (reflect.Value, error) {
	res := reflect.New(t).Elem()
	switch {
	case rv.Kind() == reflect.String:
		res.SetString(rv.String())
		return res, nil
	case isByteSlice(rv.Type()):
		res.SetString(string(rv.Bytes()))
		return res, nil
	case rv.Type().Implements(textMarshalerType):
		d, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return res, err
		}
		res.SetString(string(d))
		return res, nil
	case rv.Type().Implements(stringerType):
		res.SetString(rv.Interface().(fmt.Stringer).String())
		return res, nil
	}
	switch k := rv.Kind(); {
	case isInt(k):
		res.SetString(strconv.FormatInt(rv.Int(), 10))
	case isUint(k):
		res.SetString(strconv.FormatUint(rv.Uint(), 10))
	case isFloat(k):
		res.SetString(strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits()))
	case k == reflect.Bool:
		res.SetString(strconv.FormatBool(rv.Bool()))
	default:
		return res, fmt.Errorf("%w of %s from %s", errNoConstruct, t, rv.Type())
	}
	return res, nil
}

func toInt(rv reflect.Value, t reflect.Type) (reflect.Value, error) {
	res := reflect.New(t).Elem()
	var i int64
	switch k := rv.Kind(); {
	case isInt(k):
		i = rv.Int()
	case isUint(k):
		u := rv.Uint()
		if u > math.MaxInt64 {
			return res, fmt.Errorf("%w: %d as %s", errOverflow, u, t)
		}
		i = int64(u)
	case isFloat(k):
		f, err := truncFloat(rv.Float())
		if err != nil {
			return res, err
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return res, fmt.Errorf("%w: %g as %s", errOverflow, f, t)
		}
		i = int64(f)
	case k == reflect.Bool:
		if rv.Bool() {
			i = 1
		}
	default:
		text, ok := asText(rv)
		if !ok {
			return res, fmt.Errorf("%w of %s from %s", errNoConstruct, t, rv.Type())
		}
		var err error
		i, err = strconv.ParseInt(strings.TrimSpace(string(text)), 10, t.Bits())
		if err != nil {
			return res, err
		}
	}
	if res.OverflowInt(i) {
		return res, fmt.Errorf("%w: %d as %s", errOverflow, i, t)
	}
	res.SetInt(i)
	return res, nil
}

func toUint(rv reflect.Value, t reflect.Type) (reflect.Value, error) {
	res := reflect.New(t).Elem()
	var u uint64
	switch k := rv.Kind(); {
	case isInt(k):
		i := rv.Int()
		if i < 0 {
			return res, fmt.Errorf("%w: %d as %s", errOverflow, i, t)
		}
		u = uint64(i)
	case isUint(k):
		u = rv.Uint()
	case isFloat(k):
		f, err := truncFloat(rv.Float())
		if err != nil {
			return res, err
		}
		if f < 0 || f >= math.MaxUint64 {
			return res, fmt.Errorf("%w: %g as %s", errOverflow, f, t)
		}
		u = uint64(f)
	case k == reflect.Bool:
		if rv.Bool() {
			u = 1
		}
	default:
		text, ok := asText(rv)
		if !ok {
			return res, fmt.Errorf("%w of %s from %s", errNoConstruct, t, rv.Type())
		}
		var err error
		u, err = strconv.ParseUint(strings.TrimSpace(string(text)), 10, t.Bits())
		if err != nil {
			return res, err
		}
	}
	if res.OverflowUint(u) {
		return res, fmt.Errorf("%w: %d as %s", errOverflow, u, t)
	}
	res.SetUint(u)
	return res, nil
}

func toFloat(rv reflect.Value, t reflect.Type) (reflect.Value, error) {
	res := reflect.New(t).Elem()
	var f float64
	switch k := rv.Kind(); {
	case isInt(k):
		f = float64(rv.Int())
	case isUint(k):
		f = float64(rv.Uint())
	case isFloat(k):
		f = rv.Float()
	case k == reflect.Bool:
		if rv.Bool() {
			f = 1
		}
	default:
		text, ok := asText(rv)
		if !ok {
			return res, fmt.Errorf("%w of %s from %s", errNoConstruct, t, rv.Type())
		}
		var err error
		f, err = strconv.ParseFloat(strings.TrimSpace(string(text)), t.Bits())
		if err != nil {
			return res, err
		}
	}
	if res.OverflowFloat(f) {
		return res, fmt.Errorf("%w: %g as %s", errOverflow, f, t)
	}
	res.SetFloat(f)
	return res, nil
}

func toBool(rv reflect.Value, t reflect.Type) (reflect.Value, error) {
	res := reflect.New(t).Elem()
	switch k := rv.Kind(); {
	case k == reflect.Bool:
		res.SetBool(rv.Bool())
	case isInt(k):
		res.SetBool(rv.Int() != 0)
	case isUint(k):
		res.SetBool(rv.Uint() != 0)
	case isFloat(k):
		res.SetBool(rv.Float() != 0)
	default:
		text, ok := asText(rv)
		if !ok {
			return res, fmt.Errorf("%w of %s from %s", errNoConstruct, t, rv.Type())
		}
		b, err := strconv.ParseBool(strings.TrimSpace(string(text)))
		if err != nil {
			return res, err
		}
		res.SetBool(b)
	}
	return res, nil
}

func convert(rv reflect.Value, t reflect.Type) (reflect.Value, error) {
	src := rv.Type()
	switch {
	case !src.ConvertibleTo(t):
	case rv.Kind() == reflect.String:
		// text must be encoded explicitly
	case rv.Kind() == reflect.Slice && t.Kind() == reflect.Array && rv.Len() != t.Len():
		return rv, fmt.Errorf("%w of %s from %d elements", errNoConstruct, t, rv.Len())
	default:
		return rv.Convert(t), nil
	}
	return rv, fmt.Errorf("%w of %s from %s", errNoConstruct, t, src)
}

func truncFloat(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %g is not finite", errNoConstruct, f)
	}
	return math.Trunc(f), nil
}

func asText(rv reflect.Value) ([]byte, bool) {
	switch {
	case rv.Kind() == reflect.String:
		return []byte(rv.String()), true
	case isByteSlice(rv.Type()):
		return rv.Bytes(), true
	}
	return nil, false
}

func isByteSlice(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
