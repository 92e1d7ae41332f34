package conv

import (
	"fmt"
	"reflect"

	"github.com/beckdong/BitTornado/coerce"
	"github.com/beckdong/BitTornado/debug"
)

// Func is a named conversion, suitable as a coerce.Table entry.
type Func interface {
	String() string
	Apply(v any) (any, error)
}

type name string

func (s name) String() string {
	return string(s)
}

// Table returns a conversion table applying the named function to values
// whose dynamic type is from.
func Table(from reflect.Type, fn string) (coerce.Table, error) {
	f := Lookup(fn)
	if f == nil {
		return nil, fmt.Errorf("no conversion named %q", fn)
	}
	apply := f.Apply
	if debug.Coerce() {
		apply = func(v any) (any, error) {
			res, err := f.Apply(v)
			debug.Logf("%s(%#v) = %#v, %v\n", f, v, res, err)
			return res, err
		}
	}
	return coerce.Table{from: apply}, nil
}

func text(s Func, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return "", fmt.Errorf("%s only applies to text, got %T", s, v)
}
