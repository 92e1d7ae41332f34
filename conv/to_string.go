package conv

import (
	"reflect"

	"github.com/beckdong/BitTornado/coerce"
)

var toStringSym = &toStringFunc{name: toStringName}

func ToString() Func {
	return toStringSym
}

const (
	toStringName name = "tostring"
)

var stringType = reflect.TypeFor[string]()

type toStringFunc struct {
	name
}

func (s toStringFunc) Apply(v any) (any, error) {
	return coerce.Construct(v, stringType)
}
