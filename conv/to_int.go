package conv

import (
	"reflect"

	"github.com/beckdong/BitTornado/coerce"
)

var toIntSym = &toIntFunc{name: toIntName}

func ToInt() Func {
	return toIntSym
}

const (
	toIntName name = "toint"
)

var int64Type = reflect.TypeFor[int64]()

type toIntFunc struct {
	name
}

// Apply converts numbers, bools and decimal text to int64. Floats are
// truncated.
func (s toIntFunc) Apply(v any) (any, error) {
	return coerce.Construct(v, int64Type)
}
