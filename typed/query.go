package typed

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/beckdong/BitTornado/coerce"
)

// QueryKind returns kind with text keys.
func QueryKind[V any](kind MapKind[string, V]) *MapKind[string, V] {
	kind.KeyShape = coerce.Of[string]()
	return &kind
}

// QueryMap is a text keyed map that encodes as a URL query string.
type QueryMap[V any] struct {
	*Map[string, V]
}

func NewQueryMap[V any](kind *MapKind[string, V], src any, fields ...Pair) (*QueryMap[V], error) {
	m, err := NewMap(kind, src, fields...)
	if err != nil {
		return nil, err
	}
	return &QueryMap[V]{Map: m}, nil
}

var int64Shape = coerce.Of[int64]()

// Encode renders the map as "k1=v1&k2=v2" in insertion order, without a
// leading '?'. Text and byte values are escaped as they are, other values
// are coerced to integers first. Keys are written unescaped.
func (q *QueryMap[V]) Encode() (string, error) {
	var b strings.Builder
	for k, v := range q.All() {
		s, err := queryValue(q.kind.Name, v)
		if err != nil {
			return "", err
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(escape(s))
	}
	return b.String(), nil
}

func (q *QueryMap[V]) String() string {
	s, err := q.Encode()
	if err != nil {
		return fmt.Sprintf("%%!(BADQUERY %v)", err)
	}
	return s
}

func queryValue(kind string, v any) (string, error) {
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return rv.String(), nil
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return string(rv.Bytes()), nil
	}
	i, err := coerceTo[int64](v, int64Shape, nil, kind, RoleValue)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(i, 10), nil
}

// escape percent-encodes s for a query component, spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
