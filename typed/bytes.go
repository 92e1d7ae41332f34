package typed

import (
	"fmt"

	"github.com/beckdong/BitTornado/coerce"
)

// ByteKey is an immutable byte string, usable where a []byte key is wanted
// but a comparable type is required. It is distinct from text: a string
// key never equals a ByteKey.
type ByteKey string

func (k ByteKey) Bytes() []byte {
	return []byte(k)
}

func (k ByteKey) GoString() string {
	return fmt.Sprintf("typed.ByteKey(%q)", string(k))
}

func (k *ByteKey) UnmarshalText(d []byte) error {
	*k = ByteKey(d)
	return nil
}

var byteKeyConv = coerce.Merge(
	coerce.Add(nil, func(s string) (ByteKey, error) { return ByteKey(s), nil }),
	coerce.Add(nil, func(b []byte) (ByteKey, error) { return ByteKey(b), nil }),
)

// BytesKeyed returns kind with byte string keys, encoding text and []byte
// keys on the way in. Key conversions already in kind are kept unless they
// are for string or []byte.
func BytesKeyed[V any](kind MapKind[ByteKey, V]) *MapKind[ByteKey, V] {
	kind.KeyShape = coerce.Of[ByteKey]()
	kind.KeyConv = coerce.Merge(kind.KeyConv, byteKeyConv)
	return &kind
}
