package typed

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/beckdong/BitTornado/coerce"
	"github.com/beckdong/BitTornado/debug"
)

// MapKind configures a family of maps.
type MapKind[K comparable, V any] struct {
	Name string

	// KeyShape and ValueShape default to the shapes of K and V.
	KeyShape, ValueShape *coerce.Shape
	KeyConv, ValueConv   coerce.Table

	// Types overrides the value shape for specific keys. An override only
	// makes sense when V is an interface type able to hold it.
	Types map[K]*coerce.Shape

	// Keys is the closed set of allowed keys. When nil and Types is set,
	// the keys of Types are allowed. A non-nil empty Keys allows nothing.
	Keys []K
	// IgnoreUnknown turns assignments to keys outside Keys into no-ops.
	IgnoreUnknown bool

	// AssertKey and AssertValue must hold for everything stored. A failure
	// panics with a *ContractViolation.
	AssertKey   func(K) bool
	AssertValue func(V) bool
}

func (k *MapKind[K, V]) allowed() map[K]struct{} {
	switch {
	case k.Keys != nil:
		res := make(map[K]struct{}, len(k.Keys))
		for _, key := range k.Keys {
			res[key] = struct{}{}
		}
		return res
	case k.Types != nil:
		res := make(map[K]struct{}, len(k.Types))
		for key := range k.Types {
			res[key] = struct{}{}
		}
		return res
	}
	return nil
}

// Pair is a key and value on their way into a map.
type Pair struct {
	Key, Value any
}

// P is shorthand for Pair{k, v}.
func P(k, v any) Pair {
	return Pair{Key: k, Value: v}
}

// Mapping is implemented by ordered key/value sources.
type Mapping interface {
	Pairs() iter.Seq2[any, any]
}

// Map is an insertion ordered mapping whose keys and values were coerced
// to the kind's shapes when stored.
type Map[K comparable, V any] struct {
	kind       *MapKind[K, V]
	keyShape   *coerce.Shape
	valueShape *coerce.Shape
	allowed    map[K]struct{}

	keys []K
	vals map[K]V
}

// NewMap returns a map of the given kind updated from src and fields; see
// Update.
func NewMap[K comparable, V any](kind *MapKind[K, V], src any, fields ...Pair) (*Map[K, V], error) {
	m := &Map[K, V]{
		kind:       kind,
		keyShape:   shapeOr[K](kind.KeyShape),
		valueShape: shapeOr[V](kind.ValueShape),
		allowed:    kind.allowed(),
		vals:       map[K]V{},
	}
	if err := m.Update(src, fields...); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map[K, V]) Kind() *MapKind[K, V] {
	return m.kind
}

// Set coerces key and val and stores them. Keys outside the allowed set
// return an *InvalidKeyError, or are ignored if the kind says so.
func (m *Map[K, V]) Set(key, val any) error {
	k, v, ok, err := m.admit(key, val)
	if !ok {
		return err
	}
	m.store(k, v)
	return nil
}

func (m *Map[K, V]) admit(key, val any) (k K, v V, ok bool, err error) {
	kind := m.kind
	k, err = coerceTo[K](key, m.keyShape, kind.KeyConv, kind.Name, RoleKey)
	if err != nil {
		return k, v, false, err
	}
	x, err := coerce.Normalize(val, m.valueShape, kind.ValueConv)
	if err != nil {
		return k, v, false, &CoercionError{Kind: kind.Name, Role: RoleValue, Shape: m.valueShape.String(), Value: val, Err: err}
	}
	if s, present := kind.Types[k]; present && !s.Matches(x) {
		if f, found := kind.ValueConv.Lookup(x); found {
			if x, err = f(x); err != nil {
				return k, v, false, &CoercionError{Kind: kind.Name, Role: RoleValue, Shape: s.String(), Value: val, Err: err}
			}
		}
		v, err = coerceTo[V](x, s, nil, kind.Name, RoleValue)
	} else {
		v, err = coerceTo[V](x, nil, nil, kind.Name, RoleValue)
	}
	if err != nil {
		return k, v, false, err
	}
	if m.allowed != nil {
		if _, present := m.allowed[k]; !present {
			if kind.IgnoreUnknown {
				if debug.Keys() {
					debug.Logf("%s: ignored key %v\n", kind.Name, k)
				}
				return k, v, false, nil
			}
			return k, v, false, &InvalidKeyError{Kind: kind.Name, Key: k}
		}
	}
	if kind.AssertKey != nil && !kind.AssertKey(k) {
		panic(&ContractViolation{Kind: kind.Name, Role: RoleKey, Value: k})
	}
	if kind.AssertValue != nil && !kind.AssertValue(v) {
		panic(&ContractViolation{Kind: kind.Name, Role: RoleValue, Value: v})
	}
	return k, v, true, nil
}

func (m *Map[K, V]) store(k K, v V) {
	if _, present := m.vals[k]; !present {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

// Update sets every pair of src, then every field, in order. src may be
// nil, a Mapping, a []Pair, a Go map (visited in sorted key order) or a
// slice of two element slices or arrays. Update stops at the first error
// and keeps the pairs set before it.
func (m *Map[K, V]) Update(src any, fields ...Pair) error {
	if src != nil {
		pairs, err := pairsOf(src)
		if err != nil {
			return err
		}
		for k, v := range pairs {
			if err := m.Set(k, v); err != nil {
				return err
			}
		}
	}
	for _, f := range fields {
		if err := m.Set(f.Key, f.Value); err != nil {
			return err
		}
	}
	return nil
}

// SetDefault returns the value at key, storing def there first if key is
// absent. The stored default is the coerced form of def.
func (m *Map[K, V]) SetDefault(key, def any) (V, error) {
	var zero V
	k, err := coerceTo[K](key, m.keyShape, m.kind.KeyConv, m.kind.Name, RoleKey)
	if err != nil {
		return zero, err
	}
	if v, present := m.vals[k]; present {
		return v, nil
	}
	if err := m.Set(k, def); err != nil {
		return zero, err
	}
	v, present := m.vals[k]
	if !present {
		// ignored unknown key
		return zero, &InvalidKeyError{Kind: m.kind.Name, Key: k}
	}
	return v, nil
}

func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.vals[k]
	return v, ok
}

// Lookup finds key without coercing it: a key of another type never
// matches.
func (m *Map[K, V]) Lookup(key any) (V, bool) {
	k, ok := key.(K)
	if !ok {
		var zero V
		return zero, false
	}
	return m.Get(k)
}

func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.vals[k]
	return ok
}

// Delete removes k, reporting whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	if _, ok := m.vals[k]; !ok {
		return false
	}
	delete(m.vals, k)
	m.keys = slices.DeleteFunc(m.keys, func(x K) bool { return x == k })
	return true
}

func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Pairs() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range m.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (m *Map[K, V]) String() string {
	buf := []byte{'{'}
	for i, k := range m.keys {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = fmt.Appendf(buf, "%v: %v", k, m.vals[k])
	}
	return string(append(buf, '}'))
}

func pairsOf(src any) (iter.Seq2[any, any], error) {
	switch x := src.(type) {
	case Mapping:
		return x.Pairs(), nil
	case []Pair:
		return func(yield func(any, any) bool) {
			for _, p := range x {
				if !yield(p.Key, p.Value) {
					return
				}
			}
		}, nil
	}
	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, compareKeys)
		return func(yield func(any, any) bool) {
			for _, k := range keys {
				if !yield(k.Interface(), rv.MapIndex(k).Interface()) {
					return
				}
			}
		}, nil
	case reflect.Slice, reflect.Array:
		pairs := make([]Pair, rv.Len())
		for i := range pairs {
			item := reflect.ValueOf(rv.Index(i).Interface())
			switch item.Kind() {
			case reflect.Slice, reflect.Array:
			default:
				return nil, fmt.Errorf("update item %d: %T is not a pair", i, item.Interface())
			}
			if item.Len() != 2 {
				return nil, fmt.Errorf("update item %d has length %d, want 2", i, item.Len())
			}
			pairs[i] = P(item.Index(0).Interface(), item.Index(1).Interface())
		}
		return pairsOf(pairs)
	}
	return nil, fmt.Errorf("cannot update from %T", src)
}

func compareKeys(a, b reflect.Value) int {
	switch {
	case a.CanInt() && b.CanInt():
		return cmp.Compare(a.Int(), b.Int())
	case a.CanUint() && b.CanUint():
		return cmp.Compare(a.Uint(), b.Uint())
	case a.CanFloat() && b.CanFloat():
		return cmp.Compare(a.Float(), b.Float())
	case a.Kind() == reflect.String && b.Kind() == reflect.String:
		return cmp.Compare(a.String(), b.String())
	}
	return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}
