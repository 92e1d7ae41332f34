package schema

import (
	"fmt"
	"reflect"

	"github.com/beckdong/BitTornado/coerce"
	"github.com/beckdong/BitTornado/conv"
	"github.com/beckdong/BitTornado/typed"
)

// Map variants.
const (
	VariantText  = "text"
	VariantBytes = "bytes"
	VariantQuery = "query"
)

// MapDef describes a map kind with text or byte string keys and values of
// any type.
type MapDef struct {
	Variant       string            `yaml:"variant"`
	Value         any               `yaml:"value"`
	Types         map[string]any    `yaml:"types"`
	Keys          []string          `yaml:"keys"`
	Convert       map[string]string `yaml:"convert"`
	KeyConvert    map[string]string `yaml:"keyConvert"`
	IgnoreUnknown bool              `yaml:"ignoreUnknown"`
	AssertKey     string            `yaml:"assertKey"`
	AssertValue   string            `yaml:"assertValue"`

	text  *typed.MapKind[string, any]
	bytes *typed.MapKind[typed.ByteKey, any]
}

func (d *MapDef) build(name string) error {
	switch d.Variant {
	case "":
		d.Variant = VariantText
	case VariantText, VariantBytes, VariantQuery:
	default:
		return fmt.Errorf("unknown variant %q", d.Variant)
	}
	vs, err := ResolveType(d.Value)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	types := map[string]*coerce.Shape{}
	for _, k := range sortedKeys(d.Types) {
		s, err := ResolveType(d.Types[k])
		if err != nil {
			return fmt.Errorf("types %q: %w", k, err)
		}
		types[k] = s
	}
	if len(types) == 0 {
		types = nil
	}
	valueConv, err := convTable(d.Convert)
	if err != nil {
		return err
	}
	keyConv, err := convTable(d.KeyConvert)
	if err != nil {
		return err
	}
	var assertKey func(string) bool
	if d.AssertKey != "" {
		if assertKey, err = typed.Expr[string](d.AssertKey); err != nil {
			return err
		}
	}
	var assertValue func(any) bool
	if d.AssertValue != "" {
		if assertValue, err = typed.Expr[any](d.AssertValue); err != nil {
			return err
		}
	}

	text := typed.MapKind[string, any]{
		Name:          name,
		ValueShape:    vs,
		KeyConv:       keyConv,
		ValueConv:     valueConv,
		Types:         types,
		Keys:          d.Keys,
		IgnoreUnknown: d.IgnoreUnknown,
		AssertKey:     assertKey,
		AssertValue:   assertValue,
	}
	if d.Variant == VariantQuery {
		d.text = typed.QueryKind(text)
	} else {
		d.text = &text
	}

	bk := typed.MapKind[typed.ByteKey, any]{
		Name:          name,
		ValueShape:    vs,
		KeyConv:       keyConv,
		ValueConv:     valueConv,
		IgnoreUnknown: d.IgnoreUnknown,
		AssertValue:   assertValue,
	}
	if types != nil {
		bk.Types = make(map[typed.ByteKey]*coerce.Shape, len(types))
		for k, s := range types {
			bk.Types[typed.ByteKey(k)] = s
		}
	}
	if d.Keys != nil {
		bk.Keys = make([]typed.ByteKey, len(d.Keys))
		for i, k := range d.Keys {
			bk.Keys[i] = typed.ByteKey(k)
		}
	}
	if assertKey != nil {
		bk.AssertKey = func(k typed.ByteKey) bool { return assertKey(string(k)) }
	}
	d.bytes = typed.BytesKeyed(bk)
	return nil
}

// TextKind returns the kind with text keys.
func (d *MapDef) TextKind() *typed.MapKind[string, any] {
	return d.text
}

// BytesKind returns the kind with byte string keys.
func (d *MapDef) BytesKind() *typed.MapKind[typed.ByteKey, any] {
	return d.bytes
}

// New builds a map of the definition's variant from src: a
// *typed.QueryMap[any], a *typed.Map[typed.ByteKey, any] or a
// *typed.Map[string, any].
func (d *MapDef) New(src any, fields ...typed.Pair) (typed.Mapping, error) {
	var (
		m   typed.Mapping
		err error
	)
	switch d.Variant {
	case VariantQuery:
		m, err = typed.NewQueryMap(d.text, src, fields...)
	case VariantBytes:
		m, err = typed.NewMap(d.bytes, src, fields...)
	default:
		m, err = typed.NewMap(d.text, src, fields...)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// convTable builds a table from source type names to conversion names.
func convTable(m map[string]string) (coerce.Table, error) {
	var tables []coerce.Table
	for _, from := range sortedKeys(m) {
		s := LookupType(from)
		if s == nil || s.IsTuple() {
			return nil, fmt.Errorf("convert: unknown source type %q", from)
		}
		if s.Type().Kind() == reflect.Interface {
			return nil, fmt.Errorf("convert: source type %q is not concrete", from)
		}
		tbl, err := conv.Table(s.Type(), m[from])
		if err != nil {
			return nil, fmt.Errorf("convert %q: %w", from, err)
		}
		tables = append(tables, tbl)
	}
	if tables == nil {
		return nil, nil
	}
	return coerce.Merge(tables...), nil
}
