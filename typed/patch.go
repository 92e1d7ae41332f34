package typed

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/beckdong/BitTornado/debug"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// ApplyPatch applies an RFC 6902 JSON patch to m. The patched document is
// stored through Set, so its values are coerced and validated like any
// other. Keys that survive the patch keep their position, new keys follow
// in document order. Byte slice values appear in the document as base64
// text. On error m is left unchanged.
func ApplyPatch[K ~string, V any](m *Map[K, V], patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("%s: decoding patch: %w", m.kind.Name, err)
	}
	return patchWith(m, func(doc []byte) ([]byte, error) {
		return ops.Apply(doc)
	})
}

// ApplyMergePatch applies an RFC 7386 merge patch to m, with the same
// guarantees as ApplyPatch.
func ApplyMergePatch[K ~string, V any](m *Map[K, V], patch []byte) error {
	return patchWith(m, func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	})
}

func patchWith[K ~string, V any](m *Map[K, V], apply func([]byte) ([]byte, error)) error {
	doc, err := marshalOrdered(m)
	if err != nil {
		return err
	}
	out, err := apply(doc)
	if err != nil {
		return fmt.Errorf("%s: applying patch: %w", m.kind.Name, err)
	}
	if debug.Patch() {
		debug.Logf("%s: patched %s -> %s\n", m.kind.Name, doc, out)
	}
	pairs, err := unmarshalOrdered(out)
	if err != nil {
		return fmt.Errorf("%s: patch result: %w", m.kind.Name, err)
	}
	for i := range pairs {
		if pairs[i], err = fromJSON(m, pairs[i]); err != nil {
			return err
		}
	}
	res, err := NewMap(m.kind, reorder(m, pairs))
	if err != nil {
		return err
	}
	*m = *res
	return nil
}

// reorder puts the keys of m found in pairs first, in the order of m, and
// the remaining pairs after them in their own order.
func reorder[K ~string, V any](m *Map[K, V], pairs []Pair) []Pair {
	at := make(map[string]int, len(pairs))
	for i, p := range pairs {
		at[p.Key.(string)] = i
	}
	res := make([]Pair, 0, len(pairs))
	used := make([]bool, len(pairs))
	for _, k := range m.keys {
		i, ok := at[string(k)]
		if !ok {
			continue
		}
		res = append(res, pairs[i])
		used[i] = true
	}
	for i, p := range pairs {
		if !used[i] {
			res = append(res, p)
		}
	}
	return res
}

// fromJSON decodes base64 text headed for a byte slice shape.
func fromJSON[K ~string, V any](m *Map[K, V], p Pair) (Pair, error) {
	text, ok := p.Value.(string)
	if !ok {
		return p, nil
	}
	s := m.valueShape
	if o, present := m.kind.Types[K(p.Key.(string))]; present {
		s = o
	}
	t := s.Type()
	if t == nil || t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.Uint8 {
		return p, nil
	}
	d, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return p, &CoercionError{Kind: m.kind.Name, Role: RoleValue, Shape: s.String(), Value: text, Err: err}
	}
	p.Value = d
	return p, nil
}

func marshalOrdered[K ~string, V any](m *Map[K, V]) ([]byte, error) {
	buf := bytes.NewBuffer([]byte{'{'})
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(string(k))
		if err != nil {
			return nil, err
		}
		vd, err := json.Marshal(m.vals[k])
		if err != nil {
			return nil, fmt.Errorf("%s: encoding value at %q: %w", m.kind.Name, string(k), err)
		}
		buf.Write(kd)
		buf.WriteByte(':')
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// unmarshalOrdered decodes a JSON object keeping its key order. Integral
// numbers decode as int64, other numbers as float64.
func unmarshalOrdered(d []byte) ([]Pair, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}
	var res []Pair
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		if n, ok := v.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				v = i
			} else if f, err := n.Float64(); err == nil {
				v = f
			}
		}
		res = append(res, P(key, v))
	}
	return res, nil
}
