package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beckdong/BitTornado/typed"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

var errNotMapping = errors.New("document is not a mapping")

// parseKV parses a key=val argument, reading val as a YAML scalar. An
// empty val is empty text.
func parseKV(a string) (typed.Pair, error) {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return typed.Pair{}, fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	if val == "" {
		return typed.P(key, ""), nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return typed.Pair{}, fmt.Errorf("%w: argument %q: %w", cli.ErrUsage, a, err)
	}
	return typed.P(key, v), nil
}

// decodeMapping decodes a YAML mapping keeping its key order. An empty
// document is an empty mapping.
func decodeMapping(d []byte) (yaml.MapSlice, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case nil:
		return yaml.MapSlice{}, nil
	case yaml.MapSlice:
		return x, nil
	}
	return nil, fmt.Errorf("%w: got %T", errNotMapping, v)
}

func pairs(ms yaml.MapSlice) []typed.Pair {
	res := make([]typed.Pair, len(ms))
	for i, item := range ms {
		res[i] = typed.P(item.Key, item.Value)
	}
	return res
}

// toMapSlice renders m for YAML output, byte strings as text.
func toMapSlice(m typed.Mapping) yaml.MapSlice {
	ms := yaml.MapSlice{}
	for k, v := range m.Pairs() {
		ms = append(ms, yaml.MapItem{Key: plain(k), Value: plain(v)})
	}
	return ms
}

func plain(v any) any {
	switch x := v.(type) {
	case typed.ByteKey:
		return string(x)
	case []byte:
		return string(x)
	case []any:
		res := make([]any, len(x))
		for i, item := range x {
			res[i] = plain(item)
		}
		return res
	case yaml.MapSlice:
		res := make(yaml.MapSlice, len(x))
		for i, item := range x {
			res[i] = yaml.MapItem{Key: plain(item.Key), Value: plain(item.Value)}
		}
		return res
	}
	return v
}

func encodeYAML(v any) ([]byte, error) {
	return yaml.MarshalWithOptions(v, yaml.Indent(2))
}
