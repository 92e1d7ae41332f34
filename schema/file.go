// Package schema loads container kinds from YAML kind files.
//
// A kind file has two sections:
//
//	lists:
//	  trackers: {split: " "}
//	  ports: {type: int, accept: "v > 0 && v < 65536", policy: strict}
//	maps:
//	  announce:
//	    variant: query
//	    types: {port: int, uploaded: int, event: string}
//	    convert: {string: trim}
//
// Types name entries of the type registry, see RegisterType. Conversions
// name functions of the conv registry, keyed by the source type they apply
// to. Expressions are expr-lang predicates over v.
package schema

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/beckdong/BitTornado/debug"
	"github.com/beckdong/BitTornado/typed"

	"github.com/goccy/go-yaml"
)

var ErrSchema = errors.New("schema error")

// File is a loaded kind file.
type File struct {
	Lists map[string]*ListDef `yaml:"lists"`
	Maps  map[string]*MapDef  `yaml:"maps"`
}

// LoadFile reads and loads the kind file at path.
func LoadFile(path string) (*File, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Load(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Load decodes a kind file and builds every kind in it, so that any
// unknown type, conversion or malformed expression is reported here.
func Load(d []byte) (*File, error) {
	f := &File{}
	if err := yaml.UnmarshalWithOptions(d, f, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	for _, name := range sortedKeys(f.Lists) {
		def := f.Lists[name]
		if def == nil {
			def = &ListDef{}
			f.Lists[name] = def
		}
		if err := def.build(name); err != nil {
			return nil, fmt.Errorf("%w: list %q: %w", ErrSchema, name, err)
		}
	}
	for _, name := range sortedKeys(f.Maps) {
		def := f.Maps[name]
		if def == nil {
			def = &MapDef{}
			f.Maps[name] = def
		}
		if err := def.build(name); err != nil {
			return nil, fmt.Errorf("%w: map %q: %w", ErrSchema, name, err)
		}
	}
	if debug.Schema() {
		debug.Logf("schema: loaded lists %v maps %v\n", sortedKeys(f.Lists), sortedKeys(f.Maps))
	}
	return f, nil
}

// List returns the list definition called name.
func (f *File) List(name string) (*ListDef, error) {
	def, ok := f.Lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: no list kind %q", ErrSchema, name)
	}
	return def, nil
}

// Map returns the map definition called name.
func (f *File) Map(name string) (*MapDef, error) {
	def, ok := f.Maps[name]
	if !ok {
		return nil, fmt.Errorf("%w: no map kind %q", ErrSchema, name)
	}
	return def, nil
}

// ListNames and MapNames return the defined kind names, sorted.
func (f *File) ListNames() []string {
	return sortedKeys(f.Lists)
}

func (f *File) MapNames() []string {
	return sortedKeys(f.Maps)
}

func sortedKeys[V any](m map[string]V) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// policy decodes "strict" or "lenient", defaulting to lenient.
func policy(s string) (typed.Policy, error) {
	switch s {
	case "", "lenient":
		return typed.Lenient, nil
	case "strict":
		return typed.Strict, nil
	}
	return typed.Lenient, fmt.Errorf("unknown policy %q", s)
}
