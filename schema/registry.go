package schema

import (
	"fmt"
	"maps"
	"sync"

	"github.com/beckdong/BitTornado/coerce"
	"github.com/beckdong/BitTornado/typed"
)

var (
	mu       sync.RWMutex
	registry = map[string]*coerce.Shape{
		"string":  coerce.Of[string](),
		"bytes":   coerce.Of[[]byte](),
		"bytekey": coerce.Of[typed.ByteKey](),
		"int":     coerce.Of[int](),
		"int64":   coerce.Of[int64](),
		"uint":    coerce.Of[uint](),
		"uint16":  coerce.Of[uint16](),
		"float":   coerce.Of[float64](),
		"bool":    coerce.Of[bool](),
		"any":     coerce.Of[any](),
	}
)

// RegisterType makes a shape available to kind files under name.
func RegisterType(name string, s *coerce.Shape) error {
	if name == "" {
		return fmt.Errorf("type name must not be empty")
	}
	if s == nil {
		return fmt.Errorf("cannot register nil shape as %q", name)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("type %q already registered", name)
	}
	registry[name] = s
	return nil
}

// LookupType looks up a type by name
func LookupType(name string) *coerce.Shape {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Types returns all registered types
func Types() map[string]*coerce.Shape {
	mu.RLock()
	defer mu.RUnlock()
	return maps.Clone(registry)
}
