package conv

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Func{}
)

var ErrExists = errors.New("conversion exists")

func Register(f Func) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[f.String()]
	if present {
		return fmt.Errorf("%s: %w", f, ErrExists)
	}
	d[f.String()] = f
	return nil
}

func init() {
	Register(ToInt())
	Register(ToString())
	Register(B64Dec())
	Register(HexDec())
	Register(Bytes())
	Register(Trim())
	Register(Lower())
}

func Lookup(s string) Func {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

// Names returns the registered names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]string, 0, len(d))
	for n := range d {
		res = append(res, n)
	}
	slices.Sort(res)
	return res
}
