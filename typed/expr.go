package typed

import (
	"fmt"
	"reflect"

	"github.com/beckdong/BitTornado/debug"

	"github.com/expr-lang/expr"
)

// Expr compiles src, a boolean expr-lang expression over the variable v,
// into a predicate usable as a ListKind.Accept or a MapKind assertion.
// When T is an interface type v is checked at run time only. A run time
// error makes the predicate false.
func Expr[T any](src string) (func(T) bool, error) {
	opts := []expr.Option{expr.AsBool()}
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		opts = append(opts, expr.Env(map[string]any{}), expr.AllowUndefinedVariables())
	} else {
		var zero T
		opts = append(opts, expr.Env(map[string]any{"v": zero}))
	}
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("predicate %q: %w", src, err)
	}
	return func(v T) bool {
		res, err := expr.Run(prg, map[string]any{"v": v})
		if err != nil {
			if debug.Reject() {
				debug.Logf("predicate %q on %#v: %v\n", src, v, err)
			}
			return false
		}
		b, _ := res.(bool)
		return b
	}, nil
}

