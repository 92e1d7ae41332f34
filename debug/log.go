package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

var out io.Writer = os.Stderr

// Logf writes a trace line to stderr. Maps and slices among args are
// rendered as indented YAML.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, yaml.MapSlice:
			d, err := yaml.MarshalWithOptions(a, yaml.Indent(2))
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = "\n" + string(d)
		}
	}
	fmt.Fprintf(out, msg, args...)
}
