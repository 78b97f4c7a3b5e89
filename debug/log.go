// Package debug provides env-gated debug logging for the editor.
// Each area is switched on with a JEDIT_DEBUG_* environment variable.
package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsonedit/go-jsonedit/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<undefined>"
				continue
			}
			d, err := x.MarshalJSON()
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
