package jsonedit

import (
	"github.com/jsonedit/go-jsonedit/ir"
	"github.com/jsonedit/go-jsonedit/refmap"
	"github.com/jsonedit/go-jsonedit/rules"
)

// NewSimpleMap builds a reference map under the default key policy,
// formatting lookups through e (or the shared default editor when e is
// nil).
func NewSimpleMap(values map[string]*ir.Node, ctx *rules.Context, e *Editor) (*refmap.Map, error) {
	if e == nil {
		e = Default()
	}
	return refmap.New(values, refmap.DefaultPolicy{}, e, ctx)
}

// NewPrefixedMap builds a reference map whose keys must carry the
// policy's prefix.
func NewPrefixedMap(policy refmap.PrefixPolicy, values map[string]*ir.Node, ctx *rules.Context, e *Editor) (*refmap.Map, error) {
	if e == nil {
		e = Default()
	}
	return refmap.New(values, policy, e, ctx)
}
