package jsonedit

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jsonedit/go-jsonedit/debug"
	"github.com/jsonedit/go-jsonedit/ir"
	"github.com/jsonedit/go-jsonedit/rules"
)

// Editor drives rule-based cloning and merging of JSON documents. An
// editor is immutable after construction and safe to share across
// calls; all per-operation state lives on a rules.State created fresh
// for each call.
type Editor struct {
	opts  *rules.Options
	rules []rules.Rule
}

type Option func(*Editor)

// WithContext sets the editor's base context (template variables and
// reference map).
func WithContext(ctx *rules.Context) Option {
	return func(e *Editor) { e.opts.Context = ctx }
}

// WithVars sets the base template variables.
func WithVars(vars rules.Vars) Option {
	return func(e *Editor) {
		if e.opts.Context == nil {
			e.opts.Context = &rules.Context{}
		}
		e.opts.Context.Vars = vars
	}
}

// WithRefs sets the base reference map.
func WithRefs(refs rules.RefMap) Option {
	return func(e *Editor) {
		if e.opts.Context == nil {
			e.opts.Context = &rules.Context{}
		}
		e.opts.Context.Refs = refs
	}
}

func WithValidation(v rules.Validation) Option {
	return func(e *Editor) { e.opts.Validation = v }
}

func WithArrayMerge(a rules.ArrayMerge) Option {
	return func(e *Editor) { e.opts.Merge.Arrays = a }
}

func WithNullAsDelete(v bool) Option {
	return func(e *Editor) { e.opts.Merge.NullAsDelete = v }
}

// WithRules replaces the default rule chain. Order is semantically
// significant: the first rule recognizing a property or value wins.
func WithRules(rr ...rules.Rule) Option {
	return func(e *Editor) { e.rules = rr }
}

// WithExtraRules appends rules after the default chain.
func WithExtraRules(rr ...rules.Rule) Option {
	return func(e *Editor) { e.rules = append(e.rules, rr...) }
}

func New(opts ...Option) (*Editor, error) {
	e := &Editor{
		opts:  rules.DefaultOptions(),
		rules: rules.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	for i, r := range e.rules {
		if r == nil {
			return nil, fmt.Errorf("rule %d is nil", i)
		}
		if r.Name() == "" {
			return nil, fmt.Errorf("rule %d has no name", i)
		}
	}
	return e, nil
}

var defaultEditor = sync.OnceValue(func() *Editor {
	e, err := New()
	if err != nil {
		panic(err)
	}
	return e
})

// Default returns a shared zero-config editor for convenience callers
// such as reference-map construction.
func Default() *Editor {
	return defaultEditor()
}

// newState builds a fresh per-operation state with the clone pipeline
// installed, so rules can recursively clone under extended contexts.
func (e *Editor) newState(ctx *rules.Context) *rules.State {
	st := rules.NewState(e.opts, ctx, nil)
	st.Clone = func(v *ir.Node, c *rules.Context) rules.Outcome {
		return e.cloneNode(v, e.newState(c))
	}
	return st
}

// editValue dispatches a value across the rule chain; the first
// non-inapplicable outcome wins.
func (e *Editor) editValue(v *ir.Node, st *rules.State) rules.Outcome {
	for _, r := range e.rules {
		out := r.EditValue(v, st)
		if out.Disposition == rules.Inapplicable {
			continue
		}
		if debug.Edit() {
			debug.Logf("rule %s value %v: %s\n", r.Name(), v, out.Disposition)
		}
		return out
	}
	return rules.NotApplicable()
}

// editProperty dispatches a key/value pair across the rule chain.
func (e *Editor) editProperty(key string, v *ir.Node, st *rules.State) rules.Outcome {
	for _, r := range e.rules {
		out := r.EditProperty(key, v, st)
		if out.Disposition == rules.Inapplicable {
			continue
		}
		if debug.Edit() {
			debug.Logf("rule %s property %q: %s\n", r.Name(), key, out.Disposition)
		}
		return out
	}
	return rules.NotApplicable()
}

// dangerous key names are never merged: the output may be consumed by
// JavaScript code where these corrupt the containing object.
func isDangerousKey(key string) bool {
	switch key {
	case "__proto__", "constructor", "prototype":
		return true
	}
	return false
}

var errInherited = errors.New("cannot merge inherited properties")
