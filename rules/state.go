package rules

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/jsonedit/go-jsonedit/ir"
)

var stateID atomic.Uint64

// CloneFunc recursively clones a value through the full rule pipeline
// under the given context. The editor installs its clone entry point
// here when it creates a state, the way match and patch functions are
// threaded through operations.
type CloneFunc func(v *ir.Node, ctx *Context) Outcome

// State is the per-operation editing context. A fresh state is created
// for every top-level clone or merge call and discarded at call exit;
// it is never shared across calls.
type State struct {
	ID         uint64
	Context    *Context
	Validation Validation
	Merge      MergeOptions
	Clone      CloneFunc

	deferrals []*Deferral
}

// NewState resolves opts against an optional per-call context. The
// clone hook may be nil for states that never reach the Reference or
// MultiValue rules.
func NewState(opts *Options, call *Context, clone CloneFunc) *State {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &State{
		ID:         stateID.Add(1),
		Context:    resolveContext(opts.Context, call),
		Validation: opts.Validation,
		Merge:      opts.Merge,
		Clone:      clone,
	}
}

func (st *State) Vars() Vars {
	if st.Context == nil {
		return nil
	}
	return st.Context.Vars
}

func (st *State) Refs() RefMap {
	if st.Context == nil {
		return nil
	}
	return st.Context.Refs
}

// Defer records a deferral for the finalization pass.
func (st *State) Defer(d *Deferral) {
	st.deferrals = append(st.deferrals, d)
}

// Deferrals returns the deferrals accumulated so far.
func (st *State) Deferrals() []*Deferral {
	return st.deferrals
}

// ResetDeferrals clears the deferral list once it has been consumed by
// finalization.
func (st *State) ResetDeferrals() {
	st.deferrals = nil
}

// CloneValue clones v through the full rule pipeline. A nil ctx uses
// the state's own context.
func (st *State) CloneValue(v *ir.Node, ctx *Context) Outcome {
	if st.Clone == nil {
		return Fail(errors.New("no clone function installed on state"))
	}
	if ctx == nil {
		ctx = st.Context
	}
	return st.Clone(v, ctx)
}

// InvalidPropertyName applies the OnInvalidPropertyName policy.
func (st *State) InvalidPropertyName(key string, err error) Outcome {
	if st.Validation.OnInvalidPropertyName == PolicyIgnore {
		return Ignore()
	}
	return Fail(fmt.Errorf("invalid property name %q: %w", key, err))
}

// InvalidPropertyValue applies the OnInvalidPropertyValue policy.
func (st *State) InvalidPropertyValue(err error) Outcome {
	if st.Validation.OnInvalidPropertyValue == PolicyIgnore {
		return Ignore()
	}
	return Fail(fmt.Errorf("invalid property value: %w", err))
}

// UndefinedPropertyValue applies the OnUndefinedPropertyValue policy.
func (st *State) UndefinedPropertyValue() Outcome {
	if st.Validation.OnUndefinedPropertyValue == PolicyIgnore {
		return Ignore()
	}
	return Fail(errors.New("undefined property value"))
}
