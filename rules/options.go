package rules

import "maps"

// Policy selects whether a validation failure aborts the operation or
// silently drops the offending input.
type Policy int

const (
	PolicyError Policy = iota
	PolicyIgnore
)

func (p Policy) String() string {
	if p == PolicyIgnore {
		return "ignore"
	}
	return "error"
}

// Validation holds the three independently configurable validation
// policies.
type Validation struct {
	OnInvalidPropertyName    Policy
	OnInvalidPropertyValue   Policy
	OnUndefinedPropertyValue Policy
}

// DefaultValidation errors on invalid names and values and silently
// drops undefined values.
func DefaultValidation() Validation {
	return Validation{
		OnInvalidPropertyName:    PolicyError,
		OnInvalidPropertyValue:   PolicyError,
		OnUndefinedPropertyValue: PolicyIgnore,
	}
}

// ArrayMerge selects how colliding arrays combine during a merge.
type ArrayMerge int

const (
	ArrayAppend ArrayMerge = iota
	ArrayReplace
)

func (a ArrayMerge) String() string {
	if a == ArrayReplace {
		return "replace"
	}
	return "append"
}

// MergeOptions governs how colliding values combine during a merge.
type MergeOptions struct {
	Arrays       ArrayMerge
	NullAsDelete bool
}

// Vars are the template variables available to interpolation and
// condition rendering.
type Vars map[string]any

// Context carries the template variables and reference map for one
// editing operation.
type Context struct {
	Vars Vars
	Refs RefMap
}

// Extend returns a new context overlaying vars on the receiver's
// variables and replacing the reference map when refs is non-nil. The
// receiver may be nil.
func (c *Context) Extend(vars Vars, refs RefMap) *Context {
	res := &Context{}
	if c != nil {
		res.Vars = maps.Clone(c.Vars)
		res.Refs = c.Refs
	}
	if len(vars) > 0 {
		if res.Vars == nil {
			res.Vars = make(Vars, len(vars))
		}
		maps.Copy(res.Vars, vars)
	}
	if refs != nil {
		res.Refs = refs
	}
	return res
}

// Options is the full editor configuration, resolved once per editor.
type Options struct {
	Context    *Context
	Validation Validation
	Merge      MergeOptions
}

func DefaultOptions() *Options {
	return &Options{
		Validation: DefaultValidation(),
	}
}

// resolveContext overlays a per-call context on the editor's base
// context: vars and refs each fall back to the base when the call
// context leaves them unset.
func resolveContext(base, call *Context) *Context {
	if call == nil {
		if base == nil {
			return &Context{}
		}
		return base
	}
	res := &Context{Vars: call.Vars, Refs: call.Refs}
	if base != nil {
		if res.Vars == nil {
			res.Vars = base.Vars
		}
		if res.Refs == nil {
			res.Refs = base.Refs
		}
	}
	return res
}
