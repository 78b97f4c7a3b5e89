// Package jsonedit implements a rule-driven deep-merge and clone
// engine for JSON document trees.
//
// An Editor owns an ordered chain of editing rules (template
// interpolation, conditional branch selection, multi-value fan-out and
// reference expansion) and walks documents recursively, consulting the
// rules for every property and value. Properties a rule cannot resolve
// until its siblings have been seen are deferred and reconciled in a
// finalization pass.
//
//	e, err := jsonedit.New(jsonedit.WithVars(rules.Vars{"name": "Ada"}))
//	...
//	out, err := e.Clone(doc, nil)
//
// Merging mutates the target in place:
//
//	_, err = e.MergeObjectInPlace(target, src, nil)
//
// The editor itself is immutable after construction and safe to share;
// each call gets its own state.
package jsonedit
