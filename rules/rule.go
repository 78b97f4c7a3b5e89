package rules

import "github.com/jsonedit/go-jsonedit/ir"

// Rule is a pluggable unit of editing logic consulted for every
// property and every value during a clone or merge.
//
// Rules are stateless with respect to a given edit pass aside from
// their constructor-time configuration; per-operation data lives on
// the State.
type Rule interface {
	Name() string

	// EditProperty may rewrite a single key/value pair before it is
	// merged into the growing target. An Edited outcome carries an
	// object (possibly multi-key) to merge in place of the pair; a
	// Deferred outcome means the rule recorded a Deferral on the state.
	EditProperty(key string, value *ir.Node, st *State) Outcome

	// EditValue may rewrite any value encountered, before it is known
	// whether the value is a container (a rule can turn a string into
	// an object).
	EditValue(value *ir.Node, st *State) Outcome

	// Finalize reconciles the deferrals accumulated during the walk of
	// one containing object. It is consulted per rule in registration
	// order; the first rule answering Edited or Ignored ends the scan,
	// so each rule must filter out foreign deferrals by their Rule
	// discriminant.
	Finalize(deferrals []*Deferral, st *State) FinalOutcome
}

// Deferral is a property set aside during the edit pass for resolution
// during finalization. Rule names the deferring rule and is the
// discriminant finalizers filter on; Kind is rule-specific.
type Deferral struct {
	Rule  string
	Key   string
	Kind  string
	Value *ir.Node
}

// Base answers "not applicable" to everything. Concrete rules embed it
// and override only the operations they take part in.
type Base struct{}

func (Base) EditProperty(key string, value *ir.Node, st *State) Outcome {
	return NotApplicable()
}

func (Base) EditValue(value *ir.Node, st *State) Outcome {
	return NotApplicable()
}

func (Base) Finalize(deferrals []*Deferral, st *State) FinalOutcome {
	return FinalNotApplicable()
}

// Default returns the built-in rule chain in its semantically
// significant order: template, conditional, multi-value, reference.
func Default() []Rule {
	return []Rule{
		NewTemplate(nil),
		NewConditional(),
		NewMultiValue(),
		NewReference(),
	}
}
