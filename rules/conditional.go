package rules

import (
	"errors"
	"strings"

	"github.com/jsonedit/go-jsonedit/debug"
	"github.com/jsonedit/go-jsonedit/ir"
)

// ConditionalPrefix starts a conditional property name.
const ConditionalPrefix = "?"

// UnconditionalPrefix marks a property whose object body is flattened
// into the parent alongside whichever conditional branch is kept.
const UnconditionalPrefix = "!"

const (
	condKindMatch         = "match"
	condKindDefault       = "default"
	condKindUnconditional = "unconditional"
)

// Conditional implements branch selection via ?-prefixed keys. Each
// operand of a condition is substituted with the template variable of
// that name when one exists and compared lexicographically. Branch
// bodies are deferred during the walk and reconciled during
// finalization, where a real match suppresses any ?default branches.
type Conditional struct {
	Base
	// FlattenUnconditional enables !-prefixed keys, whose bodies are
	// always kept.
	FlattenUnconditional bool
}

func NewConditional() *Conditional {
	return &Conditional{FlattenUnconditional: true}
}

func (r *Conditional) Name() string { return "conditional" }

func (r *Conditional) EditProperty(key string, value *ir.Node, st *State) Outcome {
	isCond := strings.HasPrefix(key, ConditionalPrefix)
	if !isCond && !(r.FlattenUnconditional && strings.HasPrefix(key, UnconditionalPrefix)) {
		return NotApplicable()
	}
	// the body is validated before the condition so a bad branch is an
	// error whether or not it matches
	if value == nil {
		return st.UndefinedPropertyValue()
	}
	if value.Type != ir.ObjectType {
		return Fail(errors.New("conditional body must be an object"))
	}
	kind := condKindUnconditional
	if isCond {
		matched, out, ok := r.evalCondition(key, st)
		if !ok {
			return out
		}
		if !matched {
			return Ignore()
		}
		kind = condKindMatch
		if strings.TrimSpace(stripComment(key[len(ConditionalPrefix):])) == condKindDefault {
			kind = condKindDefault
		}
	}
	if debug.Rule() {
		debug.Logf("conditional %q deferred as %s\n", key, kind)
	}
	st.Defer(&Deferral{
		Rule:  r.Name(),
		Key:   key,
		Kind:  kind,
		Value: value,
	})
	return Defer()
}

// evalCondition decides a ?-prefixed key. ok is false when out already
// carries the outcome (malformed condition under the name policy);
// otherwise matched reports whether the branch is kept. ?default always
// matches.
func (r *Conditional) evalCondition(key string, st *State) (matched bool, out Outcome, ok bool) {
	cond := stripComment(key[len(ConditionalPrefix):])
	if strings.TrimSpace(cond) == condKindDefault {
		return true, Outcome{}, true
	}
	idx, op := findOperator(cond)
	if op == "" {
		// truthy test
		return resolveOperand(cond, st) != "", Outcome{}, true
	}
	left := resolveOperand(cond[:idx], st)
	rest := cond[idx+len(op):]
	if _, second := findOperator(rest); second != "" {
		return false, st.InvalidPropertyName(key, errors.New("malformed condition")), false
	}
	right := resolveOperand(rest, st)
	cmp := strings.Compare(left, right)
	switch op {
	case "=":
		matched = cmp == 0
	case "!=":
		matched = cmp != 0
	case ">":
		matched = cmp > 0
	case "<":
		matched = cmp < 0
	case ">=":
		matched = cmp >= 0
	case "<=":
		matched = cmp <= 0
	}
	return matched, Outcome{}, true
}

// resolveOperand trims an operand token and substitutes it with the
// state's template variable of that name when one exists; otherwise the
// token is a literal.
func resolveOperand(tok string, st *State) string {
	tok = strings.TrimSpace(tok)
	if vars := st.Vars(); vars != nil {
		if v, ok := vars[tok]; ok {
			return templateString(v)
		}
	}
	return tok
}

// stripComment discards everything after a literal # so condition keys
// can carry inline comments.
func stripComment(cond string) string {
	if i := strings.Index(cond, "#"); i >= 0 {
		return cond[:i]
	}
	return cond
}

// findOperator locates the first comparison operator in cond, checking
// two-character operators before their one-character prefixes.
func findOperator(cond string) (int, string) {
	for i := 0; i < len(cond); i++ {
		for _, op := range [...]string{"!=", ">=", "<=", "=", ">", "<"} {
			if strings.HasPrefix(cond[i:], op) {
				return i, op
			}
		}
	}
	return -1, ""
}

func (r *Conditional) Finalize(deferrals []*Deferral, st *State) FinalOutcome {
	var mine []*Deferral
	hasMatch := false
	for _, d := range deferrals {
		if d.Rule != r.Name() {
			continue
		}
		mine = append(mine, d)
		if d.Kind == condKindMatch {
			hasMatch = true
		}
	}
	if len(mine) == 0 {
		return FinalNotApplicable()
	}
	var keep []*ir.Node
	for _, d := range mine {
		if hasMatch && d.Kind == condKindDefault {
			continue
		}
		keep = append(keep, d.Value)
	}
	if debug.Finalize() {
		debug.Logf("conditional finalize: %d deferred, %d kept, match=%v\n",
			len(mine), len(keep), hasMatch)
	}
	return FinalEdit(keep...)
}
