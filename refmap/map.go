// Package refmap provides keyed collections of JSON values for the
// reference rule. Every key is validated against a KeyPolicy at
// construction time; a single bad key fails the whole build.
package refmap

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jsonedit/go-jsonedit/debug"
	"github.com/jsonedit/go-jsonedit/ir"
	"github.com/jsonedit/go-jsonedit/rules"
)

// Formatter renders a stored value through a full clone pass so
// lookups return values already rendered for the current context. The
// editor implements this.
type Formatter interface {
	CloneValue(v *ir.Node, ctx *rules.Context) rules.Outcome
}

// Map is a keyed lookup of JSON values. It implements rules.RefMap.
type Map struct {
	policy    KeyPolicy
	formatter Formatter
	base      *rules.Context
	keys      []string
	entries   map[string]*ir.Node
}

// New builds a map from a plain key-value record, storing keys in
// sorted order. The policy defaults to DefaultPolicy; the formatter
// may be nil, in which case lookups return plain structural clones.
func New(values map[string]*ir.Node, policy KeyPolicy, formatter Formatter, base *rules.Context) (*Map, error) {
	m := newMap(policy, formatter, base)
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if err := m.add(key, values[key]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewFromObject builds a map from an object node, keeping the node's
// field order.
func NewFromObject(obj *ir.Node, policy KeyPolicy, formatter Formatter, base *rules.Context) (*Map, error) {
	if obj == nil || obj.Type != ir.ObjectType {
		return nil, fmt.Errorf("reference map source must be an object")
	}
	m := newMap(policy, formatter, base)
	for i := range obj.Fields {
		if err := m.add(obj.Fields[i].String, obj.Values[i]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func newMap(policy KeyPolicy, formatter Formatter, base *rules.Context) *Map {
	if policy == nil {
		policy = DefaultPolicy{}
	}
	return &Map{
		policy:    policy,
		formatter: formatter,
		base:      base,
		entries:   map[string]*ir.Node{},
	}
}

func (m *Map) add(key string, v *ir.Node) error {
	stored, err := m.policy.Validate(key)
	if err != nil {
		return err
	}
	if _, present := m.entries[stored]; !present {
		m.keys = append(m.keys, stored)
	}
	m.entries[stored] = v
	return nil
}

func (m *Map) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// Resolve returns the formatted value stored at key. Unknown keys are
// an Inapplicable outcome; a value that fails to format is Failed.
func (m *Map) Resolve(key string, ctx *rules.Context) rules.Outcome {
	v, ok := m.entries[key]
	if !ok {
		return rules.NotApplicable()
	}
	if debug.Ref() {
		debug.Logf("refmap resolve %q\n", key)
	}
	if m.formatter == nil {
		return rules.Edit(v.Clone())
	}
	if ctx == nil {
		ctx = m.base
	}
	out := m.formatter.CloneValue(v, ctx)
	switch out.Disposition {
	case rules.Edited:
		return out
	case rules.Failed:
		return rules.Fail(fmt.Errorf("formatting reference %q: %w", key, out.Err))
	default:
		return rules.Failf("reference %q was filtered out during formatting", key)
	}
}

// ResolveObject is Resolve restricted to object values.
func (m *Map) ResolveObject(key string, ctx *rules.Context) rules.Outcome {
	out := m.Resolve(key, ctx)
	if out.Disposition != rules.Edited {
		return out
	}
	if out.Node.Type != ir.ObjectType {
		return rules.Failf("reference %q is not an object", key)
	}
	return out
}
