package jsonedit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsonedit/go-jsonedit/ir"
	"github.com/jsonedit/go-jsonedit/parse"
	"github.com/jsonedit/go-jsonedit/rules"
)

func TestMergeObjectInPlace(t *testing.T) {
	tests := []struct {
		name   string
		target string
		src    string
		want   string
		opts   []Option
	}{
		{
			name:   "disjoint keys",
			target: `{"a": 1}`,
			src:    `{"b": 2}`,
			want:   `{"a":1,"b":2}`,
		},
		{
			name:   "scalar overwrite keeps position",
			target: `{"a": 1, "b": 2}`,
			src:    `{"a": "one"}`,
			want:   `{"a":"one","b":2}`,
		},
		{
			name:   "deep object merge",
			target: `{"svc": {"host": "old", "port": 80}}`,
			src:    `{"svc": {"host": "new", "tls": true}}`,
			want:   `{"svc":{"host":"new","port":80,"tls":true}}`,
		},
		{
			name:   "object replaces scalar",
			target: `{"a": 1}`,
			src:    `{"a": {"b": 2}}`,
			want:   `{"a":{"b":2}}`,
		},
		{
			name:   "scalar replaces object",
			target: `{"a": {"b": 2}}`,
			src:    `{"a": 1}`,
			want:   `{"a":1}`,
		},
		{
			name:   "arrays append by default",
			target: `{"a": [1, 2]}`,
			src:    `{"a": [3]}`,
			want:   `{"a":[1,2,3]}`,
		},
		{
			name:   "array replaces non-array",
			target: `{"a": 1}`,
			src:    `{"a": [3]}`,
			want:   `{"a":[3]}`,
		},
		{
			name:   "arrays replace when configured",
			target: `{"a": [1, 2]}`,
			src:    `{"a": [3]}`,
			want:   `{"a":[3]}`,
			opts:   []Option{WithArrayMerge(rules.ArrayReplace)},
		},
		{
			name:   "null overwrites by default",
			target: `{"a": 1}`,
			src:    `{"a": null}`,
			want:   `{"a":null}`,
		},
		{
			name:   "null deletes when configured",
			target: `{"a": 1, "b": 2}`,
			src:    `{"a": null}`,
			want:   `{"b":2}`,
			opts:   []Option{WithNullAsDelete(true)},
		},
		{
			name:   "null delete of a missing key",
			target: `{"b": 2}`,
			src:    `{"a": null}`,
			want:   `{"b":2}`,
			opts:   []Option{WithNullAsDelete(true)},
		},
		{
			name:   "dangerous keys skipped",
			target: `{"a": 1}`,
			src:    `{"__proto__": {"x": 1}, "b": 2}`,
			want:   `{"a":1,"b":2}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEditor(t, tt.opts...)
			target := parse.MustParse(tt.target)
			got, err := e.MergeObjectInPlace(target, parse.MustParse(tt.src), nil)
			if err != nil {
				t.Fatal(err)
			}
			if got != target {
				t.Error("merge did not return its target")
			}
			if compact(got) != tt.want {
				t.Errorf("got %s, want %s", compact(got), tt.want)
			}
		})
	}
}

func TestMergeValidatesArguments(t *testing.T) {
	e := mustEditor(t)
	obj := parse.MustParse(`{}`)
	if _, err := e.MergeObjectInPlace(parse.MustParse(`[1]`), obj, nil); err == nil {
		t.Error("array target accepted")
	}
	if _, err := e.MergeObjectInPlace(obj, parse.MustParse(`1`), nil); err == nil {
		t.Error("scalar source accepted")
	}
	if _, err := e.MergeObjectInPlace(nil, obj, nil); err == nil {
		t.Error("nil target accepted")
	}
	if _, err := e.MergeObjectInPlace(obj, nil, nil); err == nil {
		t.Error("nil source accepted")
	}
}

func TestMergeObjectsInPlace(t *testing.T) {
	e := mustEditor(t)
	target := parse.MustParse(`{"a": 1}`)
	got, err := e.MergeObjectsInPlace(target,
		parse.MustParse(`{"b": 2}`),
		parse.MustParse(`{"a": 10, "c": 3}`),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":10,"b":2,"c":3}`
	if compact(got) != want {
		t.Errorf("got %s, want %s", compact(got), want)
	}
}

func TestMergeNew(t *testing.T) {
	e := mustEditor(t)
	a := parse.MustParse(`{"x": 1}`)
	b := parse.MustParse(`{"y": 2}`)
	got, err := e.MergeNew(nil, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if compact(got) != `{"x":1,"y":2}` {
		t.Errorf("got %s", compact(got))
	}
	// sources are untouched
	if compact(a) != `{"x":1}` || compact(b) != `{"y":2}` {
		t.Error("MergeNew mutated a source")
	}
}

func TestMergeAssociativeUnderAppend(t *testing.T) {
	e := mustEditor(t)
	docs := []string{
		`{"a": [1], "o": {"x": 1}}`,
		`{"a": [2], "o": {"y": 2}}`,
		`{"a": [3], "o": {"x": 10}}`,
	}
	nodes := func() []*ir.Node {
		res := make([]*ir.Node, len(docs))
		for i, d := range docs {
			res[i] = parse.MustParse(d)
		}
		return res
	}

	all := nodes()
	left, err := e.MergeNew(nil, all...)
	if err != nil {
		t.Fatal(err)
	}

	all = nodes()
	ab, err := e.MergeNew(nil, all[0], all[1])
	if err != nil {
		t.Fatal(err)
	}
	right, err := e.MergeNew(nil, ab, all[2])
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ir.ToAny(left), ir.ToAny(right)); diff != "" {
		t.Errorf("grouping changed the result (-all +paired):\n%s", diff)
	}
}

func TestMergeInheritedProperties(t *testing.T) {
	e := mustEditor(t)
	src := &ir.Node{
		Type:   ir.ObjectType,
		Fields: []*ir.Node{ir.FromInt(1)},
		Values: []*ir.Node{ir.FromInt(2)},
	}
	_, err := e.MergeObjectInPlace(parse.MustParse(`{}`), src, nil)
	if err == nil || !strings.Contains(err.Error(), "inherited properties") {
		t.Errorf("got %v, want inherited properties error", err)
	}
}

func TestMergeShortCircuits(t *testing.T) {
	e := mustEditor(t)
	target := parse.MustParse(`{}`)
	bad := parse.MustParse(`{"{{ 1 +* }}": {"x": 1}}`)
	_, err := e.MergeObjectsInPlace(target,
		parse.MustParse(`{"a": 1}`),
		bad,
		parse.MustParse(`{"c": 3}`),
	)
	if err == nil {
		t.Fatal("bad source accepted")
	}
	// the first source landed, the third never ran
	if ir.Get(target, "a") == nil {
		t.Error("first source was not merged")
	}
	if ir.Get(target, "c") != nil {
		t.Error("source after the failure was merged")
	}
}

func TestMergeMultiValue(t *testing.T) {
	e := mustEditor(t)
	target := parse.MustParse(`{}`)
	src := parse.MustParse(`{"*region=us,eu": {"{{region}}-endpoint": "https://{{region}}.api"}}`)
	got, err := e.MergeObjectInPlace(target, src, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"us-endpoint":"https://us.api","eu-endpoint":"https://eu.api"}`
	if compact(got) != want {
		t.Errorf("got %s, want %s", compact(got), want)
	}
}

func TestMergeReferenceProperty(t *testing.T) {
	refs, err := NewSimpleMap(map[string]*ir.Node{
		"db": parse.MustParse(`{"host": "{{env}}.db.local", "port": 5432}`),
	}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	e := mustEditor(t, WithRefs(refs), WithVars(rules.Vars{"env": "prod"}))

	t.Run("default selector spreads the object", func(t *testing.T) {
		got, err := e.MergeNew(nil, parse.MustParse(`{"db": "default", "extra": 1}`))
		if err != nil {
			t.Fatal(err)
		}
		want := `{"host":"prod.db.local","port":5432,"extra":1}`
		if compact(got) != want {
			t.Errorf("got %s, want %s", compact(got), want)
		}
	})

	t.Run("object selector overrides variables", func(t *testing.T) {
		got, err := e.MergeNew(nil, parse.MustParse(`{"db": {"env": "staging"}}`))
		if err != nil {
			t.Fatal(err)
		}
		want := `{"host":"staging.db.local","port":5432}`
		if compact(got) != want {
			t.Errorf("got %s, want %s", compact(got), want)
		}
	})
}

func TestMergeConditionalAcrossSources(t *testing.T) {
	// each source object finalizes its own branches
	e := mustEditor(t, WithVars(rules.Vars{"tier": "gold"}))
	got, err := e.MergeNew(nil,
		parse.MustParse(`{"?{{tier}}=gold": {"limit": 100}, "?default": {"limit": 10}}`),
		parse.MustParse(`{"?{{tier}}=silver": {"burst": 5}, "?default": {"burst": 1}}`),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"limit":100,"burst":1}`
	if compact(got) != want {
		t.Errorf("got %s, want %s", compact(got), want)
	}
}

func TestMergeNestedConditionalScope(t *testing.T) {
	// branches finalize per containing object, not per document
	e := mustEditor(t, WithVars(rules.Vars{"env": "prod"}))
	got, err := e.MergeNew(nil, parse.MustParse(`{
		"outer": {"?{{env}}=prod": {"a": 1}, "?default": {"a": 0}},
		"?default": {"b": 2}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"outer":{"a":1},"b":2}`
	if compact(got) != want {
		t.Errorf("got %s, want %s", compact(got), want)
	}
}

func TestMergeValidationPolicies(t *testing.T) {
	src := `{"{{empty}}": 1, "ok": 2}`

	strict := mustEditor(t, WithVars(rules.Vars{"empty": ""}))
	if _, err := strict.MergeNew(nil, parse.MustParse(src)); err == nil {
		t.Error("empty rendered name accepted under the error policy")
	}

	lax := mustEditor(t,
		WithVars(rules.Vars{"empty": ""}),
		WithValidation(rules.Validation{
			OnInvalidPropertyName:    rules.PolicyIgnore,
			OnInvalidPropertyValue:   rules.PolicyError,
			OnUndefinedPropertyValue: rules.PolicyIgnore,
		}))
	got, err := lax.MergeNew(nil, parse.MustParse(src))
	if err != nil {
		t.Fatal(err)
	}
	if compact(got) != `{"ok":2}` {
		t.Errorf("got %s, want the bad property dropped", compact(got))
	}
}
