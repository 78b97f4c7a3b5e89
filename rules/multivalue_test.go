package rules

import (
	"strings"
	"testing"

	"github.com/jsonedit/go-jsonedit/ir"
)

// renderClone is a minimal clone hook for rule-level tests: it clones
// structurally and renders {{expr}} interpolations in keys and string
// values against the context's variables.
func renderClone(v *ir.Node, ctx *Context) Outcome {
	var vars Vars
	if ctx != nil {
		vars = ctx.Vars
	}
	switch v.Type {
	case ir.StringType:
		if strings.Contains(v.String, TemplateMarker) {
			s, err := Render(v.String, vars)
			if err != nil {
				return Fail(err)
			}
			return Edit(ir.FromString(s))
		}
		return Edit(v.Clone())
	case ir.ObjectType:
		res := ir.NewObject()
		for i := range v.Fields {
			key, err := Render(v.Fields[i].String, vars)
			if err != nil {
				return Fail(err)
			}
			out := renderClone(v.Values[i], ctx)
			if out.Disposition != Edited {
				return out
			}
			res.SetField(key, out.Node)
		}
		return Edit(res)
	case ir.ArrayType:
		res := &ir.Node{Type: ir.ArrayType}
		for _, el := range v.Values {
			out := renderClone(el, ctx)
			if out.Disposition != Edited {
				return out
			}
			res.AppendValue(out.Node)
		}
		return Edit(res)
	default:
		return Edit(v.Clone())
	}
}

func TestParseMultiValue(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		wantName string
		wantVals []string
		wantErr  bool
	}{
		{name: "simple", spec: "region=us,eu", wantName: "region", wantVals: []string{"us", "eu"}},
		{name: "single value", spec: "x=a", wantName: "x", wantVals: []string{"a"}},
		{name: "spaces trimmed", spec: " x = a , b ", wantName: "x", wantVals: []string{"a", "b"}},
		{name: "empty entries dropped", spec: "x=a,,b,", wantName: "x", wantVals: []string{"a", "b"}},
		{name: "no equals", spec: "region", wantErr: true},
		{name: "empty name", spec: "=a,b", wantErr: true},
		{name: "no values", spec: "x=,", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, _, vals, err := parseMultiValue(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseMultiValue(%q) succeeded, want error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if len(vals) != len(tt.wantVals) {
				t.Fatalf("values = %v, want %v", vals, tt.wantVals)
			}
			for i := range vals {
				if vals[i] != tt.wantVals[i] {
					t.Errorf("value %d = %q, want %q", i, vals[i], tt.wantVals[i])
				}
			}
		})
	}
}

func TestMultiValueEditProperty(t *testing.T) {
	r := NewMultiValue()
	st := NewState(nil, nil, renderClone)

	body := ir.FromKeyVals([]ir.KeyVal{{
		Key: ir.FromString("{{region}}-url"),
		Val: ir.FromString("https://{{region}}.example.com"),
	}})
	out := r.EditProperty("*region=us,eu", body, st)
	if out.Disposition != Edited {
		t.Fatalf("got %v (%v), want edited", out.Disposition, out.Err)
	}
	if len(out.Node.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(out.Node.Fields))
	}
	for i, region := range []string{"us", "eu"} {
		wantKey := region + "-url"
		if out.Node.Fields[i].String != wantKey {
			t.Errorf("field %d = %q, want %q", i, out.Node.Fields[i].String, wantKey)
		}
		v := ir.Get(out.Node, wantKey)
		if v == nil || v.String != "https://"+region+".example.com" {
			t.Errorf("value for %q = %v", wantKey, v)
		}
	}
}

func TestMultiValueNotApplicable(t *testing.T) {
	r := NewMultiValue()
	st := NewState(nil, nil, renderClone)
	out := r.EditProperty("plain", ir.NewObject(), st)
	if out.Disposition != Inapplicable {
		t.Errorf("got %v, want inapplicable", out.Disposition)
	}
}

func TestMultiValueScalarBody(t *testing.T) {
	r := NewMultiValue()
	st := NewState(nil, nil, renderClone)
	out := r.EditProperty("*x=a", ir.FromString("scalar"), st)
	if out.Disposition != Failed {
		t.Errorf("scalar body: %v, want failed", out.Disposition)
	}
}

func TestMultiValueMalformedKey(t *testing.T) {
	r := NewMultiValue()
	st := NewState(nil, nil, renderClone)
	out := r.EditProperty("*region", ir.NewObject(), st)
	if out.Disposition != Failed {
		t.Errorf("malformed key: %v, want failed", out.Disposition)
	}

	opts := DefaultOptions()
	opts.Validation.OnInvalidPropertyName = PolicyIgnore
	st = NewState(opts, nil, renderClone)
	out = r.EditProperty("*region", ir.NewObject(), st)
	if out.Disposition != Ignored {
		t.Errorf("malformed key under ignore policy: %v, want ignored", out.Disposition)
	}
}
