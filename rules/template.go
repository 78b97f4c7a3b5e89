package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/jsonedit/go-jsonedit/debug"
	"github.com/jsonedit/go-jsonedit/ir"
)

// TemplateMarker starts an interpolation in keys and string values.
const TemplateMarker = "{{"

const templateClose = "}}"

// Template renders {{expr}} interpolations in property names and
// string values against the state's template variables, falling back
// to the rule's default context when the state carries none.
type Template struct {
	Base
	RenderNames  bool
	RenderValues bool
	Defaults     *Context
}

func NewTemplate(defaults *Context) *Template {
	return &Template{
		RenderNames:  true,
		RenderValues: true,
		Defaults:     defaults,
	}
}

func (r *Template) Name() string { return "template" }

func (r *Template) vars(st *State) Vars {
	if v := st.Vars(); v != nil {
		return v
	}
	if r.Defaults != nil {
		return r.Defaults.Vars
	}
	return nil
}

func (r *Template) EditProperty(key string, value *ir.Node, st *State) Outcome {
	if !r.RenderNames || !strings.Contains(key, TemplateMarker) {
		return NotApplicable()
	}
	rendered, err := Render(key, r.vars(st))
	if err != nil {
		return Fail(err)
	}
	if rendered == key {
		// an unterminated marker renders to itself; claiming the edit
		// would loop
		return NotApplicable()
	}
	if debug.Rule() {
		debug.Logf("template key %q -> %q\n", key, rendered)
	}
	if rendered == "" {
		return st.InvalidPropertyName(key, errors.New("renders to an empty string"))
	}
	return Edit(ir.FromKeyVals([]ir.KeyVal{{
		Key: ir.FromString(rendered),
		Val: value,
	}}))
}

func (r *Template) EditValue(value *ir.Node, st *State) Outcome {
	if !r.RenderValues || value == nil || value.Type != ir.StringType {
		return NotApplicable()
	}
	if !strings.Contains(value.String, TemplateMarker) {
		return NotApplicable()
	}
	rendered, err := Render(value.String, r.vars(st))
	if err != nil {
		return Fail(err)
	}
	if rendered == value.String {
		return NotApplicable()
	}
	if debug.Rule() {
		debug.Logf("template value %q -> %q\n", value.String, rendered)
	}
	return Edit(ir.FromString(rendered))
}

// Render expands {{expr}} interpolations in s, evaluating the inner
// text against vars. A nil result renders as the empty string; an
// unterminated {{ is kept literally.
func Render(s string, vars Vars) (string, error) {
	if !strings.Contains(s, TemplateMarker) {
		return s, nil
	}
	var out strings.Builder
	for {
		i := strings.Index(s, TemplateMarker)
		if i < 0 {
			out.WriteString(s)
			break
		}
		out.WriteString(s[:i])
		rest := s[i+len(TemplateMarker):]
		j := strings.Index(rest, templateClose)
		if j < 0 {
			out.WriteString(s[i:])
			break
		}
		src := strings.TrimSpace(rest[:j])
		x, err := evalTemplate(src, vars)
		if err != nil {
			return "", fmt.Errorf("error evaluating %q: %w", src, err)
		}
		out.WriteString(templateString(x))
		s = rest[j+len(templateClose):]
	}
	return out.String(), nil
}

func evalTemplate(src string, vars Vars) (any, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	env := map[string]any(vars)
	if env == nil {
		env = map[string]any{}
	}
	return expr.Run(prg, env)
}

func templateString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
