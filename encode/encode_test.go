package encode

import (
	"strings"
	"testing"

	"github.com/jsonedit/go-jsonedit/parse"
)

func TestEncodeCompact(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"null", "null", "null"},
		{"bool", "false", "false"},
		{"int", "7", "7"},
		{"string", `"a"`, `"a"`},
		{"empty array", "[]", "[]"},
		{"empty object", "{}", "{}"},
		{"array", "[1, 2]", "[1,2]"},
		{"object", `{"b": 1, "a": 2}`, `{"b":1,"a":2}`},
		{"nested", `{"a": {"b": [1, null]}}`, `{"a":{"b":[1,null]}}`},
		{"escaped string", `{"a": "x\ny"}`, `{"a":"x\ny"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustString(parse.MustParse(tt.in), Compact())
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeIndented(t *testing.T) {
	doc := parse.MustParse(`{"a": [1, 2], "b": "x"}`)
	want := "{\n  \"a\": [\n    1,\n    2\n  ],\n  \"b\": \"x\"\n}"
	got := MustString(doc)
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeIndentOption(t *testing.T) {
	doc := parse.MustParse(`{"a": 1}`)
	want := "{\n    \"a\": 1\n}"
	got := MustString(doc, Indent(4))
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeColorsEscape(t *testing.T) {
	c := NewColors()
	doc := parse.MustParse(`{"pct": "100%"}`)
	got := MustString(doc, Compact(), EncodeColors(c))
	if got == "" {
		t.Fatal("empty colored output")
	}
	// The %-escaping wrap must not corrupt literal percent signs.
	if !strings.Contains(got, "100%") {
		t.Errorf("lost literal %% in %q", got)
	}
}
