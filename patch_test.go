package jsonedit

import (
	"testing"

	"github.com/jsonedit/go-jsonedit/parse"
)

func TestApplyPatch(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		patch string
		want  string
	}{
		{
			name:  "add",
			doc:   `{"a": 1}`,
			patch: `[{"op": "add", "path": "/b", "value": 2}]`,
			want:  `{"a":1,"b":2}`,
		},
		{
			name:  "replace",
			doc:   `{"a": 1, "b": 2}`,
			patch: `[{"op": "replace", "path": "/a", "value": "one"}]`,
			want:  `{"a":"one","b":2}`,
		},
		{
			name:  "remove",
			doc:   `{"a": 1, "b": 2}`,
			patch: `[{"op": "remove", "path": "/a"}]`,
			want:  `{"b":2}`,
		},
		{
			name:  "nested add",
			doc:   `{"o": {"x": 1}}`,
			patch: `[{"op": "add", "path": "/o/y", "value": [1, 2]}]`,
			want:  `{"o":{"x":1,"y":[1,2]}}`,
		},
		{
			name:  "array insert",
			doc:   `{"a": [1, 3]}`,
			patch: `[{"op": "add", "path": "/a/1", "value": 2}]`,
			want:  `{"a":[1,2,3]}`,
		},
		{
			name:  "move",
			doc:   `{"a": 1, "b": 2}`,
			patch: `[{"op": "move", "from": "/a", "path": "/c"}]`,
			want:  `{"b":2,"c":1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyPatch(parse.MustParse(tt.doc), []byte(tt.patch))
			if err != nil {
				t.Fatal(err)
			}
			if compact(got) != tt.want {
				t.Errorf("got %s, want %s", compact(got), tt.want)
			}
		})
	}
}

func TestApplyPatchErrors(t *testing.T) {
	doc := parse.MustParse(`{"a": 1}`)
	if _, err := ApplyPatch(doc, []byte(`{"not": "a patch"}`)); err == nil {
		t.Error("non-array patch accepted")
	}
	if _, err := ApplyPatch(doc, []byte(`[{"op": "test", "path": "/a", "value": 2}]`)); err == nil {
		t.Error("failing test op did not error")
	}
	if _, err := ApplyPatch(doc, []byte(`[{"op": "remove", "path": "/missing"}]`)); err == nil {
		t.Error("removing a missing path did not error")
	}
}
