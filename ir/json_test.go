package ir

import (
	"encoding/json"
	"testing"
)

func TestMarshalJSONOrder(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"null", Null(), "null"},
		{"bool", FromBool(true), "true"},
		{"int", FromInt(42), "42"},
		{"float", FromFloat(1.5), "1.5"},
		{"lexeme", &Node{Type: NumberType, Number: "1e3"}, "1e3"},
		{"string", FromString("a\nb"), `"a\nb"`},
		{"array", FromSlice([]*Node{FromInt(1), FromString("x")}), `[1,"x"]`},
		{
			"object keeps insertion order",
			FromKeyVals([]KeyVal{
				{Key: FromString("zebra"), Val: FromInt(1)},
				{Key: FromString("apple"), Val: FromInt(2)},
			}),
			`{"zebra":1,"apple":2}`,
		},
		{
			"nested",
			FromKeyVals([]KeyVal{
				{Key: FromString("a"), Val: FromSlice([]*Node{
					FromKeyVals([]KeyVal{{Key: FromString("b"), Val: Null()}}),
				})},
			}),
			`{"a":[{"b":null}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := json.Marshal(tt.node)
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tt.want {
				t.Errorf("got %s, want %s", d, tt.want)
			}
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"scalar", `12.5`},
		{"ordered object", `{"z":1,"a":{"m":[true,null,"s"]}}`},
		{"big int", `9007199254740993`},
		{"array of objects", `[{"b":2},{"a":1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Node
			if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
				t.Fatal(err)
			}
			d, err := json.Marshal(&n)
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tt.in {
				t.Errorf("round trip got %s, want %s", d, tt.in)
			}
		})
	}
}

func TestUnmarshalJSONErrors(t *testing.T) {
	// call UnmarshalJSON directly: json.Unmarshal pre-validates the
	// input and would mask the decoder's own trailing-content checks
	var n Node
	if err := n.UnmarshalJSON([]byte(`{"a": 1} 2`)); err == nil {
		t.Error("trailing content accepted")
	}
	if err := n.UnmarshalJSON([]byte(`{"a": 1} %`)); err == nil {
		t.Error("malformed trailing content accepted")
	}
	if err := n.UnmarshalJSON([]byte(`{`)); err == nil {
		t.Error("truncated document accepted")
	}
}
