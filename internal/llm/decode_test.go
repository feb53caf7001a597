package llm

import "testing"

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `{"name":"a"}`, "a"},
		{"fenced", "```json\n{\"name\":\"b\"}\n```", "b"},
		{"fenced no lang", "```\n{\"name\":\"c\"}\n```", "c"},
		{"prose around object", "Sure! Here you go:\n{\"name\":\"d\"}\nHope that helps.", "d"},
		{"whitespace", "  \n {\"name\":\"e\"} \n ", "e"},
	}
	for _, c := range cases {
		var p payload
		if err := DecodeJSON(c.raw, &p); err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if p.Name != c.want {
			t.Fatalf("%s: got %q, want %q", c.name, p.Name, c.want)
		}
	}
}

func TestDecodeJSONArray(t *testing.T) {
	var out []string
	raw := "```json\n[\"x\",\"y\"]\n```"
	if err := DecodeJSON(raw, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0] != "x" || out[1] != "y" {
		t.Fatalf("unexpected slice: %+v", out)
	}
}

func TestDecodeJSONFailures(t *testing.T) {
	var v map[string]any
	if err := DecodeJSON("no json here at all", &v); err == nil {
		t.Fatalf("expected error for payload without JSON")
	}
	if err := DecodeJSON("{\"broken\": ", &v); err == nil {
		t.Fatalf("expected error for truncated JSON")
	}
}
