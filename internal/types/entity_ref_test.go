package types_test

import (
	"encoding/json"
	"testing"

	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"
)

// TestEntityRefUnmarshal verifies the wire shapes a reference field can
// arrive in
func TestEntityRefUnmarshal(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		wantID   string
		wantName string
	}{
		{"plain string", `"abc123"`, "abc123", ""},
		{"integer", `42`, "42", ""},
		{"integral float", `42.0`, "42", ""},
		{"object with _id", `{"_id":"abc123","name":"Pune Central"}`, "abc123", "Pune Central"},
		{"object with id", `{"id":"abc123"}`, "abc123", ""},
		{"object _id wins", `{"_id":"abc123","id":"other"}`, "abc123", ""},
		{"object numeric id", `{"id":42}`, "42", ""},
		{"null", `null`, "", ""},
		{"empty object", `{}`, "", ""},
		{"malformed shape degrades", `[1,2,3]`, "", ""},
		{"boolean degrades", `true`, "", ""},
	}

	for _, tc := range cases {
		var ref types.EntityRef
		if err := json.Unmarshal([]byte(tc.input), &ref); err != nil {
			t.Errorf("%s: unmarshal failed: %v", tc.name, err)
			continue
		}
		if ref.ID != tc.wantID {
			t.Errorf("%s: ID = %q, want %q", tc.name, ref.ID, tc.wantID)
		}
		if ref.Name != tc.wantName {
			t.Errorf("%s: Name = %q, want %q", tc.name, ref.Name, tc.wantName)
		}
	}
}

// TestEntityRefInStruct verifies a malformed reference does not fail the
// surrounding record
func TestEntityRefInStruct(t *testing.T) {
	var rec struct {
		Agent types.EntityRef `json:"agent"`
		Name  string          `json:"name"`
	}
	if err := json.Unmarshal([]byte(`{"agent":{"nested":{"deep":true}},"name":"kept"}`), &rec); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !rec.Agent.IsZero() {
		t.Errorf("Agent = %+v, want zero", rec.Agent)
	}
	if rec.Name != "kept" {
		t.Errorf("Name = %q, want %q", rec.Name, "kept")
	}
}
