package identity_test

import (
	"encoding/json"
	"testing"

	"github.com/shrawani1619/ykc-finserv-sub001/internal/identity"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"
)

// TestKeyOfShapes verifies every reference shape collapses to the same key
func TestKeyOfShapes(t *testing.T) {
	cases := []struct {
		name string
		ref  any
		want identity.Key
	}{
		{"string", "abc123", "abc123"},
		{"int", 42, "42"},
		{"int64", int64(42), "42"},
		{"integral float", float64(42), "42"},
		{"fractional float", 42.5, "42.5"},
		{"json number", json.Number("42"), "42"},
		{"entity ref", types.EntityRef{ID: "abc123", Name: "Someone"}, "abc123"},
		{"entity ref pointer", &types.EntityRef{ID: "abc123"}, "abc123"},
		{"nil entity ref pointer", (*types.EntityRef)(nil), ""},
		{"map with _id", map[string]any{"_id": "abc123", "name": "Someone"}, "abc123"},
		{"map with id", map[string]any{"id": "abc123"}, "abc123"},
		{"map _id wins over id", map[string]any{"_id": "abc123", "id": "other"}, "abc123"},
		{"map empty _id falls to id", map[string]any{"_id": "", "id": "abc123"}, "abc123"},
		{"map numeric id", map[string]any{"id": float64(42)}, "42"},
		{"nil", nil, ""},
		{"empty string", "", ""},
	}

	for _, tc := range cases {
		if got := identity.KeyOf(tc.ref); got != tc.want {
			t.Errorf("%s: KeyOf(%v) = %q, want %q", tc.name, tc.ref, got, tc.want)
		}
	}
}

// TestEqualMixedShapes verifies mixed representations of the same record
// compare equal
func TestEqualMixedShapes(t *testing.T) {
	same := []any{
		"42",
		42,
		float64(42),
		json.Number("42"),
		types.EntityRef{ID: "42", Name: "The Answer"},
		map[string]any{"_id": "42"},
		map[string]any{"id": float64(42)},
	}
	for i, a := range same {
		for j, b := range same {
			if !identity.Equal(a, b) {
				t.Errorf("Equal(same[%d], same[%d]) = false for %v vs %v", i, j, a, b)
			}
		}
	}

	if identity.Equal("42", "43") {
		t.Error("distinct ids compared equal")
	}
}

// TestEqualEmptyNeverMatches verifies two absent references are not the
// same record
func TestEqualEmptyNeverMatches(t *testing.T) {
	empties := []any{nil, "", types.EntityRef{}, map[string]any{}}
	for i, a := range empties {
		for j, b := range empties {
			if identity.Equal(a, b) {
				t.Errorf("Equal(empties[%d], empties[%d]) = true", i, j)
			}
		}
	}
	if identity.Equal("", "abc") || identity.Equal("abc", nil) {
		t.Error("empty reference matched a populated one")
	}
}

// TestFirstKey verifies the owner field fallback chain
func TestFirstKey(t *testing.T) {
	got := identity.FirstKey(nil, "", types.EntityRef{}, "winner", "loser")
	if got != "winner" {
		t.Errorf("FirstKey = %q, want %q", got, "winner")
	}
	if got := identity.FirstKey(nil, ""); !got.IsEmpty() {
		t.Errorf("FirstKey over empties = %q, want empty", got)
	}
}
