package ownership_test

import (
	"testing"

	"github.com/shrawani1619/ykc-finserv-sub001/internal/ownership"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"
)

func TestDefaultOwnerFixedContextWins(t *testing.T) {
	fixed := &ownership.Owner{Kind: ownership.KindRelationshipManager, ID: "rm-1"}
	actor := ownership.Actor{Franchise: types.EntityRef{ID: "fr-1"}}

	res := ownership.DefaultOwner(ownership.RoleFranchise, actor, nil, fixed)
	if res.Owner != *fixed {
		t.Errorf("Owner = %+v, want %+v", res.Owner, *fixed)
	}
	if res.Editable {
		t.Error("fixed context must not be editable")
	}
}

func TestDefaultOwnerExistingRecord(t *testing.T) {
	cases := []struct {
		name     string
		existing ownership.AgentOwnership
		want     ownership.Owner
	}{
		{
			"discriminated rm",
			ownership.AgentOwnership{ManagedByModel: "relationship_manager", ManagedBy: types.EntityRef{ID: "rm-1"}},
			ownership.Owner{Kind: ownership.KindRelationshipManager, ID: "rm-1"},
		},
		{
			"model-name spelling",
			ownership.AgentOwnership{ManagedByModel: "RelationshipManager", ManagedBy: types.EntityRef{ID: "rm-1"}},
			ownership.Owner{Kind: ownership.KindRelationshipManager, ID: "rm-1"},
		},
		{
			"discriminated franchise",
			ownership.AgentOwnership{ManagedByModel: "franchise", ManagedBy: types.EntityRef{ID: "fr-1"}},
			ownership.Owner{Kind: ownership.KindFranchise, ID: "fr-1"},
		},
		{
			"legacy franchise field only",
			ownership.AgentOwnership{Franchise: types.EntityRef{ID: "fr-legacy"}},
			ownership.Owner{Kind: ownership.KindFranchise, ID: "fr-legacy"},
		},
		{
			"nothing populated",
			ownership.AgentOwnership{},
			ownership.Owner{Kind: ownership.KindFranchise},
		},
	}

	for _, tc := range cases {
		res := ownership.DefaultOwner(ownership.RoleAdmin, ownership.Actor{}, &tc.existing, nil)
		if res.Owner != tc.want {
			t.Errorf("%s: Owner = %+v, want %+v", tc.name, res.Owner, tc.want)
		}
		if !res.Editable {
			t.Errorf("%s: existing record default must stay editable", tc.name)
		}
	}
}

func TestDefaultOwnerRoleDefaults(t *testing.T) {
	actor := ownership.Actor{
		ID:        types.EntityRef{ID: "me"},
		Franchise: types.EntityRef{ID: "my-franchise"},
	}

	res := ownership.DefaultOwner(ownership.RoleFranchise, actor, nil, nil)
	want := ownership.Owner{Kind: ownership.KindFranchise, ID: "my-franchise"}
	if res.Owner != want || res.Editable {
		t.Errorf("franchise actor: got %+v editable=%v", res.Owner, res.Editable)
	}

	res = ownership.DefaultOwner(ownership.RoleRelationshipManager, actor, nil, nil)
	want = ownership.Owner{Kind: ownership.KindRelationshipManager, ID: "me"}
	if res.Owner != want || res.Editable {
		t.Errorf("rm actor: got %+v editable=%v", res.Owner, res.Editable)
	}

	res = ownership.DefaultOwner(ownership.RoleAdmin, actor, nil, nil)
	want = ownership.Owner{Kind: ownership.KindFranchise}
	if res.Owner != want || !res.Editable {
		t.Errorf("admin: got %+v editable=%v", res.Owner, res.Editable)
	}
}

// TestSetKindClearsSelection verifies switching kinds drops the previous id
// while re-selecting the same kind keeps it
func TestSetKindClearsSelection(t *testing.T) {
	owner := ownership.Owner{Kind: ownership.KindFranchise, ID: "fr-1"}

	owner.SetKind(ownership.KindFranchise)
	if owner.ID != "fr-1" {
		t.Errorf("same-kind SetKind cleared id: %+v", owner)
	}

	owner.SetKind(ownership.KindRelationshipManager)
	if owner.Kind != ownership.KindRelationshipManager {
		t.Errorf("Kind = %q after switch", owner.Kind)
	}
	if !owner.ID.IsEmpty() {
		t.Errorf("id survived a kind switch: %q", owner.ID)
	}
}

func TestResolveSearch(t *testing.T) {
	candidates := []ownership.Candidate{
		{ID: types.EntityRef{ID: "fr-1"}, Name: "Pune Central"},
		{ID: types.EntityRef{ID: "fr-2"}, Name: "Nashik Road"},
		{ID: types.EntityRef{ID: "fr-3"}, Name: "Duplicate"},
		{ID: types.EntityRef{ID: "fr-4"}, Name: "duplicate"},
	}
	base := ownership.Owner{Kind: ownership.KindFranchise}

	got := ownership.ResolveSearch(base, "  pune central ", candidates)
	if got.ID != "fr-1" {
		t.Errorf("unique match: ID = %q, want fr-1", got.ID)
	}

	got = ownership.ResolveSearch(base, "duplicate", candidates)
	if !got.ID.IsEmpty() {
		t.Errorf("ambiguous match adopted an id: %q", got.ID)
	}

	got = ownership.ResolveSearch(base, "nowhere", candidates)
	if !got.ID.IsEmpty() {
		t.Errorf("no match adopted an id: %q", got.ID)
	}

	picked := ownership.Owner{Kind: ownership.KindFranchise, ID: "fr-2"}
	got = ownership.ResolveSearch(picked, "Pune Central", candidates)
	if got.ID != "fr-2" {
		t.Errorf("search overrode an explicit pick: %q", got.ID)
	}
}

func TestValidate(t *testing.T) {
	err := ownership.Validate(ownership.Owner{Kind: ownership.KindFranchise})
	if err == nil {
		t.Fatal("empty franchise owner passed validation")
	}
	custom, ok := err.(*types.CustomError)
	if !ok {
		t.Fatalf("error type %T, want *types.CustomError", err)
	}
	if custom.Field != "managedBy" {
		t.Errorf("Field = %q, want managedBy", custom.Field)
	}
	if custom.Message != "Franchise is required" {
		t.Errorf("Message = %q", custom.Message)
	}

	err = ownership.Validate(ownership.Owner{Kind: ownership.KindRelationshipManager})
	if err == nil || err.(*types.CustomError).Message != "Relationship Manager is required" {
		t.Errorf("rm message wrong: %v", err)
	}

	if err := ownership.Validate(ownership.Owner{Kind: ownership.KindFranchise, ID: "fr-1"}); err != nil {
		t.Errorf("valid owner rejected: %v", err)
	}

	if err := ownership.Validate(ownership.Owner{Kind: "bank", ID: "b-1"}); err == nil {
		t.Error("unknown kind passed validation")
	}
}
