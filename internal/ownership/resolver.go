// Package ownership models the polymorphic "managed by" relationship of an
// agent. An agent is owned by exactly one franchise or one relationship
// manager; which one, and whether the caller may change it, depends on the
// acting user's role and on how complete the stored record is.
package ownership

import (
	"strings"

	"github.com/shrawani1619/ykc-finserv-sub001/internal/identity"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"
)

// Kind discriminates the owner union.
type Kind string

const (
	KindFranchise           Kind = "franchise"
	KindRelationshipManager Kind = "relationship_manager"
)

// Valid reports whether k is a known owner kind.
func (k Kind) Valid() bool {
	return k == KindFranchise || k == KindRelationshipManager
}

// Label is the human-readable name used in validation messages.
func (k Kind) Label() string {
	if k == KindRelationshipManager {
		return "Relationship Manager"
	}
	return "Franchise"
}

// Owner is the resolved ownership of an agent: exactly one kind, one id.
type Owner struct {
	Kind Kind         `json:"kind"`
	ID   identity.Key `json:"id"`
}

// SetKind switches the owner kind. Switching kinds invalidates the previous
// selection, so the id is cleared; the caller must pick again.
func (o *Owner) SetKind(k Kind) {
	if o.Kind == k {
		return
	}
	o.Kind = k
	o.ID = identity.Empty
}

// Role is the acting user's role, threaded in explicitly by the caller.
// It is never read from ambient session state inside this package.
type Role string

const (
	RoleAdmin               Role = "admin"
	RoleFranchise           Role = "franchise"
	RoleRelationshipManager Role = "relationship_manager"
)

// Actor identifies the acting user for role-based defaulting.
type Actor struct {
	ID        types.EntityRef
	Franchise types.EntityRef
}

// AgentOwnership is the raw ownership portion of a stored agent record.
// Legacy rows may carry the franchise reference in Franchise with no
// discriminator; newer rows set ManagedByModel plus ManagedBy.
type AgentOwnership struct {
	ManagedByModel string          `json:"managedByModel"`
	ManagedBy      types.EntityRef `json:"managedBy"`
	Franchise      types.EntityRef `json:"franchise"`
}

// Resolution is the outcome of defaulting: the owner plus whether the caller
// may still change it.
type Resolution struct {
	Owner    Owner
	Editable bool
}

// DefaultOwner computes the initial owner for an agent form. First match
// wins:
//
//  1. fixed context injected by a parent workflow — used verbatim, locked
//  2. existing record (edit mode) — derived from its ownership fields
//  3. franchise actor — their own franchise, locked
//  4. relationship-manager actor — themselves, locked
//  5. unset, kind franchise, caller must pick
func DefaultOwner(role Role, actor Actor, existing *AgentOwnership, fixed *Owner) Resolution {
	if fixed != nil {
		return Resolution{Owner: *fixed, Editable: false}
	}

	if existing != nil {
		return Resolution{Owner: fromExisting(existing), Editable: true}
	}

	switch role {
	case RoleFranchise:
		return Resolution{
			Owner:    Owner{Kind: KindFranchise, ID: identity.KeyOf(actor.Franchise)},
			Editable: false,
		}
	case RoleRelationshipManager:
		return Resolution{
			Owner:    Owner{Kind: KindRelationshipManager, ID: identity.KeyOf(actor.ID)},
			Editable: false,
		}
	}

	return Resolution{Owner: Owner{Kind: KindFranchise}, Editable: true}
}

// fromExisting derives the owner from a stored record. When the
// discriminator is missing the record predates the union: a populated
// legacy franchise field means franchise ownership, and franchise is also
// the default when nothing at all is populated.
func fromExisting(e *AgentOwnership) Owner {
	switch normalizeKind(e.ManagedByModel) {
	case KindRelationshipManager:
		return Owner{
			Kind: KindRelationshipManager,
			ID:   identity.FirstKey(e.ManagedBy, e.Franchise),
		}
	case KindFranchise:
		return Owner{
			Kind: KindFranchise,
			ID:   identity.FirstKey(e.ManagedBy, e.Franchise),
		}
	}

	if !e.Franchise.IsZero() {
		return Owner{Kind: KindFranchise, ID: identity.KeyOf(e.Franchise)}
	}
	return Owner{Kind: KindFranchise, ID: identity.FirstKey(e.ManagedBy)}
}

// normalizeKind maps the stored discriminator strings (including the
// model-name spellings older records carry) onto a Kind.
func normalizeKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "franchise":
		return KindFranchise
	case "relationshipmanager", "relationship_manager":
		return KindRelationshipManager
	}
	return ""
}

// Candidate is a pickable owner shown by the search UI.
type Candidate struct {
	ID   types.EntityRef `json:"id"`
	Name string          `json:"name"`
}

// ResolveSearch opportunistically adopts an id from free search text typed
// but never clicked: if the text matches exactly one candidate by
// case-insensitive name, that candidate's id is used. Anything else — no
// match, or several candidates folding to the same name — leaves the owner
// untouched and validation will catch the empty id.
func ResolveSearch(owner Owner, search string, candidates []Candidate) Owner {
	if !owner.ID.IsEmpty() {
		return owner
	}
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return owner
	}

	var match *Candidate
	for i := range candidates {
		if strings.ToLower(strings.TrimSpace(candidates[i].Name)) == needle {
			if match != nil {
				return owner
			}
			match = &candidates[i]
		}
	}
	if match != nil {
		owner.ID = identity.KeyOf(match.ID)
	}
	return owner
}

// Validate rejects an owner whose id is still empty after resolution. The
// error is a field-level validation error labeled for the selected kind.
func Validate(owner Owner) error {
	if !owner.Kind.Valid() {
		return types.FieldError("managedByModel", "Owner type must be Franchise or Relationship Manager")
	}
	if owner.ID.IsEmpty() {
		return types.FieldError("managedBy", owner.Kind.Label()+" is required")
	}
	return nil
}
