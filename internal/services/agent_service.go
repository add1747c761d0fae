package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/attachments"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/identity"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/models"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/ownership"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"
	"gorm.io/gorm"
)

// AgentInput is the create/update payload for an agent. Ownership fields
// mirror the wire shapes the console produces: an explicit discriminator
// plus reference, a legacy franchise reference, and the free-text search the
// user may have typed without picking a result.
type AgentInput struct {
	Name           string          `json:"name" validate:"required"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Phone          string          `json:"phone" validate:"omitempty,min=7,max=15"`
	Status         string          `json:"status"`
	ManagedByModel string          `json:"managedByModel"`
	ManagedBy      types.EntityRef `json:"managedBy"`
	Franchise      types.EntityRef `json:"franchise"`
	OwnerSearch    string          `json:"ownerSearch"`
	DraftID        string          `json:"draftId"`
}

// AgentService owns agent lifecycle: ownership resolution on create/update
// and draft flushing once the row exists.
type AgentService struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Drafts   *attachments.Registry
}

// AgentResult is a created/updated agent plus the documents committed for it.
type AgentResult struct {
	Agent     models.Agent       `json:"agent"`
	Documents []*models.Document `json:"documents,omitempty"`
}

// CreateAgent resolves ownership for the acting user, validates it, creates
// the agent and flushes any staged draft attachments against the new id.
// Create and flush are not atomic: the agent row survives even if every
// upload fails, and flush failures never fail the create.
func (s *AgentService) CreateAgent(ctx context.Context, role ownership.Role, actor ownership.Actor, fixed *ownership.Owner, input AgentInput) (*AgentResult, error) {
	if err := s.Validate.Struct(input); err != nil {
		return nil, types.FieldError("name", "Agent name and a valid email are required")
	}

	owner, err := s.resolveOwner(ctx, role, actor, nil, fixed, input)
	if err != nil {
		return nil, err
	}

	agent := models.Agent{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Status:         defaultStatus(input.Status),
		ManagedByModel: string(owner.Kind),
		ManagedByID:    owner.ID.String(),
	}
	if owner.Kind == ownership.KindFranchise {
		// Legacy readers still join on franchise_id.
		agent.FranchiseID = owner.ID.String()
	}

	if err := s.DB.WithContext(ctx).Create(&agent).Error; err != nil {
		return nil, err
	}

	result := &AgentResult{Agent: agent}
	if input.DraftID != "" {
		if stager, ok := s.Drafts.Get(input.DraftID); ok {
			result.Documents = stager.Flush(ctx, agent.ID)
			s.Drafts.Discard(input.DraftID)
		}
	}
	return result, nil
}

// UpdateAgent re-resolves ownership from the stored record plus the input
// and saves the changed fields.
func (s *AgentService) UpdateAgent(ctx context.Context, role ownership.Role, actor ownership.Actor, fixed *ownership.Owner, id string, input AgentInput) (*AgentResult, error) {
	var agent models.Agent
	if err := s.DB.WithContext(ctx).First(&agent, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.Validate.Struct(input); err != nil {
		return nil, types.FieldError("name", "Agent name and a valid email are required")
	}

	existing := &ownership.AgentOwnership{
		ManagedByModel: agent.ManagedByModel,
		ManagedBy:      types.EntityRef{ID: agent.ManagedByID},
		Franchise:      types.EntityRef{ID: agent.FranchiseID},
	}
	owner, err := s.resolveOwner(ctx, role, actor, existing, fixed, input)
	if err != nil {
		return nil, err
	}

	agent.Name = input.Name
	agent.Email = input.Email
	agent.Phone = input.Phone
	agent.Status = defaultStatus(input.Status)
	agent.ManagedByModel = string(owner.Kind)
	agent.ManagedByID = owner.ID.String()
	if owner.Kind == ownership.KindFranchise {
		agent.FranchiseID = owner.ID.String()
	} else {
		agent.FranchiseID = ""
	}

	if err := s.DB.WithContext(ctx).Save(&agent).Error; err != nil {
		return nil, err
	}
	return &AgentResult{Agent: agent}, nil
}

// resolveOwner runs the full resolution chain: role defaults, explicit
// input selection when the default is editable, late-binding from typed
// search text, validation, and an existence check on the chosen owner.
func (s *AgentService) resolveOwner(ctx context.Context, role ownership.Role, actor ownership.Actor, existing *ownership.AgentOwnership, fixed *ownership.Owner, input AgentInput) (ownership.Owner, error) {
	res := ownership.DefaultOwner(role, actor, existing, fixed)
	owner := res.Owner

	if res.Editable && (input.ManagedByModel != "" || !input.ManagedBy.IsZero() || !input.Franchise.IsZero()) {
		picked := ownership.DefaultOwner(role, actor, &ownership.AgentOwnership{
			ManagedByModel: input.ManagedByModel,
			ManagedBy:      input.ManagedBy,
			Franchise:      input.Franchise,
		}, nil)
		if picked.Owner.Kind != owner.Kind {
			owner.SetKind(picked.Owner.Kind)
		}
		if !picked.Owner.ID.IsEmpty() {
			owner.ID = picked.Owner.ID
		}
	}

	if owner.ID.IsEmpty() && input.OwnerSearch != "" {
		candidates, err := s.ownerCandidates(ctx, owner.Kind)
		if err != nil {
			return owner, err
		}
		owner = ownership.ResolveSearch(owner, input.OwnerSearch, candidates)
	}

	if err := ownership.Validate(owner); err != nil {
		return owner, err
	}
	if err := s.ownerExists(ctx, owner); err != nil {
		return owner, err
	}
	return owner, nil
}

// ownerCandidates loads the pickable owners of one kind for late binding.
func (s *AgentService) ownerCandidates(ctx context.Context, kind ownership.Kind) ([]ownership.Candidate, error) {
	type row struct {
		ID   string
		Name string
	}
	var rows []row

	q := s.DB.WithContext(ctx)
	if kind == ownership.KindRelationshipManager {
		q = q.Model(&models.RelationshipManager{})
	} else {
		q = q.Model(&models.Franchise{})
	}
	if err := q.Select("id", "name").Where("active = ?", true).Find(&rows).Error; err != nil {
		return nil, err
	}

	candidates := make([]ownership.Candidate, len(rows))
	for i, r := range rows {
		candidates[i] = ownership.Candidate{ID: types.EntityRef{ID: r.ID}, Name: r.Name}
	}
	return candidates, nil
}

// ownerExists verifies the resolved owner references a live row.
func (s *AgentService) ownerExists(ctx context.Context, owner ownership.Owner) error {
	var count int64
	q := s.DB.WithContext(ctx)
	if owner.Kind == ownership.KindRelationshipManager {
		q = q.Model(&models.RelationshipManager{})
	} else {
		q = q.Model(&models.Franchise{})
	}
	if err := q.Where("id = ?", owner.ID.String()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return types.FieldError("managedBy", fmt.Sprintf("%s %s not found", owner.Kind.Label(), owner.ID))
	}
	return nil
}

// GetAgent returns one agent by any reference shape.
func (s *AgentService) GetAgent(ctx context.Context, ref any) (*models.Agent, error) {
	key := identity.KeyOf(ref)
	if key.IsEmpty() {
		return nil, ErrNotFound
	}
	var agent models.Agent
	if err := s.DB.WithContext(ctx).First(&agent, "id = ?", key.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &agent, nil
}

// ListAgents lists agents, optionally filtered by owner.
func (s *AgentService) ListAgents(ctx context.Context, ownerKind, ownerID, status string) ([]models.Agent, error) {
	q := s.DB.WithContext(ctx).Model(&models.Agent{})
	if ownerID != "" {
		key := identity.KeyOf(ownerID).String()
		if ownerKind == string(ownership.KindFranchise) {
			// Legacy rows carry the franchise in franchise_id only.
			q = q.Where("(managed_by_model = ? AND managed_by_id = ?) OR franchise_id = ?",
				ownerKind, key, key)
		} else {
			q = q.Where("managed_by_model = ? AND managed_by_id = ?", ownerKind, key)
		}
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var agents []models.Agent
	err := q.Order("created_at DESC").Find(&agents).Error
	return agents, err
}

// DeleteAgent removes an agent row.
func (s *AgentService) DeleteAgent(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&models.Agent{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func defaultStatus(s string) string {
	if s == "" {
		return "active"
	}
	return s
}
