package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/attachments"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/config"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/database"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/models"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/ownership"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/services"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/storage"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func newAgentService(t *testing.T, db *gorm.DB) (*services.AgentService, *attachments.Registry) {
	logg := config.NewLogger("error")
	store, err := storage.New(storage.Settings{
		Provider:     storage.ProviderLocal,
		LocalDir:     t.TempDir(),
		LocalBaseURL: "http://localhost:3000",
	})
	if err != nil {
		t.Fatalf("Failed to create storage provider: %v", err)
	}
	docSvc := &services.DocumentService{DB: db, Store: store, Log: logg}
	registry := attachments.NewRegistry(docSvc, logg, 0)
	t.Cleanup(registry.Close)

	return &services.AgentService{
		DB:       db,
		Validate: validator.New(),
		Drafts:   registry,
	}, registry
}

func seedFranchise(t *testing.T, db *gorm.DB, id, name string) {
	if err := db.Create(&models.Franchise{ID: id, Name: name, Active: true}).Error; err != nil {
		t.Fatalf("Failed to seed franchise: %v", err)
	}
}

func seedRM(t *testing.T, db *gorm.DB, id, name string) {
	if err := db.Create(&models.RelationshipManager{ID: id, Name: name, Active: true}).Error; err != nil {
		t.Fatalf("Failed to seed relationship manager: %v", err)
	}
}

// TestCreateAgentExplicitOwner covers the admin picking an owner directly
func TestCreateAgentExplicitOwner(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAgentService(t, db)
	seedFranchise(t, db, "fr-1", "Pune Central")

	result, err := svc.CreateAgent(context.Background(), ownership.RoleAdmin, ownership.Actor{}, nil, services.AgentInput{
		Name:           "Asha Patil",
		ManagedByModel: "franchise",
		ManagedBy:      types.EntityRef{ID: "fr-1"},
	})
	if err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}
	if result.Agent.ManagedByModel != "franchise" || result.Agent.ManagedByID != "fr-1" {
		t.Errorf("owner = %s/%s", result.Agent.ManagedByModel, result.Agent.ManagedByID)
	}
	if result.Agent.FranchiseID != "fr-1" {
		t.Errorf("legacy franchise mirror = %q, want fr-1", result.Agent.FranchiseID)
	}
	if result.Agent.Status != "active" {
		t.Errorf("status = %q, want default active", result.Agent.Status)
	}
}

// TestCreateAgentRoleDefaults covers franchise and RM actors getting locked
// onto themselves
func TestCreateAgentRoleDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAgentService(t, db)
	seedFranchise(t, db, "fr-1", "Pune Central")
	seedRM(t, db, "rm-1", "Rahul Mehta")

	actor := ownership.Actor{
		ID:        types.EntityRef{ID: "rm-1"},
		Franchise: types.EntityRef{ID: "fr-1"},
	}

	result, err := svc.CreateAgent(context.Background(), ownership.RoleFranchise, actor, nil, services.AgentInput{Name: "A"})
	if err != nil {
		t.Fatalf("franchise actor create: %v", err)
	}
	if result.Agent.ManagedByModel != "franchise" || result.Agent.ManagedByID != "fr-1" {
		t.Errorf("franchise actor owner = %s/%s", result.Agent.ManagedByModel, result.Agent.ManagedByID)
	}

	// A franchise actor cannot steer the agent elsewhere; the role default
	// is locked.
	result, err = svc.CreateAgent(context.Background(), ownership.RoleFranchise, actor, nil, services.AgentInput{
		Name:           "B",
		ManagedByModel: "relationship_manager",
		ManagedBy:      types.EntityRef{ID: "rm-1"},
	})
	if err != nil {
		t.Fatalf("franchise actor steered create: %v", err)
	}
	if result.Agent.ManagedByModel != "franchise" || result.Agent.ManagedByID != "fr-1" {
		t.Errorf("locked default overridden: %s/%s", result.Agent.ManagedByModel, result.Agent.ManagedByID)
	}

	result, err = svc.CreateAgent(context.Background(), ownership.RoleRelationshipManager, actor, nil, services.AgentInput{Name: "C"})
	if err != nil {
		t.Fatalf("rm actor create: %v", err)
	}
	if result.Agent.ManagedByModel != "relationship_manager" || result.Agent.ManagedByID != "rm-1" {
		t.Errorf("rm actor owner = %s/%s", result.Agent.ManagedByModel, result.Agent.ManagedByID)
	}
	if result.Agent.FranchiseID != "" {
		t.Errorf("rm-owned agent has legacy franchise id %q", result.Agent.FranchiseID)
	}
}

// TestCreateAgentSearchLateBinding covers adopting an owner from free search
// text the user typed but never clicked
func TestCreateAgentSearchLateBinding(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAgentService(t, db)
	seedFranchise(t, db, "fr-1", "Pune Central")
	seedFranchise(t, db, "fr-2", "Nashik Road")

	result, err := svc.CreateAgent(context.Background(), ownership.RoleAdmin, ownership.Actor{}, nil, services.AgentInput{
		Name:        "Asha Patil",
		OwnerSearch: "pune central",
	})
	if err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}
	if result.Agent.ManagedByID != "fr-1" {
		t.Errorf("ManagedByID = %q, want fr-1 adopted from search", result.Agent.ManagedByID)
	}

	// Ambiguous text must not guess; it fails validation instead.
	seedFranchise(t, db, "fr-3", "NASHIK ROAD")
	_, err = svc.CreateAgent(context.Background(), ownership.RoleAdmin, ownership.Actor{}, nil, services.AgentInput{
		Name:        "Asha Patil",
		OwnerSearch: "nashik road",
	})
	var custom *types.CustomError
	if !errors.As(err, &custom) || custom.Field != "managedBy" {
		t.Errorf("ambiguous search: err = %v, want managedBy field error", err)
	}
}

// TestCreateAgentOwnerRequired verifies an unresolved owner is a field-level
// validation error
func TestCreateAgentOwnerRequired(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAgentService(t, db)

	_, err := svc.CreateAgent(context.Background(), ownership.RoleAdmin, ownership.Actor{}, nil, services.AgentInput{Name: "Asha"})
	var custom *types.CustomError
	if !errors.As(err, &custom) {
		t.Fatalf("err = %v, want *types.CustomError", err)
	}
	if custom.Field != "managedBy" || custom.Message != "Franchise is required" {
		t.Errorf("field error = %q / %q", custom.Field, custom.Message)
	}
}

// TestCreateAgentOwnerMustExist verifies the resolved owner must reference a
// live row
func TestCreateAgentOwnerMustExist(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAgentService(t, db)

	_, err := svc.CreateAgent(context.Background(), ownership.RoleAdmin, ownership.Actor{}, nil, services.AgentInput{
		Name:           "Asha",
		ManagedByModel: "franchise",
		ManagedBy:      types.EntityRef{ID: "ghost"},
	})
	var custom *types.CustomError
	if !errors.As(err, &custom) || custom.Field != "managedBy" {
		t.Errorf("err = %v, want managedBy field error", err)
	}
}

// TestCreateAgentFlushesDraft covers the create-then-flush flow: files staged
// before the agent exists are committed against the new id
func TestCreateAgentFlushesDraft(t *testing.T) {
	db := setupTestDB(t)
	svc, registry := newAgentService(t, db)
	seedFranchise(t, db, "fr-1", "Pune Central")

	draftID := registry.Create(models.DocumentEntityUser)
	stager, _ := registry.Get(draftID)
	stager.Stage(context.Background(), "pan", attachments.File{
		Name: "pan.pdf", ContentType: "application/pdf", Content: []byte("pan"),
	}, "")
	stager.Stage(context.Background(), "additional", attachments.File{
		Name: "rent.pdf", ContentType: "application/pdf", Content: []byte("rent"),
	}, "Rent agreement")

	result, err := svc.CreateAgent(context.Background(), ownership.RoleAdmin, ownership.Actor{}, nil, services.AgentInput{
		Name:           "Asha Patil",
		ManagedByModel: "franchise",
		ManagedBy:      types.EntityRef{ID: "fr-1"},
		DraftID:        draftID,
	})
	if err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}
	if len(result.Documents) != 2 {
		t.Fatalf("documents = %d, want 2", len(result.Documents))
	}
	for _, d := range result.Documents {
		if d.EntityID != result.Agent.ID {
			t.Errorf("document bound to %q, want %q", d.EntityID, result.Agent.ID)
		}
	}

	var count int64
	db.Model(&models.Document{}).Where("entity_id = ?", result.Agent.ID).Count(&count)
	if count != 2 {
		t.Errorf("document rows = %d, want 2", count)
	}

	// The draft is consumed by the flush.
	if _, ok := registry.Get(draftID); ok {
		t.Error("draft survived its flush")
	}
}

// TestUpdateAgentKindSwitch verifies switching the owner kind clears the
// legacy franchise mirror
func TestUpdateAgentKindSwitch(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAgentService(t, db)
	seedFranchise(t, db, "fr-1", "Pune Central")
	seedRM(t, db, "rm-1", "Rahul Mehta")

	created, err := svc.CreateAgent(context.Background(), ownership.RoleAdmin, ownership.Actor{}, nil, services.AgentInput{
		Name:           "Asha Patil",
		ManagedByModel: "franchise",
		ManagedBy:      types.EntityRef{ID: "fr-1"},
	})
	if err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}

	updated, err := svc.UpdateAgent(context.Background(), ownership.RoleAdmin, ownership.Actor{}, nil, created.Agent.ID, services.AgentInput{
		Name:           "Asha Patil",
		ManagedByModel: "relationship_manager",
		ManagedBy:      types.EntityRef{ID: "rm-1"},
	})
	if err != nil {
		t.Fatalf("UpdateAgent: %v", err)
	}
	if updated.Agent.ManagedByModel != "relationship_manager" || updated.Agent.ManagedByID != "rm-1" {
		t.Errorf("owner = %s/%s", updated.Agent.ManagedByModel, updated.Agent.ManagedByID)
	}
	if updated.Agent.FranchiseID != "" {
		t.Errorf("legacy franchise id survived the switch: %q", updated.Agent.FranchiseID)
	}

	// Switching kind without picking a new owner must fail validation, not
	// silently keep the old id.
	_, err = svc.UpdateAgent(context.Background(), ownership.RoleAdmin, ownership.Actor{}, nil, created.Agent.ID, services.AgentInput{
		Name:           "Asha Patil",
		ManagedByModel: "franchise",
	})
	var custom *types.CustomError
	if !errors.As(err, &custom) || custom.Field != "managedBy" {
		t.Errorf("kind switch without pick: err = %v, want managedBy field error", err)
	}
}

// TestListAgentsLegacyFranchiseFilter verifies the franchise filter also
// matches rows that predate the ownership union
func TestListAgentsLegacyFranchiseFilter(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAgentService(t, db)
	seedFranchise(t, db, "fr-1", "Pune Central")

	// Legacy row: franchise_id populated, no discriminator.
	if err := db.Create(&models.Agent{ID: "legacy-1", Name: "Old Agent", Status: "active", FranchiseID: "fr-1"}).Error; err != nil {
		t.Fatalf("seed legacy agent: %v", err)
	}
	if _, err := svc.CreateAgent(context.Background(), ownership.RoleAdmin, ownership.Actor{}, nil, services.AgentInput{
		Name:           "New Agent",
		ManagedByModel: "franchise",
		ManagedBy:      types.EntityRef{ID: "fr-1"},
	}); err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}

	agents, err := svc.ListAgents(context.Background(), "franchise", "fr-1", "")
	if err != nil {
		t.Fatalf("ListAgents: %v", err)
	}
	if len(agents) != 2 {
		t.Errorf("agents = %d, want 2 (legacy row included)", len(agents))
	}
}

// TestGetAgentAnyShape verifies lookup goes through the identity primitive
func TestGetAgentAnyShape(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAgentService(t, db)
	seedFranchise(t, db, "fr-1", "Pune Central")

	created, err := svc.CreateAgent(context.Background(), ownership.RoleAdmin, ownership.Actor{}, nil, services.AgentInput{
		Name:           "Asha Patil",
		ManagedByModel: "franchise",
		ManagedBy:      types.EntityRef{ID: "fr-1"},
	})
	if err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}

	for _, ref := range []any{
		created.Agent.ID,
		types.EntityRef{ID: created.Agent.ID, Name: "Asha Patil"},
		map[string]any{"_id": created.Agent.ID},
	} {
		got, err := svc.GetAgent(context.Background(), ref)
		if err != nil {
			t.Errorf("GetAgent(%v): %v", ref, err)
			continue
		}
		if got.ID != created.Agent.ID {
			t.Errorf("GetAgent(%v) = %q", ref, got.ID)
		}
	}

	if _, err := svc.GetAgent(context.Background(), nil); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("empty reference: err = %v, want ErrNotFound", err)
	}
}
