package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/services"
)

// TestFranchiseLifecycle covers create, update, search, and the soft delete
// dropping the row out of listings
func TestFranchiseLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := &services.DirectoryService{DB: db, Validate: validator.New()}
	ctx := context.Background()

	f, err := svc.CreateFranchise(ctx, services.FranchiseInput{Name: "Pune Central", City: "Pune"})
	if err != nil {
		t.Fatalf("CreateFranchise: %v", err)
	}
	if _, err := svc.CreateFranchise(ctx, services.FranchiseInput{Name: "Nashik Road"}); err != nil {
		t.Fatalf("CreateFranchise: %v", err)
	}

	updated, err := svc.UpdateFranchise(ctx, f.ID, services.FranchiseInput{Name: "Pune Central", City: "Pune", State: "MH"})
	if err != nil {
		t.Fatalf("UpdateFranchise: %v", err)
	}
	if updated.State != "MH" {
		t.Errorf("State = %q, want MH", updated.State)
	}

	found, err := svc.ListFranchises(ctx, "pune")
	if err != nil {
		t.Fatalf("ListFranchises: %v", err)
	}
	if len(found) != 1 || found[0].ID != f.ID {
		t.Errorf("search result = %+v", found)
	}

	if err := svc.DeleteFranchise(ctx, f.ID); err != nil {
		t.Fatalf("DeleteFranchise: %v", err)
	}
	all, err := svc.ListFranchises(ctx, "")
	if err != nil {
		t.Fatalf("ListFranchises: %v", err)
	}
	for _, got := range all {
		if got.ID == f.ID {
			t.Error("deactivated franchise still listed")
		}
	}

	// The row survives for existing references; only listings drop it.
	if _, err := svc.GetFranchise(ctx, f.ID); err != nil {
		t.Errorf("GetFranchise after deactivate: %v", err)
	}

	if err := svc.DeleteFranchise(ctx, "ghost"); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("delete missing: err = %v, want ErrNotFound", err)
	}
}

func TestCreateFranchiseValidates(t *testing.T) {
	db := setupTestDB(t)
	svc := &services.DirectoryService{DB: db, Validate: validator.New()}

	if _, err := svc.CreateFranchise(context.Background(), services.FranchiseInput{Name: ""}); err == nil {
		t.Error("nameless franchise accepted")
	}
	if _, err := svc.CreateFranchise(context.Background(), services.FranchiseInput{Name: "X", Email: "not-an-email"}); err == nil {
		t.Error("bad email accepted")
	}
}
