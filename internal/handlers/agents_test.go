package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/attachments"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/config"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/database"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/handlers"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/models"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/services"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/storage"
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

// setupApp wires the handlers under test onto a Fiber app without the auth
// middleware; handlers read an empty role, the unauthenticated default path.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *attachments.Registry) {
	db := setupTestDB(t)
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

	agentSvc := &services.AgentService{DB: db, Validate: validator.New(), Drafts: registry}

	app := fiber.New()
	agentHandler := &handlers.AgentHandler{Service: agentSvc}
	draftHandler := &handlers.DraftHandler{Registry: registry}
	statsHandler := &handlers.StatsHandler{DB: db}

	app.Post("/api/agents", agentHandler.CreateAgent)
	app.Get("/api/agents/:id", agentHandler.GetAgent)
	app.Post("/api/drafts", draftHandler.CreateDraft)
	app.Post("/api/drafts/:id/attachments", draftHandler.StageAttachment)
	app.Get("/api/drafts/:id/attachments", draftHandler.ListStaged)
	app.Get("/api/stats/:kind/:id", statsHandler.GetStats)

	return app, db, registry
}

func postJSON(t *testing.T, app *fiber.App, url string, body any) (int, map[string]interface{}) {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", url, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	var result map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

// TestCreateAgentEndpoint covers the create flow over HTTP, including a
// field-level validation failure
func TestCreateAgentEndpoint(t *testing.T) {
	app, db, _ := setupApp(t)
	db.Create(&models.Franchise{ID: "fr-1", Name: "Pune Central", Active: true})

	status, result := postJSON(t, app, "/api/agents", map[string]interface{}{
		"name":           "Asha Patil",
		"managedByModel": "franchise",
		"managedBy":      map[string]interface{}{"_id": "fr-1", "name": "Pune Central"},
	})
	if status != 201 {
		t.Fatalf("status = %d, body = %v", status, result)
	}

	// Owner missing entirely: a 400 naming the field.
	status, result = postJSON(t, app, "/api/agents", map[string]interface{}{
		"name": "No Owner",
	})
	if status != 400 {
		t.Fatalf("status = %d, want 400", status)
	}
	if result["field"] != "managedBy" {
		t.Errorf("field = %v, want managedBy", result["field"])
	}
}

// TestDraftFlushEndpoint covers the full form-session flow over HTTP: open a
// draft, stage a file, create the agent with the draft id, and see the
// document committed
func TestDraftFlushEndpoint(t *testing.T) {
	app, db, _ := setupApp(t)
	db.Create(&models.Franchise{ID: "fr-1", Name: "Pune Central", Active: true})

	status, result := postJSON(t, app, "/api/drafts", map[string]interface{}{"entityType": "user"})
	if status != 201 {
		t.Fatalf("create draft: status = %d, body = %v", status, result)
	}
	draftID, _ := result["draftId"].(string)
	if draftID == "" {
		t.Fatalf("no draftId in %v", result)
	}

	// Stage a PAN card through the multipart endpoint.
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("docType", "pan")
	fw, _ := w.CreateFormFile("file", "pan.pdf")
	fw.Write([]byte("pan content"))
	w.Close()

	req := httptest.NewRequest("POST", "/api/drafts/"+draftID+"/attachments", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("stage request: %v", err)
	}
	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("stage: status = %d, body = %s", resp.StatusCode, body)
	}

	status, result = postJSON(t, app, "/api/agents", map[string]interface{}{
		"name":           "Asha Patil",
		"managedByModel": "franchise",
		"managedBy":      "fr-1",
		"draftId":        draftID,
	})
	if status != 201 {
		t.Fatalf("create agent: status = %d, body = %v", status, result)
	}

	var docs []models.Document
	if err := db.Find(&docs).Error; err != nil {
		t.Fatalf("load documents: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("documents = %d, want 1", len(docs))
	}
	if docs[0].DocumentType != "pan" || docs[0].OriginalFileName != "pan.pdf" {
		t.Errorf("document = %+v", docs[0])
	}
}

// TestStatsEndpoint covers the roll-up route including kind validation
func TestStatsEndpoint(t *testing.T) {
	app, db, _ := setupApp(t)

	db.Create(&models.Lead{ID: "l1", AgentID: "a1", Status: "logged", LoanAmount: 100,
		Payload: models.NewJSON([]byte(`{"agentId":"a1","status":"logged","loanAmount":100}`))})
	db.Create(&models.Lead{ID: "l2", AgentID: "a1", Status: "completed", LoanAmount: 200,
		Payload: models.NewJSON([]byte(`{"agentId":"a1","status":"completed","loanAmount":200}`))})

	req := httptest.NewRequest("GET", "/api/stats/agent/a1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var rec map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec["total"] != float64(2) || rec["completed"] != float64(1) {
		t.Errorf("record = %v", rec)
	}
	if rec["amountSum"] != float64(300) {
		t.Errorf("amountSum = %v, want 300", rec["amountSum"])
	}

	req = httptest.NewRequest("GET", "/api/stats/lead/a1", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("invalid kind: status = %d, want 400", resp.StatusCode)
	}
}
