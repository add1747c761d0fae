package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/attachments"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/config"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/database"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/handlers"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/middleware"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/services"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/storage"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"

	_ "github.com/shrawani1619/ykc-finserv-sub001/docs/api" // Swagger docs
)

// @title YKC Finserv Network API
// @version 1.0.0
// @description Back-office service for the franchise network: agents, directory, documents, leads, invoices and roll-ups

// @contact.name API Support
// @contact.url https://github.com/shrawani1619/ykc-finserv-sub001

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := config.NewLogger(cfg.LogLevel)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store, err := storage.New(storage.Settings{
		Provider:           cfg.StorageProvider,
		GCSBucket:          cfg.GCSBucket,
		GCSCredentialsJSON: cfg.GCSCredentialsJSON,
		LocalDir:           cfg.LocalStorageDir,
		LocalBaseURL:       cfg.PublicBaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize storage provider: %v", err)
	}

	validate := validator.New()

	docSvc := &services.DocumentService{DB: db, Store: store, Log: logg}
	registry := attachments.NewRegistry(docSvc, logg, time.Duration(cfg.DraftTTLMinutes)*time.Minute)
	defer registry.Close()

	agentSvc := &services.AgentService{DB: db, Validate: validate, Drafts: registry}
	dirSvc := &services.DirectoryService{DB: db, Validate: validate}
	syncSvc := &services.SyncService{DB: db, Log: logg}

	// The authorizer may still be booting; middleware rejects until it is up
	if err := services.InitAuthorizer(cfg, "http", "localhost:"+cfg.Port); err != nil {
		logg.Warnf("authorizer not ready at startup: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	prometheus := fiberprometheus.New("ykc-finserv")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db}
	app.Get("/health", healthHandler.GetHealth)

	// Locally stored document objects are served straight off disk
	if cfg.StorageProvider == storage.ProviderLocal || cfg.StorageProvider == "" {
		app.Static("/files", cfg.LocalStorageDir)
	}

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	agentHandler := &handlers.AgentHandler{Service: agentSvc}
	dirHandler := &handlers.DirectoryHandler{Service: dirSvc}
	docHandler := &handlers.DocumentHandler{Service: docSvc}
	draftHandler := &handlers.DraftHandler{Registry: registry}
	syncHandler := &handlers.SyncHandler{Service: syncSvc}
	statsHandler := &handlers.StatsHandler{DB: db}

	agents := api.Group("/agents", middleware.AuthBackOffice())
	agents.Post("/", agentHandler.CreateAgent)
	agents.Get("/", agentHandler.ListAgents)
	agents.Get("/:id", agentHandler.GetAgent)
	agents.Put("/:id", agentHandler.UpdateAgent)
	agents.Delete("/:id", middleware.AuthAdmin(), agentHandler.DeleteAgent)

	api.Post("/franchises", middleware.AuthAdmin(), dirHandler.CreateFranchise)
	api.Get("/franchises", middleware.AuthBackOffice(), dirHandler.ListFranchises)
	api.Get("/franchises/:id", middleware.AuthBackOffice(), dirHandler.GetFranchise)
	api.Put("/franchises/:id", middleware.AuthAdmin(), dirHandler.UpdateFranchise)
	api.Delete("/franchises/:id", middleware.AuthAdmin(), dirHandler.DeleteFranchise)
	api.Post("/relationship-managers", middleware.AuthAdmin(), dirHandler.CreateRelationshipManager)
	api.Get("/relationship-managers", middleware.AuthBackOffice(), dirHandler.ListRelationshipManagers)
	api.Get("/relationship-managers/:id", middleware.AuthBackOffice(), dirHandler.GetRelationshipManager)
	api.Put("/relationship-managers/:id", middleware.AuthAdmin(), dirHandler.UpdateRelationshipManager)
	api.Delete("/relationship-managers/:id", middleware.AuthAdmin(), dirHandler.DeleteRelationshipManager)
	api.Post("/banks", middleware.AuthAdmin(), dirHandler.CreateBank)
	api.Get("/banks", middleware.AuthBackOffice(), dirHandler.ListBanks)
	api.Put("/banks/:id", middleware.AuthAdmin(), dirHandler.UpdateBank)
	api.Delete("/banks/:id", middleware.AuthAdmin(), dirHandler.DeleteBank)

	docs := api.Group("/documents", middleware.AuthBackOffice())
	docs.Post("/", docHandler.UploadDocument)
	docs.Get("/:entityType/:entityId", docHandler.ListDocuments)
	docs.Delete("/:id", docHandler.DeleteDocument)

	drafts := api.Group("/drafts", middleware.AuthBackOffice())
	drafts.Post("/", draftHandler.CreateDraft)
	drafts.Post("/:id/attachments", draftHandler.StageAttachment)
	drafts.Get("/:id/attachments", draftHandler.ListStaged)
	drafts.Get("/:id/attachments/:docType/preview", draftHandler.PreviewStaged)
	drafts.Delete("/:id/attachments/:docType", draftHandler.RemoveStaged)
	drafts.Delete("/:id", draftHandler.DiscardDraft)

	api.Post("/sync/leads", middleware.AuthAdmin(), syncHandler.IngestLeads)
	api.Post("/sync/invoices", middleware.AuthAdmin(), syncHandler.IngestInvoices)
	api.Get("/leads/:kind/:id", middleware.AuthBackOffice(), syncHandler.ListLeads)
	api.Get("/invoices/:kind/:id", middleware.AuthBackOffice(), syncHandler.ListInvoices)

	api.Get("/stats/:kind/:id", middleware.AuthBackOffice(), statsHandler.GetStats)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"
	field := ""

	var custom *types.CustomError
	var fiberErr *fiber.Error
	if errors.As(err, &custom) {
		code = custom.Code
		message = custom.Message
		errorType = custom.Type
		field = custom.Field
	} else if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	body := fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	}
	if field != "" {
		body["field"] = field
	}
	return c.Status(code).JSON(body)
}
