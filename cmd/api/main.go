// Neuro Index API
//
// REST API for daily productivity and wellness scoring.
//
//	@title			Neuro Index API
//	@version		1.0
//	@description	Score daily metrics into a 0-100 index with itemized component breakdowns, trailing-window summaries, and LLM-backed insights.
//
//	@BasePath	/v1
//
//	@tag.name			entries
//	@tag.description	Daily entry recording and retrieval
//
//	@tag.name			dashboard
//	@tag.description	Window aggregates over stored entries
//
//	@tag.name			cycle
//	@tag.description	Cycle reference date and derived phase
//
//	@tag.name			insights
//	@tag.description	LLM-backed coaching insights
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/neuro-os/neuro-index/internal/api"
	"github.com/neuro-os/neuro-index/internal/api/handler"
	"github.com/neuro-os/neuro-index/internal/config"
	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/internal/llm"
	"github.com/neuro-os/neuro-index/internal/repository"
	"github.com/neuro-os/neuro-index/internal/scoring"
	"github.com/neuro-os/neuro-index/internal/seed"
	"github.com/neuro-os/neuro-index/internal/service"
	"github.com/neuro-os/neuro-index/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when no OTLP endpoint is configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "neuro-index-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.DailyEntry{}, &domain.UserSetting{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Select the scoring profile
	scorer, err := scoring.NewScorer(scoring.Profile(cfg.ScoringProfile))
	if err != nil {
		log.Fatalf("Invalid SCORING_PROFILE %q: %v", cfg.ScoringProfile, err)
	}
	log.Printf("Scoring profile: %s", scorer.Profile())

	// Initialize repositories
	entryRepo := repository.NewEntryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	entryService := service.NewEntryService(entryRepo, settingsRepo, scorer)
	dashboardService := service.NewDashboardService(entryRepo)
	cycleService := service.NewCycleService(settingsRepo)

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db, entryService); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	insightsService := service.NewInsightsService(dashboardService, openaiClient)

	// Initialize handlers
	entryHandler := handler.NewEntryHandler(entryService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	cycleHandler := handler.NewCycleHandler(cycleService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(entryHandler, dashboardHandler, cycleHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
