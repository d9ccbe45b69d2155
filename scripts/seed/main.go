package main

import (
	"log"

	"github.com/neuro-os/neuro-index/internal/config"
	"github.com/neuro-os/neuro-index/internal/repository"
	"github.com/neuro-os/neuro-index/internal/scoring"
	"github.com/neuro-os/neuro-index/internal/seed"
	"github.com/neuro-os/neuro-index/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	scorer, err := scoring.NewScorer(scoring.Profile(cfg.ScoringProfile))
	if err != nil {
		log.Fatalf("Invalid SCORING_PROFILE %q: %v", cfg.ScoringProfile, err)
	}

	entryRepo := repository.NewEntryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	entryService := service.NewEntryService(entryRepo, settingsRepo, scorer)

	if err := seed.Run(db, entryService); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}
