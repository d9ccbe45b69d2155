package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/internal/service"
	"gorm.io/gorm"
)

const seededDays = 120

// Run seeds the database with sample daily entries. Entries go through the
// full scoring path so stored breakdowns match what the API would produce.
// Safe to call multiple times: existing dates are replaced, not duplicated.
func Run(db *gorm.DB, entries service.EntryService) error {
	if err := db.AutoMigrate(&domain.DailyEntry{}, &domain.UserSetting{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	// Fixed seed for reproducible sample data
	rng := rand.New(rand.NewSource(42))
	ctx := context.Background()
	now := time.Now().UTC()

	for i := seededDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		req := sampleEntry(date, rng)
		if _, _, err := entries.Create(ctx, req); err != nil {
			return fmt.Errorf("failed to seed entry for %s: %w", req.Date, err)
		}
	}

	log.Printf("Seed completed: %d days", seededDays)
	return nil
}

// sampleEntry generates one day of plausible raw metrics. Ranges stay well
// inside the engine's rejection bounds.
func sampleEntry(date time.Time, rng *rand.Rand) *domain.CreateEntryRequest {
	sleepHours := clipFloat(normal(rng, 7.2, 0.8), 5.5, 9.5)

	bedHour := 21 + rng.Intn(3)
	bedMinute := 15 * rng.Intn(4)
	wakeHour := (bedHour + int(sleepHours) + 1) % 24
	wakeMinute := 15 * rng.Intn(4)

	// Exercise is bimodal: rest days and real sessions
	exercise := rng.Intn(20)
	if rng.Float64() < 0.5 {
		exercise = 30 + rng.Intn(45)
	}

	reaction := int(clipFloat(normal(rng, 280, 50), 180, 500))

	return &domain.CreateEntryRequest{
		Date:              date.Format(domain.DateFormat),
		StudyHours:        clipFloat(normal(rng, 8, 2), 3, 14),
		ScreenTimeMinutes: int(clipFloat(normal(rng, 270, 90), 120, 540)),
		RecallPercent:     clipFloat(normal(rng, 78, 8), 55, 98),
		SleepHours:        sleepHours,
		Bedtime:           fmt.Sprintf("%02d:%02d", bedHour, bedMinute),
		WakeTime:          fmt.Sprintf("%02d:%02d", wakeHour, wakeMinute),
		DietQuality:       int(clipFloat(normal(rng, 7.5, 1.2), 4, 10)),
		ExerciseMinutes:   exercise,
		SunlightMinutes:   15 * rng.Intn(5),
		ReactionTimeMS:    &reaction,
	}
}

func normal(rng *rand.Rand, mean, std float64) float64 {
	return rng.NormFloat64()*std + mean
}

func clipFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
