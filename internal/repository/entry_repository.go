package repository

import (
	"context"
	"time"

	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/pkg/pagination"
	"gorm.io/gorm"
)

type EntryRepository interface {
	// Upsert saves an entry keyed by calendar date. An existing row for the
	// same date is fully replaced (last write wins). Returns true when a new
	// row was created.
	Upsert(ctx context.Context, entry *domain.DailyEntry) (bool, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyEntry, error)
	Latest(ctx context.Context) (*domain.DailyEntry, error)
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.DailyEntry, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.DailyEntry, error)
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Upsert(ctx context.Context, entry *domain.DailyEntry) (bool, error) {
	var existing domain.DailyEntry
	err := r.db.WithContext(ctx).Where("date = ?", entry.Date).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return true, r.db.WithContext(ctx).Create(entry).Error
		}
		return false, err
	}

	// Replace in place, keeping the row identity.
	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	return false, r.db.WithContext(ctx).Save(entry).Error
}

func (r *entryRepository) GetByDate(ctx context.Context, date time.Time) (*domain.DailyEntry, error) {
	var entry domain.DailyEntry
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) Latest(ctx context.Context) (*domain.DailyEntry, error) {
	var entry domain.DailyEntry
	err := r.db.WithContext(ctx).Order("date DESC").First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) List(ctx context.Context, filter domain.EntryFilter) ([]domain.DailyEntry, error) {
	query := r.db.WithContext(ctx).Order("date DESC")

	// Apply date filters
	if filter.From != nil {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: continue below the cursor date
			query = query.Where("date < ?", cursor.Date)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.DailyEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *entryRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.DailyEntry, error) {
	var entries []domain.DailyEntry
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
