package repository

import (
	"context"
	"time"

	"github.com/neuro-os/neuro-index/internal/domain"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	// GetLastPeriodDate returns the stored cycle reference date, or nil when
	// it was never set.
	GetLastPeriodDate(ctx context.Context) (*time.Time, error)
	SetLastPeriodDate(ctx context.Context, date time.Time) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetLastPeriodDate(ctx context.Context) (*time.Time, error) {
	var setting domain.UserSetting
	err := r.db.WithContext(ctx).
		Where("key = ?", domain.SettingLastPeriodDate).
		First(&setting).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // Never set is not an error
		}
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, setting.Value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func (r *settingsRepository) SetLastPeriodDate(ctx context.Context, date time.Time) error {
	value := date.Format(domain.DateFormat)

	var setting domain.UserSetting
	err := r.db.WithContext(ctx).
		Where("key = ?", domain.SettingLastPeriodDate).
		First(&setting).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			setting = domain.UserSetting{Key: domain.SettingLastPeriodDate, Value: value}
			return r.db.WithContext(ctx).Create(&setting).Error
		}
		return err
	}

	return r.db.WithContext(ctx).
		Model(&setting).
		Update("value", value).Error
}
