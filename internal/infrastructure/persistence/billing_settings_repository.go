package persistence

import (
	"context"
	"errors"

	"github.com/gensetworks/backend/internal/domain/billing"
	"github.com/gensetworks/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormBillingSettingsRepository implements billing.SettingsRepository using GORM
type GormBillingSettingsRepository struct {
	db *gorm.DB
}

// NewGormBillingSettingsRepository creates a new GormBillingSettingsRepository
func NewGormBillingSettingsRepository(db *gorm.DB) *GormBillingSettingsRepository {
	return &GormBillingSettingsRepository{db: db}
}

// Get returns the settings row. A missing row is not an error: callers fall
// back to billing.DefaultSettings.
func (r *GormBillingSettingsRepository) Get(ctx context.Context) (*billing.Settings, error) {
	var model models.BillingSettingsModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists the settings row
func (r *GormBillingSettingsRepository) Save(ctx context.Context, settings *billing.Settings) error {
	model := models.BillingSettingsModelFromDomain(settings)
	return r.db.WithContext(ctx).Save(model).Error
}
