package repository

import (
	"context"

	"gorm.io/gorm"

	"cardguard/internal/model"
)

// AlertRepository defines fraud alert persistence. Alerts are append-only.
type AlertRepository interface {
	Create(ctx context.Context, alert *model.FraudAlert) error
	FindByCardID(ctx context.Context, cardID uint) ([]model.FraudAlert, error)
	FindBySeverity(ctx context.Context, severity model.AlertSeverity) ([]model.FraudAlert, error)
	FindAll(ctx context.Context) ([]model.FraudAlert, error)
}

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new alert repository.
func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

// Create appends a new alert record.
func (r *alertRepository) Create(ctx context.Context, alert *model.FraudAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

// FindByCardID finds all alerts raised against a card, newest first.
func (r *alertRepository) FindByCardID(ctx context.Context, cardID uint) ([]model.FraudAlert, error) {
	var alerts []model.FraudAlert
	if err := r.db.WithContext(ctx).Where("card_id = ?", cardID).
		Order("id DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// FindBySeverity finds all alerts of a given severity, newest first.
func (r *alertRepository) FindBySeverity(ctx context.Context, severity model.AlertSeverity) ([]model.FraudAlert, error) {
	var alerts []model.FraudAlert
	if err := r.db.WithContext(ctx).Where("severity = ?", severity).
		Order("id DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// FindAll returns every stored alert, newest first.
func (r *alertRepository) FindAll(ctx context.Context) ([]model.FraudAlert, error) {
	var alerts []model.FraudAlert
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}
