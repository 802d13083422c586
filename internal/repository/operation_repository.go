package repository

import (
	"context"

	"gorm.io/gorm"

	"cardguard/internal/model"
)

// OperationRepository defines operation persistence. Operations are
// append-only: there is no update method.
type OperationRepository interface {
	Create(ctx context.Context, op *model.Operation) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Operation, error)
	// FindByCardID returns a card's operations most recent first. The fraud
	// engine's relocation rule inspects adjacent pairs in this ordering.
	FindByCardID(ctx context.Context, cardID uint) ([]model.Operation, error)
	FindByType(ctx context.Context, opType model.OperationType) ([]model.Operation, error)
	FindAll(ctx context.Context) ([]model.Operation, error)
}

type operationRepository struct {
	db *gorm.DB
}

// NewOperationRepository creates a new operation repository.
func NewOperationRepository(db *gorm.DB) OperationRepository {
	return &operationRepository{db: db}
}

// Create appends a new operation record.
func (r *operationRepository) Create(ctx context.Context, op *model.Operation) error {
	return r.db.WithContext(ctx).Create(op).Error
}

// Delete removes a single operation by id.
func (r *operationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Operation{}, id).Error
}

// FindByID finds an operation by ID.
func (r *operationRepository) FindByID(ctx context.Context, id uint) (*model.Operation, error) {
	var op model.Operation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&op).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

// FindByCardID finds all operations for a card, most recent first.
func (r *operationRepository) FindByCardID(ctx context.Context, cardID uint) ([]model.Operation, error) {
	var ops []model.Operation
	if err := r.db.WithContext(ctx).Where("card_id = ?", cardID).
		Order("occurred_at DESC").Find(&ops).Error; err != nil {
		return nil, err
	}
	return ops, nil
}

// FindByType finds all operations of a given type, most recent first.
func (r *operationRepository) FindByType(ctx context.Context, opType model.OperationType) ([]model.Operation, error) {
	var ops []model.Operation
	if err := r.db.WithContext(ctx).Where("type = ?", opType).
		Order("occurred_at DESC").Find(&ops).Error; err != nil {
		return nil, err
	}
	return ops, nil
}

// FindAll returns every stored operation, most recent first.
func (r *operationRepository) FindAll(ctx context.Context) ([]model.Operation, error) {
	var ops []model.Operation
	if err := r.db.WithContext(ctx).Order("occurred_at DESC").Find(&ops).Error; err != nil {
		return nil, err
	}
	return ops, nil
}
