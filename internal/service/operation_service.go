package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cardguard/internal/errors"
	"cardguard/internal/model"
	"cardguard/internal/repository"
)

// OperationService records financial operations against cards. A card must
// exist and be ACTIVE for an operation to be recorded; ceilings and
// balances are advisory attributes and are not enforced here.
type OperationService interface {
	Record(ctx context.Context, cardID uint, amount decimal.Decimal, opType model.OperationType, location string) (*model.Operation, error)
	RecordPurchase(ctx context.Context, cardID uint, amount decimal.Decimal, location string) (*model.Operation, error)
	RecordWithdrawal(ctx context.Context, cardID uint, amount decimal.Decimal, location string) (*model.Operation, error)
	RecordOnlinePayment(ctx context.Context, cardID uint, amount decimal.Decimal, location string) (*model.Operation, error)

	ListByCard(ctx context.Context, cardID uint) ([]model.Operation, error)
	ListByType(ctx context.Context, opType model.OperationType) ([]model.Operation, error)
	List(ctx context.Context) ([]model.Operation, error)
	Delete(ctx context.Context, id uint) error
}

type operationService struct {
	operationRepo repository.OperationRepository
	cardService   CardService
}

// NewOperationService creates a new operation service.
func NewOperationService(operationRepo repository.OperationRepository, cardService CardService) OperationService {
	return &operationService{
		operationRepo: operationRepo,
		cardService:   cardService,
	}
}

// Record validates eligibility and appends an immutable operation stamped
// with the current time. Exactly one row is appended; the card itself is
// not mutated.
func (s *operationService) Record(ctx context.Context, cardID uint, amount decimal.Decimal, opType model.OperationType, location string) (*model.Operation, error) {
	if cardID == 0 {
		return nil, errors.ErrInvalidCardID
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}
	if !opType.Valid() {
		return nil, errors.ErrInvalidOperationType
	}

	card, err := s.cardService.Get(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.Status != model.CardStatusActive {
		return nil, errors.ErrCardNotActive
	}

	op := &model.Operation{
		OccurredAt: time.Now(),
		Amount:     amount,
		Type:       opType,
		Location:   location,
		CardID:     cardID,
	}
	if err := s.operationRepo.Create(ctx, op); err != nil {
		return nil, fmt.Errorf("record operation: %w", err)
	}
	return op, nil
}

// RecordPurchase records a purchase operation.
func (s *operationService) RecordPurchase(ctx context.Context, cardID uint, amount decimal.Decimal, location string) (*model.Operation, error) {
	return s.Record(ctx, cardID, amount, model.OperationTypePurchase, location)
}

// RecordWithdrawal records a withdrawal operation.
func (s *operationService) RecordWithdrawal(ctx context.Context, cardID uint, amount decimal.Decimal, location string) (*model.Operation, error) {
	return s.Record(ctx, cardID, amount, model.OperationTypeWithdrawal, location)
}

// RecordOnlinePayment records an online payment operation.
func (s *operationService) RecordOnlinePayment(ctx context.Context, cardID uint, amount decimal.Decimal, location string) (*model.Operation, error) {
	return s.Record(ctx, cardID, amount, model.OperationTypeOnlinePayment, location)
}

// ListByCard returns a card's operations, most recent first.
func (s *operationService) ListByCard(ctx context.Context, cardID uint) ([]model.Operation, error) {
	if cardID == 0 {
		return nil, errors.ErrInvalidCardID
	}
	ops, err := s.operationRepo.FindByCardID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("list operations by card: %w", err)
	}
	return ops, nil
}

// ListByType returns all operations of the given type, most recent first.
func (s *operationService) ListByType(ctx context.Context, opType model.OperationType) ([]model.Operation, error) {
	if !opType.Valid() {
		return nil, errors.ErrInvalidOperationType
	}
	ops, err := s.operationRepo.FindByType(ctx, opType)
	if err != nil {
		return nil, fmt.Errorf("list operations by type: %w", err)
	}
	return ops, nil
}

// List returns every stored operation, most recent first.
func (s *operationService) List(ctx context.Context) ([]model.Operation, error) {
	ops, err := s.operationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	return ops, nil
}

// Delete removes a single operation record.
func (s *operationService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.ErrInvalidOperationID
	}
	if _, err := s.operationRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrOperationNotFound
		}
		return err
	}
	if err := s.operationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete operation: %w", err)
	}
	return nil
}
