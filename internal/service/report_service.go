package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"cardguard/internal/model"
	"cardguard/internal/repository"
)

// CardUsage summarizes how often a card is used.
type CardUsage struct {
	CardID         uint   `json:"card_id"`
	MaskedNumber   string `json:"masked_number"`
	OperationCount int    `json:"operation_count"`
}

// OperationTypeStats aggregates operations of one type.
type OperationTypeStats struct {
	Type        model.OperationType `json:"type"`
	Count       int                 `json:"count"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
}

// InactiveCards groups the cards that cannot currently operate.
type InactiveCards struct {
	Blocked   []model.Card `json:"blocked"`
	Suspended []model.Card `json:"suspended"`
}

// ReportService produces portfolio-level aggregations for display by the
// HTTP layer.
type ReportService interface {
	TopUsedCards(ctx context.Context, limit int) ([]CardUsage, error)
	StatsByOperationType(ctx context.Context) ([]OperationTypeStats, error)
	ListInactiveCards(ctx context.Context) (*InactiveCards, error)
}

type reportService struct {
	cardRepo      repository.CardRepository
	operationRepo repository.OperationRepository
}

// NewReportService creates a new report service.
func NewReportService(cardRepo repository.CardRepository, operationRepo repository.OperationRepository) ReportService {
	return &reportService{
		cardRepo:      cardRepo,
		operationRepo: operationRepo,
	}
}

// TopUsedCards returns the cards with the most operations, masked numbers
// included. Cards deleted since their operations were recorded show up with
// a placeholder number.
func (s *reportService) TopUsedCards(ctx context.Context, limit int) ([]CardUsage, error) {
	if limit <= 0 {
		limit = 5
	}

	operations, err := s.operationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load operations: %w", err)
	}

	counts := make(map[uint]int)
	for _, op := range operations {
		counts[op.CardID]++
	}

	usages := make([]CardUsage, 0, len(counts))
	for cardID, count := range counts {
		masked := "unknown"
		if card, err := s.cardRepo.FindByID(ctx, cardID); err == nil {
			masked = MaskCardNumber(card.Number)
		}
		usages = append(usages, CardUsage{
			CardID:         cardID,
			MaskedNumber:   masked,
			OperationCount: count,
		})
	}

	sort.Slice(usages, func(i, j int) bool {
		if usages[i].OperationCount != usages[j].OperationCount {
			return usages[i].OperationCount > usages[j].OperationCount
		}
		return usages[i].CardID < usages[j].CardID
	})

	if len(usages) > limit {
		usages = usages[:limit]
	}
	return usages, nil
}

// StatsByOperationType returns the operation count and total amount per
// operation type, largest total first.
func (s *reportService) StatsByOperationType(ctx context.Context) ([]OperationTypeStats, error) {
	operations, err := s.operationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load operations: %w", err)
	}

	byType := make(map[model.OperationType]*OperationTypeStats)
	for _, op := range operations {
		stats, ok := byType[op.Type]
		if !ok {
			stats = &OperationTypeStats{Type: op.Type, TotalAmount: decimal.Zero}
			byType[op.Type] = stats
		}
		stats.Count++
		stats.TotalAmount = stats.TotalAmount.Add(op.Amount)
	}

	result := make([]OperationTypeStats, 0, len(byType))
	for _, stats := range byType {
		result = append(result, *stats)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TotalAmount.GreaterThan(result[j].TotalAmount)
	})
	return result, nil
}

// ListInactiveCards returns the blocked and suspended card populations.
func (s *reportService) ListInactiveCards(ctx context.Context) (*InactiveCards, error) {
	blocked, err := s.cardRepo.FindByStatus(ctx, model.CardStatusBlocked)
	if err != nil {
		return nil, fmt.Errorf("load blocked cards: %w", err)
	}
	suspended, err := s.cardRepo.FindByStatus(ctx, model.CardStatusSuspended)
	if err != nil {
		return nil, fmt.Errorf("load suspended cards: %w", err)
	}
	return &InactiveCards{Blocked: blocked, Suspended: suspended}, nil
}
