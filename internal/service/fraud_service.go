package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"cardguard/internal/errors"
	"cardguard/internal/model"
	"cardguard/internal/repository"
)

// Fraud detection thresholds.
var highAmountThreshold = decimal.NewFromInt(1000)

// relocationWindowMinutes bounds the rapid-relocation rule: two consecutive
// operations in different locations less than this many minutes apart raise
// a warning.
const relocationWindowMinutes = 30

// FraudService scans operation histories, raises alerts and cascades
// critical findings into an automatic card suspension.
//
// Analysis is stateless: re-running it over unchanged operations raises the
// same alerts again. Deduplication is intentionally absent.
type FraudService interface {
	// AnalyzeCard runs the heuristics over one card's operation history and
	// returns the alerts it raised.
	AnalyzeCard(ctx context.Context, cardID uint) ([]model.FraudAlert, error)
	// AnalyzeAll runs AnalyzeCard over every stored card and returns the
	// total number of alerts raised.
	AnalyzeAll(ctx context.Context) (int, error)
	// RaiseAlert persists an alert. A CRITICAL severity unconditionally
	// suspends the card as a side effect.
	RaiseAlert(ctx context.Context, cardID uint, description string, severity model.AlertSeverity) (*model.FraudAlert, error)

	ListByCard(ctx context.Context, cardID uint) ([]model.FraudAlert, error)
	ListBySeverity(ctx context.Context, severity model.AlertSeverity) ([]model.FraudAlert, error)
	List(ctx context.Context) ([]model.FraudAlert, error)
}

type fraudService struct {
	alertRepo     repository.AlertRepository
	operationRepo repository.OperationRepository
	cardRepo      repository.CardRepository
	cardService   CardService
}

// NewFraudService creates a new fraud service.
func NewFraudService(
	alertRepo repository.AlertRepository,
	operationRepo repository.OperationRepository,
	cardRepo repository.CardRepository,
	cardService CardService,
) FraudService {
	return &fraudService{
		alertRepo:     alertRepo,
		operationRepo: operationRepo,
		cardRepo:      cardRepo,
		cardService:   cardService,
	}
}

// AnalyzeCard evaluates two independent heuristics over the card's
// operations as retrieved from storage (most recent first):
//
//  1. high-amount: any single operation above the threshold raises a
//     CRITICAL alert;
//  2. rapid-relocation: adjacent operations in different locations less
//     than 30 minutes apart raise a WARNING alert. Only consecutive pairs
//     in the retrieved ordering are inspected.
func (s *fraudService) AnalyzeCard(ctx context.Context, cardID uint) ([]model.FraudAlert, error) {
	if cardID == 0 {
		return nil, errors.ErrInvalidCardID
	}

	operations, err := s.operationRepo.FindByCardID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("load operations: %w", err)
	}
	if len(operations) == 0 {
		return nil, nil
	}

	var raised []model.FraudAlert

	for _, op := range operations {
		if op.Amount.GreaterThan(highAmountThreshold) {
			alert, err := s.RaiseAlert(ctx, cardID,
				fmt.Sprintf("high amount detected: %s", op.Amount.StringFixed(2)),
				model.AlertSeverityCritical)
			if err != nil {
				return raised, err
			}
			raised = append(raised, *alert)
		}
	}

	relocations, err := s.detectRapidRelocations(ctx, cardID, operations)
	if err != nil {
		return raised, err
	}
	raised = append(raised, relocations...)

	return raised, nil
}

// detectRapidRelocations inspects consecutive operation pairs for location
// changes inside the relocation window.
func (s *fraudService) detectRapidRelocations(ctx context.Context, cardID uint, operations []model.Operation) ([]model.FraudAlert, error) {
	var raised []model.FraudAlert
	for i := 0; i+1 < len(operations); i++ {
		first, second := operations[i], operations[i+1]
		if first.Location == second.Location {
			continue
		}
		gap := first.OccurredAt.Sub(second.OccurredAt)
		if gap < 0 {
			gap = -gap
		}
		if gap.Minutes() < relocationWindowMinutes {
			alert, err := s.RaiseAlert(ctx, cardID,
				fmt.Sprintf("rapid operations in different locations: %s and %s", first.Location, second.Location),
				model.AlertSeverityWarning)
			if err != nil {
				return raised, err
			}
			raised = append(raised, *alert)
		}
	}
	return raised, nil
}

// RaiseAlert persists the alert and, when it is CRITICAL, suspends the card
// through the lifecycle service. The suspension cannot be suppressed by the
// caller.
func (s *fraudService) RaiseAlert(ctx context.Context, cardID uint, description string, severity model.AlertSeverity) (*model.FraudAlert, error) {
	if cardID == 0 {
		return nil, errors.ErrInvalidCardID
	}
	if !severity.Valid() {
		return nil, errors.ErrInvalidSeverity
	}

	alert := &model.FraudAlert{
		Description: description,
		Severity:    severity,
		CardID:      cardID,
	}
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("create alert: %w", err)
	}

	if severity == model.AlertSeverityCritical {
		if _, err := s.cardService.Suspend(ctx, cardID); err != nil {
			return nil, fmt.Errorf("auto-suspend card %d: %w", cardID, err)
		}
	}

	return alert, nil
}

// AnalyzeAll sweeps the whole card portfolio.
func (s *fraudService) AnalyzeAll(ctx context.Context) (int, error) {
	cards, err := s.cardRepo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load cards: %w", err)
	}

	total := 0
	for _, card := range cards {
		raised, err := s.AnalyzeCard(ctx, card.ID)
		if err != nil {
			return total, err
		}
		total += len(raised)
	}
	return total, nil
}

// ListByCard returns all alerts raised against a card, newest first.
func (s *fraudService) ListByCard(ctx context.Context, cardID uint) ([]model.FraudAlert, error) {
	if cardID == 0 {
		return nil, errors.ErrInvalidCardID
	}
	alerts, err := s.alertRepo.FindByCardID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("list alerts by card: %w", err)
	}
	return alerts, nil
}

// ListBySeverity returns all alerts of a given severity, newest first.
func (s *fraudService) ListBySeverity(ctx context.Context, severity model.AlertSeverity) ([]model.FraudAlert, error) {
	if !severity.Valid() {
		return nil, errors.ErrInvalidSeverity
	}
	alerts, err := s.alertRepo.FindBySeverity(ctx, severity)
	if err != nil {
		return nil, fmt.Errorf("list alerts by severity: %w", err)
	}
	return alerts, nil
}

// List returns every stored alert, newest first.
func (s *fraudService) List(ctx context.Context) ([]model.FraudAlert, error) {
	alerts, err := s.alertRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}
