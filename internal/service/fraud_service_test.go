package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "cardguard/internal/errors"
	"cardguard/internal/model"
)

func newFraudServiceUnderTest(alertRepo *MockAlertRepository, opRepo *MockOperationRepository, cardRepo *MockCardRepository) FraudService {
	return NewFraudService(alertRepo, opRepo, cardRepo, NewCardService(cardRepo, nil))
}

func activeCard(id uint) *model.Card {
	return &model.Card{ID: id, Type: model.CardTypeDebit, Status: model.CardStatusActive, ClientID: 1}
}

func TestFraudService_AnalyzeCard_HighAmount(t *testing.T) {
	now := time.Now()
	mockAlertRepo := new(MockAlertRepository)
	mockOpRepo := new(MockOperationRepository)
	mockCardRepo := new(MockCardRepository)

	mockOpRepo.On("FindByCardID", mock.Anything, uint(1)).Return([]model.Operation{
		{ID: 1, CardID: 1, Amount: decimal.NewFromInt(1500), Type: model.OperationTypePurchase, Location: "Paris", OccurredAt: now},
	}, nil)
	mockAlertRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FraudAlert")).Return(nil)
	// critical alerts suspend the card
	mockCardRepo.On("FindByID", mock.Anything, uint(1)).Return(activeCard(1), nil)
	mockCardRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
		return c.Status == model.CardStatusSuspended
	})).Return(nil)

	service := newFraudServiceUnderTest(mockAlertRepo, mockOpRepo, mockCardRepo)
	alerts, err := service.AnalyzeCard(context.Background(), 1)

	assert.NoError(t, err)
	if assert.Len(t, alerts, 1) {
		assert.Equal(t, model.AlertSeverityCritical, alerts[0].Severity)
		assert.Contains(t, alerts[0].Description, "1500.00")
		assert.Equal(t, uint(1), alerts[0].CardID)
	}
	mockCardRepo.AssertExpectations(t)
	mockAlertRepo.AssertExpectations(t)
}

func TestFraudService_AnalyzeCard_AmountAtThresholdIsClean(t *testing.T) {
	mockAlertRepo := new(MockAlertRepository)
	mockOpRepo := new(MockOperationRepository)
	mockCardRepo := new(MockCardRepository)

	mockOpRepo.On("FindByCardID", mock.Anything, uint(1)).Return([]model.Operation{
		{ID: 1, CardID: 1, Amount: decimal.NewFromInt(1000), Type: model.OperationTypePurchase, Location: "Paris", OccurredAt: time.Now()},
	}, nil)

	service := newFraudServiceUnderTest(mockAlertRepo, mockOpRepo, mockCardRepo)
	alerts, err := service.AnalyzeCard(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, alerts)
	mockAlertRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFraudService_AnalyzeCard_RapidRelocation(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name        string
		operations  []model.Operation
		expectAlert bool
	}{
		{
			name: "different locations 10 minutes apart",
			operations: []model.Operation{
				{ID: 2, CardID: 1, Amount: decimal.NewFromInt(50), Location: "Tokyo", OccurredAt: now},
				{ID: 1, CardID: 1, Amount: decimal.NewFromInt(40), Location: "Paris", OccurredAt: now.Add(-10 * time.Minute)},
			},
			expectAlert: true,
		},
		{
			name: "different locations 40 minutes apart",
			operations: []model.Operation{
				{ID: 2, CardID: 1, Amount: decimal.NewFromInt(50), Location: "Tokyo", OccurredAt: now},
				{ID: 1, CardID: 1, Amount: decimal.NewFromInt(40), Location: "Paris", OccurredAt: now.Add(-40 * time.Minute)},
			},
			expectAlert: false,
		},
		{
			name: "same location 10 minutes apart",
			operations: []model.Operation{
				{ID: 2, CardID: 1, Amount: decimal.NewFromInt(50), Location: "Paris", OccurredAt: now},
				{ID: 1, CardID: 1, Amount: decimal.NewFromInt(40), Location: "Paris", OccurredAt: now.Add(-10 * time.Minute)},
			},
			expectAlert: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAlertRepo := new(MockAlertRepository)
			mockOpRepo := new(MockOperationRepository)
			mockCardRepo := new(MockCardRepository)

			mockOpRepo.On("FindByCardID", mock.Anything, uint(1)).Return(tt.operations, nil)
			if tt.expectAlert {
				mockAlertRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FraudAlert")).Return(nil)
			}

			service := newFraudServiceUnderTest(mockAlertRepo, mockOpRepo, mockCardRepo)
			alerts, err := service.AnalyzeCard(context.Background(), 1)

			assert.NoError(t, err)
			if tt.expectAlert {
				if assert.Len(t, alerts, 1) {
					assert.Equal(t, model.AlertSeverityWarning, alerts[0].Severity)
					assert.Contains(t, alerts[0].Description, "Tokyo")
					assert.Contains(t, alerts[0].Description, "Paris")
				}
				// warnings never suspend
				mockCardRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.Empty(t, alerts)
				mockAlertRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			mockAlertRepo.AssertExpectations(t)
		})
	}
}

func TestFraudService_AnalyzeCard_EmptyHistory(t *testing.T) {
	mockAlertRepo := new(MockAlertRepository)
	mockOpRepo := new(MockOperationRepository)
	mockCardRepo := new(MockCardRepository)

	mockOpRepo.On("FindByCardID", mock.Anything, uint(1)).Return([]model.Operation{}, nil)

	service := newFraudServiceUnderTest(mockAlertRepo, mockOpRepo, mockCardRepo)
	alerts, err := service.AnalyzeCard(context.Background(), 1)

	assert.NoError(t, err)
	assert.Nil(t, alerts)
}

func TestFraudService_AnalyzeCard_RerunRaisesAgain(t *testing.T) {
	// analysis is stateless: the same history raises the same alerts twice
	now := time.Now()
	mockAlertRepo := new(MockAlertRepository)
	mockOpRepo := new(MockOperationRepository)
	mockCardRepo := new(MockCardRepository)

	mockOpRepo.On("FindByCardID", mock.Anything, uint(1)).Return([]model.Operation{
		{ID: 1, CardID: 1, Amount: decimal.NewFromInt(2000), Type: model.OperationTypeWithdrawal, Location: "Paris", OccurredAt: now},
	}, nil)
	mockAlertRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FraudAlert")).Return(nil)
	mockCardRepo.On("FindByID", mock.Anything, uint(1)).Return(activeCard(1), nil)
	mockCardRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Card")).Return(nil)

	service := newFraudServiceUnderTest(mockAlertRepo, mockOpRepo, mockCardRepo)

	first, err := service.AnalyzeCard(context.Background(), 1)
	assert.NoError(t, err)
	second, err := service.AnalyzeCard(context.Background(), 1)
	assert.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
	mockAlertRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestFraudService_AnalyzeAll(t *testing.T) {
	now := time.Now()
	mockAlertRepo := new(MockAlertRepository)
	mockOpRepo := new(MockOperationRepository)
	mockCardRepo := new(MockCardRepository)

	mockCardRepo.On("FindAll", mock.Anything).Return([]model.Card{
		*activeCard(1),
		*activeCard(2),
	}, nil)
	// card 1 has a high-amount operation, card 2 is clean
	mockOpRepo.On("FindByCardID", mock.Anything, uint(1)).Return([]model.Operation{
		{ID: 1, CardID: 1, Amount: decimal.NewFromInt(5000), Type: model.OperationTypePurchase, Location: "Paris", OccurredAt: now},
	}, nil)
	mockOpRepo.On("FindByCardID", mock.Anything, uint(2)).Return([]model.Operation{
		{ID: 2, CardID: 2, Amount: decimal.NewFromInt(20), Type: model.OperationTypePurchase, Location: "Paris", OccurredAt: now},
	}, nil)
	mockAlertRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FraudAlert")).Return(nil)
	mockCardRepo.On("FindByID", mock.Anything, uint(1)).Return(activeCard(1), nil)
	mockCardRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Card")).Return(nil)

	service := newFraudServiceUnderTest(mockAlertRepo, mockOpRepo, mockCardRepo)
	total, err := service.AnalyzeAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	mockOpRepo.AssertNumberOfCalls(t, "FindByCardID", 2)
}

func TestFraudService_RaiseAlert(t *testing.T) {
	t.Run("critical alert suspends the card", func(t *testing.T) {
		mockAlertRepo := new(MockAlertRepository)
		mockCardRepo := new(MockCardRepository)

		mockAlertRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FraudAlert")).Return(nil)
		mockCardRepo.On("FindByID", mock.Anything, uint(4)).Return(activeCard(4), nil)
		mockCardRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
			return c.Status == model.CardStatusSuspended
		})).Return(nil)

		service := newFraudServiceUnderTest(mockAlertRepo, new(MockOperationRepository), mockCardRepo)
		alert, err := service.RaiseAlert(context.Background(), 4, "manual review", model.AlertSeverityCritical)

		assert.NoError(t, err)
		assert.NotNil(t, alert)
		mockCardRepo.AssertExpectations(t)
	})

	t.Run("warning alert leaves the card alone", func(t *testing.T) {
		mockAlertRepo := new(MockAlertRepository)
		mockCardRepo := new(MockCardRepository)
		mockAlertRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FraudAlert")).Return(nil)

		service := newFraudServiceUnderTest(mockAlertRepo, new(MockOperationRepository), mockCardRepo)
		alert, err := service.RaiseAlert(context.Background(), 4, "manual review", model.AlertSeverityWarning)

		assert.NoError(t, err)
		assert.NotNil(t, alert)
		mockCardRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		mockCardRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown severity rejected", func(t *testing.T) {
		service := newFraudServiceUnderTest(new(MockAlertRepository), new(MockOperationRepository), new(MockCardRepository))
		alert, err := service.RaiseAlert(context.Background(), 4, "manual review", "FATAL")

		assert.ErrorIs(t, err, apperrors.ErrInvalidSeverity)
		assert.Nil(t, alert)
	})

	t.Run("zero card id rejected", func(t *testing.T) {
		service := newFraudServiceUnderTest(new(MockAlertRepository), new(MockOperationRepository), new(MockCardRepository))
		alert, err := service.RaiseAlert(context.Background(), 0, "manual review", model.AlertSeverityInfo)

		assert.ErrorIs(t, err, apperrors.ErrInvalidCardID)
		assert.Nil(t, alert)
	})
}
