package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "cardguard/internal/errors"
	"cardguard/internal/model"
)

func newOperationServiceUnderTest(cardRepo *MockCardRepository, opRepo *MockOperationRepository) OperationService {
	return NewOperationService(opRepo, NewCardService(cardRepo, nil))
}

func TestOperationService_Record(t *testing.T) {
	tests := []struct {
		name          string
		cardID        uint
		amount        decimal.Decimal
		opType        model.OperationType
		setupMock     func(*MockCardRepository, *MockOperationRepository)
		expectedError error
	}{
		{
			name:   "successful purchase on active card",
			cardID: 1,
			amount: decimal.NewFromInt(50),
			opType: model.OperationTypePurchase,
			setupMock: func(mCard *MockCardRepository, mOp *MockOperationRepository) {
				mCard.On("FindByID", mock.Anything, uint(1)).Return(&model.Card{
					ID: 1, Type: model.CardTypeDebit, Status: model.CardStatusActive, ClientID: 1,
				}, nil)
				mOp.On("Create", mock.Anything, mock.AnythingOfType("*model.Operation")).Return(nil)
			},
		},
		{
			name:          "zero card id",
			cardID:        0,
			amount:        decimal.NewFromInt(50),
			opType:        model.OperationTypePurchase,
			setupMock:     func(mCard *MockCardRepository, mOp *MockOperationRepository) {},
			expectedError: apperrors.ErrInvalidCardID,
		},
		{
			name:          "zero amount",
			cardID:        1,
			amount:        decimal.Zero,
			opType:        model.OperationTypePurchase,
			setupMock:     func(mCard *MockCardRepository, mOp *MockOperationRepository) {},
			expectedError: apperrors.ErrInvalidAmount,
		},
		{
			name:          "negative amount",
			cardID:        1,
			amount:        decimal.NewFromInt(-20),
			opType:        model.OperationTypeWithdrawal,
			setupMock:     func(mCard *MockCardRepository, mOp *MockOperationRepository) {},
			expectedError: apperrors.ErrInvalidAmount,
		},
		{
			name:          "unknown operation type",
			cardID:        1,
			amount:        decimal.NewFromInt(20),
			opType:        "TRANSFER",
			setupMock:     func(mCard *MockCardRepository, mOp *MockOperationRepository) {},
			expectedError: apperrors.ErrInvalidOperationType,
		},
		{
			name:   "card not found",
			cardID: 99,
			amount: decimal.NewFromInt(20),
			opType: model.OperationTypePurchase,
			setupMock: func(mCard *MockCardRepository, mOp *MockOperationRepository) {
				mCard.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrCardNotFound,
		},
		{
			name:   "blocked card rejected",
			cardID: 2,
			amount: decimal.NewFromInt(20),
			opType: model.OperationTypeOnlinePayment,
			setupMock: func(mCard *MockCardRepository, mOp *MockOperationRepository) {
				mCard.On("FindByID", mock.Anything, uint(2)).Return(&model.Card{
					ID: 2, Type: model.CardTypeCredit, Status: model.CardStatusBlocked, ClientID: 1,
				}, nil)
			},
			expectedError: apperrors.ErrCardNotActive,
		},
		{
			name:   "suspended card rejected",
			cardID: 3,
			amount: decimal.NewFromInt(20),
			opType: model.OperationTypeWithdrawal,
			setupMock: func(mCard *MockCardRepository, mOp *MockOperationRepository) {
				mCard.On("FindByID", mock.Anything, uint(3)).Return(&model.Card{
					ID: 3, Type: model.CardTypePrepaid, Status: model.CardStatusSuspended, ClientID: 1,
				}, nil)
			},
			expectedError: apperrors.ErrCardNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCardRepo := new(MockCardRepository)
			mockOpRepo := new(MockOperationRepository)
			tt.setupMock(mockCardRepo, mockOpRepo)

			service := newOperationServiceUnderTest(mockCardRepo, mockOpRepo)
			op, err := service.Record(context.Background(), tt.cardID, tt.amount, tt.opType, "Paris")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, op)
				mockOpRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, op)
				assert.Equal(t, tt.cardID, op.CardID)
				assert.Equal(t, tt.opType, op.Type)
				assert.True(t, op.Amount.Equal(tt.amount))
				assert.Equal(t, "Paris", op.Location)
				assert.WithinDuration(t, time.Now(), op.OccurredAt, time.Minute)
				mockOpRepo.AssertNumberOfCalls(t, "Create", 1)
			}

			mockCardRepo.AssertExpectations(t)
			mockOpRepo.AssertExpectations(t)
		})
	}
}

func TestOperationService_RecordTypedHelpers(t *testing.T) {
	mockCardRepo := new(MockCardRepository)
	mockOpRepo := new(MockOperationRepository)
	mockCardRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Card{
		ID: 1, Type: model.CardTypeDebit, Status: model.CardStatusActive, ClientID: 1,
	}, nil)

	var recorded []model.OperationType
	mockOpRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Operation")).
		Run(func(args mock.Arguments) {
			recorded = append(recorded, args.Get(1).(*model.Operation).Type)
		}).Return(nil)

	service := newOperationServiceUnderTest(mockCardRepo, mockOpRepo)
	amount := decimal.NewFromInt(10)

	_, err := service.RecordPurchase(context.Background(), 1, amount, "Paris")
	assert.NoError(t, err)
	_, err = service.RecordWithdrawal(context.Background(), 1, amount, "Paris")
	assert.NoError(t, err)
	_, err = service.RecordOnlinePayment(context.Background(), 1, amount, "Paris")
	assert.NoError(t, err)

	assert.Equal(t, []model.OperationType{
		model.OperationTypePurchase,
		model.OperationTypeWithdrawal,
		model.OperationTypeOnlinePayment,
	}, recorded)
}

func TestOperationService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockOperationRepository)
		expectedError error
	}{
		{
			name: "successful delete",
			id:   5,
			setupMock: func(m *MockOperationRepository) {
				m.On("FindByID", mock.Anything, uint(5)).Return(&model.Operation{ID: 5}, nil)
				m.On("Delete", mock.Anything, uint(5)).Return(nil)
			},
		},
		{
			name:          "zero id",
			id:            0,
			setupMock:     func(m *MockOperationRepository) {},
			expectedError: apperrors.ErrInvalidOperationID,
		},
		{
			name: "missing operation",
			id:   8,
			setupMock: func(m *MockOperationRepository) {
				m.On("FindByID", mock.Anything, uint(8)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrOperationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOpRepo := new(MockOperationRepository)
			tt.setupMock(mockOpRepo)

			service := newOperationServiceUnderTest(new(MockCardRepository), mockOpRepo)
			err := service.Delete(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockOpRepo.AssertExpectations(t)
		})
	}
}
