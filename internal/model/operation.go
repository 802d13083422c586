package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType represents the kind of financial operation performed with a
// card.
type OperationType string

const (
	OperationTypePurchase      OperationType = "PURCHASE"
	OperationTypeWithdrawal    OperationType = "WITHDRAWAL"
	OperationTypeOnlinePayment OperationType = "ONLINE_PAYMENT"
)

// Valid reports whether the operation type is one of the known kinds.
func (t OperationType) Valid() bool {
	switch t {
	case OperationTypePurchase, OperationTypeWithdrawal, OperationTypeOnlinePayment:
		return true
	}
	return false
}

// Operation is an immutable record of a financial operation against a card.
// Rows are only ever inserted or deleted, never updated.
type Operation struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OccurredAt time.Time       `json:"occurred_at" gorm:"not null;index"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Type       OperationType   `json:"type" gorm:"type:varchar(20);not null;index"`
	Location   string          `json:"location" gorm:"size:255;not null"`
	CardID     uint            `json:"card_id" gorm:"not null;index"`
	CreatedAt  time.Time       `json:"created_at"`

	// Relations
	Card Card `json:"-" gorm:"foreignKey:CardID"`
}
