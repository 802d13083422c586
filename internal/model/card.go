package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownCardType is returned when a persisted discriminator value does
// not match any known variant.
var ErrUnknownCardType = errors.New("unknown card type")

// CardType discriminates the three card variants. Each variant carries its
// own financial attributes; the other variants' columns stay NULL.
type CardType string

const (
	CardTypeDebit   CardType = "DEBIT"
	CardTypeCredit  CardType = "CREDIT"
	CardTypePrepaid CardType = "PREPAID"
)

// CardStatus represents the lifecycle status of a card.
type CardStatus string

const (
	CardStatusActive    CardStatus = "ACTIVE"
	CardStatusBlocked   CardStatus = "BLOCKED"
	CardStatusSuspended CardStatus = "SUSPENDED"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s CardStatus) Valid() bool {
	switch s {
	case CardStatusActive, CardStatusBlocked, CardStatusSuspended:
		return true
	}
	return false
}

// Default values applied to variant attributes left unset, both at creation
// and when reading back rows with NULL variant columns.
var (
	DefaultDailyCeiling   = decimal.NewFromInt(1000)
	DefaultMonthlyCeiling = decimal.NewFromInt(5000)
	DefaultInterestRate   = decimal.NewFromInt(15)
	DefaultPrepaidBalance = decimal.Zero
)

// DefaultExpirationYears is the validity period applied at creation and on
// renewal.
const DefaultExpirationYears = 3

// Card is stored single-table: all variants share one schema, Type is the
// discriminator and the variant-specific columns are nullable.
type Card struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Number         string     `json:"number" gorm:"size:16;uniqueIndex;not null"`
	ExpirationDate time.Time  `json:"expiration_date" gorm:"not null"`
	Status         CardStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	Type           CardType   `json:"type" gorm:"type:varchar(20);not null;index"`
	ClientID       uint       `json:"client_id" gorm:"not null;index"`

	// Debit
	DailyCeiling *decimal.Decimal `json:"daily_ceiling,omitempty" gorm:"type:decimal(20,2)"`
	// Credit
	MonthlyCeiling *decimal.Decimal `json:"monthly_ceiling,omitempty" gorm:"type:decimal(20,2)"`
	InterestRate   *decimal.Decimal `json:"interest_rate,omitempty" gorm:"type:decimal(5,2)"`
	// Prepaid
	AvailableBalance *decimal.Decimal `json:"available_balance,omitempty" gorm:"type:decimal(20,2)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Client Client `json:"-" gorm:"foreignKey:ClientID"`
}

// NewDebitCard builds a debit card for a client. A nil ceiling is filled
// with the default on Normalize.
func NewDebitCard(clientID uint, dailyCeiling *decimal.Decimal) *Card {
	return &Card{Type: CardTypeDebit, ClientID: clientID, DailyCeiling: dailyCeiling}
}

// NewCreditCard builds a credit card for a client.
func NewCreditCard(clientID uint, monthlyCeiling, interestRate *decimal.Decimal) *Card {
	return &Card{Type: CardTypeCredit, ClientID: clientID, MonthlyCeiling: monthlyCeiling, InterestRate: interestRate}
}

// NewPrepaidCard builds a prepaid card for a client.
func NewPrepaidCard(clientID uint, availableBalance *decimal.Decimal) *Card {
	return &Card{Type: CardTypePrepaid, ClientID: clientID, AvailableBalance: availableBalance}
}

// Normalize enforces the variant invariant: the discriminated variant's
// attributes are filled with defaults when absent and every other variant's
// attributes are cleared. An unrecognized discriminator is a data corruption
// signal, not a user error, and fails hard.
//
// The store applies Normalize on every read and write so partially
// populated legacy rows heal themselves.
func (c *Card) Normalize() error {
	switch c.Type {
	case CardTypeDebit:
		if c.DailyCeiling == nil {
			v := DefaultDailyCeiling
			c.DailyCeiling = &v
		}
		c.MonthlyCeiling, c.InterestRate, c.AvailableBalance = nil, nil, nil
	case CardTypeCredit:
		if c.MonthlyCeiling == nil {
			v := DefaultMonthlyCeiling
			c.MonthlyCeiling = &v
		}
		if c.InterestRate == nil {
			v := DefaultInterestRate
			c.InterestRate = &v
		}
		c.DailyCeiling, c.AvailableBalance = nil, nil
	case CardTypePrepaid:
		if c.AvailableBalance == nil {
			v := DefaultPrepaidBalance
			c.AvailableBalance = &v
		}
		c.DailyCeiling, c.MonthlyCeiling, c.InterestRate = nil, nil, nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCardType, c.Type)
	}
	return nil
}
