package model

import "time"

// AlertSeverity grades a fraud finding. A CRITICAL alert unconditionally
// suspends the card it was raised against.
type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "INFO"
	AlertSeverityWarning  AlertSeverity = "WARNING"
	AlertSeverityCritical AlertSeverity = "CRITICAL"
)

// Valid reports whether the severity is one of the known levels.
func (s AlertSeverity) Valid() bool {
	switch s {
	case AlertSeverityInfo, AlertSeverityWarning, AlertSeverityCritical:
		return true
	}
	return false
}

// FraudAlert is an immutable record of a fraud finding against a card.
type FraudAlert struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Description string        `json:"description" gorm:"type:text;not null"`
	Severity    AlertSeverity `json:"severity" gorm:"type:varchar(20);not null;index"`
	CardID      uint          `json:"card_id" gorm:"not null;index"`
	CreatedAt   time.Time     `json:"created_at"`

	// Relations
	Card Card `json:"-" gorm:"foreignKey:CardID"`
}
