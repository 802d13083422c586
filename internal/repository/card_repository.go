package repository

import (
	"context"

	"gorm.io/gorm"

	"cardguard/internal/model"
)

// CardRepository defines card persistence operations.
//
// The card table is the union of all variant columns plus the Type
// discriminator. Every read normalizes the loaded card: NULL variant
// attributes are backfilled with defaults and an unknown discriminator is
// surfaced as a mapping error rather than silently falling back.
type CardRepository interface {
	Create(ctx context.Context, card *model.Card) error
	Update(ctx context.Context, card *model.Card) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Card, error)
	FindByNumber(ctx context.Context, number string) (*model.Card, error)
	FindByClientID(ctx context.Context, clientID uint) ([]model.Card, error)
	FindByStatus(ctx context.Context, status model.CardStatus) ([]model.Card, error)
	FindAll(ctx context.Context) ([]model.Card, error)
}

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository.
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

// Create inserts a card row. Only the discriminated variant's columns are
// populated; the generated id is written back to the card.
func (r *cardRepository) Create(ctx context.Context, card *model.Card) error {
	if err := card.Normalize(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(card).Error
}

// Update rewrites the full row by id, same column population rule as Create.
func (r *cardRepository) Update(ctx context.Context, card *model.Card) error {
	if err := card.Normalize(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(card).Error
}

// Delete removes the row unconditionally. Operations and alerts referencing
// the card are the caller's responsibility.
func (r *cardRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Card{}, id).Error
}

// FindByID finds a card by ID.
func (r *cardRepository) FindByID(ctx context.Context, id uint) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		return nil, err
	}
	if err := card.Normalize(); err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByNumber finds a card by its 16-digit number.
func (r *cardRepository) FindByNumber(ctx context.Context, number string) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&card).Error; err != nil {
		return nil, err
	}
	if err := card.Normalize(); err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByClientID finds all cards owned by a client.
func (r *cardRepository) FindByClientID(ctx context.Context, clientID uint) ([]model.Card, error) {
	var cards []model.Card
	if err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&cards).Error; err != nil {
		return nil, err
	}
	return normalizeAll(cards)
}

// FindByStatus finds all cards in a given lifecycle status.
func (r *cardRepository) FindByStatus(ctx context.Context, status model.CardStatus) ([]model.Card, error) {
	var cards []model.Card
	if err := r.db.WithContext(ctx).Where("status = ?", status).Find(&cards).Error; err != nil {
		return nil, err
	}
	return normalizeAll(cards)
}

// FindAll returns every stored card.
func (r *cardRepository) FindAll(ctx context.Context) ([]model.Card, error) {
	var cards []model.Card
	if err := r.db.WithContext(ctx).Find(&cards).Error; err != nil {
		return nil, err
	}
	return normalizeAll(cards)
}

func normalizeAll(cards []model.Card) ([]model.Card, error) {
	for i := range cards {
		if err := cards[i].Normalize(); err != nil {
			return nil, err
		}
	}
	return cards, nil
}
