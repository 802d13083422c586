package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"cardguard/internal/cache"
	"cardguard/internal/errors"
	"cardguard/internal/model"
	"cardguard/internal/repository"
)

const cardCacheTTL = 5 * time.Minute

// maxNumberAttempts caps unique card number generation. The 16-digit space
// makes collisions vanishingly rare; hitting the cap means the number space
// is effectively exhausted and the call fails instead of looping forever.
const maxNumberAttempts = 50

// CardService owns the card lifecycle: creation with defaults, the
// ACTIVE/BLOCKED/SUSPENDED state machine, renewal and the read paths.
//
// Reads and mutations against the same card are not coordinated across
// callers; check-then-act sequences here are not transactional.
type CardService interface {
	Create(ctx context.Context, card *model.Card) (*model.Card, error)
	Get(ctx context.Context, id uint) (*model.Card, error)
	GetByNumber(ctx context.Context, number string) (*model.Card, error)
	ListByClient(ctx context.Context, clientID uint) ([]model.Card, error)
	ListByStatus(ctx context.Context, status model.CardStatus) ([]model.Card, error)
	List(ctx context.Context) ([]model.Card, error)
	Update(ctx context.Context, card *model.Card) (*model.Card, error)
	Delete(ctx context.Context, id uint) error

	Activate(ctx context.Context, id uint) (*model.Card, error)
	Block(ctx context.Context, id uint) (*model.Card, error)
	Suspend(ctx context.Context, id uint) (*model.Card, error)
	Renew(ctx context.Context, id uint) (*model.Card, error)
	CanOperate(ctx context.Context, id uint) (bool, error)
}

type cardService struct {
	cardRepo repository.CardRepository
	cache    *cache.Client
}

// NewCardService creates a new card service.
func NewCardService(cardRepo repository.CardRepository, cache *cache.Client) CardService {
	return &cardService{
		cardRepo: cardRepo,
		cache:    cache,
	}
}

func (s *cardService) cacheKey(id uint) string {
	return fmt.Sprintf("card:%d", id)
}

// Create validates the card, fills in a generated number, status and
// expiration where absent, applies the variant defaults and persists it.
func (s *cardService) Create(ctx context.Context, card *model.Card) (*model.Card, error) {
	if card == nil {
		return nil, errors.ErrNilCard
	}
	if card.ClientID == 0 {
		return nil, errors.ErrInvalidClientID
	}

	if card.Number == "" {
		number, err := s.generateUniqueNumber(ctx)
		if err != nil {
			return nil, err
		}
		card.Number = number
	} else if !ValidCardNumber(card.Number) {
		return nil, errors.ErrInvalidCardNumber
	}

	if card.Status == "" {
		card.Status = model.CardStatusActive
	} else if !card.Status.Valid() {
		return nil, errors.ErrInvalidStatus
	}

	if card.ExpirationDate.IsZero() {
		card.ExpirationDate = time.Now().AddDate(model.DefaultExpirationYears, 0, 0)
	}

	// Variant defaults are applied again inside the repository; calling
	// Normalize here rejects an unknown discriminator before touching
	// storage.
	if err := card.Normalize(); err != nil {
		return nil, err
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return card, nil
}

// generateUniqueNumber draws random 16-digit candidates until one is free,
// up to maxNumberAttempts.
func (s *cardService) generateUniqueNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		candidate := GenerateCardNumber()
		_, err := s.cardRepo.FindByNumber(ctx, candidate)
		if err == gorm.ErrRecordNotFound {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("check card number: %w", err)
		}
		// collision, draw again
	}
	return "", errors.ErrCardNumberExhausted
}

// Get retrieves a card by ID with caching.
func (s *cardService) Get(ctx context.Context, id uint) (*model.Card, error) {
	if id == 0 {
		return nil, errors.ErrInvalidCardID
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Card
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCardNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(card); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, cardCacheTTL)
	}

	return card, nil
}

// GetByNumber retrieves a card by its 16-digit number.
func (s *cardService) GetByNumber(ctx context.Context, number string) (*model.Card, error) {
	if number == "" {
		return nil, errors.ErrInvalidCardNumber
	}
	card, err := s.cardRepo.FindByNumber(ctx, number)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

// ListByClient returns all cards owned by a client.
func (s *cardService) ListByClient(ctx context.Context, clientID uint) ([]model.Card, error) {
	if clientID == 0 {
		return nil, errors.ErrInvalidClientID
	}
	cards, err := s.cardRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list cards by client: %w", err)
	}
	return cards, nil
}

// ListByStatus returns all cards in a given lifecycle status.
func (s *cardService) ListByStatus(ctx context.Context, status model.CardStatus) ([]model.Card, error) {
	if !status.Valid() {
		return nil, errors.ErrInvalidStatus
	}
	cards, err := s.cardRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list cards by status: %w", err)
	}
	return cards, nil
}

// List returns every stored card.
func (s *cardService) List(ctx context.Context) ([]model.Card, error) {
	cards, err := s.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// Update rewrites a card after validating it still refers to an existing row.
func (s *cardService) Update(ctx context.Context, card *model.Card) (*model.Card, error) {
	if card == nil {
		return nil, errors.ErrNilCard
	}
	if card.ID == 0 {
		return nil, errors.ErrInvalidCardID
	}
	if card.ClientID == 0 {
		return nil, errors.ErrInvalidClientID
	}

	if _, err := s.cardRepo.FindByID(ctx, card.ID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCardNotFound
		}
		return nil, err
	}

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(card.ID))
	return card, nil
}

// Delete removes a card. Operations and alerts referencing it are left in
// place.
func (s *cardService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.ErrInvalidCardID
	}
	if _, err := s.cardRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCardNotFound
		}
		return err
	}
	if err := s.cardRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Activate transitions a card to ACTIVE. Activating a card that is already
// ACTIVE is an illegal transition.
func (s *cardService) Activate(ctx context.Context, id uint) (*model.Card, error) {
	card, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.Status == model.CardStatusActive {
		return nil, errors.ErrCardAlreadyActive
	}
	return s.setStatus(ctx, card, model.CardStatusActive)
}

// Block transitions a card to BLOCKED from any state.
func (s *cardService) Block(ctx context.Context, id uint) (*model.Card, error) {
	card, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.setStatus(ctx, card, model.CardStatusBlocked)
}

// Suspend transitions a card to SUSPENDED from any state. It carries no
// guard and may be invoked repeatedly.
func (s *cardService) Suspend(ctx context.Context, id uint) (*model.Card, error) {
	card, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.setStatus(ctx, card, model.CardStatusSuspended)
}

// Renew extends the expiration by the default validity period from today
// and forces the card back to ACTIVE regardless of its prior state.
func (s *cardService) Renew(ctx context.Context, id uint) (*model.Card, error) {
	card, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	card.ExpirationDate = time.Now().AddDate(model.DefaultExpirationYears, 0, 0)
	return s.setStatus(ctx, card, model.CardStatusActive)
}

// CanOperate reports whether a card may perform operations: true only when
// the card exists and is ACTIVE.
func (s *cardService) CanOperate(ctx context.Context, id uint) (bool, error) {
	card, err := s.load(ctx, id)
	if err != nil {
		if err == errors.ErrCardNotFound {
			return false, nil
		}
		return false, err
	}
	return card.Status == model.CardStatusActive, nil
}

func (s *cardService) load(ctx context.Context, id uint) (*model.Card, error) {
	if id == 0 {
		return nil, errors.ErrInvalidCardID
	}
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

func (s *cardService) setStatus(ctx context.Context, card *model.Card, status model.CardStatus) (*model.Card, error) {
	card.Status = status
	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("update card status: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(card.ID))
	return card, nil
}
