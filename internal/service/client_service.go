package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"cardguard/internal/errors"
	"cardguard/internal/model"
	"cardguard/internal/repository"
)

// ClientService handles client record management. Registration and login
// live in AuthService.
type ClientService interface {
	Get(ctx context.Context, id uint) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Update(ctx context.Context, client *model.Client) (*model.Client, error)
	Delete(ctx context.Context, id uint) error
}

type clientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service.
func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

// Get retrieves a client by ID.
func (s *clientService) Get(ctx context.Context, id uint) (*model.Client, error) {
	if id == 0 {
		return nil, errors.ErrInvalidClientID
	}
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// List returns every stored client.
func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// Update rewrites a client's record.
func (s *clientService) Update(ctx context.Context, client *model.Client) (*model.Client, error) {
	if client == nil || client.ID == 0 {
		return nil, errors.ErrInvalidClientID
	}
	if strings.TrimSpace(client.Name) == "" {
		return nil, errors.ErrClientNameRequired
	}

	existing, err := s.clientRepo.FindByID(ctx, client.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrClientNotFound
		}
		return nil, err
	}

	existing.Name = client.Name
	existing.Email = client.Email
	existing.Phone = client.Phone
	if err := s.clientRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return existing, nil
}

// Delete removes a client. Cards owned by the client are left in place.
func (s *clientService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.ErrInvalidClientID
	}
	if _, err := s.clientRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrClientNotFound
		}
		return err
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
