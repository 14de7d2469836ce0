package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	domainrepo "github.com/johnquangdev/insight-stream/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/insight-stream/internal/usecase/errors"
)

// Service manages contact profiles
type Service interface {
	Create(ctx context.Context, contact *entities.Contact) error
	Get(ctx context.Context, id uuid.UUID) (*entities.Contact, error)
	List(ctx context.Context) ([]*entities.Contact, error)
	Update(ctx context.Context, id uuid.UUID, patch entities.ContactPatch) (*entities.Contact, error)
}

type contactService struct {
	contactRepo domainrepo.ContactRepository
	logger      *zap.Logger
}

// NewContactService creates the contact service
func NewContactService(contactRepo domainrepo.ContactRepository, logger *zap.Logger) Service {
	return &contactService{contactRepo: contactRepo, logger: logger}
}

func (s *contactService) Create(ctx context.Context, contact *entities.Contact) error {
	return s.contactRepo.Create(ctx, contact)
}

func (s *contactService) Get(ctx context.Context, id uuid.UUID) (*entities.Contact, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, usecaseErrors.ErrContactNotFound
	}
	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]*entities.Contact, error) {
	return s.contactRepo.List(ctx)
}

// Update replaces the fields set in patch; topics and timeline are replaced whole
func (s *contactService) Update(ctx context.Context, id uuid.UUID, patch entities.ContactPatch) (*entities.Contact, error) {
	contact, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := patch.Apply(contact); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidInput, err)
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("👤 Contact updated", zap.String("contact_id", id.String()))
	}
	return contact, nil
}
