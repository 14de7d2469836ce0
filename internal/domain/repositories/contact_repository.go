package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/insight-stream/internal/domain/entities"
)

// ContactRepository defines persistence for contacts
type ContactRepository interface {
	Create(ctx context.Context, contact *entities.Contact) error

	// FindByID returns nil, nil when the contact does not exist
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error)

	List(ctx context.Context) ([]*entities.Contact, error)

	Save(ctx context.Context, contact *entities.Contact) error
}
