package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	"github.com/johnquangdev/insight-stream/internal/domain/repositories"
)

// ContactRepository handles contact data operations
type ContactRepository struct {
	db *gorm.DB
}

var _ repositories.ContactRepository = (*ContactRepository)(nil)

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new contact
func (r *ContactRepository) Create(ctx context.Context, contact *entities.Contact) error {
	if contact == nil {
		return errors.New("contact cannot be nil")
	}
	return r.db.WithContext(ctx).Create(contact).Error
}

// FindByID retrieves a contact by ID
func (r *ContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error) {
	var contact entities.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

// List retrieves all contacts ordered by name
func (r *ContactRepository) List(ctx context.Context) ([]*entities.Contact, error) {
	var contacts []*entities.Contact
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Save writes every column of the contact
func (r *ContactRepository) Save(ctx context.Context, contact *entities.Contact) error {
	if contact == nil {
		return errors.New("contact cannot be nil")
	}
	return r.db.WithContext(ctx).Save(contact).Error
}
