package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/insight-stream/internal/usecase/errors"
)

type memoryContactRepo struct {
	contacts map[uuid.UUID]*entities.Contact
	saves    int
}

func (r *memoryContactRepo) Create(ctx context.Context, c *entities.Contact) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.contacts[c.ID] = c
	return nil
}

func (r *memoryContactRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error) {
	return r.contacts[id], nil
}

func (r *memoryContactRepo) List(ctx context.Context) ([]*entities.Contact, error) {
	var out []*entities.Contact
	for _, c := range r.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (r *memoryContactRepo) Save(ctx context.Context, c *entities.Contact) error {
	r.saves++
	r.contacts[c.ID] = c
	return nil
}

func TestUpdate_ReplacesSetFields(t *testing.T) {
	repo := &memoryContactRepo{contacts: map[uuid.UUID]*entities.Contact{}}
	svc := NewContactService(repo, nil)
	ctx := context.Background()

	c := &entities.Contact{Name: "Sarah Chen", Role: "VP Engineering", Company: "Acme"}
	if err := svc.Create(ctx, c); err != nil {
		t.Fatal(err)
	}

	role := "CTO"
	topics := []string{"cloud costs", "hiring"}
	got, err := svc.Update(ctx, c.ID, entities.ContactPatch{Role: &role, Topics: &topics})
	if err != nil {
		t.Fatal(err)
	}
	if got.Role != "CTO" || got.Company != "Acme" {
		t.Fatalf("unexpected contact %+v", got)
	}
	if tl := got.TopicList(); len(tl) != 2 || tl[1] != "hiring" {
		t.Fatalf("unexpected topics %v", tl)
	}
	if repo.saves != 1 {
		t.Fatalf("expected one save, got %d", repo.saves)
	}
}

func TestUpdate_MissingContact(t *testing.T) {
	repo := &memoryContactRepo{contacts: map[uuid.UUID]*entities.Contact{}}
	svc := NewContactService(repo, nil)

	name := "Nobody"
	_, err := svc.Update(context.Background(), uuid.New(), entities.ContactPatch{Name: &name})
	if !errors.Is(err, usecaseErrors.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
	if repo.saves != 0 {
		t.Fatal("nothing should be saved")
	}
}
