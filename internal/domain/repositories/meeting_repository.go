package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/insight-stream/internal/domain/entities"
)

// MeetingRepository defines persistence for meetings and their insights
type MeetingRepository interface {
	// CreateWithInsights stores a meeting and its insights in one transaction
	CreateWithInsights(ctx context.Context, meeting *entities.Meeting, insights []entities.Insight) error

	// FindByID returns nil, nil when the meeting does not exist
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// List returns meetings newest first
	List(ctx context.Context, limit, offset int) ([]*entities.Meeting, int64, error)

	// Update applies a partial update and returns the stored meeting, or nil, nil when missing
	Update(ctx context.Context, id uuid.UUID, patch entities.MeetingPatch) (*entities.Meeting, error)

	// ListInsights returns the insights of a meeting
	ListInsights(ctx context.Context, meetingID uuid.UUID) ([]entities.Insight, error)
}
