package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	"github.com/johnquangdev/insight-stream/internal/domain/repositories"
)

// MeetingRepository handles meeting and insight data operations
type MeetingRepository struct {
	db *gorm.DB
}

var _ repositories.MeetingRepository = (*MeetingRepository)(nil)

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// CreateWithInsights stores the meeting and its insight rows atomically
func (r *MeetingRepository) CreateWithInsights(ctx context.Context, meeting *entities.Meeting, insights []entities.Insight) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Insights").Create(meeting).Error; err != nil {
			return err
		}
		if len(insights) == 0 {
			return nil
		}
		for i := range insights {
			insights[i].MeetingID = meeting.ID
		}
		return tx.Create(&insights).Error
	})
}

// FindByID retrieves a meeting by ID
func (r *MeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

// List retrieves meetings ordered by date, newest first
func (r *MeetingRepository) List(ctx context.Context, limit, offset int) ([]*entities.Meeting, int64, error) {
	var (
		meetings []*entities.Meeting
		total    int64
	)

	query := r.db.WithContext(ctx).Model(&entities.Meeting{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Order("date DESC").Find(&meetings).Error; err != nil {
		return nil, 0, err
	}
	return meetings, total, nil
}

// Update applies the non-nil patch fields
func (r *MeetingRepository) Update(ctx context.Context, id uuid.UUID, patch entities.MeetingPatch) (*entities.Meeting, error) {
	meeting, err := r.FindByID(ctx, id)
	if err != nil || meeting == nil {
		return nil, err
	}
	if patch.Empty() {
		return meeting, nil
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.TranscriptText != nil {
		updates["transcript_text"] = *patch.TranscriptText
	}
	if patch.SummaryText != nil {
		updates["summary_text"] = *patch.SummaryText
	}

	if err := r.db.WithContext(ctx).Model(meeting).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// ListInsights retrieves the insights of a meeting
func (r *MeetingRepository) ListInsights(ctx context.Context, meetingID uuid.UUID) ([]entities.Insight, error) {
	var insights []entities.Insight
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("insight_type ASC, created_at ASC").
		Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}
