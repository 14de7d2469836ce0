package contact

import (
	"github.com/google/uuid"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
)

// ContactResponse is a contact with decoded topics and timeline
type ContactResponse struct {
	ID            uuid.UUID                `json:"id"`
	Name          string                   `json:"name"`
	Role          string                   `json:"role"`
	Company       string                   `json:"company"`
	Avatar        string                   `json:"avatar"`
	Style         string                   `json:"style"`
	LastContact   string                   `json:"last_contact"`
	TotalMeetings int                      `json:"total_meetings"`
	Topics        []string                 `json:"topics"`
	Timeline      []entities.TimelineEvent `json:"timeline"`
}
