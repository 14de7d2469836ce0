package contact

import "github.com/johnquangdev/insight-stream/internal/domain/entities"

// UpdateContactRequest is a partial update of a contact
type UpdateContactRequest struct {
	Name          *string                   `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Role          *string                   `json:"role,omitempty" validate:"omitempty,max=255"`
	Company       *string                   `json:"company,omitempty" validate:"omitempty,max=255"`
	Avatar        *string                   `json:"avatar,omitempty" validate:"omitempty,max=1024"`
	Style         *string                   `json:"style,omitempty" validate:"omitempty,max=255"`
	LastContact   *string                   `json:"last_contact,omitempty" validate:"omitempty,max=64"`
	TotalMeetings *int                      `json:"total_meetings,omitempty" validate:"omitempty,min=0"`
	Topics        *[]string                 `json:"topics,omitempty"`
	Timeline      *[]entities.TimelineEvent `json:"timeline,omitempty"`
}

// Patch converts the request to a domain patch
func (r UpdateContactRequest) Patch() entities.ContactPatch {
	return entities.ContactPatch{
		Name:          r.Name,
		Role:          r.Role,
		Company:       r.Company,
		Avatar:        r.Avatar,
		Style:         r.Style,
		LastContact:   r.LastContact,
		TotalMeetings: r.TotalMeetings,
		Topics:        r.Topics,
		Timeline:      r.Timeline,
	}
}
