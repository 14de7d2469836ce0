package presenter

import (
	"github.com/johnquangdev/insight-stream/internal/adapter/dto/contact"
	"github.com/johnquangdev/insight-stream/internal/domain/entities"
)

// ToContactResponse converts a Contact entity to ContactResponse DTO
func ToContactResponse(c *entities.Contact) *contact.ContactResponse {
	if c == nil {
		return nil
	}
	return &contact.ContactResponse{
		ID:            c.ID,
		Name:          c.Name,
		Role:          c.Role,
		Company:       c.Company,
		Avatar:        c.Avatar,
		Style:         c.Style,
		LastContact:   c.LastContact,
		TotalMeetings: c.TotalMeetings,
		Topics:        c.TopicList(),
		Timeline:      c.TimelineEvents(),
	}
}

// ToContactListResponse converts contacts to a list of ContactResponse
func ToContactListResponse(contacts []*entities.Contact) []*contact.ContactResponse {
	out := make([]*contact.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ToContactResponse(c))
	}
	return out
}
