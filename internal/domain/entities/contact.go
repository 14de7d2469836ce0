package entities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TimelineEvent is one dated interaction with a contact
type TimelineEvent struct {
	ID        int      `json:"id"`
	Date      string   `json:"date"`
	Event     string   `json:"event"`
	Topics    []string `json:"topics"`
	Sentiment string   `json:"sentiment"`
}

// UnmarshalJSON accepts the id as a number or a numeric string
func (e *TimelineEvent) UnmarshalJSON(b []byte) error {
	type event TimelineEvent
	var raw struct {
		event
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*e = TimelineEvent(raw.event)
	e.ID = 0

	if len(raw.ID) == 0 || string(raw.ID) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw.ID, &e.ID); err == nil {
		return nil
	}
	var text string
	if err := json.Unmarshal(raw.ID, &text); err != nil {
		return fmt.Errorf("timeline id: %w", err)
	}
	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("timeline id %q is not a number", text)
	}
	e.ID = id
	return nil
}

// Contact is a person profile kept independently of meetings
type Contact struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string         `json:"name" gorm:"type:varchar(255);not null;index"`
	Role          string         `json:"role" gorm:"type:varchar(255)"`
	Company       string         `json:"company" gorm:"type:varchar(255)"`
	Avatar        string         `json:"avatar" gorm:"type:varchar(1024)"`
	Style         string         `json:"style" gorm:"type:varchar(255)"`
	LastContact   string         `json:"last_contact" gorm:"type:varchar(64)"`
	TotalMeetings int            `json:"total_meetings" gorm:"default:0"`
	Topics        datatypes.JSON `json:"topics" gorm:"type:text"`
	Timeline      datatypes.JSON `json:"timeline" gorm:"type:text"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Contact) TableName() string {
	return "contacts"
}

// BeforeCreate assigns an ID when the caller did not
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if len(c.Topics) == 0 {
		c.Topics = datatypes.JSON("[]")
	}
	if len(c.Timeline) == 0 {
		c.Timeline = datatypes.JSON("[]")
	}
	return nil
}

// TopicList decodes Topics, returning an empty list when it does not parse
func (c *Contact) TopicList() []string {
	topics := []string{}
	if len(c.Topics) == 0 {
		return topics
	}
	if err := json.Unmarshal(c.Topics, &topics); err != nil || topics == nil {
		return []string{}
	}
	return topics
}

// TimelineEvents decodes Timeline, returning an empty list when it does not parse
func (c *Contact) TimelineEvents() []TimelineEvent {
	events := []TimelineEvent{}
	if len(c.Timeline) == 0 {
		return events
	}
	if err := json.Unmarshal(c.Timeline, &events); err != nil || events == nil {
		return []TimelineEvent{}
	}
	return events
}

// ContactPatch holds the fields a partial update may replace
type ContactPatch struct {
	Name          *string
	Role          *string
	Company       *string
	Avatar        *string
	Style         *string
	LastContact   *string
	TotalMeetings *int
	Topics        *[]string
	Timeline      *[]TimelineEvent
}

// Apply writes the non-nil fields of p onto c
func (p ContactPatch) Apply(c *Contact) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrInvalidName
	}
	if p.TotalMeetings != nil && *p.TotalMeetings < 0 {
		return ErrInvalidCount
	}

	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Role != nil {
		c.Role = *p.Role
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Avatar != nil {
		c.Avatar = *p.Avatar
	}
	if p.Style != nil {
		c.Style = *p.Style
	}
	if p.LastContact != nil {
		c.LastContact = *p.LastContact
	}
	if p.TotalMeetings != nil {
		c.TotalMeetings = *p.TotalMeetings
	}
	if p.Topics != nil {
		b, err := json.Marshal(*p.Topics)
		if err != nil {
			return err
		}
		c.Topics = datatypes.JSON(b)
	}
	if p.Timeline != nil {
		b, err := json.Marshal(*p.Timeline)
		if err != nil {
			return err
		}
		c.Timeline = datatypes.JSON(b)
	}
	return nil
}
