package entities

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meeting is one processed recording together with its analysis report
type Meeting struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title          string    `json:"title" gorm:"type:varchar(255);not null"`
	Date           time.Time `json:"date" gorm:"not null;index"`
	TranscriptText string    `json:"transcript_text" gorm:"type:text"`
	SummaryText    string    `json:"summary_text" gorm:"type:text"` // JSON-serialized Report
	FilePath       string    `json:"file_path" gorm:"type:varchar(1024)"`
	Insights       []Insight `json:"insights,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// BeforeCreate assigns an ID when the caller did not
func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// NewMeeting creates a meeting dated now
func NewMeeting(title, transcript, filePath string) *Meeting {
	return &Meeting{
		ID:             uuid.New(),
		Title:          title,
		Date:           time.Now().UTC(),
		TranscriptText: transcript,
		FilePath:       filePath,
	}
}

// Report decodes SummaryText. Invalid or empty JSON yields an empty report.
func (m *Meeting) Report() Report {
	if m.SummaryText == "" {
		return Report{}
	}
	var report Report
	if err := json.Unmarshal([]byte(m.SummaryText), &report); err != nil || report == nil {
		return Report{}
	}
	return report
}

// MeetingPatch holds the fields a partial update may replace
type MeetingPatch struct {
	Title          *string
	TranscriptText *string
	SummaryText    *string
}

// Validate rejects blank titles and summaries that are not JSON objects
func (p MeetingPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrInvalidTitle
	}
	if p.SummaryText != nil {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(*p.SummaryText), &obj); err != nil || obj == nil {
			return ErrInvalidSummary
		}
	}
	return nil
}

// Empty reports whether the patch changes nothing
func (p MeetingPatch) Empty() bool {
	return p.Title == nil && p.TranscriptText == nil && p.SummaryText == nil
}
