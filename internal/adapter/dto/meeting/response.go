package meeting

import (
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/insight-stream/internal/adapter/dto/common"
	"github.com/johnquangdev/insight-stream/internal/domain/entities"
)

// UploadResponse is the result of the upload pipeline
type UploadResponse struct {
	MeetingID  uuid.UUID                `json:"meeting_id"`
	Filename   string                   `json:"filename"`
	Transcript string                   `json:"transcript"`
	Analysis   *entities.AnalysisResult `json:"analysis"`
	CSVPath    string                   `json:"csv_path"`
	XLSXPath   string                   `json:"xlsx_path,omitempty"`
	Download   string                   `json:"download_url"`
}

// InsightResponse is one stored insight
type InsightResponse struct {
	ID          uuid.UUID `json:"id"`
	InsightType string    `json:"insight_type"`
	Content     string    `json:"content"`
}

// MeetingResponse is a meeting with its parsed report
type MeetingResponse struct {
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title"`
	Date           time.Time         `json:"date"`
	TranscriptText string            `json:"transcript_text"`
	SummaryText    string            `json:"summary_text"`
	Summary        entities.Report   `json:"summary"`
	FilePath       string            `json:"file_path"`
	Insights       []InsightResponse `json:"insights,omitempty"`
}

// MeetingSummaryResponse is a meeting entry in a list
type MeetingSummaryResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// ListMeetingsResponse is a page of meetings
type ListMeetingsResponse struct {
	Meetings   []MeetingSummaryResponse  `json:"meetings"`
	Pagination common.PaginationResponse `json:"pagination"`
}
