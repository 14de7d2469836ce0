package presenter

import (
	"github.com/johnquangdev/insight-stream/internal/adapter/dto/common"
	"github.com/johnquangdev/insight-stream/internal/adapter/dto/meeting"
	"github.com/johnquangdev/insight-stream/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity and its insights to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting, insights []entities.Insight) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	response := &meeting.MeetingResponse{
		ID:             m.ID,
		Title:          m.Title,
		Date:           m.Date,
		TranscriptText: m.TranscriptText,
		SummaryText:    m.SummaryText,
		Summary:        m.Report(),
		FilePath:       m.FilePath,
	}

	for _, in := range insights {
		response.Insights = append(response.Insights, meeting.InsightResponse{
			ID:          in.ID,
			InsightType: in.InsightType,
			Content:     in.Content,
		})
	}

	return response
}

// ToMeetingListResponse converts a page of meetings to ListMeetingsResponse
func ToMeetingListResponse(meetings []*entities.Meeting, total int64, page, pageSize int) *meeting.ListMeetingsResponse {
	items := make([]meeting.MeetingSummaryResponse, 0, len(meetings))
	for _, m := range meetings {
		items = append(items, meeting.MeetingSummaryResponse{ID: m.ID, Title: m.Title, Date: m.Date})
	}

	return &meeting.ListMeetingsResponse{
		Meetings:   items,
		Pagination: common.NewPagination(page, pageSize, total),
	}
}
