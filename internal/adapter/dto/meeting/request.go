package meeting

// UploadRequest carries the form fields of POST /upload
type UploadRequest struct {
	Filename            string `form:"-" validate:"required,media_ext"`
	TranscriptionMethod string `form:"transcription_method" validate:"transcription_method"`
	ModelID             string `form:"model_id" validate:"omitempty,max=128"`
}

// UpdateMeetingRequest is a partial update of a meeting
type UpdateMeetingRequest struct {
	Title          *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	TranscriptText *string `json:"transcript_text,omitempty"`
	SummaryText    *string `json:"summary_text,omitempty" validate:"omitempty,json"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}
