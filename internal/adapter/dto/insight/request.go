package insight

// SmartSearchRequest is a natural-language question over the graph.
// It is read from the JSON body or from the query string.
type SmartSearchRequest struct {
	Query   string `json:"query" query:"query" validate:"required,max=2000"`
	ModelID string `json:"model_id" query:"model_id" validate:"omitempty,max=128"`
}
