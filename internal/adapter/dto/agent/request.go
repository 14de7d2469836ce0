package agent

// ToolCallRequest invokes a named tool
type ToolCallRequest struct {
	Name      string                 `json:"name" validate:"required"`
	Arguments map[string]interface{} `json:"arguments"`
}

// TTSRequest asks for speech synthesis
type TTSRequest struct {
	Text  string `json:"text" validate:"required,max=10000"`
	Voice string `json:"voice" validate:"omitempty,max=64"`
}
