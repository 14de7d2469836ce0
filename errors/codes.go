package errors

// ErrorCode is the application-level error code carried in API responses
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1005

	ErrorCode_MEDIA_UNSUPPORTED    ErrorCode = 2000
	ErrorCode_MEDIA_SAVE_FAILED    ErrorCode = 2001
	ErrorCode_MEDIA_FILE_NOT_FOUND ErrorCode = 2002

	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_AI_ANALYSIS_FAILED      ErrorCode = 3001
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 3002
	ErrorCode_AI_SPEECH_FAILED        ErrorCode = 3003

	ErrorCode_REPORT_EXPORT_FAILED ErrorCode = 4000

	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 5000
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 5001
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 5002
	ErrorCode_INTEGRATION_GRAPH_UNAVAILABLE   ErrorCode = 5003

	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 6000
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 6001

	ErrorCode_AGENT_INVALID_SIGNATURE ErrorCode = 7000
	ErrorCode_AGENT_TOOL_NOT_FOUND    ErrorCode = 7001

	ErrorCode_PROCESSING_FAILED ErrorCode = 8000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:                  "ALREADY_EXISTS",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_UNAUTHENTICATED:                 "UNAUTHENTICATED",
	ErrorCode_MEDIA_UNSUPPORTED:               "MEDIA_UNSUPPORTED",
	ErrorCode_MEDIA_SAVE_FAILED:               "MEDIA_SAVE_FAILED",
	ErrorCode_MEDIA_FILE_NOT_FOUND:            "MEDIA_FILE_NOT_FOUND",
	ErrorCode_AI_TRANSCRIPTION_FAILED:         "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_ANALYSIS_FAILED:              "AI_ANALYSIS_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:          "AI_SERVICE_UNAVAILABLE",
	ErrorCode_AI_SPEECH_FAILED:                "AI_SPEECH_FAILED",
	ErrorCode_REPORT_EXPORT_FAILED:            "REPORT_EXPORT_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
	ErrorCode_INTEGRATION_GRAPH_UNAVAILABLE:   "INTEGRATION_GRAPH_UNAVAILABLE",
	ErrorCode_DB_CONNECTION_FAILED:            "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:                 "DB_QUERY_FAILED",
	ErrorCode_AGENT_INVALID_SIGNATURE:         "AGENT_INVALID_SIGNATURE",
	ErrorCode_AGENT_TOOL_NOT_FOUND:            "AGENT_TOOL_NOT_FOUND",
	ErrorCode_PROCESSING_FAILED:               "PROCESSING_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
