package entities

// Report is the structured JSON object produced by the analysis stage,
// keyed by field name
type Report map[string]interface{}

// ErrorReport is the report returned when generation fails
func ErrorReport(msg string) Report {
	return Report{"error": msg}
}

// IsError reports whether the report only carries a generation failure
func (r Report) IsError() bool {
	_, ok := r["error"]
	return ok && len(r) == 1
}

// Classification is the domain label and field list from the first analysis stage
type Classification struct {
	Domain string   `json:"domain"`
	Fields []string `json:"fields"`
}

// DefaultClassification is used whenever classification fails
func DefaultClassification() Classification {
	return Classification{Domain: "General", Fields: []string{"Summary", "Key Points"}}
}

// ReportFields is the fixed report schema
var ReportFields = []string{
	"Summary",
	"Key_Insights",
	"Promises_Made",
	"Next_Steps",
	"Conversation_Graph",
	"Intelligence",
}

// AnalysisResult is the combined output of classification, report and graph enrichment
type AnalysisResult struct {
	Classification Classification          `json:"classification"`
	Report         Report                  `json:"report"`
	Graph          Optional[GraphEntities] `json:"graph"`
}
