package analysis

import (
	"fmt"
	"strings"
)

const classifyPrompt = `Analyze the transcript. Determine the business domain and the report fields best suited to it.
Return JSON only: {"domain": "<domain>", "fields": ["<field>", ...]}`

const fixedReportPrompt = `Generate a detailed video analysis report in strict JSON format.
Domain identified: %s

Structure the JSON with these exact keys:
- "Summary": "Executive summary of the content"
- "Key_Insights": ["List of key points"]
- "Promises_Made": ["List of commitments or promises detected"]
- "Next_Steps": ["List of action items"]
- "Conversation_Graph": {"People": [], "Companies": [], "Topics": []}
- "Intelligence": {"Sentiment": "Positive/Neutral/Negative", "Tone": "String", "Complexity": "Low/Medium/High"}

Ensure all fields are present. Return only the JSON object.`

const dynamicReportPrompt = `Generate a detailed video analysis report in strict JSON format.
Domain identified: %s

Use exactly these top-level keys: %s.
Use a string for narrative fields and a list of strings for enumerations.
Return only the JSON object.`

func reportPrompt(domain string, fields []string, dynamic bool) string {
	if !dynamic {
		return fmt.Sprintf(fixedReportPrompt, domain)
	}
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = fmt.Sprintf("%q", f)
	}
	return fmt.Sprintf(dynamicReportPrompt, domain, strings.Join(quoted, ", "))
}
