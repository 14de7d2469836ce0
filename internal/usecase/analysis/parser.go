package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
)

// ParseClassification decodes the first-stage answer. Anything unusable
// yields the default classification.
func ParseClassification(content string) (entities.Classification, bool) {
	var c entities.Classification
	if err := json.Unmarshal([]byte(ExtractJSON(content)), &c); err != nil {
		return entities.DefaultClassification(), false
	}
	if strings.TrimSpace(c.Domain) == "" {
		return entities.DefaultClassification(), false
	}
	if len(c.Fields) == 0 {
		c.Fields = entities.DefaultClassification().Fields
	}
	return c, true
}

// ParseReport decodes the second-stage answer into a report object
func ParseReport(content string) (entities.Report, error) {
	body := ExtractJSON(content)
	if body == "" {
		return nil, fmt.Errorf("empty response")
	}

	var report entities.Report
	if err := json.Unmarshal([]byte(body), &report); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if report == nil {
		return nil, fmt.Errorf("response is not a JSON object")
	}
	return report, nil
}

// ExtractJSON extracts JSON content from markdown code blocks or plain text
func ExtractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```JSON")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
		return strings.TrimSpace(content)
	}

	// Models sometimes wrap the object in prose
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start > 0 && end > start {
		return content[start : end+1]
	}
	return content
}

// truncateRunes returns at most n runes of s
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
