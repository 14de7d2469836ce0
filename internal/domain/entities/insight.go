package entities

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Insight is a single extracted item typed by the report key it came from
type Insight struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	MeetingID   uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	InsightType string    `json:"insight_type" gorm:"type:varchar(255);not null;index"`
	Content     string    `json:"content" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Insight) TableName() string {
	return "insights"
}

// BeforeCreate assigns an ID when the caller did not
func (i *Insight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// InsightsFromReport turns report fields into insight rows typed by their key.
// Lists produce one row per item; any other non-null value produces one row,
// with objects JSON-encoded.
func InsightsFromReport(meetingID uuid.UUID, report Report) []Insight {
	keys := make([]string, 0, len(report))
	for k := range report {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var insights []Insight
	for _, key := range keys {
		switch v := report[key].(type) {
		case nil:
		case []interface{}:
			for _, item := range v {
				insights = append(insights, Insight{ID: uuid.New(), MeetingID: meetingID, InsightType: key, Content: contentString(item)})
			}
		default:
			insights = append(insights, Insight{ID: uuid.New(), MeetingID: meetingID, InsightType: key, Content: contentString(v)})
		}
	}
	return insights
}

func contentString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case map[string]interface{}, []interface{}:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}
