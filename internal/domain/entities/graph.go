package entities

import "encoding/json"

// Optional carries a value from a subsystem that may be unreachable.
// An unavailable Optional is different from an available empty value.
type Optional[T any] struct {
	value     T
	available bool
}

// Available wraps a value from a reachable subsystem
func Available[T any](v T) Optional[T] {
	return Optional[T]{value: v, available: true}
}

// Unavailable marks a subsystem as unreachable
func Unavailable[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether the subsystem was reachable
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.available
}

// IsAvailable reports whether the subsystem was reachable
func (o Optional[T]) IsAvailable() bool {
	return o.available
}

// OrElse returns the value, or fallback when unavailable
func (o Optional[T]) OrElse(fallback T) T {
	if !o.available {
		return fallback
	}
	return o.value
}

// MarshalJSON renders {"available":bool,"value":...}
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.available {
		return json.Marshal(struct {
			Available bool `json:"available"`
		}{false})
	}
	return json.Marshal(struct {
		Available bool `json:"available"`
		Value     T    `json:"value"`
	}{true, o.value})
}

// GraphEntities are the people, companies and topics extracted from a transcript
type GraphEntities struct {
	People    []string `json:"people"`
	Companies []string `json:"companies"`
	Topics    []string `json:"topics"`
}

// Empty reports whether no entities were extracted
func (g GraphEntities) Empty() bool {
	return len(g.People) == 0 && len(g.Companies) == 0 && len(g.Topics) == 0
}

// GraphNode is an entity with its number of recording connections
type GraphNode struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Connections int64  `json:"connections"`
}

// SearchResult is the answer to a natural-language graph question
type SearchResult struct {
	Query   string                   `json:"query"`
	Cypher  string                   `json:"cypher,omitempty"`
	Results []map[string]interface{} `json:"results"`
	Answer  string                   `json:"answer"`
}
