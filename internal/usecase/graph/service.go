package graph

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	"github.com/johnquangdev/insight-stream/internal/usecase/analysis"
	pkgai "github.com/johnquangdev/insight-stream/pkg/ai"
)

const (
	extractChars = 15000
	recentLimit  = 10

	// OfflineAnswer is returned by smart search when the graph is unreachable
	OfflineAnswer = "Graph database is currently offline. Showing only LLM based knowledge."
)

const extractPrompt = `You are a knowledge graph extractor. Extract entities from the transcript.
Return STRICT JSON object with keys: people, companies, topics. Each is a list of names.`

const cypherPrompt = `Convert the question to a read-only Cypher query.
Schema: (Person {name}), (Company {name}), (Topic {name}), (Recording {id}).
Relations: (Person)-[:APPEARED_IN]->(Recording), (Company)-[:MENTIONED_IN]->(Recording), (Topic)-[:DISCUSSED_IN]->(Recording).
Return ONLY the Cypher query, no markdown.`

const upsertCypher = `
MERGE (r:Recording {id: $source_id})
FOREACH (p_name IN $people |
    MERGE (p:Person {name: p_name})
    MERGE (p)-[:APPEARED_IN]->(r)
)
FOREACH (c_name IN $companies |
    MERGE (c:Company {name: c_name})
    MERGE (c)-[:MENTIONED_IN]->(r)
)
FOREACH (t_name IN $topics |
    MERGE (t:Topic {name: t_name})
    MERGE (t)-[:DISCUSSED_IN]->(r)
)`

const recentCypher = `
MATCH (n)
WHERE n:Person OR n:Company OR n:Topic
RETURN labels(n)[0] AS type, n.name AS name, count{ (n)--() } AS connections
ORDER BY connections DESC LIMIT $limit`

// Store is a graph database connection that may be offline
type Store interface {
	Available(ctx context.Context) bool
	Query(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error)
	Write(ctx context.Context, cypher string, params map[string]any) error
}

// Cache keeps smart-search answers
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Service is the best-effort knowledge graph
type Service interface {
	Enrich(ctx context.Context, transcript, sourceID, model string) entities.Optional[entities.GraphEntities]
	RecentInsights(ctx context.Context) entities.Optional[[]entities.GraphNode]
	SmartSearch(ctx context.Context, query, model string) (*entities.SearchResult, error)
}

type graphService struct {
	store    Store
	llm      pkgai.ChatClient
	cache    Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewGraphService creates the graph service. cache may be nil.
func NewGraphService(store Store, llm pkgai.ChatClient, cache Cache, cacheTTL time.Duration, logger *zap.Logger) Service {
	return &graphService{
		store:    store,
		llm:      llm,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Enrich extracts people, companies and topics and links them to the
// recording. It returns Unavailable when the graph cannot be reached.
func (s *graphService) Enrich(ctx context.Context, transcript, sourceID, model string) entities.Optional[entities.GraphEntities] {
	if !s.store.Available(ctx) {
		return entities.Unavailable[entities.GraphEntities]()
	}

	out, err := s.llm.Complete(ctx, pkgai.ChatRequest{
		Model:  model,
		System: extractPrompt,
		Prompt: "Transcript: " + headRunes(transcript, extractChars),
	})
	if err != nil {
		s.warn("Graph extraction failed", err)
		return entities.Available(entities.GraphEntities{})
	}

	var data entities.GraphEntities
	if err := json.Unmarshal([]byte(analysis.ExtractJSON(out)), &data); err != nil {
		s.warn("Graph extraction was not valid JSON", err)
		return entities.Available(entities.GraphEntities{})
	}
	data = normalize(data)

	err = s.store.Write(ctx, upsertCypher, map[string]any{
		"source_id": sourceID,
		"people":    data.People,
		"companies": data.Companies,
		"topics":    data.Topics,
	})
	if err != nil {
		s.warn("Graph write failed", err)
	} else if s.logger != nil {
		s.logger.Info("🕸️ Graph enriched",
			zap.String("source", sourceID),
			zap.Int("people", len(data.People)),
			zap.Int("companies", len(data.Companies)),
			zap.Int("topics", len(data.Topics)),
		)
	}
	return entities.Available(data)
}

// RecentInsights returns the most connected entities
func (s *graphService) RecentInsights(ctx context.Context) entities.Optional[[]entities.GraphNode] {
	if !s.store.Available(ctx) {
		return entities.Unavailable[[]entities.GraphNode]()
	}

	rows, err := s.store.Query(ctx, recentCypher, map[string]any{"limit": recentLimit})
	if err != nil {
		s.warn("Recent insights query failed", err)
		return entities.Unavailable[[]entities.GraphNode]()
	}

	nodes := make([]entities.GraphNode, 0, len(rows))
	for _, row := range rows {
		nodes = append(nodes, entities.GraphNode{
			Name:        stringValue(row["name"]),
			Type:        stringValue(row["type"]),
			Connections: intValue(row["connections"]),
		})
	}
	return entities.Available(nodes)
}

// SmartSearch turns a question into Cypher, runs it and asks the LLM to
// answer from the rows. An offline graph yields an empty result.
func (s *graphService) SmartSearch(ctx context.Context, query, model string) (*entities.SearchResult, error) {
	if !s.store.Available(ctx) {
		return &entities.SearchResult{Query: query, Results: []map[string]interface{}{}, Answer: OfflineAnswer}, nil
	}

	key := cacheKey(query, model)
	if cached, ok := s.cached(ctx, key); ok {
		return cached, nil
	}

	out, err := s.llm.Complete(ctx, pkgai.ChatRequest{
		Model:  model,
		System: cypherPrompt,
		Prompt: "Question: " + query,
	})
	if err != nil {
		return nil, fmt.Errorf("generate cypher: %w", err)
	}
	cypher := StripCypherFences(out)

	var rows []map[string]any
	if !IsReadOnlyCypher(cypher) {
		if s.logger != nil {
			s.logger.Warn("⚠️ Rejected generated Cypher with write clauses", zap.String("cypher", cypher))
		}
		rows = []map[string]any{{"error": ErrWriteQuery.Error(), "query": cypher}}
	} else if rows, err = s.store.Query(ctx, cypher, nil); err != nil {
		rows = []map[string]any{{"error": err.Error(), "query": cypher}}
	}

	encoded, _ := json.Marshal(rows)
	answer, err := s.llm.Complete(ctx, pkgai.ChatRequest{
		Model:  model,
		Prompt: fmt.Sprintf("User asked: %q\nDatabase results: %s\nProvide a concise answer.", query, encoded),
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize answer: %w", err)
	}

	result := &entities.SearchResult{Query: query, Cypher: cypher, Results: rows, Answer: strings.TrimSpace(answer)}
	s.remember(ctx, key, result)
	return result, nil
}

func (s *graphService) cached(ctx context.Context, key string) (*entities.SearchResult, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var result entities.SearchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (s *graphService) remember(ctx context.Context, key string, result *entities.SearchResult) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		s.warn("Failed to cache search answer", err)
	}
}

func (s *graphService) warn(msg string, err error) {
	if s.logger != nil {
		s.logger.Warn("⚠️ "+msg, zap.Error(err))
	}
}

// ErrWriteQuery marks a generated query that would modify the graph
var ErrWriteQuery = errors.New("generated query is not read-only")

var writeClause = regexp.MustCompile(`(?i)\b(CREATE|MERGE|DELETE|DETACH|SET|REMOVE|DROP|FOREACH|LOAD\s+CSV)\b|\bIN\s+TRANSACTIONS\b|\bCALL\s+(dbms|db\.create|apoc\.(create|merge|refactor|periodic))`)

// IsReadOnlyCypher reports whether a generated query has no write clauses
func IsReadOnlyCypher(cypher string) bool {
	return strings.TrimSpace(cypher) != "" && !writeClause.MatchString(cypher)
}

// StripCypherFences removes markdown fences around a generated query
func StripCypherFences(content string) string {
	content = strings.ReplaceAll(content, "```cypher", "")
	content = strings.ReplaceAll(content, "```", "")
	return strings.TrimSpace(content)
}

func cacheKey(query, model string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + strings.ToLower(strings.TrimSpace(query))))
	return "smart_search:" + hex.EncodeToString(sum[:])
}

func normalize(g entities.GraphEntities) entities.GraphEntities {
	return entities.GraphEntities{
		People:    cleanNames(g.People),
		Companies: cleanNames(g.Companies),
		Topics:    cleanNames(g.Topics),
	}
}

func cleanNames(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, name := range in {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func headRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func intValue(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}
