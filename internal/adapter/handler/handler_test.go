package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/gorm"

	"github.com/johnquangdev/insight-stream/internal/adapter/repository"
	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	"github.com/johnquangdev/insight-stream/internal/infrastructure/cache"
	"github.com/johnquangdev/insight-stream/internal/infrastructure/database"
	graphinfra "github.com/johnquangdev/insight-stream/internal/infrastructure/graph"
	"github.com/johnquangdev/insight-stream/internal/infrastructure/storage"
	agentUsecase "github.com/johnquangdev/insight-stream/internal/usecase/agent"
	"github.com/johnquangdev/insight-stream/internal/usecase/analysis"
	audioUsecase "github.com/johnquangdev/insight-stream/internal/usecase/audio"
	contactUsecase "github.com/johnquangdev/insight-stream/internal/usecase/contact"
	"github.com/johnquangdev/insight-stream/internal/usecase/export"
	graphUsecase "github.com/johnquangdev/insight-stream/internal/usecase/graph"
	meetingUsecase "github.com/johnquangdev/insight-stream/internal/usecase/meeting"
	settingsUsecase "github.com/johnquangdev/insight-stream/internal/usecase/settings"
	"github.com/johnquangdev/insight-stream/internal/usecase/transcription"
	pkgai "github.com/johnquangdev/insight-stream/pkg/ai"
	"github.com/johnquangdev/insight-stream/pkg/config"
	pkgvalidator "github.com/johnquangdev/insight-stream/pkg/validator"
)

const (
	davidTranscript = "David Kim: Alright everyone, let's get started with the Q4 review. Revenue is up 15% but server costs grew 20%."
	davidReport     = `{"Summary":"Q4 review of revenue and costs","Key_Insights":["Revenue up 15%","Server costs up 20%"],"Next_Steps":["Audit cloud usage"]}`
	agentSecret     = "s3cret"
)

// fakeLLM answers classification and report prompts
type fakeLLM struct{}

func (fakeLLM) Complete(ctx context.Context, req pkgai.ChatRequest) (string, error) {
	if strings.Contains(req.System, `"domain"`) {
		return `{"domain":"SaaS Sales","fields":["Summary","Key_Insights"]}`, nil
	}
	return "```json\n" + davidReport + "\n```", nil
}

// offlineGraph is a graph store that is never reachable
type offlineGraph struct{}

func (offlineGraph) Available(ctx context.Context) bool { return false }
func (offlineGraph) Query(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	return nil, graphinfra.ErrOffline
}
func (offlineGraph) Write(ctx context.Context, cypher string, params map[string]any) error {
	return graphinfra.ErrOffline
}

type fakeSynth struct{}

func (fakeSynth) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	return []byte("RIFF0000WAVE"), nil
}

type testServer struct {
	e     *echo.Echo
	db    *gorm.DB
	store *storage.LocalStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := database.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if _, err := database.Migrate(db, "sqlite", migrate.Up); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = database.CloseDB(db) })

	dir := t.TempDir()
	store, err := storage.NewLocalStore(filepath.Join(dir, "uploads"), filepath.Join(dir, "exports"))
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{ProjectName: "insight-stream", Environment: "test", MaxUploadMB: 10},
		AI: config.AIConfig{
			DefaultModel:        "openai/gpt-oss-120b",
			TranscriptionMethod: config.MethodGemini,
			TTSVoice:            "Fritz-PlayAI",
		},
		Media: config.MediaConfig{MaxChunkSeconds: 600},
		Agent: config.AgentConfig{Name: "Video Analysis Agent", SharedSecret: agentSecret},
	}
	runtime := config.NewRuntimeSettings(cfg)

	llm := fakeLLM{}
	graphService := graphUsecase.NewGraphService(offlineGraph{}, llm, cache.NewMemoryStore(), time.Minute, nil)
	analysisService := analysis.NewAnalysisService(llm, graphService, false, nil)
	transcriptionService := transcription.NewTranscriptionService(nil, nil, nil, runtime, &cfg.Media, nil)
	meetingService := meetingUsecase.NewMeetingService(
		repository.NewMeetingRepository(db),
		transcriptionService,
		analysisService,
		export.NewExportService(store.ExportDir(), nil),
		nil,
		nil,
	)
	agentService := agentUsecase.NewAgentService(&cfg.Agent, analysisService, nil)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	NewRouter(cfg, Handlers{
		Video:    NewVideoHandler(meetingService, store, nil),
		Audio:    NewAudioHandler(audioUsecase.NewAudioService(store, fakeSynth{}, cfg.AI.TTSVoice, nil), nil),
		Download: NewDownloadHandler(store, nil),
		Contact:  NewContactHandler(contactUsecase.NewContactService(repository.NewContactRepository(db), nil), nil),
		Agent:    NewAgentHandler(agentService, nil),
		Insight:  NewInsightHandler(graphService, nil),
		Settings: NewSettingsHandler(settingsUsecase.NewSettingsService(runtime, nil), nil),
		Archive:  NewArchiveHandler(nil, nil),
	}).Setup(e)

	return &testServer{e: e, db: db, store: store}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Info    string          `json:"info"`
}

func (s *testServer) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, env
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func multipartRequest(t *testing.T, path, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = io.WriteString(part, content)
	}
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func (s *testServer) uploadTranscript(t *testing.T) map[string]interface{} {
	t.Helper()
	req := multipartRequest(t, "/upload", "q4_review.txt", davidTranscript, map[string]string{"transcription_method": "groq"})
	rec, env := s.do(t, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("upload status %d: %s", rec.Code, rec.Body.String())
	}
	var data map[string]interface{}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	return data
}

func TestUpload_TranscriptPipeline(t *testing.T) {
	s := newTestServer(t)
	data := s.uploadTranscript(t)

	if data["transcript"] != davidTranscript {
		t.Fatalf("unexpected transcript %v", data["transcript"])
	}
	analysisResult := data["analysis"].(map[string]interface{})
	if graph := analysisResult["graph"].(map[string]interface{}); graph["available"] != false {
		t.Fatalf("graph should be unavailable, got %v", graph)
	}
	if data["download_url"] != "/download/q4_review_txt.csv" {
		t.Fatalf("unexpected download url %v", data["download_url"])
	}

	// exported CSV is downloadable
	rec, _ := s.do(t, httptest.NewRequest(http.MethodGet, "/download/q4_review_txt.csv", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("download status %d", rec.Code)
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 3 || lines[0] != "Summary,Key_Insights,Next_Steps" {
		t.Fatalf("unexpected csv %q", rec.Body.String())
	}

	// stored meeting matches the transcript and report keys
	id := data["meeting_id"].(string)
	rec, env := s.do(t, httptest.NewRequest(http.MethodGet, "/videos/"+id, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status %d", rec.Code)
	}
	var m struct {
		Title          string `json:"title"`
		TranscriptText string `json:"transcript_text"`
		Insights       []struct {
			InsightType string `json:"insight_type"`
		} `json:"insights"`
	}
	if err := json.Unmarshal(env.Data, &m); err != nil {
		t.Fatal(err)
	}
	if m.TranscriptText != davidTranscript || m.Title != "q4_review" {
		t.Fatalf("unexpected meeting %+v", m)
	}

	seen := map[string]bool{}
	for _, in := range m.Insights {
		seen[in.InsightType] = true
	}
	var types []string
	for k := range seen {
		types = append(types, k)
	}
	sort.Strings(types)
	if strings.Join(types, ",") != "Key_Insights,Next_Steps,Summary" {
		t.Fatalf("unexpected insight types %v", types)
	}
}

func TestUpload_Rejections(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(t, multipartRequest(t, "/upload", "", "", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing file: status %d", rec.Code)
	}

	rec, _ = s.do(t, multipartRequest(t, "/upload", "payload.exe", "MZ", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unsupported media: status %d", rec.Code)
	}

	rec, _ = s.do(t, multipartRequest(t, "/upload", "a.txt", "hi", map[string]string{"transcription_method": "fax"}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad method: status %d", rec.Code)
	}
}

func TestUpdateVideo_SummaryPersists(t *testing.T) {
	s := newTestServer(t)
	id := s.uploadTranscript(t)["meeting_id"].(string)

	rec, _ := s.do(t, jsonRequest(http.MethodPut, "/videos/"+id, `{"summary_text":"{\"Summary\":\"edited\"}"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("update status %d: %s", rec.Code, rec.Body.String())
	}

	_, env := s.do(t, httptest.NewRequest(http.MethodGet, "/videos/"+id, nil))
	var m struct {
		Summary map[string]interface{} `json:"summary"`
	}
	if err := json.Unmarshal(env.Data, &m); err != nil {
		t.Fatal(err)
	}
	if m.Summary["Summary"] != "edited" {
		t.Fatalf("summary not persisted: %v", m.Summary)
	}

	rec, _ = s.do(t, jsonRequest(http.MethodPut, "/videos/"+id, `{"summary_text":"plain text"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-object summary: status %d", rec.Code)
	}

	rec, _ = s.do(t, jsonRequest(http.MethodPut, "/videos/"+uuid.NewString(), `{"title":"x"}`))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown meeting: status %d", rec.Code)
	}

	rec, _ = s.do(t, httptest.NewRequest(http.MethodGet, "/videos", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), id) {
		t.Fatalf("list should include meeting: %s", rec.Body.String())
	}
}

func TestGraphEndpoints_Offline(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, httptest.NewRequest(http.MethodGet, "/insights/recent", nil))
	if rec.Code != http.StatusOK || string(env.Data) != "[]" {
		t.Fatalf("recent insights: status %d data %s", rec.Code, env.Data)
	}

	rec, env = s.do(t, jsonRequest(http.MethodPost, "/search/smart", `{"query":"Who mentioned cloud costs?"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("smart search status %d", rec.Code)
	}
	var result entities.SearchResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatal(err)
	}
	if result.Answer != graphUsecase.OfflineAnswer || len(result.Results) != 0 {
		t.Fatalf("unexpected offline result %+v", result)
	}

	rec, env = s.do(t, httptest.NewRequest(http.MethodPost, "/search/smart?query=who+is+David", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("query-string smart search status %d: %s", rec.Code, rec.Body.String())
	}
	result = entities.SearchResult{}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatal(err)
	}
	if result.Query != "who is David" {
		t.Fatalf("query not read from the query string: %+v", result)
	}

	rec, _ = s.do(t, httptest.NewRequest(http.MethodPost, "/search/smart", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing query: status %d", rec.Code)
	}
}

func TestDownload_Missing(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/download/nope.csv", "/download/tts/nope.wav", "/download/..%2Fsecret"} {
		rec, _ := s.do(t, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
	}
}

func TestAudio_TTSThenDownload(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, jsonRequest(http.MethodPost, "/audio/tts", `{"text":"Quarterly numbers are in."}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("tts status %d: %s", rec.Code, rec.Body.String())
	}
	var data map[string]string
	_ = json.Unmarshal(env.Data, &data)

	rec, _ = s.do(t, httptest.NewRequest(http.MethodGet, data["url"], nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "RIFF0000WAVE" {
		t.Fatalf("tts download status %d body %q", rec.Code, rec.Body.String())
	}

	rec, env = s.do(t, multipartRequest(t, "/audio/upload", "memo.m4a", "audio", nil))
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), ".m4a") {
		t.Fatalf("audio upload status %d: %s", rec.Code, env.Data)
	}
}

func TestContacts(t *testing.T) {
	s := newTestServer(t)
	c := &entities.Contact{Name: "Sarah Chen", Role: "VP Engineering", Company: "Acme"}
	if err := repository.NewContactRepository(s.db).Create(context.Background(), c); err != nil {
		t.Fatal(err)
	}

	rec, env := s.do(t, httptest.NewRequest(http.MethodGet, "/contacts", nil))
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), "Sarah Chen") {
		t.Fatalf("list contacts: %d %s", rec.Code, env.Data)
	}

	rec, env = s.do(t, jsonRequest(http.MethodPut, "/contacts/"+c.ID.String(), `{"role":"CTO","topics":["cloud costs"]}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("update contact status %d: %s", rec.Code, rec.Body.String())
	}
	var updated struct {
		Role   string   `json:"role"`
		Topics []string `json:"topics"`
	}
	_ = json.Unmarshal(env.Data, &updated)
	if updated.Role != "CTO" || len(updated.Topics) != 1 {
		t.Fatalf("unexpected contact %+v", updated)
	}

	timeline := `{"timeline":[{"id":1,"date":"Jan 2024","event":"Coffee at Starbucks","topics":["Merger"],"sentiment":"positive"}]}`
	rec, env = s.do(t, jsonRequest(http.MethodPut, "/contacts/"+c.ID.String(), timeline))
	if rec.Code != http.StatusOK {
		t.Fatalf("numeric timeline id: status %d: %s", rec.Code, rec.Body.String())
	}
	var withTimeline struct {
		Timeline []entities.TimelineEvent `json:"timeline"`
	}
	_ = json.Unmarshal(env.Data, &withTimeline)
	if len(withTimeline.Timeline) != 1 || withTimeline.Timeline[0].ID != 1 {
		t.Fatalf("unexpected timeline %+v", withTimeline.Timeline)
	}
	if !strings.Contains(string(env.Data), `"id":1,`) {
		t.Fatalf("timeline id should be a JSON number: %s", env.Data)
	}

	rec, _ = s.do(t, jsonRequest(http.MethodPut, "/contacts/"+uuid.NewString(), `{"role":"CTO"}`))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown contact: status %d", rec.Code)
	}
	rec, _ = s.do(t, httptest.NewRequest(http.MethodGet, "/contacts/not-a-uuid", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status %d", rec.Code)
	}
}

func TestConfig(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, httptest.NewRequest(http.MethodGet, "/config", nil))
	var view settingsUsecase.View
	_ = json.Unmarshal(env.Data, &view)
	if view.HasGroqKey || view.TranscriptionMethod != config.MethodGemini {
		t.Fatalf("unexpected initial config %+v", view)
	}

	rec, env := s.do(t, jsonRequest(http.MethodPost, "/config", `{"groq_api_key":"gsk_test","transcription_method":"groq"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("update config status %d", rec.Code)
	}
	_ = json.Unmarshal(env.Data, &view)
	if !view.HasGroqKey || view.TranscriptionMethod != config.MethodGroq {
		t.Fatalf("config not applied %+v", view)
	}
	if strings.Contains(rec.Body.String(), "gsk_test") {
		t.Fatal("api keys must not be echoed")
	}

	rec, _ = s.do(t, jsonRequest(http.MethodPost, "/config", `{"transcription_method":"fax"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad method: status %d", rec.Code)
	}
}

func TestMessages_Signature(t *testing.T) {
	s := newTestServer(t)
	body := `{"sender":"Planner","content":"status?","type":"request"}`

	rec, _ := s.do(t, jsonRequest(http.MethodPost, "/messages", body))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unsigned: status %d", rec.Code)
	}

	req := jsonRequest(http.MethodPost, "/messages", body)
	req.Header.Set(SignatureHeader, "sha256="+pkgai.SignHMAC(agentSecret, []byte(body)))
	rec, env := s.do(t, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("signed: status %d: %s", rec.Code, rec.Body.String())
	}
	var reply agentUsecase.Reply
	_ = json.Unmarshal(env.Data, &reply)
	want := "Hello Planner, I am the Video Analysis Agent. I received your message: status?"
	if reply.Reply != want {
		t.Fatalf("reply %q want %q", reply.Reply, want)
	}
	if !strings.HasPrefix(rec.Header().Get(SignatureHeader), "sha256=") {
		t.Fatal("reply should be signed")
	}
}

func TestTools(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, httptest.NewRequest(http.MethodGet, "/tools", nil))
	var tools []agentUsecase.Tool
	_ = json.Unmarshal(env.Data, &tools)
	if len(tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(tools))
	}

	rec, _ := s.do(t, jsonRequest(http.MethodPost, "/tools/call", `{"name":"summon_demon"}`))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown tool: status %d", rec.Code)
	}

	rec, env = s.do(t, jsonRequest(http.MethodPost, "/tools/call",
		fmt.Sprintf(`{"name":%q,"arguments":{"transcript":%q}}`, agentUsecase.ToolAnalyzeVideo, davidTranscript)))
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), "Audit cloud usage") {
		t.Fatalf("analyze tool: %d %s", rec.Code, env.Data)
	}

	rec, _ = s.do(t, jsonRequest(http.MethodPost, "/tools/call", fmt.Sprintf(`{"name":%q,"arguments":{}}`, agentUsecase.ToolAnalyzeVideo)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing transcript: status %d", rec.Code)
	}
}

func TestArchive_Disabled(t *testing.T) {
	s := newTestServer(t)
	rec, _ := s.do(t, httptest.NewRequest(http.MethodGet, "/archive/files", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec, _ := s.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("health: %d %s", rec.Code, rec.Body.String())
	}
}
