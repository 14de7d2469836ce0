package meeting

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	domainrepo "github.com/johnquangdev/insight-stream/internal/domain/repositories"
	"github.com/johnquangdev/insight-stream/internal/usecase/analysis"
	usecaseErrors "github.com/johnquangdev/insight-stream/internal/usecase/errors"
	"github.com/johnquangdev/insight-stream/internal/usecase/export"
	"github.com/johnquangdev/insight-stream/internal/usecase/transcription"
	"github.com/johnquangdev/insight-stream/pkg/jobcontext"
)

const (
	persistRetries    = 3
	persistRetryDelay = 500 * time.Millisecond
)

// Archiver copies a local file into object storage
type Archiver interface {
	ArchiveFile(ctx context.Context, objectName, path string) error
}

// ProcessInput is one uploaded file to run through the pipeline
type ProcessInput struct {
	Path     string // saved location on disk
	Filename string // name as uploaded
	Method   string // transcription method; empty uses the runtime default
	Model    string // analysis model id; empty uses the runtime default
}

// ProcessResult is the outcome of a full pipeline run
type ProcessResult struct {
	MeetingID  uuid.UUID                `json:"meeting_id"`
	Filename   string                   `json:"filename"`
	Transcript string                   `json:"transcript"`
	Analysis   *entities.AnalysisResult `json:"analysis"`
	Export     *export.Result           `json:"export"`
}

// Service runs the upload pipeline and manages stored meetings
type Service interface {
	// Process runs transcribe, analyze, export and persist in order
	Process(ctx context.Context, in ProcessInput) (*ProcessResult, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Meeting, []entities.Insight, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Meeting, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch entities.MeetingPatch) (*entities.Meeting, error)
}

type meetingService struct {
	meetingRepo domainrepo.MeetingRepository
	transcriber transcription.Service
	analyzer    analysis.Service
	exporter    export.Service
	archiver    Archiver
	logger      *zap.Logger
}

// NewMeetingService wires the pipeline stages. archiver may be nil.
func NewMeetingService(
	meetingRepo domainrepo.MeetingRepository,
	transcriber transcription.Service,
	analyzer analysis.Service,
	exporter export.Service,
	archiver Archiver,
	logger *zap.Logger,
) Service {
	return &meetingService{
		meetingRepo: meetingRepo,
		transcriber: transcriber,
		analyzer:    analyzer,
		exporter:    exporter,
		archiver:    archiver,
		logger:      logger,
	}
}

func (s *meetingService) Process(ctx context.Context, in ProcessInput) (*ProcessResult, error) {
	log := s.logger
	if log == nil {
		log = zap.NewNop()
	}
	ctx = jobcontext.JobBegin(ctx, "upload")
	log = log.With(jobcontext.Fields(ctx)...).With(zap.String("filename", in.Filename))

	log.Info("🎬 Step 1: Transcribing", zap.String("method", in.Method))
	transcript, err := s.transcriber.Transcribe(ctx, in.Path, in.Method)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, fmt.Errorf("transcribe: %w", usecaseErrors.ErrEmptyTranscript)
	}
	log.Info("✅ Transcription complete", zap.Int("chars", len(transcript)))

	log.Info("🧠 Step 2: Analyzing transcript", zap.String("model", in.Model))
	result, err := s.analyzer.Analyze(ctx, transcript, in.Filename, in.Model)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	log.Info("📊 Step 3: Exporting report")
	exported, err := s.exporter.Export(result.Report, in.Filename)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	log.Info("💾 Step 4: Persisting meeting")
	summary, err := json.Marshal(result.Report)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	meeting := entities.NewMeeting(meetingTitle(in.Filename), transcript, in.Path)
	meeting.SummaryText = string(summary)
	insights := entities.InsightsFromReport(meeting.ID, result.Report)

	err = jobcontext.Retry(ctx, persistRetries, persistRetryDelay, func(ctx context.Context) error {
		return s.meetingRepo.CreateWithInsights(ctx, meeting, insights)
	})
	if err != nil {
		return nil, fmt.Errorf("persist: %w", err)
	}
	log.Info("✅ Meeting stored",
		zap.String("meeting_id", meeting.ID.String()),
		zap.Int("insights", len(insights)),
		zap.Duration("elapsed", jobcontext.Elapsed(ctx)),
	)

	s.archive(ctx, log, meeting.ID, in.Path, exported)

	return &ProcessResult{
		MeetingID:  meeting.ID,
		Filename:   in.Filename,
		Transcript: transcript,
		Analysis:   result,
		Export:     exported,
	}, nil
}

// archive copies the media and exports to object storage; failures are logged only
func (s *meetingService) archive(ctx context.Context, log *zap.Logger, id uuid.UUID, mediaPath string, exported *export.Result) {
	if s.archiver == nil {
		return
	}

	files := map[string]string{
		"media/" + id.String() + "/" + filepath.Base(mediaPath): mediaPath,
		"exports/" + filepath.Base(exported.CSVPath):            exported.CSVPath,
	}
	if exported.XLSXPath != "" {
		files["exports/"+filepath.Base(exported.XLSXPath)] = exported.XLSXPath
	}

	for object, path := range files {
		if err := s.archiver.ArchiveFile(ctx, object, path); err != nil {
			log.Warn("⚠️ Failed to archive file", zap.String("object", object), zap.Error(err))
		}
	}
}

func (s *meetingService) Get(ctx context.Context, id uuid.UUID) (*entities.Meeting, []entities.Insight, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if meeting == nil {
		return nil, nil, usecaseErrors.ErrMeetingNotFound
	}

	insights, err := s.meetingRepo.ListInsights(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return meeting, insights, nil
}

func (s *meetingService) List(ctx context.Context, limit, offset int) ([]*entities.Meeting, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.meetingRepo.List(ctx, limit, offset)
}

func (s *meetingService) Update(ctx context.Context, id uuid.UUID, patch entities.MeetingPatch) (*entities.Meeting, error) {
	if patch.Empty() {
		meeting, _, err := s.Get(ctx, id)
		return meeting, err
	}

	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidInput, err)
	}

	meeting, err := s.meetingRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, usecaseErrors.ErrMeetingNotFound
	}
	return meeting, nil
}

func meetingTitle(filename string) string {
	base := filepath.Base(filename)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	if title == "" || title == "." || title == "/" {
		return "Untitled recording"
	}
	return title
}
