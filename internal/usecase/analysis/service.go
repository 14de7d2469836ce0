package analysis

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	pkgai "github.com/johnquangdev/insight-stream/pkg/ai"
)

const classifyChars = 2000

// Enricher extracts graph entities from a transcript on a best-effort basis
type Enricher interface {
	Enrich(ctx context.Context, transcript, sourceID, model string) entities.Optional[entities.GraphEntities]
}

// Service runs the two-stage transcript analysis
type Service interface {
	// Analyze classifies the transcript, generates the report and, in
	// parallel, enriches the graph. Model failures become data in the result;
	// only cancellation is returned as an error.
	Analyze(ctx context.Context, transcript, sourceID, model string) (*entities.AnalysisResult, error)
}

type analysisService struct {
	llm           pkgai.ChatClient
	graph         Enricher
	dynamicFields bool
	logger        *zap.Logger
}

// NewAnalysisService creates the analysis service. graph may be nil.
func NewAnalysisService(llm pkgai.ChatClient, graph Enricher, dynamicFields bool, logger *zap.Logger) Service {
	return &analysisService{
		llm:           llm,
		graph:         graph,
		dynamicFields: dynamicFields,
		logger:        logger,
	}
}

func (s *analysisService) Analyze(ctx context.Context, transcript, sourceID, model string) (*entities.AnalysisResult, error) {
	result := &entities.AnalysisResult{Graph: entities.Unavailable[entities.GraphEntities]()}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result.Classification = s.classify(gctx, transcript, model)
		result.Report = s.report(gctx, transcript, result.Classification, model)
		return gctx.Err()
	})

	if s.graph != nil {
		g.Go(func() error {
			result.Graph = s.graph.Enrich(gctx, transcript, sourceID, model)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("🧠 Analysis complete",
			zap.String("source", sourceID),
			zap.String("domain", result.Classification.Domain),
			zap.Bool("report_error", result.Report.IsError()),
			zap.Bool("graph_available", result.Graph.IsAvailable()),
		)
	}
	return result, nil
}

// classify asks for the domain and fields using the head of the transcript
func (s *analysisService) classify(ctx context.Context, transcript, model string) entities.Classification {
	out, err := s.llm.Complete(ctx, pkgai.ChatRequest{
		Model:  model,
		System: classifyPrompt,
		Prompt: "Transcript: " + truncateRunes(transcript, classifyChars),
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Classification failed, using default", zap.Error(err))
		}
		return entities.DefaultClassification()
	}

	c, ok := ParseClassification(out)
	if !ok && s.logger != nil {
		s.logger.Warn("⚠️ Classification was not valid JSON, using default")
	}
	return c
}

// report generates the structured report; failures are returned as an error report
func (s *analysisService) report(ctx context.Context, transcript string, c entities.Classification, model string) entities.Report {
	out, err := s.llm.Complete(ctx, pkgai.ChatRequest{
		Model:  model,
		System: reportPrompt(c.Domain, c.Fields, s.dynamicFields),
		Prompt: "Transcript: " + transcript,
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Report generation failed", zap.Error(err))
		}
		return entities.ErrorReport(err.Error())
	}

	report, err := ParseReport(out)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Report was not valid JSON", zap.Error(err))
		}
		return entities.ErrorReport(err.Error())
	}
	return report
}
