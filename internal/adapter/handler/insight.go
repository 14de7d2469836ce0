package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/errors"
	"github.com/johnquangdev/insight-stream/internal/adapter/dto/insight"
	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	graphUsecase "github.com/johnquangdev/insight-stream/internal/usecase/graph"
)

// Insight handles graph-backed insight and search requests
type Insight struct {
	graphService graphUsecase.Service
	logger       *zap.Logger
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(graphService graphUsecase.Service, logger *zap.Logger) *Insight {
	return &Insight{graphService: graphService, logger: logger}
}

// RecentInsights handles GET /insights/recent
// @Summary      Most connected entities
// @Description  Top people, companies and topics by recording connections; empty when the graph is offline
// @Tags         Insights
// @Produce      json
// @Success      200  {array}  entities.GraphNode
// @Router       /insights/recent [get]
func (h *Insight) RecentInsights(c echo.Context) error {
	nodes := h.graphService.RecentInsights(c.Request().Context()).OrElse(nil)
	if nodes == nil {
		nodes = []entities.GraphNode{}
	}
	return HandleSuccess(h.logger, c, nodes)
}

// SmartSearch handles POST /search/smart
// @Summary      Ask the knowledge graph
// @Description  Translates the question to Cypher, runs it and summarizes the rows
// @Tags         Insights
// @Accept       json
// @Produce      json
// @Param        query     query  string                      false  "Question, when not sent in the body"
// @Param        model_id  query  string                      false  "Analysis model id"
// @Param        request   body   insight.SmartSearchRequest  false  "Question"
// @Success      200  {object}  entities.SearchResult
// @Router       /search/smart [post]
func (h *Insight) SmartSearch(c echo.Context) error {
	var req insight.SmartSearchRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	// echo binds query params only for GET, DELETE and HEAD
	if req.Query == "" {
		req.Query = c.QueryParam("query")
	}
	if req.ModelID == "" {
		req.ModelID = c.QueryParam("model_id")
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err))
	}

	result, err := h.graphService.SmartSearch(c.Request().Context(), req.Query, req.ModelID)
	if err != nil {
		return HandleError(h.logger, c, appErrorOr(err, errors.ErrAIAnalysisFailed))
	}
	return HandleSuccess(h.logger, c, result)
}
