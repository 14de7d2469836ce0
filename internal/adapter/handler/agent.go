package handler

import (
	"encoding/json"
	stdErrors "errors"
	"io"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/errors"
	agentDTO "github.com/johnquangdev/insight-stream/internal/adapter/dto/agent"
	agentUsecase "github.com/johnquangdev/insight-stream/internal/usecase/agent"
	usecaseErrors "github.com/johnquangdev/insight-stream/internal/usecase/errors"
)

// SignatureHeader carries the HMAC of an agent message body
const SignatureHeader = "X-Agent-Signature"

// Agent handles agent-to-agent and tool requests
type Agent struct {
	agentService agentUsecase.Service
	logger       *zap.Logger
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentService agentUsecase.Service, logger *zap.Logger) *Agent {
	return &Agent{agentService: agentService, logger: logger}
}

// Capabilities handles GET /capabilities
// @Summary      Agent capability card
// @Tags         Agent
// @Produce      json
// @Success      200  {array}  agent.Capability
// @Router       /capabilities [get]
func (h *Agent) Capabilities(c echo.Context) error {
	return HandleSuccess(h.logger, c, h.agentService.Capabilities())
}

// Messages handles POST /messages
// @Summary      Receive an agent message
// @Description  Verifies X-Agent-Signature when a shared secret is configured and signs the reply
// @Tags         Agent
// @Accept       json
// @Produce      json
// @Param        request  body  agent.Message  true  "Message"
// @Success      200  {object}  agent.Reply
// @Failure      401  {object}  map[string]interface{}  "Invalid signature"
// @Router       /messages [post]
func (h *Agent) Messages(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	if err := h.agentService.VerifySignature(body, c.Request().Header.Get(SignatureHeader)); err != nil {
		return HandleError(h.logger, c, err)
	}

	var msg agentUsecase.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&msg); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err))
	}

	reply := h.agentService.HandleMessage(c.Request().Context(), msg)
	if payload, err := json.Marshal(reply); err == nil {
		if sig := h.agentService.Sign(payload); sig != "" {
			c.Response().Header().Set(SignatureHeader, sig)
		}
	}

	return HandleSuccess(h.logger, c, reply)
}

// ListTools handles GET /tools
// @Summary      List callable tools
// @Tags         Tools
// @Produce      json
// @Success      200  {array}  agent.Tool
// @Router       /tools [get]
func (h *Agent) ListTools(c echo.Context) error {
	return HandleSuccess(h.logger, c, h.agentService.Tools())
}

// CallTool handles POST /tools/call
// @Summary      Invoke a tool
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body  agent.ToolCallRequest  true  "Tool name and arguments"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}  "Tool not found"
// @Router       /tools/call [post]
func (h *Agent) CallTool(c echo.Context) error {
	var req agentDTO.ToolCallRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.agentService.CallTool(c.Request().Context(), req.Name, req.Arguments)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrToolNotFound) {
			return HandleError(h.logger, c, errors.ErrToolNotFound(req.Name))
		}
		return HandleError(h.logger, c, appErrorOr(err, errors.ErrAIAnalysisFailed))
	}

	return HandleSuccess(h.logger, c, result)
}
