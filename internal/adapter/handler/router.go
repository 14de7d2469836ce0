package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	videoHandler    *Video
	audioHandler    *Audio
	downloadHandler *Download
	contactHandler  *Contact
	agentHandler    *Agent
	insightHandler  *Insight
	settingsHandler *Settings
	archiveHandler  *Archive
	mcpHandler      http.Handler
}

// Handlers groups the handlers passed to NewRouter
type Handlers struct {
	Video    *Video
	Audio    *Audio
	Download *Download
	Contact  *Contact
	Agent    *Agent
	Insight  *Insight
	Settings *Settings
	Archive  *Archive
	MCP      http.Handler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, h Handlers) *Router {
	return &Router{
		cfg:             cfg,
		videoHandler:    h.Video,
		audioHandler:    h.Audio,
		downloadHandler: h.Download,
		contactHandler:  h.Contact,
		agentHandler:    h.Agent,
		insightHandler:  h.Insight,
		settingsHandler: h.Settings,
		archiveHandler:  h.Archive,
		mcpHandler:      h.MCP,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	rt.setupMediaRoutes(e)
	rt.setupContactRoutes(e)
	rt.setupAgentRoutes(e)
	rt.setupInsightRoutes(e)
	rt.setupArchiveRoutes(e)

	e.GET("/config", rt.settingsHandler.GetConfig)
	e.POST("/config", rt.settingsHandler.UpdateConfig)
}

// setupMediaRoutes configures upload, meeting, audio and download routes
func (rt *Router) setupMediaRoutes(e *echo.Echo) {
	bodyLimit := middleware.BodyLimit(fmt.Sprintf("%dM", rt.cfg.Server.MaxUploadMB))

	e.POST("/upload", rt.videoHandler.Upload, bodyLimit)

	videos := e.Group("/videos")
	videos.GET("", rt.videoHandler.ListVideos)
	videos.GET("/:id", rt.videoHandler.GetVideo)
	videos.PUT("/:id", rt.videoHandler.UpdateVideo)

	audio := e.Group("/audio")
	audio.POST("/upload", rt.audioHandler.Upload, bodyLimit)
	audio.POST("/tts", rt.audioHandler.TextToSpeech)

	download := e.Group("/download")
	download.GET("/tts/:filename", rt.downloadHandler.TTS)
	download.GET("/:filename", rt.downloadHandler.Export)
}

// setupContactRoutes configures contact routes
func (rt *Router) setupContactRoutes(e *echo.Echo) {
	contacts := e.Group("/contacts")
	contacts.GET("", rt.contactHandler.ListContacts)
	contacts.GET("/:id", rt.contactHandler.GetContact)
	contacts.PUT("/:id", rt.contactHandler.UpdateContact)
}

// setupAgentRoutes configures agent messaging and tool routes
func (rt *Router) setupAgentRoutes(e *echo.Echo) {
	e.GET("/capabilities", rt.agentHandler.Capabilities)
	e.POST("/messages", rt.agentHandler.Messages)
	e.GET("/tools", rt.agentHandler.ListTools)
	e.POST("/tools/call", rt.agentHandler.CallTool)

	if rt.mcpHandler != nil {
		e.Any("/mcp", echo.WrapHandler(rt.mcpHandler))
	}
}

// setupInsightRoutes configures graph routes
func (rt *Router) setupInsightRoutes(e *echo.Echo) {
	e.GET("/insights/recent", rt.insightHandler.RecentInsights)
	e.POST("/search/smart", rt.insightHandler.SmartSearch)
}

// setupArchiveRoutes configures object storage routes
func (rt *Router) setupArchiveRoutes(e *echo.Echo) {
	archive := e.Group("/archive")
	archive.GET("/files", rt.archiveHandler.ListFiles)
	archive.GET("/url", rt.archiveHandler.FileURL)
}

// healthCheck returns health status
// @Summary      Liveness
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"service":     rt.cfg.Server.ProjectName,
		"environment": rt.cfg.Server.Environment,
		"time":        time.Now().UTC().Format(time.RFC3339),
	})
}
