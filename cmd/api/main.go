package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mark3labs/mcp-go/server"

	_ "github.com/johnquangdev/insight-stream/docs"
	"github.com/johnquangdev/insight-stream/internal/adapter/handler"
	"github.com/johnquangdev/insight-stream/internal/adapter/repository"
	"github.com/johnquangdev/insight-stream/internal/infrastructure/cache"
	"github.com/johnquangdev/insight-stream/internal/infrastructure/database"
	"github.com/johnquangdev/insight-stream/internal/infrastructure/graph"
	"github.com/johnquangdev/insight-stream/internal/infrastructure/media"
	"github.com/johnquangdev/insight-stream/internal/infrastructure/storage"
	"github.com/johnquangdev/insight-stream/internal/usecase/agent"
	"github.com/johnquangdev/insight-stream/internal/usecase/analysis"
	"github.com/johnquangdev/insight-stream/internal/usecase/audio"
	"github.com/johnquangdev/insight-stream/internal/usecase/contact"
	"github.com/johnquangdev/insight-stream/internal/usecase/export"
	graphuse "github.com/johnquangdev/insight-stream/internal/usecase/graph"
	"github.com/johnquangdev/insight-stream/internal/usecase/meeting"
	"github.com/johnquangdev/insight-stream/internal/usecase/settings"
	"github.com/johnquangdev/insight-stream/internal/usecase/transcription"
	pkgai "github.com/johnquangdev/insight-stream/pkg/ai"
	"github.com/johnquangdev/insight-stream/pkg/config"
	pkgvalidator "github.com/johnquangdev/insight-stream/pkg/validator"
)

const version = "1.0.0"

// @title           Insight Stream API
// @version         1.0
// @description     Upload meetings and sales calls, transcribe them, and get structured reports, CSV exports and graph insights.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, handler.SignatureHeader},
	}))

	ctx := context.Background()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Printf("📦 Connecting to database (%s)...", cfg.Database.Driver)
	db, err := database.NewDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db, cfg.Database.Driver); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; run `admin migrate up` to manage the schema")
	}

	// Initialize cache (Redis with in-memory fallback)
	log.Println("📦 Initializing cache...")
	answerCache := cache.NewStore(ctx, cfg, logger)
	defer answerCache.Close()

	// Initialize local file storage
	log.Println("📁 Preparing upload and export directories...")
	files, err := storage.NewLocalStore(cfg.Server.UploadDir, cfg.Server.ExportDir)
	if err != nil {
		log.Fatalf("Failed to prepare directories: %v", err)
	}

	// Initialize object storage archive
	var archiver meeting.Archiver
	var archive handler.ArchiveBrowser
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minio, err := storage.NewArchiver(ctx, &cfg.Storage)
		if err != nil {
			log.Printf("⚠️  Object storage unavailable, archiving disabled: %v", err)
		} else {
			archiver, archive = minio, minio
		}
	}

	// Initialize graph database (connects lazily)
	log.Println("🕸️  Initializing graph client...")
	graphClient := graph.NewClient(&cfg.Graph, logger)
	defer graphClient.Close(context.Background())

	// Initialize AI components
	log.Println("🤖 Initializing AI components...")
	runtime := config.NewRuntimeSettings(cfg)
	groqKey := func() string { return runtime.Snapshot().GroqAPIKey }
	googleKey := func() string { return runtime.Snapshot().GoogleAPIKey }

	models := pkgai.NewModelFactory(&cfg.AI, runtime, logger)
	gemini := pkgai.NewGeminiTranscriber(&cfg.AI, googleKey, logger)
	groq := pkgai.NewGroqClient(&cfg.AI, groqKey)

	var speech transcription.Transcriber = groq
	if cfg.AI.SpeechBackend == "assemblyai" {
		speech = pkgai.NewAssemblyAITranscriber(&cfg.AI)
	}
	log.Printf("🎙️  Speech backend: %s", speech.Name())

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Initialize services
	log.Println("✨ Initializing services...")
	graphService := graphuse.NewGraphService(graphClient, models, answerCache, cfg.Redis.CacheTTL, logger)
	analysisService := analysis.NewAnalysisService(models, graphService, cfg.AI.DynamicFields, logger)
	transcriptionService := transcription.NewTranscriptionService(
		gemini,
		speech,
		media.NewExtractor(&cfg.Media, logger),
		runtime,
		&cfg.Media,
		logger,
	)
	meetingService := meeting.NewMeetingService(
		meetingRepo,
		transcriptionService,
		analysisService,
		export.NewExportService(files.ExportDir(), logger),
		archiver,
		logger,
	)
	agentService := agent.NewAgentService(&cfg.Agent, analysisService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	mcpServer := agent.NewMCPServer(agentService, cfg.Agent.Name, version)

	router := handler.NewRouter(cfg, handler.Handlers{
		Video:    handler.NewVideoHandler(meetingService, files, logger),
		Audio:    handler.NewAudioHandler(audio.NewAudioService(files, groq, cfg.AI.TTSVoice, logger), logger),
		Download: handler.NewDownloadHandler(files, logger),
		Contact:  handler.NewContactHandler(contact.NewContactService(contactRepo, logger), logger),
		Agent:    handler.NewAgentHandler(agentService, logger),
		Insight:  handler.NewInsightHandler(graphService, logger),
		Settings: handler.NewSettingsHandler(settings.NewSettingsService(runtime, logger), logger),
		Archive:  handler.NewArchiveHandler(archive, logger),
		MCP:      server.NewStreamableHTTPServer(mcpServer),
	})
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
