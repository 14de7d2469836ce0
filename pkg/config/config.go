package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Graph    GraphConfig
	AI       AIConfig
	Media    MediaConfig
	Agent    AgentConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	ProjectName     string   `envconfig:"PROJECT_NAME" default:"NexusInsightStream"`
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	UploadDir       string   `envconfig:"UPLOAD_DIR" default:"uploads"`
	ExportDir       string   `envconfig:"EXPORT_DIR" default:"exports"`
	MaxUploadMB     int64    `envconfig:"MAX_UPLOAD_MB" default:"512"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver      string `envconfig:"DB_DRIVER" default:"sqlite"`
	URL         string `envconfig:"POSTGRES_URL"`
	SQLitePath  string `envconfig:"DB_SQLITE_PATH" default:"local_db.sqlite"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"insight_stream"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string        `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"10m"`
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"insight-stream"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
	PublicURL       string `envconfig:"STORAGE_PUBLIC_URL"`
}

// GraphConfig holds Neo4j configuration
type GraphConfig struct {
	URI            string        `envconfig:"NEO4J_URI" default:"bolt://localhost:7687"`
	User           string        `envconfig:"NEO4J_USER" default:"neo4j"`
	Password       string        `envconfig:"NEO4J_PASSWORD" default:"password"`
	ConnectTimeout time.Duration `envconfig:"NEO4J_CONNECT_TIMEOUT" default:"3s"`
}

// AIConfig holds model provider configuration
type AIConfig struct {
	GoogleAPIKey        string        `envconfig:"GOOGLE_API_KEY"`
	GroqAPIKey          string        `envconfig:"GROQ_API_KEY"`
	GroqBaseURL         string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	AssemblyAIAPIKey    string        `envconfig:"ASSEMBLYAI_API_KEY"`
	SpeechBackend       string        `envconfig:"SPEECH_BACKEND" default:"groq"`
	DefaultModel        string        `envconfig:"DEFAULT_MODEL" default:"openai/gpt-oss-120b"`
	GeminiModel         string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	GroqFallbackModel   string        `envconfig:"GROQ_FALLBACK_MODEL" default:"llama-3.1-8b-instant"`
	WhisperModel        string        `envconfig:"WHISPER_MODEL" default:"whisper-large-v3"`
	TTSModel            string        `envconfig:"TTS_MODEL" default:"playai-tts"`
	TTSVoice            string        `envconfig:"TTS_VOICE" default:"Fritz-PlayAI"`
	TranscriptionMethod string        `envconfig:"DEFAULT_TRANSCRIPTION_METHOD" default:"gemini"`
	PollInterval        time.Duration `envconfig:"GEMINI_POLL_INTERVAL" default:"2s"`
	DynamicFields       bool          `envconfig:"ANALYSIS_DYNAMIC_FIELDS" default:"false"`
	HTTPTimeout         time.Duration `envconfig:"AI_HTTP_TIMEOUT" default:"120s"`
}

// MediaConfig holds ffmpeg configuration
type MediaConfig struct {
	FFmpegPath      string `envconfig:"FFMPEG_PATH" default:"ffmpeg"`
	FFprobePath     string `envconfig:"FFPROBE_PATH" default:"ffprobe"`
	MaxChunkSeconds int    `envconfig:"MEDIA_MAX_CHUNK_SECONDS" default:"600"`
	TempDir         string `envconfig:"MEDIA_TEMP_DIR"`
}

// AgentConfig holds agent-to-agent configuration
type AgentConfig struct {
	Name         string `envconfig:"AGENT_NAME" default:"Video Analysis Agent"`
	PublicURL    string `envconfig:"AGENT_PUBLIC_URL" default:"http://localhost:8080"`
	SharedSecret string `envconfig:"AGENT_SHARED_SECRET"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	sections := []interface{}{
		&config.Server,
		&config.Database,
		&config.Redis,
		&config.Storage,
		&config.Graph,
		&config.AI,
		&config.Media,
		&config.Agent,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.Database.Driver)
	}
	switch c.AI.TranscriptionMethod {
	case MethodGemini, MethodGroq:
	default:
		return fmt.Errorf("DEFAULT_TRANSCRIPTION_METHOD must be %s or %s", MethodGemini, MethodGroq)
	}
	switch c.AI.SpeechBackend {
	case "groq", "assemblyai":
	default:
		return fmt.Errorf("SPEECH_BACKEND must be groq or assemblyai, got %q", c.AI.SpeechBackend)
	}
	if c.Media.MaxChunkSeconds <= 0 {
		return fmt.Errorf("MEDIA_MAX_CHUNK_SECONDS must be positive")
	}
	return nil
}

// GetDatabaseDSN returns the postgres connection string
func (c *Config) GetDatabaseDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
