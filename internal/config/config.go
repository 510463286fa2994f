package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `toml:"server"`
	LLM       LLMConfig       `toml:"llm"`
	Knowledge KnowledgeConfig `toml:"knowledge"`
	FAQ       FAQConfig       `toml:"faq"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port          string   `toml:"port" validate:"required"`
	SessionSecret string   `toml:"session_secret" validate:"required"`
	CORSOrigins   []string `toml:"cors_origins"`
	LogLevel      string   `toml:"log_level" validate:"oneof=debug info warn error"`
}

// LLMConfig selects the completion vendor and holds its credentials
type LLMConfig struct {
	Provider string `toml:"provider" validate:"oneof=gemini openai anthropic"`

	GeminiAPIKey string `toml:"gemini_api_key" validate:"required_if=Provider gemini"`
	GeminiModel  string `toml:"gemini_model" validate:"required_if=Provider gemini"`

	OpenAIAPIKey string `toml:"openai_api_key" validate:"required_if=Provider openai"`
	OpenAIModel  string `toml:"openai_model" validate:"required_if=Provider openai"`

	AnthropicAPIKey    string `toml:"anthropic_api_key" validate:"required_if=Provider anthropic"`
	AnthropicModel     string `toml:"anthropic_model" validate:"required_if=Provider anthropic"`
	AnthropicMaxTokens int    `toml:"anthropic_max_tokens" validate:"min=1"`
}

// KnowledgeConfig configures the optional Qdrant-backed knowledge base
type KnowledgeConfig struct {
	Enabled bool `toml:"enabled"`

	QdrantHost       string `toml:"qdrant_host" validate:"required_if=Enabled true"`
	QdrantPort       int    `toml:"qdrant_port" validate:"min=1,max=65535"`
	QdrantCollection string `toml:"qdrant_collection" validate:"required_if=Enabled true"`

	EmbedProvider  string  `toml:"embed_provider" validate:"oneof=gemini openai"`
	EmbedModel     string  `toml:"embed_model" validate:"required_if=Enabled true"`
	EmbedDimension int     `toml:"embed_dimension" validate:"min=1"`
	ChunkSize      int     `toml:"chunk_size" validate:"min=1"`
	ChunkOverlap   int     `toml:"chunk_overlap" validate:"min=0,ltfield=ChunkSize"`
	SearchLimit    int     `toml:"search_limit" validate:"min=1"`
	MinScore       float64 `toml:"min_score" validate:"min=0,max=1"`
}

// FAQConfig enables the curated question/answer set consulted before the model.
// An empty Path selects the built-in set.
type FAQConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default returns the configuration used before any file, env or flag is applied
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			CORSOrigins: []string{"*"},
			LogLevel:    "info",
		},
		LLM: LLMConfig{
			Provider:           ProviderGemini,
			GeminiModel:        "gemini-2.0-flash",
			OpenAIModel:        "gpt-4.1-mini",
			AnthropicModel:     "claude-sonnet-4-5",
			AnthropicMaxTokens: 1024,
		},
		Knowledge: KnowledgeConfig{
			QdrantHost:       "localhost",
			QdrantPort:       6334,
			QdrantCollection: "docs",
			EmbedProvider:    ProviderGemini,
			EmbedModel:       "gemini-embedding-001",
			EmbedDimension:   768,
			ChunkSize:        1000,
			ChunkOverlap:     200,
			SearchLimit:      3,
			MinScore:         0.3,
		},
	}
}

// Load builds the configuration from defaults, an optional TOML file,
// environment variables and command-line flags, in increasing priority.
// The file comes from -config or SIGMA_CONFIG.
func Load(args []string) (*Config, error) {
	cfg := Default()

	path := configPath(args)
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("SERVER_PORT", c.Server.Port)
	c.Server.SessionSecret = getEnv("SESSION_SECRET", c.Server.SessionSecret)
	c.Server.CORSOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", c.Server.CORSOrigins)
	c.Server.LogLevel = getEnv("LOG_LEVEL", c.Server.LogLevel)

	c.LLM.Provider = getEnv("LLM_PROVIDER", c.LLM.Provider)
	c.LLM.GeminiAPIKey = getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", c.LLM.GeminiAPIKey))
	c.LLM.GeminiModel = getEnv("GEMINI_MODEL", c.LLM.GeminiModel)
	c.LLM.OpenAIAPIKey = getEnv("OPENAI_API_KEY", c.LLM.OpenAIAPIKey)
	c.LLM.OpenAIModel = getEnv("OPENAI_MODEL", c.LLM.OpenAIModel)
	c.LLM.AnthropicAPIKey = getEnv("ANTHROPIC_API_KEY", c.LLM.AnthropicAPIKey)
	c.LLM.AnthropicModel = getEnv("ANTHROPIC_MODEL", c.LLM.AnthropicModel)
	c.LLM.AnthropicMaxTokens = getEnvAsInt("ANTHROPIC_MAX_TOKENS", c.LLM.AnthropicMaxTokens)

	c.Knowledge.Enabled = getEnvAsBool("KNOWLEDGE_ENABLED", c.Knowledge.Enabled)
	c.Knowledge.QdrantHost = getEnv("QDRANT_HOST", c.Knowledge.QdrantHost)
	c.Knowledge.QdrantPort = getEnvAsInt("QDRANT_PORT", c.Knowledge.QdrantPort)
	c.Knowledge.QdrantCollection = getEnv("QDRANT_COLLECTION", c.Knowledge.QdrantCollection)
	c.Knowledge.EmbedProvider = getEnv("EMBED_PROVIDER", c.Knowledge.EmbedProvider)
	c.Knowledge.EmbedModel = getEnv("EMBED_MODEL", c.Knowledge.EmbedModel)
	c.Knowledge.EmbedDimension = getEnvAsInt("EMBED_DIMENSION", c.Knowledge.EmbedDimension)
	c.Knowledge.ChunkSize = getEnvAsInt("CHUNK_SIZE", c.Knowledge.ChunkSize)
	c.Knowledge.ChunkOverlap = getEnvAsInt("CHUNK_OVERLAP", c.Knowledge.ChunkOverlap)
	c.Knowledge.SearchLimit = getEnvAsInt("SEARCH_LIMIT", c.Knowledge.SearchLimit)
	c.Knowledge.MinScore = getEnvAsFloat("MIN_SCORE", c.Knowledge.MinScore)

	c.FAQ.Enabled = getEnvAsBool("FAQ_ENABLED", c.FAQ.Enabled)
	c.FAQ.Path = getEnv("FAQ_PATH", c.FAQ.Path)
}

// parseFlags lets flags override everything loaded so far.
// Current values are used as flag defaults.
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("sigma-ai", flag.ContinueOnError)

	fs.String("config", "", "Path to a TOML config file (env SIGMA_CONFIG)")
	fs.StringVar(&c.Server.Port, "server-port", c.Server.Port, "Server port")
	fs.StringVar(&c.Server.SessionSecret, "session-secret", c.Server.SessionSecret, "Secret used to sign session cookies")
	fs.Func("cors-origins", "Comma-separated allowed CORS origins", func(v string) error {
		c.Server.CORSOrigins = splitList(v)
		return nil
	})
	fs.StringVar(&c.Server.LogLevel, "log-level", c.Server.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&c.LLM.Provider, "llm-provider", c.LLM.Provider, "Completion provider: gemini, openai or anthropic")
	fs.StringVar(&c.LLM.GeminiAPIKey, "gemini-key", c.LLM.GeminiAPIKey, "Gemini API key")
	fs.StringVar(&c.LLM.GeminiModel, "gemini-model", c.LLM.GeminiModel, "Gemini model for answers")
	fs.StringVar(&c.LLM.OpenAIAPIKey, "openai-key", c.LLM.OpenAIAPIKey, "OpenAI API key")
	fs.StringVar(&c.LLM.OpenAIModel, "openai-model", c.LLM.OpenAIModel, "OpenAI model for chat completions")
	fs.StringVar(&c.LLM.AnthropicAPIKey, "anthropic-key", c.LLM.AnthropicAPIKey, "Anthropic API key")
	fs.StringVar(&c.LLM.AnthropicModel, "anthropic-model", c.LLM.AnthropicModel, "Anthropic model for answers")
	fs.IntVar(&c.LLM.AnthropicMaxTokens, "anthropic-max-tokens", c.LLM.AnthropicMaxTokens, "Anthropic response token limit")
	fs.BoolVar(&c.Knowledge.Enabled, "knowledge", c.Knowledge.Enabled, "Enable the Qdrant knowledge base")
	fs.StringVar(&c.Knowledge.QdrantHost, "qdrant-host", c.Knowledge.QdrantHost, "Qdrant host")
	fs.IntVar(&c.Knowledge.QdrantPort, "qdrant-port", c.Knowledge.QdrantPort, "Qdrant gRPC port")
	fs.StringVar(&c.Knowledge.QdrantCollection, "qdrant-collection", c.Knowledge.QdrantCollection, "Qdrant collection name")
	fs.StringVar(&c.Knowledge.EmbedProvider, "embed-provider", c.Knowledge.EmbedProvider, "Embedding provider: gemini or openai")
	fs.StringVar(&c.Knowledge.EmbedModel, "embed-model", c.Knowledge.EmbedModel, "Embedding model")
	fs.IntVar(&c.Knowledge.EmbedDimension, "embed-dimension", c.Knowledge.EmbedDimension, "Embedding vector size")
	fs.IntVar(&c.Knowledge.ChunkSize, "chunk-size", c.Knowledge.ChunkSize, "Text chunk size in characters")
	fs.IntVar(&c.Knowledge.ChunkOverlap, "chunk-overlap", c.Knowledge.ChunkOverlap, "Text chunk overlap in characters")
	fs.IntVar(&c.Knowledge.SearchLimit, "search-limit", c.Knowledge.SearchLimit, "Number of knowledge matches used as context")
	fs.Float64Var(&c.Knowledge.MinScore, "min-score", c.Knowledge.MinScore, "Minimum similarity score for knowledge matches")
	fs.BoolVar(&c.FAQ.Enabled, "faq", c.FAQ.Enabled, "Answer from the curated FAQ before asking the model")
	fs.StringVar(&c.FAQ.Path, "faq-path", c.FAQ.Path, "TOML file replacing the built-in FAQ")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	return nil
}

// Validate checks field constraints and cross-field credential requirements
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Knowledge.Enabled {
		switch c.Knowledge.EmbedProvider {
		case ProviderGemini:
			if c.LLM.GeminiAPIKey == "" {
				return fmt.Errorf("GEMINI_API_KEY is required for gemini embeddings (set via environment variable or -gemini-key flag)")
			}
		case ProviderOpenAI:
			if c.LLM.OpenAIAPIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY is required for openai embeddings (set via environment variable or -openai-key flag)")
			}
		}
	}

	return nil
}

// SlogLevel maps the configured level name onto slog
func (c ServerConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// configPath finds -config in args before flags are parsed, since the file
// has to be applied before env and flags.
func configPath(args []string) string {
	for i, arg := range args {
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("SIGMA_CONFIG")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return splitList(value)
}

func splitList(value string) []string {
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
