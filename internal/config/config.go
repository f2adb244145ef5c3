// Package config loads the application settings from configs/config.yaml.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Conf holds the settings loaded by Init.
var Conf Config

// Config mirrors the structure of config.yaml.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Log           LogConfig           `mapstructure:"log"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	LLM           LLMConfig           `mapstructure:"llm"`
	Assistant     AssistantConfig     `mapstructure:"assistant"`
	Admin         AdminConfig         `mapstructure:"admin"`
	Seed          SeedConfig          `mapstructure:"seed"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig groups the content store and Redis connections.
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// MySQLConfig configures the content store. Driver is "mysql" (default) or "sqlite" for local runs.
type MySQLConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig configures admin token signing.
type JWTConfig struct {
	Secret                 string `mapstructure:"secret"`
	AccessTokenExpireHours int    `mapstructure:"access_token_expire_hours"`
	RefreshTokenExpireDays int    `mapstructure:"refresh_token_expire_days"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// KafkaConfig configures the site event topic.
type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// ElasticsearchConfig configures the site search index.
type ElasticsearchConfig struct {
	Addresses string `mapstructure:"addresses"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	IndexName string `mapstructure:"index_name"`
}

// MinIOConfig configures image uploads. PublicBaseURL, when set, is used to build object URLs
// instead of presigned links.
type MinIOConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket_name"`
	PublicBaseURL   string `mapstructure:"public_base_url"`
}

// LLMConfig configures the hosted completion endpoint.
// Provider is "openai" (any OpenAI-compatible /chat/completions API) or "gemini".
type LLMConfig struct {
	Provider       string              `mapstructure:"provider"`
	APIKey         string              `mapstructure:"api_key"`
	BaseURL        string              `mapstructure:"base_url"`
	Model          string              `mapstructure:"model"`
	TimeoutSeconds int                 `mapstructure:"timeout_seconds"`
	Generation     LLMGenerationConfig `mapstructure:"generation"`
}

// LLMGenerationConfig holds the fixed generation parameters of a chat turn.
type LLMGenerationConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	TopP        float64 `mapstructure:"top_p"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// Timeout returns the per-turn deadline for the model call.
func (c LLMConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// AssistantConfig holds the static text the chatbot is grounded with.
type AssistantConfig struct {
	ContactInfo string `mapstructure:"contact_info"`
	Persona     string `mapstructure:"persona"`
	Instruction string `mapstructure:"instruction"`
	// MaxItemsPerCollection caps each collection in the context. 0 keeps everything.
	MaxItemsPerCollection int    `mapstructure:"max_items_per_collection"`
	FallbackMessage       string `mapstructure:"fallback_message"`
}

// AdminConfig is the account bootstrapped at startup when it does not exist yet.
type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

type SeedConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

const (
	DefaultContactInfo = "Contact Information: Email: info@ai-solutions.com | Visit /contact for inquiries, quotes, and more. We are based in the USA and serve clients worldwide."
	DefaultPersona     = "You are an AI assistant for AI-Solutions, a company specializing in intelligent automation solutions."
	DefaultInstruction = "Your goal is to answer user questions about the company, its services, projects, articles, events, gallery, testimonials, contact information, and general AI topics. Keep answers concise, accurate, and helpful. If you don't know something, say so clearly."
	DefaultFallback    = "I'm sorry, but I'm having trouble connecting. Please try again later."
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.mysql.driver", "mysql")
	v.SetDefault("jwt.access_token_expire_hours", 2)
	v.SetDefault("jwt.refresh_token_expire_days", 7)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("kafka.topic", "site-events")
	v.SetDefault("kafka.group_id", "ai-solutions-go-consumer")
	v.SetDefault("elasticsearch.index_name", "site_content")
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("llm.timeout_seconds", 30)
	v.SetDefault("llm.generation.temperature", 0.7)
	v.SetDefault("llm.generation.max_tokens", 1024)
	v.SetDefault("assistant.contact_info", DefaultContactInfo)
	v.SetDefault("assistant.persona", DefaultPersona)
	v.SetDefault("assistant.instruction", DefaultInstruction)
	v.SetDefault("assistant.max_items_per_collection", 0)
	v.SetDefault("assistant.fallback_message", DefaultFallback)
	v.SetDefault("seed.file", "./configs/seed.yaml")
}

// Load reads the YAML file at configPath. Environment variables override file values,
// with dots replaced by underscores (llm.api_key -> LLM_API_KEY).
func Load(configPath string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Init loads the config into Conf and panics if the file cannot be used.
func Init(configPath string) {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err)
	}
	Conf = cfg
}
