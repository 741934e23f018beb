package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LLM providers
	LLM    LLMConfig
	Gemini GeminiConfig
	Vertex VertexConfig

	// Chat specifics
	Chat ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig selects the external model provider.
// Provider "auto" picks Vertex when credentials are configured, then Gemini,
// and leaves the service in fallback-only mode when neither is available.
type LLMConfig struct {
	Provider string
	Model    string
	Timeout  time.Duration
}

type GeminiConfig struct {
	APIKey string
}

type VertexConfig struct {
	CredentialsPath string
	ProjectID       string
	Location        string
}

type ChatConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}

	// LLM provider selection
	cfg.LLM.Provider = viper.GetString("llm.provider")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	if model := viper.GetString("agent_model"); model != "" {
		cfg.LLM.Model = model
	}

	// Gemini (API key auth)
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// Vertex AI (service-account auth)
	cfg.Vertex.CredentialsPath = viper.GetString("vertex.credentials_path")
	cfg.Vertex.ProjectID = viper.GetString("vertex.project_id")
	cfg.Vertex.Location = viper.GetString("vertex.location")
	if creds := viper.GetString("google_application_credentials"); creds != "" {
		cfg.Vertex.CredentialsPath = creds
	}

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.LLM.Provider {
	case "auto", "vertex", "gemini", "none":
	default:
		return fmt.Errorf("invalid llm.provider %q (want auto, vertex, gemini, or none)", cfg.LLM.Provider)
	}
	if cfg.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive, got %s", cfg.LLM.Timeout)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// LLM defaults
	viper.SetDefault("llm.provider", "auto")
	viper.SetDefault("llm.model", "gemini-2.5-pro")
	viper.SetDefault("llm.timeout", "30s")
	viper.SetDefault("vertex.location", "us-central1")

	// Chat defaults
	viper.SetDefault("chat.rate_limit_per_min", 60)
}
