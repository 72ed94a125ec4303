// Package config provides application-wide configuration.
// All fields have safe defaults so the binary runs locally without any setup.
//
// Precedence, lowest first: defaults, YAML file, .env file, process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the Jarvis backend.
type Config struct {
	Server ServerConfig `yaml:"server"`
	LLM    LLMConfig    `yaml:"llm"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host         string        `yaml:"host"`          // JARVIS_HOST
	Port         int           `yaml:"port"`          // JARVIS_PORT
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // JARVIS_READ_TIMEOUT
	WriteTimeout time.Duration `yaml:"write_timeout"` // JARVIS_WRITE_TIMEOUT, must exceed LLM.Timeout
	IdleTimeout  time.Duration `yaml:"idle_timeout"`  // JARVIS_IDLE_TIMEOUT
}

// LLMConfig selects and configures the generation backend.
type LLMConfig struct {
	Provider      string        `yaml:"provider"`        // LLM_PROVIDER: "ollama" or "openai"
	OllamaBaseURL string        `yaml:"ollama_base_url"` // OLLAMA_BASE_URL
	OllamaModel   string        `yaml:"ollama_model"`    // OLLAMA_MODEL
	OpenAIBaseURL string        `yaml:"openai_base_url"` // OPENAI_BASE_URL
	OpenAIAPIKey  string        `yaml:"openai_api_key"`  // OPENAI_API_KEY
	OpenAIModel   string        `yaml:"openai_model"`    // OPENAI_MODEL
	Timeout       time.Duration `yaml:"timeout"`         // LLM_TIMEOUT
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`       // LOG_LEVEL
	Development bool   `yaml:"development"` // LOG_DEVELOPMENT
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"` // CORS_ALLOWED_ORIGINS (comma separated)
}

// Supported LLM providers.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

const (
	envKeyConfigFile = "JARVIS_CONFIG"

	envKeyHost         = "JARVIS_HOST"
	envKeyPort         = "JARVIS_PORT"
	envKeyReadTimeout  = "JARVIS_READ_TIMEOUT"
	envKeyWriteTimeout = "JARVIS_WRITE_TIMEOUT"
	envKeyIdleTimeout  = "JARVIS_IDLE_TIMEOUT"

	envKeyLLMProvider   = "LLM_PROVIDER"
	envKeyOllamaBaseURL = "OLLAMA_BASE_URL"
	envKeyOllamaModel   = "OLLAMA_MODEL"
	envKeyOpenAIBaseURL = "OPENAI_BASE_URL"
	envKeyOpenAIAPIKey  = "OPENAI_API_KEY"
	envKeyOpenAIModel   = "OPENAI_MODEL"
	envKeyLLMTimeout    = "LLM_TIMEOUT"

	envKeyLogLevel       = "LOG_LEVEL"
	envKeyLogDevelopment = "LOG_DEVELOPMENT"

	envKeyCORSOrigins = "CORS_ALLOWED_ORIGINS"
)

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8000,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 150 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		LLM: LLMConfig{
			Provider:      ProviderOllama,
			OllamaBaseURL: "http://127.0.0.1:11434",
			OllamaModel:   "llama3.2",
			OpenAIBaseURL: "http://127.0.0.1:11434/v1",
			OpenAIAPIKey:  "ollama",
			OpenAIModel:   "llama3.2",
			Timeout:       120 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:5173",
				"http://uide-jarvis-front.s3-website-us-east-1.amazonaws.com",
			},
		},
	}
}

// Load builds the configuration. path names an optional YAML file; when empty,
// JARVIS_CONFIG is consulted. A .env file in the working directory is loaded
// if present and never overrides variables that are already set.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv(envKeyConfigFile)
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// loadFile reads a YAML file, expands ${VAR} references and merges it over cfg.
func loadFile(path string, cfg *Config) error {
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	contentWithEnv := os.ExpandEnv(string(rawBytes))
	if err := yaml.Unmarshal([]byte(contentWithEnv), cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg with any environment variable that is set.
func applyEnv(cfg *Config) error {
	cfg.Server.Host = envOr(envKeyHost, cfg.Server.Host)
	cfg.LLM.Provider = envOr(envKeyLLMProvider, cfg.LLM.Provider)
	cfg.LLM.OllamaBaseURL = envOr(envKeyOllamaBaseURL, cfg.LLM.OllamaBaseURL)
	cfg.LLM.OllamaModel = envOr(envKeyOllamaModel, cfg.LLM.OllamaModel)
	cfg.LLM.OpenAIBaseURL = envOr(envKeyOpenAIBaseURL, cfg.LLM.OpenAIBaseURL)
	cfg.LLM.OpenAIAPIKey = envOr(envKeyOpenAIAPIKey, cfg.LLM.OpenAIAPIKey)
	cfg.LLM.OpenAIModel = envOr(envKeyOpenAIModel, cfg.LLM.OpenAIModel)
	cfg.Log.Level = envOr(envKeyLogLevel, cfg.Log.Level)

	if v := os.Getenv(envKeyCORSOrigins); v != "" {
		cfg.CORS.AllowedOrigins = splitList(v)
	}

	var err error
	if cfg.Server.Port, err = envInt(envKeyPort, cfg.Server.Port); err != nil {
		return err
	}
	if cfg.Log.Development, err = envBool(envKeyLogDevelopment, cfg.Log.Development); err != nil {
		return err
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{envKeyReadTimeout, &cfg.Server.ReadTimeout},
		{envKeyWriteTimeout, &cfg.Server.WriteTimeout},
		{envKeyIdleTimeout, &cfg.Server.IdleTimeout},
		{envKeyLLMTimeout, &cfg.LLM.Timeout},
	}
	for _, d := range durations {
		if *d.dst, err = envDuration(d.key, *d.dst); err != nil {
			return err
		}
	}
	return nil
}

// Validate reports configuration that cannot work.
func (c Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOllama, ProviderOpenAI:
	default:
		return fmt.Errorf("llm.provider %q is not supported (want %q or %q)", c.LLM.Provider, ProviderOllama, ProviderOpenAI)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}
	if c.Server.WriteTimeout <= c.LLM.Timeout {
		return fmt.Errorf("server.write_timeout %v must exceed llm.timeout %v", c.Server.WriteTimeout, c.LLM.Timeout)
	}
	return nil
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
