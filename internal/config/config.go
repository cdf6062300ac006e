package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OpenAIEmbedderConfig holds configuration for the OpenAI-compatible embedder.
type OpenAIEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// OllamaEmbedderConfig holds configuration for the Ollama embedder.
type OllamaEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// EmbedderConfig selects and configures the embedding provider.
type EmbedderConfig struct {
	Type   string                `yaml:"type"`
	OpenAI *OpenAIEmbedderConfig `yaml:"openai,omitempty"`
	Ollama *OllamaEmbedderConfig `yaml:"ollama,omitempty"`
}

// PipelineConfig configures the analysis stages.
type PipelineConfig struct {
	Clustering     string `yaml:"clustering"`
	MinClusterSize int    `yaml:"min_cluster_size"`
	TargetClusters int    `yaml:"target_clusters"`
	MaxTopics      int    `yaml:"max_topics"`
	MaxBullets     int    `yaml:"max_bullets"`
}

// OCRConfig configures text extraction from images.
type OCRConfig struct {
	Languages []string `yaml:"languages"`
}

// RenderConfig configures deck output.
type RenderConfig struct {
	Formats   []string `yaml:"formats"`
	OutputDir string   `yaml:"output_dir"`
	BaseName  string   `yaml:"base_name"`
	DeckTitle string   `yaml:"deck_title"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Embedder EmbedderConfig `yaml:"embedder"`
	OCR      OCRConfig      `yaml:"ocr"`
	Render   RenderConfig   `yaml:"render"`
	LogLevel string         `yaml:"log_level"`
}

// Load reads a config from the given path. A missing file yields defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then the user config path. If
// neither exists, defaults are written to the user path and returned.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "silentslides", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Pipeline: PipelineConfig{
			Clustering:     "density",
			MinClusterSize: 2,
			MaxTopics:      10,
			MaxBullets:     5,
		},
		Embedder: EmbedderConfig{Type: "tfidf"},
		OCR:      OCRConfig{Languages: []string{"eng"}},
		Render: RenderConfig{
			Formats:   []string{"markdown", "json"},
			OutputDir: "output",
			BaseName:  "slides",
			DeckTitle: "AI-Generated Slide Deck",
		},
		LogLevel: "info",
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Pipeline.Clustering == "" {
		cfg.Pipeline.Clustering = "density"
	}
	if cfg.Pipeline.MinClusterSize == 0 {
		cfg.Pipeline.MinClusterSize = 2
	}
	if cfg.Pipeline.MaxTopics == 0 {
		cfg.Pipeline.MaxTopics = 10
	}
	if cfg.Pipeline.MaxBullets == 0 {
		cfg.Pipeline.MaxBullets = 5
	}
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "tfidf"
	}
	if cfg.Embedder.Type == "openai" && cfg.Embedder.OpenAI != nil {
		if cfg.Embedder.OpenAI.BaseURL == "" {
			cfg.Embedder.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Embedder.OpenAI.APIKeyEnv == "" {
			cfg.Embedder.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Embedder.OpenAI.Model == "" {
			cfg.Embedder.OpenAI.Model = "text-embedding-3-small"
		}
		if cfg.Embedder.OpenAI.TimeoutSecs == 0 {
			cfg.Embedder.OpenAI.TimeoutSecs = 30
		}
	}
	if len(cfg.OCR.Languages) == 0 {
		cfg.OCR.Languages = []string{"eng"}
	}
	if len(cfg.Render.Formats) == 0 {
		cfg.Render.Formats = []string{"markdown", "json"}
	}
	if cfg.Render.OutputDir == "" {
		cfg.Render.OutputDir = "output"
	}
	if cfg.Render.BaseName == "" {
		cfg.Render.BaseName = "slides"
	}
	if cfg.Render.DeckTitle == "" {
		cfg.Render.DeckTitle = "AI-Generated Slide Deck"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
