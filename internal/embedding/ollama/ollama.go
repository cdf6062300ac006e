// Package ollama embeds text through a local Ollama server using the
// langchaingo client.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms/ollama"
)

// Config configures the Ollama embedder.
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Embedder wraps an Ollama embedding model behind the pipeline's Embedder
// contract. The underlying client is safe for reuse across runs.
type Embedder struct {
	model     string
	timeout   time.Duration
	client    *ollama.LLM
	dimension int
}

// New connects a langchaingo Ollama client for the configured model.
func New(cfg Config) (*Embedder, error) {
	if cfg.Model == "" {
		cfg.Model = "nomic-embed-text:latest"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	client, err := ollama.New(ollama.WithModel(cfg.Model), ollama.WithServerURL(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("connect ollama: %w", err)
	}
	return &Embedder{model: cfg.Model, timeout: cfg.Timeout, client: client}, nil
}

func (e *Embedder) Name() string { return "ollama" }

// Prepare is a no-op: the model is already trained. Dimension is learned
// from the first embedding.
func (e *Embedder) Prepare(corpus []string) error { return nil }

// Dimension returns the model's vector size, 0 until the first Embed.
func (e *Embedder) Dimension() int { return e.dimension }

// Embed requests a single embedding from the Ollama server.
func (e *Embedder) Embed(text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	vectors, err := e.client.CreateEmbedding(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("ollama embedding (%s): %w", e.model, err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, errors.New("ollama returned no embedding")
	}
	out := make([]float64, len(vectors[0]))
	for i, v := range vectors[0] {
		out[i] = float64(v)
	}
	if e.dimension == 0 {
		e.dimension = len(out)
	}
	return out, nil
}
