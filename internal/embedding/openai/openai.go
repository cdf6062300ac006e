// Package openai embeds text through any OpenAI-compatible /embeddings
// endpoint, which also covers Ollama's compatibility layer.
package openai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"
)

// Client is a remote embedder speaking the OpenAI embeddings protocol.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	dimension  int
	client     *http.Client
	maxRetries int
}

// Config configures the remote embeddings client. APIKeyEnv names the
// environment variable holding the key.
type Config struct {
	BaseURL   string
	APIKeyEnv string
	Model     string
	Timeout   time.Duration
}

// NewClient creates a remote embedder, reading the API key from the
// configured environment variable.
func NewClient(cfg Config) (*Client, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key in env %s", cfg.APIKeyEnv)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "text-embedding-3-small"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     key,
		model:      cfg.Model,
		client:     &http.Client{Timeout: timeout},
		maxRetries: 5,
	}, nil
}

func (c *Client) Name() string { return "openai" }

// Prepare is a no-op: remote models need no corpus pass. The dimension is
// learned from the first successful embedding.
func (c *Client) Prepare(corpus []string) error { return nil }

// Dimension returns the model's vector size, 0 until the first Embed.
func (c *Client) Dimension() int { return c.dimension }

// Embed requests an embedding for text, retrying transient failures with
// exponential backoff and honoring Retry-After on 429s.
func (c *Client) Embed(text string) ([]float64, error) {
	url := c.baseURL + "/embeddings"
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		payload, err := c.request(url, text)
		if err != nil {
			var retryErr *retryableError
			if errors.As(err, &retryErr) && attempt < c.maxRetries {
				time.Sleep(retryErr.delay(attempt))
				continue
			}
			return nil, err
		}
		vec, ok := decodeEmbedding(payload)
		if !ok {
			if attempt < c.maxRetries {
				time.Sleep(backoff(attempt))
				continue
			}
			return nil, errors.New("no embedding returned")
		}
		if c.dimension == 0 {
			c.dimension = len(vec)
		}
		return vec, nil
	}
	return nil, errors.New("no embedding returned")
}

type retryableError struct {
	status     string
	retryAfter time.Duration
}

func (e *retryableError) Error() string { return "embeddings request failed: " + e.status }

func (e *retryableError) delay(attempt int) time.Duration {
	if e.retryAfter > 0 {
		return e.retryAfter
	}
	return backoff(attempt)
}

func (c *Client) request(url, text string) ([]byte, error) {
	body, _ := json.Marshal(struct {
		Input string `json:"input"`
		Model string `json:"model"`
	}{Input: text, Model: c.model})

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &retryableError{status: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		retryAfter := time.Duration(0)
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			if secs, err := strconv.Atoi(ra); err == nil {
				retryAfter = time.Duration(secs) * time.Second
			}
		}
		return nil, &retryableError{status: resp.Status, retryAfter: retryAfter}
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("embeddings request failed: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// decodeEmbedding accepts the OpenAI response shape first, then the
// Ollama-native one.
func decodeEmbedding(payload []byte) ([]float64, bool) {
	var openaiOut struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &openaiOut); err == nil {
		if len(openaiOut.Data) > 0 && len(openaiOut.Data[0].Embedding) > 0 {
			return openaiOut.Data[0].Embedding, true
		}
	}
	var ollamaOut struct {
		Embedding []float64 `json:"embedding"`
	}
	if err := json.Unmarshal(payload, &ollamaOut); err == nil && len(ollamaOut.Embedding) > 0 {
		return ollamaOut.Embedding, true
	}
	return nil, false
}

func backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := 200 * time.Millisecond << attempt
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}
