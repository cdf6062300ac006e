// Package tesseract extracts text from images using the gosseract bindings.
package tesseract

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"silentslides/internal/extract"
)

// Engine runs Tesseract OCR over image files. A fresh client is created per
// extraction, so the engine itself is safe for reuse.
type Engine struct {
	languages     []string
	clientFactory func() *gosseract.Client
}

// New creates a Tesseract engine with the given trained-data language hints
// (e.g. "eng", "deu"). No hints leaves Tesseract's default in place.
func New(languages ...string) *Engine {
	return &Engine{
		languages:     append([]string(nil), languages...),
		clientFactory: gosseract.NewClient,
	}
}

func (e *Engine) Name() string { return "tesseract" }

// Extract recognizes the image at path and returns its extraction record.
// Confidence is the mean word-level confidence on a 0-100 scale.
func (e *Engine) Extract(ctx context.Context, path string) (extract.Extraction, error) {
	select {
	case <-ctx.Done():
		return extract.Extraction{}, ctx.Err()
	default:
	}

	client := e.clientFactory()
	defer client.Close()

	if err := client.SetImage(path); err != nil {
		return extract.Extraction{}, fmt.Errorf("set image %s: %w", path, err)
	}
	if len(e.languages) > 0 {
		if err := client.SetLanguage(e.languages...); err != nil {
			return extract.Extraction{}, fmt.Errorf("set languages: %w", err)
		}
	}

	text, err := client.Text()
	if err != nil {
		return extract.Extraction{}, fmt.Errorf("recognize %s: %w", path, err)
	}
	text = strings.TrimSpace(text)

	return extract.Extraction{
		Text:       text,
		Confidence: meanConfidence(client),
		WordCount:  len(strings.Fields(text)),
		Source:     path,
	}, nil
}

func meanConfidence(client *gosseract.Client) float64 {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	sum := 0.0
	for _, b := range boxes {
		sum += b.Confidence
	}
	return math.Round(sum/float64(len(boxes))*100) / 100
}
