// Package extract is the upstream collaborator boundary: it turns source
// files into text extraction records that the analysis pipeline consumes.
package extract

import (
	"context"
	"os"
	"strings"

	"silentslides/internal/logging"
)

// Extraction is the record produced for one source file.
type Extraction struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	WordCount  int     `json:"word_count"`
	Source     string  `json:"source"`
}

// Engine extracts text from a single source file.
type Engine interface {
	Name() string
	Extract(ctx context.Context, path string) (Extraction, error)
}

// Batch runs the engine over each path in order. A failed extraction is
// logged and recorded as an empty result rather than aborting the batch;
// only context cancellation stops early. onProgress, when non-nil, is called
// after each file.
func Batch(ctx context.Context, engine Engine, paths []string, log *logging.Logger, onProgress func(done, total int)) ([]Extraction, error) {
	if log == nil {
		log = logging.Discard()
	}
	results := make([]Extraction, 0, len(paths))
	for i, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		log.Info("extracting %d/%d: %s", i+1, len(paths), path)
		res, err := engine.Extract(ctx, path)
		if err != nil {
			log.Error("extraction failed for %s: %v", path, err)
			res = Extraction{Source: path}
		}
		results = append(results, res)
		if onProgress != nil {
			onProgress(i+1, len(paths))
		}
	}
	return results, nil
}

// Combine joins the non-empty texts of all results with a blank line
// between sources. This concatenation is the pipeline's single raw input.
func Combine(results []Extraction) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Text == "" {
			continue
		}
		parts = append(parts, r.Text)
	}
	return strings.Join(parts, "\n\n")
}

// FileEngine reads plain-text files directly, bypassing OCR. Useful for
// pre-extracted text and for exercising the pipeline without Tesseract.
type FileEngine struct{}

func (FileEngine) Name() string { return "file" }

// Extract reads the file and reports it at full confidence.
func (FileEngine) Extract(_ context.Context, path string) (Extraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Extraction{}, err
	}
	text := strings.TrimSpace(string(data))
	return Extraction{
		Text:       text,
		Confidence: 100,
		WordCount:  len(strings.Fields(text)),
		Source:     path,
	}, nil
}
