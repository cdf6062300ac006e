package extract_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silentslides/internal/extract"
)

type fakeEngine struct {
	texts map[string]string
}

func (fakeEngine) Name() string { return "fake" }

func (f fakeEngine) Extract(_ context.Context, path string) (extract.Extraction, error) {
	text, ok := f.texts[path]
	if !ok {
		return extract.Extraction{}, errors.New("unreadable source")
	}
	return extract.Extraction{Text: text, Confidence: 90, Source: path}, nil
}

func TestCombine(t *testing.T) {
	results := []extract.Extraction{
		{Text: "First page text.", Source: "a.png"},
		{Text: "", Source: "blank.png"},
		{Text: "Second page text.", Source: "b.png"},
	}
	assert.Equal(t, "First page text.\n\nSecond page text.", extract.Combine(results))
	assert.Equal(t, "", extract.Combine(nil))
}

func TestBatchContinuesPastFailures(t *testing.T) {
	engine := fakeEngine{texts: map[string]string{"ok.png": "hello world"}}

	var progress int
	results, err := extract.Batch(context.Background(), engine, []string{"ok.png", "broken.png"}, nil,
		func(done, total int) { progress = done })
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "hello world", results[0].Text)
	// A failed source yields an empty record, not an aborted batch.
	assert.Equal(t, extract.Extraction{Source: "broken.png"}, results[1])
	assert.Equal(t, 2, progress)
}

func TestBatchHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := extract.Batch(ctx, fakeEngine{}, []string{"a.png"}, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Meeting notes about revenue.\n"), 0o644))

	res, err := extract.FileEngine{}.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Meeting notes about revenue.", res.Text)
	assert.Equal(t, 100.0, res.Confidence)
	assert.Equal(t, 4, res.WordCount)
	assert.Equal(t, path, res.Source)
}

func TestFileEngineMissingFile(t *testing.T) {
	_, err := extract.FileEngine{}.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
