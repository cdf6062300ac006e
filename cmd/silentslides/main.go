package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"silentslides/internal/cluster"
	"silentslides/internal/config"
	"silentslides/internal/domain"
	"silentslides/internal/embedding/ollama"
	"silentslides/internal/embedding/openai"
	"silentslides/internal/embedding/tfidf"
	"silentslides/internal/extract"
	"silentslides/internal/extract/tesseract"
	"silentslides/internal/logging"
	"silentslides/internal/pipeline"
	"silentslides/internal/render"
	"silentslides/internal/segment"
	"silentslides/internal/summary"
	"silentslides/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, outDir string
	var preview bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/silentslides/config.yaml if not provided)")
	flag.StringVar(&outDir, "out", "", "Output directory (overrides config)")
	flag.BoolVar(&preview, "tui", false, "Preview the generated deck in the terminal")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: silentslides [--config=config.yaml] [--out=dir] [--tui] image1.png [page2.jpg notes.txt ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if outDir != "" {
		cfg.Render.OutputDir = outDir
	}

	logger := logging.New(cfg.LogLevel)

	// Assemble components
	var embedder domain.Embedder
	switch cfg.Embedder.Type {
	case "tfidf", "":
		embedder = tfidf.New()
	case "openai":
		if cfg.Embedder.OpenAI == nil {
			log.Fatalf("openai embedder config missing")
		}
		client, err := openai.NewClient(openai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Fatalf("openai embedder init failed: %v", err)
		}
		embedder = client
	case "ollama":
		ocfg := ollama.Config{}
		if cfg.Embedder.Ollama != nil {
			ocfg.BaseURL = cfg.Embedder.Ollama.BaseURL
			ocfg.Model = cfg.Embedder.Ollama.Model
			ocfg.Timeout = time.Duration(cfg.Embedder.Ollama.TimeoutSecs) * time.Second
		}
		client, err := ollama.New(ocfg)
		if err != nil {
			log.Fatalf("ollama embedder init failed: %v", err)
		}
		embedder = client
	default:
		log.Fatalf("unknown embedder: %s", cfg.Embedder.Type)
	}

	var strategy domain.Strategy
	switch cfg.Pipeline.Clustering {
	case "density", "":
		strategy = cluster.NewDensity(cfg.Pipeline.MinClusterSize)
	case "kmeans":
		strategy = cluster.NewKMeans()
	default:
		log.Fatalf("unknown clustering method: %s", cfg.Pipeline.Clustering)
	}

	engine := cluster.NewEngine(strategy, cfg.Pipeline.MaxTopics, logger)
	pipe := pipeline.New(segment.New(), embedder, engine, cfg.Pipeline.TargetClusters, cfg.Pipeline.MaxBullets, logger)

	// Extract text from the inputs
	results, err := extractAll(inputs, cfg.OCR.Languages, logger)
	if err != nil {
		log.Fatalf("extraction failed: %v", err)
	}
	raw := extract.Combine(results)
	color.Green("✓ Extracted text from %d source(s)", len(results))

	plan, err := pipe.Process(raw)
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}
	color.Green("✓ Found %d topic(s) across %d sentence(s)", len(plan.Topics), plan.TotalSentences)

	meta := domain.RenderMeta{
		Title:     cfg.Render.DeckTitle,
		Generated: time.Now(),
		Summary:   summary.New().Summarize(raw, 3),
	}

	var renderers []domain.Renderer
	for _, format := range cfg.Render.Formats {
		switch format {
		case "markdown":
			renderers = append(renderers, render.Markdown{})
		case "html":
			renderers = append(renderers, render.NewHTML())
		case "json":
			renderers = append(renderers, render.JSON{})
		default:
			log.Fatalf("unknown render format: %s", format)
		}
	}

	paths, err := render.Write(cfg.Render.OutputDir, cfg.Render.BaseName, plan, meta, renderers)
	if err != nil {
		log.Fatalf("failed to write deck: %v", err)
	}
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		color.Cyan("  %-8s %s", name, paths[name])
	}

	if preview {
		if _, err := tea.NewProgram(tui.New(plan, meta)).Run(); err != nil {
			log.Fatal(err)
		}
	}
}

// extractAll routes plain-text inputs through the file engine and everything
// else through Tesseract, with one progress bar across the batch.
func extractAll(inputs, languages []string, logger *logging.Logger) ([]extract.Extraction, error) {
	var texts, images []string
	for _, path := range inputs {
		if strings.EqualFold(filepath.Ext(path), ".txt") {
			texts = append(texts, path)
		} else {
			images = append(images, path)
		}
	}

	bar := progressbar.NewOptions(len(inputs),
		progressbar.OptionSetDescription(color.BlueString("Extracting text")),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
	onProgress := func(done, total int) { _ = bar.Add(1) }

	ctx := context.Background()
	var results []extract.Extraction
	if len(texts) > 0 {
		res, err := extract.Batch(ctx, extract.FileEngine{}, texts, logger, onProgress)
		if err != nil {
			return nil, err
		}
		results = append(results, res...)
	}
	if len(images) > 0 {
		res, err := extract.Batch(ctx, tesseract.New(languages...), images, logger, onProgress)
		if err != nil {
			return nil, err
		}
		results = append(results, res...)
	}
	_ = bar.Finish()
	fmt.Println()
	return results, nil
}
