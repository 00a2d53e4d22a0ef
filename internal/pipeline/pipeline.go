// Package pipeline wires segmentation, role detection, emotion scoring,
// classification, structure building and weakness detection into one
// analysis pass, with report caching in front.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/argus-nlp/argus/internal/cache"
	"github.com/argus-nlp/argus/internal/classify"
	"github.com/argus-nlp/argus/internal/detect"
	"github.com/argus-nlp/argus/internal/emotion"
	"github.com/argus-nlp/argus/internal/llm"
	"github.com/argus-nlp/argus/internal/model"
	"github.com/argus-nlp/argus/internal/segment"
	"github.com/argus-nlp/argus/internal/structure"
	"github.com/argus-nlp/argus/internal/util"
	"github.com/argus-nlp/argus/internal/weakness"
	"github.com/argus-nlp/argus/internal/worker"
)

// Pipeline runs the full analysis for one input
type Pipeline struct {
	segmenter  *segment.Segmenter
	roles      *detect.Detector
	emotions   *emotion.Analyzer
	classifier *classify.Classifier
	weaknesses *weakness.Detector

	fetcher *Fetcher
	robots  *util.RobotsChecker
	limiter *worker.Limiter

	reports    *cache.ReportCache // nil when caching is disabled
	summarizer *llm.Summarizer    // nil when no provider is configured

	logger *zap.Logger
	config *model.Config
}

// New creates a pipeline from the configuration. An unusable LLM
// configuration disables the summary instead of failing the run.
func New(cfg *model.Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	var reports *cache.ReportCache
	if cfg.Cache.Enabled {
		var backend cache.Cache
		if cfg.Cache.Dir != "" {
			backend = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			backend = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
		}
		reports = cache.NewReportCache(backend, cfg.Cache.TTL)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			logger.Warn("LLM provider unavailable, summaries disabled", zap.Error(err))
		} else {
			summarizer = s
		}
	}

	fetcher := NewFetcher(cfg.HTTP)

	return &Pipeline{
		segmenter:  segment.New(segment.Mode(cfg.Segmenter.Mode)),
		roles:      detect.NewDetector(),
		emotions:   emotion.NewAnalyzer(),
		classifier: classify.NewClassifier(),
		weaknesses: weakness.NewDetector(),
		fetcher:    fetcher,
		robots:     util.NewRobotsChecker(fetcher.Client(), cfg.HTTP.UserAgent),
		limiter:    worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize),
		reports:    reports,
		summarizer: summarizer,
		logger:     logger,
		config:     cfg,
	}
}

// Analyze runs the full pass over raw text. Identical text always
// produces the same report apart from the timestamp, which makes the
// content cacheable by hash.
func (p *Pipeline) Analyze(ctx context.Context, text, source string) (*model.Report, error) {
	if p.reports != nil {
		if cached, found := p.reports.Get(text); found {
			p.logger.Debug("report cache hit", zap.String("source", source))
			cached.Source = source
			return cached, nil
		}
	}

	sentences := p.segmenter.Segment(text)

	roles := p.roles.Detect(sentences)
	emotions := p.emotions.Score(sentences)

	classifications, err := p.classifier.Classify(roles, emotions)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	analysis := structure.Build(classifications)

	report := &model.Report{
		Source:          source,
		AnalyzedAt:      time.Now().UTC(),
		SentenceCount:   len(sentences),
		Classifications: classifications,
		Summary:         p.classifier.Summarize(classifications),
		Trees:           analysis.Export(),
		Stats:           analysis.Stats(),
		StrongestPath:   analysis.StrongestPath(),
		CounterPairs:    analysis.CounterargumentPairs(),
		Weaknesses:      p.weaknesses.FindAll(classifications),
	}

	// The summary comes last and only ever reads the finished report
	if p.summarizer.Enabled() {
		summary, err := p.summarizer.Summarize(ctx, report)
		if err != nil {
			p.logger.Warn("LLM summary failed", zap.Error(err))
		} else {
			report.LLM = summary
		}
	}

	if p.reports != nil {
		if err := p.reports.Set(text, report); err != nil {
			p.logger.Warn("report cache write failed", zap.Error(err))
		}
	}

	return report, nil
}

// AnalyzeFile analyzes the contents of a local file. HTML files are
// reduced to their visible text first.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	text := string(data)
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".html" || ext == ".htm" {
		text = VisibleText(text)
	}

	return p.Analyze(ctx, text, path)
}

// RenderReport writes the report to the terminal and to the optional
// JSON and Markdown paths.
func (p *Pipeline) RenderReport(report *model.Report, w io.Writer, jsonPath, mdPath string) error {
	renderer := NewRenderer(p.config.Output)
	renderer.RenderTerminal(w, report)

	if jsonPath != "" {
		if err := renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
	}
	if mdPath != "" {
		if err := renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	}
	return nil
}

// AnalyzeURL fetches a page, honoring robots.txt and per-domain rate
// limits, and analyzes its visible text.
func (p *Pipeline) AnalyzeURL(ctx context.Context, rawURL string) (*model.Report, error) {
	allowed, crawlDelay, err := p.robots.Allowed(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("blocked by robots.txt: %s", rawURL)
	}

	if err := p.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	fetched, err := p.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return p.Analyze(ctx, fetched.Text, fetched.FinalURL)
}
