package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/argus-nlp/argus/internal/model"
)

// Analyzer runs the analysis pipeline against a single target
type Analyzer interface {
	AnalyzeURL(ctx context.Context, url string) (*model.Report, error)
	AnalyzeFile(ctx context.Context, path string) (*model.Report, error)
}

// AnalyzeJob analyzes one target, which is either a URL or a local file
// path. URLs are recognized by their scheme.
type AnalyzeJob struct {
	Target   string
	Analyzer Analyzer
}

// Execute runs the job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	var report *model.Report
	var err error
	if IsURL(j.Target) {
		report, err = j.Analyzer.AnalyzeURL(ctx, j.Target)
	} else {
		report, err = j.Analyzer.AnalyzeFile(ctx, j.Target)
	}
	return &AnalyzeResult{Target: j.Target, Report: report, Error: err}
}

// AnalyzeResult is the outcome of analyzing one target
type AnalyzeResult struct {
	Target string
	Report *model.Report
	Error  error
}

// Err returns the job error, if any
func (r *AnalyzeResult) Err() error {
	return r.Error
}

// IsURL reports whether a batch target is a URL rather than a file path
func IsURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// BatchProcessor analyzes many targets concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// Process analyzes all targets and returns one result per target
func (b *BatchProcessor) Process(ctx context.Context, targets []string) []*AnalyzeResult {
	if len(targets) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, target := range targets {
		pool.Submit(&AnalyzeJob{Target: target, Analyzer: b.analyzer})
	}

	results := pool.Wait()

	out := make([]*AnalyzeResult, len(results))
	for i, r := range results {
		out[i] = r.(*AnalyzeResult)
	}
	return out
}

// ProcessFile reads targets from a list file and analyzes them
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*AnalyzeResult, error) {
	targets, err := ReadTargets(listPath)
	if err != nil {
		return nil, fmt.Errorf("read targets: %w", err)
	}
	return b.Process(ctx, targets), nil
}

// ReadTargets reads one target per line, skipping blanks, comments and
// duplicates.
func ReadTargets(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var targets []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			targets = append(targets, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return targets, nil
}
