package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/argus-nlp/argus/internal/pipeline"
	"github.com/argus-nlp/argus/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple files or URLs in parallel",
	Long: `Batch reads targets from a file, one per line, and analyzes them
concurrently. A target starting with http:// or https:// is fetched as
a web page; anything else is treated as a local text file. Lines
starting with # are skipped.

Each target produces a JSON and a Markdown report in the output
directory.

Example:
  argus batch targets.txt
  argus batch targets.txt --concurrency 8 --output-dir ./reports
  argus batch targets.txt --timeout 5m --no-cache`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./argus-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report caching")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable the report footer")
	batchCmd.Flags().StringVar(&segMode, "seg-mode", "", "sentence segmenter: auto, rich or fallback")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]

	cfg := loadConfig()
	applyAnalyzeFlags(cfg)
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.New(cfg, logger)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)

	fmt.Fprintf(os.Stderr, "Reading targets from %s\n", listFile)
	results, err := processor.ProcessFile(ctx, listFile)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Processing %d target(s) with %d worker(s)\n\n", len(results), cfg.Concurrency.Workers)

	renderer := pipeline.NewRenderer(cfg.Output)

	succeeded := 0
	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Target, result.Error)
			continue
		}

		slug := sanitizeFilename(result.Target)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: write JSON: %v\n", result.Target, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, mdPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: write Markdown: %v\n", result.Target, err)
			continue
		}

		succeeded++
		fmt.Fprintf(os.Stderr, "ok   %s (%d sentences, %d claims)\n",
			result.Target, result.Report.SentenceCount, result.Report.Stats.Claims)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d ok, %d failed, reports in %s\n", succeeded, failed, outputDir)
	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(results))
	}
	return nil
}

// sanitizeFilename turns a target into a safe report file name
func sanitizeFilename(target string) string {
	s := strings.TrimPrefix(target, "http://")
	s = strings.TrimPrefix(s, "https://")

	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-':
			return r
		default:
			return '_'
		}
	}, s)

	s = strings.Trim(s, "._")
	if s == "" {
		s = "report"
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
