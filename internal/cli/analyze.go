package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/argus-nlp/argus/internal/model"
	"github.com/argus-nlp/argus/internal/pipeline"
)

var (
	inputFile   string
	interactive bool
	inputURL    string
	outJSON     string
	outMD       string
	topN        int
	noCache     bool
	noFooter    bool
	segMode     string
	timeout     time.Duration
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// demoText is analyzed when no input is given
const demoText = `Artificial Intelligence is one of the most transformative technologies of our time.
We should invest heavily in AI research because it can solve many problems.
AI can accelerate drug discovery, improve healthcare, and optimize energy systems.
However, some people worry about job displacement. They argue that automation will hurt workers.
But history shows that new technologies create more jobs than they destroy.
Therefore, we need strong regulations to ensure AI safety while allowing innovation.
The evidence clearly demonstrates that AI will benefit humanity.`

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze the argument structure of a text",
	Long: `Analyze segments a text into sentences, labels argumentative roles,
scores sentiment and emotionality, builds argument trees and flags
potential logical weaknesses.

Input is taken from the first matching source: --url, --file,
--interactive, the positional argument, or a built-in demo text.

Example:
  argus analyze
  argus analyze "We should act. Because the evidence is clear."
  argus analyze -f essay.txt --json report.json
  argus analyze --url https://example.com/post --md report.md
  argus analyze -i
  argus analyze -f essay.txt --llm --llm-provider openai`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Input flags
	analyzeCmd.Flags().StringVarP(&inputFile, "file", "f", "", "read input text from a file")
	analyzeCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read input text from stdin (end with two blank lines)")
	analyzeCmd.Flags().StringVar(&inputURL, "url", "", "fetch and analyze a web page")

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "write report JSON to this path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "write report Markdown to this path")
	analyzeCmd.Flags().IntVar(&topN, "top", 3, "strongest arguments shown in summaries")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable the report footer")

	// Pipeline flags
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report caching")
	analyzeCmd.Flags().StringVar(&segMode, "seg-mode", "", "sentence segmenter: auto, rich or fallback")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an LLM coaching summary")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	applyAnalyzeFlags(cfg)
	if err := configureLLM(cfg); err != nil {
		return err
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	p := pipeline.New(cfg, logger)

	report, err := resolveInput(ctx, p, args)
	if err != nil {
		return err
	}

	if err := p.RenderReport(report, os.Stdout, outJSON, outMD); err != nil {
		return err
	}
	if verbose && outJSON != "" {
		fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
	}
	if verbose && outMD != "" {
		fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", outMD)
	}

	return nil
}

func applyAnalyzeFlags(cfg *model.Config) {
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
	if segMode != "" {
		cfg.Segmenter.Mode = segMode
	}
	if topN > 0 {
		cfg.Output.TopN = topN
	}
}

// configureLLM fills in provider credentials from the environment
func configureLLM(cfg *model.Config) error {
	if !llmEnabled {
		cfg.LLM.Provider = ""
		return nil
	}

	cfg.LLM.Provider = llmProvider
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
		if cfg.LLM.Model == "" {
			return fmt.Errorf("ollama requires --llm-model")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s", llmProvider)
	}
	return nil
}

// resolveInput picks the input source and runs the analysis
func resolveInput(ctx context.Context, p *pipeline.Pipeline, args []string) (*model.Report, error) {
	switch {
	case inputURL != "":
		return p.AnalyzeURL(ctx, inputURL)
	case inputFile != "":
		return p.AnalyzeFile(ctx, inputFile)
	case interactive:
		text, err := readInteractive(os.Stdin)
		if err != nil {
			return nil, err
		}
		return p.Analyze(ctx, text, "stdin")
	case len(args) == 1:
		return p.Analyze(ctx, args[0], "argument")
	default:
		return p.Analyze(ctx, demoText, "demo")
	}
}

// readInteractive collects stdin lines until two consecutive blank
// lines or EOF.
func readInteractive(r *os.File) (string, error) {
	fmt.Fprintln(os.Stderr, "Enter text to analyze. Finish with two blank lines.")

	var lines []string
	blanks := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks >= 2 {
				break
			}
		} else {
			blanks = 0
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
