package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/argus-nlp/argus/internal/model"
	"github.com/argus-nlp/argus/internal/structure"
	"github.com/argus-nlp/argus/internal/weakness"
)

// Renderer writes reports to the terminal and to JSON/Markdown files
type Renderer struct {
	includeFooter bool
	topN          int
	verbose       bool
}

// NewRenderer creates a renderer from the output configuration
func NewRenderer(cfg model.OutputConfig) *Renderer {
	topN := cfg.TopN
	if topN <= 0 {
		topN = 3
	}
	return &Renderer{
		includeFooter: cfg.IncludeFooter,
		topN:          topN,
		verbose:       cfg.Verbose,
	}
}

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	claimColor   = color.New(color.FgYellow, color.Bold)
	supportColor = color.New(color.FgGreen)
	counterColor = color.New(color.FgRed)
	neutralColor = color.New(color.FgWhite, color.Faint)
	dimColor     = color.New(color.Faint)
)

func typeColor(t model.ArgumentType) *color.Color {
	switch t {
	case model.TypeClaim:
		return claimColor
	case model.TypeSupport:
		return supportColor
	case model.TypeCounter:
		return counterColor
	default:
		return neutralColor
	}
}

// RenderTerminal prints the human-readable report
func (r *Renderer) RenderTerminal(w io.Writer, report *model.Report) {
	headerColor.Fprintf(w, "Argument analysis: %s\n", report.Source)
	fmt.Fprintf(w, "%d sentence(s)\n\n", report.SentenceCount)

	if report.SentenceCount == 0 {
		dimColor.Fprintln(w, "Nothing to analyze.")
		return
	}

	headerColor.Fprintln(w, "Sentences")
	for i, c := range report.Classifications {
		tag := typeColor(c.ArgumentType).Sprintf("[%-7s]", c.ArgumentType)
		fmt.Fprintf(w, "%3d. %s %s %s\n", i+1, tag, strengthBar(c.Strength), c.SentenceText)
		if r.verbose {
			dimColor.Fprintf(w, "     confidence %.2f, sentiment %s (%.2f), emotionality %.2f\n",
				c.Confidence, c.Sentiment, c.SentimentScore, c.Emotionality)
			if len(c.Keywords) > 0 {
				dimColor.Fprintf(w, "     keywords: %s\n", strings.Join(c.Keywords, ", "))
			}
		}
	}
	fmt.Fprintln(w)

	if len(report.Trees) > 0 {
		headerColor.Fprintln(w, "Argument structure")
		fmt.Fprintln(w, structure.ASCIITree(report.Trees))
		fmt.Fprintf(w, "%d root claim(s), max depth %d, average strength %.2f\n\n",
			report.Stats.RootClaims, report.Stats.MaxDepth, report.Stats.AvgStrength)
	}

	if len(report.StrongestPath) > 0 {
		headerColor.Fprintln(w, "Strongest line of reasoning")
		for _, step := range report.StrongestPath {
			fmt.Fprintf(w, "  %s %s\n",
				typeColor(step.ArgumentType).Sprintf("[%s]", step.ArgumentType), step.Text)
		}
		fmt.Fprintln(w)
	}

	if len(report.CounterPairs) > 0 {
		headerColor.Fprintln(w, "Claims under attack")
		for _, pair := range report.CounterPairs {
			fmt.Fprintf(w, "  %s %s\n", claimColor.Sprint("claim:"), pair.ClaimText)
			fmt.Fprintf(w, "  %s %s\n", counterColor.Sprint("counter:"), pair.CounterText)
		}
		fmt.Fprintln(w)
	}

	r.renderWeaknesses(w, report)
	r.renderSummary(w, report)

	if report.LLM != nil && report.LLM.Enabled {
		headerColor.Fprintf(w, "Coaching summary (%s/%s)\n", report.LLM.Provider, report.LLM.Model)
		fmt.Fprintln(w, report.LLM.SummaryMD)
		fmt.Fprintln(w)
	}

	if r.includeFooter {
		dimColor.Fprintln(w, "Heuristic analysis. Marker-based role detection, no semantic understanding.")
	}
}

func (r *Renderer) renderWeaknesses(w io.Writer, report *model.Report) {
	var any bool
	for _, sw := range report.Weaknesses {
		var real []model.WeaknessFinding
		for _, f := range sw.Findings {
			if f.Name != weakness.NoneFinding {
				real = append(real, f)
			}
		}
		if len(real) == 0 {
			continue
		}
		if !any {
			headerColor.Fprintln(w, "Potential weaknesses")
			any = true
		}
		fmt.Fprintf(w, "  %s\n", sw.SentenceText)
		for _, f := range real {
			counterColor.Fprintf(w, "    %s", f.Name)
			fmt.Fprintf(w, ": %s\n", f.Description)
			if f.Strengthen != "" {
				dimColor.Fprintf(w, "    fix: %s\n", f.Strengthen)
			}
		}
	}
	if any {
		fmt.Fprintln(w)
	}
}

func (r *Renderer) renderSummary(w io.Writer, report *model.Report) {
	headerColor.Fprintln(w, "Summary")
	for _, t := range model.ArgumentTypes {
		bucket := report.Summary.ByType(t)
		if bucket.Count == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s %d sentence(s), avg strength %.2f, avg emotionality %.2f\n",
			typeColor(t).Sprintf("%-7s", t), bucket.Count, bucket.AvgStrength, bucket.AvgEmotionality)
		for _, example := range bucket.Examples {
			dimColor.Fprintf(w, "    e.g. %s\n", example)
		}
	}
	fmt.Fprintln(w)
}

// strengthBar draws a ten-segment bar for a 0..1 strength
func strengthBar(strength float64) string {
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}
	filled := int(strength*10 + 0.5)
	return dimColor.Sprint("[") + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + dimColor.Sprint("]")
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report as a Markdown document
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Argument analysis: %s\n\n", report.Source)
	fmt.Fprintf(&b, "Analyzed at %s. %d sentence(s).\n\n",
		report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"), report.SentenceCount)

	b.WriteString("## Sentences\n\n")
	b.WriteString("| # | Type | Strength | Sentiment | Sentence |\n")
	b.WriteString("|---|------|----------|-----------|----------|\n")
	for i, c := range report.Classifications {
		fmt.Fprintf(&b, "| %d | %s | %.2f | %s | %s |\n",
			i+1, c.ArgumentType, c.Strength, c.Sentiment, escapeMarkdown(c.SentenceText))
	}
	b.WriteString("\n")

	if len(report.Trees) > 0 {
		b.WriteString("## Argument structure\n\n```\n")
		b.WriteString(structure.ASCIITree(report.Trees))
		b.WriteString("\n```\n\n")
		fmt.Fprintf(&b, "%d root claim(s), max depth %d, average strength %.2f.\n\n",
			report.Stats.RootClaims, report.Stats.MaxDepth, report.Stats.AvgStrength)
	}

	var weakLines []string
	for _, sw := range report.Weaknesses {
		for _, f := range sw.Findings {
			if f.Name == weakness.NoneFinding {
				continue
			}
			weakLines = append(weakLines, fmt.Sprintf("- **%s** (sentence %d): %s", f.Name, sw.DocID+1, f.Description))
		}
	}
	if len(weakLines) > 0 {
		b.WriteString("## Potential weaknesses\n\n")
		b.WriteString(strings.Join(weakLines, "\n"))
		b.WriteString("\n\n")
	}

	if report.LLM != nil && report.LLM.Enabled {
		fmt.Fprintf(&b, "## Coaching summary (%s/%s)\n\n%s\n\n",
			report.LLM.Provider, report.LLM.Model, report.LLM.SummaryMD)
	}

	if r.includeFooter {
		b.WriteString("---\n\nHeuristic analysis. Marker-based role detection, no semantic understanding.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func escapeMarkdown(text string) string {
	return strings.ReplaceAll(text, "|", "\\|")
}
