package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/argus-nlp/argus/internal/model"
)

const essay = "Remote work should be the default for software teams. " +
	"Studies show productivity rises when commutes disappear. " +
	"However, critics say collaboration suffers without an office. " +
	"Therefore, teams must invest in deliberate communication."

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Segmenter.Mode = "fallback"
	cfg.Cache.Enabled = false
	return cfg
}

func TestAnalyze_PreservesCounts(t *testing.T) {
	p := New(testConfig(), zap.NewNop())

	report, err := p.Analyze(context.Background(), essay, "test")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if report.SentenceCount != 4 {
		t.Errorf("expected 4 sentences, got %d", report.SentenceCount)
	}
	if len(report.Classifications) != report.SentenceCount {
		t.Errorf("classifications (%d) must match sentence count (%d)",
			len(report.Classifications), report.SentenceCount)
	}
	if len(report.Weaknesses) != report.SentenceCount {
		t.Errorf("weaknesses (%d) must match sentence count (%d)",
			len(report.Weaknesses), report.SentenceCount)
	}
	if report.Source != "test" {
		t.Errorf("unexpected source: %s", report.Source)
	}

	total := report.Summary.Claim.Count + report.Summary.Support.Count +
		report.Summary.Counter.Count + report.Summary.Neutral.Count
	if total != report.SentenceCount {
		t.Errorf("summary counts sum to %d, want %d", total, report.SentenceCount)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	p := New(testConfig(), zap.NewNop())

	report, err := p.Analyze(context.Background(), "", "empty")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if report.SentenceCount != 0 {
		t.Errorf("expected 0 sentences, got %d", report.SentenceCount)
	}
	if len(report.Classifications) != 0 || len(report.Trees) != 0 || len(report.Weaknesses) != 0 {
		t.Error("empty input must produce an empty report")
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	first, err := New(testConfig(), zap.NewNop()).Analyze(context.Background(), essay, "a")
	if err != nil {
		t.Fatalf("first analyze: %v", err)
	}
	second, err := New(testConfig(), zap.NewNop()).Analyze(context.Background(), essay, "a")
	if err != nil {
		t.Fatalf("second analyze: %v", err)
	}

	first.AnalyzedAt = time.Time{}
	second.AnalyzedAt = time.Time{}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical input must produce identical reports")
	}
}

func TestAnalyze_CacheHit(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true
	p := New(cfg, zap.NewNop())

	first, err := p.Analyze(context.Background(), essay, "first")
	if err != nil {
		t.Fatalf("first analyze: %v", err)
	}
	second, err := p.Analyze(context.Background(), essay, "second")
	if err != nil {
		t.Fatalf("second analyze: %v", err)
	}

	if !second.AnalyzedAt.Equal(first.AnalyzedAt) {
		t.Error("expected cached report on second run")
	}
	if second.Source != "second" {
		t.Errorf("cached report must carry the new source, got %s", second.Source)
	}
}

func TestAnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essay.txt")
	if err := os.WriteFile(path, []byte(essay), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New(testConfig(), zap.NewNop())
	report, err := p.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("analyze file: %v", err)
	}
	if report.Source != path {
		t.Errorf("expected source %s, got %s", path, report.Source)
	}
	if report.SentenceCount != 4 {
		t.Errorf("expected 4 sentences, got %d", report.SentenceCount)
	}
}

func TestAnalyzeFile_HTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essay.html")
	page := fmt.Sprintf("<html><body><script>junk()</script><p>%s</p></body></html>", essay)
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New(testConfig(), zap.NewNop())
	report, err := p.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("analyze file: %v", err)
	}
	if report.SentenceCount != 4 {
		t.Errorf("expected 4 sentences from HTML file, got %d", report.SentenceCount)
	}
	for _, c := range report.Classifications {
		if strings.Contains(c.SentenceText, "junk") {
			t.Errorf("script content leaked into analysis: %q", c.SentenceText)
		}
	}
}

func TestRenderReport_WritesAllOutputs(t *testing.T) {
	color.NoColor = true

	p := New(testConfig(), zap.NewNop())
	report, err := p.Analyze(context.Background(), essay, "essay")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "out.json")
	mdPath := filepath.Join(dir, "out.md")

	var buf bytes.Buffer
	if err := p.RenderReport(report, &buf, jsonPath, mdPath); err != nil {
		t.Fatalf("render report: %v", err)
	}
	if !strings.Contains(buf.String(), "Argument analysis: essay") {
		t.Error("terminal output missing header")
	}
	for _, path := range []string{jsonPath, mdPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output file %s: %v", path, err)
		}
	}
}

func TestAnalyzeFile_Missing(t *testing.T) {
	p := New(testConfig(), zap.NewNop())
	if _, err := p.AnalyzeFile(context.Background(), "no_such_file.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAnalyzeURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprintf(w, "<html><body><p>%s</p></body></html>", essay)
	}))
	defer server.Close()

	p := New(testConfig(), zap.NewNop())
	report, err := p.AnalyzeURL(context.Background(), server.URL+"/essay")
	if err != nil {
		t.Fatalf("analyze URL: %v", err)
	}
	if report.SentenceCount != 4 {
		t.Errorf("expected 4 sentences, got %d", report.SentenceCount)
	}
	if !strings.HasPrefix(report.Source, server.URL) {
		t.Errorf("expected source under %s, got %s", server.URL, report.Source)
	}
}

func TestAnalyzeURL_BlockedByRobots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
			return
		}
		_, _ = fmt.Fprint(w, "should not be reached")
	}))
	defer server.Close()

	p := New(testConfig(), zap.NewNop())
	_, err := p.AnalyzeURL(context.Background(), server.URL+"/private/page")
	if err == nil || !strings.Contains(err.Error(), "robots.txt") {
		t.Errorf("expected robots.txt block, got %v", err)
	}
}

func TestRenderer_Terminal(t *testing.T) {
	color.NoColor = true

	p := New(testConfig(), zap.NewNop())
	report, err := p.Analyze(context.Background(), essay, "essay")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	var buf bytes.Buffer
	NewRenderer(model.OutputConfig{IncludeFooter: true, TopN: 3}).RenderTerminal(&buf, report)

	out := buf.String()
	for _, want := range []string{"Argument analysis: essay", "[CLAIM", "Summary"} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q", want)
		}
	}
}

func TestRenderer_Files(t *testing.T) {
	p := New(testConfig(), zap.NewNop())
	report, err := p.Analyze(context.Background(), essay, "essay")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	dir := t.TempDir()
	r := NewRenderer(model.OutputConfig{TopN: 3})

	jsonPath := filepath.Join(dir, "report.json")
	if err := r.RenderJSON(report, jsonPath); err != nil {
		t.Fatalf("render JSON: %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode JSON report: %v", err)
	}
	if decoded.SentenceCount != report.SentenceCount {
		t.Errorf("JSON round-trip lost sentences: %d != %d", decoded.SentenceCount, report.SentenceCount)
	}

	mdPath := filepath.Join(dir, "report.md")
	if err := r.RenderMarkdown(report, mdPath); err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(md), "# Argument analysis: essay") {
		t.Error("markdown output missing header")
	}
}
