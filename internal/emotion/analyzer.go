// Package emotion scores sentiment polarity and emotional intensity of
// sentences using weighted word lexicons.
package emotion

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/argus-nlp/argus/internal/model"
)

// Bonus constants for typographic emotion signals
const (
	capsRatioThreshold = 0.3
	capsBonus          = 0.3
	exclamationPos     = 0.2
	exclamationNeg     = 0.15
	emotionalityScale  = 5.0
)

// Analyzer scores emotional language per sentence
type Analyzer struct{}

// NewAnalyzer creates an emotion analyzer over the built-in lexicons
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Score returns one EmotionResult per input sentence, same order
func (a *Analyzer) Score(sentences []model.Sentence) []model.EmotionResult {
	results := make([]model.EmotionResult, 0, len(sentences))
	for _, sent := range sentences {
		results = append(results, a.analyze(sent.Text))
	}
	return results
}

// analyze scores a single sentence text
func (a *Analyzer) analyze(text string) model.EmotionResult {
	textLower := strings.ToLower(text)

	// Intensity multiplier: maximum among adverbs present, 1.0 baseline
	intensity := 1.0
	for _, m := range intensityMarkers {
		if strings.Contains(textLower, m.Word) && m.Weight > intensity {
			intensity = m.Weight
		}
	}

	var positive, negative float64
	var keywords []string

	for _, e := range positiveWords {
		if strings.Contains(textLower, e.Word) {
			positive += e.Weight * intensity
			keywords = append(keywords, e.Word)
		}
	}
	for _, e := range negativeWords {
		if strings.Contains(textLower, e.Word) {
			negative += e.Weight * intensity
			keywords = append(keywords, e.Word)
		}
	}

	// Shouting: uppercase share of the original text above the threshold
	// pushes both totals up
	if upperRatio(text) > capsRatioThreshold {
		keywords = append(keywords, "CAPS_LOCK")
		positive += capsBonus * intensity
		negative += capsBonus * intensity
	}

	// Exclamation marks score per occurrence, without the multiplier
	if n := strings.Count(text, "!"); n > 0 {
		keywords = append(keywords, fmt.Sprintf("!x%d", n))
		positive += exclamationPos * float64(n)
		negative += exclamationNeg * float64(n)
	}

	var score float64
	if total := positive + negative; total > 0 {
		score = (positive - negative) / total
	}

	sentiment := model.SentimentNeutral
	switch {
	case score > 0.1:
		sentiment = model.SentimentPositive
	case score < -0.1:
		sentiment = model.SentimentNegative
	}

	emotionality := (positive + negative) / emotionalityScale
	if emotionality > 1.0 {
		emotionality = 1.0
	}

	return model.EmotionResult{
		SentenceText:   text,
		Sentiment:      sentiment,
		SentimentScore: score,
		Emotionality:   emotionality,
		Keywords:       dedupe(keywords),
	}
}

// EmotionalSentences filters results whose emotionality meets the threshold
func (a *Analyzer) EmotionalSentences(results []model.EmotionResult, threshold float64) []model.EmotionResult {
	var out []model.EmotionResult
	for _, r := range results {
		if r.Emotionality >= threshold {
			out = append(out, r)
		}
	}
	return out
}

// SentimentSummary aggregates results across a document. Empty input
// reports zeros, never an error.
func (a *Analyzer) SentimentSummary(results []model.EmotionResult) model.SentimentSummary {
	summary := model.SentimentSummary{TotalSentences: len(results)}
	if len(results) == 0 {
		return summary
	}

	var sumScore, sumEmotionality float64
	for _, r := range results {
		switch r.Sentiment {
		case model.SentimentPositive:
			summary.Positive++
		case model.SentimentNegative:
			summary.Negative++
		default:
			summary.Neutral++
		}
		sumScore += r.SentimentScore
		sumEmotionality += r.Emotionality
	}

	summary.AvgSentiment = sumScore / float64(len(results))
	summary.AvgEmotionality = sumEmotionality / float64(len(results))
	return summary
}

// upperRatio is the share of upper-case characters among all runes
func upperRatio(text string) float64 {
	if text == "" {
		return 0
	}
	upper, total := 0, 0
	for _, r := range text {
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) / float64(total)
}

// dedupe removes duplicate keywords, keeping first occurrence order so
// repeated runs stay byte-identical
func dedupe(keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(keywords))
	out := keywords[:0]
	for _, k := range keywords {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
