// Package segment splits raw text into sentences and tokens.
//
// Two strategies exist: a rich mode backed by an external tagger and a
// regex fallback that needs nothing beyond the standard library. Both are
// pure functions over the input text and never fail; blank input yields an
// empty sentence list.
package segment

import (
	"regexp"
	"strings"

	"github.com/argus-nlp/argus/internal/model"
)

// Mode selects the segmentation strategy
type Mode string

const (
	ModeAuto     Mode = "auto"     // Rich tagger, regex fallback on error
	ModeRich     Mode = "rich"     // Rich tagger, regex fallback on error
	ModeFallback Mode = "fallback" // Regex only
)

// Segmenter splits text into sentences
type Segmenter struct {
	mode Mode
}

// New creates a segmenter for the given mode. Unknown modes behave as auto.
func New(mode Mode) *Segmenter {
	switch mode {
	case ModeRich, ModeFallback:
		return &Segmenter{mode: mode}
	default:
		return &Segmenter{mode: ModeAuto}
	}
}

// Segment splits text into ordered sentences. DocID is the zero-based rank
// of each sentence in output order.
func (s *Segmenter) Segment(text string) []model.Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if s.mode != ModeFallback {
		if sentences, err := segmentRich(text); err == nil {
			return sentences
		}
		// Tagger unavailable or failed: degrade silently for this run
	}

	return segmentFallback(text)
}

var (
	sentencePattern = regexp.MustCompile(`[^.!?]*[.!?]`)
	wordPattern     = regexp.MustCompile(`\w+`)
)

// segmentFallback splits on terminal punctuation and tokenizes on
// word-character runs. Token POS and dependency fields hold the UNKNOWN
// sentinel; the lemma is the raw lower-cased token.
func segmentFallback(text string) []model.Sentence {
	matches := sentencePattern.FindAllString(text, -1)

	var sentences []model.Sentence
	for _, raw := range matches {
		sentText := strings.TrimSpace(raw)
		if sentText == "" {
			continue
		}

		words := wordPattern.FindAllString(strings.ToLower(sentText), -1)
		tokens := make([]model.Token, 0, len(words))
		for _, word := range words {
			tokens = append(tokens, model.Token{
				Text:  word,
				POS:   model.UnknownTag,
				Lemma: word,
				Dep:   model.UnknownTag,
			})
		}

		sentences = append(sentences, model.Sentence{
			Text:   sentText,
			Tokens: tokens,
			DocID:  len(sentences),
		})
	}

	return sentences
}
