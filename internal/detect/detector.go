// Package detect classifies sentences into argumentative roles by scoring
// them against fixed marker lexicons.
package detect

import (
	"strings"

	"github.com/argus-nlp/argus/internal/model"
)

// lexicon pairs an argument type with its marker table. Slice order is the
// tie-break enumeration: on equal means the earlier lexicon wins.
type lexicon struct {
	argType model.ArgumentType
	markers []Marker
}

// Detector scores sentences against the marker lexicons
type Detector struct {
	lexicons []lexicon
}

// NewDetector creates a role detector over the built-in lexicons
func NewDetector() *Detector {
	return &Detector{
		lexicons: []lexicon{
			{model.TypeClaim, claimMarkers},
			{model.TypeSupport, supportMarkers},
			{model.TypeCounter, counterMarkers},
		},
	}
}

// Detect returns one RoleResult per input sentence, same order
func (d *Detector) Detect(sentences []model.Sentence) []model.RoleResult {
	results := make([]model.RoleResult, 0, len(sentences))
	for _, sent := range sentences {
		results = append(results, d.analyze(sent))
	}
	return results
}

// analyze scores one sentence. Per lexicon, every marker present as a
// substring of the lower-cased text contributes its weight; the lexicon
// with the highest mean wins. No match at all means NEUTRAL with
// confidence 0.
func (d *Detector) analyze(sentence model.Sentence) model.RoleResult {
	textLower := strings.ToLower(sentence.Text)

	result := model.RoleResult{
		SentenceText: sentence.Text,
		ArgumentType: model.TypeNeutral,
		Confidence:   0.0,
	}

	for _, lex := range d.lexicons {
		var matched []string
		var sum float64
		for _, m := range lex.markers {
			if strings.Contains(textLower, m.Phrase) {
				matched = append(matched, m.Phrase)
				sum += m.Weight
			}
		}
		if len(matched) == 0 {
			continue
		}

		mean := sum / float64(len(matched))
		if mean > result.Confidence {
			result.ArgumentType = lex.argType
			result.Confidence = mean
			result.Markers = matched
		}
	}

	return result
}
