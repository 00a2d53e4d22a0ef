// Package classify fuses role detection and emotion scoring into
// per-sentence argument classifications with a derived strength score.
package classify

import (
	"fmt"
	"sort"

	"github.com/argus-nlp/argus/internal/model"
)

// Strength fusion weights. Strong arguments combine high detector
// confidence, moderate emotional tone and sentiment congruent with the
// argument role (negative tone is expected for counters).
const (
	confidenceShare    = 0.5
	emotionalityShare  = 0.3
	sentimentShare     = 0.2
	emotionalitySweet  = 0.3 // Preferred emotionality level
	emotionalityFloor  = 0.5
	congruentBonus     = 0.2
	incongruentPenalty = -0.1
)

// Classifier pairs RoleResults with EmotionResults
type Classifier struct{}

// NewClassifier creates a classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify zips both result sequences positionally. The inputs must come
// from the same sentence list; a length mismatch is a caller bug and is
// reported as an error.
func (c *Classifier) Classify(roles []model.RoleResult, emotions []model.EmotionResult) ([]model.Classification, error) {
	if len(roles) != len(emotions) {
		return nil, fmt.Errorf("classify: %d role results vs %d emotion results", len(roles), len(emotions))
	}

	classifications := make([]model.Classification, 0, len(roles))
	for i := range roles {
		classifications = append(classifications, fuse(roles[i], emotions[i]))
	}
	return classifications, nil
}

// fuse combines one role result with one emotion result
func fuse(role model.RoleResult, emotion model.EmotionResult) model.Classification {
	keywords := make([]string, 0, len(role.Markers)+len(emotion.Keywords))
	keywords = append(keywords, role.Markers...)
	keywords = append(keywords, emotion.Keywords...)

	return model.Classification{
		SentenceText:   role.SentenceText,
		ArgumentType:   role.ArgumentType,
		Confidence:     role.Confidence,
		Sentiment:      emotion.Sentiment,
		SentimentScore: emotion.SentimentScore,
		Emotionality:   emotion.Emotionality,
		Keywords:       keywords,
		Strength:       strength(role, emotion),
	}
}

// strength derives the fused argument strength in [0,1]
func strength(role model.RoleResult, emotion model.EmotionResult) float64 {
	confidenceFactor := role.Confidence

	penalty := emotion.Emotionality - emotionalitySweet
	if penalty < 0 {
		penalty = -penalty
	}
	emotionalityFactor := 1.0 - penalty
	if emotionalityFactor < emotionalityFloor {
		emotionalityFactor = emotionalityFloor
	}

	var sentimentBonus float64
	if role.ArgumentType == model.TypeCounter {
		if emotion.Sentiment == model.SentimentNegative {
			sentimentBonus = congruentBonus
		} else {
			sentimentBonus = incongruentPenalty
		}
	} else {
		if emotion.Sentiment == model.SentimentPositive || emotion.Sentiment == model.SentimentNeutral {
			sentimentBonus = congruentBonus
		} else {
			sentimentBonus = incongruentPenalty
		}
	}

	s := confidenceFactor*confidenceShare +
		emotionalityFactor*emotionalityShare +
		(0.5+sentimentBonus)*sentimentShare

	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

const exampleTruncateLen = 60

// Summarize groups classifications by argument type. Types without members
// report zero counts and empty example lists.
func (c *Classifier) Summarize(classifications []model.Classification) model.Summary {
	return model.Summary{
		Claim:   summarizeType(classifications, model.TypeClaim),
		Support: summarizeType(classifications, model.TypeSupport),
		Counter: summarizeType(classifications, model.TypeCounter),
		Neutral: summarizeType(classifications, model.TypeNeutral),
	}
}

func summarizeType(classifications []model.Classification, t model.ArgumentType) model.TypeSummary {
	summary := model.TypeSummary{Examples: []string{}}

	var sumStrength, sumEmotionality float64
	for _, cls := range classifications {
		if cls.ArgumentType != t {
			continue
		}
		summary.Count++
		sumStrength += cls.Strength
		sumEmotionality += cls.Emotionality
		if len(summary.Examples) < 2 {
			summary.Examples = append(summary.Examples, truncateExample(cls.SentenceText))
		}
	}

	if summary.Count > 0 {
		summary.AvgStrength = sumStrength / float64(summary.Count)
		summary.AvgEmotionality = sumEmotionality / float64(summary.Count)
	}
	return summary
}

// truncateExample keeps the first 60 runes and always appends an ellipsis
func truncateExample(text string) string {
	runes := []rune(text)
	if len(runes) > exampleTruncateLen {
		runes = runes[:exampleTruncateLen]
	}
	return string(runes) + "..."
}

// TopN returns the n highest-strength classifications, optionally filtered
// by argument type (empty filter keeps all). Ties keep original relative
// order.
func (c *Classifier) TopN(classifications []model.Classification, typeFilter model.ArgumentType, n int) []model.Classification {
	var filtered []model.Classification
	for _, cls := range classifications {
		if typeFilter == "" || cls.ArgumentType == typeFilter {
			filtered = append(filtered, cls)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Strength > filtered[j].Strength
	})

	if n >= 0 && len(filtered) > n {
		filtered = filtered[:n]
	}
	return filtered
}
