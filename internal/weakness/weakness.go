// Package weakness pattern-matches classified sentences against common
// logical-fallacy heuristics. Every rule is a case-insensitive substring
// test evaluated independently of other sentences.
package weakness

import (
	"strings"

	"github.com/argus-nlp/argus/internal/model"
)

// Word lists for the substring rules
var (
	superlativeWords    = []string{"absolutely", "definitely", "certainly", "obviously", "clearly"}
	adHominemWords      = []string{"stupid", "idiot", "fool", "moron", "ignorant"}
	generalizationWords = []string{"all", "never", "always", "everybody", "nobody"}
)

const emotionalityLimit = 0.7

// NoneFinding is returned when no rule fires
const NoneFinding = "None"

// Detector finds logical weaknesses in classifications
type Detector struct{}

// NewDetector creates a weakness detector
func NewDetector() *Detector {
	return &Detector{}
}

// Find evaluates all rules against one classification, in fixed order,
// suppressing duplicate finding names. When nothing fires it returns a
// single sentinel finding named "None".
func (d *Detector) Find(cls model.Classification) []model.WeaknessFinding {
	var findings []model.WeaknessFinding
	add := func(f model.WeaknessFinding) {
		for _, existing := range findings {
			if existing.Name == f.Name {
				return
			}
		}
		findings = append(findings, f)
	}

	textLower := strings.ToLower(cls.SentenceText)

	if cls.Emotionality > emotionalityLimit {
		add(model.WeaknessFinding{
			Name:        "Appeal to Emotion",
			Description: "The argument leans heavily on emotional language instead of facts.",
			Strengthen:  "Add concrete evidence or statistics and tone down the emotional wording.",
			CounterArgs: []string{
				"Critics could argue your point is driven by feeling rather than substance.",
			},
			ProArgs: []string{
				"Back the emotional appeal with survey data or a personal experience as an example.",
			},
		})
	}

	superlatives := 0
	for _, word := range superlativeWords {
		if strings.Contains(textLower, word) {
			superlatives++
		}
	}
	if superlatives >= 2 {
		add(model.WeaknessFinding{
			Name:        "Hasty Generalization",
			Description: "Uses sweeping phrasing and jumps to conclusions too quickly.",
			Strengthen:  "Use more precise wording or acknowledge exceptions.",
		})
	}

	if containsAny(textLower, adHominemWords) {
		add(model.WeaknessFinding{
			Name:        "Ad Hominem",
			Description: "Attacks the person instead of the argument.",
			Strengthen:  "Focus the criticism on the substance, not the speaker.",
			CounterArgs: []string{
				"Others could object that you argue unfairly by attacking your opponent.",
			},
			ProArgs: []string{
				"Support your point with verifiable facts instead of insults.",
			},
		})
	}

	if containsAny(textLower, generalizationWords) {
		add(model.WeaknessFinding{
			Name:        "Hasty Generalization",
			Description: "Draws a general conclusion from insufficient examples.",
			Strengthen:  "Give concrete examples or broaden the supporting data.",
			CounterArgs: []string{
				"Some could note that your examples are not representative.",
			},
			ProArgs: []string{
				"Add further evidence to back the generalization.",
			},
		})
	}

	if strings.Count(textLower, "is") > 2 {
		add(model.WeaknessFinding{
			Name:        "Circular Reasoning",
			Description: "The argument uses its own conclusion as a premise.",
			Strengthen:  "Bring in independent evidence or arguments that support the point.",
		})
	}

	if cls.ArgumentType == model.TypeSupport && strings.Contains(textLower, "believe") {
		add(model.WeaknessFinding{
			Name:        "Appeal to Belief",
			Description: "Rests on belief rather than verifiable facts.",
			Strengthen:  "Provide empirical data or sources instead of a bare assertion.",
			CounterArgs: []string{
				"An opponent could say that your belief proves nothing.",
			},
			ProArgs: []string{
				"Add studies or expert quotes to underpin the belief statement.",
			},
		})
	}

	if len(findings) == 0 {
		findings = append(findings, model.WeaknessFinding{
			Name:        NoneFinding,
			Description: "No obvious weaknesses detected.",
			Strengthen:  "Your argument appears logically sound - keep it up!",
		})
	}

	return findings
}

// FindAll evaluates every classification and pairs findings with the
// originating sentence position.
func (d *Detector) FindAll(classifications []model.Classification) []model.SentenceWeaknesses {
	out := make([]model.SentenceWeaknesses, 0, len(classifications))
	for i, cls := range classifications {
		out = append(out, model.SentenceWeaknesses{
			DocID:        i,
			SentenceText: cls.SentenceText,
			Findings:     d.Find(cls),
		})
	}
	return out
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
