package segment

import (
	"strings"

	prose "github.com/jdkato/prose/v2"

	"github.com/argus-nlp/argus/internal/model"
)

// segmentRich delegates sentence boundaries and part-of-speech tags to the
// prose tagger, preserving its segmentation exactly. prose carries no
// lemmatizer or dependency parser, so the lemma is the lower-cased token
// text and the dependency label stays UNKNOWN.
func segmentRich(text string) ([]model.Sentence, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	var sentences []model.Sentence
	for _, sent := range doc.Sentences() {
		sentText := strings.TrimSpace(sent.Text)
		if sentText == "" {
			continue
		}

		tokens, err := tagSentence(sentText)
		if err != nil {
			return nil, err
		}

		sentences = append(sentences, model.Sentence{
			Text:   sentText,
			Tokens: tokens,
			DocID:  len(sentences),
		})
	}

	return sentences, nil
}

// tagSentence tokenizes and tags a single sentence
func tagSentence(text string) ([]model.Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}

	proseTokens := doc.Tokens()
	tokens := make([]model.Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		pos := tok.Tag
		if pos == "" {
			pos = model.UnknownTag
		}
		tokens = append(tokens, model.Token{
			Text:  tok.Text,
			POS:   pos,
			Lemma: strings.ToLower(tok.Text),
			Dep:   model.UnknownTag,
		})
	}

	return tokens, nil
}
