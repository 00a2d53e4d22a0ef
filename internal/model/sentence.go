package model

// Token is a single token of a sentence with tagger metadata.
// Fields the active tokenizer cannot supply hold the sentinel "UNKNOWN".
type Token struct {
	Text  string `json:"text"`
	POS   string `json:"pos"`   // Part-of-speech tag
	Lemma string `json:"lemma"` // Base form (token text if no lemmatizer)
	Dep   string `json:"dep"`   // Dependency label
}

// Sentence is one segmented sentence of the input document.
// DocID is the zero-based position of the sentence in the source text and
// is the only positional signal carried downstream.
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
	DocID  int     `json:"doc_id"`
}

// UnknownTag is the sentinel for token attributes the tokenizer cannot fill.
const UnknownTag = "UNKNOWN"
