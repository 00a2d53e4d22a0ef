package model

// WeaknessFinding is one heuristically detected logical weakness.
// Name is "None" when no rule fired; CounterArgs and ProArgs are static
// illustrative suggestions carried by some rules.
type WeaknessFinding struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Strengthen  string   `json:"strengthen,omitempty"`
	CounterArgs []string `json:"counter_args,omitempty"`
	ProArgs     []string `json:"pro_args,omitempty"`
}

// SentenceWeaknesses pairs a sentence with its weakness findings
type SentenceWeaknesses struct {
	DocID        int               `json:"doc_id"`
	SentenceText string            `json:"sentence_text"`
	Findings     []WeaknessFinding `json:"findings"`
}
