package model

import "time"

// Report is the complete result of one analysis run.
// It is the contract consumed by every rendering layer.
type Report struct {
	Source     string    `json:"source"` // "demo", "stdin", file path or URL
	AnalyzedAt time.Time `json:"analyzed_at"`

	SentenceCount   int                  `json:"sentence_count"`
	Classifications []Classification     `json:"classifications"`
	Summary         Summary              `json:"summary"`
	Trees           []TreeNode           `json:"trees"`
	Stats           TreeStats            `json:"stats"`
	StrongestPath   []PathStep           `json:"strongest_path"`
	CounterPairs    []CounterPair        `json:"counter_pairs"`
	Weaknesses      []SentenceWeaknesses `json:"weaknesses"`

	LLM *LLMSummary `json:"llm,omitempty"` // Optional, never affects scores
}

// Exports returns the stable interop records for all classifications
func (r *Report) Exports() []Export {
	out := make([]Export, len(r.Classifications))
	for i, c := range r.Classifications {
		out[i] = c.Export()
	}
	return out
}

// TreeNode is the cycle-free export form of an argument node
type TreeNode struct {
	ID           int          `json:"id"`
	ArgumentType ArgumentType `json:"type"`
	Text         string       `json:"text"`
	Strength     float64      `json:"strength"`
	Emotionality float64      `json:"emotionality"`
	Children     []TreeNode   `json:"children"`
}

// TreeStats aggregates the argument forest
type TreeStats struct {
	TotalNodes  int     `json:"total_nodes"`
	Claims      int     `json:"total_claims"`
	Supports    int     `json:"total_supports"`
	Counters    int     `json:"total_counters"`
	AvgStrength float64 `json:"avg_strength"`
	MaxDepth    int     `json:"max_depth"`
	RootClaims  int     `json:"num_root_claims"`
}

// PathStep is one node of the strongest root-to-leaf path
type PathStep struct {
	ID           int          `json:"id"`
	ArgumentType ArgumentType `json:"type"`
	Text         string       `json:"text"`
	Strength     float64      `json:"strength"`
}

// CounterPair is a root claim with one of its direct counter children
type CounterPair struct {
	ClaimID     int    `json:"claim_id"`
	ClaimText   string `json:"claim_text"`
	CounterID   int    `json:"counter_id"`
	CounterText string `json:"counter_text"`
}

// LLMSummary is an optional model-generated coaching summary.
// It is produced after scoring and never feeds back into it.
type LLMSummary struct {
	Enabled   bool   `json:"enabled"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	SummaryMD string `json:"summary_md,omitempty"`
}
