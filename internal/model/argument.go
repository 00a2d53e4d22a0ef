package model

// ArgumentType labels the argumentative role of a sentence
type ArgumentType string

const (
	TypeClaim   ArgumentType = "CLAIM"   // Main thesis
	TypeSupport ArgumentType = "SUPPORT" // Evidence or reasoning for a claim
	TypeCounter ArgumentType = "COUNTER" // Opposing viewpoint
	TypeNeutral ArgumentType = "NEUTRAL" // No argumentative markers found
)

// ArgumentTypes is the fixed enumeration order used for tie-breaking and
// for stable report output.
var ArgumentTypes = []ArgumentType{TypeClaim, TypeSupport, TypeCounter, TypeNeutral}

// Sentiment labels the polarity of a sentence
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// RoleResult is the per-sentence output of the role detector
type RoleResult struct {
	SentenceText string       `json:"sentence_text"`
	ArgumentType ArgumentType `json:"argument_type"`
	Confidence   float64      `json:"confidence"` // Mean weight of matched markers, 0..1
	Markers      []string     `json:"markers"`    // Matched phrases of the winning lexicon
}

// EmotionResult is the per-sentence output of the emotion scorer
type EmotionResult struct {
	SentenceText   string    `json:"sentence_text"`
	Sentiment      Sentiment `json:"sentiment"`
	SentimentScore float64   `json:"sentiment_score"` // -1..1
	Emotionality   float64   `json:"emotionality"`    // 0..1
	Keywords       []string  `json:"emotion_keywords"`
}

// Classification fuses one RoleResult with one EmotionResult
type Classification struct {
	SentenceText   string       `json:"sentence_text"`
	ArgumentType   ArgumentType `json:"argument_type"`
	Confidence     float64      `json:"confidence"`
	Sentiment      Sentiment    `json:"sentiment"`
	SentimentScore float64      `json:"sentiment_score"`
	Emotionality   float64      `json:"emotionality"`
	Keywords       []string     `json:"keywords"` // Role markers then emotion keywords
	Strength       float64      `json:"strength"` // 0..1
}

// Export is the stable interop record consumed by external renderers.
// Field names are part of the contract and must not change.
type Export struct {
	SentenceText string       `json:"sentence_text"`
	ArgumentType ArgumentType `json:"argument_type"`
	Confidence   float64      `json:"confidence"`
	Strength     float64      `json:"strength"`
	Sentiment    Sentiment    `json:"sentiment"`
	Emotionality float64      `json:"emotionality"`
}

// Export returns the interop view of the classification
func (c Classification) Export() Export {
	return Export{
		SentenceText: c.SentenceText,
		ArgumentType: c.ArgumentType,
		Confidence:   c.Confidence,
		Strength:     c.Strength,
		Sentiment:    c.Sentiment,
		Emotionality: c.Emotionality,
	}
}

// TypeSummary aggregates classifications of one argument type
type TypeSummary struct {
	Count           int      `json:"count"`
	AvgStrength     float64  `json:"avg_strength"`
	AvgEmotionality float64  `json:"avg_emotionality"`
	Examples        []string `json:"examples"` // Up to two truncated sentence texts
}

// Summary groups classifications by argument type
type Summary struct {
	Claim   TypeSummary `json:"CLAIM"`
	Support TypeSummary `json:"SUPPORT"`
	Counter TypeSummary `json:"COUNTER"`
	Neutral TypeSummary `json:"NEUTRAL"`
}

// ByType returns the summary bucket for the given argument type
func (s Summary) ByType(t ArgumentType) TypeSummary {
	switch t {
	case TypeClaim:
		return s.Claim
	case TypeSupport:
		return s.Support
	case TypeCounter:
		return s.Counter
	default:
		return s.Neutral
	}
}

// SentimentSummary aggregates emotion results across a document
type SentimentSummary struct {
	Positive        int     `json:"positive"`
	Negative        int     `json:"negative"`
	Neutral         int     `json:"neutral"`
	AvgSentiment    float64 `json:"avg_sentiment"`
	AvgEmotionality float64 `json:"avg_emotionality"`
	TotalSentences  int     `json:"total_sentences"`
}
