package emotion

// Entry is a lexicon word with its sentiment weight
type Entry struct {
	Word   string
	Weight float64
}

// positiveWords and negativeWords are process-wide read-only sentiment
// tables. Matching is substring containment over the lower-cased text, one
// contribution per entry found.

var positiveWords = []Entry{
	{"good", 0.7}, {"great", 0.9}, {"excellent", 0.95}, {"wonderful", 0.9},
	{"amazing", 0.95}, {"fantastic", 0.95}, {"beautiful", 0.8}, {"love", 0.85},
	{"brilliant", 0.9}, {"perfect", 0.9}, {"awesome", 0.9},
	{"positive", 0.8}, {"benefit", 0.75}, {"success", 0.8}, {"help", 0.7},
	{"support", 0.75}, {"agree", 0.6}, {"right", 0.6}, {"true", 0.65},
	{"best", 0.85}, {"better", 0.75}, {"improve", 0.8},
}

var negativeWords = []Entry{
	{"bad", 0.7}, {"terrible", 0.95}, {"awful", 0.95}, {"horrible", 0.95},
	{"hate", 0.95}, {"dislike", 0.8}, {"wrong", 0.75}, {"evil", 0.95},
	{"stupid", 0.9}, {"idiots", 0.95}, {"idiotic", 0.95}, {"ridiculous", 0.85},
	{"absurd", 0.85}, {"nonsense", 0.85}, {"lies", 0.9}, {"failure", 0.8},
	{"problem", 0.6}, {"issue", 0.5}, {"danger", 0.75}, {"dangerous", 0.85},
	{"threat", 0.8}, {"destroy", 0.85}, {"crisis", 0.8}, {"disaster", 0.9},
	{"blame", 0.7}, {"fault", 0.7}, {"worst", 0.9}, {"worse", 0.8},
	{"negative", 0.7}, {"disagree", 0.6}, {"false", 0.75}, {"incorrect", 0.7},
}

// intensityMarkers are adverbs that amplify emotional weight. The maximum
// multiplier among those present applies to every lexicon hit in the
// sentence.
var intensityMarkers = []Entry{
	{"very", 1.2},
	{"extremely", 1.3},
	{"incredibly", 1.3},
	{"absolutely", 1.3},
	{"definitely", 1.2},
	{"obviously", 1.1},
	{"clearly", 1.1},
	{"utterly", 1.3},
	{"completely", 1.2},
	{"totally", 1.2},
	{"really", 1.15},
	{"so", 1.15},
}
