package detect

// Marker is a lowercase phrase whose presence signals an argumentative
// role, with a fixed confidence weight in [0,1].
type Marker struct {
	Phrase string
	Weight float64
}

// The lexicons are process-wide read-only tables. Matching is plain
// substring containment, so short entries like "as", "so" and "like" are
// deliberately ambiguous, low-weight heuristics.

// claimMarkers signal a main thesis: conclusion connectives, then
// modal-obligation verbs, then first-person belief markers.
var claimMarkers = []Marker{
	{"therefore", 0.9},
	{"thus", 0.9},
	{"hence", 0.9},
	{"so", 0.7},
	{"conclude", 0.95},
	{"conclusion", 0.95},
	{"in conclusion", 0.95},
	{"it is clear that", 0.9},
	{"this shows that", 0.85},
	{"this demonstrates", 0.85},
	{"this proves", 0.9},
	{"it follows that", 0.85},

	{"should", 0.8},
	{"must", 0.8},
	{"ought", 0.8},
	{"may", 0.6},
	{"might", 0.6},
	{"could", 0.6},
	{"would", 0.6},
	{"need to", 0.75},
	{"have to", 0.7},

	{"i believe", 0.85},
	{"i think", 0.8},
	{"in my opinion", 0.9},
	{"my view", 0.9},
	{"i argue", 0.9},
	{"it seems", 0.7},
	{"it appears", 0.7},
	{"arguably", 0.85},
	{"certainly", 0.75},
	{"clearly", 0.75},
	{"obviously", 0.75},
}

// supportMarkers signal evidence or reasoning for a claim
var supportMarkers = []Marker{
	{"because", 0.85},
	{"since", 0.8},
	{"as", 0.6}, // Ambiguous, hence the low weight
	{"due to", 0.85},
	{"caused by", 0.85},
	{"for example", 0.75},
	{"for instance", 0.75},
	{"such as", 0.75},
	{"like", 0.6},
	{"in fact", 0.7},
	{"indeed", 0.7},
	{"furthermore", 0.75},
	{"moreover", 0.75},
	{"additionally", 0.75},
	{"also", 0.65},
	{"this supports", 0.9},
	{"this proves", 0.85},
	{"this shows", 0.85},
	{"evidence", 0.8},
	{"research shows", 0.85},
	{"studies show", 0.85},
}

// counterMarkers signal an opposing viewpoint
var counterMarkers = []Marker{
	{"however", 0.8},
	{"but", 0.85},
	{"yet", 0.85},
	{"although", 0.85},
	{"though", 0.8},
	{"despite", 0.85},
	{"in spite of", 0.85},
	{"on the other hand", 0.9},
	{"conversely", 0.9},
	{"by contrast", 0.9},
	{"instead", 0.85},
	{"rather", 0.75},
	{"some people argue", 0.85},
	{"others claim", 0.85},
	{"critics say", 0.9},
	{"opponents argue", 0.9},
	{"this contradicts", 0.9},
	{"disagree", 0.85},
	{"counter-argument", 0.95},
}
