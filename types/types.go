package types

// Token is one annotated token as produced by the spaCy sidecar.
// Morph keys follow Universal Dependencies names (Case, Tense, Mood, ...);
// a missing key means the parser did not commit to a value, never a default.
type Token struct {
	Text  string            `json:"text" firestore:"text"`
	Lemma string            `json:"lemma" firestore:"lemma"`
	POS   string            `json:"pos" firestore:"pos"` // Universal POS (NOUN, VERB, ADJ, ...)
	Tag   string            `json:"tag" firestore:"tag"` // Language-specific tag (NN, VVFIN, PTKVZ, ...)
	Dep   string            `json:"dep" firestore:"dep"` // Dependency relation
	Morph map[string]string `json:"morph" firestore:"morph"`
	Index int               `json:"index" firestore:"index"` // Zero-based position in the sentence
	Start int               `json:"start" firestore:"start"` // Character offset, inclusive
	End   int               `json:"end" firestore:"end"`     // Character offset, exclusive
}

// Entity is a named-entity span reported by the parser.
type Entity struct {
	Text  string `json:"text" firestore:"text"`
	Label string `json:"label" firestore:"label"`
	Start int    `json:"start" firestore:"start"`
	End   int    `json:"end" firestore:"end"`
}

// Sentence is the read-only input to every detector: the original text plus
// its tokens in left-to-right surface order.
type Sentence struct {
	Text     string   `json:"text" firestore:"text"`
	Tokens   []Token  `json:"tokens" firestore:"tokens"`
	Entities []Entity `json:"entities,omitempty" firestore:"entities,omitempty"`
}

// Slice returns the sentence text covered by [start, end), clamped to the
// text bounds so a sloppy span never panics.
func (s Sentence) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s.Text) {
		end = len(s.Text)
	}
	if start >= end {
		return ""
	}
	return s.Text[start:end]
}
