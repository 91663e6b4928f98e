package types

// Level is a CEFR proficiency tier, A1 (easiest) through C2.
type Level string

const (
	A1 Level = "A1"
	A2 Level = "A2"
	B1 Level = "B1"
	B2 Level = "B2"
	C1 Level = "C1"
	C2 Level = "C2"
)

// Levels lists all CEFR levels in ascending order of difficulty.
var Levels = []Level{A1, A2, B1, B2, C1, C2}

// Order returns the position of the level in the A1..C2 scale, or -1 for an
// unknown level string.
func (l Level) Order() int {
	for i, lv := range Levels {
		if lv == l {
			return i
		}
	}
	return -1
}

// Category is the fixed enumeration of grammar-point categories. Detections
// carrying a category outside this set stay in the flat result list but are
// skipped by category aggregation.
type Category string

const (
	CatTense                Category = "tense"
	CatCase                 Category = "case"
	CatVoice                Category = "voice"
	CatMood                 Category = "mood"
	CatAgreement            Category = "agreement"
	CatArticle              Category = "article"
	CatAdjective            Category = "adjective"
	CatPronoun              Category = "pronoun"
	CatPreposition          Category = "preposition"
	CatConjunction          Category = "conjunction"
	CatVerbForm             Category = "verb-form"
	CatWordOrder            Category = "word-order"
	CatSeparableVerb        Category = "separable-verb"
	CatModalVerb            Category = "modal-verb"
	CatReflexiveVerb        Category = "reflexive-verb"
	CatPassive              Category = "passive"
	CatFunctionalVerb       Category = "functional-verb"
	CatParticipialAttribute Category = "participial-attribute"
	CatCollocation          Category = "collocation"
	CatSpecialConstruction  Category = "special-construction"
)

// Categories lists every known category.
var Categories = []Category{
	CatTense, CatCase, CatVoice, CatMood, CatAgreement, CatArticle,
	CatAdjective, CatPronoun, CatPreposition, CatConjunction, CatVerbForm,
	CatWordOrder, CatSeparableVerb, CatModalVerb, CatReflexiveVerb,
	CatPassive, CatFunctionalVerb, CatParticipialAttribute, CatCollocation,
	CatSpecialConstruction,
}

// Known reports whether c is part of the fixed category enumeration.
func (c Category) Known() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// GrammarPoint is one cataloged grammatical phenomenon. Static data, loaded
// once, never mutated.
type GrammarPoint struct {
	ID          string   `json:"id" firestore:"id"`
	Level       Level    `json:"level" firestore:"level"`
	Category    Category `json:"category" firestore:"category"`
	Name        string   `json:"name" firestore:"name"`
	Description string   `json:"description" firestore:"description"`
	Examples    []string `json:"examples,omitempty" firestore:"examples,omitempty"`
	// Explanation is the generic template shown when no context-aware text
	// could be generated for a detection.
	Explanation string `json:"explanation" firestore:"explanation"`
	// Hints documents the morphological features this point keys off.
	// Informational only; detectors never read it.
	Hints map[string]string `json:"hints,omitempty" firestore:"-"`
}

// Detection is one concrete occurrence of a grammar point in a sentence.
// Lives only for the duration of a single analysis call.
type Detection struct {
	Point      GrammarPoint `json:"grammarPoint" firestore:"grammarPoint"`
	Start      int          `json:"start" firestore:"start"` // Character span, inclusive
	End        int          `json:"end" firestore:"end"`     // Character span, exclusive
	Confidence float64      `json:"confidence" firestore:"confidence"`
	// Details carries category-specific evidence: matched word, auxiliary,
	// governing preposition, case value, absorbed fragment count, ...
	// Well-known keys are documented per category in the catalog package.
	Details map[string]any `json:"details,omitempty" firestore:"details,omitempty"`
	// InstanceID identifies fragments of the same construct detected at
	// different token ranges so the reconciler can merge them. Empty means
	// never mergeable.
	InstanceID  string `json:"-" firestore:"-"`
	Explanation string `json:"explanation" firestore:"explanation"`
}

// Overlaps reports whether the spans of d and other intersect.
func (d Detection) Overlaps(other Detection) bool {
	return d.Start <= other.End && other.Start <= d.End
}
