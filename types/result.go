package types

// Summary holds the counts reported alongside an analysis result.
type Summary struct {
	Total      int              `json:"total" firestore:"total"`
	ByLevel    map[Level]int    `json:"byLevel" firestore:"byLevel"`
	ByCategory map[Category]int `json:"byCategory" firestore:"byCategory"`
}

// AnalysisResult is the complete output of one analysis call. Always
// well-formed: zero detections is a normal result, not an error, and every
// map is non-nil.
type AnalysisResult struct {
	Text       string                   `json:"text" firestore:"text"`
	Detections []Detection              `json:"detections" firestore:"detections"`
	ByLevel    map[Level][]Detection    `json:"byLevel" firestore:"-"`
	ByCategory map[Category][]Detection `json:"byCategory" firestore:"-"`
	Summary    Summary                  `json:"summary" firestore:"summary"`
}
