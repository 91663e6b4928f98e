// Package detectors holds one independent pattern detector per German
// grammar phenomenon. Every detector receives the full annotated sentence
// and emits zero or more candidate detections; detectors never see each
// other's output, so any of them can be added or removed without changing
// the rest.
package detectors

import (
	"go-grammatik/catalog"
	"go-grammatik/types"
)

// Detector is the contract every pattern detector implements. Detect must be
// pure with respect to its input and must not share mutable state with other
// detectors.
type Detector interface {
	Name() string
	Detect(s types.Sentence) []types.Detection
}

// Default returns the full rule-based detector set in registration order.
// Order is irrelevant to the final output; the reconciler owns all
// tie-breaking.
func Default() []Detector {
	return []Detector{
		TenseDetector{},
		CaseDetector{},
		ArticleDetector{},
		ModalVerbDetector{},
		SeparableVerbDetector{},
		PassiveDetector{},
		WordOrderDetector{},
		CollocationDetector{},
		ConditionalDetector{},
		ParticipialDetector{},
		FunctionalVerbDetector{},
	}
}

// detection builds a candidate for the cataloged point id covering the token
// range [first, last].
func detection(id string, first, last types.Token, conf float64, details map[string]any) types.Detection {
	start, end := first.Start, last.End
	if last.Start < first.Start {
		start, end = last.Start, first.End
	}
	return types.Detection{
		Point:      catalog.MustPoint(id),
		Start:      start,
		End:        end,
		Confidence: conf,
		Details:    details,
	}
}

// isPunct reports whether the token is punctuation; window scans skip it.
func isPunct(tok types.Token) bool {
	return tok.POS == "PUNCT"
}

// isClauseBoundary reports whether the token ends a clause for the purpose
// of bounded forward scans (commas, sentence-final punctuation, coordinating
// conjunctions starting a new main clause).
func isClauseBoundary(tok types.Token) bool {
	if tok.POS == "PUNCT" {
		switch tok.Text {
		case ",", ";", ".", "!", "?", ":":
			return true
		}
	}
	return tok.POS == "CCONJ"
}
