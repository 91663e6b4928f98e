// Package engine orchestrates the pattern detectors and reconciles their raw
// candidates into one coherent annotation set: confidence filtering, overlap
// deduplication, fragment merging, explanation enhancement and level/category
// aggregation.
package engine

import (
	"log"

	"go-grammatik/detectors"
	"go-grammatik/types"
)

const (
	// defaultConfidenceThreshold keeps low-certainty positional heuristics
	// away from learners while letting feature-derived detections through.
	defaultConfidenceThreshold = 0.70

	// defaultMergeGap tolerates a single separating space between fragments
	// of the same construct.
	defaultMergeGap = 1

	// Specificity ranks used to break confidence ties between detections on
	// the same exact span. Higher wins.
	specTop     = 100 // multi-token constructs: functional/separable verbs
	specVerbal  = 80  // tense, voice, mood
	specNominal = 60  // case, agreement
	specArticle = 20
	specDefault = 50 // anything not listed
)

// Config carries the reconciliation policy. The zero value is not usable;
// start from DefaultConfig. Threshold and ranking are the precision/recall
// tuning levers, so they are configuration rather than hard-coded law.
type Config struct {
	ConfidenceThreshold float64
	MergeGap            int
	Specificity         map[types.Category]int
	// Preserved categories are multi-token constructs that are never
	// dropped for overlapping something else: a case detection inside a
	// separable-verb span is expected, not redundant.
	Preserved map[types.Category]bool
}

// DefaultConfig returns the observed reference policy.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: defaultConfidenceThreshold,
		MergeGap:            defaultMergeGap,
		Specificity: map[types.Category]int{
			types.CatFunctionalVerb: specTop,
			types.CatSeparableVerb:  specTop,
			types.CatTense:          specVerbal,
			types.CatVoice:          specVerbal,
			types.CatMood:           specVerbal,
			types.CatCase:           specNominal,
			types.CatAgreement:      specNominal,
			types.CatArticle:        specArticle,
		},
		Preserved: map[types.Category]bool{
			types.CatSeparableVerb:        true,
			types.CatFunctionalVerb:       true,
			types.CatParticipialAttribute: true,
		},
	}
}

func (c Config) rank(cat types.Category) int {
	if r, ok := c.Specificity[cat]; ok {
		return r
	}
	return specDefault
}

// Engine runs a fixed detector list over sentences. It holds no mutable
// state, so one engine value can be shared and reused freely.
type Engine struct {
	cfg  Config
	dets []detectors.Detector
}

// New builds an engine from a config and a detector list. Detectors can be
// added here without touching the reconciler.
func New(cfg Config, dets ...detectors.Detector) *Engine {
	return &Engine{cfg: cfg, dets: dets}
}

// Default returns an engine with the reference policy and the full
// rule-based detector set.
func Default() *Engine {
	return New(DefaultConfig(), detectors.Default()...)
}

// Detectors exposes the registered detector list for introspection.
func (e *Engine) Detectors() []detectors.Detector {
	out := make([]detectors.Detector, len(e.dets))
	copy(out, e.dets)
	return out
}

// Analyze runs every detector over the sentence and reconciles the result.
// Always returns a complete, well-formed result; zero detections is normal.
func (e *Engine) Analyze(s types.Sentence) types.AnalysisResult {
	return e.Reconcile(s, e.Collect(s))
}

// Collect runs every registered detector, isolating failures: a panicking
// detector is logged and contributes nothing, the others proceed.
func (e *Engine) Collect(s types.Sentence) []types.Detection {
	var all []types.Detection
	for _, d := range e.dets {
		all = append(all, runDetector(d, s)...)
	}
	return all
}

func runDetector(d detectors.Detector, s types.Sentence) (out []types.Detection) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("detector %q panicked on %q: %v", d.Name(), s.Text, r)
			out = nil
		}
	}()
	return d.Detect(s)
}
