// Package processor wires the collaborators around the pure analysis core:
// parse caching, the spaCy sidecar, the sparse-result LLM escalation and the
// learner's analysis history. Everything here is optional except the parser;
// the engine itself never touches I/O.
package processor

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"go-grammatik/db"
	"go-grammatik/detectors"
	"go-grammatik/engine"
	"go-grammatik/parser"
	"go-grammatik/types"
)

const (
	// defaultFallbackMinPoints gates the LLM escalation: only sentences
	// where the rule-based pass found fewer points than this are worth the
	// latency and API cost of a second pass.
	defaultFallbackMinPoints = 2
)

// Analyzer orchestrates one full analysis request.
type Analyzer struct {
	Engine *engine.Engine
	Parser *parser.Client

	// Firestore enables parse caching and history when non-nil.
	Firestore *firestore.Client

	// Fallback, when non-nil, runs after a sparse rule-based pass. Its raw
	// candidates go through the same reconciliation as everything else.
	Fallback          detectors.Detector
	FallbackMinPoints int

	// SaveHistory persists results for the learner's history page.
	SaveHistory bool
}

// AnalyzeText parses the text (through the cache when available), runs the
// engine and applies the escalation policy. The returned result is always
// complete and well-formed; an empty sentence yields zero detections.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) (types.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return a.Engine.Analyze(types.Sentence{Text: text}), nil
	}

	sentence, err := a.parse(ctx, text)
	if err != nil {
		return types.AnalysisResult{}, fmt.Errorf("parsing sentence: %w", err)
	}

	raw := a.Engine.Collect(sentence)
	result := a.Engine.Reconcile(sentence, raw)

	if a.Fallback != nil && result.Summary.Total < a.fallbackMin() {
		log.Printf("Rule pass found %d points for %q, escalating to %s",
			result.Summary.Total, text, a.Fallback.Name())
		extra := a.Fallback.Detect(sentence)
		if len(extra) > 0 {
			result = a.Engine.Reconcile(sentence, append(raw, extra...))
		}
	}

	if a.SaveHistory && a.Firestore != nil {
		id := uuid.NewString()
		go func(res types.AnalysisResult) {
			if err := db.SaveAnalysis(context.Background(), a.Firestore, id, res); err != nil {
				log.Printf("Failed to save analysis %s: %v", id, err)
			}
		}(result)
	}

	return result, nil
}

func (a *Analyzer) fallbackMin() int {
	if a.FallbackMinPoints > 0 {
		return a.FallbackMinPoints
	}
	return defaultFallbackMinPoints
}

// parse returns the annotated sentence, serving from the Firestore cache
// when possible and writing back on a miss. Cache trouble is logged, never
// fatal; the sidecar is the source of truth.
func (a *Analyzer) parse(ctx context.Context, text string) (types.Sentence, error) {
	if a.Firestore != nil {
		cached, hit, err := db.GetCachedParse(ctx, a.Firestore, text)
		if err != nil {
			log.Printf("Parse cache read failed for %q: %v", text, err)
		} else if hit {
			return cached, nil
		}
	}

	sentence, err := a.Parser.Analyze(ctx, text)
	if err != nil {
		return types.Sentence{}, err
	}

	if a.Firestore != nil {
		go func(s types.Sentence) {
			if err := db.SaveCachedParse(context.Background(), a.Firestore, s); err != nil {
				log.Printf("Parse cache write failed for %q: %v", s.Text, err)
			}
		}(sentence)
	}
	return sentence, nil
}
