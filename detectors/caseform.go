package detectors

import (
	"go-grammatik/morph"
	"go-grammatik/types"
)

const (
	caseFeatureConf     = 0.95 // case read directly off morphology
	casePrepositionConf = 0.82 // inferred from an unambiguous governing preposition
	caseSubjectConf     = 0.65 // positional guess: noun before the first finite verb
	caseObjectConf      = 0.62 // positional guess: noun right after the finite verb

	// How far back a governing preposition may sit from its noun.
	prepositionLookback = 3
)

var casePointIDs = map[string]string{
	morph.Nominative: "nominative-case",
	morph.Accusative: "accusative-case",
	morph.Dative:     "dative-case",
	morph.Genitive:   "genitive-case",
}

// caseStrategy is one tier of the fallback chain. Strategies are tried in
// order and the first hit wins; later tiers carry visibly lower confidence.
type caseStrategy func(s types.Sentence, i int) (types.Detection, bool)

// CaseDetector detects the case of nouns and pronouns, preferring
// morphological features and degrading to preposition and word-position
// heuristics.
type CaseDetector struct{}

func (CaseDetector) Name() string { return "case" }

func (d CaseDetector) Detect(s types.Sentence) []types.Detection {
	strategies := []caseStrategy{caseFromFeature, caseFromPreposition, caseFromPosition}

	var out []types.Detection
	for i, tok := range s.Tokens {
		if tok.POS != "NOUN" && tok.POS != "PROPN" && tok.POS != "PRON" {
			continue
		}
		for _, strat := range strategies {
			if det, ok := strat(s, i); ok {
				out = append(out, det)
				break
			}
		}
	}
	return out
}

// caseFromFeature reads the case directly off the token's morphology.
func caseFromFeature(s types.Sentence, i int) (types.Detection, bool) {
	tok := s.Tokens[i]
	c := morph.Case(tok)
	id, ok := casePointIDs[c]
	if !ok {
		return types.Detection{}, false
	}
	det := detection(id, tok, tok, caseFeatureConf, map[string]any{
		"case":   c,
		"word":   tok.Text,
		"method": "feature",
	})
	if role, prep := caseRole(s, i, c); role != "" {
		det.Details["role"] = role
		if prep != "" {
			det.Details["preposition"] = prep
		}
	}
	return det, true
}

// caseFromPreposition infers the case from an unambiguous preposition
// governing the noun within a short lookback window.
func caseFromPreposition(s types.Sentence, i int) (types.Detection, bool) {
	tok := s.Tokens[i]
	for j := i - 1; j >= 0 && j >= i-prepositionLookback; j-- {
		prev := s.Tokens[j]
		if isClauseBoundary(prev) {
			break
		}
		if prev.POS != "ADP" {
			continue
		}
		var c string
		switch {
		case accusativePrepositions[prev.Lemma]:
			c = morph.Accusative
		case dativePrepositions[prev.Lemma]:
			c = morph.Dative
		case genitivePrepositions[prev.Lemma]:
			c = morph.Genitive
		default:
			// Two-way preposition; the fallback cannot decide the case.
			return types.Detection{}, false
		}
		det := detection(casePointIDs[c], tok, tok, casePrepositionConf, map[string]any{
			"case":        c,
			"word":        tok.Text,
			"preposition": prev.Lemma,
			"method":      "preposition",
			"role":        "preposition",
		})
		return det, true
	}
	return types.Detection{}, false
}

// caseFromPosition guesses from linear position: a noun before the first
// finite verb is probably the subject (nominative), a noun right after it
// probably the direct object (accusative). These guesses sit below the
// engine's confidence threshold and only matter for callers that lower it.
func caseFromPosition(s types.Sentence, i int) (types.Detection, bool) {
	tok := s.Tokens[i]
	verbIdx := -1
	for j, t := range s.Tokens {
		if morph.IsFiniteVerb(t) {
			verbIdx = j
			break
		}
	}
	if verbIdx < 0 {
		return types.Detection{}, false
	}
	if i < verbIdx {
		det := detection("nominative-case", tok, tok, caseSubjectConf, map[string]any{
			"case":   morph.Nominative,
			"word":   tok.Text,
			"method": "position",
			"role":   "subject",
		})
		return det, true
	}
	if i == verbIdx+1 && tok.POS != "PRON" {
		det := detection("accusative-case", tok, tok, caseObjectConf, map[string]any{
			"case":   morph.Accusative,
			"word":   tok.Text,
			"method": "position",
			"role":   "direct-object",
		})
		return det, true
	}
	return types.Detection{}, false
}

// caseRole derives the semantic role detail used by explanation variants:
// the governing preposition, a dative verb, or the grammatical position.
func caseRole(s types.Sentence, i int, c string) (role, prep string) {
	for j := i - 1; j >= 0 && j >= i-prepositionLookback; j-- {
		prev := s.Tokens[j]
		if isClauseBoundary(prev) {
			break
		}
		if prev.POS == "ADP" {
			return "preposition", prev.Lemma
		}
	}
	switch c {
	case morph.Nominative:
		if s.Tokens[i].Dep == "sb" || s.Tokens[i].Dep == "nsubj" {
			return "subject", ""
		}
		if s.Tokens[i].Dep == "pd" {
			return "predicate", ""
		}
		return "subject", ""
	case morph.Accusative:
		return "direct-object", ""
	case morph.Dative:
		for _, t := range s.Tokens {
			if (t.POS == "VERB" || t.POS == "AUX") && dativeVerbs[t.Lemma] {
				return "verb", ""
			}
		}
		return "indirect-object", ""
	case morph.Genitive:
		return "possession", ""
	}
	return "", ""
}
