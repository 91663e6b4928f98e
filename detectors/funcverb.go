package detectors

import (
	"fmt"

	"go-grammatik/types"
)

const (
	functionalVerbConf = 0.88
	funcVerbWindow     = 8
)

// FunctionalVerbDetector matches Funktionsverbgefüge from the closed
// dictionary: a light verb plus the noun that carries the meaning, with an
// optional preposition ("in Frage stellen", "zur Verfügung stehen").
type FunctionalVerbDetector struct{}

func (FunctionalVerbDetector) Name() string { return "functional-verb" }

func (d FunctionalVerbDetector) Detect(s types.Sentence) []types.Detection {
	var out []types.Detection
	for i, tok := range s.Tokens {
		if tok.POS != "VERB" && tok.POS != "AUX" {
			continue
		}
		for _, pat := range functionalVerbs {
			if pat.Verb != tok.Lemma {
				continue
			}
			noun, prep, ok := findPatternNoun(s, i, pat)
			if !ok {
				continue
			}
			first, last := tok, noun
			if noun.Start < tok.Start {
				first, last = noun, tok
			}
			if prep.Text != "" && prep.Start < first.Start {
				first = prep
			}
			details := map[string]any{
				"pattern": pat.Pattern,
				"verb":    tok.Lemma,
				"noun":    noun.Text,
			}
			if pat.Preposition != "" {
				details["preposition"] = pat.Preposition
			}
			det := detection("functional-verb-construction", first, last, functionalVerbConf, details)
			det.InstanceID = fmt.Sprintf("functional-verb:%s:%d", pat.Pattern, tok.Index)
			out = append(out, det)
			break
		}
	}
	return out
}

// findPatternNoun looks on both sides of the verb for the pattern's noun
// (the noun precedes the verb in main clauses, follows in verb-first ones),
// requiring the pattern's preposition right before the noun when one is set.
// zur/zum count as the fused zu + article.
func findPatternNoun(s types.Sentence, i int, pat functionalVerbPattern) (noun, prep types.Token, ok bool) {
	check := func(j int) (types.Token, types.Token, bool) {
		t := s.Tokens[j]
		if (t.POS != "NOUN" && t.POS != "PROPN") || t.Lemma != pat.Noun {
			return types.Token{}, types.Token{}, false
		}
		if pat.Preposition == "" {
			return t, types.Token{}, true
		}
		for k := j - 1; k >= 0 && k >= j-2; k-- {
			p := s.Tokens[k]
			if p.Lemma == pat.Preposition || p.Text == "zur" || p.Text == "zum" {
				return t, p, true
			}
		}
		return types.Token{}, types.Token{}, false
	}

	for j := i + 1; j < len(s.Tokens) && j <= i+funcVerbWindow; j++ {
		if isClauseBoundary(s.Tokens[j]) {
			break
		}
		if n, p, found := check(j); found {
			return n, p, true
		}
	}
	for j := i - 1; j >= 0 && j >= i-funcVerbWindow; j-- {
		if isClauseBoundary(s.Tokens[j]) {
			break
		}
		if n, p, found := check(j); found {
			return n, p, true
		}
	}
	return types.Token{}, types.Token{}, false
}
