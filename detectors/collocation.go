package detectors

import (
	"fmt"

	"go-grammatik/types"
)

const (
	collocationConf        = 0.90 // pattern matched with dependency support
	collocationRelaxedConf = 0.80 // pattern matched on lemmas alone
	reflexiveConf          = 0.82 // bare reflexive verb, no fixed preposition

	collocationWindow = 6
)

// CollocationDetector matches fixed verb-preposition and
// reflexive-verb-preposition combinations from a closed dictionary, plus
// bare reflexive verbs.
type CollocationDetector struct{}

func (CollocationDetector) Name() string { return "collocation" }

func (d CollocationDetector) Detect(s types.Sentence) []types.Detection {
	var out []types.Detection
	for i, tok := range s.Tokens {
		if tok.POS != "VERB" && tok.POS != "AUX" {
			continue
		}

		refl, reflTok := findReflexive(s, i)

		matched := false
		for _, pat := range collocations {
			if pat.Verb != tok.Lemma {
				continue
			}
			if pat.Reflexive && !refl {
				continue
			}
			prep, prepOK := findGovernedPreposition(s, i, pat.Preposition)
			if !prepOK {
				continue
			}

			conf := collocationRelaxedConf
			// Dependency support: the preposition attaches to this verb
			// (mo/op in the TIGER scheme, obl/case chains in UD).
			if prep.Dep == "mo" || prep.Dep == "op" || prep.Dep == "case" || prep.Dep == "mnr" {
				conf = collocationConf
			}

			id := "verb-preposition-collocation"
			if pat.Reflexive {
				id = "reflexive-verb-preposition"
			}
			first := tok
			if pat.Reflexive && reflTok.Start < first.Start {
				first = reflTok
			}
			det := detection(id, first, prep, conf, map[string]any{
				"pattern":     pat.Pattern,
				"verb":        tok.Lemma,
				"preposition": pat.Preposition,
				"reflexive":   fmt.Sprintf("%t", pat.Reflexive),
			})
			det.InstanceID = fmt.Sprintf("%s:%s:%d", id, pat.Pattern, tok.Index)
			out = append(out, det)
			matched = true
			break
		}

		// A reflexive verb without a dictionary preposition still earns a
		// reflexive-verb detection, but never both for the same verb, so
		// the same construct is not double counted.
		if !matched && refl {
			det := detection("reflexive-verb", tok, reflTok, reflexiveConf, map[string]any{
				"verb":      tok.Lemma,
				"reflexive": reflTok.Text,
			})
			det.InstanceID = fmt.Sprintf("reflexive-verb:%d", tok.Index)
			out = append(out, det)
		}
	}
	return out
}

// findReflexive looks near the verb for its reflexive pronoun.
func findReflexive(s types.Sentence, i int) (bool, types.Token) {
	lo, hi := i-2, i+2
	for j := lo; j <= hi; j++ {
		if j < 0 || j >= len(s.Tokens) || j == i {
			continue
		}
		tok := s.Tokens[j]
		if tok.POS != "PRON" {
			continue
		}
		if tok.Morph["Reflex"] == "Yes" || (reflexivePronouns[tok.Text] && tok.Dep != "sb" && tok.Dep != "nsubj") {
			return true, tok
		}
	}
	return false, types.Token{}
}

// findGovernedPreposition scans forward from the verb for the given
// preposition lemma within the clause.
func findGovernedPreposition(s types.Sentence, i int, prep string) (types.Token, bool) {
	for j := i + 1; j < len(s.Tokens) && j <= i+collocationWindow; j++ {
		tok := s.Tokens[j]
		if isClauseBoundary(tok) {
			break
		}
		if tok.POS == "ADP" && tok.Lemma == prep {
			return tok, true
		}
	}
	return types.Token{}, false
}
