package detectors

import (
	"fmt"

	"go-grammatik/morph"
	"go-grammatik/types"
)

const subordinateClauseConf = 0.90

// WordOrderDetector recognizes subordinate clauses: a subordinating
// conjunction whose finite verb has moved to the clause end.
type WordOrderDetector struct{}

func (WordOrderDetector) Name() string { return "word-order" }

func (d WordOrderDetector) Detect(s types.Sentence) []types.Detection {
	var out []types.Detection
	for i, tok := range s.Tokens {
		if !subordinatingConjunctions[tok.Lemma] {
			continue
		}
		// während/seit/bis double as prepositions; only the conjunction
		// reading opens a verb-final clause.
		if tok.POS == "ADP" || tok.POS == "DET" {
			continue
		}

		// The clause runs from the conjunction to the next clause-final
		// punctuation; its finite verb must be the last verb in that range.
		finalVerb, ok := clauseFinalVerb(s, i)
		if !ok {
			continue
		}
		det := detection("subordinate-clause", tok, finalVerb, subordinateClauseConf, map[string]any{
			"conjunction": tok.Lemma,
			"finalVerb":   finalVerb.Text,
		})
		det.InstanceID = fmt.Sprintf("subordinate-clause:%d", tok.Index)
		out = append(out, det)
	}
	return out
}

// clauseFinalVerb returns the last finite verb before the end of the clause
// opened at index i, but only if it actually sits in clause-final position
// (no nouns or verbs after it before the boundary).
func clauseFinalVerb(s types.Sentence, i int) (types.Token, bool) {
	lastVerb := -1
	end := len(s.Tokens)
	for j := i + 1; j < len(s.Tokens); j++ {
		tok := s.Tokens[j]
		if tok.POS == "PUNCT" {
			end = j
			break
		}
		if morph.IsFiniteVerb(tok) {
			lastVerb = j
		}
	}
	if lastVerb < 0 {
		return types.Token{}, false
	}
	// Verb-final means nothing but particles/punctuation may follow it.
	for j := lastVerb + 1; j < end; j++ {
		switch s.Tokens[j].POS {
		case "PART", "PUNCT":
		default:
			return types.Token{}, false
		}
	}
	return s.Tokens[lastVerb], true
}
