package detectors

import (
	"fmt"
	"strings"

	"go-grammatik/morph"
	"go-grammatik/types"
)

const (
	separableSplitConf    = 0.94 // verb plus detached particle found
	separableAttachedConf = 0.85 // known separable lemma, prefix still attached
)

// SeparableVerbDetector finds separable verbs both split across the clause
// ("Ich rufe dich an.") and with the prefix attached ("Du musst mich
// anrufen.").
type SeparableVerbDetector struct{}

func (SeparableVerbDetector) Name() string { return "separable-verb" }

func (d SeparableVerbDetector) Detect(s types.Sentence) []types.Detection {
	var out []types.Detection
	for i, tok := range s.Tokens {
		if tok.POS != "VERB" && tok.POS != "AUX" {
			continue
		}

		if morph.IsFiniteVerb(tok) {
			if particle, ok := findParticle(s, i); ok {
				prefix := particle.Text
				stem := tok.Text
				lemma := fullSeparableLemma(prefix, tok.Lemma)
				det := detection("separable-verb", tok, particle, separableSplitConf, map[string]any{
					"prefix": prefix,
					"stem":   stem,
					"form":   prefix + "…" + stem, // signals the split
					"lemma":  lemma,
					"split":  "true",
				})
				det.InstanceID = fmt.Sprintf("separable-verb:%s:%d", lemma, tok.Index)
				out = append(out, det)
				continue
			}
		}

		// Attached form: infinitives, participles, subordinate clauses.
		if lemma, prefix, ok := attachedSeparable(tok); ok {
			det := detection("separable-verb", tok, tok, separableAttachedConf, map[string]any{
				"prefix": prefix,
				"stem":   strings.TrimPrefix(lemma, prefix),
				"lemma":  lemma,
				"split":  "false",
			})
			det.InstanceID = fmt.Sprintf("separable-verb:%s:%d", lemma, tok.Index)
			out = append(out, det)
		}
	}
	return out
}

// findParticle scans the rest of the clause for the detached prefix particle
// belonging to the verb at index i.
func findParticle(s types.Sentence, i int) (types.Token, bool) {
	for j := i + 1; j < len(s.Tokens); j++ {
		tok := s.Tokens[j]
		if tok.POS == "PUNCT" && tok.Text != "," {
			break
		}
		// spaCy tags detached prefixes PTKVZ with dep compound:prt (svp in
		// the older scheme).
		if tok.Tag == "PTKVZ" || tok.Dep == "compound:prt" || tok.Dep == "svp" {
			return tok, true
		}
		// Relaxed fallback when the parser missed the particle tag: a bare
		// particle whose text is a known prefix and which ends the clause.
		if tok.POS == "PART" && isSeparablePrefix(tok.Text) && j == len(s.Tokens)-1 {
			return tok, true
		}
		if tok.POS == "ADP" && isSeparablePrefix(tok.Text) && (j == len(s.Tokens)-1 || isPunct(s.Tokens[j+1])) {
			return tok, true
		}
	}
	return types.Token{}, false
}

// attachedSeparable reports whether the token is a known separable verb with
// the prefix still attached, returning the lemma and prefix.
func attachedSeparable(tok types.Token) (lemma, prefix string, ok bool) {
	lemma = strings.ToLower(tok.Lemma)
	if !separableVerbLemmas[lemma] {
		return "", "", false
	}
	for _, p := range separablePrefixes {
		if strings.HasPrefix(lemma, p) && len(lemma) > len(p) {
			return lemma, p, true
		}
	}
	return "", "", false
}

// fullSeparableLemma reassembles prefix + stem lemma. Some models already
// lemmatize the split verb to the full form (anrufen), others to the bare
// stem (rufen).
func fullSeparableLemma(prefix, stemLemma string) string {
	stemLemma = strings.ToLower(stemLemma)
	prefix = strings.ToLower(prefix)
	if strings.HasPrefix(stemLemma, prefix) && separableVerbLemmas[stemLemma] {
		return stemLemma
	}
	return prefix + stemLemma
}

func isSeparablePrefix(text string) bool {
	text = strings.ToLower(text)
	for _, p := range separablePrefixes {
		if text == p {
			return true
		}
	}
	return false
}
