package detectors

import (
	"fmt"

	"go-grammatik/morph"
	"go-grammatik/types"
)

const (
	// How many tokens ahead an auxiliary may look for its participle or
	// infinitive. German places them clause-finally, so the window is
	// generous but still stops at clause boundaries.
	tenseWindow = 8

	tenseFeatureConf   = 0.95 // tense read directly off morphology
	tensePairBaseConf  = 0.97 // auxiliary + participle right next to each other
	tensePairDecay     = 0.01 // per token of distance between aux and participle
	tensePairFloorConf = 0.90
)

// TenseDetector recognizes present, simple past, present perfect, past
// perfect and Futur I.
type TenseDetector struct{}

func (TenseDetector) Name() string { return "tense" }

func (d TenseDetector) Detect(s types.Sentence) []types.Detection {
	var out []types.Detection

	// Auxiliaries consumed by a compound tense must not also surface as
	// plain present/past detections.
	consumed := make(map[int]bool)

	for i, tok := range s.Tokens {
		if !morph.IsFiniteVerb(tok) {
			continue
		}

		switch tok.Lemma {
		case "haben", "sein":
			if part, dist, ok := findParticiple(s, i); ok {
				// sein only builds the perfect for verbs of motion/change;
				// "ist geschlossen" is the statal passive, not a tense.
				if tok.Lemma == "sein" && !seinPerfectVerbs[part.Lemma] {
					break
				}
				id := "present-perfect"
				if morph.Tense(tok) == morph.Past {
					id = "past-perfect"
				}
				det := detection(id, tok, part, pairConfidence(dist), map[string]any{
					"auxiliary":  tok.Text,
					"participle": part.Text,
					"verb":       part.Lemma,
				})
				det.InstanceID = fmt.Sprintf("%s:%d", id, tok.Index)
				out = append(out, det)
				consumed[i] = true
				consumed[part.Index] = true
			}
		case "werden":
			if inf, dist, ok := findInfinitive(s, i); ok {
				det := detection("future-1", tok, inf, pairConfidence(dist), map[string]any{
					"auxiliary":  tok.Text,
					"infinitive": inf.Text,
					"verb":       inf.Lemma,
				})
				det.InstanceID = fmt.Sprintf("future-1:%d", tok.Index)
				out = append(out, det)
				consumed[i] = true
				consumed[inf.Index] = true
			}
			// werden + participle is the passive detector's territory.
			if _, _, ok := findParticiple(s, i); ok {
				consumed[i] = true
			}
		}
	}

	for i, tok := range s.Tokens {
		if consumed[i] || !morph.IsFiniteVerb(tok) {
			continue
		}
		// Subjunctive forms (wäre, hätte, käme) carry past morphology but
		// are not the simple past; the mood detectors claim those.
		if morph.Mood(tok) == morph.Subjunctive {
			continue
		}
		switch morph.Tense(tok) {
		case morph.Present:
			out = append(out, detection("present-tense", tok, tok, tenseFeatureConf, map[string]any{
				"verb": tok.Text,
			}))
		case morph.Past:
			out = append(out, detection("simple-past", tok, tok, tenseFeatureConf, map[string]any{
				"verb": tok.Text,
			}))
		}
	}

	return out
}

func pairConfidence(dist int) float64 {
	conf := tensePairBaseConf - float64(dist-1)*tensePairDecay
	if conf < tensePairFloorConf {
		conf = tensePairFloorConf
	}
	return conf
}

// findParticiple scans forward from the auxiliary at index i for a
// participle-form verb, skipping adverbs, objects and other filler but
// stopping at clause boundaries. Returns the participle and its distance.
func findParticiple(s types.Sentence, i int) (types.Token, int, bool) {
	for j := i + 1; j < len(s.Tokens) && j <= i+tenseWindow; j++ {
		tok := s.Tokens[j]
		if isClauseBoundary(tok) {
			break
		}
		if morph.IsParticiple(tok) && tok.POS != "ADJ" {
			return tok, j - i, true
		}
	}
	return types.Token{}, 0, false
}

// findInfinitive scans forward from index i for an infinitive-form verb
// within the same clause.
func findInfinitive(s types.Sentence, i int) (types.Token, int, bool) {
	for j := i + 1; j < len(s.Tokens) && j <= i+tenseWindow; j++ {
		tok := s.Tokens[j]
		if isClauseBoundary(tok) {
			break
		}
		if morph.IsInfinitive(tok) {
			return tok, j - i, true
		}
	}
	return types.Token{}, 0, false
}
