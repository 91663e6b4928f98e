package detectors

import (
	"fmt"

	"go-grammatik/morph"
	"go-grammatik/types"
)

const (
	modalWindow   = 10 // infinitives sit clause-finally, far from the modal
	modalConf     = 0.93
	modalBareConf = 0.85 // modal without a visible infinitive ("Ich kann das.")
)

// ModalVerbDetector pairs a finite modal with its clause-final infinitive.
type ModalVerbDetector struct{}

func (ModalVerbDetector) Name() string { return "modal-verb" }

func (d ModalVerbDetector) Detect(s types.Sentence) []types.Detection {
	var out []types.Detection
	for i, tok := range s.Tokens {
		if !modalLemmas[tok.Lemma] || !morph.IsFiniteVerb(tok) {
			continue
		}
		inf, found := types.Token{}, false
		for j := i + 1; j < len(s.Tokens) && j <= i+modalWindow; j++ {
			t := s.Tokens[j]
			if isClauseBoundary(t) {
				break
			}
			if morph.IsInfinitive(t) {
				inf, found = t, true
				// Keep scanning: with stacked verbs the governed
				// infinitive is the last one in the clause.
			}
		}
		if found {
			det := detection("modal-verb", tok, inf, modalConf, map[string]any{
				"modal":      tok.Text,
				"infinitive": inf.Text,
			})
			det.InstanceID = fmt.Sprintf("modal-verb:%d", tok.Index)
			out = append(out, det)
		} else {
			// Elliptical modal use still counts, with lower certainty.
			out = append(out, detection("modal-verb", tok, tok, modalBareConf, map[string]any{
				"modal": tok.Text,
			}))
		}
	}
	return out
}
