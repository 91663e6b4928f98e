package detectors

import (
	"fmt"

	"go-grammatik/morph"
	"go-grammatik/types"
)

const (
	wuerdeConditionalConf = 0.93
	konjunktivConf        = 0.90 // subjunctive morphology present
	imperativeConf        = 0.88
)

// ConditionalDetector covers the mood phenomena: würde + infinitive,
// synthetic Konjunktiv II forms (wäre, hätte, käme) and the imperative.
type ConditionalDetector struct{}

func (ConditionalDetector) Name() string { return "conditional" }

func (d ConditionalDetector) Detect(s types.Sentence) []types.Detection {
	var out []types.Detection
	for i, tok := range s.Tokens {
		if !morph.IsFiniteVerb(tok) {
			continue
		}

		// würde + infinitive is its own grammar point; only the subjunctive
		// of werden qualifies.
		if tok.Lemma == "werden" && morph.Mood(tok) == morph.Subjunctive {
			if inf, _, ok := findInfinitive(s, i); ok {
				det := detection("wuerde-conditional", tok, inf, wuerdeConditionalConf, map[string]any{
					"trigger":    tok.Text,
					"infinitive": inf.Text,
				})
				det.InstanceID = fmt.Sprintf("wuerde-conditional:%d", tok.Index)
				out = append(out, det)
				continue
			}
		}

		switch morph.Mood(tok) {
		case morph.Subjunctive:
			out = append(out, detection("konjunktiv-2", tok, tok, konjunktivConf, map[string]any{
				"trigger": tok.Text,
			}))
		case morph.Imperative:
			out = append(out, detection("imperative-mood", tok, tok, imperativeConf, map[string]any{
				"trigger": tok.Text,
			}))
		}
	}
	return out
}
