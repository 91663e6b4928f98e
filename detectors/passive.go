package detectors

import (
	"fmt"

	"go-grammatik/morph"
	"go-grammatik/types"
)

const (
	passiveWindow      = 8
	dynamicPassiveConf = 0.92
	agentPassiveConf   = 0.94 // the agent phrase removes remaining ambiguity
	statalPassiveConf  = 0.78 // sein + participle is easy to confuse with the perfect
)

// PassiveDetector recognizes the dynamic passive (werden + participle), the
// statal passive (sein + participle) and the agented variant with a von or
// durch phrase.
type PassiveDetector struct{}

func (PassiveDetector) Name() string { return "passive" }

func (d PassiveDetector) Detect(s types.Sentence) []types.Detection {
	var out []types.Detection
	for i, tok := range s.Tokens {
		if !morph.IsFiniteVerb(tok) {
			continue
		}
		if tok.Lemma != "werden" && tok.Lemma != "sein" {
			continue
		}

		part, agent, agentTok, found := scanPassiveClause(s, i)
		if !found {
			continue
		}

		var det types.Detection
		switch tok.Lemma {
		case "werden":
			if agent != "" {
				det = detection("passive-with-agent", tok, part, agentPassiveConf, map[string]any{
					"auxiliary":  tok.Text,
					"participle": part.Text,
					"agent":      agent,
				})
				if agentTok.End > det.End {
					det.End = agentTok.End
				}
			} else {
				det = detection("dynamic-passive", tok, part, dynamicPassiveConf, map[string]any{
					"auxiliary":  tok.Text,
					"participle": part.Text,
				})
			}
		case "sein":
			// sein + participle of a sein-perfect verb is the perfect
			// tense ("ist gekommen"), not a statal passive.
			if seinPerfectVerbs[part.Lemma] {
				continue
			}
			det = detection("statal-passive", tok, part, statalPassiveConf, map[string]any{
				"auxiliary":  tok.Text,
				"participle": part.Text,
			})
		}
		det.InstanceID = fmt.Sprintf("%s:%d", det.Point.ID, tok.Index)
		out = append(out, det)
	}
	return out
}

// scanPassiveClause looks ahead of the auxiliary for a participle and, along
// the way, for a von/durch agent phrase. In German the agent usually sits
// between the auxiliary and the participle ("wird von ihr gelesen"), but a
// trailing phrase ("gelesen von ihr") also counts.
func scanPassiveClause(s types.Sentence, i int) (part types.Token, agent string, agentTok types.Token, found bool) {
	for j := i + 1; j < len(s.Tokens) && j <= i+passiveWindow; j++ {
		tok := s.Tokens[j]
		if isClauseBoundary(tok) {
			break
		}
		if tok.POS == "ADP" && (tok.Lemma == "von" || tok.Lemma == "durch") {
			// The agent is the next noun phrase after the preposition.
			for k := j + 1; k < len(s.Tokens) && k <= j+3; k++ {
				nt := s.Tokens[k]
				if nt.POS == "NOUN" || nt.POS == "PROPN" || nt.POS == "PRON" {
					agent = nt.Text
					agentTok = nt
					break
				}
			}
		}
		if morph.IsParticiple(tok) && tok.POS != "ADJ" && !found {
			part = tok
			found = true
			// Keep scanning: the agent may trail the participle.
		}
	}
	return part, agent, agentTok, found
}
