package detectors

import (
	"fmt"
	"strings"

	"go-grammatik/morph"
	"go-grammatik/types"
)

const (
	participialConf         = 0.86
	extendedParticipialConf = 0.88

	// Max tokens between the determiner and its noun in an extended
	// attribute ("die von der Regierung beschlossenen Maßnahmen").
	participialWindow = 7
)

// ParticipialDetector finds attributive participles before a noun, simple
// ("die geöffnete Tür") and extended with their own dependents.
type ParticipialDetector struct{}

func (ParticipialDetector) Name() string { return "participial-attribute" }

func (d ParticipialDetector) Detect(s types.Sentence) []types.Detection {
	var out []types.Detection
	for i, tok := range s.Tokens {
		if tok.POS != "DET" {
			continue
		}

		// Walk from the determiner to the noun it introduces, collecting
		// any participle in between.
		partIdx, nounIdx := -1, -1
		extras := 0
		for j := i + 1; j < len(s.Tokens) && j <= i+participialWindow; j++ {
			t := s.Tokens[j]
			if isClauseBoundary(t) {
				break
			}
			if t.POS == "NOUN" || t.POS == "PROPN" {
				// Before the participle a noun is part of the extension
				// ("die von der Regierung beschlossenen Maßnahmen"); after
				// it, it is the head noun the attribute modifies.
				if partIdx >= 0 {
					nounIdx = j
					break
				}
				extras++
				continue
			}
			if t.POS == "ADJ" && morph.VerbForm(t) == morph.Participle {
				partIdx = j
				continue
			}
			// Attributive participles are often plain ADJA tags with a
			// ge-/-end surface; accept adjective tags derived from verbs.
			if t.POS == "ADJ" && looksLikeParticiple(t) {
				partIdx = j
				continue
			}
			if partIdx < 0 {
				extras++
			}
		}
		if partIdx < 0 || nounIdx < 0 {
			continue
		}

		id, conf := "participial-attribute", participialConf
		if extras > 0 {
			// Material between determiner and participle means the
			// attribute carries its own dependents.
			id, conf = "extended-participial-attribute", extendedParticipialConf
		}
		det := detection(id, tok, s.Tokens[nounIdx], conf, map[string]any{
			"participle": s.Tokens[partIdx].Text,
			"noun":       s.Tokens[nounIdx].Text,
		})
		det.InstanceID = fmt.Sprintf("%s:%d", id, i)
		out = append(out, det)
	}
	return out
}

// looksLikeParticiple is the surface-form fallback for adjectives whose
// participle feature the parser dropped: ge- prefix with -t/-en ending, or
// present-participle -end(e/en/er/es).
func looksLikeParticiple(tok types.Token) bool {
	w := strings.ToLower(tok.Text)
	if len(w) < 5 {
		return false
	}
	if strings.HasPrefix(w, "ge") {
		for _, suf := range []string{"te", "ten", "ter", "tes", "t", "ene", "enen", "ener", "enes", "en"} {
			if hasSuffix(w, suf) {
				return true
			}
		}
	}
	for _, suf := range []string{"ende", "enden", "ender", "endes", "end"} {
		if hasSuffix(w, suf) {
			return true
		}
	}
	return false
}

func hasSuffix(w, suf string) bool {
	return len(w) > len(suf) && w[len(w)-len(suf):] == suf
}
