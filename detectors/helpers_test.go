package detectors

import (
	"strings"

	"go-grammatik/types"
)

// tokSpec is shorthand for building spaCy-shaped fixtures.
type tokSpec struct {
	text  string
	lemma string
	pos   string
	tag   string
	dep   string
	morph map[string]string
}

// buildSentence assembles a sentence from token specs, joining with single
// spaces (none before punctuation) and computing character offsets the way
// the parser client would.
func buildSentence(specs ...tokSpec) types.Sentence {
	var b strings.Builder
	var tokens []types.Token
	for i, sp := range specs {
		if i > 0 && sp.pos != "PUNCT" {
			b.WriteString(" ")
		}
		start := b.Len()
		b.WriteString(sp.text)
		morph := sp.morph
		if morph == nil {
			morph = map[string]string{}
		}
		tokens = append(tokens, types.Token{
			Text:  sp.text,
			Lemma: sp.lemma,
			POS:   sp.pos,
			Tag:   sp.tag,
			Dep:   sp.dep,
			Morph: morph,
			Index: i,
			Start: start,
			End:   start + len(sp.text),
		})
	}
	return types.Sentence{Text: b.String(), Tokens: tokens}
}

// spanText returns the sentence text a detection covers.
func spanText(s types.Sentence, d types.Detection) string {
	return s.Slice(d.Start, d.End)
}

// byPointID filters detections down to one grammar point.
func byPointID(dets []types.Detection, id string) []types.Detection {
	var out []types.Detection
	for _, d := range dets {
		if d.Point.ID == id {
			out = append(out, d)
		}
	}
	return out
}
