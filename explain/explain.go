// Package explain turns a finalized detection into a context-sensitive,
// human-readable explanation. Only the categories whose generic catalog text
// is too vague in context (case, tense, mood, voice/passive) get the full
// treatment; everything else keeps its catalog explanation.
package explain

import (
	"fmt"

	"go-grammatik/catalog"
	"go-grammatik/types"
)

// Enhance returns the best explanation for the detection in the context of
// its sentence. It never fails: the worst case is the generic catalog text.
func Enhance(s types.Sentence, det types.Detection) string {
	switch det.Point.Category {
	case types.CatCase:
		return caseExplanation(s, det)
	case types.CatTense:
		return tenseExplanation(det)
	case types.CatMood:
		return moodExplanation(det)
	case types.CatVoice, types.CatPassive:
		return voiceExplanation(det)
	}
	if det.Explanation != "" {
		return det.Explanation
	}
	return det.Point.Explanation
}

func detailString(det types.Detection, key string) string {
	if det.Details == nil {
		return ""
	}
	if v, ok := det.Details[key].(string); ok {
		return v
	}
	return ""
}

func caseExplanation(s types.Sentence, det types.Detection) string {
	word := detailString(det, "word")

	// A registered context variant keyed by the semantic role wins.
	if role := detailString(det, "role"); role != "" {
		if v := catalog.ContextVariant(det.Point.ID, role); v != "" {
			if prep := detailString(det, "preposition"); prep != "" {
				return fmt.Sprintf("%s Here: \"%s\" after \"%s\".", v, word, prep)
			}
			if word != "" {
				return fmt.Sprintf("%s Here: \"%s\".", v, word)
			}
			return v
		}
	}

	// Otherwise name the governor found near the span.
	if prep := detailString(det, "preposition"); prep != "" {
		return fmt.Sprintf("\"%s\" is %s because the preposition \"%s\" requires that case.",
			word, det.Point.Name, prep)
	}
	if verb := governingVerb(s, det); verb != "" {
		return fmt.Sprintf("\"%s\" is %s, governed by the verb \"%s\".",
			word, det.Point.Name, verb)
	}
	return det.Point.Explanation
}

// governingVerb scans a small window around the span for the nearest verb.
func governingVerb(s types.Sentence, det types.Detection) string {
	const window = 3
	var spanIdx int = -1
	for i, tok := range s.Tokens {
		if tok.Start >= det.Start && tok.End <= det.End {
			spanIdx = i
			break
		}
	}
	if spanIdx < 0 {
		return ""
	}
	for d := 1; d <= window; d++ {
		for _, j := range []int{spanIdx - d, spanIdx + d} {
			if j < 0 || j >= len(s.Tokens) {
				continue
			}
			if s.Tokens[j].POS == "VERB" || s.Tokens[j].POS == "AUX" {
				return s.Tokens[j].Text
			}
		}
	}
	return ""
}

func tenseExplanation(det types.Detection) string {
	aux := detailString(det, "auxiliary")
	part := detailString(det, "participle")
	inf := detailString(det, "infinitive")
	verb := detailString(det, "verb")
	switch {
	case aux != "" && part != "":
		return fmt.Sprintf("%s: auxiliary \"%s\" with past participle \"%s\".", det.Point.Name, aux, part)
	case aux != "" && inf != "":
		return fmt.Sprintf("%s: \"%s\" with the infinitive \"%s\".", det.Point.Name, aux, inf)
	case verb != "":
		return fmt.Sprintf("%s: \"%s\".", det.Point.Name, verb)
	}
	return det.Point.Explanation
}

func moodExplanation(det types.Detection) string {
	trigger := detailString(det, "trigger")
	if inf := detailString(det, "infinitive"); trigger != "" && inf != "" {
		return fmt.Sprintf("%s: \"%s %s\" expresses a hypothetical.", det.Point.Name, trigger, inf)
	}
	if trigger != "" {
		return fmt.Sprintf("%s: \"%s\".", det.Point.Name, trigger)
	}
	return det.Point.Explanation
}

func voiceExplanation(det types.Detection) string {
	aux := detailString(det, "auxiliary")
	part := detailString(det, "participle")
	agent := detailString(det, "agent")
	switch {
	case aux != "" && part != "" && agent != "":
		return fmt.Sprintf("%s: \"%s ... %s\", the agent is \"%s\".", det.Point.Name, aux, part, agent)
	case aux != "" && part != "":
		return fmt.Sprintf("%s: \"%s ... %s\".", det.Point.Name, aux, part)
	}
	return det.Point.Explanation
}
