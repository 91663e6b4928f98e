package detectors

import (
	"go-grammatik/morph"
	"go-grammatik/types"
)

const articleConf = 0.95

// ArticleDetector tags definite, indefinite and negative articles. Simple on
// purpose: articles are unambiguous by lemma, and their case information is
// already the case detector's job.
type ArticleDetector struct{}

func (ArticleDetector) Name() string { return "article" }

func (d ArticleDetector) Detect(s types.Sentence) []types.Detection {
	var out []types.Detection
	for _, tok := range s.Tokens {
		if tok.POS != "DET" {
			continue
		}
		var id string
		switch tok.Lemma {
		case "der", "die", "das":
			id = "definite-article"
		case "ein", "eine":
			id = "indefinite-article"
		case "kein", "keine":
			id = "negative-article"
		default:
			continue
		}
		details := map[string]any{"word": tok.Text}
		if c := morph.Case(tok); c != morph.Unknown {
			details["case"] = c
		}
		out = append(out, detection(id, tok, tok, articleConf, details))
	}
	return out
}
