package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grammatik/types"
)

type e2eTok struct {
	text  string
	lemma string
	pos   string
	tag   string
	dep   string
	morph map[string]string
}

func e2eSentence(specs ...e2eTok) types.Sentence {
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
			Text: sp.text, Lemma: sp.lemma, POS: sp.pos, Tag: sp.tag, Dep: sp.dep,
			Morph: morph, Index: i, Start: start, End: start + len(sp.text),
		})
	}
	return types.Sentence{Text: b.String(), Tokens: tokens}
}

func findByID(res types.AnalysisResult, id string) []types.Detection {
	var out []types.Detection
	for _, d := range res.Detections {
		if d.Point.ID == id {
			out = append(out, d)
		}
	}
	return out
}

func TestAnalyzePresentTenseSentence(t *testing.T) {
	// "Ich bin Student."
	s := e2eSentence(
		e2eTok{text: "Ich", lemma: "ich", pos: "PRON", dep: "sb", morph: map[string]string{"Case": "Nom"}},
		e2eTok{text: "bin", lemma: "sein", pos: "AUX", morph: map[string]string{"VerbForm": "Fin", "Tense": "Pres", "Mood": "Ind"}},
		e2eTok{text: "Student", lemma: "Student", pos: "NOUN", morph: map[string]string{"Case": "Nom"}},
		e2eTok{text: ".", lemma: ".", pos: "PUNCT"},
	)

	res := Default().Analyze(s)
	present := findByID(res, "present-tense")
	require.NotEmpty(t, present)
	d := present[0]
	assert.Equal(t, "bin", s.Slice(d.Start, d.End))
	assert.Equal(t, types.A1, d.Point.Level)
	assert.NotEmpty(t, res.ByLevel[types.A1])
	assert.Positive(t, res.Summary.ByCategory[types.CatTense])
}

func TestAnalyzePassiveSentence(t *testing.T) {
	// "Das Buch wird gelesen."
	s := e2eSentence(
		e2eTok{text: "Das", lemma: "der", pos: "DET", morph: map[string]string{"Case": "Nom"}},
		e2eTok{text: "Buch", lemma: "Buch", pos: "NOUN", dep: "sb", morph: map[string]string{"Case": "Nom"}},
		e2eTok{text: "wird", lemma: "werden", pos: "AUX", morph: map[string]string{"VerbForm": "Fin", "Tense": "Pres", "Mood": "Ind"}},
		e2eTok{text: "gelesen", lemma: "lesen", pos: "VERB", morph: map[string]string{"VerbForm": "Part"}},
		e2eTok{text: ".", lemma: ".", pos: "PUNCT"},
	)

	res := Default().Analyze(s)
	passive := findByID(res, "dynamic-passive")
	require.NotEmpty(t, passive)
	span := s.Slice(passive[0].Start, passive[0].End)
	assert.Contains(t, span, "wird")
	assert.Contains(t, span, "gelesen")
	assert.Positive(t, res.Summary.ByCategory[types.CatPassive])

	// werden + participle must not surface as the future tense.
	assert.Empty(t, findByID(res, "future-1"))
}

func TestAnalyzeSeparableVerbSentence(t *testing.T) {
	// "Ich rufe dich an."
	s := e2eSentence(
		e2eTok{text: "Ich", lemma: "ich", pos: "PRON", dep: "sb", morph: map[string]string{"Case": "Nom"}},
		e2eTok{text: "rufe", lemma: "rufen", pos: "VERB", morph: map[string]string{"VerbForm": "Fin", "Tense": "Pres", "Mood": "Ind"}},
		e2eTok{text: "dich", lemma: "du", pos: "PRON", dep: "oa", morph: map[string]string{"Case": "Acc"}},
		e2eTok{text: "an", lemma: "an", pos: "PART", tag: "PTKVZ", dep: "compound:prt"},
		e2eTok{text: ".", lemma: ".", pos: "PUNCT"},
	)

	res := Default().Analyze(s)
	sep := findByID(res, "separable-verb")
	require.Len(t, sep, 1)
	span := s.Slice(sep[0].Start, sep[0].End)
	assert.Contains(t, span, "rufe")
	assert.Contains(t, span, "an")
	assert.Equal(t, "anrufen", sep[0].Details["lemma"])

	// The overlapping tense detection is kept alongside the preserved
	// separable verb rather than deduped against it.
	assert.NotEmpty(t, findByID(res, "present-tense"))
}

func TestAnalyzeSubordinateClauseSentence(t *testing.T) {
	// "Ich bleibe zu Hause, weil es regnet."
	s := e2eSentence(
		e2eTok{text: "Ich", lemma: "ich", pos: "PRON", dep: "sb", morph: map[string]string{"Case": "Nom"}},
		e2eTok{text: "bleibe", lemma: "bleiben", pos: "VERB", morph: map[string]string{"VerbForm": "Fin", "Tense": "Pres", "Mood": "Ind"}},
		e2eTok{text: "zu", lemma: "zu", pos: "ADP"},
		e2eTok{text: "Hause", lemma: "Haus", pos: "NOUN", morph: map[string]string{"Case": "Dat"}},
		e2eTok{text: ",", lemma: ",", pos: "PUNCT"},
		e2eTok{text: "weil", lemma: "weil", pos: "SCONJ"},
		e2eTok{text: "es", lemma: "es", pos: "PRON", dep: "sb", morph: map[string]string{"Case": "Nom"}},
		e2eTok{text: "regnet", lemma: "regnen", pos: "VERB", morph: map[string]string{"VerbForm": "Fin", "Tense": "Pres", "Mood": "Ind"}},
		e2eTok{text: ".", lemma: ".", pos: "PUNCT"},
	)

	res := Default().Analyze(s)
	sub := findByID(res, "subordinate-clause")
	require.Len(t, sub, 1)
	assert.Equal(t, "weil es regnet", s.Slice(sub[0].Start, sub[0].End))
}

func TestAnalyzeEmptyInput(t *testing.T) {
	res := Default().Analyze(types.Sentence{Text: ""})
	assert.Empty(t, res.Detections)
	assert.Equal(t, 0, res.Summary.Total)
	for _, lv := range types.Levels {
		assert.Equal(t, 0, res.Summary.ByLevel[lv])
	}
}

func TestAnalyzeReflexiveCollocationSentence(t *testing.T) {
	// "Ich interessiere mich für Musik." surfaces the collocation once, not
	// as a collocation plus an unrelated reflexive-verb duplicate.
	s := e2eSentence(
		e2eTok{text: "Ich", lemma: "ich", pos: "PRON", dep: "sb", morph: map[string]string{"Case": "Nom"}},
		e2eTok{text: "interessiere", lemma: "interessieren", pos: "VERB", morph: map[string]string{"VerbForm": "Fin", "Tense": "Pres", "Mood": "Ind"}},
		e2eTok{text: "mich", lemma: "ich", pos: "PRON", dep: "oa", morph: map[string]string{"Reflex": "Yes", "Case": "Acc"}},
		e2eTok{text: "für", lemma: "für", pos: "ADP", dep: "mo"},
		e2eTok{text: "Musik", lemma: "Musik", pos: "NOUN", dep: "nk", morph: map[string]string{"Case": "Acc"}},
		e2eTok{text: ".", lemma: ".", pos: "PUNCT"},
	)

	res := Default().Analyze(s)
	coll := findByID(res, "reflexive-verb-preposition")
	require.Len(t, coll, 1)
	assert.Equal(t, "sich interessieren für", coll[0].Details["pattern"])
	assert.Empty(t, findByID(res, "reflexive-verb"))
}

func TestAnalyzePropertiesHold(t *testing.T) {
	// A denser sentence to exercise the reconciler's invariants together.
	// "Das Buch wird von ihr gelesen."
	s := e2eSentence(
		e2eTok{text: "Das", lemma: "der", pos: "DET", morph: map[string]string{"Case": "Nom"}},
		e2eTok{text: "Buch", lemma: "Buch", pos: "NOUN", dep: "sb", morph: map[string]string{"Case": "Nom"}},
		e2eTok{text: "wird", lemma: "werden", pos: "AUX", morph: map[string]string{"VerbForm": "Fin", "Tense": "Pres", "Mood": "Ind"}},
		e2eTok{text: "von", lemma: "von", pos: "ADP"},
		e2eTok{text: "ihr", lemma: "sie", pos: "PRON", morph: map[string]string{"Case": "Dat"}},
		e2eTok{text: "gelesen", lemma: "lesen", pos: "VERB", morph: map[string]string{"VerbForm": "Part"}},
		e2eTok{text: ".", lemma: ".", pos: "PUNCT"},
	)

	res := Default().Analyze(s)
	require.NotEmpty(t, res.Detections)

	cfg := DefaultConfig()
	seen := map[[2]int]bool{}
	for i, d := range res.Detections {
		assert.GreaterOrEqual(t, d.Confidence, cfg.ConfidenceThreshold)
		if i > 0 {
			assert.LessOrEqual(t, res.Detections[i-1].Start, d.Start)
		}
		if !cfg.Preserved[d.Point.Category] {
			key := [2]int{d.Start, d.End}
			assert.False(t, seen[key], "duplicate exact span %v", key)
			seen[key] = true
		}
	}

	// Re-partitioning the final list reproduces the summary counts.
	recount := map[types.Level]int{}
	for _, d := range res.Detections {
		if d.Point.Level.Order() >= 0 {
			recount[d.Point.Level]++
		}
	}
	for _, lv := range types.Levels {
		assert.Equal(t, res.Summary.ByLevel[lv], recount[lv])
	}
}
