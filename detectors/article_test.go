package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grammatik/morph"
)

func TestArticles(t *testing.T) {
	// "Der Mann hat eine Katze und keinen Hund."
	s := buildSentence(
		tokSpec{text: "Der", lemma: "der", pos: "DET", morph: map[string]string{"Case": "Nom"}},
		tokSpec{text: "Mann", lemma: "Mann", pos: "NOUN", morph: map[string]string{"Case": "Nom"}},
		tokSpec{text: "hat", lemma: "haben", pos: "VERB", morph: map[string]string{"VerbForm": "Fin", "Tense": "Pres"}},
		tokSpec{text: "eine", lemma: "ein", pos: "DET", morph: map[string]string{"Case": "Acc"}},
		tokSpec{text: "Katze", lemma: "Katze", pos: "NOUN", morph: map[string]string{"Case": "Acc"}},
		tokSpec{text: "und", lemma: "und", pos: "CCONJ"},
		tokSpec{text: "keinen", lemma: "kein", pos: "DET", morph: map[string]string{"Case": "Acc"}},
		tokSpec{text: "Hund", lemma: "Hund", pos: "NOUN", morph: map[string]string{"Case": "Acc"}},
		tokSpec{text: ".", lemma: ".", pos: "PUNCT"},
	)

	dets := ArticleDetector{}.Detect(s)
	require.Len(t, dets, 3)

	def := byPointID(dets, "definite-article")
	require.Len(t, def, 1)
	assert.Equal(t, "Der", spanText(s, def[0]))
	assert.Equal(t, morph.Nominative, def[0].Details["case"])

	indef := byPointID(dets, "indefinite-article")
	require.Len(t, indef, 1)
	assert.Equal(t, "eine", spanText(s, indef[0]))

	neg := byPointID(dets, "negative-article")
	require.Len(t, neg, 1)
	assert.Equal(t, "keinen", spanText(s, neg[0]))
	assert.Equal(t, articleConf, neg[0].Confidence)
}

func TestNonArticleDeterminerSkipped(t *testing.T) {
	s := buildSentence(
		tokSpec{text: "Dieser", lemma: "dieser", pos: "DET", morph: map[string]string{"Case": "Nom"}},
		tokSpec{text: "Weg", lemma: "Weg", pos: "NOUN", morph: map[string]string{"Case": "Nom"}},
	)
	assert.Empty(t, ArticleDetector{}.Detect(s))
}
