package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModalWithInfinitive(t *testing.T) {
	// "Ich kann gut schwimmen."
	s := buildSentence(
		tokSpec{text: "Ich", lemma: "ich", pos: "PRON", morph: map[string]string{"Case": "Nom"}},
		tokSpec{text: "kann", lemma: "können", pos: "VERB", morph: map[string]string{"VerbForm": "Fin", "Tense": "Pres"}},
		tokSpec{text: "gut", lemma: "gut", pos: "ADV"},
		tokSpec{text: "schwimmen", lemma: "schwimmen", pos: "VERB", morph: map[string]string{"VerbForm": "Inf"}},
		tokSpec{text: ".", lemma: ".", pos: "PUNCT"},
	)

	dets := ModalVerbDetector{}.Detect(s)
	require.Len(t, dets, 1)
	d := dets[0]
	assert.Equal(t, "modal-verb", d.Point.ID)
	assert.Equal(t, "kann gut schwimmen", spanText(s, d))
	assert.Equal(t, modalConf, d.Confidence)
	assert.Equal(t, "schwimmen", d.Details["infinitive"])
	assert.NotEmpty(t, d.InstanceID)
}

func TestModalBare(t *testing.T) {
	// "Ich kann das." has no infinitive in sight.
	s := buildSentence(
		tokSpec{text: "Ich", lemma: "ich", pos: "PRON"},
		tokSpec{text: "kann", lemma: "können", pos: "VERB", morph: map[string]string{"VerbForm": "Fin", "Tense": "Pres"}},
		tokSpec{text: "das", lemma: "der", pos: "PRON", morph: map[string]string{"Case": "Acc"}},
		tokSpec{text: ".", lemma: ".", pos: "PUNCT"},
	)

	dets := ModalVerbDetector{}.Detect(s)
	require.Len(t, dets, 1)
	assert.Equal(t, modalBareConf, dets[0].Confidence)
	assert.Equal(t, "kann", spanText(s, dets[0]))
}

func TestModalIgnoresNonModalVerbs(t *testing.T) {
	s := buildSentence(
		tokSpec{text: "Ich", lemma: "ich", pos: "PRON"},
		tokSpec{text: "versuche", lemma: "versuchen", pos: "VERB", morph: map[string]string{"VerbForm": "Fin", "Tense": "Pres"}},
		tokSpec{text: "zu", lemma: "zu", pos: "PART"},
		tokSpec{text: "schlafen", lemma: "schlafen", pos: "VERB", morph: map[string]string{"VerbForm": "Inf"}},
		tokSpec{text: ".", lemma: ".", pos: "PUNCT"},
	)
	assert.Empty(t, ModalVerbDetector{}.Detect(s))
}
