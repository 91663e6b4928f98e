package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipialAttribute(t *testing.T) {
	// "die geöffnete Tür"
	s := buildSentence(
		tokSpec{text: "die", lemma: "der", pos: "DET", morph: map[string]string{"Case": "Nom"}},
		tokSpec{text: "geöffnete", lemma: "öffnen", pos: "ADJ", morph: map[string]string{"VerbForm": "Part"}},
		tokSpec{text: "Tür", lemma: "Tür", pos: "NOUN", morph: map[string]string{"Case": "Nom"}},
	)

	dets := ParticipialDetector{}.Detect(s)
	require.Len(t, dets, 1)
	d := dets[0]
	assert.Equal(t, "participial-attribute", d.Point.ID)
	assert.Equal(t, "die geöffnete Tür", spanText(s, d))
	assert.Equal(t, participialConf, d.Confidence)
	assert.Equal(t, "geöffnete", d.Details["participle"])
	assert.Equal(t, "Tür", d.Details["noun"])
}

func TestExtendedParticipialAttribute(t *testing.T) {
	// "die von der Regierung beschlossenen Maßnahmen"
	s := buildSentence(
		tokSpec{text: "die", lemma: "der", pos: "DET"},
		tokSpec{text: "von", lemma: "von", pos: "ADP"},
		tokSpec{text: "der", lemma: "der", pos: "DET", morph: map[string]string{"Case": "Dat"}},
		tokSpec{text: "Regierung", lemma: "Regierung", pos: "NOUN", morph: map[string]string{"Case": "Dat"}},
		tokSpec{text: "beschlossenen", lemma: "beschließen", pos: "ADJ", morph: map[string]string{"VerbForm": "Part"}},
		tokSpec{text: "Maßnahmen", lemma: "Maßnahme", pos: "NOUN", morph: map[string]string{"Case": "Acc"}},
	)

	dets := ParticipialDetector{}.Detect(s)
	extended := byPointID(dets, "extended-participial-attribute")
	require.Len(t, extended, 1)
	assert.Equal(t, "die von der Regierung beschlossenen Maßnahmen", spanText(s, extended[0]))
	assert.Equal(t, extendedParticipialConf, extended[0].Confidence)
}

func TestParticipialSurfaceFormFallback(t *testing.T) {
	// Parser dropped the VerbForm feature; the ge-...-te surface still counts.
	s := buildSentence(
		tokSpec{text: "das", lemma: "der", pos: "DET"},
		tokSpec{text: "gekochte", lemma: "kochen", pos: "ADJ"},
		tokSpec{text: "Ei", lemma: "Ei", pos: "NOUN"},
	)

	dets := ParticipialDetector{}.Detect(s)
	require.Len(t, dets, 1)
	assert.Equal(t, "participial-attribute", dets[0].Point.ID)
}

func TestPlainAdjectiveIsNotParticipial(t *testing.T) {
	s := buildSentence(
		tokSpec{text: "das", lemma: "der", pos: "DET"},
		tokSpec{text: "rote", lemma: "rot", pos: "ADJ"},
		tokSpec{text: "Auto", lemma: "Auto", pos: "NOUN"},
	)
	assert.Empty(t, ParticipialDetector{}.Detect(s))
}
