// Package morph normalizes the heterogeneous morphological feature values
// emitted by the spaCy German models into one canonical vocabulary. Every
// accessor tolerates missing features and returns Unknown rather than
// guessing.
package morph

import (
	"strings"

	"go-grammatik/types"
)

// Unknown is the sentinel returned when a token does not carry the requested
// feature.
const Unknown = ""

// Canonical feature values.
const (
	Nominative = "nominative"
	Accusative = "accusative"
	Dative     = "dative"
	Genitive   = "genitive"

	Masculine = "masculine"
	Feminine  = "feminine"
	Neuter    = "neuter"

	Singular = "singular"
	Plural   = "plural"

	Present = "present"
	Past    = "past"

	Indicative  = "indicative"
	Imperative  = "imperative"
	Subjunctive = "subjunctive"

	Finite     = "finite"
	Infinitive = "infinitive"
	Participle = "participle"

	ActiveVoice  = "active"
	PassiveVoice = "passive"
)

// normalizers maps a UD feature name to the translation table for its values.
// Values not present in a table pass through lowercased, so an unexpected
// parser value degrades to something readable instead of vanishing.
var normalizers = map[string]map[string]string{
	"Case": {
		"Nom": Nominative, "Acc": Accusative, "Dat": Dative, "Gen": Genitive,
	},
	"Gender": {
		"Masc": Masculine, "Fem": Feminine, "Neut": Neuter,
	},
	"Number": {
		"Sing": Singular, "Plur": Plural,
	},
	"Tense": {
		"Pres": Present, "Past": Past,
	},
	"Mood": {
		"Ind": Indicative, "Imp": Imperative, "Sub": Subjunctive,
	},
	"VerbForm": {
		"Fin": Finite, "Inf": Infinitive, "Part": Participle,
	},
	"Voice": {
		"Act": ActiveVoice, "Pass": PassiveVoice,
	},
	"Person": {}, // "1"/"2"/"3" pass through as-is
}

// Feature returns the normalized value of the named UD feature, or Unknown.
func Feature(tok types.Token, name string) string {
	if tok.Morph == nil {
		return Unknown
	}
	raw, ok := tok.Morph[name]
	if !ok || raw == "" {
		return Unknown
	}
	if table, ok := normalizers[name]; ok {
		if v, ok := table[raw]; ok {
			return v
		}
	}
	return strings.ToLower(raw)
}

func Case(tok types.Token) string     { return Feature(tok, "Case") }
func Gender(tok types.Token) string   { return Feature(tok, "Gender") }
func Number(tok types.Token) string   { return Feature(tok, "Number") }
func Tense(tok types.Token) string    { return Feature(tok, "Tense") }
func Mood(tok types.Token) string     { return Feature(tok, "Mood") }
func Person(tok types.Token) string   { return Feature(tok, "Person") }
func VerbForm(tok types.Token) string { return Feature(tok, "VerbForm") }
func Voice(tok types.Token) string    { return Feature(tok, "Voice") }

// IsFiniteVerb reports whether the token is a finite verb form. AUX counts:
// "bin" in "Ich bin Student" is tagged AUX by spaCy but is the finite verb
// of the sentence.
func IsFiniteVerb(tok types.Token) bool {
	if tok.POS != "VERB" && tok.POS != "AUX" {
		return false
	}
	return VerbForm(tok) == Finite
}

// IsParticiple reports whether the token is a participle-form verb.
func IsParticiple(tok types.Token) bool {
	return (tok.POS == "VERB" || tok.POS == "AUX" || tok.POS == "ADJ") &&
		VerbForm(tok) == Participle
}

// IsInfinitive reports whether the token is an infinitive-form verb.
func IsInfinitive(tok types.Token) bool {
	return (tok.POS == "VERB" || tok.POS == "AUX") && VerbForm(tok) == Infinitive
}

// displayOrder fixes how FormatFeatures concatenates present features.
var displayOrder = []string{"Case", "Gender", "Number", "Tense", "Mood"}

// displayNames renders a canonical value with a leading capital.
func displayName(v string) string {
	if v == "" {
		return ""
	}
	return strings.ToUpper(v[:1]) + v[1:]
}

// FormatFeatures renders a compact human-readable feature bundle, e.g.
// "Nominative, Singular, Present Indicative". Only features actually present
// on the token appear; tense and mood collapse into one trailing group.
func FormatFeatures(tok types.Token) string {
	var parts []string
	var verbal []string
	for _, name := range displayOrder {
		v := Feature(tok, name)
		if v == Unknown {
			continue
		}
		if name == "Tense" || name == "Mood" {
			verbal = append(verbal, displayName(v))
			continue
		}
		parts = append(parts, displayName(v))
	}
	if len(verbal) > 0 {
		parts = append(parts, strings.Join(verbal, " "))
	}
	return strings.Join(parts, ", ")
}

// definiteArticles maps case → gender/plural → article. Plural forms ignore
// gender, keyed under "plural".
var definiteArticles = map[string]map[string]string{
	Nominative: {Masculine: "der", Feminine: "die", Neuter: "das", "plural": "die"},
	Accusative: {Masculine: "den", Feminine: "die", Neuter: "das", "plural": "die"},
	Dative:     {Masculine: "dem", Feminine: "der", Neuter: "dem", "plural": "den"},
	Genitive:   {Masculine: "des", Feminine: "der", Neuter: "des", "plural": "der"},
}

var indefiniteArticles = map[string]map[string]string{
	Nominative: {Masculine: "ein", Feminine: "eine", Neuter: "ein"},
	Accusative: {Masculine: "einen", Feminine: "eine", Neuter: "ein"},
	Dative:     {Masculine: "einem", Feminine: "einer", Neuter: "einem"},
	Genitive:   {Masculine: "eines", Feminine: "einer", Neuter: "eines"},
}

// DefiniteArticle returns the definite article for the given canonical case,
// gender and number, or Unknown when the combination is not covered (e.g.
// unknown case).
func DefiniteArticle(caseVal, gender, number string) string {
	byGender, ok := definiteArticles[caseVal]
	if !ok {
		return Unknown
	}
	key := gender
	if number == Plural {
		key = "plural"
	}
	return byGender[key]
}

// IndefiniteArticle returns the indefinite article for case/gender. German
// has no plural indefinite article, so Plural yields Unknown.
func IndefiniteArticle(caseVal, gender, number string) string {
	if number == Plural {
		return Unknown
	}
	byGender, ok := indefiniteArticles[caseVal]
	if !ok {
		return Unknown
	}
	return byGender[gender]
}
