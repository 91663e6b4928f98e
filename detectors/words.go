package detectors

// Closed word lists the rule-based detectors match against. These are
// deliberately small: they cover the high-frequency core of each phenomenon,
// and anything rarer is left to morphological features or the LLM fallback.

// modalLemmas are the German modal verbs. möchten shows up as its own lemma
// in some models and as mögen in others, so both are listed.
var modalLemmas = map[string]bool{
	"können": true, "müssen": true, "wollen": true,
	"sollen": true, "dürfen": true, "mögen": true, "möchten": true,
}

// subordinatingConjunctions send the finite verb to the clause end.
var subordinatingConjunctions = map[string]bool{
	"weil": true, "dass": true, "wenn": true, "ob": true, "obwohl": true,
	"als": true, "nachdem": true, "bevor": true, "während": true,
	"damit": true, "sobald": true, "seit": true, "seitdem": true,
	"falls": true, "da": true, "bis": true,
}

// Prepositions with a fixed governing case. Two-way (Wechsel) prepositions
// are intentionally absent: their case depends on motion vs. location, which
// the positional fallback cannot decide reliably.
var accusativePrepositions = map[string]bool{
	"für": true, "durch": true, "gegen": true, "ohne": true, "um": true, "bis": true,
}

var dativePrepositions = map[string]bool{
	"mit": true, "nach": true, "bei": true, "von": true, "zu": true,
	"aus": true, "seit": true, "außer": true, "gegenüber": true,
}

var genitivePrepositions = map[string]bool{
	"während": true, "wegen": true, "trotz": true, "statt": true,
	"anstatt": true, "innerhalb": true, "außerhalb": true,
}

// dativeVerbs take a dative object without a preposition.
var dativeVerbs = map[string]bool{
	"helfen": true, "danken": true, "gehören": true, "gefallen": true,
	"schmecken": true, "passen": true, "folgen": true, "antworten": true,
	"gratulieren": true, "vertrauen": true,
}

// separablePrefixes can detach from a verb stem in main clauses.
var separablePrefixes = []string{
	"zurück", "zusammen", "weiter", "statt", "fest", "fern",
	"auf", "aus", "ein", "mit", "nach", "vor", "weg", "her", "hin",
	"los", "ab", "an", "bei", "zu", "teil",
}

// separableVerbLemmas is the closed set of separable verbs the detector
// recognizes when prefix and stem are still attached (infinitives,
// subordinate clauses). Keyed by full lemma.
var separableVerbLemmas = map[string]bool{
	"anrufen": true, "ankommen": true, "anfangen": true, "aufstehen": true,
	"aufhören": true, "aufmachen": true, "ausgehen": true, "aussehen": true,
	"einkaufen": true, "einladen": true, "einschlafen": true,
	"mitkommen": true, "mitbringen": true, "mitnehmen": true,
	"nachdenken": true, "vorbereiten": true, "vorstellen": true,
	"zumachen": true, "zurückkommen": true, "zuhören": true,
	"weitergehen": true, "weggehen": true, "abholen": true, "abfahren": true,
	"fernsehen": true, "stattfinden": true, "teilnehmen": true,
	"umsteigen": true, "aufwachen": true, "anziehen": true,
}

// seinPerfectVerbs form their perfect with sein instead of haben. Their
// participles next to sein are perfect tense, not statal passive.
var seinPerfectVerbs = map[string]bool{
	"gehen": true, "kommen": true, "fahren": true, "fliegen": true,
	"laufen": true, "reisen": true, "aufstehen": true, "einschlafen": true,
	"sterben": true, "bleiben": true, "werden": true, "sein": true,
	"passieren": true, "geschehen": true, "wachsen": true, "fallen": true,
	"steigen": true, "sinken": true, "umziehen": true, "ankommen": true,
}

// collocationPattern is one fixed verb(+reflexive)+preposition combination.
type collocationPattern struct {
	Verb        string
	Preposition string
	Reflexive   bool
	// Pattern is the display form, e.g. "sich interessieren für".
	Pattern string
}

// collocations is the closed dictionary of idiomatic verb-preposition
// pairings. Matched against lemmas.
var collocations = []collocationPattern{
	{Verb: "interessieren", Preposition: "für", Reflexive: true, Pattern: "sich interessieren für"},
	{Verb: "freuen", Preposition: "auf", Reflexive: true, Pattern: "sich freuen auf"},
	{Verb: "freuen", Preposition: "über", Reflexive: true, Pattern: "sich freuen über"},
	{Verb: "kümmern", Preposition: "um", Reflexive: true, Pattern: "sich kümmern um"},
	{Verb: "beschweren", Preposition: "über", Reflexive: true, Pattern: "sich beschweren über"},
	{Verb: "erinnern", Preposition: "an", Reflexive: true, Pattern: "sich erinnern an"},
	{Verb: "bewerben", Preposition: "um", Reflexive: true, Pattern: "sich bewerben um"},
	{Verb: "verlassen", Preposition: "auf", Reflexive: true, Pattern: "sich verlassen auf"},
	{Verb: "warten", Preposition: "auf", Pattern: "warten auf"},
	{Verb: "denken", Preposition: "an", Pattern: "denken an"},
	{Verb: "teilnehmen", Preposition: "an", Pattern: "teilnehmen an"},
	{Verb: "abhängen", Preposition: "von", Pattern: "abhängen von"},
	{Verb: "gehören", Preposition: "zu", Pattern: "gehören zu"},
	{Verb: "sprechen", Preposition: "über", Pattern: "sprechen über"},
	{Verb: "träumen", Preposition: "von", Pattern: "träumen von"},
	{Verb: "suchen", Preposition: "nach", Pattern: "suchen nach"},
	{Verb: "fragen", Preposition: "nach", Pattern: "fragen nach"},
	{Verb: "glauben", Preposition: "an", Pattern: "glauben an"},
}

// functionalVerbPattern is one Funktionsverbgefüge: light verb + noun, with
// an optional preposition between them.
type functionalVerbPattern struct {
	Verb        string
	Noun        string
	Preposition string // "" when the noun attaches directly
	Pattern     string
}

var functionalVerbs = []functionalVerbPattern{
	{Verb: "stellen", Noun: "Frage", Preposition: "in", Pattern: "in Frage stellen"},
	{Verb: "stehen", Noun: "Verfügung", Preposition: "zu", Pattern: "zur Verfügung stehen"},
	{Verb: "stellen", Noun: "Verfügung", Preposition: "zu", Pattern: "zur Verfügung stellen"},
	{Verb: "nehmen", Noun: "Anspruch", Preposition: "in", Pattern: "in Anspruch nehmen"},
	{Verb: "nehmen", Noun: "Kauf", Preposition: "in", Pattern: "in Kauf nehmen"},
	{Verb: "spielen", Noun: "Rolle", Pattern: "eine Rolle spielen"},
	{Verb: "treffen", Noun: "Entscheidung", Pattern: "eine Entscheidung treffen"},
	{Verb: "bringen", Noun: "Ausdruck", Preposition: "zu", Pattern: "zum Ausdruck bringen"},
	{Verb: "geben", Noun: "Bescheid", Pattern: "Bescheid geben"},
	{Verb: "kommen", Noun: "Einsatz", Preposition: "zu", Pattern: "zum Einsatz kommen"},
}

// reflexivePronouns in accusative/dative form.
var reflexivePronouns = map[string]bool{
	"mich": true, "dich": true, "sich": true, "uns": true, "euch": true,
	"mir": true, "dir": true,
}
