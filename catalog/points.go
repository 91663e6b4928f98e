package catalog

import "go-grammatik/types"

// points is the full registry. Ordered roughly by level for readability;
// lookup order never matters.
var points = []types.GrammarPoint{
	// --- Tense ---
	{
		ID: "present-tense", Level: types.A1, Category: types.CatTense,
		Name:        "Präsens (present tense)",
		Description: "The present tense describes current actions, habits and general truths.",
		Examples:    []string{"Ich wohne in Berlin.", "Sie arbeitet bei einer Bank."},
		Explanation: "The verb is in the present tense.",
		Hints:       map[string]string{"Tense": "Pres", "VerbForm": "Fin"},
	},
	{
		ID: "simple-past", Level: types.A2, Category: types.CatTense,
		Name:        "Präteritum (simple past)",
		Description: "The simple past is the narrative past tense, common in writing and with sein/haben/modals in speech.",
		Examples:    []string{"Ich war gestern müde.", "Er hatte keine Zeit."},
		Explanation: "The verb is in the simple past tense.",
		Hints:       map[string]string{"Tense": "Past", "VerbForm": "Fin"},
	},
	{
		ID: "present-perfect", Level: types.A2, Category: types.CatTense,
		Name:        "Perfekt (present perfect)",
		Description: "The present perfect combines haben or sein with a past participle and is the default spoken past.",
		Examples:    []string{"Ich habe Pizza gegessen.", "Wir sind nach Hause gegangen."},
		Explanation: "haben/sein plus past participle forms the present perfect.",
	},
	{
		ID: "past-perfect", Level: types.B1, Category: types.CatTense,
		Name:        "Plusquamperfekt (past perfect)",
		Description: "The past perfect places one past event before another, built from hatte/war plus past participle.",
		Examples:    []string{"Ich hatte schon gegessen, als sie kam."},
		Explanation: "hatte/war plus past participle forms the past perfect.",
	},
	{
		ID: "future-1", Level: types.A2, Category: types.CatTense,
		Name:        "Futur I (future tense)",
		Description: "werden plus infinitive expresses future actions or assumptions.",
		Examples:    []string{"Ich werde morgen kommen."},
		Explanation: "werden plus infinitive forms the future tense.",
	},

	// --- Case ---
	{
		ID: "nominative-case", Level: types.A1, Category: types.CatCase,
		Name:        "Nominativ",
		Description: "The nominative marks the subject of the sentence.",
		Examples:    []string{"Der Mann liest.", "Die Kinder spielen."},
		Explanation: "This word is in the nominative case (subject).",
		Hints:       map[string]string{"Case": "Nom"},
	},
	{
		ID: "accusative-case", Level: types.A1, Category: types.CatCase,
		Name:        "Akkusativ",
		Description: "The accusative marks the direct object and follows prepositions like für, durch, gegen, ohne, um.",
		Examples:    []string{"Ich sehe den Mann.", "Das Geschenk ist für dich."},
		Explanation: "This word is in the accusative case (direct object).",
		Hints:       map[string]string{"Case": "Acc"},
	},
	{
		ID: "dative-case", Level: types.A2, Category: types.CatCase,
		Name:        "Dativ",
		Description: "The dative marks the indirect object and follows prepositions like mit, nach, bei, von, zu, aus, seit.",
		Examples:    []string{"Ich helfe dem Kind.", "Sie fährt mit dem Bus."},
		Explanation: "This word is in the dative case (indirect object).",
		Hints:       map[string]string{"Case": "Dat"},
	},
	{
		ID: "genitive-case", Level: types.B1, Category: types.CatCase,
		Name:        "Genitiv",
		Description: "The genitive expresses possession and follows prepositions like während, wegen, trotz.",
		Examples:    []string{"Das Auto meines Vaters.", "Wegen des Wetters bleiben wir hier."},
		Explanation: "This word is in the genitive case (possession).",
		Hints:       map[string]string{"Case": "Gen"},
	},

	// --- Articles ---
	{
		ID: "definite-article", Level: types.A1, Category: types.CatArticle,
		Name:        "Bestimmter Artikel (definite article)",
		Description: "der/die/das and their declined forms mark known or specific nouns.",
		Examples:    []string{"Der Hund schläft.", "Ich sehe das Auto."},
		Explanation: "Definite article, declined for case, gender and number.",
	},
	{
		ID: "indefinite-article", Level: types.A1, Category: types.CatArticle,
		Name:        "Unbestimmter Artikel (indefinite article)",
		Description: "ein/eine and their declined forms introduce unspecific nouns.",
		Examples:    []string{"Ein Mann wartet.", "Sie kauft eine Tasche."},
		Explanation: "Indefinite article, declined for case and gender.",
	},
	{
		ID: "negative-article", Level: types.A1, Category: types.CatArticle,
		Name:        "Negationsartikel kein",
		Description: "kein negates nouns and declines like ein.",
		Examples:    []string{"Ich habe kein Geld."},
		Explanation: "kein negates the following noun.",
	},

	// --- Modal verbs ---
	{
		ID: "modal-verb", Level: types.A1, Category: types.CatModalVerb,
		Name:        "Modalverb + Infinitiv",
		Description: "Modal verbs (können, müssen, wollen, sollen, dürfen, mögen) pair with an infinitive at the clause end.",
		Examples:    []string{"Ich kann schwimmen.", "Du musst jetzt gehen."},
		Explanation: "Modal verb with a dependent infinitive.",
	},

	// --- Separable verbs ---
	{
		ID: "separable-verb", Level: types.A2, Category: types.CatSeparableVerb,
		Name:        "Trennbares Verb (separable verb)",
		Description: "Separable verbs split in main clauses: the conjugated stem stays in position two, the prefix moves to the end.",
		Examples:    []string{"Ich rufe dich morgen an.", "Der Zug kommt um acht an."},
		Explanation: "Separable verb: the prefix detaches from the conjugated stem.",
	},

	// --- Passive ---
	{
		ID: "dynamic-passive", Level: types.B1, Category: types.CatPassive,
		Name:        "Vorgangspassiv (dynamic passive)",
		Description: "werden plus past participle describes a process happening to the subject.",
		Examples:    []string{"Das Buch wird gelesen.", "Die Häuser werden gebaut."},
		Explanation: "werden plus past participle forms the dynamic passive.",
	},
	{
		ID: "statal-passive", Level: types.B2, Category: types.CatPassive,
		Name:        "Zustandspassiv (statal passive)",
		Description: "sein plus past participle describes the resulting state rather than the process.",
		Examples:    []string{"Die Tür ist geschlossen."},
		Explanation: "sein plus past participle describes a resulting state.",
	},
	{
		ID: "passive-with-agent", Level: types.B2, Category: types.CatPassive,
		Name:        "Passiv mit Agensangabe",
		Description: "A von or durch phrase names the agent of a passive clause.",
		Examples:    []string{"Das Buch wird von ihr gelesen."},
		Explanation: "Passive voice with the agent named in a von/durch phrase.",
	},

	// --- Word order ---
	{
		ID: "subordinate-clause", Level: types.A2, Category: types.CatWordOrder,
		Name:        "Nebensatz (subordinate clause word order)",
		Description: "After subordinating conjunctions like weil, dass, wenn the finite verb moves to the clause end.",
		Examples:    []string{"Ich bleibe zu Hause, weil es regnet."},
		Explanation: "Subordinate clause: the conjugated verb stands at the end.",
	},

	// --- Mood / conditional ---
	{
		ID: "wuerde-conditional", Level: types.B1, Category: types.CatMood,
		Name:        "Konjunktiv II mit würde",
		Description: "würde plus infinitive expresses hypothetical or polite statements.",
		Examples:    []string{"Ich würde gern kommen."},
		Explanation: "würde plus infinitive expresses a hypothetical.",
	},
	{
		ID: "konjunktiv-2", Level: types.B1, Category: types.CatMood,
		Name:        "Konjunktiv II",
		Description: "Subjunctive forms like wäre, hätte, könnte express unreality or politeness.",
		Examples:    []string{"Wenn ich Zeit hätte, käme ich mit."},
		Explanation: "Subjunctive II form expressing unreality or politeness.",
		Hints:       map[string]string{"Mood": "Sub"},
	},
	{
		ID: "imperative-mood", Level: types.A1, Category: types.CatMood,
		Name:        "Imperativ",
		Description: "The imperative gives commands and requests.",
		Examples:    []string{"Komm her!", "Öffnen Sie bitte das Fenster."},
		Explanation: "Imperative verb form (command).",
		Hints:       map[string]string{"Mood": "Imp"},
	},

	// --- Collocations / reflexives ---
	{
		ID: "verb-preposition-collocation", Level: types.B1, Category: types.CatCollocation,
		Name:        "Verb mit fester Präposition",
		Description: "Many verbs govern a fixed preposition whose meaning is not compositional (warten auf, denken an).",
		Examples:    []string{"Ich warte auf den Bus.", "Sie denkt an ihre Familie."},
		Explanation: "Fixed verb-preposition combination.",
	},
	{
		ID: "reflexive-verb-preposition", Level: types.B1, Category: types.CatCollocation,
		Name:        "Reflexives Verb mit Präposition",
		Description: "Reflexive verbs with a fixed preposition, like sich interessieren für or sich freuen auf.",
		Examples:    []string{"Ich interessiere mich für Musik."},
		Explanation: "Reflexive verb with its fixed preposition.",
	},
	{
		ID: "reflexive-verb", Level: types.A2, Category: types.CatReflexiveVerb,
		Name:        "Reflexives Verb",
		Description: "The verb takes a reflexive pronoun referring back to the subject.",
		Examples:    []string{"Ich freue mich.", "Er wäscht sich."},
		Explanation: "Reflexive verb with the pronoun sich/mich/dich.",
	},

	// --- Functional verbs ---
	{
		ID: "functional-verb-construction", Level: types.C1, Category: types.CatFunctionalVerb,
		Name:        "Funktionsverbgefüge",
		Description: "A semantically light verb combines with a noun (often plus preposition) into one predicate: in Frage stellen, zur Verfügung stehen.",
		Examples:    []string{"Das stellt die Ergebnisse in Frage."},
		Explanation: "Functional verb construction: the noun carries the meaning, the verb only the grammar.",
	},

	// --- Participial attributes ---
	{
		ID: "participial-attribute", Level: types.B2, Category: types.CatParticipialAttribute,
		Name:        "Partizipialattribut",
		Description: "A participle used attributively before a noun: das gelesene Buch.",
		Examples:    []string{"Die geöffnete Tür.", "Das geschriebene Wort."},
		Explanation: "Participle used as an attribute of the following noun.",
	},
	{
		ID: "extended-participial-attribute", Level: types.C1, Category: types.CatParticipialAttribute,
		Name:        "Erweitertes Partizipialattribut",
		Description: "A participle attribute extended by its own objects or adverbials: die von ihm geschriebenen Briefe.",
		Examples:    []string{"Die von der Regierung beschlossenen Maßnahmen."},
		Explanation: "Extended participial attribute replacing a relative clause.",
	},
}
