package catalog

// variants holds pre-written alternative explanations, keyed by point id and
// then by a detail value the reconciler extracts from the sentence context.
// Only points whose generic explanation is too vague in context get variants.
var variants = map[string]map[string]string{
	"dative-case": {
		"indirect-object": "Dative case: this is the indirect object, the receiver of the action.",
		"preposition":     "Dative case required by the governing preposition.",
		"verb":            "Dative case required by the verb (e.g. helfen, danken, gehören).",
	},
	"accusative-case": {
		"direct-object": "Accusative case: this is the direct object of the verb.",
		"preposition":   "Accusative case required by the governing preposition.",
	},
	"genitive-case": {
		"possession":  "Genitive case expressing possession or belonging.",
		"preposition": "Genitive case required by the governing preposition.",
	},
	"nominative-case": {
		"subject":   "Nominative case: this is the subject of the sentence.",
		"predicate": "Nominative case: predicate noun after sein/werden/bleiben.",
	},
}
