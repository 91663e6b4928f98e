// Package catalog is the static registry of German grammar points the
// detectors emit. Pure data plus read-only lookups; nothing here mutates
// after init.
//
// Well-known Detection detail keys by category:
//
//	tense:       "verb", "auxiliary", "participle"
//	case:        "case", "word", "preposition", "method" (feature|preposition|position), "role"
//	passive:     "auxiliary", "participle", "agent"
//	modal-verb:  "modal", "infinitive"
//	separable-verb: "prefix", "stem", "split" ("true"/"false")
//	word-order:  "conjunction", "finalVerb"
//	collocation: "pattern", "verb", "preposition", "reflexive"
//	functional-verb: "pattern", "verb", "noun"
//	mood:        "trigger"
//	(reconciler) "mergedFragments" on any merged detection
package catalog

import "go-grammatik/types"

// PointByID returns the definition for id and whether it exists.
func PointByID(id string) (types.GrammarPoint, bool) {
	p, ok := index[id]
	return p, ok
}

// MustPoint returns the definition for id, or a best-effort generic
// placeholder when the id is not cataloged. Detectors use this so a catalog
// miss never crashes a detection pass; the placeholder keeps the detection
// visible instead of silently dropping it.
func MustPoint(id string) types.GrammarPoint {
	if p, ok := index[id]; ok {
		return p
	}
	return types.GrammarPoint{
		ID:          id,
		Level:       types.B1,
		Category:    types.CatSpecialConstruction,
		Name:        id,
		Description: "Uncataloged grammar point",
		Explanation: "This construction was recognized but has no catalog entry yet.",
	}
}

// All returns every cataloged grammar point.
func All() []types.GrammarPoint {
	out := make([]types.GrammarPoint, len(points))
	copy(out, points)
	return out
}

// AtLevel returns the points tagged with exactly the given level.
func AtLevel(level types.Level) []types.GrammarPoint {
	var out []types.GrammarPoint
	for _, p := range points {
		if p.Level == level {
			out = append(out, p)
		}
	}
	return out
}

// UpToLevel returns the points at or below the given level (cumulative),
// i.e. everything a learner at that level is expected to know.
func UpToLevel(level types.Level) []types.GrammarPoint {
	max := level.Order()
	if max < 0 {
		return nil
	}
	var out []types.GrammarPoint
	for _, p := range points {
		if p.Level.Order() <= max {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory returns the points in the given category.
func ByCategory(cat types.Category) []types.GrammarPoint {
	var out []types.GrammarPoint
	for _, p := range points {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Index flattens the catalog into an id → definition map. The returned map
// is a copy; callers may do what they like with it.
func Index() map[string]types.GrammarPoint {
	out := make(map[string]types.GrammarPoint, len(index))
	for id, p := range index {
		out[id] = p
	}
	return out
}

// ContextVariant returns a pre-written alternative explanation for the given
// point keyed by a detail value (e.g. the semantic role of a dative
// argument), or "" when no variant is registered.
func ContextVariant(pointID, key string) string {
	if byKey, ok := variants[pointID]; ok {
		return byKey[key]
	}
	return ""
}

var index = func() map[string]types.GrammarPoint {
	m := make(map[string]types.GrammarPoint, len(points))
	for _, p := range points {
		m[p.ID] = p
	}
	return m
}()
