package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grammatik/types"
)

func TestPointByID(t *testing.T) {
	p, ok := PointByID("present-tense")
	require.True(t, ok)
	assert.Equal(t, types.A1, p.Level)
	assert.Equal(t, types.CatTense, p.Category)

	_, ok = PointByID("no-such-point")
	assert.False(t, ok)
}

func TestMustPointFallsBackToPlaceholder(t *testing.T) {
	p := MustPoint("invented-by-llm")
	assert.Equal(t, "invented-by-llm", p.ID)
	assert.Equal(t, types.B1, p.Level)
	assert.Equal(t, types.CatSpecialConstruction, p.Category)
	assert.NotEmpty(t, p.Explanation)
}

func TestCatalogEntriesAreComplete(t *testing.T) {
	for _, p := range All() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name, "point %s", p.ID)
		assert.NotEmpty(t, p.Description, "point %s", p.ID)
		assert.NotEmpty(t, p.Explanation, "point %s", p.ID)
		assert.GreaterOrEqual(t, p.Level.Order(), 0, "point %s has unknown level", p.ID)
		assert.True(t, p.Category.Known(), "point %s has unknown category", p.ID)
	}
}

func TestNoDuplicateIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range All() {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestAtLevel(t *testing.T) {
	for _, p := range AtLevel(types.A1) {
		assert.Equal(t, types.A1, p.Level)
	}
	assert.NotEmpty(t, AtLevel(types.A1))
}

func TestUpToLevelIsCumulative(t *testing.T) {
	a1 := len(UpToLevel(types.A1))
	b1 := len(UpToLevel(types.B1))
	c2 := len(UpToLevel(types.C2))
	assert.Less(t, a1, b1)
	assert.LessOrEqual(t, b1, c2)
	assert.Equal(t, len(All()), c2)

	assert.Nil(t, UpToLevel(types.Level("D7")))
}

func TestByCategory(t *testing.T) {
	tenses := ByCategory(types.CatTense)
	require.NotEmpty(t, tenses)
	for _, p := range tenses {
		assert.Equal(t, types.CatTense, p.Category)
	}
}

func TestIndexIsACopy(t *testing.T) {
	idx := Index()
	require.Contains(t, idx, "present-tense")
	delete(idx, "present-tense")
	_, ok := PointByID("present-tense")
	assert.True(t, ok)
}

func TestContextVariant(t *testing.T) {
	assert.NotEmpty(t, ContextVariant("dative-case", "preposition"))
	assert.Empty(t, ContextVariant("dative-case", "no-such-role"))
	assert.Empty(t, ContextVariant("no-such-point", "preposition"))
}
