package types

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReferableDefaults(t *testing.T) {
	r := NewReferable("sec:intro", "", "")
	assert.Equal(t, "sec:intro", r.Label)
	assert.Equal(t, DefaultName, r.Name)
	assert.Equal(t, DefaultRefType, r.RefType)

	named := NewReferable("fig:1", "My Fig", "figure")
	assert.Equal(t, "My Fig", named.Name)
	assert.Equal(t, "figure", named.RefType)
}

func TestReferableOrdering(t *testing.T) {
	// Label dominates the order regardless of the other fields.
	referables := []Referable{
		NewReferable("b", "X", "section"),
		NewReferable("a", "Y", "section"),
	}
	sort.Slice(referables, func(i, j int) bool {
		return referables[i].Less(&referables[j])
	})
	assert.Equal(t, "a", referables[0].Label)
	assert.Equal(t, "b", referables[1].Label)

	// Equal labels fall back to the name.
	x := NewReferable("same", "A", "section")
	y := NewReferable("same", "B", "section")
	assert.True(t, x.Less(&y))
	assert.False(t, y.Less(&x))

	// Equal labels and names fall back to the type.
	p := NewReferable("same", "A", "figure")
	q := NewReferable("same", "A", "table")
	assert.True(t, p.Less(&q))
}

func TestReferableShortNameCaching(t *testing.T) {
	r := NewReferable("sec:x", "A name long enough to get shortened somewhere", "section")

	first := r.ShortName(20)
	assert.NotEqual(t, r.Name, first)

	// Cached: a different limit does not change the computed value.
	assert.Equal(t, first, r.ShortName(99))

	// Explicit re-shorten recomputes.
	r.Reshorten()
	assert.Equal(t, r.Name, r.ShortName(99))
}

func TestReferableShortNameSkipsDefault(t *testing.T) {
	r := NewReferable("orphan", "", "")
	assert.Equal(t, DefaultName, r.ShortName(5))
}

func TestRefAbbreviation(t *testing.T) {
	assert.Equal(t, "ch", RefAbbreviation("chapter"))
	assert.Equal(t, "se", RefAbbreviation("section"))
	assert.Equal(t, "fi", RefAbbreviation("figure"))
	assert.Equal(t, "ta", RefAbbreviation("table"))
	assert.Equal(t, "li", RefAbbreviation("lstlisting"))

	// Unrecognized environment names fall back to the unknown code.
	assert.Equal(t, AbbrevUnknown, RefAbbreviation("tikzpicture"))
	assert.Equal(t, AbbrevUnknown, RefAbbreviation(DefaultRefType))
}

func TestReferableTokenAndAbbreviation(t *testing.T) {
	r := NewReferable("fig:1", "My Fig", "figure")
	assert.Equal(t, "fig:1", r.Token())
	assert.Equal(t, "fi", r.Abbreviation())
}
