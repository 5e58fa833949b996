package types

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCitableDefaults(t *testing.T) {
	c := NewCitable("k1", "", "", "article")
	assert.Equal(t, "k1", c.Label)
	assert.Equal(t, DefaultTitle, c.Title)
	assert.Equal(t, DefaultAuthor, c.Author)
	assert.Equal(t, "article", c.CiteType)
}

func TestCitableOrdering(t *testing.T) {
	citables := []Citable{
		NewCitable("k2", "B", "X", "article"),
		NewCitable("k1", "A", "Y", "book"),
	}
	sort.Slice(citables, func(i, j int) bool {
		return citables[i].Less(&citables[j])
	})
	assert.Equal(t, "k1", citables[0].Label)
	assert.Equal(t, "k2", citables[1].Label)

	// Field order within equal labels: title, then author, then type.
	a := NewCitable("same", "A", "Z", "article")
	b := NewCitable("same", "B", "A", "article")
	assert.True(t, a.Less(&b))
}

func TestCitableShortForms(t *testing.T) {
	c := NewCitable("k1",
		"A rather long title that will certainly be shortened",
		"Doe, Jane and Smith, John",
		"article")

	title := c.ShortTitle(20)
	assert.NotEqual(t, c.Title, title)
	assert.Equal(t, title, c.ShortTitle(99), "cached after first computation")

	assert.Equal(t, "Doe et. al.", c.ShortAuthor())

	c.Reshorten()
	assert.Equal(t, c.Title, c.ShortTitle(99))
}

func TestCitableShortFormsSkipDefaults(t *testing.T) {
	c := NewCitable("k1", "", "", "misc")
	assert.Equal(t, DefaultTitle, c.ShortTitle(5))
	assert.Equal(t, DefaultAuthor, c.ShortAuthor())
}

func TestCiteAbbreviation(t *testing.T) {
	assert.Equal(t, "ar", CiteAbbreviation("article"))
	assert.Equal(t, "bo", CiteAbbreviation("book"))
	assert.Equal(t, "ip", CiteAbbreviation("inproceedings"))
	assert.Equal(t, "mi", CiteAbbreviation("misc"))

	// Lookup is case-insensitive.
	assert.Equal(t, "ar", CiteAbbreviation("Article"))
	assert.Equal(t, "tr", CiteAbbreviation("TechReport"))

	// Unknown entry types fall back.
	assert.Equal(t, AbbrevUnknown, CiteAbbreviation("webpage"))
}
