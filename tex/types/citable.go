package types

// Citable identifies a bibliography entry that can be cited with \cite{label}.
type Citable struct {
	// Label is the BibTeX entry key.
	Label string
	// Title of the cited work, DefaultTitle when the entry has none.
	Title string
	// Author of the cited work, DefaultAuthor when the entry has none.
	Author string
	// CiteType is the BibTeX entry type as written; abbreviation lookup
	// lower-cases it.
	CiteType string

	shortTitle  *string
	shortAuthor *string
}

// NewCitable creates a Citable, substituting defaults for empty fields.
func NewCitable(label, title, author, citeType string) Citable {
	if title == "" {
		title = DefaultTitle
	}
	if author == "" {
		author = DefaultAuthor
	}
	return Citable{Label: label, Title: title, Author: author, CiteType: citeType}
}

// ShortTitle returns the smart-truncated title, computed once and cached.
// The default title passes through untouched.
func (c *Citable) ShortTitle(limit int) string {
	if c.shortTitle != nil {
		return *c.shortTitle
	}
	s := c.Title
	if s != DefaultTitle {
		s = SmartShorten(s, limit)
	}
	c.shortTitle = &s
	return s
}

// ShortAuthor returns the abbreviated author list, computed once and cached.
// Multi-author fields keep only the first author plus "et. al."; authors are
// never length-truncated the way titles are.
func (c *Citable) ShortAuthor() string {
	if c.shortAuthor != nil {
		return *c.shortAuthor
	}
	s := c.Author
	if s != DefaultAuthor {
		s = ShortenAuthor(s)
	}
	c.shortAuthor = &s
	return s
}

// Reshorten discards the cached short forms so the next access recomputes them.
func (c *Citable) Reshorten() {
	c.shortTitle = nil
	c.shortAuthor = nil
}

// Less orders citables lexicographically by (Label, Title, Author, CiteType).
func (c *Citable) Less(other *Citable) bool {
	if c.Label != other.Label {
		return c.Label < other.Label
	}
	if c.Title != other.Title {
		return c.Title < other.Title
	}
	if c.Author != other.Author {
		return c.Author < other.Author
	}
	return c.CiteType < other.CiteType
}

// Token returns the completion token, which is always the entry key.
func (c *Citable) Token() string {
	return c.Label
}

// Abbreviation returns the compact entry-type code for display.
func (c *Citable) Abbreviation() string {
	return CiteAbbreviation(c.CiteType)
}
