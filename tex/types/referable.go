// Package types defines the entity model for the texref completion engine:
// referable objects (things defined with \label and reachable via \ref) and
// citable objects (bibliography entries reachable via \cite), together with
// their ordering, type abbreviations, and display shortening.
package types

// Defaults used when scanning could not recover a value. These are documented
// output values, not error markers.
const (
	DefaultName    = "No Name"
	DefaultRefType = "unknown"
	DefaultTitle   = "No Title"
	DefaultAuthor  = "No Author"
)

// Referable identifies something that can be referenced with \ref{label}.
// Duplicate labels are tolerated; the scanner never deduplicates.
type Referable struct {
	// Label is the identifier exactly as written in the source.
	Label string
	// Name is the human-readable caption or section title, DefaultName when
	// none was found.
	Name string
	// RefType is either one of the sectioning command names, an environment
	// name found via \begin{...}, or DefaultRefType.
	RefType string

	shortName *string
}

// NewReferable creates a Referable, substituting defaults for empty fields.
func NewReferable(label, name, refType string) Referable {
	if name == "" {
		name = DefaultName
	}
	if refType == "" {
		refType = DefaultRefType
	}
	return Referable{Label: label, Name: name, RefType: refType}
}

// ShortName returns the smart-truncated form of Name, computing and caching it
// on first use. The default name is passed through untouched so unnamed
// referables are not pointlessly shortened. Once computed the value is stable
// for the life of the object.
func (r *Referable) ShortName(limit int) string {
	if r.shortName != nil {
		return *r.shortName
	}
	s := r.Name
	if s != DefaultName {
		s = SmartShorten(s, limit)
	}
	r.shortName = &s
	return s
}

// Reshorten discards the cached short name so the next ShortName call
// recomputes it, e.g. after a display-length configuration change.
func (r *Referable) Reshorten() {
	r.shortName = nil
}

// Less orders referables lexicographically by (Label, Name, RefType). The
// order is used for stable presentation only, not identity.
func (r *Referable) Less(other *Referable) bool {
	if r.Label != other.Label {
		return r.Label < other.Label
	}
	if r.Name != other.Name {
		return r.Name < other.Name
	}
	return r.RefType < other.RefType
}

// Token returns the completion token, which is always the label.
func (r *Referable) Token() string {
	return r.Label
}

// Abbreviation returns the compact type code for display.
func (r *Referable) Abbreviation() string {
	return RefAbbreviation(r.RefType)
}
