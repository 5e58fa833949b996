package types

import "strings"

// Type abbreviations are one-or-two-character codes shown in front of each
// completion candidate. Unrecognized types fall back to the "unknown" code,
// so a label inside an exotic environment still renders sensibly.

// AbbrevUnknown is the fallback code for unrecognized referable and citable
// types.
const AbbrevUnknown = "un"

// RefAbbreviation maps a referable type to its display code. The switch is
// exhaustive over the sectioning commands and the common float environments;
// anything else (arbitrary \begin{...} environment names included) takes the
// fallback arm.
func RefAbbreviation(refType string) string {
	switch refType {
	case "chapter":
		return "ch"
	case "section":
		return "se"
	case "subsection":
		return "ss"
	case "subsubsection":
		return "s3"
	case "paragraph":
		return "pa"
	case "subparagraph":
		return "sp"
	case "figure":
		return "fi"
	case "table":
		return "ta"
	case "lstlisting":
		return "li"
	default:
		return AbbrevUnknown
	}
}

// CiteAbbreviation maps a BibTeX entry type to its display code. Lookup is
// case-insensitive; BibTeX treats @Article and @article alike.
func CiteAbbreviation(citeType string) string {
	switch strings.ToLower(citeType) {
	case "article":
		return "ar"
	case "book":
		return "bo"
	case "booklet":
		return "bl"
	case "conference":
		return "co"
	case "inbook":
		return "ib"
	case "incollection":
		return "ic"
	case "inproceedings":
		return "ip"
	case "manual":
		return "ma"
	case "mastersthesis":
		return "mt"
	case "misc":
		return "mi"
	case "phdthesis":
		return "pt"
	case "proceedings":
		return "pr"
	case "techreport":
		return "tr"
	case "unpublished":
		return "up"
	default:
		return AbbrevUnknown
	}
}
