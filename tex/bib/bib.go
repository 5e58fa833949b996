// Package bib turns BibTeX bibliography files into citable entities. The
// file format itself is handled by the external parser
// (github.com/nickng/bibtex); this package only adapts its flat record list
// to the entity model and applies the documented field defaults.
package bib

import (
	"io"
	"strings"

	"github.com/nickng/bibtex"
	"github.com/teranos/texref/errors"
	"github.com/teranos/texref/tex/types"
)

// Record is one parsed bibliography entry: a cite key, an entry type, and a
// flat field map. Field names are matched case-insensitively.
type Record struct {
	ID        string
	EntryType string
	Fields    map[string]string
}

// ParseRecords reads BibTeX source and returns its entries as flat records,
// in the order the parser yields them. Malformed input surfaces as the
// parser's error; no partial recovery is attempted here.
func ParseRecords(r io.Reader) ([]Record, error) {
	parsed, err := bibtex.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing bibtex")
	}

	records := make([]Record, 0, len(parsed.Entries))
	for _, entry := range parsed.Entries {
		fields := make(map[string]string, len(entry.Fields))
		for name, value := range entry.Fields {
			fields[strings.ToLower(name)] = value.String()
		}
		records = append(records, Record{
			ID:        entry.CiteName,
			EntryType: entry.Type,
			Fields:    fields,
		})
	}
	return records, nil
}

// Citables converts records to citable entities, one per record, preserving
// record order. Missing title/author fields take the documented defaults;
// final presentation order comes from the engine's sort, not from here.
func Citables(records []Record) []types.Citable {
	citables := make([]types.Citable, 0, len(records))
	for _, rec := range records {
		citables = append(citables, types.NewCitable(
			rec.ID,
			rec.Fields["title"],
			rec.Fields["author"],
			rec.EntryType,
		))
	}
	return citables
}
