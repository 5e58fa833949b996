package types

import "strings"

// shortenDelta is the slack around the truncation goal within which a word
// boundary is preferred over a hard cut.
const shortenDelta = 5

// SmartShorten truncates text for single-line candidate display. It prefers
// cutting at the next space after the target column, falls back to dropping
// the trailing partial word, and only splits inside a word as a last resort.
// Strings already short enough (len < target-4+delta) pass through unchanged,
// which also makes the transform idempotent.
//
// Word-boundary cuts append " ...", the in-word cut appends ". ...".
func SmartShorten(text string, target int) string {
	if target <= 4 {
		return text
	}
	goal := target - 4
	if len(text) < goal+shortenDelta {
		return text
	}

	next := -1
	if target < len(text) {
		if i := strings.IndexByte(text[target:], ' '); i != -1 {
			next = target + i
		}
	}
	bound := target + 1
	if bound > len(text) {
		bound = len(text)
	}
	prev := strings.LastIndexByte(text[:bound], ' ')

	switch {
	case next != -1 && next <= goal+shortenDelta:
		return text[:next] + " ..."
	case prev != -1 && prev > goal-shortenDelta:
		return text[:prev] + " ..."
	default:
		return text[:goal-1] + ". ..."
	}
}

// ShortenAuthor reduces a BibTeX author field to its first author. Fields
// joined with " and " keep only the first author plus "et. al."; a
// surname-first entry ("Doe, Jane") keeps only the surname. Single-author
// fields pass through unchanged.
func ShortenAuthor(author string) string {
	i := strings.Index(author, " and ")
	if i == -1 {
		return author
	}
	first := author[:i]
	if c := strings.IndexByte(first, ','); c != -1 {
		first = first[:c]
	}
	return first + " et. al."
}
