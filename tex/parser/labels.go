package parser

import (
	"strings"

	"github.com/teranos/texref/tex/types"
)

// SectioningAlias declares a command that behaves like a sectioning command
// but is reported under a different type, e.g. KOMA-Script's \addchap which
// is a chapter for referencing purposes.
type SectioningAlias struct {
	Command string
	Reports string
}

// ScanConfig carries the command vocabulary the label scanner recognizes.
type ScanConfig struct {
	// Sectioning commands in precedence order (chapter, section, ...).
	// Starred spellings are tolerated for all of them.
	Sectioning []string
	// Aliases are special sectioning commands with a mapped reported type.
	Aliases []SectioningAlias
}

// ScanLabels finds every label definition in content and resolves the
// enclosing construct for each. One Referable is produced per extracted
// label with no deduplication: if the same label string is defined twice,
// both entities coexist.
func ScanLabels(content string, cfg ScanConfig) []types.Referable {
	var found []types.Referable

	// Successive definition searches resume after the previous hit so a
	// document defining the same label text twice resolves each occurrence
	// against its own surroundings.
	searchFrom := 0

	for _, line := range strings.Split(content, "\n") {
		label, ok := FromOptionOrCommand(line, "label", false, true)
		if !ok {
			continue
		}

		var name, refType string
		if pos := findDefinition(content, label, searchFrom); pos != -1 {
			name, refType = resolveContext(content, pos, cfg)
			searchFrom = pos + 1
		}

		found = append(found, types.NewReferable(label, name, refType))
	}

	return found
}

// findDefinition locates the definition occurrence of label in content at or
// after from. Occurrences not immediately preceded by "label=" or "\label{"
// are skipped; the label string may well appear again in running prose as a
// \ref argument. Returns -1 when no definition site exists.
//
// Known limitation, kept deliberately: a label that is a prefix of another
// label can match the longer label's definition site first.
func findDefinition(content, label string, from int) int {
	if label == "" {
		return -1
	}
	for from <= len(content) {
		i := strings.Index(content[from:], label)
		if i == -1 {
			return -1
		}
		pos := from + i
		if isDefinitionSite(content[:pos]) {
			return pos
		}
		from = pos + 1
	}
	return -1
}

// isDefinitionSite reports whether text ends in a label-defining construct.
func isDefinitionSite(before string) bool {
	return strings.HasSuffix(before, "\\label{") ||
		strings.HasSuffix(before, "label=") ||
		strings.HasSuffix(before, "label={")
}

// resolveContext walks backward from a label definition to the nearest
// enclosing recognized construct and extracts its name and type. The walk
// visits backslash-delimited fragments one at a time, nearest first:
//
//	\begin{env}        -> refType is the environment name; the name is the
//	                      caption found inside the \begin..\end{env} span
//	\section{...}      -> refType is the command name, name its argument
//	\addchap{...}      -> as above, but reported under the aliased type
//	anything else      -> keep walking toward the start of the file
//
// This approximates document-tree containment with string positions alone,
// assuming the nearest preceding recognized construct textually dominates
// the label. Empty returns mean the walk hit the start of the file.
func resolveContext(content string, labelPos int, cfg ScanConfig) (name, refType string) {
	cur := labelPos

	for cur > 0 {
		cur = strings.LastIndexByte(content[:cur], '\\')
		if cur == -1 {
			return "", ""
		}
		frag := content[cur:labelPos]

		if strings.HasPrefix(frag, "\\begin{") {
			return resolveEnvironment(content, cur, frag)
		}

		for _, cmd := range cfg.Sectioning {
			if !openedBy(frag, cmd) {
				continue
			}
			if arg, ok := FromCommand(frag, cmd, true); ok {
				return arg, cmd
			}
		}

		for _, alias := range cfg.Aliases {
			if !openedBy(frag, alias.Command) {
				continue
			}
			if arg, ok := FromCommand(frag, alias.Command, true); ok {
				return arg, alias.Reports
			}
		}
	}

	return "", ""
}

// resolveEnvironment handles a label whose nearest construct is \begin{...}.
// The environment name becomes the reference type and the caption, when one
// exists inside the environment's span, becomes the name. A missing
// \end{env} bounds the span at the end of the file.
func resolveEnvironment(content string, envBegin int, frag string) (name, refType string) {
	refType, _ = FromCommand(frag, "begin", false)

	span := content[envBegin:]
	if end := strings.Index(span, "\\end{"+refType+"}"); end != -1 {
		span = span[:end]
	}

	if caption, ok := FromOptionOrCommand(span, "caption", false, true); ok {
		name = caption
	}
	return name, refType
}

// openedBy reports whether the fragment starts with \cmd{ or \cmd*{.
func openedBy(frag, cmd string) bool {
	return strings.HasPrefix(frag, "\\"+cmd+"{") ||
		strings.HasPrefix(frag, "\\"+cmd+"*{")
}
