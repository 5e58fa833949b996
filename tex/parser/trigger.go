package parser

import "strings"

// Action classifies what a completion request is asking for.
type Action int

const (
	// ActionNone means the cursor does not follow a recognized command.
	ActionNone Action = iota
	// ActionReference means a reference command (\ref{) was just opened.
	ActionReference
	// ActionCitation means a citation command (\cite{) was just opened.
	ActionCitation
)

// String implements fmt.Stringer for log output.
func (a Action) String() string {
	switch a {
	case ActionReference:
		return "reference"
	case ActionCitation:
		return "citation"
	default:
		return "none"
	}
}

// Classify inspects the text of the current line up to the cursor and decides
// whether it ends with \cmd{ for any configured reference or citation command.
// The match is an exact suffix match; whitespace between command and brace is
// not tolerated. Reference commands are checked first, though the two command
// sets are disjoint by configuration.
func Classify(linePrefix string, referenceCommands, citationCommands []string) Action {
	for _, cmd := range referenceCommands {
		if strings.HasSuffix(linePrefix, "\\"+cmd+"{") {
			return ActionReference
		}
	}
	for _, cmd := range citationCommands {
		if strings.HasSuffix(linePrefix, "\\"+cmd+"{") {
			return ActionCitation
		}
	}
	return ActionNone
}
