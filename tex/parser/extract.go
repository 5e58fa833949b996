// Package parser implements the heuristic LaTeX source scanning that backs
// the completion engine. There is no grammar here: every routine works by
// local substring search over raw text and is expected to survive missing
// braces, nested commands, and files that are only approximately LaTeX.
// Absence of a construct is the normal case and is reported via comma-ok
// returns, never as an error.
package parser

import "strings"

// sanitize removes line breaks from a captured argument so candidates render
// on a single line. Newlines become spaces, carriage returns vanish.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", "")
}

// FromCommand extracts the brace-delimited argument of \command{...} from
// content. When starable is set the starred spelling \command*{...} is tried
// as well. The capture runs from the open brace to the next }; nested braces
// are not balanced, the first closer wins. A missing closer captures to the
// end of the content.
func FromCommand(content, command string, starable bool) (string, bool) {
	needles := []string{"\\" + command + "{"}
	if starable {
		needles = append(needles, "\\"+command+"*{")
	}

	for _, needle := range needles {
		begin := strings.Index(content, needle)
		if begin == -1 {
			continue
		}
		begin += len(needle)

		end := strings.IndexByte(content[begin:], '}')
		if end == -1 {
			end = len(content)
		} else {
			end += begin
		}
		return sanitize(content[begin:end]), true
	}

	return "", false
}

// FromOption extracts the value of a key=value option from content. When
// compoundable is set and the value opens with a brace, the capture runs to
// the next } (same non-balancing rule as FromCommand). Bare values terminate
// at the first space, comma, ], }, or end of content.
func FromOption(content, option string, compoundable bool) (string, bool) {
	begin := strings.Index(content, option+"=")
	if begin == -1 {
		return "", false
	}
	begin += len(option) + 1

	if compoundable && begin < len(content) && content[begin] == '{' {
		begin++
		end := strings.IndexByte(content[begin:], '}')
		if end == -1 {
			end = len(content)
		} else {
			end += begin
		}
		return sanitize(content[begin:end]), true
	}

	end := begin
	for end < len(content) && !isOptionTerminator(content[end]) {
		end++
	}
	return sanitize(content[begin:end]), true
}

func isOptionTerminator(ch byte) bool {
	return ch == ' ' || ch == ',' || ch == ']' || ch == '}'
}

// FromOptionOrCommand tries the key=value option spelling first, then the
// command spelling. Option syntax wins because constructs like
// \begin{figure}[label=foo] place the interesting value in the options while
// the same line may still contain unrelated braces.
func FromOptionOrCommand(content, name string, starable, compoundable bool) (string, bool) {
	if value, ok := FromOption(content, name, compoundable); ok {
		return value, true
	}
	return FromCommand(content, name, starable)
}
