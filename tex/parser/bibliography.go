package parser

import "strings"

// ScanBibliographies finds every bibliography attachment declared in content.
// Each configured command (\bibliography{a,b} style) contributes its
// comma-separated base names, accumulated across all lines in order of
// appearance. Base names carry no extension; resolving them to actual .bib
// files is the caller's concern.
func ScanBibliographies(content string, commands []string) []string {
	var found []string

	for _, line := range strings.Split(content, "\n") {
		for _, cmd := range commands {
			arg, ok := FromCommand(line, cmd, false)
			if !ok {
				continue
			}
			found = append(found, strings.Split(arg, ",")...)
		}
	}

	return found
}
