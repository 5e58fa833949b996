package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	refCmds := []string{"ref", "refv"}
	citeCmds := []string{"cite", "citep", "citev"}

	tests := []struct {
		name   string
		prefix string
		want   Action
	}{
		{"reference command", `see \ref{`, ActionReference},
		{"variant reference command", `\refv{`, ActionReference},
		{"citation command", `as shown in \cite{`, ActionCitation},
		{"parenthetical citation", `\citep{`, ActionCitation},
		{"no trailing brace", `\ref`, ActionNone},
		{"whitespace before brace not tolerated", `\ref {`, ActionNone},
		{"unknown command", `\eqref{`, ActionNone},
		{"mid-line text after brace", `\ref{sec`, ActionNone},
		{"empty line", ``, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.prefix, refCmds, citeCmds))
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "none", ActionNone.String())
	assert.Equal(t, "reference", ActionReference.String())
	assert.Equal(t, "citation", ActionCitation.String())
}
