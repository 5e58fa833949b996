package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmartShorten(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		target int
		want   string
	}{
		{
			name:   "short text passes through",
			text:   "Intro",
			target: 30,
			want:   "Intro",
		},
		{
			name:   "prefers the preceding word boundary",
			text:   "The quick brown fox jumps over",
			target: 10,
			want:   "The quick ...",
		},
		{
			name:   "takes a following space right at the target",
			text:   "0123456789 suffix words here",
			target: 10,
			want:   "0123456789 ...",
		},
		{
			name:   "hard split when no space is near",
			text:   "supercalifragilisticexpialidocious",
			target: 10,
			want:   "super. ...",
		},
		{
			name:   "exactly at the pass-through boundary",
			text:   strings.Repeat("x", 10),
			target: 10,
			want:   strings.Repeat("x", 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SmartShorten(tt.text, tt.target))
		})
	}
}

func TestSmartShortenIdempotent(t *testing.T) {
	once := SmartShorten("The quick brown fox jumps over the lazy dog", 20)
	assert.True(t, strings.HasSuffix(once, " ...") || strings.HasSuffix(once, ". ..."))

	// A result short enough to pass through is stable under re-application.
	short := SmartShorten("already short", 30)
	assert.Equal(t, short, SmartShorten(short, 30))
}

func TestShortenAuthor(t *testing.T) {
	tests := []struct {
		name   string
		author string
		want   string
	}{
		{
			name:   "two authors keep the first",
			author: "Jane Doe and John Smith",
			want:   "Jane Doe et. al.",
		},
		{
			name:   "surname-first keeps only the surname",
			author: "Doe, Jane and Smith, John",
			want:   "Doe et. al.",
		},
		{
			name:   "single author passes through",
			author: "Jane Doe",
			want:   "Jane Doe",
		},
		{
			name:   "single surname-first author passes through",
			author: "Doe, Jane",
			want:   "Doe, Jane",
		},
		{
			name:   "three authors still keep only the first",
			author: "A One and B Two and C Three",
			want:   "A One et. al.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortenAuthor(tt.author))
		})
	}
}
