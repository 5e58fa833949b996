package lsp

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teranos/texref/config"
	"github.com/teranos/texref/tex"
	"github.com/teranos/texref/tex/parser"
)

type memFS struct {
	files map[string]string
}

func (m memFS) ListFiles(dir string, extensions []string) ([]string, error) {
	var paths []string
	for path := range m.files {
		if filepath.Dir(path) != dir {
			continue
		}
		for _, ext := range extensions {
			if strings.HasSuffix(path, ext) {
				paths = append(paths, path)
				break
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (m memFS) ReadFile(path string) (string, error) {
	content, ok := m.files[path]
	if !ok {
		return "", assert.AnError
	}
	return content, nil
}

func newTestService(t *testing.T, fs tex.FileSystem) *Service {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)
	cfg, err := config.Load()
	require.NoError(t, err)
	return NewService(tex.NewEngine(cfg, fs, zap.NewNop().Sugar()))
}

func TestShouldTrigger(t *testing.T) {
	svc := newTestService(t, memFS{})

	assert.True(t, svc.ShouldTrigger(CompletionRequest{Line: `\ref{`, Column: 5}))
	assert.True(t, svc.ShouldTrigger(CompletionRequest{Line: `\cite{`, Column: 6}))
	assert.False(t, svc.ShouldTrigger(CompletionRequest{Line: `\ref{`, Column: 3}))
	assert.False(t, svc.ShouldTrigger(CompletionRequest{Line: `hello`, Column: 5}))
}

func TestCompleteProducesItems(t *testing.T) {
	fs := memFS{files: map[string]string{
		"/proj/main.tex": "\\bibliography{refs}\n\\section{Intro}\\label{sec:intro}\n" +
			"\\section{Methods}\\label{sec:methods}\n",
		"/proj/refs.bib": "@article{k1,\n  title = {T},\n  author = {A}\n}\n",
	}}

	svc := newTestService(t, fs)

	action, items, err := svc.Complete(context.Background(), CompletionRequest{
		Line:   `\ref{`,
		Column: 5,
		Path:   "/proj/main.tex",
	})
	require.NoError(t, err)
	assert.Equal(t, parser.ActionReference, action)
	require.Len(t, items, 2)

	assert.Equal(t, "sec:intro", items[0].Label)
	assert.Equal(t, "sec:intro", items[0].InsertText)
	assert.Equal(t, "se Intro", items[0].Detail)
	assert.Equal(t, "reference", items[0].Kind)

	// SortText preserves the engine's candidate order.
	assert.Equal(t, "0000", items[0].SortText)
	assert.Equal(t, "0001", items[1].SortText)

	action, items, err = svc.Complete(context.Background(), CompletionRequest{
		Line:   `\cite{`,
		Column: 6,
		Path:   "/proj/main.tex",
	})
	require.NoError(t, err)
	assert.Equal(t, parser.ActionCitation, action)
	require.Len(t, items, 1)
	assert.Equal(t, "k1", items[0].Label)
	assert.Equal(t, "citation", items[0].Kind)
}

func TestCompleteWithoutTrigger(t *testing.T) {
	svc := newTestService(t, memFS{})

	action, items, err := svc.Complete(context.Background(), CompletionRequest{
		Line:   "plain text",
		Column: 10,
		Path:   "/proj/main.tex",
	})
	require.NoError(t, err)
	assert.Equal(t, parser.ActionNone, action)
	assert.Empty(t, items)
}

func TestCompleteHonorsCancelledContext(t *testing.T) {
	svc := newTestService(t, memFS{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.Complete(ctx, CompletionRequest{Line: `\ref{`, Column: 5, Path: "/proj"})
	assert.Error(t, err)
}
