// Package lsp provides the language-service face of the completion engine:
// it classifies completion requests and turns engine candidates into
// transport-neutral completion items for protocol adapters.
package lsp

import (
	"context"
	"fmt"

	"github.com/teranos/texref/tex"
	"github.com/teranos/texref/tex/parser"
	"github.com/teranos/texref/tex/types"
)

// Service wraps the scan engine for LSP-style hosts.
type Service struct {
	engine *tex.Engine
}

// NewService creates a language service over the given engine.
func NewService(engine *tex.Engine) *Service {
	return &Service{engine: engine}
}

// CompletionRequest is one completion invocation: the current line's text,
// the cursor column within it, and the document path the request concerns.
type CompletionRequest struct {
	Line   string
	Column int
	Path   string
}

// ShouldTrigger reports whether the cursor position asks for completion at
// all. The classification is recomputed by Complete; no state is carried
// between the two calls.
func (s *Service) ShouldTrigger(req CompletionRequest) bool {
	return s.engine.Classify(s.request(req)) != parser.ActionNone
}

// Complete classifies the request and computes completion items in a single
// call. A request that triggers nothing returns ActionNone with an empty
// item list. Once started, a scan always runs to completion; ctx is only
// honored before the scan begins.
func (s *Service) Complete(ctx context.Context, req CompletionRequest) (parser.Action, []types.CompletionItem, error) {
	if err := ctx.Err(); err != nil {
		return parser.ActionNone, nil, err
	}

	action, candidates, err := s.engine.Complete(s.request(req))
	if err != nil {
		return action, nil, err
	}

	items := make([]types.CompletionItem, 0, len(candidates))
	for i, cand := range candidates {
		items = append(items, types.CompletionItem{
			Label:      cand.Token,
			Kind:       action.String(),
			InsertText: cand.Token,
			Detail:     cand.Display,
			SortText:   fmt.Sprintf("%04d", i),
		})
	}
	return action, items, nil
}

// DebugInfo describes the service's view of a document, for host diagnostics.
func (s *Service) DebugInfo(path string) string {
	return s.engine.DebugInfo(path)
}

func (s *Service) request(req CompletionRequest) tex.Request {
	return tex.Request{Line: req.Line, Column: req.Column, Path: req.Path}
}
