package server

import (
	"context"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.uber.org/zap"

	"github.com/teranos/texref/errors"
	"github.com/teranos/texref/internal/util"
	"github.com/teranos/texref/tex/lsp"
)

// maxOpenDocuments bounds the document cache so a buggy client cannot
// exhaust memory by opening documents forever.
const maxOpenDocuments = 100

// handler implements the LSP protocol methods over the language service.
// It keeps a full-sync document cache so completion can see the current
// line even before the client has saved the file.
type handler struct {
	service   *lsp.Service
	logger    *zap.SugaredLogger
	documents map[string]string // URI -> document content
	mu        sync.RWMutex
}

func newHandler(service *lsp.Service, logger *zap.SugaredLogger) *handler {
	return &handler{
		service:   service,
		logger:    logger,
		documents: make(map[string]string),
	}
}

// Initialize handles the LSP initialize request.
func (h *handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.logger.Infow("LSP client initializing", "client", params.ClientInfo)

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities := protocol.ServerCapabilities{
		CompletionProvider: &protocol.CompletionOptions{
			TriggerCharacters: []string{"{"},
		},
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose: util.Ptr(true),
			Change:    &syncKind,
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: util.Ptr("0.1.0"),
		},
	}, nil
}

// Initialized is called after the client receives the InitializeResult.
func (h *handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.logger.Infow("LSP client initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *handler) Shutdown(ctx *glsp.Context) error {
	h.logger.Infow("LSP client shutting down")
	return nil
}

// TextDocumentDidOpen caches the opened document's content.
func (h *handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := string(params.TextDocument.URI)
	if _, exists := h.documents[uri]; !exists && len(h.documents) >= maxOpenDocuments {
		h.logger.Warnw("Document cache limit reached, rejecting document",
			"uri", uri, "open", len(h.documents))
		return errors.Newf("document cache limit reached (%d documents open)", maxOpenDocuments)
	}

	h.documents[uri] = params.TextDocument.Text
	h.logger.Debugw("Document opened", "uri", uri, "size", len(params.TextDocument.Text))
	return nil
}

// TextDocumentDidChange applies full-sync document changes.
func (h *handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := string(params.TextDocument.URI)
	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			h.documents[uri] = whole.Text
		}
	}

	h.logger.Debugw("Document changed", "uri", uri, "changes", len(params.ContentChanges))
	return nil
}

// TextDocumentDidClose evicts the document from the cache.
func (h *handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := string(params.TextDocument.URI)
	delete(h.documents, uri)

	h.logger.Debugw("Document closed", "uri", uri)
	return nil
}

// TextDocumentCompletion answers textDocument/completion from a fresh scan
// of the document's project directory.
func (h *handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (result any, err error) {
	// If scanning panics on hostile input, return an empty list instead of
	// taking the whole server down.
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorw("Panic in completion handler",
				"panic", r, "uri", params.TextDocument.URI)
			result = []protocol.CompletionItem{}
			err = nil
		}
	}()

	h.mu.RLock()
	uri := string(params.TextDocument.URI)
	content := h.documents[uri]
	h.mu.RUnlock()

	line := documentLine(content, int(params.Position.Line))

	req := lsp.CompletionRequest{
		Line:   line,
		Column: int(params.Position.Character),
		Path:   uriToPath(uri),
	}

	// glsp v0.2.2 does not carry a per-request context on *glsp.Context.
	reqCtx := context.Background()

	action, items, err := h.service.Complete(reqCtx, req)
	if err != nil {
		h.logger.Errorw("Completion error", "uri", uri, "error", err)
		return nil, err
	}

	kind := completionKind(action.String())
	completionItems := make([]protocol.CompletionItem, len(items))
	for i, item := range items {
		completionItems[i] = protocol.CompletionItem{
			Label:      item.Label,
			Kind:       kind,
			Detail:     stringPtrOrNil(item.Detail),
			InsertText: stringPtrOrNil(item.InsertText),
			SortText:   stringPtrOrNil(item.SortText),
		}
	}

	h.logger.Infow("LSP completion", "action", action.String(), "count", len(completionItems))
	return completionItems, nil
}

func stringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// completionKind maps the engine's action to an LSP CompletionItemKind.
func completionKind(action string) *protocol.CompletionItemKind {
	var k protocol.CompletionItemKind
	switch action {
	case "reference":
		k = protocol.CompletionItemKindReference
	case "citation":
		k = protocol.CompletionItemKindText
	default:
		k = protocol.CompletionItemKindText
	}
	return &k
}

// documentLine returns line n of content, empty when out of range.
func documentLine(content string, n int) string {
	lines := strings.Split(content, "\n")
	if n < 0 || n >= len(lines) {
		return ""
	}
	return lines[n]
}

// uriToPath strips the file scheme from a document URI. Non-file URIs pass
// through unchanged; the engine will simply find no files to scan.
func uriToPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
