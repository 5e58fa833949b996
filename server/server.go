// Package server hosts the completion engine behind the Language Server
// Protocol. The default transport is stdio, the usual arrangement for editor
// clients; a WebSocket transport is available for browser-based editors.
package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"
	"go.uber.org/zap"

	"github.com/teranos/texref/errors"
	"github.com/teranos/texref/tex/lsp"
)

const serverName = "texref Language Server"

// Server binds the language service to an LSP transport.
type Server struct {
	service *lsp.Service
	logger  *zap.SugaredLogger
}

// New creates a server around the given language service.
func New(service *lsp.Service, logger *zap.SugaredLogger) *Server {
	return &Server{service: service, logger: logger}
}

// RunStdio serves LSP over stdin/stdout until the client disconnects.
// Log output goes to stderr; stdout belongs to the protocol.
func (s *Server) RunStdio() error {
	s.logger.Infow("Serving LSP over stdio")
	return glspserver.NewServer(s.protocolHandler(), serverName, false).RunStdio()
}

// RunWebSocket serves LSP over WebSocket connections at addr (path /lsp).
// Each connection gets its own handler and document cache.
func (s *Server) RunWebSocket(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/lsp", s.handleWebSocket)

	s.logger.Infow("Serving LSP over WebSocket", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		return errors.Wrap(err, "lsp websocket server")
	}
	return nil
}

var upgrader = websocket.Upgrader{
	// The server binds locally for editor integration; cross-origin browser
	// clients are expected during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebSocket upgrades HTTP to WebSocket and serves LSP on it. Blocks
// until the connection closes.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.logger.Infow("LSP WebSocket connection request", "remote", r.RemoteAddr)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Errorw("Failed to upgrade WebSocket", "error", err)
		return
	}

	glspserver.NewServer(s.protocolHandler(), serverName, false).ServeWebSocket(conn)

	s.logger.Infow("LSP WebSocket connection closed", "remote", r.RemoteAddr)
}

// protocolHandler wires a fresh document-caching handler into the glsp
// protocol surface.
func (s *Server) protocolHandler() *protocol.Handler {
	h := newHandler(s.service, s.logger)
	return &protocol.Handler{
		Initialize:             h.Initialize,
		Initialized:            h.Initialized,
		Shutdown:               h.Shutdown,
		TextDocumentDidOpen:    h.TextDocumentDidOpen,
		TextDocumentDidChange:  h.TextDocumentDidChange,
		TextDocumentDidClose:   h.TextDocumentDidClose,
		TextDocumentCompletion: h.TextDocumentCompletion,
	}
}
