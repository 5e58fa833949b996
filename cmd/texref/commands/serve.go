package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/texref/config"
	"github.com/teranos/texref/logger"
	"github.com/teranos/texref/server"
	"github.com/teranos/texref/tex"
	"github.com/teranos/texref/tex/lsp"
)

// ServeCmd hosts the completion engine as a Language Server.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the completion engine as a Language Server",
	Long: `Serve the completion engine over the Language Server Protocol.

By default the server speaks LSP over stdio, which is what editor clients
expect. With --listen, it serves LSP over WebSocket connections instead
(path /lsp), for browser-based editors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		listen, _ := cmd.Flags().GetString("listen")
		if listen == "" {
			listen = cfg.Server.Listen
		}

		engine := tex.NewEngine(cfg, tex.OSFileSystem{}, logger.Logger)
		srv := server.New(lsp.NewService(engine), logger.Logger)

		if listen != "" {
			return srv.RunWebSocket(listen)
		}
		return srv.RunStdio()
	},
}

func init() {
	ServeCmd.Flags().String("listen", "", "Serve LSP over WebSocket at this address instead of stdio")
}
