package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/texref/cmd/texref/commands"
	"github.com/teranos/texref/logger"
)

var rootCmd = &cobra.Command{
	Use:   "texref",
	Short: "texref - completion engine for LaTeX references and citations",
	Long: `texref - heuristic completion engine for LaTeX documents.

texref scans a project's .tex files for label definitions and bibliography
attachments and turns them into ranked completion candidates for \ref{ and
\cite{ commands.

Available commands:
  scan    - Scan a directory and print everything referable and citable
  serve   - Host the engine as a Language Server (stdio or WebSocket)
  config  - Show the effective configuration
  version - Show version information

Examples:
  texref scan .             # List labels and bibliography entries
  texref serve              # LSP over stdio for editor integration
  texref serve --listen :7430
  texref config show`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit structured JSON log output")

	rootCmd.AddCommand(commands.ScanCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
