package commands

import (
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/texref/config"
	"github.com/teranos/texref/logger"
	"github.com/teranos/texref/tex"
)

// ScanCmd scans a project directory and prints everything the completion
// engine would offer: citable bibliography entries and referable labels.
var ScanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Scan a directory for referable labels and citable entries",
	Long: `Scan all LaTeX files in a directory (default: the working directory)
and print the referable labels and citable bibliography entries found, the
same set the completion engine offers to an editor.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		dir, err := filepath.Abs(dir)
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		engine := tex.NewEngine(cfg, tex.OSFileSystem{}, logger.Logger)

		citables, err := engine.CollectCitables(dir)
		if err != nil {
			return err
		}
		referables, err := engine.CollectReferables(dir)
		if err != nil {
			return err
		}

		pterm.DefaultSection.Printfln("Citables (%d)", len(citables))
		for i := range citables {
			c := &citables[i]
			pterm.Printfln("%s %s: %s - %s (%s)",
				pterm.Gray(c.Abbreviation()),
				pterm.LightCyan(c.Label),
				c.Title, c.Author, c.CiteType)
		}

		pterm.DefaultSection.Printfln("Referables (%d)", len(referables))
		for i := range referables {
			r := &referables[i]
			pterm.Printfln("%s %s: %s (%s)",
				pterm.Gray(r.Abbreviation()),
				pterm.LightCyan(r.Label),
				r.Name, r.RefType)
		}

		return nil
	},
}
