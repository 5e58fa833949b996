package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/texref/config"
)

// ConfigCmd groups configuration inspection subcommands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect texref configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Print the effective configuration after defaults, config files, and
TEXREF_* environment variables have been merged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println("Commands")
		pterm.Printfln("  reference:    \\%s{", strings.Join(cfg.Commands.Reference, "{ \\"))
		pterm.Printfln("  citation:     \\%s{", strings.Join(cfg.Commands.Citation, "{ \\"))
		pterm.Printfln("  bibliography: \\%s", strings.Join(cfg.Commands.Bibliography, " \\"))
		pterm.Printfln("  sectioning:   \\%s", strings.Join(cfg.Commands.Sectioning, " \\"))
		for cmd, reports := range cfg.Commands.SpecialSectioning {
			pterm.Printfln("  special:      \\%s -> %s", cmd, reports)
		}

		pterm.DefaultSection.Println("Files")
		pterm.Printfln("  extensions: %s", strings.Join(cfg.Files.Extensions, " "))

		pterm.DefaultSection.Println("Display")
		pterm.Printfln("  name length:  %d", cfg.Display.NameLength)
		pterm.Printfln("  title length: %d", cfg.Display.TitleLength)

		pterm.DefaultSection.Println("Server")
		listen := cfg.Server.Listen
		if listen == "" {
			listen = "(stdio)"
		}
		pterm.Printfln("  listen: %s", listen)

		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
}
