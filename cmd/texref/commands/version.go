package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/texref/internal/version"
)

// VersionCmd prints version information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show texref version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
