package config

import (
	"github.com/spf13/viper"
)

// SetDefaults installs the built-in command vocabulary and display settings.
// Every key can be overridden from texref.toml or TEXREF_* environment
// variables.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("commands.reference", []string{"ref", "refv"})
	v.SetDefault("commands.citation", []string{"cite", "citep", "citev"})
	v.SetDefault("commands.bibliography", []string{"bibliography"})
	v.SetDefault("commands.sectioning", []string{
		"chapter",
		"section",
		"subsection",
		"subsubsection",
		"paragraph",
		"subparagraph",
	})
	// KOMA-Script style aliases: sectioning commands reported under the
	// type they stand in for.
	v.SetDefault("commands.special_sectioning", map[string]string{
		"addchap": "chapter",
		"addsec":  "section",
	})

	v.SetDefault("files.extensions", []string{".tex"})

	v.SetDefault("display.name_length", 30)
	v.SetDefault("display.title_length", 30)

	v.SetDefault("server.listen", "")
}
