// Package config provides texref configuration backed by Viper: defaults,
// an optional texref.toml (project-local, found by walking up the directory
// tree, or user-level under ~/.texref), and TEXREF_* environment overrides.
package config

// Config is the root configuration for the completion engine and its hosts.
type Config struct {
	Commands CommandsConfig `mapstructure:"commands"`
	Files    FilesConfig    `mapstructure:"files"`
	Display  DisplayConfig  `mapstructure:"display"`
	Server   ServerConfig   `mapstructure:"server"`
}

// CommandsConfig enumerates the LaTeX command vocabulary the scanners
// recognize. All lists are literal command names without the backslash.
type CommandsConfig struct {
	// Reference commands trigger referable completion (\ref{).
	Reference []string `mapstructure:"reference"`
	// Citation commands trigger citable completion (\cite{).
	Citation []string `mapstructure:"citation"`
	// Bibliography commands attach .bib files (\bibliography{a,b}).
	Bibliography []string `mapstructure:"bibliography"`
	// Sectioning commands resolve a label's context (chapter..subparagraph).
	Sectioning []string `mapstructure:"sectioning"`
	// SpecialSectioning maps aliased sectioning commands to the type they
	// report, e.g. addchap -> chapter.
	SpecialSectioning map[string]string `mapstructure:"special_sectioning"`
}

// FilesConfig controls which files the engine scans.
type FilesConfig struct {
	// Extensions of LaTeX source files, with leading dot.
	Extensions []string `mapstructure:"extensions"`
}

// DisplayConfig controls candidate formatting.
type DisplayConfig struct {
	// NameLength is the shortening target for referable names.
	NameLength int `mapstructure:"name_length"`
	// TitleLength is the shortening target for citable titles.
	TitleLength int `mapstructure:"title_length"`
}

// ServerConfig configures the LSP host.
type ServerConfig struct {
	// Listen is the WebSocket bind address; empty means stdio transport.
	Listen string `mapstructure:"listen"`
}

// HasExtension reports whether path ends in one of the configured LaTeX
// source extensions.
func (f FilesConfig) HasExtension(path string) bool {
	for _, ext := range f.Extensions {
		if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}
