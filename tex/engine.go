// Package tex is the orchestration layer of the completion engine: it runs
// the scanners over every LaTeX file of a project directory, aggregates and
// sorts the resulting entities, and formats them into completion candidates.
//
// Every request performs a fresh synchronous scan. There is no cache and no
// background indexing; staleness is bounded by "scan again on next request".
package tex

import (
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/texref/config"
	"github.com/teranos/texref/tex/bib"
	"github.com/teranos/texref/tex/parser"
	"github.com/teranos/texref/tex/types"
)

// Request is the completion request context handed in by the host: the text
// of the current line, the cursor column within it, and the file or directory
// the request concerns.
type Request struct {
	Line   string
	Column int
	Path   string
}

// Engine wires configuration, the filesystem collaborator, and the scanners
// into the two user-facing collection operations. Engines hold no mutable
// state; one instance serves any number of sequential requests.
type Engine struct {
	cfg *config.Config
	fs  FileSystem
	log *zap.SugaredLogger
}

// NewEngine creates an engine over the given collaborators.
func NewEngine(cfg *config.Config, fs FileSystem, log *zap.SugaredLogger) *Engine {
	return &Engine{cfg: cfg, fs: fs, log: log}
}

// Classify decides what kind of completion the request asks for, from the
// current line text up to the cursor.
func (e *Engine) Classify(req Request) parser.Action {
	col := req.Column
	if col < 0 {
		col = 0
	}
	if col > len(req.Line) {
		col = len(req.Line)
	}
	return parser.Classify(req.Line[:col], e.cfg.Commands.Reference, e.cfg.Commands.Citation)
}

// Complete classifies the request and computes its candidates in one call.
// The returned action tells the host whether completion applies at all
// (ActionNone yields no candidates and no error).
func (e *Engine) Complete(req Request) (parser.Action, []types.Candidate, error) {
	action := e.Classify(req)

	switch action {
	case parser.ActionReference:
		referables, err := e.CollectReferables(req.Path)
		if err != nil {
			return action, nil, err
		}
		return action, e.formatReferables(referables), nil
	case parser.ActionCitation:
		citables, err := e.CollectCitables(req.Path)
		if err != nil {
			return action, nil, err
		}
		return action, e.formatCitables(citables), nil
	default:
		return parser.ActionNone, nil, nil
	}
}

// CollectReferables scans every LaTeX file in the project directory for label
// definitions and returns the resulting entities in presentation order.
// Unreadable files are logged and skipped; only a failed directory
// enumeration fails the request.
func (e *Engine) CollectReferables(path string) ([]types.Referable, error) {
	dir := e.resolveDir(path)

	files, err := e.fs.ListFiles(dir, e.cfg.Files.Extensions)
	if err != nil {
		return nil, err
	}

	scanCfg := e.scanConfig()

	var referables []types.Referable
	for _, file := range files {
		content, err := e.fs.ReadFile(file)
		if err != nil {
			e.log.Warnw("Skipping unreadable file", "path", file, "error", err)
			continue
		}
		referables = append(referables, parser.ScanLabels(content, scanCfg)...)
	}

	sort.Slice(referables, func(i, j int) bool {
		return referables[i].Less(&referables[j])
	})

	e.log.Debugw("Collected referables", "directory", dir, "count", len(referables))
	return referables, nil
}

// CollectCitables scans every LaTeX file for bibliography attachments,
// parses each attached .bib file, and returns the citable entities in
// presentation order. Missing or unparsable bibliography files are logged
// and skipped.
func (e *Engine) CollectCitables(path string) ([]types.Citable, error) {
	dir := e.resolveDir(path)

	files, err := e.fs.ListFiles(dir, e.cfg.Files.Extensions)
	if err != nil {
		return nil, err
	}

	var bibliographies []string
	for _, file := range files {
		content, err := e.fs.ReadFile(file)
		if err != nil {
			e.log.Warnw("Skipping unreadable file", "path", file, "error", err)
			continue
		}
		bibliographies = append(bibliographies,
			parser.ScanBibliographies(content, e.cfg.Commands.Bibliography)...)
	}

	var citables []types.Citable
	for _, name := range bibliographies {
		bibPath := filepath.Join(dir, name+".bib")

		content, err := e.fs.ReadFile(bibPath)
		if err != nil {
			e.log.Warnw("Skipping bibliography", "path", bibPath, "error", err)
			continue
		}

		records, err := bib.ParseRecords(strings.NewReader(content))
		if err != nil {
			e.log.Warnw("Skipping unparsable bibliography", "path", bibPath, "error", err)
			continue
		}
		citables = append(citables, bib.Citables(records)...)
	}

	sort.Slice(citables, func(i, j int) bool {
		return citables[i].Less(&citables[j])
	})

	e.log.Debugw("Collected citables", "directory", dir, "count", len(citables))
	return citables, nil
}

// DebugInfo describes the engine's view of a request path, for host
// diagnostics.
func (e *Engine) DebugInfo(path string) string {
	return "TeX completion engine for " + path
}

// resolveDir maps a request path to the directory to scan: a path carrying a
// configured source extension is taken as a file and replaced by its
// containing directory, anything else is treated as the directory itself.
func (e *Engine) resolveDir(path string) string {
	if e.cfg.Files.HasExtension(path) {
		return filepath.Dir(path)
	}
	return path
}

// scanConfig converts the configured command vocabulary into the scanner's
// shape. Aliases are ordered by command name so scans are deterministic
// regardless of map iteration order.
func (e *Engine) scanConfig() parser.ScanConfig {
	aliases := make([]parser.SectioningAlias, 0, len(e.cfg.Commands.SpecialSectioning))
	for cmd, reports := range e.cfg.Commands.SpecialSectioning {
		aliases = append(aliases, parser.SectioningAlias{Command: cmd, Reports: reports})
	}
	sort.Slice(aliases, func(i, j int) bool {
		return aliases[i].Command < aliases[j].Command
	})

	return parser.ScanConfig{
		Sectioning: e.cfg.Commands.Sectioning,
		Aliases:    aliases,
	}
}

func (e *Engine) formatReferables(referables []types.Referable) []types.Candidate {
	limit := e.cfg.Display.NameLength
	candidates := make([]types.Candidate, 0, len(referables))
	for i := range referables {
		r := &referables[i]
		candidates = append(candidates, types.Candidate{
			Token:   r.Token(),
			Display: r.Abbreviation() + " " + r.ShortName(limit),
		})
	}
	return candidates
}

func (e *Engine) formatCitables(citables []types.Citable) []types.Candidate {
	limit := e.cfg.Display.TitleLength
	candidates := make([]types.Candidate, 0, len(citables))
	for i := range citables {
		c := &citables[i]
		candidates = append(candidates, types.Candidate{
			Token:   c.Token(),
			Display: c.Abbreviation() + " " + c.ShortTitle(limit) + " - " + c.ShortAuthor(),
		})
	}
	return candidates
}
