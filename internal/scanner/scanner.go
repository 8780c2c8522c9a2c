package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/qoala/monster/internal/parser"
)

// ErrNotDirectory is reported when the scan root does not exist or is not
// a directory. It is raised before any file is opened.
var ErrNotDirectory = errors.New("not a directory")

// Reporter receives one notification per processed file. It is a
// diagnostic side channel only; implementations must not affect results.
type Reporter interface {
	FileProcessed(name string)
}

type nopReporter struct{}

func (nopReporter) FileProcessed(string) {}

// Options configures a Scanner. An empty extension matches every file;
// empty ignore lists ignore nothing.
type Options struct {
	Extension     string   // recognized file extension, e.g. ".des"
	IgnoreFiles   []string // base filenames skipped entirely
	IgnoreFolders []string // directory base names whose subtrees are skipped
	Reporter      Reporter // diagnostic sink; nil means silent
}

// Scanner walks a directory tree and extracts monster spec candidates
// from MONS:/KMONS: directive lines.
type Scanner struct {
	opts    Options
	ignored map[string]struct{}
	skipped map[string]struct{}
}

// New creates a Scanner with the given options.
func New(opts Options) *Scanner {
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}

	ignored := make(map[string]struct{}, len(opts.IgnoreFiles))
	for _, name := range opts.IgnoreFiles {
		ignored[name] = struct{}{}
	}
	skipped := make(map[string]struct{}, len(opts.IgnoreFolders))
	for _, name := range opts.IgnoreFolders {
		skipped[name] = struct{}{}
	}

	return &Scanner{
		opts:    opts,
		ignored: ignored,
		skipped: skipped,
	}
}

// Scan walks root and returns every monster spec candidate found, in
// traversal order, then file-line order, then split order within a line.
// The candidates are unfiltered; pass them through parser.CullUnnamed to
// drop anonymous entries.
func (s *Scanner) Scan(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	// seen is keyed by base filename: a file whose base name already
	// occurred anywhere in the tree is skipped, matching the historical
	// output of this generator.
	seen := make(map[string]struct{})

	var candidates []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()

		if d.IsDir() {
			if _, skip := s.skipped[name]; skip {
				return filepath.SkipDir
			}
			return nil
		}

		if _, done := seen[name]; done {
			return nil
		}
		if _, ignore := s.ignored[name]; ignore {
			return nil
		}
		if !strings.HasSuffix(name, s.opts.Extension) {
			return nil
		}

		specs, err := s.scanFile(path)
		if err != nil {
			return err
		}
		candidates = append(candidates, specs...)
		seen[name] = struct{}{}

		s.opts.Reporter.FileProcessed(name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

func (s *Scanner) scanFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text := preprocess(string(raw))

	var specs []string
	for _, line := range parser.DirectiveRegex().FindAllString(text, -1) {
		specs = append(specs, parser.SplitLine(line)...)
	}
	return specs, nil
}

// preprocess prepares raw file text for directive matching. Lines are
// stripped and rejoined, wrapped spell lists are unjoined, and explicit
// backslash continuations are collapsed so that every logical directive
// occupies a single physical line.
func preprocess(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	joined := strings.Join(lines, "\n") + "\n"

	// A spell list may be wrapped after its ";" terminator; the break
	// must be removed before matching or the list appears truncated.
	joined = strings.ReplaceAll(joined, ";\n", ";")
	joined = strings.ReplaceAll(joined, "\\\n", "")

	return joined
}
