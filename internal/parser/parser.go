package parser

import (
	"regexp"
	"strings"
)

var (
	// Matches a whole MONS: or KMONS: directive line, newline included.
	directiveRegex = regexp.MustCompile(`K?MONS:[^\n]*\n`)
	// Collapses a run of whitespace to the run's first character.
	whitespaceRun = regexp.MustCompile(`(\s)\s+`)
)

// DirectiveRegex returns the pattern used to locate MONS:/KMONS: lines
// in pre-processed file text.
func DirectiveRegex() *regexp.Regexp {
	return directiveRegex
}

// Normalize strips directive syntax from a single monster spec candidate.
//
// KMONS: lines carry a glyph assignment ("KMONS: D = orc"); only the part
// after the last "=" names the monster. Any leftover "MONS:" marker is
// removed and whitespace runs are collapsed. Normalize is idempotent and
// never fails; the result may be empty.
func Normalize(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "KMONS:") {
		parts := strings.Split(s, "=")
		s = strings.TrimSpace(parts[len(parts)-1])
	}

	s = strings.ReplaceAll(s, "MONS:", "")
	s = whitespaceRun.ReplaceAllString(s, "$1")

	return strings.TrimSpace(s)
}

// SplitLine breaks one raw directive line into its individual monster spec
// candidates, normalized and in source order.
//
// A "/" separates alternative spawn choices; within an alternative a ","
// separates the entries of a weighted list. Splitting happens on the raw
// line; each resulting token is normalized on its own.
func SplitLine(line string) []string {
	var candidates []string

	for _, alt := range strings.Split(line, "/") {
		if strings.Contains(alt, ",") {
			candidates = append(candidates, strings.Split(alt, ",")...)
		} else {
			candidates = append(candidates, alt)
		}
	}

	specs := make([]string, len(candidates))
	for i, c := range candidates {
		specs[i] = Normalize(c)
	}
	return specs
}

// CullUnnamed keeps only specs carrying an explicit name. A spec without
// the "name" marker is an anonymous spawn entry, indistinguishable from
// any other monster of its kind. Order is preserved; repeats are kept.
func CullUnnamed(specs []string) []string {
	named := make([]string, 0, len(specs))
	for _, spec := range specs {
		if !strings.Contains(spec, "name") {
			continue
		}
		named = append(named, spec)
	}
	return named
}
