package usecase

import (
	"strings"

	"github.com/dishdecider/backend/internal/domain"
)

// pathKey is used for set membership; labels never contain NUL
func pathKey(p domain.SelectionPath) string {
	return strings.Join(p, "\x00")
}

// CompletePaths de-duplicates paths (first occurrence wins) and keeps only
// those whose every strict prefix is itself in the input.
func CompletePaths(paths []domain.SelectionPath) []domain.SelectionPath {
	present := make(map[string]bool, len(paths))
	for _, p := range paths {
		present[pathKey(p)] = true
	}

	seen := make(map[string]bool, len(paths))
	complete := make([]domain.SelectionPath, 0, len(paths))
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		key := pathKey(p)
		if seen[key] {
			continue
		}
		seen[key] = true

		ok := true
		for i := 1; i < len(p); i++ {
			if !present[pathKey(p[:i])] {
				ok = false
				break
			}
		}
		if ok {
			complete = append(complete, p)
		}
	}
	return complete
}

// TerminalPaths drops every path that is a strict prefix of another path
// in the set, keeping the most specific choice per branch.
func TerminalPaths(paths []domain.SelectionPath) []domain.SelectionPath {
	terminal := make([]domain.SelectionPath, 0, len(paths))
	for i, p := range paths {
		extended := false
		for j, q := range paths {
			if i != j && p.IsStrictPrefixOf(q) {
				extended = true
				break
			}
		}
		if !extended {
			terminal = append(terminal, p)
		}
	}
	return terminal
}

// ResolveTerminalPaths is CompletePaths followed by TerminalPaths
func ResolveTerminalPaths(paths []domain.SelectionPath) []domain.SelectionPath {
	return TerminalPaths(CompletePaths(paths))
}
