package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dishdecider/backend/internal/domain"
)

// PathDelimiter joins selection path labels on the wire
const PathDelimiter = "/"

// EncodePath joins labels with delim. A label containing delim cannot be
// round-tripped and yields ErrMalformedPath.
func EncodePath(path domain.SelectionPath, delim string) (string, error) {
	for _, label := range path {
		if delim != "" && strings.Contains(label, delim) {
			return "", fmt.Errorf("%w: label %q contains delimiter %q", domain.ErrMalformedPath, label, delim)
		}
	}
	return strings.Join(path, delim), nil
}

// DecodePath splits s on delim and strips a leading "subcategories" marker
func DecodePath(s, delim string) (domain.SelectionPath, error) {
	if s == "" || delim == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrMalformedPath, s)
	}
	parts := strings.Split(s, delim)
	if len(parts) > 1 && parts[0] == domain.SubcategoriesKey {
		parts = parts[1:]
	}
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: empty label in %q", domain.ErrMalformedPath, s)
		}
	}
	return domain.SelectionPath(parts), nil
}

// EncodePaths encodes every path, failing on the first malformed one
func EncodePaths(paths []domain.SelectionPath, delim string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		s, err := EncodePath(p, delim)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// DecodePaths decodes every string. Malformed entries are dropped and
// returned separately; for traversal they behave like paths that match nothing.
func DecodePaths(strs []string, delim string) ([]domain.SelectionPath, []string) {
	paths := make([]domain.SelectionPath, 0, len(strs))
	var malformed []string
	for _, s := range strs {
		p, err := DecodePath(s, delim)
		if err != nil {
			malformed = append(malformed, s)
			continue
		}
		paths = append(paths, p)
	}
	return paths, malformed
}

// SafeGet walks node one key at a time. Maps are indexed by key, slices by
// the key parsed as an integer. Any miss reports false; it never panics.
func SafeGet(node any, path []string) (any, bool) {
	current := node
	for _, key := range path {
		next, ok := step(current, key)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func step(node any, key string) (any, bool) {
	switch n := node.(type) {
	case nil:
		return nil, false
	case domain.Keyed:
		return n.Lookup(key)
	case map[string]any:
		v, ok := n[key]
		return v, ok
	case []any:
		return index(n, key)
	case []string:
		return index(n, key)
	case []domain.MenuItem:
		return index(n, key)
	default:
		return nil, false
	}
}

func index[T any](s []T, key string) (any, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= len(s) {
		return nil, false
	}
	return s[i], true
}

// mapKeyPath converts a label path into the key path of a CategoryMap:
// subcategories/<l1>/subcategories/<l2>/.../<leaf>
func mapKeyPath(path domain.SelectionPath, leaf string) []string {
	keys := make([]string, 0, 2*len(path)+1)
	for _, label := range path {
		keys = append(keys, domain.SubcategoriesKey, label)
	}
	if leaf != "" {
		keys = append(keys, leaf)
	}
	return keys
}

// namesAt returns the child names recorded in the category map under path
func namesAt(m *domain.CategoryMap, path domain.SelectionPath) ([]string, bool) {
	v, ok := SafeGet(m, mapKeyPath(path, domain.NamesKey))
	if !ok {
		return nil, false
	}
	names, ok := v.([]string)
	if !ok {
		return nil, false
	}
	return names, true
}
