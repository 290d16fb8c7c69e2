package usecase

import (
	"regexp"
	"strings"

	"github.com/dishdecider/backend/internal/domain"
)

// Multiple spaces cleanup
var multiSpacePattern = regexp.MustCompile(`\s+`)

// NormalizeLabels maps typed user input onto labels known to the category map.
// Exact labels are kept as-is. Otherwise the entry is trimmed, its whitespace
// collapsed, and matched case-insensitively; the first label seen in map order
// wins. Entries matching nothing are returned verbatim.
func NormalizeLabels(input []string, m *domain.CategoryMap) []string {
	exact := make(map[string]bool)
	folded := make(map[string]string)
	collectLabels(m, exact, folded)

	out := make([]string, 0, len(input))
	for _, raw := range input {
		if exact[raw] {
			out = append(out, raw)
			continue
		}
		if label, ok := folded[foldLabel(raw)]; ok {
			out = append(out, label)
			continue
		}
		out = append(out, raw)
	}
	return out
}

func foldLabel(s string) string {
	s = multiSpacePattern.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

func collectLabels(m *domain.CategoryMap, exact map[string]bool, folded map[string]string) {
	if m == nil {
		return
	}
	for _, label := range m.ChildLabels() {
		exact[label] = true
		key := foldLabel(label)
		if _, ok := folded[key]; !ok {
			folded[key] = label
		}
		collectLabels(m.Subcategories[label], exact, folded)
	}
}
