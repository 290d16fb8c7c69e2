package usecase

import (
	"testing"

	"github.com/dishdecider/backend/internal/domain"
)

func ids(items []domain.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResolveDishes(t *testing.T) {
	tree, _ := BuildTree([]domain.MenuItem{
		{ID: "burger", Category1: "Food", Category2: "Mains"},
		{ID: "curry", Category1: "Food", Category2: "Mains", Category3: "Spicy"},
		{ID: "fries", Category1: "Food", Category2: "Sides"},
		{ID: "cola", Category1: "Drinks", Category2: "Soda", Category3: "Cola"},
	})

	testCases := []struct {
		name  string
		paths []domain.SelectionPath
		want  []string
	}{
		{
			name:  "direct items at terminal node",
			paths: []domain.SelectionPath{p("Food", "Sides")},
			want:  []string{"fries"},
		},
		{
			name:  "node items win over deeper items",
			paths: []domain.SelectionPath{p("Food", "Mains")},
			want:  []string{"burger"},
		},
		{
			name:  "searches downward when node has no items",
			paths: []domain.SelectionPath{p("Drinks")},
			want:  []string{"cola"},
		},
		{
			name:  "first non-empty list depth-first",
			paths: []domain.SelectionPath{p("Food")},
			want:  []string{"burger"},
		},
		{
			name:  "missing label abandons path",
			paths: []domain.SelectionPath{p("Food", "Desserts"), p("Food", "Sides")},
			want:  []string{"fries"},
		},
		{
			name:  "overlapping paths duplicate items",
			paths: []domain.SelectionPath{p("Food", "Sides"), p("Food", "Sides")},
			want:  []string{"fries", "fries"},
		},
		{
			name:  "concatenates in path order",
			paths: []domain.SelectionPath{p("Drinks", "Soda"), p("Food", "Mains", "Spicy")},
			want:  []string{"cola", "curry"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(ResolveDishes(tree, tc.paths))
			if !equalStrings(got, tc.want) {
				t.Errorf("ResolveDishes() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResolveDishes_NilTree(t *testing.T) {
	got := ResolveDishes(nil, []domain.SelectionPath{p("Food")})
	if got == nil || len(got) != 0 {
		t.Errorf("ResolveDishes(nil) = %v, want empty non-nil slice", got)
	}
}
