package usecase

import (
	"testing"

	"github.com/dishdecider/backend/internal/domain"
)

func TestNormalizeLabels(t *testing.T) {
	_, categoryMap := BuildTree([]domain.MenuItem{
		{ID: "1", Category1: "Food", Category2: "Hot Mains"},
		{ID: "2", Category1: "Drinks", Category2: "hot mains"},
		{ID: "3", Category1: "Drinks", Category2: "Iced  Tea"},
	})

	testCases := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "keeps exact labels",
			input: []string{"Food", "hot mains"},
			want:  []string{"Food", "hot mains"},
		},
		{
			name:  "folds case",
			input: []string{"FOOD", "drinks"},
			want:  []string{"Food", "Drinks"},
		},
		{
			name:  "collapses whitespace",
			input: []string{"  Hot\tMAINS  "},
			want:  []string{"Hot Mains"}, // first label in map order wins
		},
		{
			name:  "matches label that itself has extra spaces",
			input: []string{"iced tea"},
			want:  []string{"Iced  Tea"},
		},
		{
			name:  "keeps unknown input verbatim",
			input: []string{"Pizza "},
			want:  []string{"Pizza "},
		},
		{
			name:  "empty input",
			input: []string{},
			want:  []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeLabels(tc.input, categoryMap)
			if !equalStrings(got, tc.want) {
				t.Errorf("NormalizeLabels(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeLabels_NilMap(t *testing.T) {
	got := NormalizeLabels([]string{"Food"}, nil)
	if !equalStrings(got, []string{"Food"}) {
		t.Errorf("got %q, want input unchanged", got)
	}
}
