package usecase

import (
	"testing"

	"github.com/dishdecider/backend/internal/domain"
)

func p(labels ...string) domain.SelectionPath {
	return domain.SelectionPath(labels)
}

func equalPaths(a, b []domain.SelectionPath) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func TestCompletePaths(t *testing.T) {
	testCases := []struct {
		name  string
		input []domain.SelectionPath
		want  []domain.SelectionPath
	}{
		{
			name:  "empty input",
			input: nil,
			want:  []domain.SelectionPath{},
		},
		{
			name:  "single label is trivially complete",
			input: []domain.SelectionPath{p("Food")},
			want:  []domain.SelectionPath{p("Food")},
		},
		{
			name:  "drops path with missing ancestor",
			input: []domain.SelectionPath{p("Food"), p("Drinks", "Soda")},
			want:  []domain.SelectionPath{p("Food")},
		},
		{
			name:  "drops path missing a middle ancestor",
			input: []domain.SelectionPath{p("Food"), p("Food", "Mains", "Spicy")},
			want:  []domain.SelectionPath{p("Food")},
		},
		{
			name:  "collapses duplicates keeping first occurrence order",
			input: []domain.SelectionPath{p("Food"), p("Food", "Mains"), p("Food"), p("Food", "Mains")},
			want:  []domain.SelectionPath{p("Food"), p("Food", "Mains")},
		},
		{
			name:  "ancestor recorded after descendant still counts",
			input: []domain.SelectionPath{p("Food", "Mains"), p("Food")},
			want:  []domain.SelectionPath{p("Food", "Mains"), p("Food")},
		},
		{
			name:  "skips empty paths",
			input: []domain.SelectionPath{p(), p("Food")},
			want:  []domain.SelectionPath{p("Food")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CompletePaths(tc.input)
			if !equalPaths(got, tc.want) {
				t.Errorf("CompletePaths() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTerminalPaths(t *testing.T) {
	testCases := []struct {
		name  string
		input []domain.SelectionPath
		want  []domain.SelectionPath
	}{
		{
			name:  "keeps deepest path per branch",
			input: []domain.SelectionPath{p("Food"), p("Food", "Mains")},
			want:  []domain.SelectionPath{p("Food", "Mains")},
		},
		{
			name:  "keeps siblings",
			input: []domain.SelectionPath{p("Food"), p("Food", "Mains"), p("Food", "Sides")},
			want:  []domain.SelectionPath{p("Food", "Mains"), p("Food", "Sides")},
		},
		{
			name:  "keeps unrelated branches",
			input: []domain.SelectionPath{p("Food"), p("Drinks")},
			want:  []domain.SelectionPath{p("Food"), p("Drinks")},
		},
		{
			name:  "same label under different parents is not a prefix",
			input: []domain.SelectionPath{p("Mains"), p("Food", "Mains")},
			want:  []domain.SelectionPath{p("Mains"), p("Food", "Mains")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := TerminalPaths(tc.input)
			if !equalPaths(got, tc.want) {
				t.Errorf("TerminalPaths() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResolveTerminalPaths_NoPrefixPairs(t *testing.T) {
	input := []domain.SelectionPath{
		p("A"), p("A", "B"), p("A", "B", "C"), p("A", "D"),
		p("E"), p("E", "F"), p("X", "Y"), p("A", "B"),
	}
	got := ResolveTerminalPaths(input)

	for i, a := range got {
		for j, b := range got {
			if i != j && a.IsStrictPrefixOf(b) {
				t.Errorf("terminal set contains %v which is a prefix of %v", a, b)
			}
		}
	}

	want := []domain.SelectionPath{p("A", "B", "C"), p("A", "D"), p("E", "F")}
	if !equalPaths(got, want) {
		t.Errorf("ResolveTerminalPaths() = %v, want %v", got, want)
	}
}
