package usecase

import (
	"errors"
	"testing"

	"github.com/dishdecider/backend/internal/domain"
)

func TestEncodeDecodePath(t *testing.T) {
	testCases := []struct {
		name    string
		path    domain.SelectionPath
		encoded string
	}{
		{name: "single label", path: domain.SelectionPath{"Food"}, encoded: "Food"},
		{name: "nested labels", path: domain.SelectionPath{"Food", "Mains", "Spicy"}, encoded: "Food/Mains/Spicy"},
		{name: "labels with spaces", path: domain.SelectionPath{"Hot Drinks", "Black Tea"}, encoded: "Hot Drinks/Black Tea"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodePath(tc.path, PathDelimiter)
			if err != nil {
				t.Fatalf("EncodePath() error = %v", err)
			}
			if got != tc.encoded {
				t.Errorf("EncodePath() = %q, want %q", got, tc.encoded)
			}

			back, err := DecodePath(got, PathDelimiter)
			if err != nil {
				t.Fatalf("DecodePath() error = %v", err)
			}
			if !back.Equal(tc.path) {
				t.Errorf("DecodePath() = %v, want %v", back, tc.path)
			}
		})
	}
}

func TestEncodePath_LabelContainsDelimiter(t *testing.T) {
	_, err := EncodePath(domain.SelectionPath{"Food", "Salad/Bowl"}, PathDelimiter)
	if !errors.Is(err, domain.ErrMalformedPath) {
		t.Errorf("error = %v, want ErrMalformedPath", err)
	}
}

func TestDecodePath(t *testing.T) {
	t.Run("strips leading subcategories marker", func(t *testing.T) {
		got, err := DecodePath("subcategories/Food/Mains", PathDelimiter)
		if err != nil {
			t.Fatalf("DecodePath() error = %v", err)
		}
		if !got.Equal(domain.SelectionPath{"Food", "Mains"}) {
			t.Errorf("DecodePath() = %v, want [Food Mains]", got)
		}
	})

	t.Run("keeps a lone marker label", func(t *testing.T) {
		got, err := DecodePath("subcategories", PathDelimiter)
		if err != nil {
			t.Fatalf("DecodePath() error = %v", err)
		}
		if !got.Equal(domain.SelectionPath{"subcategories"}) {
			t.Errorf("DecodePath() = %v", got)
		}
	})

	for _, bad := range []string{"", "Food//Mains", "/Food", "Food/"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			if _, err := DecodePath(bad, PathDelimiter); !errors.Is(err, domain.ErrMalformedPath) {
				t.Errorf("DecodePath(%q) error = %v, want ErrMalformedPath", bad, err)
			}
		})
	}
}

func TestDecodePaths_SkipsMalformed(t *testing.T) {
	paths, malformed := DecodePaths([]string{"Food", "", "Food/Mains", "a//b"}, PathDelimiter)
	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d, want 2", len(paths))
	}
	if len(malformed) != 2 || malformed[0] != "" || malformed[1] != "a//b" {
		t.Errorf("malformed = %q, want [\"\" \"a//b\"]", malformed)
	}
}

func TestSafeGet(t *testing.T) {
	nested := map[string]any{
		"a": map[string]any{
			"list": []any{"zero", map[string]any{"deep": 42}},
		},
		"names": []string{"x", "y"},
	}

	testCases := []struct {
		name   string
		path   []string
		want   any
		wantOK bool
	}{
		{name: "empty path returns root", path: nil, want: nil, wantOK: true},
		{name: "map key", path: []string{"a", "list", "0"}, want: "zero", wantOK: true},
		{name: "index then key", path: []string{"a", "list", "1", "deep"}, want: 42, wantOK: true},
		{name: "string slice index", path: []string{"names", "1"}, want: "y", wantOK: true},
		{name: "missing key", path: []string{"a", "nope"}, wantOK: false},
		{name: "non-integer index", path: []string{"a", "list", "first"}, wantOK: false},
		{name: "index out of range", path: []string{"a", "list", "5"}, wantOK: false},
		{name: "negative index", path: []string{"names", "-1"}, wantOK: false},
		{name: "descend into scalar", path: []string{"a", "list", "0", "x"}, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := SafeGet(nested, tc.path)
			if ok != tc.wantOK {
				t.Fatalf("SafeGet() ok = %v, want %v", ok, tc.wantOK)
			}
			if !tc.wantOK || tc.path == nil {
				return
			}
			if got != tc.want {
				t.Errorf("SafeGet() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSafeGet_Nil(t *testing.T) {
	if _, ok := SafeGet(nil, []string{"a"}); ok {
		t.Error("SafeGet(nil) ok = true, want false")
	}
	var m *domain.CategoryMap
	if _, ok := SafeGet(m, []string{"names"}); ok {
		t.Error("SafeGet(nil map) ok = true, want false")
	}
}

func TestSafeGet_CategoryStructures(t *testing.T) {
	tree, categoryMap := BuildTree([]domain.MenuItem{
		{ID: "1", Category1: "Food", Category2: "Mains"},
	})

	names, ok := SafeGet(categoryMap, []string{"subcategories", "Food", "names", "0"})
	if !ok || names != "Mains" {
		t.Errorf("SafeGet(map) = %v, %v; want Mains, true", names, ok)
	}

	item, ok := SafeGet(tree, []string{"Food", "Mains", "items", "0"})
	if !ok {
		t.Fatal("SafeGet(tree) ok = false, want true")
	}
	if got := item.(domain.MenuItem).ID; got != "1" {
		t.Errorf("item ID = %s, want 1", got)
	}

	if _, ok := SafeGet(tree, []string{"Food", "items"}); ok {
		t.Error("SafeGet(tree) found items on a node without items")
	}
}

func TestNamesAt(t *testing.T) {
	_, categoryMap := BuildTree([]domain.MenuItem{
		{ID: "1", Category1: "Food", Category2: "Mains"},
		{ID: "2", Category1: "Food", Category2: "Sides"},
	})

	got, ok := namesAt(categoryMap, domain.SelectionPath{"Food"})
	if !ok || len(got) != 2 || got[0] != "Mains" || got[1] != "Sides" {
		t.Errorf("namesAt(Food) = %v, %v", got, ok)
	}

	got, ok = namesAt(categoryMap, nil)
	if !ok || len(got) != 1 || got[0] != "Food" {
		t.Errorf("namesAt(root) = %v, %v", got, ok)
	}

	if _, ok := namesAt(categoryMap, domain.SelectionPath{"Drinks"}); ok {
		t.Error("namesAt(Drinks) ok = true, want false")
	}
}
