package formulas

import "testing"

func TestAll(t *testing.T) {
	cats := All()
	if len(cats) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(cats))
	}
	total := 0
	for _, c := range cats {
		total += len(c.Items)
	}
	if total != 9 {
		t.Fatalf("expected 9 formulas, got %d", total)
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCats  int
		wantItems int
	}{
		{"empty query returns all", "", 3, 9},
		{"match by name", "logarit", 1, 1},
		{"case insensitive", "LOGARIT", 1, 1},
		{"match by latex source", `\sin`, 2, 3},
		{"no match", "ma trận", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query)
			if len(got) != tt.wantCats {
				t.Fatalf("Search(%q) returned %d categories, want %d", tt.query, len(got), tt.wantCats)
			}
			items := 0
			for _, c := range got {
				items += len(c.Items)
			}
			if items != tt.wantItems {
				t.Fatalf("Search(%q) returned %d items, want %d", tt.query, items, tt.wantItems)
			}
		})
	}
}

func TestSearchOmitsEmptyCategories(t *testing.T) {
	got := Search("pythagore")
	if len(got) != 1 {
		t.Fatalf("expected 1 category, got %d", len(got))
	}
	if got[0].Name != "Lượng giác" {
		t.Fatalf("expected Lượng giác, got %q", got[0].Name)
	}
}
