package catalog

import "testing"

func TestSearchIsCaseInsensitive(t *testing.T) {
	lower := Search("frango")
	upper := Search("FRANGO")

	if len(lower) == 0 {
		t.Fatal("expected at least one match for 'frango'")
	}
	if len(lower) != len(upper) {
		t.Fatalf("case changed the result set: %d vs %d matches", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i].ID != upper[i].ID {
			t.Errorf("result %d differs: %s vs %s", i, lower[i].ID, upper[i].ID)
		}
	}

	found := false
	for _, f := range lower {
		if f.Name == "Peito de Frango" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'Peito de Frango' in results for 'frango'")
	}
}

func TestSearchPreservesTableOrder(t *testing.T) {
	results := Search("a")
	all := All()

	pos := -1
	for _, r := range results {
		idx := -1
		for i, f := range all {
			if f.ID == r.ID {
				idx = i
				break
			}
		}
		if idx <= pos {
			t.Fatalf("result %q out of table order", r.Name)
		}
		pos = idx
	}
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	if got, want := len(Search("")), len(All()); got != want {
		t.Errorf("empty query matched %d foods, want %d", got, want)
	}
}

func TestSearchNoMatch(t *testing.T) {
	if results := Search("xyzzy"); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestLookup(t *testing.T) {
	food, ok := Lookup("2")
	if !ok {
		t.Fatal("expected food id 2 to exist")
	}
	if food.Name != "Ovo" {
		t.Errorf("food 2 name = %q, want Ovo", food.Name)
	}
	if food.Calories != 155 || food.Protein != 13 || food.Carbs != 1.1 || food.Fat != 11 {
		t.Errorf("unexpected macros for Ovo: %+v", food)
	}

	if _, ok := Lookup("999"); ok {
		t.Error("expected lookup of unknown id to report absence")
	}
}
