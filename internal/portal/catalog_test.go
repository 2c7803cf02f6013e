package portal

import (
	"testing"

	_ "github.com/vovakirdan/arcade-portal/internal/games/shooter"
)

func TestCatalogLookup(t *testing.T) {
	e, ok := Lookup("restaurant")
	if !ok {
		t.Fatal("restaurant should be in the catalog")
	}
	if e.Title != "Robot Chef" {
		t.Errorf("Title = %q, expected Robot Chef", e.Title)
	}
	if _, ok := Lookup("tetris"); ok {
		t.Error("tetris should not be in the catalog")
	}
	if Latest().Slug != "english-learning" {
		t.Errorf("Latest() = %q, expected english-learning", Latest().Slug)
	}
}

func TestCatalogSlugsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Catalog {
		if seen[e.Slug] {
			t.Errorf("duplicate slug %q", e.Slug)
		}
		seen[e.Slug] = true
	}
}

func TestPlayable(t *testing.T) {
	if !Playable("space-shooter") {
		t.Error("space-shooter should be playable")
	}
	if Playable("fruit-ninja") {
		t.Error("fruit-ninja has no implementation in this build")
	}
}
