package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/cura-cli/cura/internal/core/domain"
)

func makeAsset(name, category, path string, tags ...string) domain.Asset {
	now := time.Now()
	return domain.Asset{
		ID:          domain.NewID(),
		Name:        name,
		Category:    category,
		Kind:        domain.KindFile,
		LibraryPath: path,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestRegistry_InsertAndGet(t *testing.T) {
	r := New()
	a := makeAsset("Rock", "Materials", "assets/rock.png")

	if err := r.Insert(a); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := r.GetByID(a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Rock" {
		t.Errorf("expected Rock, got %s", got.Name)
	}

	// Returned value must be a copy, not an alias into the index.
	got.Name = "Mutated"
	again, _ := r.GetByID(a.ID)
	if again.Name != "Rock" {
		t.Error("GetByID leaked internal state")
	}
}

func TestRegistry_DuplicateID(t *testing.T) {
	r := New()
	a := makeAsset("Rock", "Materials", "assets/rock.png")
	if err := r.Insert(a); err != nil {
		t.Fatal(err)
	}

	dup := a
	dup.LibraryPath = "assets/other.png"
	if err := r.Insert(dup); !errors.Is(err, domain.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate for reused id, got %v", err)
	}
}

func TestRegistry_DuplicateLibraryPath(t *testing.T) {
	r := New()
	if err := r.Insert(makeAsset("Rock", "Materials", "assets/rock.png")); err != nil {
		t.Fatal(err)
	}

	clash := makeAsset("Other", "Materials", "assets/rock.png")
	if err := r.Insert(clash); !errors.Is(err, domain.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate for reused path, got %v", err)
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := New()
	a := makeAsset("Rock", "Materials", "assets/rock.png")
	if err := r.Insert(a); err != nil {
		t.Fatal(err)
	}

	if err := r.Remove(a.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := r.GetByID(a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after remove, got %v", err)
	}
	if r.HasLibraryPath("assets/rock.png") {
		t.Error("path index not cleaned up")
	}
	if err := r.Remove(a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for second remove, got %v", err)
	}
}

func TestRegistry_Replace_MovesCategoryIndex(t *testing.T) {
	r := New()
	a := makeAsset("Rock", "Materials", "assets/rock.png")
	if err := r.Insert(a); err != nil {
		t.Fatal(err)
	}

	updated := a.Clone()
	updated.Category = "Props"
	if err := r.Replace(a.ID, updated); err != nil {
		t.Fatalf("replace: %v", err)
	}

	if got := r.FilterByCategory("Materials"); len(got) != 0 {
		t.Errorf("expected empty Materials, got %d", len(got))
	}
	if got := r.FilterByCategory("Props"); len(got) != 1 {
		t.Errorf("expected 1 in Props, got %d", len(got))
	}
}

func TestRegistry_Replace_RejectsIDChange(t *testing.T) {
	r := New()
	a := makeAsset("Rock", "Materials", "assets/rock.png")
	if err := r.Insert(a); err != nil {
		t.Fatal(err)
	}

	swapped := a.Clone()
	swapped.ID = domain.NewID()
	if err := r.Replace(a.ID, swapped); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestRegistry_Search(t *testing.T) {
	r := New()
	blueprint := makeAsset("BluePrint_A", "Docs", "assets/bp.pdf")
	rock := makeAsset("Rock", "Materials", "assets/rock.png", "blueish")
	grass := makeAsset("Grass", "Materials", "assets/grass.png")

	for _, a := range []domain.Asset{blueprint, rock, grass} {
		if err := r.Insert(a); err != nil {
			t.Fatal(err)
		}
	}

	got := r.Search("blue")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	// Insertion order is the contract: blueprint was inserted first.
	if got[0].ID != blueprint.ID || got[1].ID != rock.ID {
		t.Error("search results not in insertion order")
	}

	if len(r.Search("")) != 3 {
		t.Error("empty keyword should match everything")
	}
	if len(r.Search("zzz")) != 0 {
		t.Error("expected no matches")
	}
}

func TestRegistry_FilterByCategory_Unknown(t *testing.T) {
	r := New()
	if got := r.FilterByCategory("Nope"); len(got) != 0 {
		t.Errorf("expected empty result for unknown category, got %d", len(got))
	}
}

func TestRegistry_Rebuild(t *testing.T) {
	r := New()
	if err := r.Insert(makeAsset("Old", "Materials", "assets/old.png")); err != nil {
		t.Fatal(err)
	}

	fresh := []domain.Asset{
		makeAsset("A", "Materials", "assets/a.png"),
		makeAsset("B", "Props", "assets/b.png"),
	}
	r.Rebuild(fresh)

	if r.Len() != 2 {
		t.Fatalf("expected 2 after rebuild, got %d", r.Len())
	}
	all := r.All()
	if all[0].Name != "A" || all[1].Name != "B" {
		t.Error("rebuild did not preserve order")
	}
	if !r.HasLibraryPath("assets/a.png") || r.HasLibraryPath("assets/old.png") {
		t.Error("path index not rebuilt")
	}
}
