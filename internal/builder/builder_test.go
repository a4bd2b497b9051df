package builder

import (
	"math"
	"strings"
	"testing"

	"github.com/JohnyRamonSSousa/Hamburgueira/internal/catalog"
)

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func mustIngredient(t *testing.T, id string) catalog.Ingredient {
	t.Helper()
	ing, ok := catalog.IngredientByID(id)
	if !ok {
		t.Fatalf("ingredient %s missing from catalog", id)
	}
	return ing
}

func TestToggle_AddAndRemove(t *testing.T) {
	sel := NewSelection()
	bread := mustIngredient(t, "i1")

	sel.Toggle(bread)
	if sel.CategoryCount(catalog.IngredientBread) != 1 {
		t.Fatalf("expected bread to be selected")
	}

	sel.Toggle(bread)
	if sel.CategoryCount(catalog.IngredientBread) != 0 {
		t.Fatalf("expected bread to be removed on second toggle")
	}
}

func TestToggle_CategoryCeilingIsSoftLimit(t *testing.T) {
	sel := NewSelection()

	// Bread allows a single pick; the second bread must be ignored
	// without any error.
	sel.Toggle(mustIngredient(t, "i1"))
	sel.Toggle(mustIngredient(t, "i2"))

	if got := sel.CategoryCount(catalog.IngredientBread); got != 1 {
		t.Fatalf("expected 1 bread, got %d", got)
	}

	// The rejected ingredient was never added, so toggling it again
	// must still be an add attempt, not a removal.
	sel.Toggle(mustIngredient(t, "i2"))
	if got := sel.CategoryCount(catalog.IngredientBread); got != 1 {
		t.Fatalf("expected ceiling to hold, got %d breads", got)
	}
}

func TestToggle_CeilingNeverExceeded(t *testing.T) {
	sel := NewSelection()

	// Hammer every ingredient a few times in order; no category may
	// ever exceed its limit.
	for round := 0; round < 3; round++ {
		for _, ing := range catalog.Ingredients() {
			sel.Toggle(ing)

			for category, limit := range CategoryLimits {
				if count := sel.CategoryCount(category); count > limit {
					t.Fatalf("category %s exceeded limit: %d > %d", category, count, limit)
				}
			}
		}
	}
}

func TestTotal_BasePlusIngredients(t *testing.T) {
	sel := NewSelection()

	if !floatEq(sel.Total(), BasePrice) {
		t.Fatalf("empty selection should cost the base price, got %.2f", sel.Total())
	}

	sel.Toggle(mustIngredient(t, "i1")) // Pão Brioche, 0
	sel.Toggle(mustIngredient(t, "i4")) // Blend Bovino 180g, 15.00
	sel.Toggle(mustIngredient(t, "i7")) // Cheddar Inglês, 4.00

	if !floatEq(sel.Total(), 29.00) {
		t.Fatalf("expected total 29.00, got %.2f", sel.Total())
	}
}

func TestFinalize_RequiresBreadAndMeat(t *testing.T) {
	service := NewService()

	cases := []struct {
		name string
		ids  []string
	}{
		{"empty", nil},
		{"only bread", []string{"i1"}},
		{"only meat", []string{"i4"}},
		{"cheese and sauce", []string{"i7", "i18"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel := NewSelection()
			for _, id := range tc.ids {
				sel.Toggle(mustIngredient(t, id))
			}

			before := len(sel.Ingredients())

			if _, _, err := service.Finalize(sel); err != ErrMissingRequired {
				t.Fatalf("expected ErrMissingRequired, got %v", err)
			}

			if len(sel.Ingredients()) != before {
				t.Fatalf("failed finalize must not change the selection")
			}
		})
	}
}

func TestFinalize_Success(t *testing.T) {
	service := NewService()
	sel := NewSelection()

	sel.Toggle(mustIngredient(t, "i1"))
	sel.Toggle(mustIngredient(t, "i4"))
	sel.Toggle(mustIngredient(t, "i7"))

	product, names, err := service.Finalize(sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if product.Category != catalog.CategoryCustom {
		t.Errorf("expected category custom, got %s", product.Category)
	}
	if !strings.HasPrefix(product.ID, "custom-") {
		t.Errorf("expected synthetic custom id, got %s", product.ID)
	}
	if product.Description != "Pão Brioche, Blend Bovino 180g, Cheddar Inglês" {
		t.Errorf("unexpected description: %s", product.Description)
	}
	if !floatEq(product.Price, 29.00) {
		t.Errorf("expected price 29.00, got %.2f", product.Price)
	}
	if len(names) != 3 {
		t.Errorf("expected 3 ingredient names, got %d", len(names))
	}

	if len(sel.Ingredients()) != 0 {
		t.Errorf("finalize must clear the selection")
	}
}

func TestFinalize_UniqueIDs(t *testing.T) {
	service := NewService()

	first, _, err := service.Build([]string{"i1", "i4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := service.Build([]string{"i1", "i4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("two finalized burgers must never share an id")
	}
}

func TestBuild_UnknownIngredient(t *testing.T) {
	service := NewService()

	if _, _, err := service.Build([]string{"i1", "nope"}); err == nil {
		t.Fatal("expected error for unknown ingredient")
	}
}

func TestBuild_EmptySelection(t *testing.T) {
	service := NewService()

	if _, _, err := service.Build(nil); err != ErrEmptySelection {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}

func TestQuote(t *testing.T) {
	service := NewService()

	total, err := service.Quote([]string{"i1", "i4", "i7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floatEq(total, 29.00) {
		t.Fatalf("expected 29.00, got %.2f", total)
	}
}
