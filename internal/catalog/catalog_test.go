package catalog

import "testing"

func TestProductByID(t *testing.T) {
	p, ok := ProductByID("b1")
	if !ok {
		t.Fatal("expected b1 to exist")
	}
	if p.Name != "O Clássico IA" || p.Price != 38.00 {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, ok := ProductByID("ghost"); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}

func TestProductsByCategory(t *testing.T) {
	drinks := ProductsByCategory(CategoryDrinks)
	if len(drinks) != 7 {
		t.Fatalf("expected 7 drinks, got %d", len(drinks))
	}
	for _, p := range drinks {
		if p.Category != CategoryDrinks {
			t.Fatalf("wrong category in result: %+v", p)
		}
	}

	if got := ProductsByCategory("ghost"); got != nil {
		t.Fatalf("expected nil for unknown category, got %d items", len(got))
	}
}

func TestIngredientCatalog(t *testing.T) {
	if got := len(Ingredients()); got != 20 {
		t.Fatalf("expected 20 ingredients, got %d", got)
	}

	ing, ok := IngredientByID("i4")
	if !ok || ing.Name != "Blend Bovino 180g" || ing.Price != 15.00 {
		t.Fatalf("unexpected ingredient: %+v", ing)
	}

	breads := IngredientsByCategory(IngredientBread)
	if len(breads) != 3 {
		t.Fatalf("expected 3 breads, got %d", len(breads))
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	first := Products()
	first[0].Price = 0

	again, _ := ProductByID(first[0].ID)
	if again.Price == 0 {
		t.Fatal("mutating the returned slice must not change the catalog")
	}
}
