package catalog

// Products returns a copy of the full product list.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ProductsByCategory filters the menu by a product category.
func ProductsByCategory(category string) []Product {
	var out []Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ProductByID looks up a product. The second return reports whether
// the id exists in the catalog.
func ProductByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Ingredients returns a copy of the full ingredient list.
func Ingredients() []Ingredient {
	out := make([]Ingredient, len(ingredients))
	copy(out, ingredients)
	return out
}

// IngredientsByCategory filters ingredients by category.
func IngredientsByCategory(category string) []Ingredient {
	var out []Ingredient
	for _, ing := range ingredients {
		if ing.Category == category {
			out = append(out, ing)
		}
	}
	return out
}

// IngredientByID looks up an ingredient by id.
func IngredientByID(id string) (Ingredient, bool) {
	for _, ing := range ingredients {
		if ing.ID == id {
			return ing, true
		}
	}
	return Ingredient{}, false
}
