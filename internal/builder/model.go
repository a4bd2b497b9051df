package builder

import "github.com/JohnyRamonSSousa/Hamburgueira/internal/catalog"

// BasePrice is charged for every custom burger before ingredients.
const BasePrice = 10.00

// CategoryLimits caps how many ingredients of each category a single
// custom burger may carry.
var CategoryLimits = map[string]int{
	catalog.IngredientBread:  1,
	catalog.IngredientMeat:   2,
	catalog.IngredientCheese: 3,
	catalog.IngredientSalad:  5,
	catalog.IngredientExtra:  4,
	catalog.IngredientSauce:  2,
}

// Selection is the transient state of one build-a-burger session.
// Ingredients are unique by id and kept in selection order.
type Selection struct {
	ingredients []catalog.Ingredient
}

func NewSelection() *Selection {
	return &Selection{}
}

// Toggle removes the ingredient when already selected. Otherwise it
// adds the ingredient, unless its category is already at the limit:
// over-limit adds are silently ignored, never an error.
func (s *Selection) Toggle(ing catalog.Ingredient) {
	for i, sel := range s.ingredients {
		if sel.ID == ing.ID {
			s.ingredients = append(s.ingredients[:i], s.ingredients[i+1:]...)
			return
		}
	}

	if s.CategoryCount(ing.Category) >= CategoryLimits[ing.Category] {
		return
	}

	s.ingredients = append(s.ingredients, ing)
}

// CategoryCount reports how many selected ingredients share a category.
func (s *Selection) CategoryCount(category string) int {
	count := 0
	for _, ing := range s.ingredients {
		if ing.Category == category {
			count++
		}
	}
	return count
}

// HasCategory reports whether any selected ingredient has the category.
func (s *Selection) HasCategory(category string) bool {
	return s.CategoryCount(category) > 0
}

// Total recomputes the price on every call: base price plus the sum of
// the selected ingredients' price deltas.
func (s *Selection) Total() float64 {
	total := BasePrice
	for _, ing := range s.ingredients {
		total += ing.Price
	}
	return total
}

// Ingredients returns a copy of the current selection.
func (s *Selection) Ingredients() []catalog.Ingredient {
	out := make([]catalog.Ingredient, len(s.ingredients))
	copy(out, s.ingredients)
	return out
}

// Names returns the selected ingredient names in selection order.
func (s *Selection) Names() []string {
	names := make([]string, 0, len(s.ingredients))
	for _, ing := range s.ingredients {
		names = append(names, ing.Name)
	}
	return names
}

// Clear resets the selection to empty.
func (s *Selection) Clear() {
	s.ingredients = nil
}
