package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/JohnyRamonSSousa/Hamburgueira/internal/catalog"
)

var (
	ErrMissingRequired   = errors.New("missing required category: pick at least one bread and one meat")
	ErrUnknownIngredient = errors.New("unknown ingredient")
	ErrEmptySelection    = errors.New("empty selection")
)

const (
	customName  = "Meu Burger Tech"
	customImage = "https://images.unsplash.com/photo-1586190848861-99aa4a171e90?auto=format&fit=crop&q=80&w=800"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// --------------------------------------------------
// Finalize selection into a custom product
// --------------------------------------------------

// Finalize validates the selection and emits a custom catalog product.
// The selection is cleared on success and left untouched on failure.
func (s *Service) Finalize(sel *Selection) (catalog.Product, []string, error) {
	if !sel.HasCategory(catalog.IngredientBread) || !sel.HasCategory(catalog.IngredientMeat) {
		return catalog.Product{}, nil, ErrMissingRequired
	}

	names := sel.Names()

	product := catalog.Product{
		ID:          fmt.Sprintf("custom-%s", uuid.New().String()),
		Name:        customName,
		Description: strings.Join(names, ", "),
		Price:       sel.Total(),
		Image:       customImage,
		Category:    catalog.CategoryCustom,
	}

	sel.Clear()

	return product, names, nil
}

// --------------------------------------------------
// Build from raw ingredient ids
// --------------------------------------------------

// Build replays Toggle over the given ingredient ids and finalizes the
// result. Unknown ids fail; ids past a category limit are dropped
// silently, matching the soft-limit rule.
func (s *Service) Build(ingredientIDs []string) (catalog.Product, []string, error) {
	if len(ingredientIDs) == 0 {
		return catalog.Product{}, nil, ErrEmptySelection
	}

	sel := NewSelection()
	for _, id := range ingredientIDs {
		ing, ok := catalog.IngredientByID(id)
		if !ok {
			return catalog.Product{}, nil, fmt.Errorf("%w: %s", ErrUnknownIngredient, id)
		}
		sel.Toggle(ing)
	}

	return s.Finalize(sel)
}

// Quote prices a selection of ingredient ids without finalizing it.
func (s *Service) Quote(ingredientIDs []string) (float64, error) {
	sel := NewSelection()
	for _, id := range ingredientIDs {
		ing, ok := catalog.IngredientByID(id)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownIngredient, id)
		}
		sel.Toggle(ing)
	}
	return sel.Total(), nil
}
