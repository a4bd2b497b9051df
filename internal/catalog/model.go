package catalog

// Product is a purchasable menu entry. The catalog is static
// configuration: products never change for the life of the process.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// Product categories.
const (
	CategoryClassic = "classic"
	CategorySmash   = "smash"
	CategoryGourmet = "gourmet"
	CategorySides   = "sides"
	CategoryDrinks  = "drinks"
	CategorySnacks  = "snacks"
	CategoryCustom  = "custom"
)

// Ingredient is a building block for the custom burger builder.
type Ingredient struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Ingredient categories.
const (
	IngredientBread  = "bread"
	IngredientMeat   = "meat"
	IngredientCheese = "cheese"
	IngredientSalad  = "salad"
	IngredientExtra  = "extra"
	IngredientSauce  = "sauce"
)
