package cart

import "github.com/JohnyRamonSSousa/Hamburgueira/internal/catalog"

// DiscountRate is the site-wide promotional discount applied to every
// cart subtotal.
const DiscountRate = 0.10

// Item is one line of the cart: a product snapshot plus quantity.
// CustomIngredients is set only for custom burgers, for display.
type Item struct {
	catalog.Product
	Quantity          int      `json:"quantity"`
	CustomIngredients []string `json:"custom_ingredients,omitempty"`
}

// Cart holds the line items of a single user.
type Cart struct {
	Items []Item `json:"items"`
}

// Add inserts a product into the cart. Custom burgers always append a
// new line because their ingredients may differ; other products merge
// by id, accumulating quantity.
func (c *Cart) Add(product catalog.Product, customIngredients []string) {
	if product.Category == catalog.CategoryCustom {
		c.Items = append(c.Items, Item{
			Product:           product,
			Quantity:          1,
			CustomIngredients: customIngredients,
		})
		return
	}

	for i := range c.Items {
		if c.Items[i].ID == product.ID {
			c.Items[i].Quantity++
			return
		}
	}

	c.Items = append(c.Items, Item{Product: product, Quantity: 1})
}

// Remove deletes every line matching the id. No-op when absent.
func (c *Cart) Remove(id string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// UpdateQuantity adjusts a line's quantity by delta, clamped at 1.
// Dropping a line entirely is Remove's job. No-op when id is absent.
func (c *Cart) UpdateQuantity(id string, delta int) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			qty := c.Items[i].Quantity + delta
			if qty < 1 {
				qty = 1
			}
			c.Items[i].Quantity = qty
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Items = nil
}

// Count is the total unit count across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal sums price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	sum := 0.0
	for _, item := range c.Items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// Discount is the promotional cut off the subtotal.
func (c *Cart) Discount() float64 {
	return c.Subtotal() * DiscountRate
}

// Total is the cart-view total: subtotal minus discount. The checkout
// path adds the delivery fee on top of this.
func (c *Cart) Total() float64 {
	return c.Subtotal() - c.Discount()
}
