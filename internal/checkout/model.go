package checkout

import (
	"time"

	"github.com/JohnyRamonSSousa/Hamburgueira/internal/cart"
)

// DeliveryFee is the flat fee charged for home delivery.
const DeliveryFee = 8.00

// Payment method labels. Selection only, no gateway integration.
const (
	PaymentPix  = "pix"
	PaymentCard = "card"
	PaymentCash = "cash"
)

// Delivery types.
const (
	DeliveryPickup   = "pickup"
	DeliveryDelivery = "delivery"
)

// Order status labels. The fixed set the storefront knows about.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusDelivered = "delivered"
)

type PersonalInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
}

// CheckoutRequest carries the delivery, payment, and contact choices
// collected from the checkout form.
type CheckoutRequest struct {
	PersonalInfo  PersonalInfo `json:"personal_info"`
	PaymentMethod string       `json:"payment_method"`
	DeliveryType  string       `json:"delivery_type"`
	Address       *Address     `json:"address,omitempty"`
}

// Order is the finalized purchase record handed to the store.
type Order struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	UserName      string       `json:"user_name"`
	UserEmail     string       `json:"user_email"`
	PersonalInfo  PersonalInfo `json:"personal_info"`
	Items         []cart.Item  `json:"items"`
	PaymentMethod string       `json:"payment_method"`
	DeliveryType  string       `json:"delivery_type"`
	Address       *Address     `json:"address,omitempty"`
	Subtotal      float64      `json:"subtotal"`
	Discount      float64      `json:"discount"`
	DeliveryFee   float64      `json:"delivery_fee"`
	Total         float64      `json:"total"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
}

func validPaymentMethod(m string) bool {
	return m == PaymentPix || m == PaymentCard || m == PaymentCash
}

func validDeliveryType(t string) bool {
	return t == DeliveryPickup || t == DeliveryDelivery
}

// ValidStatus reports whether s belongs to the fixed order status set.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPreparing || s == StatusDelivered
}
