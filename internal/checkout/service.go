package checkout

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/JohnyRamonSSousa/Hamburgueira/internal/cart"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrMissingContact = errors.New("name, email and phone are required")
	ErrMissingAddress = errors.New("full delivery address is required")
	ErrBadPayment     = errors.New("invalid payment method")
	ErrBadDelivery    = errors.New("invalid delivery type")
)

// Identity is the authenticated user stamped onto the order.
type Identity struct {
	ID    string
	Name  string
	Email string
}

type Service struct {
	repo Repository
	cart *cart.Service
}

func NewService(repo Repository, cart *cart.Service) *Service {
	return &Service{repo: repo, cart: cart}
}

// --------------------------------------------------
// Validation (pure precondition check)
// --------------------------------------------------

// Validate checks form completeness without touching any state.
// Address fields are required exactly when the order is a delivery.
func Validate(req CheckoutRequest) error {
	if req.PersonalInfo.Name == "" || req.PersonalInfo.Email == "" || req.PersonalInfo.Phone == "" {
		return ErrMissingContact
	}
	if !validPaymentMethod(req.PaymentMethod) {
		return ErrBadPayment
	}
	if !validDeliveryType(req.DeliveryType) {
		return ErrBadDelivery
	}
	if req.DeliveryType == DeliveryDelivery {
		a := req.Address
		if a == nil || a.Street == "" || a.Number == "" || a.Neighborhood == "" || a.City == "" {
			return ErrMissingAddress
		}
	}
	return nil
}

// --------------------------------------------------
// Confirm order
// --------------------------------------------------

// Confirm validates the request, builds the order from the user's cart
// and persists it. Nothing is written when validation fails, and the
// cart is cleared only after the store acknowledges the order, so a
// failed submission can be retried without losing anything.
//
// Pricing: subtotal, minus the 10% site discount, plus the flat
// delivery fee for delivery orders.
func (s *Service) Confirm(ctx context.Context, user Identity, req CheckoutRequest) (*Order, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	crt, err := s.cart.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(crt.Items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := crt.Subtotal()
	discount := crt.Discount()

	fee := 0.0
	if req.DeliveryType == DeliveryDelivery {
		fee = DeliveryFee
	}

	var address *Address
	if req.DeliveryType == DeliveryDelivery {
		a := *req.Address
		address = &a
	}

	order := &Order{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		UserName:      user.Name,
		UserEmail:     user.Email,
		PersonalInfo:  req.PersonalInfo,
		Items:         crt.Items,
		PaymentMethod: req.PaymentMethod,
		DeliveryType:  req.DeliveryType,
		Address:       address,
		Subtotal:      subtotal,
		Discount:      discount,
		DeliveryFee:   fee,
		Total:         subtotal - discount + fee,
		Status:        StatusPending,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Order is persisted; a leftover cart is only a cosmetic problem.
	if err := s.cart.Clear(ctx, user.ID); err != nil {
		log.Printf("failed to clear cart after order %s: %v", order.ID, err)
	}

	return order, nil
}

// --------------------------------------------------
// Order history
// --------------------------------------------------

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}
