package checkout

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/JohnyRamonSSousa/Hamburgueira/internal/builder"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/cart"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/catalog"
)

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// --------------------------------------------------
// Mock order repository
// --------------------------------------------------

type mockRepository struct {
	InMemoryRepository
	createCalls int
	createErr   error
}

func (m *mockRepository) Create(ctx context.Context, order *Order) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	return m.InMemoryRepository.Create(ctx, order)
}

func newTestServices(repo Repository) (*Service, *cart.Service) {
	cartService := cart.NewService(cart.NewInMemoryRepository(), builder.NewService())
	return NewService(repo, cartService), cartService
}

func validRequest(deliveryType string) CheckoutRequest {
	req := CheckoutRequest{
		PersonalInfo: PersonalInfo{
			Name:  "Johny Ramon",
			Email: "johny@example.com",
			Phone: "(11) 99999-9999",
		},
		PaymentMethod: PaymentPix,
		DeliveryType:  deliveryType,
	}
	if deliveryType == DeliveryDelivery {
		req.Address = &Address{
			Street:       "Rua das Flores",
			Number:       "42",
			Neighborhood: "Centro",
			City:         "São Paulo",
		}
	}
	return req
}

// --------------------------------------------------
// Validation
// --------------------------------------------------

func TestValidate_PickupNeedsNoAddress(t *testing.T) {
	req := validRequest(DeliveryPickup)
	req.Address = nil

	if err := Validate(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingContact(t *testing.T) {
	for _, clear := range []func(*CheckoutRequest){
		func(r *CheckoutRequest) { r.PersonalInfo.Name = "" },
		func(r *CheckoutRequest) { r.PersonalInfo.Email = "" },
		func(r *CheckoutRequest) { r.PersonalInfo.Phone = "" },
	} {
		req := validRequest(DeliveryPickup)
		clear(&req)

		if err := Validate(req); !errors.Is(err, ErrMissingContact) {
			t.Fatalf("expected ErrMissingContact, got %v", err)
		}
	}
}

func TestValidate_DeliveryRequiresFullAddress(t *testing.T) {
	for _, clear := range []func(*Address){
		func(a *Address) { a.Street = "" },
		func(a *Address) { a.Number = "" },
		func(a *Address) { a.Neighborhood = "" },
		func(a *Address) { a.City = "" },
	} {
		req := validRequest(DeliveryDelivery)
		clear(req.Address)

		if err := Validate(req); !errors.Is(err, ErrMissingAddress) {
			t.Fatalf("expected ErrMissingAddress, got %v", err)
		}
	}

	req := validRequest(DeliveryDelivery)
	req.Address = nil
	if err := Validate(req); !errors.Is(err, ErrMissingAddress) {
		t.Fatalf("expected ErrMissingAddress for nil address, got %v", err)
	}

	// complement stays optional
	req = validRequest(DeliveryDelivery)
	req.Address.Complement = ""
	if err := Validate(req); err != nil {
		t.Fatalf("complement must be optional, got %v", err)
	}
}

func TestValidate_EnumFields(t *testing.T) {
	req := validRequest(DeliveryPickup)
	req.PaymentMethod = "check"
	if err := Validate(req); !errors.Is(err, ErrBadPayment) {
		t.Fatalf("expected ErrBadPayment, got %v", err)
	}

	req = validRequest(DeliveryPickup)
	req.DeliveryType = "drone"
	if err := Validate(req); !errors.Is(err, ErrBadDelivery) {
		t.Fatalf("expected ErrBadDelivery, got %v", err)
	}
}

// --------------------------------------------------
// Confirm
// --------------------------------------------------

func TestConfirm_InvalidNeverTouchesStore(t *testing.T) {
	repo := &mockRepository{}
	service, cartService := newTestServices(repo)
	ctx := context.Background()

	cartService.AddProduct(ctx, "user-1", "b1")

	req := validRequest(DeliveryDelivery)
	req.Address.City = ""

	if _, err := service.Confirm(ctx, Identity{ID: "user-1"}, req); err == nil {
		t.Fatal("expected validation error")
	}

	if repo.createCalls != 0 {
		t.Fatalf("store must not be called for invalid input, got %d calls", repo.createCalls)
	}

	// the cart must be untouched
	c, _ := cartService.Get(ctx, "user-1")
	if len(c.Items) != 1 {
		t.Fatalf("cart must survive a rejected checkout")
	}
}

func TestConfirm_EmptyCart(t *testing.T) {
	repo := &mockRepository{}
	service, _ := newTestServices(repo)

	_, err := service.Confirm(context.Background(), Identity{ID: "user-1"}, validRequest(DeliveryPickup))
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("store must not be called for an empty cart")
	}
}

func TestConfirm_PickupPricing(t *testing.T) {
	repo := &mockRepository{}
	service, cartService := newTestServices(repo)
	ctx := context.Background()

	// 38.00 x2 + 32.00 = 108.00
	cartService.AddProduct(ctx, "user-1", "b1")
	cartService.AddProduct(ctx, "user-1", "b1")
	cartService.AddProduct(ctx, "user-1", "b2")

	order, err := service.Confirm(ctx, Identity{ID: "user-1", Name: "Johny", Email: "johny@example.com"}, validRequest(DeliveryPickup))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !floatEq(order.Subtotal, 108.00) {
		t.Errorf("expected subtotal 108.00, got %.2f", order.Subtotal)
	}
	if !floatEq(order.Discount, 10.80) {
		t.Errorf("expected discount 10.80, got %.2f", order.Discount)
	}
	if !floatEq(order.DeliveryFee, 0) {
		t.Errorf("pickup must not charge a delivery fee")
	}
	if !floatEq(order.Total, 97.20) {
		t.Errorf("expected total 97.20, got %.2f", order.Total)
	}
	if order.Status != StatusPending {
		t.Errorf("expected status pending, got %s", order.Status)
	}
	if order.Address != nil {
		t.Errorf("pickup order must not carry an address")
	}
}

func TestConfirm_DeliveryPricingAndRoundTrip(t *testing.T) {
	repo := &mockRepository{}
	service, cartService := newTestServices(repo)
	ctx := context.Background()

	cartService.AddProduct(ctx, "user-1", "b1")
	cartService.AddCustom(ctx, "user-1", []string{"i1", "i4", "i7"})

	req := validRequest(DeliveryDelivery)
	user := Identity{ID: "user-1", Name: "Johny", Email: "johny@example.com"}

	order, err := service.Confirm(ctx, user, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 38.00 + 29.00 = 67.00, minus 6.70, plus 8.00 fee
	if !floatEq(order.Total, 67.00-6.70+8.00) {
		t.Errorf("unexpected total %.2f", order.Total)
	}
	if !floatEq(order.DeliveryFee, DeliveryFee) {
		t.Errorf("expected delivery fee %.2f, got %.2f", DeliveryFee, order.DeliveryFee)
	}

	// round-trip: persisted record reproduces the cart and the address
	stored, err := repo.ListByUser(ctx, "user-1")
	if err != nil || len(stored) != 1 {
		t.Fatalf("expected one stored order, got %d (err %v)", len(stored), err)
	}

	got := stored[0]
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items in the stored order, got %d", len(got.Items))
	}
	if got.Items[0].ID != "b1" || got.Items[0].Quantity != 1 {
		t.Errorf("catalog line not preserved: %+v", got.Items[0])
	}
	if got.Items[1].Category != catalog.CategoryCustom || len(got.Items[1].CustomIngredients) != 3 {
		t.Errorf("custom line not preserved: %+v", got.Items[1])
	}
	if got.Address == nil || *got.Address != *req.Address {
		t.Errorf("address not preserved: %+v", got.Address)
	}
	if got.UserID != user.ID || got.UserName != user.Name || got.UserEmail != user.Email {
		t.Errorf("identity not stamped on order")
	}
	if got.PersonalInfo != req.PersonalInfo {
		t.Errorf("contact fields not preserved")
	}

	// cart cleared only after the store acknowledged
	c, _ := cartService.Get(ctx, "user-1")
	if len(c.Items) != 0 {
		t.Errorf("cart must be cleared after a confirmed order")
	}
}

func TestConfirm_StoreFailureKeepsCart(t *testing.T) {
	repo := &mockRepository{createErr: errors.New("backend unavailable")}
	service, cartService := newTestServices(repo)
	ctx := context.Background()

	cartService.AddProduct(ctx, "user-1", "b1")

	if _, err := service.Confirm(ctx, Identity{ID: "user-1"}, validRequest(DeliveryPickup)); err == nil {
		t.Fatal("expected store error to surface")
	}

	c, _ := cartService.Get(ctx, "user-1")
	if len(c.Items) != 1 {
		t.Fatalf("cart must be preserved when the store fails, so the user can retry")
	}
}

// --------------------------------------------------
// History and admin
// --------------------------------------------------

func TestListByUser_NewestFirst(t *testing.T) {
	repo := &mockRepository{}
	service, cartService := newTestServices(repo)
	ctx := context.Background()
	user := Identity{ID: "user-1", Name: "Johny", Email: "johny@example.com"}

	cartService.AddProduct(ctx, "user-1", "b1")
	first, err := service.Confirm(ctx, user, validRequest(DeliveryPickup))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cartService.AddProduct(ctx, "user-1", "b2")
	second, err := service.Confirm(ctx, user, validRequest(DeliveryPickup))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, err := service.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Fatalf("orders must be newest first")
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := &mockRepository{}
	service, cartService := newTestServices(repo)
	ctx := context.Background()

	cartService.AddProduct(ctx, "user-1", "b1")
	order, err := service.Confirm(ctx, Identity{ID: "user-1"}, validRequest(DeliveryPickup))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.UpdateStatus(ctx, order.ID, "shipped"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for out-of-set label, got %v", err)
	}

	if err := service.UpdateStatus(ctx, order.ID, StatusPreparing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, _ := service.ListByUser(ctx, "user-1")
	if orders[0].Status != StatusPreparing {
		t.Fatalf("expected status preparing, got %s", orders[0].Status)
	}

	if err := service.UpdateStatus(ctx, "ghost", StatusDelivered); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
