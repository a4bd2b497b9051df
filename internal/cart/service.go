package cart

import (
	"context"
	"errors"

	"github.com/JohnyRamonSSousa/Hamburgueira/internal/builder"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/catalog"
)

var ErrProductNotFound = errors.New("product not found")

type Service struct {
	repo    Repository
	builder *builder.Service
}

func NewService(repo Repository, builder *builder.Service) *Service {
	return &Service{repo: repo, builder: builder}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (s *Service) Get(ctx context.Context, userID string) (*Cart, error) {
	return s.repo.Get(ctx, userID)
}

// --------------------------------------------------
// Add catalog product (merge by id)
// --------------------------------------------------

func (s *Service) AddProduct(ctx context.Context, userID, productID string) (*Cart, error) {
	product, ok := catalog.ProductByID(productID)
	if !ok {
		return nil, ErrProductNotFound
	}

	c, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.Add(product, nil)

	if err := s.repo.Save(ctx, userID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// --------------------------------------------------
// Add custom burger (always a new line)
// --------------------------------------------------

func (s *Service) AddCustom(ctx context.Context, userID string, ingredientIDs []string) (*Cart, error) {
	product, names, err := s.builder.Build(ingredientIDs)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.Add(product, names)

	if err := s.repo.Save(ctx, userID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// --------------------------------------------------
// Mutation
// --------------------------------------------------

func (s *Service) UpdateQuantity(ctx context.Context, userID, itemID string, delta int) (*Cart, error) {
	c, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.UpdateQuantity(itemID, delta)

	if err := s.repo.Save(ctx, userID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Remove(ctx context.Context, userID, itemID string) (*Cart, error) {
	c, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.Remove(itemID)

	if err := s.repo.Save(ctx, userID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}
