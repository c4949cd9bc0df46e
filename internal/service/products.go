package service

import (
	"context"

	"github.com/google/uuid"

	"demo/ecommerce/internal/model"
	"demo/ecommerce/internal/store"
)

// ProductService manages the product catalog.
type ProductService struct {
	repo store.Repository
}

func NewProductService(repo store.Repository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, name, description string, priceCents int64) (model.Product, error) {
	return s.repo.SaveProduct(ctx, model.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		PriceCents:  priceCents,
	})
}

func (s *ProductService) GetByID(ctx context.Context, productID string) (model.Product, error) {
	p, ok, err := s.repo.FindProduct(ctx, productID)
	if err != nil {
		return model.Product{}, err
	}
	if !ok {
		return model.Product{}, model.NotFound(model.KindProduct, productID)
	}
	return p, nil
}

func (s *ProductService) ListAll(ctx context.Context) ([]model.Product, error) {
	return s.repo.ListProducts(ctx)
}
