package service

import (
	"context"

	"github.com/google/uuid"

	"demo/ecommerce/internal/model"
	"demo/ecommerce/internal/store"
)

// OrderDetailService creates order detail lines. Details are never updated or
// deleted once written.
type OrderDetailService struct {
	repo store.Repository
}

func NewOrderDetailService(repo store.Repository) *OrderDetailService {
	return &OrderDetailService{repo: repo}
}

// Create links an order and a product with a quantity. The order is checked
// before the product, so when both are missing the order error wins. The
// caller is responsible for quantity >= 1; the validate package enforces it
// at the request boundary.
func (s *OrderDetailService) Create(ctx context.Context, orderID, productID string, quantity int) (model.OrderDetail, error) {
	var created model.OrderDetail
	err := s.repo.WithinTx(ctx, func(r store.Repository) error {
		_, ok, err := r.FindOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if !ok {
			return model.NotFound(model.KindOrder, orderID)
		}
		_, ok, err = r.FindProduct(ctx, productID)
		if err != nil {
			return err
		}
		if !ok {
			return model.NotFound(model.KindProduct, productID)
		}
		created, err = r.SaveDetail(ctx, model.OrderDetail{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  quantity,
		})
		return err
	})
	if err != nil {
		return model.OrderDetail{}, err
	}
	return created, nil
}

// ListByOrder returns the detail lines of an order, oldest first.
func (s *OrderDetailService) ListByOrder(ctx context.Context, orderID string) ([]model.OrderDetail, error) {
	_, ok, err := s.repo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFound(model.KindOrder, orderID)
	}
	return s.repo.ListDetailsByOrder(ctx, orderID)
}
