// Package service implements the order, detail, user and product managers on
// top of store.Repository.
package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"demo/ecommerce/internal/events"
	"demo/ecommerce/internal/model"
	"demo/ecommerce/internal/store"
)

// OrderService owns the order lifecycle: creation, lookup, status updates and
// cancellation. Every mutation runs in its own transaction.
type OrderService struct {
	repo store.Repository
	pub  events.Publisher
}

// NewOrderService builds an OrderService. pub may be nil to disable event
// publishing.
func NewOrderService(repo store.Repository, pub events.Publisher) *OrderService {
	return &OrderService{repo: repo, pub: pub}
}

// Create opens a new PENDING order owned by the given user.
func (s *OrderService) Create(ctx context.Context, userID string) (model.Order, error) {
	var created model.Order
	err := s.repo.WithinTx(ctx, func(r store.Repository) error {
		_, ok, err := r.FindUser(ctx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return model.NotFound(model.KindUser, userID)
		}
		created, err = r.SaveOrder(ctx, model.Order{
			ID:     uuid.NewString(),
			UserID: userID,
			Status: model.StatusPending,
		})
		return err
	})
	if err != nil {
		return model.Order{}, err
	}
	s.publish(ctx, events.OrderEvent{
		Type:       events.TypeOrderCreated,
		OrderID:    created.ID,
		UserID:     created.UserID,
		Status:     created.Status,
		OccurredAt: created.CreatedAt,
	})
	return created, nil
}

// GetByID returns the stored order. Read-only, so no transaction is opened.
func (s *OrderService) GetByID(ctx context.Context, orderID string) (model.Order, error) {
	o, ok, err := s.repo.FindOrder(ctx, orderID)
	if err != nil {
		return model.Order{}, err
	}
	if !ok {
		return model.Order{}, model.NotFound(model.KindOrder, orderID)
	}
	return o, nil
}

// UpdateStatus overwrites the order status. Any status may follow any other;
// there is no transition table.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, error) {
	return s.setStatus(ctx, orderID, status)
}

// Cancel sets the order status to CANCELLED. Cancelling an already cancelled
// order succeeds.
func (s *OrderService) Cancel(ctx context.Context, orderID string) (model.Order, error) {
	return s.setStatus(ctx, orderID, model.StatusCancelled)
}

// setStatus does the locked read-modify-write shared by UpdateStatus and
// Cancel. The row lock makes concurrent writers serialize instead of losing
// updates.
func (s *OrderService) setStatus(ctx context.Context, orderID string, status model.OrderStatus) (model.Order, error) {
	var updated model.Order
	err := s.repo.WithinTx(ctx, func(r store.Repository) error {
		o, ok, err := r.FindOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if !ok {
			return model.NotFound(model.KindOrder, orderID)
		}
		o.Status = status
		updated, err = r.SaveOrder(ctx, o)
		return err
	})
	if err != nil {
		return model.Order{}, err
	}
	s.publish(ctx, events.OrderEvent{
		Type:       events.TypeOrderStatusChanged,
		OrderID:    updated.ID,
		UserID:     updated.UserID,
		Status:     updated.Status,
		OccurredAt: updated.UpdatedAt,
	})
	return updated, nil
}

// publish is best-effort: a Kafka outage must not fail a committed operation.
func (s *OrderService) publish(ctx context.Context, e events.OrderEvent) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, e); err != nil {
		log.Printf("publish %s for order %s: %v", e.Type, e.OrderID, err)
	}
}
