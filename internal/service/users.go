package service

import (
	"context"

	"github.com/google/uuid"

	"demo/ecommerce/internal/model"
	"demo/ecommerce/internal/store"
)

// UserService registers users and resolves their orders. Authentication lives
// outside this service; the password hash is stored as an opaque string.
type UserService struct {
	repo store.Repository
}

func NewUserService(repo store.Repository) *UserService {
	return &UserService{repo: repo}
}

// Create registers a user. The email is unique and immutable; a duplicate
// fails with model.ErrEmailExists.
func (s *UserService) Create(ctx context.Context, email, passwordHash string) (model.User, error) {
	var created model.User
	err := s.repo.WithinTx(ctx, func(r store.Repository) error {
		_, ok, err := r.FindUserByEmail(ctx, email)
		if err != nil {
			return err
		}
		if ok {
			return model.ErrEmailExists
		}
		created, err = r.SaveUser(ctx, model.User{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: passwordHash,
		})
		return err
	})
	if err != nil {
		return model.User{}, err
	}
	return created, nil
}

// OrdersByUser lists the user's orders, oldest first. A user without orders
// gets an empty list, not an error.
func (s *UserService) OrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	_, ok, err := s.repo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NotFound(model.KindUser, userID)
	}
	return s.repo.ListOrdersByUser(ctx, userID)
}
