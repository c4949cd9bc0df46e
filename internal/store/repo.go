// Package store persists users, products, orders and order details in
// Postgres via pgx.
package store

import (
	"context"
	"fmt"

	"demo/ecommerce/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -source=repo.go -destination=storemock/mock.go -package=storemock

// PgxIface is the subset of pgxpool.Pool the repo needs. pgx.Tx satisfies it
// too, which is what lets a transaction-scoped Repo reuse every query method.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository is the persistence surface the services depend on. Lookups
// report absence with a false found flag instead of an error; deciding what a
// missing row means is the caller's job.
type Repository interface {
	FindUser(ctx context.Context, id string) (model.User, bool, error)
	FindUserByEmail(ctx context.Context, email string) (model.User, bool, error)
	SaveUser(ctx context.Context, u model.User) (model.User, error)

	FindProduct(ctx context.Context, id string) (model.Product, bool, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	SaveProduct(ctx context.Context, p model.Product) (model.Product, error)

	FindOrder(ctx context.Context, id string) (model.Order, bool, error)
	// FindOrderForUpdate locks the order row until the surrounding
	// transaction ends. Must only be called inside WithinTx.
	FindOrderForUpdate(ctx context.Context, id string) (model.Order, bool, error)
	SaveOrder(ctx context.Context, o model.Order) (model.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]model.Order, error)

	SaveDetail(ctx context.Context, d model.OrderDetail) (model.OrderDetail, error)
	ListDetailsByOrder(ctx context.Context, orderID string) ([]model.OrderDetail, error)

	// WithinTx runs fn against a transaction-scoped Repository. The
	// transaction commits if fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(r Repository) error) error
}

type Repo struct {
	db PgxIface
}

func New(db PgxIface) *Repo { return &Repo{db: db} }

func (r *Repo) WithinTx(ctx context.Context, fn func(Repository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&Repo{db: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
