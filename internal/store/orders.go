package store

import (
	"context"
	"errors"

	"demo/ecommerce/internal/model"

	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, user_id, status, created_at, updated_at`

func scanOrder(row pgx.Row) (model.Order, bool, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, false, nil
		}
		return model.Order{}, false, err
	}
	return o, true, nil
}

func (r *Repo) FindOrder(ctx context.Context, id string) (model.Order, bool, error) {
	return scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
}

// FindOrderForUpdate takes a row lock so a concurrent status writer blocks
// until this transaction commits or rolls back.
func (r *Repo) FindOrderForUpdate(ctx context.Context, id string) (model.Order, bool, error) {
	return scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1 FOR UPDATE`, id))
}

func (r *Repo) SaveOrder(ctx context.Context, o model.Order) (model.Order, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO orders (id, user_id, status)
		VALUES ($1,$2,$3)
		ON CONFLICT (id) DO UPDATE SET
		  status=EXCLUDED.status, updated_at=now()
		RETURNING created_at, updated_at`,
		o.ID, o.UserID, o.Status)
	if err := row.Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *Repo) ListOrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id=$1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
