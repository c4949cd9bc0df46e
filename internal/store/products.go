package store

import (
	"context"
	"errors"

	"demo/ecommerce/internal/model"

	"github.com/jackc/pgx/v5"
)

func (r *Repo) FindProduct(ctx context.Context, id string) (model.Product, bool, error) {
	var p model.Product
	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, price_cents, created_at, updated_at
		FROM products WHERE id=$1`, id)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, false, nil
		}
		return model.Product{}, false, err
	}
	return p, true, nil
}

func (r *Repo) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price_cents, created_at, updated_at
		FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) SaveProduct(ctx context.Context, p model.Product) (model.Product, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO products (id, name, description, price_cents)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET
		  name=EXCLUDED.name, description=EXCLUDED.description,
		  price_cents=EXCLUDED.price_cents, updated_at=now()
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Description, p.PriceCents)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return model.Product{}, err
	}
	return p, nil
}
