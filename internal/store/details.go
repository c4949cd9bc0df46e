package store

import (
	"context"

	"demo/ecommerce/internal/model"
)

func (r *Repo) SaveDetail(ctx context.Context, d model.OrderDetail) (model.OrderDetail, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO order_details (id, order_id, product_id, quantity)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at, updated_at`,
		d.ID, d.OrderID, d.ProductID, d.Quantity)
	if err := row.Scan(&d.CreatedAt, &d.UpdatedAt); err != nil {
		return model.OrderDetail{}, err
	}
	return d, nil
}

func (r *Repo) ListDetailsByOrder(ctx context.Context, orderID string) ([]model.OrderDetail, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, product_id, quantity, created_at, updated_at
		FROM order_details WHERE order_id=$1 ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.OrderDetail
	for rows.Next() {
		var d model.OrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.Quantity, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
