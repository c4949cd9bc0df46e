package store

import (
	"context"
	"errors"

	"demo/ecommerce/internal/model"

	"github.com/jackc/pgx/v5"
)

func (r *Repo) FindUser(ctx context.Context, id string) (model.User, bool, error) {
	var u model.User
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, token, created_at, updated_at
		FROM users WHERE id=$1`, id)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Token, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, false, nil
		}
		return model.User{}, false, err
	}
	return u, true, nil
}

func (r *Repo) FindUserByEmail(ctx context.Context, email string) (model.User, bool, error) {
	var u model.User
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, token, created_at, updated_at
		FROM users WHERE email=$1`, email)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Token, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, false, nil
		}
		return model.User{}, false, err
	}
	return u, true, nil
}

func (r *Repo) SaveUser(ctx context.Context, u model.User) (model.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, token)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET
		  token=EXCLUDED.token, updated_at=now()
		RETURNING created_at, updated_at`,
		u.ID, u.Email, u.PasswordHash, u.Token)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return model.User{}, err
	}
	return u, nil
}
