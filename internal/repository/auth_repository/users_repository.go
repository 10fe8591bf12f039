package auth_repository

import (
	"context"

	"github.com/majidisadev/simple-project-management-rsud/internal/model/auth_model"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct {
	DB *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{DB: db}
}

func (r *UserRepo) Create(ctx context.Context, u *auth_model.User) error {
	q := `INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.DB.QueryRowContext(ctx, q, u.Username, u.Email, u.Password).Scan(&u.ID, &u.CreatedAt)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*auth_model.User, error) {
	var u auth_model.User
	q := `SELECT id, username, email, password, created_at FROM users WHERE username=$1`
	if err := r.DB.GetContext(ctx, &u, q, username); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int) (*auth_model.User, error) {
	var u auth_model.User
	q := `SELECT id, username, email, created_at FROM users WHERE id=$1`
	if err := r.DB.GetContext(ctx, &u, q, id); err != nil {
		return nil, err
	}
	return &u, nil
}
