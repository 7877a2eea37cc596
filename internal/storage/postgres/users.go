package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/heavybuild/heavybuild-pro/internal/domain/errors"
	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
)

const userColumns = `id, login, email, password_hash, role, created_at`

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (login, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	role := user.Role
	if role == "" {
		role = model.RoleUser
	}
	created := *user
	created.Role = role
	err := r.storage.pool.QueryRow(ctx, query, user.Login, user.Email, user.PasswordHash, string(role)).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == codeUniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE login=$1`, login)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) get(ctx context.Context, query string, arg any) (*model.User, error) {
	var (
		u    model.User
		role string
	)
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Login, &u.Email, &u.PasswordHash, &role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	u.Role = model.Role(role)
	return &u, nil
}
