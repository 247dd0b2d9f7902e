package repository

import (
	"context"

	"github.com/google/uuid"

	"webmall/internal/domain/user"
	"webmall/internal/infra/db"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
INSERT INTO users (id, subject, email, name, role)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (subject) DO UPDATE SET email = EXCLUDED.email
RETURNING id`,
		u.ID(), u.Subject(), u.Email().Value(), u.Name(), u.Role().String()).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create user", err)
	}
	return id, nil
}
