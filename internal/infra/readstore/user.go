package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"webmall/internal/infra"
	"webmall/internal/infra/db"
	"webmall/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userColumns = `id, subject, email, name, role, created_at`

func (r *UserReadStore) FindBySubject(ctx context.Context, subject uuid.UUID) (*queries.UserAccountView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE subject = $1`, subject)
	return scanUser(row, "failed to find user by subject")
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserAccountView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row, "failed to find user by ID")
}

func scanUser(row pgx.Row, failMsg string) (*queries.UserAccountView, error) {
	var v queries.UserAccountView
	err := row.Scan(&v.ID, &v.Subject, &v.Email, &v.Name, &v.Role, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	return &v, nil
}
