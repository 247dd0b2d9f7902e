package queries

import (
	"context"
	"time"

	"webmall/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

// UserAccountView is the local identity row; Role here is authoritative.
type UserAccountView struct {
	ID        uuid.UUID `json:"id"`
	Subject   uuid.UUID `json:"subject"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type UserReadStore interface {
	FindBySubject(ctx context.Context, subject uuid.UUID) (*UserAccountView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserAccountView, error)
}
