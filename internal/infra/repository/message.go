package repository

import (
	"context"

	"github.com/google/uuid"

	"webmall/internal/infra"
	"webmall/internal/infra/db"
	"webmall/internal/usecase/shared"
)

type MessageRepository struct{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(ctx context.Context, dbtx db.DBTX, p shared.CreateMessageParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
INSERT INTO messages (user_id, subject, body)
VALUES ($1, $2, $3)
RETURNING id`,
		p.UserID, p.Subject, p.Body).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create message", err)
	}
	return id, nil
}

// Reply stores the admin response and marks the thread read in one step.
func (r *MessageRepository) Reply(ctx context.Context, dbtx db.DBTX, id uuid.UUID, reply string) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE messages SET reply = $2, is_read = true, updated_at = now() WHERE id = $1`, id, reply)
	if err != nil {
		return wrapWriteErr("failed to reply to message", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("message not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE messages SET is_read = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to mark message read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("message not found", nil, infra.KindNotFound)
	}
	return nil
}
