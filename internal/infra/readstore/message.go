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

type MessageReadStore struct {
	db db.DBTX
}

func NewMessageReadStore(dbtx db.DBTX) *MessageReadStore {
	return &MessageReadStore{db: dbtx}
}

const messageSelect = `
SELECT m.id, m.user_id, u.email, m.subject, m.body, m.reply, m.is_read, m.created_at, m.updated_at
FROM messages m
JOIN users u ON u.id = m.user_id`

func (r *MessageReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.MessageView, error) {
	rows, err := r.db.Query(ctx,
		messageSelect+` WHERE m.user_id = $1 ORDER BY m.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages by user", err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *MessageReadStore) ListAll(ctx context.Context) ([]*queries.MessageView, error) {
	rows, err := r.db.Query(ctx, messageSelect+` ORDER BY m.is_read, m.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *MessageReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MessageView, error) {
	var v queries.MessageView
	err := r.db.QueryRow(ctx, messageSelect+` WHERE m.id = $1`, id).
		Scan(&v.ID, &v.UserID, &v.UserEmail, &v.Subject, &v.Body, &v.Reply, &v.IsRead, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("message not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find message by ID", err)
	}
	return &v, nil
}

func collectMessages(rows pgx.Rows) ([]*queries.MessageView, error) {
	var res []*queries.MessageView
	for rows.Next() {
		var v queries.MessageView
		if err := rows.Scan(&v.ID, &v.UserID, &v.UserEmail, &v.Subject, &v.Body, &v.Reply, &v.IsRead, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan message row", err)
		}
		res = append(res, &v)
	}
	return res, rows.Err()
}
