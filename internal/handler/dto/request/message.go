package request

import (
	"github.com/google/uuid"

	"webmall/internal/usecase/shared"
)

type CreateMessageRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Body    string `json:"body" binding:"required,max=5000"`
}

func (r CreateMessageRequest) ToParams(userID uuid.UUID) shared.CreateMessageParams {
	return shared.CreateMessageParams{
		UserID:  userID,
		Subject: r.Subject,
		Body:    r.Body,
	}
}

type ReplyMessageRequest struct {
	Reply string `json:"reply" binding:"required,max=5000"`
}
