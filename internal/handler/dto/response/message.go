package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"webmall/internal/usecase/queries"
)

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Reply     *string   `json:"reply,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromMessageView(v *queries.MessageView) *MessageResponse {
	var resp MessageResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromMessageList(views []*queries.MessageView) []*MessageResponse {
	res := make([]*MessageResponse, len(views))
	for i, v := range views {
		res[i] = FromMessageView(v)
	}
	return res
}
