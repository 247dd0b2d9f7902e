package request

import (
	"github.com/google/uuid"

	"webmall/internal/usecase/shared"
)

type CreateCategoryRequest struct {
	Name     string     `json:"name" binding:"required,max=100"`
	Slug     string     `json:"slug" binding:"required,max=100,lowercase"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

func (r CreateCategoryRequest) ToParams() shared.CreateCategoryParams {
	return shared.CreateCategoryParams{
		Name:     r.Name,
		Slug:     r.Slug,
		ParentID: r.ParentID,
	}
}

type UpdateCategoryRequest struct {
	Name     string     `json:"name" binding:"required,max=100"`
	Slug     string     `json:"slug" binding:"required,max=100,lowercase"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

func (r UpdateCategoryRequest) ToParams() shared.UpdateCategoryParams {
	return shared.UpdateCategoryParams{
		Name:     r.Name,
		Slug:     r.Slug,
		ParentID: r.ParentID,
	}
}
