package request

import (
	"github.com/google/uuid"

	"webmall/internal/usecase/shared"
)

type CreateProductRequest struct {
	Name          string     `json:"name" binding:"required,max=200"`
	Description   string     `json:"description" binding:"max=5000"`
	Price         int64      `json:"price" binding:"required,gt=0"`
	CategoryID    uuid.UUID  `json:"category_id" binding:"required"`
	SubcategoryID *uuid.UUID `json:"subcategory_id,omitempty"`
	Status        string     `json:"status" binding:"omitempty,oneof=active archived"`
}

func (r CreateProductRequest) ToParams() shared.CreateProductParams {
	status := r.Status
	if status == "" {
		status = "active"
	}
	return shared.CreateProductParams{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		CategoryID:    r.CategoryID,
		SubcategoryID: r.SubcategoryID,
		Status:        status,
	}
}

type UpdateProductRequest struct {
	Name          string     `json:"name" binding:"required,max=200"`
	Description   string     `json:"description" binding:"max=5000"`
	Price         int64      `json:"price" binding:"required,gt=0"`
	CategoryID    uuid.UUID  `json:"category_id" binding:"required"`
	SubcategoryID *uuid.UUID `json:"subcategory_id,omitempty"`
	Status        string     `json:"status" binding:"required,oneof=active archived"`
}

func (r UpdateProductRequest) ToParams() shared.UpdateProductParams {
	return shared.UpdateProductParams{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		CategoryID:    r.CategoryID,
		SubcategoryID: r.SubcategoryID,
		Status:        r.Status,
	}
}
