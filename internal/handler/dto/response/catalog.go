package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"webmall/internal/usecase/queries"
)

type ProductResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         int64      `json:"price"`
	CategoryID    uuid.UUID  `json:"category_id"`
	SubcategoryID *uuid.UUID `json:"subcategory_id,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	var resp ProductResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromProductList(views []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		res[i] = FromProductView(v)
	}
	return res
}

// CategoryResponse nests subcategories under their parent.
type CategoryResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Slug      string              `json:"slug"`
	ParentID  *uuid.UUID          `json:"parent_id,omitempty"`
	Children  []*CategoryResponse `json:"children,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func FromCategoryView(v *queries.CategoryView) *CategoryResponse {
	var resp CategoryResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

// FromCategoryTree builds the two-level category tree from the flat list.
// Orphans (a child whose parent is missing) surface at the top level rather
// than disappearing.
func FromCategoryTree(views []*queries.CategoryView) []*CategoryResponse {
	byID := make(map[uuid.UUID]*CategoryResponse, len(views))
	var roots []*CategoryResponse

	for _, v := range views {
		if v.ParentID == nil {
			r := FromCategoryView(v)
			byID[v.ID] = r
			roots = append(roots, r)
		}
	}
	for _, v := range views {
		if v.ParentID == nil {
			continue
		}
		child := FromCategoryView(v)
		if parent, ok := byID[*v.ParentID]; ok {
			parent.Children = append(parent.Children, child)
		} else {
			roots = append(roots, child)
		}
	}
	return roots
}

type BannerResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  *string   `json:"image_url,omitempty"`
	LinkURL   string    `json:"link_url"`
	Position  int32     `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBannerView(v *queries.BannerView) *BannerResponse {
	var resp BannerResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBannerList(views []*queries.BannerView) []*BannerResponse {
	res := make([]*BannerResponse, len(views))
	for i, v := range views {
		res[i] = FromBannerView(v)
	}
	return res
}
