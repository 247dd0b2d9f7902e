package request

import "webmall/internal/usecase/shared"

type CreateBannerRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Subtitle string `json:"subtitle" binding:"max=300"`
	LinkURL  string `json:"link_url" binding:"required,max=500"`
	Position int32  `json:"position" binding:"gte=0"`
	IsActive bool   `json:"is_active"`
}

func (r CreateBannerRequest) ToParams() shared.CreateBannerParams {
	return shared.CreateBannerParams{
		Title:    r.Title,
		Subtitle: r.Subtitle,
		LinkURL:  r.LinkURL,
		Position: r.Position,
		IsActive: r.IsActive,
	}
}

type UpdateBannerRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Subtitle string `json:"subtitle" binding:"max=300"`
	LinkURL  string `json:"link_url" binding:"required,max=500"`
	Position int32  `json:"position" binding:"gte=0"`
	IsActive bool   `json:"is_active"`
}

func (r UpdateBannerRequest) ToParams() shared.UpdateBannerParams {
	return shared.UpdateBannerParams{
		Title:    r.Title,
		Subtitle: r.Subtitle,
		LinkURL:  r.LinkURL,
		Position: r.Position,
		IsActive: r.IsActive,
	}
}
