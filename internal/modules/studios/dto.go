package studios

import (
	"laundryadmin/internal/view"
)

type ListQuery struct {
	Q      string `form:"q"`
	Status string `form:"status"`
	Rating string `form:"rating"`
	Sort   string `form:"sort"`
	view.Page
}

func (q ListQuery) Filter() view.StudioFilter {
	return view.StudioFilter{
		Search: q.Q,
		Status: view.StatusFilter(q.Status),
		Rating: view.RatingBucket(q.Rating),
		Sort:   view.ParseSortDir(q.Sort),
	}
}

type SetStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}
