package onboarding

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/pkg/response"
	"laundryadmin/internal/repository"
	"laundryadmin/internal/view"
)

type ListQuery struct {
	Q      string `form:"q"`
	Status string `form:"status"`
	Time   string `form:"time"`
	Date   string `form:"date"`
	From   string `form:"from"`
	To     string `form:"to"`
	Sort   string `form:"sort"`
	view.Page
}

// State applies the period selections in the order time, date, range, so the
// last one present wins.
func (q ListQuery) State() (FilterState, error) {
	state := FilterState{Search: q.Q}

	if s := strings.TrimSpace(q.Status); s != "" && s != "all" {
		state.Status = domain.RequestStatus(s)
		if !state.Status.Valid() {
			return state, repository.NewValidationError("status", "must be pending, approved or rejected")
		}
	}
	if q.Time != "" {
		b, err := view.ParseTimeBucket(q.Time)
		if err != nil {
			return state, repository.NewValidationError("time", err.Error())
		}
		state.SelectTime(b)
	}
	if q.Date != "" {
		b, err := view.ParseDateBucket(q.Date)
		if err != nil {
			return state, repository.NewValidationError("date", err.Error())
		}
		state.SelectDate(b)
	}
	if q.From != "" || q.To != "" {
		from, err := view.ParseDay(q.From, time.UTC)
		if err != nil {
			return state, repository.NewValidationError("from", "expected YYYY-MM-DD")
		}
		to, err := view.ParseDay(q.To, time.UTC)
		if err != nil {
			return state, repository.NewValidationError("to", "expected YYYY-MM-DD")
		}
		state.SelectRange(view.DateRange{From: from, To: to})
	}
	return state, nil
}

type ChangeStatusRequest struct {
	Status domain.RequestStatus `json:"status" binding:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/onboard-requests", h.List)
	r.PATCH("/onboard-requests/:id/status", h.ChangeStatus)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}
	state, err := q.State()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.service.List(state, view.ParseSortDir(q.Sort), q.Page))
}

func (h *Handler) ChangeStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required")
		return
	}

	updated, err := h.service.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}
