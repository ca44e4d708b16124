package users

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"laundryadmin/internal/pkg/response"
	"laundryadmin/internal/view"
)

type ListQuery struct {
	Q      string `form:"q"`
	Device string `form:"device"`
	Sort   string `form:"sort"`
	view.Page
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/users", h.List)
	r.GET("/users/:id", h.Get)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}
	res := h.service.List(view.CustomerFilter{
		Search: q.Q,
		Device: q.Device,
		Sort:   view.ParseSortDir(q.Sort),
	}, q.Page)
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}
	cust, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cust)
}
