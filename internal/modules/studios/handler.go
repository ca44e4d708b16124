package studios

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/modules/export"
	"laundryadmin/internal/pkg/response"
	"laundryadmin/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/studios", h.List)
	r.POST("/studios", h.Create)
	r.GET("/studios/export.xlsx", h.Export)
	r.POST("/studios/undo", h.Undo)
	r.GET("/studios/:id", h.Get)
	r.PATCH("/studios/:id/status", h.SetStatus)
	r.DELETE("/studios/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	res, err := h.service.List(q.Filter(), q.Page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Export(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	items, err := h.service.Export(q.Filter())
	if err != nil {
		response.FromError(c, err)
		return
	}
	raw, err := export.Studios(items)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=studios.xlsx")
	c.Data(http.StatusOK, export.ContentType, raw)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	st, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st)
}

func (h *Handler) Create(c *gin.Context) {
	var req repository.NewStudio
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	st, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, st)
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "active is required")
		return
	}
	st, err := h.service.SetStatus(c.Request.Context(), id, *req.Active)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	removed, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, removed)
}

// Undo takes the record returned by Delete.
func (h *Handler) Undo(c *gin.Context) {
	var req domain.Studio
	if err := c.ShouldBindJSON(&req); err != nil || req.ID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid studio record")
		return
	}
	st, err := h.service.Undo(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", fmt.Sprintf("Invalid studio ID %q", c.Param("id")))
		return 0, false
	}
	return id, true
}
