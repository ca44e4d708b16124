package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"laundryadmin/internal/domain"
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
	r.GET("/studios/:id/services", h.Load)
	r.PATCH("/studios/:id/services/:serviceId", h.ToggleService)
	r.PATCH("/studios/:id/services/:serviceId/sub/:subId", h.ToggleSubService)
	r.PUT("/studios/:id/services/:serviceId/sub/:subId/prices", h.SetPrices)
	r.GET("/studios/:id/services/:serviceId/sub/:subId/items", h.Items)
	r.PUT("/studios/:id/services/:serviceId/sub/:subId/items/:itemId", h.SetItemOverride)
}

func (h *Handler) Load(c *gin.Context) {
	id, ok := parseStudioID(c)
	if !ok {
		return
	}
	cat, err := h.service.Load(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) ToggleService(c *gin.Context) {
	id, ok := parseStudioID(c)
	if !ok {
		return
	}
	cat, err := h.service.ToggleService(c.Request.Context(), id, c.Param("serviceId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) ToggleSubService(c *gin.Context) {
	id, ok := parseStudioID(c)
	if !ok {
		return
	}
	cat, err := h.service.ToggleSubService(c.Request.Context(), id, c.Param("serviceId"), c.Param("subId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) SetPrices(c *gin.Context) {
	id, ok := parseStudioID(c)
	if !ok {
		return
	}
	var req repository.SubServicePrices
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	cat, err := h.service.SetPrices(c.Request.Context(), id, c.Param("serviceId"), c.Param("subId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) Items(c *gin.Context) {
	id, ok := parseStudioID(c)
	if !ok {
		return
	}
	items, err := h.service.Items(c.Request.Context(), id, c.Param("serviceId"), c.Param("subId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) SetItemOverride(c *gin.Context) {
	id, ok := parseStudioID(c)
	if !ok {
		return
	}
	var req domain.ItemOverride
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	cat, err := h.service.SetItemOverride(c.Request.Context(), id, c.Param("serviceId"), c.Param("subId"), c.Param("itemId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func parseStudioID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid studio ID")
		return 0, false
	}
	return id, true
}
