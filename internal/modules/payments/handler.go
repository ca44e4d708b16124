package payments

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"laundryadmin/internal/modules/export"
	"laundryadmin/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/studios/:id/payments", h.List)
	r.POST("/studios/:id/payments/bulk", h.RecordBulk)
	r.GET("/studios/:id/payments/export.xlsx", h.Export)
}

func (h *Handler) List(c *gin.Context) {
	studioID, ok := parseStudioID(c)
	if !ok {
		return
	}
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}
	f, err := q.Filter()
	if err != nil {
		response.FromError(c, err)
		return
	}

	res, err := h.service.List(c.Request.Context(), studioID, f, q.Page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Export(c *gin.Context) {
	studioID, ok := parseStudioID(c)
	if !ok {
		return
	}
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}
	f, err := q.Filter()
	if err != nil {
		response.FromError(c, err)
		return
	}

	studio, items, err := h.service.Export(c.Request.Context(), studioID, f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	raw, err := export.Payments(studio, items)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+studio.StudioID+"-payments.xlsx")
	c.Data(http.StatusOK, export.ContentType, raw)
}

func (h *Handler) RecordBulk(c *gin.Context) {
	studioID, ok := parseStudioID(c)
	if !ok {
		return
	}
	var req RecordBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	recorded, err := h.service.RecordBulk(c.Request.Context(), studioID, req.PaymentIDs, req.Reference)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recorded": recorded, "count": len(recorded)})
}

func parseStudioID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid studio ID")
		return 0, false
	}
	return id, true
}
