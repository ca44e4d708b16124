package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"laundryadmin/internal/pkg/navigation"
	"laundryadmin/internal/repository"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	body := gin.H{
		"success": true,
		"data":    data,
	}
	addNavigation(c, body)
	c.JSON(statusCode, body)
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	body := gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
	addNavigation(c, body)
	c.JSON(statusCode, body)
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	body := gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	}
	addNavigation(c, body)
	c.JSON(statusCode, body)
}

// FromError maps repository errors onto status codes. Anything unknown is a 500.
func FromError(c *gin.Context, err error) {
	var verr *repository.ValidationError
	switch {
	case errors.As(err, &verr):
		ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", verr.Fields)
	case errors.Is(err, repository.ErrValidation):
		Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, repository.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, repository.ErrDuplicateID):
		Error(c, http.StatusConflict, "DUPLICATE_ID", err.Error())
	default:
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}

// addNavigation copies recorded redirects and notifications into the body.
func addNavigation(c *gin.Context, body gin.H) {
	rec, ok := navigation.From(c.Request.Context()).(*navigation.Recorder)
	if !ok {
		return
	}
	if path := rec.RedirectPath(); path != "" {
		body["redirect"] = path
	}
	if n := rec.Notifications(); len(n) > 0 {
		body["notifications"] = n
	}
}
