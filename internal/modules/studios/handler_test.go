package studios

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/middleware"
	"laundryadmin/internal/modules/export"
)

type envelope struct {
	Success       bool            `json:"success"`
	Data          json.RawMessage `json:"data"`
	Redirect      string          `json:"redirect"`
	Notifications []struct {
		Level   string `json:"level"`
		Message string `json:"message"`
	} `json:"notifications"`
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.Navigation())
	NewHandler(NewService(newRepo(t), nil, nil, false, nil)).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var env envelope
	_ = json.Unmarshal(resp.Body.Bytes(), &env)
	return resp, env
}

func TestHandler_ListActiveTopRated(t *testing.T) {
	router := setupRouter(t)

	resp, env := performRequest(router, http.MethodGet, "/api/v1/studios?status=active&rating=above4.5", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var res ListResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, int64(2), res.Items[0].ID)
	assert.Equal(t, int64(5), res.Items[1].ID)
	assert.Equal(t, 5, res.Stats.Active)
}

func TestHandler_ListPageBeyondEnd(t *testing.T) {
	resp, env := performRequest(setupRouter(t), http.MethodGet, "/api/v1/studios?page=9223372036854775807", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var res ListResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Empty(t, res.Items)
	assert.Equal(t, 8, res.Total)
}

func TestHandler_BadFilter(t *testing.T) {
	resp, env := performRequest(setupRouter(t), http.MethodGet, "/api/v1/studios?status=sleeping", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestHandler_GetUnknownCarriesRedirect(t *testing.T) {
	resp, env := performRequest(setupRouter(t), http.MethodGet, "/api/v1/studios/99", nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "/studios", env.Redirect)
	require.Len(t, env.Notifications, 1)
	assert.Equal(t, "Studio not found", env.Notifications[0].Message)
}

func TestHandler_InvalidID(t *testing.T) {
	resp, env := performRequest(setupRouter(t), http.MethodGet, "/api/v1/studios/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestHandler_ToggleStatus(t *testing.T) {
	router := setupRouter(t)

	resp, env := performRequest(router, http.MethodPatch, "/api/v1/studios/1/status", gin.H{"active": false})
	require.Equal(t, http.StatusOK, resp.Code)
	var st domain.Studio
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.False(t, st.Status)

	resp, _ = performRequest(router, http.MethodPatch, "/api/v1/studios/1/status", gin.H{})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandler_CreateValidation(t *testing.T) {
	resp, env := performRequest(setupRouter(t), http.MethodPost, "/api/v1/studios", gin.H{"studioName": "Solo"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, "required", env.Error.Details["ownerName"])
	assert.Equal(t, "required", env.Error.Details["contact"])
}

func TestHandler_DeleteAndUndo(t *testing.T) {
	router := setupRouter(t)

	resp, env := performRequest(router, http.MethodDelete, "/api/v1/studios/4", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var removed domain.Studio
	require.NoError(t, json.Unmarshal(env.Data, &removed))

	resp, _ = performRequest(router, http.MethodGet, "/api/v1/studios/4", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp, _ = performRequest(router, http.MethodPost, "/api/v1/studios/undo", removed)
	require.Equal(t, http.StatusOK, resp.Code)

	resp, env = performRequest(router, http.MethodPost, "/api/v1/studios/undo", removed)
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "DUPLICATE_ID", env.Error.Code)
}

func TestHandler_UndoRejectsInvalidRecord(t *testing.T) {
	router := setupRouter(t)

	resp, env := performRequest(router, http.MethodDelete, "/api/v1/studios/8", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var removed domain.Studio
	require.NoError(t, json.Unmarshal(env.Data, &removed))
	removed.Rating = 42

	resp, env = performRequest(router, http.MethodPost, "/api/v1/studios/undo", removed)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, "lte", env.Error.Details["rating"])

	resp, _ = performRequest(router, http.MethodGet, "/api/v1/studios/8", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_Export(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/studios/export.xlsx?status=inactive", nil)
	resp := httptest.NewRecorder()
	setupRouter(t).ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, export.ContentType, resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "studios.xlsx")
	assert.NotEmpty(t, resp.Body.Bytes())
}
