package payments

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundryadmin/internal/middleware"
	"laundryadmin/internal/modules/export"
)

type envelope struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Redirect string          `json:"redirect"`
	Error    struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, _ := newService(t)

	router := gin.New()
	router.Use(middleware.Navigation())
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
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

func TestHandler_List(t *testing.T) {
	resp, env := performRequest(setupRouter(t), http.MethodGet, "/api/v1/studios/3/payments?status=Pending", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var res ListResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 2325.0, res.Summary.PendingTotal)
}

func TestHandler_ListRejectsBadQuery(t *testing.T) {
	router := setupRouter(t)

	resp, env := performRequest(router, http.MethodGet, "/api/v1/studios/3/payments?bucket=yesterday", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, env.Error.Details, "bucket")

	resp, env = performRequest(router, http.MethodGet, "/api/v1/studios/3/payments?from=16-10-2026", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, env.Error.Details, "from")

	resp, _ = performRequest(router, http.MethodGet, "/api/v1/studios/3/payments?status=Refunded", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHandler_UnknownStudio(t *testing.T) {
	resp, env := performRequest(setupRouter(t), http.MethodGet, "/api/v1/studios/99/payments", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "/studios", env.Redirect)
}

func TestHandler_RecordBulk(t *testing.T) {
	router := setupRouter(t)

	resp, _ := performRequest(router, http.MethodPost, "/api/v1/studios/1/payments/bulk", RecordBulkRequest{PaymentIDs: []int64{101, 102}, Reference: "NEFT-1"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp, env := performRequest(router, http.MethodPost, "/api/v1/studios/1/payments/bulk", RecordBulkRequest{PaymentIDs: []int64{105}, Reference: ""})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, "required", env.Error.Details["reference"])

	resp, _ = performRequest(router, http.MethodPost, "/api/v1/studios/1/payments/bulk", RecordBulkRequest{PaymentIDs: []int64{105, 999}, Reference: "NEFT-2"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_Export(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/studios/1/payments/export.xlsx", nil)
	resp := httptest.NewRecorder()
	setupRouter(t).ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, export.ContentType, resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "STU10001-payments.xlsx")
}
