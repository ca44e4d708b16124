package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"laundryadmin/internal/middleware"
	"laundryadmin/internal/repository"
	"laundryadmin/internal/store"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewCustomerRepository(store.NewMemory(), zap.NewNop())
	require.NoError(t, repo.Init(context.Background()))

	router := gin.New()
	router.Use(middleware.Navigation())
	NewHandler(NewService(repo)).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func get(router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]json.RawMessage
	_ = json.Unmarshal(resp.Body.Bytes(), &body)
	return resp, body
}

func TestList_SearchAndStats(t *testing.T) {
	resp, body := get(setupRouter(t), "/api/v1/users?q=PUNE")
	require.Equal(t, http.StatusOK, resp.Code)

	var res ListResult
	require.NoError(t, json.Unmarshal(body["data"], &res))
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Ishita Verma", res.Items[0].Name)
	assert.Equal(t, 6, res.Stats.Total)
	assert.Equal(t, 45, res.Stats.TotalOrders)
}

func TestList_Pagination(t *testing.T) {
	_, body := get(setupRouter(t), "/api/v1/users?sort=desc&page=2&limit=4")

	var res ListResult
	require.NoError(t, json.Unmarshal(body["data"], &res))
	assert.Equal(t, 6, res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, int64(2), res.Items[0].ID)
	assert.Equal(t, int64(1), res.Items[1].ID)
}

func TestGet_Unknown(t *testing.T) {
	resp, body := get(setupRouter(t), "/api/v1/users/77")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `"/users"`, string(body["redirect"]))
}
