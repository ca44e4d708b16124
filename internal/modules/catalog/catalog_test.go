package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"laundryadmin/internal/domain"
	"laundryadmin/internal/middleware"
	"laundryadmin/internal/repository"
	"laundryadmin/internal/store"
)

type fixture struct {
	svc     *Service
	studios *repository.StudioRepository
}

func newFixture(t *testing.T, delay time.Duration) fixture {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemory()

	studios := repository.NewStudioRepository(st, zap.NewNop())
	require.NoError(t, studios.Init(ctx))
	cat := repository.NewCatalogRepository(st, zap.NewNop(), delay)
	require.NoError(t, cat.Init(ctx))

	return fixture{svc: NewService(studios, cat, nil), studios: studios}
}

func TestService_LoadUnknownStudio(t *testing.T) {
	f := newFixture(t, time.Hour)

	start := time.Now()
	_, err := f.svc.Load(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Less(t, time.Since(start), time.Second, "no delay for unknown studios")
}

func TestService_LoadCancelled(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.svc.Load(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestService_ToggleUpdatesServiceCount(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	c, err := f.svc.ToggleService(ctx, 6, "dry-clean")
	require.NoError(t, err)
	assert.Equal(t, 2, c.ActiveServices())

	st, err := f.studios.Get(6)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Services)

	_, err = f.svc.ToggleService(ctx, 6, "dry-clean")
	require.NoError(t, err)
	st, _ = f.studios.Get(6)
	assert.Equal(t, 3, st.Services)
}

func TestService_FailedEditLeavesCount(t *testing.T) {
	f := newFixture(t, 0)

	_, err := f.svc.SetPrices(context.Background(), 3, "ironing", "steam", repository.SubServicePrices{PricePerItemStandard: -2})
	assert.ErrorIs(t, err, repository.ErrValidation)

	st, _ := f.studios.Get(3)
	assert.Equal(t, 2, st.Services, "seed value kept")
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Navigation())
	NewHandler(newFixture(t, 0).svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var env map[string]json.RawMessage
	_ = json.Unmarshal(resp.Body.Bytes(), &env)
	return resp, env
}

func TestHandler_LoadAndEdit(t *testing.T) {
	router := setupRouter(t)

	resp, env := performRequest(router, http.MethodGet, "/api/v1/studios/2/services", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var cat domain.StudioCatalog
	require.NoError(t, json.Unmarshal(env["data"], &cat))
	assert.Len(t, cat.Services, 3)

	resp, _ = performRequest(router, http.MethodPatch, "/api/v1/studios/2/services/wash-fold/sub/delicate", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp, _ = performRequest(router, http.MethodPut, "/api/v1/studios/2/services/wash-fold/sub/regular/prices", repository.SubServicePrices{
		PricePerUnitStandard: 65, PricePerUnitExpress: 95, PricePerItemStandard: 28, PricePerItemExpress: 42,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp, _ = performRequest(router, http.MethodPatch, "/api/v1/studios/2/services/tailoring", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_ItemOverrides(t *testing.T) {
	router := setupRouter(t)

	resp, _ := performRequest(router, http.MethodPut, "/api/v1/studios/1/services/dry-clean/sub/premium/items/saree", gin.H{"standardPrice": 250})
	require.Equal(t, http.StatusOK, resp.Code)

	resp, env := performRequest(router, http.MethodGet, "/api/v1/studios/1/services/dry-clean/sub/premium/items", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var items []domain.EffectiveItem
	require.NoError(t, json.Unmarshal(env["data"], &items))

	var saree domain.EffectiveItem
	for _, it := range items {
		if it.ID == "saree" {
			saree = it
		}
	}
	assert.Equal(t, 250.0, saree.StandardPrice)
	assert.Equal(t, 180.0, saree.ExpressPrice)
	assert.True(t, saree.Overridden)

	resp, _ = performRequest(router, http.MethodPut, "/api/v1/studios/1/services/dry-clean/sub/premium/items/tuxedo", gin.H{"standardPrice": 900})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	resp, env = performRequest(router, http.MethodGet, "/api/v1/studios/42/services", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `"/studios"`, string(env["redirect"]))
}
