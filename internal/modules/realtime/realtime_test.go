package realtime

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"laundryadmin/internal/repository"
	"laundryadmin/internal/store"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 10*time.Millisecond)
}

func TestChangesStreamsRepositoryEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	studios := repository.NewStudioRepository(store.NewMemory(), zap.NewNop())
	require.NoError(t, studios.Init(ctx))

	hub := NewHub(nil)
	defer hub.Close()
	stop := hub.Watch(studios)
	defer stop()

	router := gin.New()
	NewHandler(hub, nil).RegisterRoutes(router.Group("/api/v1"))
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws/changes"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	waitFor(t, func() bool { return hub.Count() == 1 })

	_, err = studios.SetStatus(ctx, 8, true)
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev repository.ChangeEvent
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, repository.KeyStudios, ev.Key)
	assert.Equal(t, repository.ActionUpdated, ev.Action)
	assert.Equal(t, []int64{8}, ev.IDs)

	require.NoError(t, conn.Close())
	waitFor(t, func() bool { return hub.Count() == 0 })
}

func TestBroadcastWithoutClients(t *testing.T) {
	hub := NewHub(nil)
	assert.Equal(t, 0, hub.Broadcast(repository.ChangeEvent{Key: repository.KeyPayments}))
}

func TestBroadcastDropsStalledClient(t *testing.T) {
	hub := NewHub(nil)
	stalled := &client{send: make(chan []byte, 1), quit: make(chan struct{})}
	hub.clients["stalled"] = stalled
	ev := repository.ChangeEvent{Key: repository.KeyStudios, Action: repository.ActionUpdated}

	assert.Equal(t, 1, hub.Broadcast(ev))

	start := time.Now()
	assert.Equal(t, 0, hub.Broadcast(ev))
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 0, hub.Count())

	select {
	case <-stalled.quit:
	default:
		t.Fatal("stalled client was not stopped")
	}
}
