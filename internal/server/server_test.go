package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "planner/docs"
	"planner/internal/config"
	"planner/internal/server"
	"planner/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenStore_Memory(t *testing.T) {
	st, err := server.OpenStore(context.Background(), &config.Config{StoreDriver: "memory"}, zap.NewNop())

	require.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, st)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := server.OpenStore(context.Background(), &config.Config{StoreDriver: "redis"}, zap.NewNop())

	assert.Error(t, err)
}

func TestNew_RoutesServeRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, store.KeyTasksByDate,
		`{"2024-03-01":[{"id":"t1","title":"HW1","completed":false,"courseId":null}]}`))

	s := server.New(ctx, &config.Config{ServerPort: "0"}, st, zap.NewNop())

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/home", nil)
	s.Engine.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"title":"HW1"`)

	resp = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/dates/2024-03-01/tasks/t1/toggle", strings.NewReader(""))
	s.Engine.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/swagger/doc.json", nil)
	s.Engine.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Study Planner API")
}
