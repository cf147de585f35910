package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreClientFetchHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/chatbot/session/sess-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"history":[
			{"turnId":"t1","role":"user","content":"hello","timestamp":"2025-06-01T10:00:00Z"},
			{"turnId":"t2","role":"assistant","content":"Hi there","timestamp":"2025-06-01T10:00:05Z","references":[{"type":"external","title":"ROS Docs","url":"https://docs.ros.org","description":"","relevance":0.5}]}
		]}`))
	}))
	defer server.Close()

	c := NewStoreClient(server.URL, 5*time.Second)
	turns, err := c.FetchHistory(context.Background(), "sess-1")

	require.NoError(t, err)
	require.Len(t, turns, 2)

	// turnId 映射为本地 ID，缺失的 references 补为空列表
	assert.Equal(t, "t1", turns[0].ID)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "hello", turns[0].Content)
	assert.NotNil(t, turns[0].References)
	assert.Empty(t, turns[0].References)

	assert.Equal(t, "t2", turns[1].ID)
	require.Len(t, turns[1].References, 1)
	assert.Equal(t, "ROS Docs", turns[1].References[0].Title)
}

// 没有会话ID时本地短路，不发起网络请求
func TestStoreClientFetchHistoryNoSession(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	c := NewStoreClient(server.URL, 5*time.Second)
	_, err := c.FetchHistory(context.Background(), "")

	assert.ErrorIs(t, err, ErrNoSession)
	assert.Equal(t, int32(0), calls.Load())
}

func TestStoreClientFetchHistoryServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	c := NewStoreClient(server.URL, 5*time.Second)
	_, err := c.FetchHistory(context.Background(), "missing")

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusNotFound, srvErr.StatusCode)
}

func TestStoreClientClearHistory(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		// 响应体被忽略，2xx 即成功
		_, _ = w.Write([]byte(`{"whatever":true}`))
	}))
	defer server.Close()

	c := NewStoreClient(server.URL, 5*time.Second)
	err := c.ClearHistory(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/chatbot/session/sess-1/clear", gotPath)
}

func TestStoreClientClearHistoryNoSession(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	c := NewStoreClient(server.URL, 5*time.Second)
	err := c.ClearHistory(context.Background(), "")

	assert.ErrorIs(t, err, ErrNoSession)
	assert.Equal(t, int32(0), calls.Load())
}

func TestStoreClientClearHistoryNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewStoreClient(server.URL, 5*time.Second)
	err := c.ClearHistory(context.Background(), "sess-1")

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}
