package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/shared"
	"github.com/quickbite/backend/internal/infrastructure/config"
)

func testClientConfig() config.ClientConfig {
	return config.ClientConfig{
		Timeout:     time.Second,
		MaxAttempts: 3,
		RetryWait:   0,
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, testClientConfig(), zap.NewNop())
}

func TestDoSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":1,"username":"alice","role":"client"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	var user UserRef
	require.NoError(t, client.Get(context.Background(), "/users/1", &user))
	assert.Equal(t, "alice", user.Username)
}

func TestDoNoRetryOnClientError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Do(context.Background(), http.MethodGet, "/users/99", nil)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
	// A definitive answer is never retried.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDoRetriesServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Do(context.Background(), http.MethodGet, "/flaky", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDoExhaustionIsUnavailable(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Do(context.Background(), http.MethodGet, "/down", nil)
	assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDoUnreachablePeer(t *testing.T) {
	// A closed server refuses connections outright.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	_, err := client.Do(context.Background(), http.MethodGet, "/anything", nil)
	assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestResolverNotFoundIsNotUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	auth := NewAuthClient(newTestClient(server.URL))

	_, err := auth.GetUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NotErrorIs(t, err, shared.ErrUpstreamUnavailable)
}

func TestResolverUnavailableIsNotNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	auth := NewAuthClient(newTestClient(server.URL))

	_, err := auth.GetUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, shared.ErrNotFound)
}

func TestGetMenuItemDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/menu/7", r.URL.Path)
		w.Write([]byte(`{"id":7,"name":"Margherita","price":1200}`))
	}))
	defer server.Close()

	catalog := NewCatalogClient(newTestClient(server.URL))

	item, err := catalog.GetMenuItem(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Margherita", item.Name)
	assert.Equal(t, int64(1200), item.Price)
}
