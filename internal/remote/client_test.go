package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jaeyoonkim/gisu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.Token = "secret"
	return cfg
}

func TestHTTPStore_Get_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/u1/data/tasks", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		doc := Document{
			Value:     json.RawMessage(`{"tasks":[],"updatedAt":42}`),
			UpdatedAt: 99,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	}))
	defer srv.Close()

	store := NewHTTPStore(testConfig(srv.URL), NoopObserver{})
	doc, err := store.Get(context.Background(), "u1", KeyTasks)

	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, int64(99), doc.UpdatedAt)

	payload, err := DecodeTaskList(doc.Value)
	require.NoError(t, err)
	assert.Equal(t, int64(42), payload.UpdatedAt)
}

func TestHTTPStore_Get_Missing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	store := NewHTTPStore(testConfig(srv.URL), NoopObserver{})
	doc, err := store.Get(context.Background(), "u1", KeyCohort)

	require.NoError(t, err)
	assert.Nil(t, doc, "missing document is (nil, nil)")
}

func TestHTTPStore_Get_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	cfg.MaxRetries = 0

	store := NewHTTPStore(cfg, NoopObserver{})
	_, err := store.Get(context.Background(), "u1", KeyTasks)

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestHTTPStore_Get_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.TimeoutMs = 1000
	cfg.MaxRetries = 0

	store := NewHTTPStore(cfg, NoopObserver{})
	_, err := store.Get(context.Background(), "u1", KeyTasks)

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPStore_Set_WritesEnvelope(t *testing.T) {
	var got Document
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/u1/data/cohort", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	store := NewHTTPStore(testConfig(srv.URL), NoopObserver{})
	require.NoError(t, store.Set(context.Background(), "u1", KeyCohort, "33"))

	cohort, err := DecodeCohort(got.Value)
	require.NoError(t, err)
	assert.Equal(t, "33", cohort)
	assert.Greater(t, got.UpdatedAt, int64(0), "document timestamp is stamped on write")
}

func TestHTTPStore_Set_Retries(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	store := NewHTTPStore(cfg, NoopObserver{})
	require.NoError(t, store.Set(context.Background(), "u1", KeyTasks, TaskList{}))
	assert.Equal(t, 2, calls)
}

func TestHTTPStore_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/healthz", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewHTTPStore(testConfig(srv.URL), NoopObserver{})
	assert.True(t, store.Available(context.Background()))

	down := NewHTTPStore(testConfig("http://127.0.0.1:1"), NoopObserver{})
	assert.False(t, down.Available(context.Background()))
}

func TestDecodeTaskList_LegacyArray(t *testing.T) {
	raw := json.RawMessage(`[{"id":"custom:1","cohort":"32","title":"회의","dueDate":"2026-03-01","phase":"during","assignee":"","done":false,"createdAt":5}]`)

	payload, err := DecodeTaskList(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(0), payload.UpdatedAt, "legacy arrays carry no timestamp")
	require.Len(t, payload.Tasks, 1)
	assert.Equal(t, "custom:1", payload.Tasks[0].ID)
	assert.Equal(t, domain.PhaseDuring, payload.Tasks[0].Phase)
}

func TestDecodeTaskList_Malformed(t *testing.T) {
	_, err := DecodeTaskList(json.RawMessage(`"not a payload"`))
	assert.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 8000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}
