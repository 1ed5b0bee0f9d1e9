package esi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eveuniverse/internal/shared/config"
	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/shared/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(&config.ESIConfig{
		BaseURL:        server.URL,
		Datasource:     "tranquility",
		UserAgent:      "eveuniverse-test",
		TimeoutSeconds: 5,
	}, logger.NewLogger())
}

func TestCallObjectEndpoint(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/universe/categories/6/", r.URL.Path)
		assert.Equal(t, "tranquility", r.URL.Query().Get("datasource"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"category_id": 6, "name": "Ship", "published": true, "groups": [25, 26]}`))
	})

	result, err := client.Call(context.Background(),
		"Universe.get_universe_categories_category_id", Params{"category_id": 6})
	require.NoError(t, err)

	record, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ship", record["name"])
	assert.Equal(t, true, record["published"])
}

func TestCallNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "Type not found!"}`, http.StatusNotFound)
	})

	_, err := client.Call(context.Background(),
		"Universe.get_universe_types_type_id", Params{"type_id": 99999999})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCallTransientStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"error limited", statusErrorLimited},
		{"bad gateway", http.StatusBadGateway},
		{"service unavailable", http.StatusServiceUnavailable},
		{"gateway timeout", http.StatusGatewayTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := client.Call(context.Background(),
				"Universe.get_universe_regions", nil)
			require.Error(t, err)
			assert.True(t, errors.IsTransportTransientError(err))
		})
	}
}

func TestCallPermanentStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "forbidden"}`, http.StatusForbidden)
	})
	_, err := client.Call(context.Background(), "Universe.get_universe_regions", nil)
	require.Error(t, err)
	assert.True(t, errors.IsTransportPermanentError(err))
}

func TestCallPagedEndpoint(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pages", "2")
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			w.Write([]byte(`[603, 608]`))
			return
		}
		w.Write([]byte(`[25, 26]`))
	})

	result, err := client.Call(context.Background(), "Universe.get_universe_types", nil)
	require.NoError(t, err)

	items, ok := result.([]any)
	require.True(t, ok)
	assert.Len(t, items, 4)
}

func TestCallPostNames(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/universe/names/", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var ids []int64
		require.NoError(t, json.Unmarshal(body, &ids))
		assert.Equal(t, []int64{1001, 2001}, ids)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1001, "name": "Bruce Wayne", "category": "character"},
			{"id": 2001, "name": "Wayne Technologies", "category": "corporation"}
		]`))
	})

	result, err := client.Call(context.Background(),
		"Universe.post_universe_names", Params{"ids": []int64{1001, 2001}})
	require.NoError(t, err)

	records, ok := result.([]any)
	require.True(t, ok)
	assert.Len(t, records, 2)
}

func TestCallUnknownOperation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := client.Call(context.Background(), "Universe.get_universe_nothing", nil)
	require.Error(t, err)
	assert.True(t, errors.IsTransportPermanentError(err))
}

func TestOperationParts(t *testing.T) {
	op := Operation("Universe.get_universe_types_type_id")
	assert.Equal(t, "Universe", op.Category())
	assert.Equal(t, "get_universe_types_type_id", op.Method())
	assert.True(t, op.IsValid())
	assert.False(t, Operation("Universe.get_universe_nothing").IsValid())
}
