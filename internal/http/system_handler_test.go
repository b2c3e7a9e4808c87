package http_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mebella/catalog-api/internal/service"
)

func TestRoot(t *testing.T) {
	r := newTestRouter(t, &fakeProductService{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"brand":"Мебелла","message":"Добро пожаловать в каталог мебели"}`, resp.Body.String())
}

func TestDiagnostics(t *testing.T) {
	t.Run("Should report an unavailable store without failing", func(t *testing.T) {
		store := &fakeStore{available: false, urlSet: false}
		r := newTestRouter(t, &fakeProductService{}, nil, store)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"database":"not available"`)
		assert.Contains(t, resp.Body.String(), `"database_url":"not set"`)
		assert.Contains(t, resp.Body.String(), `"connection_status":"not connected"`)
		assert.Contains(t, resp.Body.String(), `"collections":[]`)
	})

	t.Run("Should report a working store with at most 10 collections", func(t *testing.T) {
		collections := make([]string, 12)
		for i := range collections {
			collections[i] = fmt.Sprintf("collection-%d", i)
		}
		store := &fakeStore{available: true, urlSet: true, name: "mebella", collections: collections}
		r := newTestRouter(t, &fakeProductService{}, nil, store)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"database":"connected and working"`)
		assert.Contains(t, resp.Body.String(), `"database_name":"mebella"`)
		assert.Contains(t, resp.Body.String(), `"collection-9"`)
		assert.NotContains(t, resp.Body.String(), `"collection-10"`)
	})

	t.Run("Should downgrade a collection listing error to a status string", func(t *testing.T) {
		store := &fakeStore{
			available: true,
			urlSet:    true,
			name:      "mebella",
			err:       errors.New("this is a very long error message that should be cut off at fifty characters"),
		}
		r := newTestRouter(t, &fakeProductService{}, nil, store)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "connected but error: this is a very long error message that should be cu")
	})
}

func TestSeedEndpoint(t *testing.T) {
	t.Run("Should answer 200 when newly seeded", func(t *testing.T) {
		seeder := &fakeSeeder{fn: func(context.Context) service.SeedResult {
			return service.SeedResult{Seeded: true, Inserted: 4}
		}}
		r := newTestRouter(t, &fakeProductService{}, seeder, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"seeded":true,"inserted":4}`, resp.Body.String())
	})

	t.Run("Should answer 200 when data already exists", func(t *testing.T) {
		seeder := &fakeSeeder{fn: func(context.Context) service.SeedResult {
			return service.SeedResult{Seeded: false, Reason: service.SeedReasonAlreadyHasData, Count: 4}
		}}
		r := newTestRouter(t, &fakeProductService{}, seeder, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"seeded":false,"reason":"already has data","count":4}`, resp.Body.String())
	})

	t.Run("Should answer 500 when seeding was attempted and failed", func(t *testing.T) {
		seeder := &fakeSeeder{fn: func(context.Context) service.SeedResult {
			return service.SeedResult{Seeded: false, Reason: "count failed"}
		}}
		r := newTestRouter(t, &fakeProductService{}, seeder, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}
