package chi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/shoplens"
	shopchi "github.com/fwojciec/shoplens/chi"
	"github.com/fwojciec/shoplens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(insights shoplens.InsightService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return shopchi.NewServer(":0", insights, logger).Router()
}

func TestServer_FetchInsights(t *testing.T) {
	t.Parallel()

	t.Run("returns the insight as JSON", func(t *testing.T) {
		t.Parallel()

		insights := &mock.InsightService{
			BuildInsightFn: func(ctx context.Context, rawURL string) (*shoplens.Insight, error) {
				assert.Equal(t, "https://demo.myshopify.com", rawURL)
				return &shoplens.Insight{
					StoreName:  "Demo Store",
					WebsiteURL: "https://demo.myshopify.com",
					Platform:   shoplens.PlatformShopify,
					Products:   []shoplens.Product{{Title: "Classic Tee", URL: "https://demo.myshopify.com/products/classic-tee"}},
					Navigation: []shoplens.NavEntry{},
					Warnings:   []string{},
				}, nil
			},
		}

		router := newTestServer(insights)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/fetch_insights",
			strings.NewReader(`{"website_url":"https://demo.myshopify.com"}`))

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var insight shoplens.Insight
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insight))
		assert.Equal(t, "Demo Store", insight.StoreName)
		assert.Equal(t, shoplens.PlatformShopify, insight.Platform)
		require.Len(t, insight.Products, 1)
		assert.Equal(t, "Classic Tee", insight.Products[0].Title)
	})

	t.Run("maps EINVALID to 400", func(t *testing.T) {
		t.Parallel()

		insights := &mock.InsightService{
			BuildInsightFn: func(ctx context.Context, rawURL string) (*shoplens.Insight, error) {
				return nil, shoplens.Errorf(shoplens.EINVALID, "website URL is required")
			},
		}

		router := newTestServer(insights)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/fetch_insights", strings.NewReader(`{"website_url":""}`))

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "website URL is required", payload["error"])
	})

	t.Run("maps EUNREACHABLE to 502", func(t *testing.T) {
		t.Parallel()

		insights := &mock.InsightService{
			BuildInsightFn: func(ctx context.Context, rawURL string) (*shoplens.Insight, error) {
				return nil, shoplens.Errorf(shoplens.EUNREACHABLE, "store %s is unreachable", rawURL)
			},
		}

		router := newTestServer(insights)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/fetch_insights",
			strings.NewReader(`{"website_url":"https://down.example.com"}`))

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("maps unexpected errors to 500", func(t *testing.T) {
		t.Parallel()

		insights := &mock.InsightService{
			BuildInsightFn: func(ctx context.Context, rawURL string) (*shoplens.Insight, error) {
				return nil, shoplens.Errorf(shoplens.EINTERNAL, "boom")
			},
		}

		router := newTestServer(insights)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/fetch_insights",
			strings.NewReader(`{"website_url":"https://demo.myshopify.com"}`))

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("rejects a malformed body without calling the service", func(t *testing.T) {
		t.Parallel()

		called := false
		insights := &mock.InsightService{
			BuildInsightFn: func(ctx context.Context, rawURL string) (*shoplens.Insight, error) {
				called = true
				return nil, nil
			},
		}

		router := newTestServer(insights)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/fetch_insights", bytes.NewReader([]byte("{not json")))

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, called)
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	router := newTestServer(&mock.InsightService{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "healthy", payload["status"])
	assert.Equal(t, "shoplens", payload["service"])
}
