package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL:    srv.URL + "/api/v1/",
		APIKey:     "test-key",
		Connection: DefaultConnectionConfig(),
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "  "})
	assert.ErrorIs(t, err, ErrNoBaseURL)
}

func TestTrendsList_SendsLimitAndFilters(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	var gotHeaders http.Header

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotHeaders = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"niche":"cat mugs","overall_score":81.5,"target_audience":{"age":"25-34"}},{"id":2,"niche":"retro gaming"}]`)
	})

	trends, err := client.Trends().List(context.Background(), ListOptions{Skip: 10, Limit: 50}, &TrendFilter{
		Category: "apparel",
		MinScore: 60,
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/trends", gotPath)
	assert.Equal(t, []string{"10"}, gotQuery["skip"])
	assert.Equal(t, []string{"50"}, gotQuery["limit"])
	assert.Equal(t, []string{"apparel"}, gotQuery["category"])
	assert.Equal(t, []string{"60"}, gotQuery["min_score"])
	assert.NotContains(t, gotQuery, "niche")

	assert.Equal(t, "application/json", gotHeaders.Get("Accept"))
	assert.Equal(t, "Bearer test-key", gotHeaders.Get("Authorization"))
	assert.NotEmpty(t, gotHeaders.Get("X-Request-ID"))

	require.Len(t, trends, 2)
	assert.Equal(t, int64(1), trends[0].ID)
	assert.Equal(t, "cat mugs", trends[0].Niche)
	assert.Equal(t, 81.5, trends[0].OverallScore)
	assert.Equal(t, "25-34", trends[0].TargetAudience["age"])
	assert.Nil(t, trends[1].TargetAudience)
}

func TestTrendsList_OmitsZeroSkip(t *testing.T) {
	var rawQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		io.WriteString(w, `[]`)
	})

	trends, err := client.Trends().List(context.Background(), ListOptions{Limit: 50}, nil)
	require.NoError(t, err)
	assert.Empty(t, trends)
	assert.Equal(t, "limit=50", rawQuery)
}

func TestGet_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/designs/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail":"Design not found"}`)
	})

	design, err := client.Designs().Get(context.Background(), 42)
	assert.Nil(t, design)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Contains(t, se.Body, "Design not found")
}

func TestCreate_PostsJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "etsy", payload["marketplace"])
		assert.Equal(t, "Cat Mug", payload["title"])

		io.WriteString(w, `{"id":7,"marketplace":"etsy","title":"Cat Mug","created_at":"2024-05-01T10:00:00Z"}`)
	})

	product, err := client.Products().Create(context.Background(), ProductCreate{
		Marketplace: "etsy",
		ExternalID:  "abc",
		Title:       "Cat Mug",
		Category:    "home",
		Price:       14.99,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), product.ID)
	assert.Equal(t, 2024, product.CreatedAt.Year())
}

func TestDesignsList_FilterParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("trend_id"))
		assert.Equal(t, "draft", r.URL.Query().Get("status"))
		io.WriteString(w, `[{"id":1,"title":"Sunset Cat","status":"draft"}]`)
	})

	designs, err := client.Designs().List(context.Background(), ListOptions{Limit: 20}, &DesignFilter{TrendID: 3, Status: "draft"})
	require.NoError(t, err)
	require.Len(t, designs, 1)
	assert.Equal(t, "draft", designs[0].Status)
}

func TestList_DecodeFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"not":"an array"}`)
	})

	_, err := client.Trends().List(context.Background(), ListOptions{Limit: 50}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestList_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	client, err := NewClient(Config{BaseURL: base})
	require.NoError(t, err)

	_, err = client.Trends().List(context.Background(), ListOptions{Limit: 50}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
	assert.Equal(t, uint64(1), client.Stats()["failed_requests"])
}

func TestList_CanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Trends().List(ctx, ListOptions{Limit: 50}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestList_ContextDeadline(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		io.WriteString(w, `[]`)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Trends().List(ctx, ListOptions{Limit: 50}, nil)
	require.Error(t, err)
}
