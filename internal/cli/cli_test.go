package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pod-dashboard/internal/store"
	"pod-dashboard/pkg/api"
)

func run(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--api-url", baseURL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTrendsCommand_PrintsAggregatesAndRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trends", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[
			{"id":1,"niche":"Cat Mugs","category":"Home","overall_score":80,"demand_score":71,"profitability_score":75,"avg_price":1234.5,"total_reviews":1245},
			{"id":2,"niche":"Retro Gaming","category":"Apparel","overall_score":40,"demand_score":70,"profitability_score":70}
		]`))
	}))
	defer srv.Close()

	out, err := run(t, srv.URL, "trends")
	require.NoError(t, err)

	assert.Contains(t, out, "Total Trends: 2")
	assert.Contains(t, out, "Avg Score:    60.0")
	assert.Contains(t, out, "High Demand:  1")
	assert.Contains(t, out, "Profitable:   1")
	assert.Contains(t, out, "Cat Mugs")
	assert.Contains(t, out, "$1,234.50")
	assert.Contains(t, out, "1,245")
}

func TestTrendsCommand_ServerErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, err := run(t, srv.URL, "trends")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to fetch trends")
	assert.Contains(t, out, "No trends available")
}

func TestTrendCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trends/7" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"id":7,"niche":"Dog Dads","category":"Apparel","overall_score":66}`))
	}))
	defer srv.Close()

	out, err := run(t, srv.URL, "trend", "7")
	require.NoError(t, err)

	var got api.Trend
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Dog Dads", got.Niche)

	_, err = run(t, srv.URL, "trend", "8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trend 8 not found")

	_, err = run(t, srv.URL, "trend", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid trend id")
}

func TestImportTrendCommand(t *testing.T) {
	var received api.TrendCreate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/trends", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"niche":"Bee Keepers","category":"Outdoors"}`))
	}))
	defer srv.Close()

	file := filepath.Join(t.TempDir(), "trend.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"niche":"Bee Keepers","category":"Outdoors","overall_score":55}`), 0o644))

	out, err := run(t, srv.URL, "import-trend", file)
	require.NoError(t, err)
	assert.Equal(t, "created trend 42 (Bee Keepers)\n", out)
	assert.Equal(t, "Bee Keepers", received.Niche)
	assert.Equal(t, 55.0, received.OverallScore)
}

func TestImportTrendCommand_BadPayload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "trend.json")
	require.NoError(t, os.WriteFile(file, []byte(`{not json`), 0o644))

	_, err := run(t, "http://127.0.0.1:1", "import-trend", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestPrintTrendReport_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printTrendReport(&out, store.State{Trends: []api.Trend{}}))
	assert.Contains(t, out.String(), "Total Trends: 0")
	assert.Contains(t, out.String(), "Avg Score:    0.0")
	assert.Contains(t, out.String(), "No trends available")
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
