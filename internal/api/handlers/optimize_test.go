package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantum-dispatch/internal/api/models"
	"quantum-dispatch/internal/config"
)

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	optimize := NewOptimizeHandler(cfg, nil, nil)
	info := NewInfoHandler(cfg)
	profiles := NewProfileHandler(cfg.Profiles.Dir, nil)

	api := router.Group("/api")
	api.GET("/health", Health)
	api.POST("/optimize", optimize.Optimize)
	api.GET("/quantum-info", info.QuantumInfo)
	api.GET("/profiles", profiles.ListProfiles)
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const optimizeBody = `{
  "hourly": [
    {"hour": "00:00", "total": 520, "demand": 400},
    {"hour": "01:00", "total": 350, "demand": 430},
    {"hour": "02:00", "total": 480, "demand": 460},
    {"hour": "03:00", "total": 300, "demand": 455},
    {"hour": "04:00", "total": 410, "demand": 400},
    {"hour": "05:00", "total": 500, "demand": 440},
    {"hour": "06:00", "total": 390, "demand": 420},
    {"hour": "07:00", "total": 600, "demand": 410},
    {"hour": "08:00", "total": 555, "demand": 400}
  ],
  "capacity": {"battery": 100},
  "options": {"seed": 7}
}`

func TestOptimize(t *testing.T) {
	router := newRouter(config.Default())

	w := post(router, "/api/optimize", optimizeBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.OptimizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Schedule, 8)
	assert.Equal(t, 8, resp.Metrics.Qubits)
	assert.Equal(t, 8*24, resp.Metrics.Gates)
	assert.Equal(t, 42, resp.Metrics.Depth)
	assert.GreaterOrEqual(t, resp.Metrics.Fidelity, 0.92)
	assert.LessOrEqual(t, resp.Metrics.Fidelity, 0.98)
	assert.Equal(t, "exact", resp.Metrics.Optimization)

	for _, entry := range resp.Schedule {
		assert.Contains(t, []string{"Charge", "Discharge"}, entry.Action)
		assert.LessOrEqual(t, entry.Amount, 80)
		assert.Contains(t, []float64{0, 1}, entry.QuantumDecision)
	}

	assert.NotEmpty(t, resp.Recommendations)
	assert.GreaterOrEqual(t, resp.Summary.Efficiency, 85)
	assert.Nil(t, resp.Stats)
}

func TestOptimizeDeterministicWithSeed(t *testing.T) {
	router := newRouter(config.Default())

	first := post(router, "/api/optimize", optimizeBody)
	second := post(router, "/api/optimize", optimizeBody)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestOptimizeIncludeStats(t *testing.T) {
	router := newRouter(config.Default())

	body := strings.Replace(optimizeBody, `"seed": 7`, `"seed": 7, "include_stats": true`, 1)
	w := post(router, "/api/optimize", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.OptimizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Stats)
	assert.Equal(t, 8, resp.Stats.Hours)
	assert.Greater(t, resp.Stats.TotalImbalanceMW, 0.0)
}

func TestOptimizeGreedyStrategy(t *testing.T) {
	router := newRouter(config.Default())

	body := strings.Replace(optimizeBody, `"seed": 7`, `"seed": 7, "strategy": "greedy"`, 1)
	w := post(router, "/api/optimize", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.OptimizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "greedy", resp.Metrics.Optimization)
}

func TestOptimizeRejectsBadRequests(t *testing.T) {
	router := newRouter(config.Default())

	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed json", `{"hourly": [`, "INVALID_REQUEST"},
		{"missing capacity", `{"hourly": [{"hour": "00:00", "total": 1, "demand": 2}]}`, "INVALID_REQUEST"},
		{"empty hourly", `{"hourly": [], "capacity": {"battery": 100}}`, "INVALID_REQUEST"},
		{"unknown strategy", `{"hourly": [{"hour": "00:00", "total": 1, "demand": 2}], "capacity": {"battery": 100}, "options": {"strategy": "oracle"}}`, "INVALID_STRATEGY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(router, "/api/optimize", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestHealth(t *testing.T) {
	router := newRouter(config.Default())

	w := get(router, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "ready", resp.Solver)
}

func TestQuantumInfo(t *testing.T) {
	router := newRouter(config.Default())

	w := get(router, "/api/quantum-info")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.InfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, 50, resp.Reads)
	assert.Equal(t, 100, resp.Sweeps)
	assert.NotEmpty(t, resp.Algorithm)
}

func TestListProfiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1_wind.yaml"),
		[]byte("name: Wind\nbattery_mw: 150\n"), 0o644))

	cfg := config.Default()
	cfg.Profiles.Dir = dir
	router := newRouter(cfg)

	w := get(router, "/api/profiles")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Profiles []models.ProfileInfo `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Profiles, 1)
	assert.Equal(t, "1_wind", resp.Profiles[0].ID)
	assert.Equal(t, 150.0, resp.Profiles[0].BatteryMW)
}

func TestListProfilesMissingDir(t *testing.T) {
	cfg := config.Default()
	cfg.Profiles.Dir = filepath.Join(t.TempDir(), "missing")
	router := newRouter(cfg)

	w := get(router, "/api/profiles")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"profiles": []}`, w.Body.String())
}
