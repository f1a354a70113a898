package internal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/auth"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/avatars"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/config"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/metrics"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/catalog"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/generator"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "http://localhost:5173"

// newTestServer builds a server without postgres; only routes that never reach the db are exercised.
func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	avatarsDir := t.TempDir()
	diskStore, err := avatars.NewDiskStore(avatarsDir)
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	return &Server{
		config: &config.Config{
			AllowedOrigins:              []string{testOrigin},
			LoginRateLimitAllowedPerMin: 10,
		},
		redisClient:    rdb,
		authService:    auth.NewAuthService(auth.DefaultTTL, rdb),
		loginChecker:   auth.NewLoginChecker(auth.DefaultTTL, rdb),
		avatarStore:    diskStore,
		catalog:        catalog.Default(),
		metricsManager: metrics.NewTestManager(),
		otelShutdown:   func() {},
	}, avatarsDir
}

func serve(t *testing.T, router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestServer_routerSetup_PublicRoutes(t *testing.T) {
	server, _ := newTestServer(t)
	router, err := server.routerSetup()
	require.NoError(t, err)

	rr := serve(t, router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Home Workout Generator API is running", rr.Body.String())

	rr = serve(t, router, httptest.NewRequest(http.MethodGet, "/api/exercises?level=beginner&bodyPart=core", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var buckets []catalog.Bucket
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &buckets))
	require.Len(t, buckets, 1)

	body := `{"level":"intermediate","targetAreas":["core","legs"]}`
	rr = serve(t, router, httptest.NewRequest(http.MethodPost, "/api/workouts/generate", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rr.Code)
	var generated generator.Workout
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &generated))
	assert.Equal(t, "Custom Intermediate Workout", generated.Name)
	assert.NotEmpty(t, generated.Exercises)

	assert.Equal(t, float64(1), testutil.ToFloat64(
		server.metricsManager.CounterRequests.WithLabelValues("POST", "200"),
	))
}

func TestServer_routerSetup_ProtectedRoutes(t *testing.T) {
	server, _ := newTestServer(t)
	router, err := server.routerSetup()
	require.NoError(t, err)

	for _, path := range []string{
		"/api/profile",
		"/api/profile/stats",
		"/api/workouts/jane",
		"/api/workouts/jane/pulse-history",
		"/api/workouts/generate",
		"/api/workouts/generate/completed",
	} {
		rr := serve(t, router, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/workouts", strings.NewReader(`{}`))
	rr := serve(t, router, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestServer_routerSetup_Cors(t *testing.T) {
	server, _ := newTestServer(t)
	router, err := server.routerSetup()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/api/workouts/abc/status", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	rr := serve(t, router, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testOrigin, rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr = serve(t, router, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestServer_routerSetup_AvatarFiles(t *testing.T) {
	server, avatarsDir := newTestServer(t)
	router, err := server.routerSetup()
	require.NoError(t, err)

	name := "1700000000000-avatar.png"
	require.NoError(t, os.WriteFile(filepath.Join(avatarsDir, name), []byte("png-bytes"), 0o644))

	rr := serve(t, router, httptest.NewRequest(http.MethodGet, avatars.URLPrefix+name, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png-bytes", rr.Body.String())

	rr = serve(t, router, httptest.NewRequest(http.MethodGet, avatars.URLPrefix+"missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServer_connStateMetrics(t *testing.T) {
	server := &Server{metricsManager: metrics.NewTestManager()}

	server.connStateMetrics(nil, http.StateNew)
	server.connStateMetrics(nil, http.StateNew)
	server.connStateMetrics(nil, http.StateActive)
	server.connStateMetrics(nil, http.StateClosed)

	assert.Equal(t, float64(1), testutil.ToFloat64(server.metricsManager.GaugeRequests))
}
