package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trackflow-backend/internal/api/handlers"
	"trackflow-backend/internal/auth"
	"trackflow-backend/internal/config"
	"trackflow-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         testSecret,
		JWTTTLMinutes:     60,
		SessionCookieName: "trackflow_session",
		AllowedOrigins:    []string{"http://localhost:5173"},
		MaxUploadSizeMB:   1,
		MetricsEnabled:    true,
	}
}

func setupRouter(t *testing.T, denylist auth.Denylist) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// Only routes that never reach the database are exercised here
	return SetupRoutes(Dependencies{
		Config:   testConfig(),
		Denylist: denylist,
		HealthChecks: map[string]handlers.HealthCheck{
			"redis": func(context.Context) error { return errors.New("down") },
		},
	})
}

func serve(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func issueToken(t *testing.T, denylist auth.Denylist) (string, *auth.AuthClaims) {
	t.Helper()
	sessions := auth.NewAuthService(nil, denylist, testSecret, time.Hour, nil)
	token, _, err := sessions.GenerateJWT(&models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Alice",
		Email:     "alice@example.com",
	})
	require.NoError(t, err)
	claims, err := sessions.ValidateJWT(context.Background(), token)
	require.NoError(t, err)
	return token, claims
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	router := setupRouter(t, nil)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/teams"},
		{http.MethodPost, "/api/v1/teams/" + uuid.NewString() + "/join-requests"},
		{http.MethodPut, "/api/v1/invitations/" + uuid.NewString()},
		{http.MethodGet, "/api/v1/notifications/unread-count"},
		{http.MethodGet, "/api/auth/me"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			recorder := serve(router, p.method, p.path, "")
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "authentication required")
		})
	}
}

func TestSessionReachesHandlers(t *testing.T) {
	denylist := auth.NewMemoryDenylist()
	router := setupRouter(t, denylist)
	token, _ := issueToken(t, denylist)

	recorder := serve(router, http.MethodGet, "/api/v1/teams/not-a-uuid", token)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid team ID")
}

func TestRevokedSessionIsRejected(t *testing.T) {
	denylist := auth.NewMemoryDenylist()
	router := setupRouter(t, denylist)
	token, claims := issueToken(t, denylist)
	require.NoError(t, denylist.Revoke(context.Background(), claims.ID, time.Now().Add(time.Hour)))

	recorder := serve(router, http.MethodGet, "/api/v1/projects/not-a-uuid", token)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLiveAndUnknownRoutes(t *testing.T) {
	router := setupRouter(t, nil)

	live := serve(router, http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, live.Code)
	assert.NotEmpty(t, live.Header().Get("X-Request-ID"))

	missing := serve(router, http.MethodGet, "/api/v2/nothing", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), "Endpoint not found")
	assert.Contains(t, missing.Body.String(), missing.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupRouter(t, nil)
	serve(router, http.MethodGet, "/health/live", "")

	recorder := serve(router, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, strings.Contains(recorder.Body.String(), `trackflow_http_requests_total{method="GET",route="/health/live",status="200"} 1`))
}

func TestCORSPreflight(t *testing.T) {
	router := setupRouter(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/teams", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:5173", recorder.Header().Get("Access-Control-Allow-Origin"))
}
