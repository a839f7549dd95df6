//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/catalog"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/critical"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/entrylog"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/history"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/inprogress"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/shim"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/testhelper"
	"github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/token"
	userrepo "github.com/atelier-soudage/outillage-backend/internal/adapter/postgres/user"
	authpkg "github.com/atelier-soudage/outillage-backend/internal/auth"
	"github.com/atelier-soudage/outillage-backend/internal/config"
	authsvc "github.com/atelier-soudage/outillage-backend/internal/service/auth"
	catalogsvc "github.com/atelier-soudage/outillage-backend/internal/service/catalog"
	"github.com/atelier-soudage/outillage-backend/internal/service/dashboard"
	"github.com/atelier-soudage/outillage-backend/internal/service/maintenance"
	"github.com/atelier-soudage/outillage-backend/internal/transport/middleware"
	"github.com/atelier-soudage/outillage-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	catalogRepo := catalog.New(pool)
	inProgressRepo := inprogress.New(pool)
	historyRepo := history.New(pool)
	entryLogRepo := entrylog.New(pool)
	shimRepo := shim.New(pool)
	criticalRepo := critical.New(pool)
	userRepo := userrepo.New(pool)
	tokenRepo := token.New(pool)

	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtIssuer := "test-issuer"
	accessTTL := 15 * time.Minute
	jwtMgr := authpkg.NewJWTManager(jwtSecret, jwtIssuer, accessTTL)

	authService := authsvc.NewService(logger, userRepo, tokenRepo, txm, jwtMgr,
		config.AuthConfig{
			JWTSecret:       jwtSecret,
			JWTIssuer:       jwtIssuer,
			AccessTokenTTL:  accessTTL,
			RefreshTokenTTL: 720 * time.Hour,
			BcryptCost:      bcrypt.MinCost,
		},
	)

	catalogService := catalogsvc.NewService(logger, catalogRepo, txm)

	maintenanceService := maintenance.NewService(logger, historyRepo, entryLogRepo, shimRepo, criticalRepo)

	dashboardFactory, err := dashboard.NewFactory(
		logger, catalogRepo, inProgressRepo, historyRepo, entryLogRepo,
		shimRepo, criticalRepo,
		dashboard.Config{
			ThresholdCeiling: 2500,
			MaxShimThickness: 10,
			DefaultQuantity:  1,
		},
	)
	require.NoError(t, err)

	mux := rest.NewRouter(
		rest.NewHealthHandler(pool, "test-version"),
		rest.NewAuthHandler(authService, logger),
		rest.NewDashboardHandler(dashboardFactory, logger),
		rest.NewCatalogHandler(catalogService, logger),
		rest.NewAdminHandler(authService, maintenanceService, logger),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Auth(authService),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// doJSON sends a JSON request with an optional bearer token and returns the
// status code and the raw body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// requireUnmarshal unmarshals a response body into out, failing with the
// raw body on error.
func requireUnmarshal(t *testing.T, raw []byte, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}

// decode unmarshals a response body into a map for field assertions.
func decode(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m), "body: %s", raw)
	return m
}

// createTestUser inserts a user with a bcrypt-hashed password and returns
// the user's ID and a valid access token.
func createTestUser(t *testing.T, ts *testServer, role, password string) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	username := fmt.Sprintf("op-%s", userID.String()[:8])

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	_, err = ts.Pool.Exec(context.Background(),
		`INSERT INTO users (id, username, display_name, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, now())`,
		userID, username, "Test Operator", string(hash), role,
	)
	require.NoError(t, err)

	tok, err := ts.jwt.GenerateAccessToken(authpkg.Identity{
		UserID:      userID,
		Role:        role,
		DisplayName: "Test Operator",
	})
	require.NoError(t, err)

	return userID, tok
}

// usernameOf looks up the username for a seeded user, for login tests.
func usernameOf(t *testing.T, ts *testServer, id uuid.UUID) string {
	t.Helper()
	var username string
	err := ts.Pool.QueryRow(context.Background(),
		"SELECT username FROM users WHERE id = $1", id,
	).Scan(&username)
	require.NoError(t, err)
	return username
}

// seedPatte inserts a catalog entry with a single tool slot and returns its ID.
func seedPatte(t *testing.T, ts *testServer, reference, toolRef, location string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := ts.Pool.Exec(context.Background(),
		`INSERT INTO outils_soudage_patte
		   (id, reference_patte_anneau, reference, reference_outil_1, emplacement_outil_1, created_at)
		 VALUES ($1, $2, $3, $4, $5, now())`,
		id, "PA-"+reference, reference, toolRef, location,
	)
	require.NoError(t, err)
	return id
}

// seedCritical flags a tool reference in the critical register.
func seedCritical(t *testing.T, ts *testServer, reference, toolRef string) {
	t.Helper()
	_, err := ts.Pool.Exec(context.Background(),
		`INSERT INTO outil_critique (id, reference, reference_outil, created_at)
		 VALUES ($1, $2, $3, now())`,
		uuid.New(), reference, toolRef,
	)
	require.NoError(t, err)
}

// uniqueRef derives a reference unique to the current test to keep tests
// sharing the database container independent.
func uniqueRef(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}
