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

	"github.com/wholestock/inventory-backend/internal/adapter/postgres"
	inventoryrepo "github.com/wholestock/inventory-backend/internal/adapter/postgres/inventory"
	productrepo "github.com/wholestock/inventory-backend/internal/adapter/postgres/product"
	"github.com/wholestock/inventory-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/wholestock/inventory-backend/internal/adapter/postgres/user"
	authpkg "github.com/wholestock/inventory-backend/internal/auth"
	"github.com/wholestock/inventory-backend/internal/config"
	"github.com/wholestock/inventory-backend/internal/domain"
	auditsvc "github.com/wholestock/inventory-backend/internal/service/audit"
	authsvc "github.com/wholestock/inventory-backend/internal/service/auth"
	catalogsvc "github.com/wholestock/inventory-backend/internal/service/catalog"
	reportsvc "github.com/wholestock/inventory-backend/internal/service/report"
	"github.com/wholestock/inventory-backend/internal/transport/middleware"
	"github.com/wholestock/inventory-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

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

	products := productrepo.New(pool)
	history := inventoryrepo.New(pool)
	users := userrepo.New(pool)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	authService := authsvc.NewService(logger, users, jwtMgr)
	catalogService := catalogsvc.NewService(logger, products, history, txm)
	auditService := auditsvc.NewService(logger, history, config.ReportsConfig{
		ActivityWindow:   168 * time.Hour,
		ActivityMaxItems: 50,
	})
	reportService := reportsvc.NewService(logger, products)

	handler := rest.NewRouter(rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authService, logger),
		Product: rest.NewProductHandler(catalogService, logger),
		Report:  rest.NewReportHandler(reportService, auditService, logger),
		Health:  rest.NewHealthHandler(pool, "test-version"),
	})

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)

	srv := httptest.NewServer(chain(handler))
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// doJSON sends a request with an optional JSON body and bearer token, and
// returns the status code plus the decoded response body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err, "create request")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	defer resp.Body.Close()

	var result map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "read response body")
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "decode response: %s", raw)
	}
	return resp.StatusCode, result
}

// doJSONList is like doJSON for endpoints that return a JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path, token string) (int, []any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err, "create request")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "read response body")

	var result []any
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &result), "decode response: %s", raw)
	}
	return resp.StatusCode, result
}

// ---------------------------------------------------------------------------
// User helpers.
// ---------------------------------------------------------------------------

// createUserAndToken inserts a user with the given role directly into the
// DB and returns a valid access token for it.
func createUserAndToken(t *testing.T, ts *testServer, role domain.UserRole) (domain.User, string) {
	t.Helper()

	userID := uuid.New()
	suffix := userID.String()[:8]
	username := "e2e-" + suffix

	hash, err := authpkg.HashPassword("e2e-password-1")
	require.NoError(t, err, "hash password")

	_, err = ts.Pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, true)`,
		userID, username,
		fmt.Sprintf("%s@example.com", username),
		hash, role.String(),
	)
	require.NoError(t, err, "insert test user")

	token, err := ts.jwt.GenerateAccessToken(userID, username, role)
	require.NoError(t, err, "generate token")

	return domain.User{
		ID:       userID,
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
		IsActive: true,
	}, token
}

func createAdminToken(t *testing.T, ts *testServer) string {
	t.Helper()
	_, token := createUserAndToken(t, ts, domain.UserRoleAdmin)
	return token
}

func createCustomerToken(t *testing.T, ts *testServer) string {
	t.Helper()
	_, token := createUserAndToken(t, ts, domain.UserRoleCustomer)
	return token
}

// newProductBody returns a valid create-product payload with a unique SKU.
func newProductBody() map[string]any {
	suffix := uuid.New().String()[:8]
	return map[string]any{
		"name":            "E2E Widget " + suffix,
		"sku":             "E2E-" + suffix,
		"description":     "End to end test product",
		"category":        "e2e",
		"price":           "19.99",
		"quantity":        10,
		"min_stock_level": 3,
		"supplier":        "E2E Supplies Ltd",
	}
}
