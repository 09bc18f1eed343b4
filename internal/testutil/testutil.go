package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gav1n0112/keya/internal/api"
	"github.com/Gav1n0112/keya/internal/config"
	"github.com/Gav1n0112/keya/internal/repository"
	"github.com/Gav1n0112/keya/internal/repository/jsonstore"
	"github.com/Gav1n0112/keya/internal/service"
	"github.com/stretchr/testify/require"
)

// TestConfig returns a config suitable for tests, with a fixed signing
// secret and the default admin credentials.
func TestConfig() *config.Config {
	return &config.Config{
		Port:               "8080",
		Environment:        "test",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 24,
		StorageDriver:      config.StorageDriverJSON,
		AdminUsername:      "admin",
		AdminPassword:      "password",
	}
}

// NewTestRepos builds a jsonstore backed by a temp directory with the
// admin account bootstrapped.
func NewTestRepos(t *testing.T) (*repository.Repositories, *config.Config) {
	t.Helper()

	cfg := TestConfig()
	cfg.DataDir = t.TempDir()

	store := jsonstore.New(cfg.DataDir)
	require.NoError(t, store.Init())

	repos := jsonstore.NewRepositories(store)
	require.NoError(t, service.NewAuthService(repos.User, cfg).Bootstrap(context.Background()))

	return repos, cfg
}

// TestServer wraps an httptest server running the full API over a
// jsonstore in a temp directory.
type TestServer struct {
	Server   *httptest.Server
	Services *service.Services
	Repos    *repository.Repositories
	Config   *config.Config
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	repos, cfg := NewTestRepos(t)
	services := service.NewServices(repos, cfg)

	srv := httptest.NewServer(api.NewRouter(services, cfg))
	t.Cleanup(srv.Close)

	return &TestServer{
		Server:   srv,
		Services: services,
		Repos:    repos,
		Config:   cfg,
	}
}

// Login authenticates as the bootstrapped admin and returns the token.
func (ts *TestServer) Login(t *testing.T) string {
	t.Helper()

	resp := ts.Request(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": ts.Config.AdminUsername,
		"password": ts.Config.AdminPassword,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)

	return body.Token
}

// Request sends a JSON request to the test server. An empty token leaves
// the Authorization header unset.
func (ts *TestServer) Request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Server.Client().Do(req)
	require.NoError(t, err)

	return resp
}

// DecodeJSON decodes the response body into v and closes it.
func DecodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
