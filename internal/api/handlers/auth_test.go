package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Gav1n0112/keya/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		wantToken      bool
	}{
		{
			name: "successful login",
			request: map[string]string{
				"username": "admin",
				"password": "password",
			},
			expectedStatus: http.StatusOK,
			wantToken:      true,
		},
		{
			name: "wrong password",
			request: map[string]string{
				"username": "admin",
				"password": "nope",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing username",
			request: map[string]string{
				"password": "password",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			request: map[string]string{
				"username": "admin",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.Request(t, http.MethodPost, "/api/login", "", tt.request)
			require.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body map[string]string
			testutil.DecodeJSON(t, resp, &body)

			if tt.wantToken {
				assert.NotEmpty(t, body["token"])
			} else {
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token := ts.Login(t)

	// No token
	resp := ts.Request(t, http.MethodPost, "/api/change-password", "", map[string]string{
		"currentPassword": "password",
		"newPassword":     "newpassword",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Wrong current password
	resp = ts.Request(t, http.MethodPost, "/api/change-password", token, map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "newpassword",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Missing fields
	resp = ts.Request(t, http.MethodPost, "/api/change-password", token, map[string]string{
		"currentPassword": "password",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Successful rotation
	resp = ts.Request(t, http.MethodPost, "/api/change-password", token, map[string]string{
		"currentPassword": "password",
		"newPassword":     "newpassword",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Old password no longer logs in, the new one does
	resp = ts.Request(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": "admin",
		"password": "password",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = ts.Request(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": "admin",
		"password": "newpassword",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRoutes_AuthGate(t *testing.T) {
	ts := testutil.NewTestServer(t)

	// No Authorization header
	resp := ts.Request(t, http.MethodGet, "/api/software", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Garbage token fails validation
	resp = ts.Request(t, http.MethodGet, "/api/software", "garbage", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Tampered token fails validation
	token := ts.Login(t)
	resp = ts.Request(t, http.MethodGet, "/api/software", token+"x", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
