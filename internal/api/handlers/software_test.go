package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/Gav1n0112/keya/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSoftware(t *testing.T, ts *testutil.TestServer, token, name string) domain.Software {
	t.Helper()

	resp := ts.Request(t, http.MethodPost, "/api/software", token, map[string]interface{}{
		"name":         name,
		"fileType":     domain.FileTypeSingle,
		"downloadUrls": []string{"https://x/" + name + ".zip"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.Software
	testutil.DecodeJSON(t, resp, &created)
	return created
}

func TestSoftware_CreateAndList(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token := ts.Login(t)

	created := createSoftware(t, ts, token, "tool")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "tool", created.Name)
	assert.False(t, created.CreatedAt.IsZero())

	resp := ts.Request(t, http.MethodGet, "/api/software", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []domain.Software
	testutil.DecodeJSON(t, resp, &items)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, created.Name, items[0].Name)
	assert.Equal(t, created.DownloadURLs, items[0].DownloadURLs)
}

func TestSoftware_CreateValidation(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token := ts.Login(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "missing name",
			body: map[string]interface{}{
				"fileType":     domain.FileTypeSingle,
				"downloadUrls": []string{"https://x/a.zip"},
			},
		},
		{
			name: "missing file type",
			body: map[string]interface{}{
				"name":         "tool",
				"downloadUrls": []string{"https://x/a.zip"},
			},
		},
		{
			name: "empty download urls",
			body: map[string]interface{}{
				"name":         "tool",
				"fileType":     domain.FileTypeSingle,
				"downloadUrls": []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.Request(t, http.MethodPost, "/api/software", token, tt.body)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestSoftware_Update(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token := ts.Login(t)

	created := createSoftware(t, ts, token, "tool")

	resp := ts.Request(t, http.MethodPut, "/api/software/"+created.ID.String(), token, map[string]interface{}{
		"name":         "tool pro",
		"fileType":     domain.FileTypeMultiple,
		"downloadUrls": []string{"https://x/a.z01", "https://x/a.z02"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated domain.Software
	testutil.DecodeJSON(t, resp, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "tool pro", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)

	// Unknown id
	resp = ts.Request(t, http.MethodPut, "/api/software/00000000-0000-0000-0000-000000000001", token, map[string]interface{}{
		"name":         "ghost",
		"fileType":     domain.FileTypeSingle,
		"downloadUrls": []string{"https://x/g.zip"},
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSoftware_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token := ts.Login(t)

	created := createSoftware(t, ts, token, "tool")

	resp := ts.Request(t, http.MethodDelete, "/api/software/"+created.ID.String(), token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.Request(t, http.MethodDelete, "/api/software/"+created.ID.String(), token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = ts.Request(t, http.MethodGet, "/api/software", token, nil)
	var items []domain.Software
	testutil.DecodeJSON(t, resp, &items)
	assert.Empty(t, items)
}
