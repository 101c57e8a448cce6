package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobtrack/internal/models"
)

type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string { return s.token }

func TestNew_ValidatesBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"valid http", "http://localhost:8000", false},
		{"valid https with trailing slash", "https://api.example.com/", false},
		{"empty", "", true},
		{"no scheme", "localhost:8000", true},
		{"bad scheme", "ftp://example.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Config{BaseURL: tt.baseURL})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDo_TokenReadFreshPerRequest(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.User{ID: 1})
	}))
	defer srv.Close()

	tokens := &staticTokens{token: "first"}
	client, err := New(Config{BaseURL: srv.URL, Tokens: tokens})
	require.NoError(t, err)

	_, err = client.CurrentUser(context.Background())
	require.NoError(t, err)

	// A token swap (logout + re-login) must show up on the next call.
	tokens.token = "second"
	_, err = client.CurrentUser(context.Background())
	require.NoError(t, err)

	tokens.token = ""
	_, err = client.CurrentUser(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer first", "Bearer second", ""}, seen)
}

func TestDo_ErrorCarriesBackendDetail(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"fastapi detail", http.StatusBadRequest, `{"detail":"Email already registered"}`, "Email already registered"},
		{"message field", http.StatusConflict, `{"message":"duplicate"}`, "duplicate"},
		{"validation detail array falls back", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body"]}]}`, "422"},
		{"empty body falls back", http.StatusInternalServerError, ``, "500"},
		{"non-json body falls back", http.StatusBadGateway, `<html>bad gateway</html>`, "502"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			client, err := New(Config{BaseURL: srv.URL})
			require.NoError(t, err)

			_, err = client.CurrentUser(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Contains(t, apiErr.Message, tt.wantMsg)
		})
	}
}

func TestUploadResume_MultipartFieldName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 fake", string(content))
		assert.Equal(t, "resume.pdf", header.Filename)

		json.NewEncoder(w).Encode(models.Resume{ID: 3, OriginalFilename: header.Filename})
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	// The directory part of the path must not leak into the upload.
	uploaded, err := client.UploadResume(context.Background(), "/home/user/docs/resume.pdf",
		strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, 3, uploaded.ID)
	assert.Equal(t, "resume.pdf", uploaded.OriginalFilename)
}

func TestListApplications_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/applications/", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "-applied_date", r.URL.Query().Get("ordering"))
		json.NewEncoder(w).Encode([]models.Application{})
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.ListApplications(context.Background(), ListOptions{Limit: 5, Ordering: "-applied_date"})
	require.NoError(t, err)
}
