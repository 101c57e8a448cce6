package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobtrack/internal/api"
	"go-jobtrack/internal/models"
)

func newResumeList(t *testing.T) (*ResumeList, *int) {
	t.Helper()
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode([]models.Resume{{ID: 1, OriginalFilename: "old.pdf"}})
		case r.Method == http.MethodPost:
			require.NoError(t, r.ParseMultipartForm(1<<20))
			_, header, err := r.FormFile("file")
			require.NoError(t, err)
			json.NewEncoder(w).Encode(models.Resume{ID: 2, OriginalFilename: header.Filename})
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	t.Cleanup(srv.Close)
	client, err := api.New(api.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return NewResumeList(client), &requests
}

func writeTempFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func TestResumeList_UploadPrepends(t *testing.T) {
	list, _ := newResumeList(t)
	require.NoError(t, list.Fetch(context.Background()))
	require.Len(t, list.Items(), 1)

	path := writeTempFile(t, "resume.pdf", 1024)
	uploaded, err := list.Upload(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, uploaded.ID)

	items := list.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "resume.pdf", items[0].OriginalFilename)
	assert.Equal(t, "old.pdf", items[1].OriginalFilename)
}

func TestResumeList_OversizedFileNeverHitsNetwork(t *testing.T) {
	list, requests := newResumeList(t)

	path := writeTempFile(t, "big.pdf", 12<<20) // 12 MB
	_, err := list.Upload(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10 MB")
	assert.Equal(t, 0, *requests, "validation failure must happen before any network call")
	assert.Empty(t, list.Items())
}

func TestResumeList_NonPDFRejectedLocally(t *testing.T) {
	list, requests := newResumeList(t)

	path := writeTempFile(t, "resume.docx", 1024)
	_, err := list.Upload(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDF")
	assert.Equal(t, 0, *requests)
}

func TestResumeList_DeleteRemovesByID(t *testing.T) {
	list, _ := newResumeList(t)
	require.NoError(t, list.Fetch(context.Background()))

	require.NoError(t, list.Delete(context.Background(), 1))
	assert.Empty(t, list.Items())

	// Unknown id: confirmed by backend, nothing to splice locally.
	require.NoError(t, list.Delete(context.Background(), 99))
	assert.Empty(t, list.Items())
}
