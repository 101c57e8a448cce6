package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobtrack/internal/api"
	"go-jobtrack/internal/models"
)

// fakeApplications serves a mutable application collection the way the
// backend would, assigning ids on create.
type fakeApplications struct {
	apps   []models.Application
	nextID int
	fail   bool
}

func (f *fakeApplications) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/applications/", func(w http.ResponseWriter, r *http.Request) {
		if f.fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"detail": "database unavailable"})
			return
		}

		rest := strings.TrimPrefix(r.URL.Path, "/api/applications/")
		switch {
		case rest == "" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(f.apps)
		case rest == "" && r.Method == http.MethodPost:
			var req models.CreateApplicationRequest
			json.NewDecoder(r.Body).Decode(&req)
			app := models.Application{
				ID:            f.nextID,
				UserID:        1,
				CompanyName:   req.CompanyName,
				PositionTitle: req.PositionTitle,
				Status:        req.Status,
				AppliedDate:   req.AppliedDate,
				FollowUpDate:  req.FollowUpDate,
			}
			f.nextID++
			f.apps = append(f.apps, app)
			json.NewEncoder(w).Encode(app)
		default:
			id, err := strconv.Atoi(rest)
			if err != nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			f.handleByID(w, r, id)
		}
	})
	return mux
}

func (f *fakeApplications) handleByID(w http.ResponseWriter, r *http.Request, id int) {
	idx := -1
	for i, app := range f.apps {
		if app.ID == id {
			idx = i
		}
	}
	switch r.Method {
	case http.MethodPut:
		if idx < 0 {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Application not found"})
			return
		}
		var req models.UpdateApplicationRequest
		json.NewDecoder(r.Body).Decode(&req)
		app := f.apps[idx]
		if req.CompanyName != nil {
			app.CompanyName = *req.CompanyName
		}
		if req.Status != nil {
			app.Status = *req.Status
		}
		f.apps[idx] = app
		json.NewEncoder(w).Encode(app)
	case http.MethodDelete:
		// The backend treats deleting a missing id as success; the list
		// splice is what must stay a no-op.
		if idx >= 0 {
			f.apps = append(f.apps[:idx], f.apps[idx+1:]...)
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newAppList(t *testing.T, fake *fakeApplications) (*ApplicationList, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	client, err := api.New(api.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return NewApplicationList(client), srv
}

func TestApplicationList_CreatePrependsServerEntity(t *testing.T) {
	fake := &fakeApplications{nextID: 42, apps: []models.Application{
		{ID: 1, CompanyName: "Old Corp", Status: models.StatusApplied},
	}}
	list, _ := newAppList(t, fake)
	require.NoError(t, list.Fetch(context.Background()))
	require.Len(t, list.Items(), 1)

	created, err := list.Create(context.Background(), models.CreateApplicationRequest{
		CompanyName:   "Acme",
		PositionTitle: "Engineer",
		Status:        models.StatusApplied,
		AppliedDate:   "2024-01-01",
	})
	require.NoError(t, err)

	items := list.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 42, created.ID)
	assert.Equal(t, 42, items[0].ID, "new entity goes to the front")
	assert.Equal(t, "Acme", items[0].CompanyName)
	assert.Equal(t, "Old Corp", items[1].CompanyName)
}

func TestApplicationList_CreateFailureLeavesItemsAlone(t *testing.T) {
	fake := &fakeApplications{nextID: 2, apps: []models.Application{{ID: 1, CompanyName: "Old Corp"}}}
	list, _ := newAppList(t, fake)
	require.NoError(t, list.Fetch(context.Background()))

	fake.fail = true
	_, err := list.Create(context.Background(), models.CreateApplicationRequest{CompanyName: "Acme"})
	require.Error(t, err)
	assert.Len(t, list.Items(), 1, "no optimistic insert before confirmation")
}

func TestApplicationList_UpdateReplacesInPlace(t *testing.T) {
	fake := &fakeApplications{nextID: 4, apps: []models.Application{
		{ID: 1, CompanyName: "A"},
		{ID: 2, CompanyName: "B"},
		{ID: 3, CompanyName: "C"},
	}}
	list, _ := newAppList(t, fake)
	require.NoError(t, list.Fetch(context.Background()))

	name := "B2"
	_, err := list.Update(context.Background(), 2, models.UpdateApplicationRequest{CompanyName: &name})
	require.NoError(t, err)

	items := list.Items()
	require.Len(t, items, 3)
	// Order preserved, only the matching entity replaced.
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, "B2", items[1].CompanyName)
}

func TestApplicationList_UpdateUnknownIDLeavesItemsUnchanged(t *testing.T) {
	fake := &fakeApplications{nextID: 2, apps: []models.Application{{ID: 1, CompanyName: "A"}}}
	list, _ := newAppList(t, fake)
	require.NoError(t, list.Fetch(context.Background()))

	name := "ghost"
	_, err := list.Update(context.Background(), 99, models.UpdateApplicationRequest{CompanyName: &name})
	require.Error(t, err)
	assert.Equal(t, "A", list.Items()[0].CompanyName)
}

func TestApplicationList_DeleteIsIdempotent(t *testing.T) {
	fake := &fakeApplications{nextID: 3, apps: []models.Application{
		{ID: 1, CompanyName: "A"},
		{ID: 2, CompanyName: "B"},
	}}
	list, _ := newAppList(t, fake)
	require.NoError(t, list.Fetch(context.Background()))

	require.NoError(t, list.Delete(context.Background(), 1))
	assert.Len(t, list.Items(), 1)

	// Deleting the same id again ends in the same final state.
	require.NoError(t, list.Delete(context.Background(), 1))
	items := list.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
}

func TestApplicationList_FetchFailureKeepsPreviousItems(t *testing.T) {
	fake := &fakeApplications{nextID: 2, apps: []models.Application{{ID: 1, CompanyName: "A"}}}
	list, _ := newAppList(t, fake)
	require.NoError(t, list.Fetch(context.Background()))
	assert.Empty(t, list.Err())

	fake.fail = true
	err := list.Refetch(context.Background())
	require.Error(t, err)
	assert.Len(t, list.Items(), 1, "previous list stays intact")
	assert.NotEmpty(t, list.Err())

	// Recovery clears the banner.
	fake.fail = false
	require.NoError(t, list.Refetch(context.Background()))
	assert.Empty(t, list.Err())
}

func TestApplicationList_Filter(t *testing.T) {
	list := &ApplicationList{items: []models.Application{
		{ID: 1, CompanyName: "Acme Corp", PositionTitle: "Backend Engineer", Status: models.StatusApplied},
		{ID: 2, CompanyName: "Công ty Hà Nội", PositionTitle: "Go Developer", Status: models.StatusInterview},
		{ID: 3, CompanyName: "Globex", PositionTitle: "Engineer", Status: models.StatusRejected},
	}}

	tests := []struct {
		name    string
		search  string
		status  string
		wantIDs []int
	}{
		{"no filters", "", "all", []int{1, 2, 3}},
		{"search by company", "acme", "all", []int{1}},
		{"search by position", "engineer", "all", []int{1, 3}},
		{"accent folded search", "ha noi", "all", []int{2}},
		{"status filter", "", "rejected", []int{3}},
		{"search and status combined", "engineer", "applied", []int{1}},
		{"no match", "zzz", "all", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			for _, app := range list.Filter(tt.search, tt.status) {
				got = append(got, app.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}
