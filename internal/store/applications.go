// Package store holds the list-synchronization state: each list owns its
// collection and mirrors the last confirmed server state. Local splices
// happen only after the backend confirms an operation, never before.
package store

import (
	"context"
	"log"

	"go-jobtrack/internal/api"
	"go-jobtrack/internal/models"
)

// ApplicationList owns the in-memory application collection.
type ApplicationList struct {
	client *api.Client
	items  []models.Application
	stats  *models.ApplicationStats
	err    string
}

func NewApplicationList(client *api.Client) *ApplicationList {
	return &ApplicationList{client: client}
}

// Items returns a copy; callers never get a handle on the owned slice.
func (l *ApplicationList) Items() []models.Application {
	out := make([]models.Application, len(l.items))
	copy(out, l.items)
	return out
}

// Err is the page-level error banner text, empty when the last fetch
// succeeded.
func (l *ApplicationList) Err() string {
	return l.err
}

// Fetch replaces the collection with the server's. On failure the previous
// items stay intact and the error banner is set.
func (l *ApplicationList) Fetch(ctx context.Context) error {
	return l.FetchWith(ctx, api.ListOptions{})
}

// FetchWith is Fetch with server-side narrowing (limit, ordering).
func (l *ApplicationList) FetchWith(ctx context.Context, opts api.ListOptions) error {
	items, err := l.client.ListApplications(ctx, opts)
	if err != nil {
		l.err = "Failed to load applications. Please try again later."
		return err
	}
	l.items = items
	l.err = ""
	return nil
}

func (l *ApplicationList) Refetch(ctx context.Context) error {
	return l.Fetch(ctx)
}

// Create submits and, only once the backend has assigned the id, prepends
// the returned entity. No re-fetch, no speculative insert.
func (l *ApplicationList) Create(ctx context.Context, req models.CreateApplicationRequest) (*models.Application, error) {
	created, err := l.client.CreateApplication(ctx, req)
	if err != nil {
		return nil, err
	}
	l.items = append([]models.Application{*created}, l.items...)
	return created, nil
}

// Update replaces the matching entity in place, preserving order. An id
// not in the collection is a no-op locally.
func (l *ApplicationList) Update(ctx context.Context, id int, req models.UpdateApplicationRequest) (*models.Application, error) {
	updated, err := l.client.UpdateApplication(ctx, id, req)
	if err != nil {
		return nil, err
	}
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i] = *updated
		}
	}
	return updated, nil
}

// Delete removes the entity once the backend confirms. Deleting an id that
// is already gone leaves the collection unchanged.
func (l *ApplicationList) Delete(ctx context.Context, id int) error {
	if err := l.client.DeleteApplication(ctx, id); err != nil {
		return err
	}
	kept := l.items[:0]
	for _, app := range l.items {
		if app.ID != id {
			kept = append(kept, app)
		}
	}
	l.items = kept
	return nil
}

// FetchStats pulls the server-side aggregate. A failure here is not worth
// a banner, matching how the dashboard treats it; it only gets logged.
func (l *ApplicationList) FetchStats(ctx context.Context) {
	stats, err := l.client.ApplicationStats(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to fetch stats: %v", err)
		return
	}
	l.stats = stats
}

func (l *ApplicationList) Stats() *models.ApplicationStats {
	return l.stats
}
