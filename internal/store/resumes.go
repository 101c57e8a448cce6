package store

import (
	"context"
	"fmt"
	"os"

	"go-jobtrack/internal/api"
	"go-jobtrack/internal/models"
	"go-jobtrack/internal/pdfcheck"
)

// ResumeList owns the in-memory resume collection.
type ResumeList struct {
	client *api.Client
	items  []models.Resume
	err    string
}

func NewResumeList(client *api.Client) *ResumeList {
	return &ResumeList{client: client}
}

func (l *ResumeList) Items() []models.Resume {
	out := make([]models.Resume, len(l.items))
	copy(out, l.items)
	return out
}

func (l *ResumeList) Err() string {
	return l.err
}

func (l *ResumeList) Fetch(ctx context.Context) error {
	items, err := l.client.ListResumes(ctx)
	if err != nil {
		l.err = "Failed to load resumes. Please try again later."
		return err
	}
	l.items = items
	l.err = ""
	return nil
}

func (l *ResumeList) Refetch(ctx context.Context) error {
	return l.Fetch(ctx)
}

// Upload validates the file locally first; a non-PDF or oversized file
// fails here without any network call. On confirmed upload the returned
// entity is prepended.
func (l *ResumeList) Upload(ctx context.Context, path string) (*models.Resume, error) {
	if err := pdfcheck.Validate(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open resume file: %w", err)
	}
	defer f.Close()

	uploaded, err := l.client.UploadResume(ctx, path, f)
	if err != nil {
		return nil, err
	}
	l.items = append([]models.Resume{*uploaded}, l.items...)
	return uploaded, nil
}

func (l *ResumeList) Delete(ctx context.Context, id int) error {
	if err := l.client.DeleteResume(ctx, id); err != nil {
		return err
	}
	kept := l.items[:0]
	for _, resume := range l.items {
		if resume.ID != id {
			kept = append(kept, resume)
		}
	}
	l.items = kept
	return nil
}
