package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"go-jobtrack/internal/models"
)

func (c *Client) ListResumes(ctx context.Context) ([]models.Resume, error) {
	var out []models.Resume
	if err := c.doJSON(ctx, http.MethodGet, "/api/resumes/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetResume(ctx context.Context, id int) (*models.Resume, error) {
	var out models.Resume
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/resumes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadResume sends the file as a multipart body under the field name
// "file", which is what the backend expects. Text extraction happens
// server-side afterwards, so the returned Resume may have no text yet.
func (c *Client) UploadResume(ctx context.Context, filename string, r io.Reader) (*models.Resume, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read resume file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	var out models.Resume
	if err := c.do(ctx, http.MethodPost, "/api/resumes/upload", &buf, mw.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteResume(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/resumes/%d", id), nil, nil)
}
