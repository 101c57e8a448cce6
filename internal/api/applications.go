package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go-jobtrack/internal/models"
)

// ListOptions narrows the application listing. Zero values mean "all".
type ListOptions struct {
	Limit    int
	Ordering string
}

func (c *Client) ListApplications(ctx context.Context, opts ListOptions) ([]models.Application, error) {
	path := "/api/applications/"
	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", opts.Limit))
	}
	if opts.Ordering != "" {
		query.Set("ordering", opts.Ordering)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var out []models.Application
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetApplication(ctx context.Context, id int) (*models.Application, error) {
	var out models.Application
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/applications/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateApplication(ctx context.Context, req models.CreateApplicationRequest) (*models.Application, error) {
	var out models.Application
	if err := c.doJSON(ctx, http.MethodPost, "/api/applications/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateApplication(ctx context.Context, id int, req models.UpdateApplicationRequest) (*models.Application, error) {
	var out models.Application
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/applications/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteApplication(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/applications/%d", id), nil, nil)
}

func (c *Client) ApplicationStats(ctx context.Context) (*models.ApplicationStats, error) {
	var out models.ApplicationStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/applications/stats/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
