package api

import (
	"context"
	"net/http"

	"go-jobtrack/internal/models"
)

// RunMatch asks the backend to score one resume against one application.
// Stateless request/response; nothing is cached client-side.
func (c *Client) RunMatch(ctx context.Context, applicationID, resumeID int) (*models.AIAnalysis, error) {
	req := models.AIMatchRequest{ApplicationID: applicationID, ResumeID: resumeID}
	var out models.AIAnalysis
	if err := c.doJSON(ctx, http.MethodPost, "/api/ai/match", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MatchHistory(ctx context.Context) ([]models.AIAnalysis, error) {
	var out []models.AIAnalysis
	if err := c.doJSON(ctx, http.MethodGet, "/api/ai/history", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MatchRankings returns the backend's ranked applications. The ranking
// shape is owned by the backend and passed through untyped.
func (c *Client) MatchRankings(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	if err := c.doJSON(ctx, http.MethodGet, "/api/ai/rankings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
