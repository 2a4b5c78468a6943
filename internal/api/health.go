package api

import (
	"context"
	"net/http"
)

// Health probes the backend. /health is canonical; older deployments
// only answer on the root path, so that is tried second.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	err := c.doJSON(ctx, http.MethodGet, "/health", nil, "", c.requestTimeout, &status)
	if err == nil {
		return &status, nil
	}

	var root struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if rootErr := c.doJSON(ctx, http.MethodGet, "/", nil, "", c.requestTimeout, &root); rootErr == nil {
		return &HealthStatus{Status: root.Status, Version: root.Version}, nil
	}
	return nil, err
}
