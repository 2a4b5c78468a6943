package api

import (
	"context"
	"net/http"
)

// DashboardStats fetches the aggregate counters and the top-diseases
// ranking.
func (c *Client) FetchDashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/statistics/dashboard", nil, "", c.requestTimeout, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
