package api

import (
	"context"
	"fmt"

	"github.com/omarelders/shipdash/internal/model"
)

// Analytics fetches the precomputed aggregate snapshot. The snapshot is
// replaced wholesale on every call; callers never merge.
func (c *Client) Analytics(ctx context.Context) (*model.AnalyticsSnapshot, error) {
	var snap model.AnalyticsSnapshot
	if err := c.get(ctx, "/api/analytics", nil, &snap); err != nil {
		return nil, fmt.Errorf("failed to fetch analytics: %w", err)
	}
	return &snap, nil
}
