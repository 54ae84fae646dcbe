package campapi

import (
	"context"
	"net/http"
)

// Statistics returns the backend aggregates used by the dashboard.
func (c *Client) Statistics(ctx context.Context) (Statistics, error) {
	var s Statistics
	err := c.do(ctx, http.MethodGet, c.endpoint(nil, "statistics"), nil, &s)
	return s, err
}
