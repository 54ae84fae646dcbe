package campapi

import (
	"context"
	"net/http"
	"net/url"
)

// ListStaff returns leaders or treasurers. An empty role lists both.
func (c *Client) ListStaff(ctx context.Context, role Role) ([]StaffMember, error) {
	query := url.Values{}
	if role != "" {
		query.Set("role", string(role))
	}
	var list []StaffMember
	if err := c.do(ctx, http.MethodGet, c.endpoint(query, "staff"), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateStaff creates a leader or treasurer account.
func (c *Client) CreateStaff(ctx context.Context, in StaffInput) (StaffMember, error) {
	var m StaffMember
	err := c.do(ctx, http.MethodPost, c.endpoint(nil, "staff"), in, &m)
	return m, err
}
