package campapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// RegisterParticipant submits a registration. ErrInvalidData, ErrNotFound
// (unknown camp) and ErrDuplicate (already registered) are the expected
// failures.
func (c *Client) RegisterParticipant(ctx context.Context, reg Registration) (Participant, error) {
	var p Participant
	err := c.do(ctx, http.MethodPost, c.endpoint(nil, "participants"), reg, &p)
	return p, err
}

// ListParticipants returns the participants matching filter, in backend order.
func (c *Client) ListParticipants(ctx context.Context, filter ParticipantFilter) ([]Participant, error) {
	query := url.Values{}
	if filter.CampID > 0 {
		query.Set("campId", strconv.Itoa(filter.CampID))
	}
	var list []Participant
	if err := c.do(ctx, http.MethodGet, c.endpoint(query, "participants"), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetParticipant looks a participant up by code.
func (c *Client) GetParticipant(ctx context.Context, code string) (Participant, error) {
	var p Participant
	err := c.do(ctx, http.MethodGet, c.endpoint(nil, "participants", code), nil, &p)
	return p, err
}
