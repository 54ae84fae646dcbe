package campapi

import (
	"context"
	"net/http"
)

// RecordPayment records a payment against a participant code.
func (c *Client) RecordPayment(ctx context.Context, in PaymentInput) (Payment, error) {
	var p Payment
	err := c.do(ctx, http.MethodPost, c.endpoint(nil, "payments"), in, &p)
	return p, err
}

// ListPayments returns the payments of a participant, oldest first.
func (c *Client) ListPayments(ctx context.Context, code string) ([]Payment, error) {
	var list []Payment
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "participants", code, "payments"), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}
