package campapi

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Accepted keys per canonical Camp field, in lookup order. The backend has
// used both camelCase and PascalCase, with and without the "camp" prefix.
var campKeys = struct {
	id, kind, trancheAge, price, fondation, start, end []string
}{
	id:         []string{"id", "Id", "ID", "campId", "CampId", "_id"},
	kind:       []string{"type", "Type", "campType", "CampType"},
	trancheAge: []string{"trancheAge", "TrancheAge", "campTrancheAge", "CampTrancheAge"},
	price:      []string{"price", "Price", "campPrice", "CampPrice", "prix"},
	fondation:  []string{"fondationAmount", "FondationAmount", "campFondationAmount", "CampFondationAmount"},
	start:      []string{"startDate", "StartDate", "campStartDate", "CampStartDate", "dateDebut"},
	end:        []string{"endDate", "EndDate", "campEndDate", "CampEndDate", "dateFin"},
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", time.DateOnly, "02/01/2006"}

// normalizeCamp converts one backend camp object to Camp. It is the only
// place aware of the payload's alternative key names. A camp without an id
// is rejected; other missing fields keep their zero value.
func normalizeCamp(raw map[string]json.RawMessage) (Camp, error) {
	var camp Camp

	id, ok := firstNumber(raw, campKeys.id)
	if !ok || id <= 0 {
		return Camp{}, fmt.Errorf("%w: camp without id", ErrDecode)
	}
	camp.ID = int(id)
	camp.Type, _ = firstString(raw, campKeys.kind)
	camp.TrancheAge, _ = firstString(raw, campKeys.trancheAge)

	if price, ok := firstNumber(raw, campKeys.price); ok {
		camp.Price = price
	}
	if amount, ok := firstNumber(raw, campKeys.fondation); ok {
		camp.FondationAmount = amount
	}
	if s, ok := firstString(raw, campKeys.start); ok {
		camp.StartDate = parseDate(s)
	}
	if s, ok := firstString(raw, campKeys.end); ok {
		camp.EndDate = parseDate(s)
	}
	return camp, nil
}

func firstString(raw map[string]json.RawMessage, keys []string) (string, bool) {
	for _, k := range keys {
		v, present := raw[k]
		if !present {
			continue
		}
		var s string
		if json.Unmarshal(v, &s) == nil {
			return strings.TrimSpace(s), true
		}
		// Numbers are accepted where text is expected ("trancheAge": 15).
		var n json.Number
		if json.Unmarshal(v, &n) == nil {
			return n.String(), true
		}
	}
	return "", false
}

// firstNumber accepts JSON numbers and numeric strings. Fractions are rounded.
func firstNumber(raw map[string]json.RawMessage, keys []string) (int64, bool) {
	for _, k := range keys {
		v, present := raw[k]
		if !present {
			continue
		}
		var f float64
		if json.Unmarshal(v, &f) == nil {
			return int64(math.Round(f)), true
		}
		var s string
		if json.Unmarshal(v, &s) == nil {
			s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return int64(math.Round(f)), true
			}
		}
	}
	return 0, false
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ListCamps returns every camp.
func (c *Client) ListCamps(ctx context.Context) ([]Camp, error) {
	var raw []map[string]json.RawMessage
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "camps"), nil, &raw); err != nil {
		return nil, err
	}
	camps := make([]Camp, 0, len(raw))
	for _, r := range raw {
		camp, err := normalizeCamp(r)
		if err != nil {
			return nil, err
		}
		camps = append(camps, camp)
	}
	return camps, nil
}

// GetCamp returns one camp. ErrNotFound reports an unknown id.
func (c *Client) GetCamp(ctx context.Context, id int) (Camp, error) {
	var raw map[string]json.RawMessage
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "camps", strconv.Itoa(id)), nil, &raw); err != nil {
		return Camp{}, err
	}
	return normalizeCamp(raw)
}
