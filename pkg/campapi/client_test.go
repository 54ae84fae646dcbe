package campapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campkit/pkg/cache"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/location"
	"github.com/dmitrymomot/campkit/pkg/requestid"
)

func newClient(t *testing.T, h http.HandlerFunc) *campapi.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := campapi.New(campapi.Config{BaseURL: srv.URL + "/v1/", Timeout: time.Second, UserAgent: "campkit-test"})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew(t *testing.T) {
	t.Parallel()
	_, err := campapi.New(campapi.Config{BaseURL: "not a url"})
	assert.ErrorIs(t, err, campapi.ErrInvalidConfig)
	_, err = campapi.New(campapi.Config{})
	assert.ErrorIs(t, err, campapi.ErrInvalidConfig)
}

func TestClient_Headers(t *testing.T) {
	t.Parallel()

	var got *http.Request
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		writeJSON(w, http.StatusOK, campapi.User{ID: 1, Name: "Awa", Role: campapi.RoleTreasurer})
	})

	ctx := campapi.WithToken(context.Background(), "tok-123")
	ctx = requestid.WithContext(ctx, "req-1")
	user, err := c.Me(ctx)
	require.NoError(t, err)

	assert.Equal(t, campapi.RoleTreasurer, user.Role)
	assert.Equal(t, "/v1/auth/me", got.URL.Path)
	assert.Equal(t, "Bearer tok-123", got.Header.Get("Authorization"))
	assert.Equal(t, "req-1", got.Header.Get(requestid.Header))
	assert.Equal(t, "campkit-test", got.Header.Get("User-Agent"))
}

func TestClient_RequestIDGenerated(t *testing.T) {
	t.Parallel()

	var id string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		id = r.Header.Get(requestid.Header)
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, c.Ping(context.Background()))
	assert.NotEmpty(t, id)
	assert.Empty(t, campapi.TokenFromContext(context.Background()))
}

func TestClient_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, campapi.ErrInvalidData},
		{http.StatusUnauthorized, campapi.ErrUnauthorized},
		{http.StatusForbidden, campapi.ErrForbidden},
		{http.StatusNotFound, campapi.ErrNotFound},
		{http.StatusConflict, campapi.ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, map[string]string{"message": "nope"})
			})
			_, err := c.GetParticipant(context.Background(), "CMP-1")
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}

	t.Run("unmapped status", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, "maintenance")
		})
		_, err := c.Statistics(context.Background())
		var apiErr *campapi.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
		assert.Equal(t, "maintenance", apiErr.Message)
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "{")
		})
		_, err := c.Statistics(context.Background())
		assert.ErrorIs(t, err, campapi.ErrDecode)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()
		c, err := campapi.New(campapi.Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
		require.NoError(t, err)
		assert.ErrorIs(t, c.Ping(context.Background()), campapi.ErrTransport)
	})
}

func TestClient_Camps(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/camps":
			_, _ = io.WriteString(w, `[
				{"id": 1, "type": "Camp Ados", "trancheAge": "11 ans et plus", "price": 15000, "campFondationAmount": 2000, "startDate": "2026-07-01"},
				{"CampId": "2", "CampType": "Camp Jeunes", "TrancheAge": "18-25", "CampPrice": "25 000", "CampFondationAmount": 3000.4, "CampEndDate": "2026-08-15T00:00:00Z"}
			]`)
		case "/v1/camps/3":
			_, _ = io.WriteString(w, `{"type": "no id"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	camps, err := c.ListCamps(context.Background())
	require.NoError(t, err)
	require.Len(t, camps, 2)

	assert.Equal(t, campapi.Camp{
		ID: 1, Type: "Camp Ados", TrancheAge: "11 ans et plus", Price: 15000, FondationAmount: 2000,
		StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}, camps[0])
	assert.Equal(t, 2, camps[1].ID)
	assert.Equal(t, "Camp Jeunes", camps[1].Type)
	assert.Equal(t, "18-25", camps[1].TrancheAge)
	assert.Equal(t, int64(25000), camps[1].Price)
	assert.Equal(t, int64(3000), camps[1].FondationAmount)
	assert.Equal(t, 2026, camps[1].EndDate.Year())

	_, err = c.GetCamp(context.Background(), 3)
	assert.ErrorIs(t, err, campapi.ErrDecode)

	_, err = c.GetCamp(context.Background(), 4)
	assert.ErrorIs(t, err, campapi.ErrNotFound)
}

func TestClient_Writes(t *testing.T) {
	t.Parallel()

	var method, path string
	var body map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		body = nil
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch {
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case r.URL.Path == "/v1/payments":
			writeJSON(w, http.StatusCreated, campapi.Payment{ID: 9, Code: "CMP-1", Amount: 5000, Method: campapi.MethodCash})
		default:
			writeJSON(w, http.StatusCreated, campapi.LocationItem{ID: 5, Name: "Lomé"})
		}
	})
	ctx := context.Background()

	p, err := c.RecordPayment(ctx, campapi.PaymentInput{Code: "CMP-1", Amount: 5000, Method: campapi.MethodCash})
	require.NoError(t, err)
	assert.Equal(t, 9, p.ID)
	assert.Equal(t, "cash", body["method"])

	item, err := c.CreateCity(ctx, 3, "Lomé")
	require.NoError(t, err)
	assert.Equal(t, 5, item.ID)
	assert.Equal(t, "/v1/locations/countries/3/cities", path)
	assert.Equal(t, "Lomé", body["name"])

	require.NoError(t, c.DeleteDelegation(ctx, 12))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/v1/locations/delegations/12", path)
}

func TestParseLocationKind(t *testing.T) {
	t.Parallel()
	k, err := campapi.ParseLocationKind("city")
	require.NoError(t, err)
	assert.Equal(t, campapi.KindCity, k)

	_, err = campapi.ParseLocationKind("region")
	assert.ErrorIs(t, err, campapi.ErrInvalidData)
}

func TestClient_LocationTree(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[{"id":1,"name":"Togo","cities":[{"id":10,"name":"Lomé","delegations":[{"id":100,"name":"Golfe"}]}]}]`)
		})
		tree, err := c.LocationTree(context.Background())
		require.NoError(t, err)
		ids, err := tree.Resolve(location.Selection{Country: "Togo", City: "Lomé", Delegation: "Golfe"})
		require.NoError(t, err)
		assert.Equal(t, location.IDs{CountryID: 1, CityID: 10, DelegationID: 100}, ids)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[{"id":0,"name":""}]`)
		})
		_, err := c.LocationTree(context.Background())
		assert.ErrorIs(t, err, campapi.ErrDecode)
		assert.ErrorIs(t, err, location.ErrMalformedTree)
	})
}

type fakeSource struct {
	calls atomic.Int32
	fail  bool
}

func (f *fakeSource) ListCamps(context.Context) ([]campapi.Camp, error) {
	f.calls.Add(1)
	return []campapi.Camp{{ID: 1}}, nil
}

func (f *fakeSource) GetCamp(_ context.Context, id int) (campapi.Camp, error) {
	f.calls.Add(1)
	if f.fail {
		return campapi.Camp{}, campapi.ErrNotFound
	}
	return campapi.Camp{ID: id, TrancheAge: "15"}, nil
}

func (f *fakeSource) LocationTree(context.Context) (location.Tree, error) {
	f.calls.Add(1)
	return location.Tree{{ID: 1, Name: "Togo"}}, nil
}

func TestCachedCatalog(t *testing.T) {
	t.Parallel()

	newCatalog := func(src campapi.CatalogSource) *campapi.CachedCatalog {
		return campapi.NewCachedCatalog(src, campapi.CatalogStores{
			Camps:     cache.NewMemory[[]campapi.Camp](4, time.Minute),
			Camp:      cache.NewMemory[campapi.Camp](16, time.Minute),
			Locations: cache.NewMemory[location.Tree](1, time.Minute),
		}, nil)
	}
	ctx := context.Background()

	t.Run("memoises", func(t *testing.T) {
		t.Parallel()
		src := &fakeSource{}
		cat := newCatalog(src)

		for range 3 {
			camp, err := cat.GetCamp(ctx, 7)
			require.NoError(t, err)
			assert.Equal(t, 7, camp.ID)
		}
		_, err := cat.LocationTree(ctx)
		require.NoError(t, err)
		_, err = cat.LocationTree(ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(2), src.calls.Load())

		cat.InvalidateLocations(ctx)
		_, err = cat.LocationTree(ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(3), src.calls.Load())

		cat.InvalidateCamps(ctx, 7)
		_, err = cat.GetCamp(ctx, 7)
		require.NoError(t, err)
		_, err = cat.ListCamps(ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(5), src.calls.Load())
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()
		src := &fakeSource{fail: true}
		cat := newCatalog(src)

		_, err := cat.GetCamp(ctx, 1)
		assert.True(t, errors.Is(err, campapi.ErrNotFound))
		_, err = cat.GetCamp(ctx, 1)
		assert.ErrorIs(t, err, campapi.ErrNotFound)
		assert.Equal(t, int32(2), src.calls.Load())
	})
}
