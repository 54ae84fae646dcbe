package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campkit/binder"
)

type paymentRequest struct {
	Code    string   `path:"code"`
	Amount  int64    `json:"amount" form:"amount"`
	Method  string   `json:"method" form:"method"`
	Notify  bool     `json:"notify" form:"notify"`
	Page    int      `query:"page"`
	Tags    []string `query:"tags"`
	Size    *int     `query:"size"`
	Ignored string   `query:"-" form:"-" path:"-"`
}

func TestJSON(t *testing.T) {
	t.Parallel()
	bind := binder.JSON()

	t.Run("decodes and trims", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":1500,"method":"  cash "}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		var got paymentRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, int64(1500), got.Amount)
		assert.Equal(t, "cash", got.Method)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":1,"extra":true}`))
		req.Header.Set("Content-Type", "application/json")

		var got paymentRequest
		assert.ErrorIs(t, bind(req, &got), binder.ErrFailedToParseJSON)
	})

	t.Run("trailing data is rejected", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount":1}{"amount":2}`))
		req.Header.Set("Content-Type", "application/json")

		var got paymentRequest
		assert.ErrorIs(t, bind(req, &got), binder.ErrFailedToParseJSON)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
		req.Header.Set("Content-Type", "application/json")

		var got paymentRequest
		assert.ErrorIs(t, bind(req, &got), binder.ErrFailedToParseJSON)
	})

	t.Run("content type checks", func(t *testing.T) {
		t.Parallel()
		var got paymentRequest

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		assert.ErrorIs(t, bind(req, &got), binder.ErrMissingContentType)

		req.Header.Set("Content-Type", "text/plain")
		assert.ErrorIs(t, bind(req, &got), binder.ErrUnsupportedMediaType)

		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.ErrorIs(t, bind(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("cancelled request", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		var got paymentRequest
		assert.ErrorIs(t, bind(req, &got), context.Canceled)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()
	bind := binder.Form()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		form := url.Values{"amount": {" 2500 "}, "method": {"mobile_money"}, "notify": {"on"}, "ignored": {"x"}}
		req := httptest.NewRequest(http.MethodPost, "/?amount=1", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got paymentRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, int64(2500), got.Amount)
		assert.Equal(t, "mobile_money", got.Method)
		assert.True(t, got.Notify)
		assert.Empty(t, got.Ignored)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("amount=abc"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got paymentRequest
		err := bind(req, &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
		assert.Contains(t, err.Error(), "Amount")
	})

	t.Run("json body is not applicable", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		var got paymentRequest
		assert.ErrorIs(t, bind(req, &got), binder.ErrBinderNotApplicable)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()
	bind := binder.Query()

	t.Run("scalars slices and pointers", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?page=3&tags=a,b&tags=c&size=20", nil)

		var got paymentRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, 3, got.Page)
		assert.Equal(t, []string{"a", "b", "c"}, got.Tags)
		require.NotNil(t, got.Size)
		assert.Equal(t, 20, *got.Size)
	})

	t.Run("embedded structs are flattened", func(t *testing.T) {
		t.Parallel()
		type ListQuery struct {
			Query string `query:"q"`
			Page  int    `query:"page"`
		}
		type participantQuery struct {
			ListQuery
			CampID int `query:"camp"`
		}
		req := httptest.NewRequest(http.MethodGet, "/?q=diop&page=2&camp=7", nil)

		var got participantQuery
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "diop", got.Query)
		assert.Equal(t, 2, got.Page)
		assert.Equal(t, 7, got.CampID)
	})

	t.Run("absent pointer stays nil", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?page=", nil)

		var got paymentRequest
		require.NoError(t, bind(req, &got))
		assert.Zero(t, got.Page)
		assert.Nil(t, got.Size)
	})

	t.Run("target must be a struct pointer", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		var got paymentRequest
		assert.ErrorIs(t, bind(req, got), binder.ErrFailedToParseQuery)
		var n int
		assert.ErrorIs(t, bind(req, &n), binder.ErrFailedToParseQuery)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	var got paymentRequest
	r := chi.NewRouter()
	r.Get("/payments/{code}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, binder.Path()(r, &got))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/payments/CMP-0042", nil))
	assert.Equal(t, "CMP-0042", got.Code)
}
