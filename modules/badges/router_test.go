package badges_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campkit/handler"
	"github.com/dmitrymomot/campkit/modules/badges"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/qrcode"
	"github.com/dmitrymomot/campkit/svc/badge"
)

type fakeBackend struct{}

func (fakeBackend) GetParticipant(_ context.Context, code string) (campapi.Participant, error) {
	if code != "P-1" {
		return campapi.Participant{}, campapi.ErrNotFound
	}
	return campapi.Participant{Code: "P-1", CampID: 1, FirstName: "Awa", LastName: "Ndiaye"}, nil
}

func (fakeBackend) GetCamp(_ context.Context, id int) (campapi.Camp, error) {
	return campapi.Camp{ID: id, Type: "Jeunes", TrancheAge: "12-17", Price: 1000}, nil
}

func newRouter(views *badges.Views) http.Handler {
	svc := badge.NewService(fakeBackend{}, fakeBackend{}, badge.WithQROptions(qrcode.WithSize(64)))
	r := chi.NewRouter()
	r.Mount("/badges", badges.NewModule(svc, views, handler.DefaultErrorHandler, nil).Handle())
	return r
}

func TestModule_Preview(t *testing.T) {
	t.Parallel()

	t.Run("html", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/badges/P-1", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "Awa Ndiaye")
		assert.Contains(t, rec.Body.String(), "data:image/png;base64,")
	})

	t.Run("json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/badges/P-1", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		newRouter(nil).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"qr_content":"campkit:participant:P-1"`)
	})

	t.Run("custom view", func(t *testing.T) {
		views := &badges.Views{Card: func(p badge.Preview) templ.Component {
			return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
				_, err := io.WriteString(w, "custom "+p.Participant.Code)
				return err
			})
		}}
		rec := httptest.NewRecorder()
		newRouter(views).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/badges/P-1", nil))
		assert.Equal(t, "custom P-1", rec.Body.String())
	})

	t.Run("unknown participant", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/badges/P-2", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestModule_Scan(t *testing.T) {
	t.Parallel()

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/badges/scan", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newRouter(nil).ServeHTTP(rec, req)
		return rec
	}

	rec := post(`{"content":"campkit:participant:P-1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"P-1"`)

	rec = post(`{"content":"hello"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "errors.invalid_badge")
}
