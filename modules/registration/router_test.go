package registration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campkit/handler"
	"github.com/dmitrymomot/campkit/modules/registration"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/i18n"
	"github.com/dmitrymomot/campkit/pkg/location"
	svc "github.com/dmitrymomot/campkit/svc/registration"
)

type fakeBackend struct {
	tree      location.Tree
	duplicate bool
}

func (f *fakeBackend) GetCamp(_ context.Context, id int) (campapi.Camp, error) {
	if id != 1 {
		return campapi.Camp{}, campapi.ErrNotFound
	}
	return campapi.Camp{ID: 1, Type: "Jeunes", TrancheAge: "12-17"}, nil
}

func (f *fakeBackend) LocationTree(context.Context) (location.Tree, error) { return f.tree, nil }

func (f *fakeBackend) RegisterParticipant(_ context.Context, reg campapi.Registration) (campapi.Participant, error) {
	if f.duplicate {
		return campapi.Participant{}, campapi.ErrDuplicate
	}
	return campapi.Participant{Code: "P-1", CampID: reg.CampID, FirstName: reg.FirstName, LastName: reg.LastName}, nil
}

func newRouter(t *testing.T) (http.Handler, *fakeBackend) {
	t.Helper()
	backend := &fakeBackend{tree: location.Tree{
		{ID: 1, Name: "Sénégal", Cities: []location.City{
			{ID: 10, Name: "Dakar", Delegations: []location.Delegation{{ID: 100, Name: "Plateau"}}},
		}},
	}}
	catalog, err := i18n.LoadDefault(context.Background())
	require.NoError(t, err)
	tr, err := i18n.NewTranslator(catalog)
	require.NoError(t, err)

	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	service := svc.NewService(backend, backend, svc.WithClock(func() time.Time { return today }))

	r := chi.NewRouter()
	r.Mount("/registration", registration.NewModule(service, tr, handler.NewErrorHandler(nil, tr), nil).Handle())
	return r, backend
}

func post(h http.Handler, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const validForm = `{"camp_id":1,"first_name":"Awa","last_name":"Ndiaye","phone":"+221771234567",` +
	`"birth_date":"2011-02-03","gender":"F","country":"Sénégal","city":"Dakar","delegation":"Plateau"}`

func TestModule_Camp(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/registration/camps/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			AgeLabel string `json:"age_label"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "De 12 à 17 ans", body.Data.AgeLabel)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/registration/camps/9", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Camp introuvable")
}

func TestModule_Validate(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t)

	rec := post(h, "/registration/validate", validForm)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"valid":true}}`, rec.Body.String())

	rec = post(h, "/registration/validate", `{"camp_id":1,"first_name":"A","birth_date":"2020-01-01"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Details, "first_name")
	assert.Contains(t, body.Error.Details, "birth_date")
	assert.Equal(t, []string{"L'âge minimum requis est de 12 ans"}, body.Error.Details["birth_date"])
}

func TestModule_Location(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t)

	rec := post(h, "/registration/location", `{"city":"Dakar","action":"set_country","value":"Sénégal"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cities":["Dakar"]`)
	assert.Contains(t, rec.Body.String(), `"city":""`)

	rec = post(h, "/registration/location", `{"action":"set_region","value":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestModule_Register(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		h, _ := newRouter(t)
		rec := post(h, "/registration", validForm)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"P-1"`)
	})

	t.Run("stale location", func(t *testing.T) {
		h, backend := newRouter(t)
		backend.tree = location.Tree{{ID: 2, Name: "Mali"}}
		rec := post(h, "/registration", validForm)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "errors.selection_stale")
	})

	t.Run("duplicate", func(t *testing.T) {
		h, backend := newRouter(t)
		backend.duplicate = true
		rec := post(h, "/registration", validForm)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "errors.already_registered")
	})
}
