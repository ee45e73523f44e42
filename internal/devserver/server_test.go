package devserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdeck/internal/devserver"
	"userdeck/internal/domain"
	"userdeck/internal/logging"
)

const appID = "test-app"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newServer(t *testing.T, seed int) (http.Handler, *devserver.MemoryStore) {
	t.Helper()
	st := devserver.NewMemoryStore()
	require.NoError(t, devserver.Seed(context.Background(), st, seed, fixedNow))
	srv := devserver.New(st, devserver.Options{AppIDs: []string{appID}, Now: func() time.Time { return fixedNow }})
	return srv.Handler(), st
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, devserver.BasePath+path, rd)
	req.Header.Set("app-id", appID)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestList_PagesNewestFirst(t *testing.T) {
	h, _ := newServer(t, 12)

	rec := do(t, h, http.MethodGet, "/user?page=0&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	first := decode[domain.ListResponseDTO](t, rec)
	assert.Equal(t, 12, first.Total)
	assert.Equal(t, 0, first.Page)
	assert.Equal(t, 5, first.Limit)
	require.Len(t, first.Data, 5)
	assert.Equal(t, "Nihal", first.Data[0].FirstName, "last seeded user is the newest")

	last := decode[domain.ListResponseDTO](t, do(t, h, http.MethodGet, "/user?page=2&limit=5", nil))
	require.Len(t, last.Data, 2)
	assert.Equal(t, "Sara", last.Data[1].FirstName)

	past := decode[domain.ListResponseDTO](t, do(t, h, http.MethodGet, "/user?page=9&limit=5", nil))
	assert.NotNil(t, past.Data)
	assert.Empty(t, past.Data)
}

func TestList_ParamsValidated(t *testing.T) {
	h, _ := newServer(t, 1)
	for _, q := range []string{"?limit=4", "?limit=51", "?page=-1", "?page=x"} {
		rec := do(t, h, http.MethodGet, "/user"+q, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.Equal(t, "PARAMS_NOT_VALID", decode[domain.ErrorEnvelopeDTO](t, rec).Error, q)
	}
	assert.Equal(t, 20, decode[domain.ListResponseDTO](t, do(t, h, http.MethodGet, "/user", nil)).Limit)
}

func TestAppID(t *testing.T) {
	h, _ := newServer(t, 1)

	req := httptest.NewRequest(http.MethodGet, devserver.BasePath+"/user", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "APP_ID_MISSING", decode[domain.ErrorEnvelopeDTO](t, rec).Error)

	req = httptest.NewRequest(http.MethodGet, devserver.BasePath+"/user", nil)
	req.Header.Set("app-id", "nope")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "APP_ID_NOT_EXIST", decode[domain.ErrorEnvelopeDTO](t, rec).Error)
}

func TestNoRoute(t *testing.T) {
	h, _ := newServer(t, 0)
	rec := do(t, h, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PATH_NOT_FOUND", decode[domain.ErrorEnvelopeDTO](t, rec).Error)
}

func TestCreateGetUpdateDelete(t *testing.T) {
	h, _ := newServer(t, 0)

	rec := do(t, h, http.MethodPost, "/user/create", domain.UserCreateDTO{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		Title:       "mr",
		Gender:      "male",
		DateOfBirth: "1990-01-15",
		Phone:       "1234567890",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[domain.UserFullDTO](t, rec)
	assert.Len(t, created.ID, 24)
	assert.Equal(t, "1990-01-15T00:00:00.000Z", created.DateOfBirth)
	assert.Equal(t, "2024-03-01T12:00:00.000Z", created.RegisterDate)

	got := decode[domain.UserFullDTO](t, do(t, h, http.MethodGet, "/user/"+created.ID, nil))
	assert.Equal(t, created, got)

	rec = do(t, h, http.MethodPut, "/user/"+created.ID, domain.UserUpdateDTO{FirstName: "Johnny", Location: &domain.LocationDTO{City: "Oslo"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[domain.UserFullDTO](t, rec)
	assert.Equal(t, "Johnny", updated.FirstName)
	assert.Equal(t, "Doe", updated.LastName, "absent fields are kept")
	assert.Equal(t, "Oslo", updated.Location.City)

	rec = do(t, h, http.MethodDelete, "/user/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decode[domain.DeleteResponseDTO](t, rec).ID)

	rec = do(t, h, http.MethodGet, "/user/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "RESOURCE_NOT_FOUND", decode[domain.ErrorEnvelopeDTO](t, rec).Error)

	rec = do(t, h, http.MethodDelete, "/user/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreate_BodyNotValid(t *testing.T) {
	h, _ := newServer(t, 0)
	base := domain.UserCreateDTO{FirstName: "John", LastName: "Doe", Email: "john@example.com"}
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/user/create", base).Code)

	cases := []struct {
		name  string
		body  any
		field string
	}{
		{"duplicate email", base, "email"},
		{"missing last name", domain.UserCreateDTO{FirstName: "Ann", Email: "ann@example.com"}, "lastName"},
		{"bad gender", domain.UserCreateDTO{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Gender: "robot"}, "gender"},
		{"bad email", domain.UserCreateDTO{FirstName: "Ann", LastName: "Lee", Email: "ann"}, "email"},
		{"bad date", domain.UserCreateDTO{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", DateOfBirth: "yesterday"}, "dateOfBirth"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/user/create", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decode[domain.ErrorEnvelopeDTO](t, rec)
			assert.Equal(t, "BODY_NOT_VALID", env.Error)
			assert.Contains(t, env.Data, tc.field)
		})
	}
}

func TestUpdate_EmailImmutable(t *testing.T) {
	h, _ := newServer(t, 0)
	created := decode[domain.UserFullDTO](t, do(t, h, http.MethodPost, "/user/create",
		domain.UserCreateDTO{FirstName: "John", LastName: "Doe", Email: "john@example.com"}))

	rec := do(t, h, http.MethodPut, "/user/"+created.ID, map[string]string{"email": "other@example.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[domain.ErrorEnvelopeDTO](t, rec).Data, "email")
}

func TestMalformedID(t *testing.T) {
	h, _ := newServer(t, 0)
	rec := do(t, h, http.MethodGet, "/user/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PARAMS_NOT_VALID", decode[domain.ErrorEnvelopeDTO](t, rec).Error)
}

func TestCORS_Preflight(t *testing.T) {
	h, _ := newServer(t, 0)
	req := httptest.NewRequest(http.MethodOptions, devserver.BasePath+"/user", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "app-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownAppID_LoggedRedacted(t *testing.T) {
	var logs bytes.Buffer
	srv := devserver.New(devserver.NewMemoryStore(), devserver.Options{
		AppIDs: []string{appID},
		Logger: logging.New(logging.Config{Level: "warn"}, &logs),
	})

	req := httptest.NewRequest(http.MethodGet, devserver.BasePath+"/user", nil)
	req.Header.Set("app-id", "leaked-secret-id")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, logs.String(), "unknown app-id")
	assert.Contains(t, logs.String(), logging.Redacted)
	assert.NotContains(t, logs.String(), "leaked-secret-id")
}
