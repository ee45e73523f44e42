package userapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdeck/internal/domain"
	"userdeck/internal/userapi"
)

func newServer(t *testing.T, h http.HandlerFunc) *userapi.HTTP {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return userapi.NewHTTP(srv.URL+"/", "app-123", srv.Client())
}

func TestListUsers_SendsPagingAndAppID(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "app-123", r.Header.Get(userapi.AppIDHeader))
		_ = json.NewEncoder(w).Encode(domain.ListResponseDTO{
			Data:  []domain.UserPreviewDTO{{ID: "a", FirstName: "Ann"}},
			Total: 41, Page: 2, Limit: 20,
		})
	})

	out, err := c.ListUsers(context.Background(), 2, 20)
	require.NoError(t, err)
	assert.Equal(t, 41, out.Total)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Ann", out.Data[0].FirstName)
}

func TestCreateUser_PostsJSON(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/create", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var in domain.UserCreateDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(domain.UserFullDTO{ID: "new", FirstName: in.FirstName, Email: in.Email})
	})

	out, err := c.CreateUser(context.Background(), domain.UserCreateDTO{FirstName: "John", LastName: "Doe", Email: "j@d.io"})
	require.NoError(t, err)
	assert.Equal(t, "new", out.ID)
	assert.Equal(t, "j@d.io", out.Email)
}

func TestUpdateAndDelete_EscapeID(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/a%2Fb", r.URL.EscapedPath())
		switch r.Method {
		case http.MethodPut:
			_ = json.NewEncoder(w).Encode(domain.UserFullDTO{ID: "a/b", Phone: "0123456789"})
		case http.MethodDelete:
			_ = json.NewEncoder(w).Encode(domain.DeleteResponseDTO{ID: "a/b"})
		}
	})

	u, err := c.UpdateUser(context.Background(), "a/b", domain.UserUpdateDTO{Phone: "0123456789"})
	require.NoError(t, err)
	assert.Equal(t, "0123456789", u.Phone)

	d, err := c.DeleteUser(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", d.ID)
}

func TestNon2xx_ReturnsStatusErrorWithBody(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"RESOURCE_NOT_FOUND"}`))
	})

	_, err := c.GetUser(context.Background(), "missing")
	var se *userapi.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.JSONEq(t, `{"error":"RESOURCE_NOT_FOUND"}`, string(se.Body))
	assert.Contains(t, se.Error(), "/user/missing")
}

func TestEmptyBody_ReturnsErrEmptyResponse(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := c.GetUser(context.Background(), "x")
	assert.ErrorIs(t, err, userapi.ErrEmptyResponse)
}

func TestTruncatedBody_ReturnsErrMalformedResponse(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [ {"id": `))
	})

	_, err := c.ListUsers(context.Background(), 0, 20)
	assert.ErrorIs(t, err, userapi.ErrMalformedResponse)
	assert.NotErrorIs(t, err, userapi.ErrEmptyResponse)
}

func TestContextCancel_AbortsRequest(t *testing.T) {
	release := make(chan struct{})
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.ListUsers(ctx, 0, 20)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestNewHTTPClient_AppliesTimeouts(t *testing.T) {
	hc := userapi.NewHTTPClient(5 * time.Second)
	tr, ok := hc.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, tr.ResponseHeaderTimeout)
	assert.Equal(t, 5*time.Second, tr.TLSHandshakeTimeout)
	assert.Equal(t, 15*time.Second, hc.Timeout)
}
