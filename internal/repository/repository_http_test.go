package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"userdeck/internal/apierror"
	"userdeck/internal/domain"
	"userdeck/internal/userapi"
)

func TestMalformedBody_IsUnexpectedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [ {"id": `))
	}))
	t.Cleanup(srv.Close)
	repo := New(userapi.NewHTTP(srv.URL, "app-123", srv.Client()), 10, nil)

	list := repo.ListUsers(context.Background(), 0)
	assert.True(t, list.IsError())
	assert.Equal(t, domain.CodeUnknown, list.Code)
	assert.Equal(t, "Unexpected response from server", list.Message)
	assert.Equal(t, apierror.Message(domain.CodeUnknown), apierror.ForResult(list))

	got := repo.GetUser(context.Background(), "a1")
	assert.Equal(t, domain.CodeUnknown, got.Code)
	assert.Equal(t, "Unexpected response from server", got.Message)
}
