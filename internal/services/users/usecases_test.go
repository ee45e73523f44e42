package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"userdeck/internal/domain"
	"userdeck/internal/services/users"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ListUsers(ctx context.Context, page int) domain.Result[domain.PagedResult] {
	return m.Called(ctx, page).Get(0).(domain.Result[domain.PagedResult])
}

func (m *mockRepository) GetUser(ctx context.Context, id domain.UserID) domain.Result[domain.UserDetail] {
	return m.Called(ctx, id).Get(0).(domain.Result[domain.UserDetail])
}

func (m *mockRepository) CreateUser(ctx context.Context, user domain.UserDetail) domain.Result[domain.UserDetail] {
	return m.Called(ctx, user).Get(0).(domain.Result[domain.UserDetail])
}

func (m *mockRepository) UpdateUser(ctx context.Context, user domain.UserDetail) domain.Result[domain.UserDetail] {
	return m.Called(ctx, user).Get(0).(domain.Result[domain.UserDetail])
}

func (m *mockRepository) DeleteUser(ctx context.Context, id domain.UserID) domain.Result[domain.UserID] {
	return m.Called(ctx, id).Get(0).(domain.Result[domain.UserID])
}

func TestListUsers_PassesThrough(t *testing.T) {
	repo := new(mockRepository)
	page := domain.PagedResult{Items: []domain.UserPreview{{ID: "1"}}, Page: 3, Limit: 20, Total: 100}
	repo.On("ListUsers", mock.Anything, 3).Return(domain.Success(page))

	res := users.NewListUsers(repo, nil).ListUsers(context.Background(), 3)

	require.True(t, res.IsSuccess())
	assert.Equal(t, page, res.Value)
	repo.AssertExpectations(t)
}

func TestGetUserDetail_PassesErrorThrough(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetUser", mock.Anything, domain.UserID("9")).Return(domain.Failure[domain.UserDetail](domain.CodeResourceNotFound, "User not found"))

	res := users.NewGetUserDetail(repo, nil).GetUser(context.Background(), "9")

	require.True(t, res.IsError())
	assert.Equal(t, "User not found", res.Message)
	repo.AssertExpectations(t)
}

func TestCreateUser_PassesThrough(t *testing.T) {
	repo := new(mockRepository)
	in := domain.UserDetail{FirstName: "John", LastName: "Doe", Email: "j@d.io"}
	out := in
	out.ID = "srv"
	repo.On("CreateUser", mock.Anything, in).Return(domain.Success(out))

	res := users.NewCreateUser(repo, nil).CreateUser(context.Background(), in)

	assert.Equal(t, domain.UserID("srv"), res.Value.ID)
	repo.AssertExpectations(t)
}

func TestUpdateUser_PassesThrough(t *testing.T) {
	repo := new(mockRepository)
	in := domain.UserDetail{ID: "1", FirstName: "Jane"}
	repo.On("UpdateUser", mock.Anything, in).Return(domain.Failure[domain.UserDetail](domain.CodeBodyNotValid, "Update failed"))

	res := users.NewUpdateUser(repo, nil).UpdateUser(context.Background(), in)

	assert.Equal(t, "Update failed", res.Message)
	repo.AssertExpectations(t)
}

func TestDeleteUser_PassesThrough(t *testing.T) {
	repo := new(mockRepository)
	repo.On("DeleteUser", mock.Anything, domain.UserID("1")).Return(domain.Success(domain.UserID("1")))

	res := users.NewDeleteUser(repo, nil).DeleteUser(context.Background(), "1")

	require.True(t, res.IsSuccess())
	repo.AssertExpectations(t)
}
