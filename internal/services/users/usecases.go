package users

import (
	"context"
	"log/slog"

	"userdeck/internal/domain"
)

// ListUsers fetches one page of user previews.
type ListUsers struct {
	repo domain.UserRepository
	log  *slog.Logger
}

// NewListUsers returns the list use case.
func NewListUsers(repo domain.UserRepository, log *slog.Logger) *ListUsers {
	return &ListUsers{repo: repo, log: orDiscard(log)}
}

func (u *ListUsers) ListUsers(ctx context.Context, page int) domain.Result[domain.PagedResult] {
	res := u.repo.ListUsers(ctx, page)
	u.log.Debug("list users", "page", page, "status", res.Status)
	return res
}

// GetUserDetail fetches a full user record.
type GetUserDetail struct {
	repo domain.UserRepository
	log  *slog.Logger
}

// NewGetUserDetail returns the detail use case.
func NewGetUserDetail(repo domain.UserRepository, log *slog.Logger) *GetUserDetail {
	return &GetUserDetail{repo: repo, log: orDiscard(log)}
}

func (u *GetUserDetail) GetUser(ctx context.Context, id domain.UserID) domain.Result[domain.UserDetail] {
	res := u.repo.GetUser(ctx, id)
	u.log.Debug("get user", "id", id, "status", res.Status)
	return res
}

// CreateUser creates a user record.
type CreateUser struct {
	repo domain.UserRepository
	log  *slog.Logger
}

// NewCreateUser returns the create use case.
func NewCreateUser(repo domain.UserRepository, log *slog.Logger) *CreateUser {
	return &CreateUser{repo: repo, log: orDiscard(log)}
}

func (u *CreateUser) CreateUser(ctx context.Context, user domain.UserDetail) domain.Result[domain.UserDetail] {
	res := u.repo.CreateUser(ctx, user)
	u.log.Debug("create user", "status", res.Status)
	return res
}

// UpdateUser replaces the mutable fields of a user record.
type UpdateUser struct {
	repo domain.UserRepository
	log  *slog.Logger
}

// NewUpdateUser returns the update use case.
func NewUpdateUser(repo domain.UserRepository, log *slog.Logger) *UpdateUser {
	return &UpdateUser{repo: repo, log: orDiscard(log)}
}

func (u *UpdateUser) UpdateUser(ctx context.Context, user domain.UserDetail) domain.Result[domain.UserDetail] {
	res := u.repo.UpdateUser(ctx, user)
	u.log.Debug("update user", "id", user.ID, "status", res.Status)
	return res
}

// DeleteUser removes a user record.
type DeleteUser struct {
	repo domain.UserRepository
	log  *slog.Logger
}

// NewDeleteUser returns the delete use case.
func NewDeleteUser(repo domain.UserRepository, log *slog.Logger) *DeleteUser {
	return &DeleteUser{repo: repo, log: orDiscard(log)}
}

func (u *DeleteUser) DeleteUser(ctx context.Context, id domain.UserID) domain.Result[domain.UserID] {
	res := u.repo.DeleteUser(ctx, id)
	u.log.Debug("delete user", "id", id, "status", res.Status)
	return res
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return log
}

// Compile-time assertions that each use case satisfies its screen contract.
var (
	_ domain.UserLister  = (*ListUsers)(nil)
	_ domain.UserGetter  = (*GetUserDetail)(nil)
	_ domain.UserCreator = (*CreateUser)(nil)
	_ domain.UserUpdater = (*UpdateUser)(nil)
	_ domain.UserDeleter = (*DeleteUser)(nil)
)
