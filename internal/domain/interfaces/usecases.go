package interfaces

import (
	"context"

	domaintypes "userdeck/internal/domain/types"
)

// UserLister fetches one page of user previews.
type UserLister interface {
	ListUsers(ctx context.Context, page int) domaintypes.Result[domaintypes.PagedResult]
}

// UserGetter fetches a full user record.
type UserGetter interface {
	GetUser(ctx context.Context, id domaintypes.UserID) domaintypes.Result[domaintypes.UserDetail]
}

// UserCreator creates a user; the server assigns the id.
type UserCreator interface {
	CreateUser(ctx context.Context, user domaintypes.UserDetail) domaintypes.Result[domaintypes.UserDetail]
}

// UserUpdater replaces the mutable fields of an existing user.
type UserUpdater interface {
	UpdateUser(ctx context.Context, user domaintypes.UserDetail) domaintypes.Result[domaintypes.UserDetail]
}

// UserDeleter removes a user and returns the deleted id.
type UserDeleter interface {
	DeleteUser(ctx context.Context, id domaintypes.UserID) domaintypes.Result[domaintypes.UserID]
}
