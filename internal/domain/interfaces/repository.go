package interfaces

import (
	"context"

	domaintypes "userdeck/internal/domain/types"
)

// UserRepository is the single data source for user records. Failures come
// back as error Results; implementations never return raw transport errors.
type UserRepository interface {
	ListUsers(ctx context.Context, page int) domaintypes.Result[domaintypes.PagedResult]
	GetUser(ctx context.Context, id domaintypes.UserID) domaintypes.Result[domaintypes.UserDetail]
	CreateUser(ctx context.Context, user domaintypes.UserDetail) domaintypes.Result[domaintypes.UserDetail]
	UpdateUser(ctx context.Context, user domaintypes.UserDetail) domaintypes.Result[domaintypes.UserDetail]
	DeleteUser(ctx context.Context, id domaintypes.UserID) domaintypes.Result[domaintypes.UserID]
}
