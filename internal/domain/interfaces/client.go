package interfaces

import (
	"context"

	domaintypes "userdeck/internal/domain/types"
)

// UserServiceClient is how we talk to the remote user service, all with context.
type UserServiceClient interface {
	ListUsers(ctx context.Context, page, limit int) (domaintypes.ListResponseDTO, error)
	GetUser(ctx context.Context, id string) (domaintypes.UserFullDTO, error)
	CreateUser(ctx context.Context, user domaintypes.UserCreateDTO) (domaintypes.UserFullDTO, error)
	UpdateUser(ctx context.Context, id string, user domaintypes.UserUpdateDTO) (domaintypes.UserFullDTO, error)
	DeleteUser(ctx context.Context, id string) (domaintypes.DeleteResponseDTO, error)
}
