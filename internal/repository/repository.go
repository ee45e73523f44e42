// Package repository adapts the user service client to domain.UserRepository.
//
// It converts transport DTOs to domain records and turns every failure
// (network, non-2xx status, empty or malformed body) into an error Result
// carrying an ErrorCode and a message. Nothing below this package leaks a raw
// error to the screens.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"userdeck/internal/apierror"
	"userdeck/internal/domain"
	"userdeck/internal/userapi"
)

// DefaultPageSize is the page size used when none is configured.
const DefaultPageSize = 20

const (
	msgEmptyResponse      = "Empty response from server"
	msgUserNotFound       = "User not found"
	msgUserExists         = "User already exists"
	msgUnexpectedResponse = "Unexpected response from server"
	msgCreateInvalid      = "Invalid user data - firstName, lastName, and email are required. Email must be unique."
	msgUpdateInvalid      = "Invalid user data - email cannot be updated"
)

// UserRepository implements domain.UserRepository over a UserServiceClient.
type UserRepository struct {
	client   domain.UserServiceClient
	pageSize int
	log      *slog.Logger
}

// New returns a repository that requests pages of pageSize rows. A
// non-positive pageSize selects DefaultPageSize; a nil logger discards logs.
func New(client domain.UserServiceClient, pageSize int, log *slog.Logger) *UserRepository {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &UserRepository{client: client, pageSize: pageSize, log: log}
}

// PageSize returns the configured page size.
func (r *UserRepository) PageSize() int { return r.pageSize }

func (r *UserRepository) ListUsers(ctx context.Context, page int) domain.Result[domain.PagedResult] {
	dto, err := r.client.ListUsers(ctx, page, r.pageSize)
	if err != nil {
		return failure[domain.PagedResult](r, "list users", err, func(se *userapi.StatusError) (domain.ErrorCode, string) {
			return codeOf(se), fmt.Sprintf("Failed to fetch users: %s", se.Status)
		})
	}
	if dto.Data == nil && dto.Total == 0 && dto.Limit == 0 {
		return domain.Failure[domain.PagedResult](domain.CodeUnknown, msgEmptyResponse)
	}
	return domain.Success(pageFromDTO(dto))
}

func (r *UserRepository) GetUser(ctx context.Context, id domain.UserID) domain.Result[domain.UserDetail] {
	dto, err := r.client.GetUser(ctx, id.String())
	if err != nil {
		return failure[domain.UserDetail](r, "get user", err, func(se *userapi.StatusError) (domain.ErrorCode, string) {
			if se.StatusCode == http.StatusNotFound {
				return domain.CodeResourceNotFound, msgUserNotFound
			}
			return codeOf(se), fmt.Sprintf("Failed to fetch user: %s", se.Status)
		})
	}
	if dto.ID == "" {
		return domain.Failure[domain.UserDetail](domain.CodeResourceNotFound, msgUserNotFound)
	}
	return domain.Success(detailFromDTO(dto))
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.UserDetail) domain.Result[domain.UserDetail] {
	dto, err := r.client.CreateUser(ctx, createDTO(user))
	if err != nil {
		return failure[domain.UserDetail](r, "create user", err, func(se *userapi.StatusError) (domain.ErrorCode, string) {
			switch se.StatusCode {
			case http.StatusBadRequest:
				return domain.CodeBodyNotValid, validationMessage(se, msgCreateInvalid)
			case http.StatusConflict:
				return domain.CodeBodyNotValid, msgUserExists
			}
			return codeOf(se), fmt.Sprintf("Failed to create user: %s", se.Status)
		})
	}
	if dto.ID == "" {
		return domain.Failure[domain.UserDetail](domain.CodeUnknown, msgEmptyResponse)
	}
	return domain.Success(detailFromDTO(dto))
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.UserDetail) domain.Result[domain.UserDetail] {
	dto, err := r.client.UpdateUser(ctx, user.ID.String(), updateDTO(user))
	if err != nil {
		return failure[domain.UserDetail](r, "update user", err, func(se *userapi.StatusError) (domain.ErrorCode, string) {
			switch se.StatusCode {
			case http.StatusBadRequest:
				return domain.CodeBodyNotValid, validationMessage(se, msgUpdateInvalid)
			case http.StatusNotFound:
				return domain.CodeResourceNotFound, msgUserNotFound
			}
			return codeOf(se), fmt.Sprintf("Failed to update user: %s", se.Status)
		})
	}
	if dto.ID == "" {
		return domain.Failure[domain.UserDetail](domain.CodeUnknown, msgEmptyResponse)
	}
	return domain.Success(detailFromDTO(dto))
}

func (r *UserRepository) DeleteUser(ctx context.Context, id domain.UserID) domain.Result[domain.UserID] {
	dto, err := r.client.DeleteUser(ctx, id.String())
	if err != nil {
		return failure[domain.UserID](r, "delete user", err, func(se *userapi.StatusError) (domain.ErrorCode, string) {
			if se.StatusCode == http.StatusNotFound {
				return domain.CodeResourceNotFound, msgUserNotFound
			}
			return codeOf(se), fmt.Sprintf("Failed to delete user: %s", se.Status)
		})
	}
	if dto.ID != id.String() {
		return domain.Failure[domain.UserID](domain.CodeUnknown, msgUnexpectedResponse)
	}
	return domain.Success(id)
}

// failure converts err into an error Result. Status errors go through
// onStatus; empty and undecodable bodies are Unknown; everything else is a
// network failure.
func failure[T any](
	r *UserRepository,
	op string,
	err error,
	onStatus func(*userapi.StatusError) (domain.ErrorCode, string),
) domain.Result[T] {
	var se *userapi.StatusError
	switch {
	case errors.As(err, &se):
		code, msg := onStatus(se)
		r.log.Debug("user service rejected request", "op", op, "status", se.StatusCode, "code", code)
		return domain.Failure[T](code, msg)
	case errors.Is(err, userapi.ErrEmptyResponse):
		return domain.Failure[T](domain.CodeUnknown, msgEmptyResponse)
	case errors.Is(err, userapi.ErrMalformedResponse):
		r.log.Debug("user service sent an undecodable body", "op", op, "err", err)
		return domain.Failure[T](domain.CodeUnknown, msgUnexpectedResponse)
	case errors.Is(err, context.Canceled):
		return domain.Failure[T](domain.CodeUnknown, "Request cancelled")
	}
	r.log.Debug("user service unreachable", "op", op, "err", err)
	return domain.Failure[T](domain.CodeNetworkError, "Network error: "+err.Error())
}

// codeOf prefers the code in the response envelope and falls back to the status.
func codeOf(se *userapi.StatusError) domain.ErrorCode {
	if code := apierror.Parse(se.Body).Code; code != domain.CodeUnknown {
		return code
	}
	return apierror.FromStatus(se.StatusCode)
}

// validationMessage keeps the server's per-field reasons behind a
// BODY_NOT_VALID marker so the form screens can map them; without details it
// returns fallback.
func validationMessage(se *userapi.StatusError, fallback string) string {
	env := apierror.Parse(se.Body)
	if env.Code != domain.CodeBodyNotValid {
		return fallback
	}
	if detail := env.Detail(); detail != "" {
		return string(domain.CodeBodyNotValid) + ": " + detail
	}
	return fallback
}

// Compile-time assertion that UserRepository implements domain.UserRepository.
var _ domain.UserRepository = (*UserRepository)(nil)
