package domain

import (
	interfaces "userdeck/internal/domain/interfaces"
	types "userdeck/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	UserID            = types.UserID
	ErrorCode         = types.ErrorCode
	UserPreview       = types.UserPreview
	UserDetail        = types.UserDetail
	Location          = types.Location
	UserFields        = types.UserFields
	PagedResult       = types.PagedResult
	Settings          = types.Settings
	Status            = types.Status
	OperationError    = types.OperationError
	UserPreviewDTO    = types.UserPreviewDTO
	ListResponseDTO   = types.ListResponseDTO
	LocationDTO       = types.LocationDTO
	UserFullDTO       = types.UserFullDTO
	UserCreateDTO     = types.UserCreateDTO
	UserUpdateDTO     = types.UserUpdateDTO
	DeleteResponseDTO = types.DeleteResponseDTO
	ErrorEnvelopeDTO  = types.ErrorEnvelopeDTO
)

// Result is the three-variant outcome type; see types.Result.
type Result[T any] = types.Result[T]

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	UserRepository    = interfaces.UserRepository
	UserLister        = interfaces.UserLister
	UserGetter        = interfaces.UserGetter
	UserCreator       = interfaces.UserCreator
	UserUpdater       = interfaces.UserUpdater
	UserDeleter       = interfaces.UserDeleter
	UserServiceClient = interfaces.UserServiceClient
	CredentialStore   = interfaces.CredentialStore
	SettingsStore     = interfaces.SettingsStore
)

// Error codes re-exported from the types subpackage.
const (
	CodeAppIDNotExist    = types.CodeAppIDNotExist
	CodeAppIDMissing     = types.CodeAppIDMissing
	CodeParamsNotValid   = types.CodeParamsNotValid
	CodeBodyNotValid     = types.CodeBodyNotValid
	CodeResourceNotFound = types.CodeResourceNotFound
	CodePathNotFound     = types.CodePathNotFound
	CodeServerError      = types.CodeServerError
	CodeNetworkError     = types.CodeNetworkError
	CodeUnknown          = types.CodeUnknown

	StatusLoading = types.StatusLoading
	StatusSuccess = types.StatusSuccess
	StatusError   = types.StatusError
)

// ErrStillLoading is returned by Result.Unwrap on a Loading result.
var ErrStillLoading = types.ErrStillLoading

// Success wraps a value in a successful Result.
func Success[T any](v T) Result[T] { return types.Success(v) }

// Failure builds an error Result.
func Failure[T any](code ErrorCode, message string) Result[T] { return types.Failure[T](code, message) }

// Loading builds an in-progress Result.
func Loading[T any]() Result[T] { return types.Loading[T]() }
