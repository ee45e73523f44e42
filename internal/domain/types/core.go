package types

// UserID is the server-assigned identifier of a user record.
type UserID string

// String returns the string form of the identifier.
func (id UserID) String() string { return string(id) }

// ErrorCode classifies a failed operation. The values mirror the error codes
// returned by the user service in its {"error": "<code>"} envelope, plus
// NETWORK_ERROR for failures that never reached the server.
type ErrorCode string

const (
	CodeAppIDNotExist    ErrorCode = "APP_ID_NOT_EXIST"
	CodeAppIDMissing     ErrorCode = "APP_ID_MISSING"
	CodeParamsNotValid   ErrorCode = "PARAMS_NOT_VALID"
	CodeBodyNotValid     ErrorCode = "BODY_NOT_VALID"
	CodeResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"
	CodePathNotFound     ErrorCode = "PATH_NOT_FOUND"
	CodeServerError      ErrorCode = "SERVER_ERROR"
	CodeNetworkError     ErrorCode = "NETWORK_ERROR"
	CodeUnknown          ErrorCode = "UNKNOWN"
)

// String returns the string form of the code.
func (c ErrorCode) String() string { return string(c) }
