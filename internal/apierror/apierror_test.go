package apierror_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdeck/internal/apierror"
	"userdeck/internal/domain"
)

func TestParse_KnownCodes(t *testing.T) {
	cases := map[string]domain.ErrorCode{
		`{"error": "BODY_NOT_VALID"}`:     domain.CodeBodyNotValid,
		`{"error": "RESOURCE_NOT_FOUND"}`: domain.CodeResourceNotFound,
		`{"error": "SERVER_ERROR"}`:       domain.CodeServerError,
		`{"error": "APP_ID_NOT_EXIST"}`:   domain.CodeAppIDNotExist,
		`{"error": "PARAMS_NOT_VALID"}`:   domain.CodeParamsNotValid,
	}
	for body, want := range cases {
		assert.Equal(t, want, apierror.Parse([]byte(body)).Code, body)
	}
}

func TestParse_UnknownAndMalformed(t *testing.T) {
	for _, body := range []string{`{}`, `{error: BODY_NOT_VALID}`, `invalid json`, `{"error": "UNKNOWN_ERROR"}`} {
		assert.Equal(t, domain.CodeUnknown, apierror.Parse([]byte(body)).Code, body)
	}
}

func TestParse_FieldDetail(t *testing.T) {
	env := apierror.Parse([]byte(`{"error":"BODY_NOT_VALID","data":{"lastName":"Path ` + "`lastName`" + ` is required.","email":"Email already used"}}`))

	require.Equal(t, domain.CodeBodyNotValid, env.Code)
	assert.Equal(t, "email: Email already used; lastName: Path `lastName` is required.", env.Detail())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Invalid data format. Please check your input and try again.", apierror.Describe(`{"error": "BODY_NOT_VALID"}`))
	assert.Equal(t, "The requested user was not found. It may have been deleted.", apierror.Describe(`{"error": "RESOURCE_NOT_FOUND"}`))
	assert.Equal(t, "Server error occurred. Please try again later.", apierror.Describe(`{"error": "SERVER_ERROR"}`))
	assert.Equal(t, "An unexpected error occurred. Please try again.", apierror.Describe(`{"error": "UNKNOWN_ERROR"}`))
	assert.Equal(t, "An unexpected error occurred. Please try again.", apierror.Describe("invalid json"))
	assert.Equal(t, "The requested user was not found. It may have been deleted.", apierror.Describe("User not found"))
	assert.Equal(t, "Authentication error. Please contact support.", apierror.Describe("APP_ID_MISSING: header absent"))
	assert.Equal(t, "Network error. Please check your connection and try again.", apierror.Describe("Network error: dial tcp: refused"))
}

func TestMessage_AuthCodesShareSentence(t *testing.T) {
	assert.Equal(t, apierror.Message(domain.CodeAppIDMissing), apierror.Message(domain.CodeAppIDNotExist))
	assert.Equal(t, "Service temporarily unavailable. Please try again later.", apierror.Message(domain.CodePathNotFound))
	assert.Equal(t, "Invalid request parameters. Please try again.", apierror.Message(domain.CodeParamsNotValid))
	assert.Equal(t, apierror.Message(domain.CodeUnknown), apierror.Message("SOMETHING_ELSE"))
}

func TestFromStatus(t *testing.T) {
	assert.Equal(t, domain.CodeResourceNotFound, apierror.FromStatus(http.StatusNotFound))
	assert.Equal(t, domain.CodeBodyNotValid, apierror.FromStatus(http.StatusBadRequest))
	assert.Equal(t, domain.CodeAppIDNotExist, apierror.FromStatus(http.StatusForbidden))
	assert.Equal(t, domain.CodeServerError, apierror.FromStatus(http.StatusBadGateway))
	assert.Equal(t, domain.CodeUnknown, apierror.FromStatus(http.StatusTeapot))
}

func TestForResult_PrefersCode(t *testing.T) {
	r := domain.Failure[int](domain.CodeServerError, "User not found")
	assert.Equal(t, apierror.Message(domain.CodeServerError), apierror.ForResult(r))

	r = domain.Failure[int]("", "User not found")
	assert.Equal(t, apierror.Message(domain.CodeResourceNotFound), apierror.ForResult(r))
}
