package apierror

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"userdeck/internal/domain"
)

var messages = map[domain.ErrorCode]string{
	domain.CodeAppIDNotExist:    "Authentication error. Please contact support.",
	domain.CodeAppIDMissing:     "Authentication error. Please contact support.",
	domain.CodeParamsNotValid:   "Invalid request parameters. Please try again.",
	domain.CodeBodyNotValid:     "Invalid data format. Please check your input and try again.",
	domain.CodeResourceNotFound: "The requested user was not found. It may have been deleted.",
	domain.CodePathNotFound:     "Service temporarily unavailable. Please try again later.",
	domain.CodeServerError:      "Server error occurred. Please try again later.",
	domain.CodeNetworkError:     "Network error. Please check your connection and try again.",
	domain.CodeUnknown:          "An unexpected error occurred. Please try again.",
}

// Message returns the user-facing sentence for code.
func Message(code domain.ErrorCode) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return messages[domain.CodeUnknown]
}

// Known reports whether code is one of the service's error codes.
func Known(code domain.ErrorCode) bool {
	_, ok := messages[code]
	return ok && code != domain.CodeUnknown
}

// Envelope is a parsed error body.
type Envelope struct {
	Code   domain.ErrorCode
	Fields map[string]string
}

// Detail renders the per-field reasons as "field: reason" pairs in field order.
func (e Envelope) Detail() string {
	if len(e.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

// Parse decodes an error envelope. Malformed JSON, a missing "error" key or
// an unrecognised code all yield CodeUnknown.
func Parse(body []byte) Envelope {
	var dto domain.ErrorEnvelopeDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return Envelope{Code: domain.CodeUnknown}
	}
	code := domain.ErrorCode(strings.TrimSpace(dto.Error))
	if !Known(code) {
		code = domain.CodeUnknown
	}
	return Envelope{Code: code, Fields: dto.Data}
}

// FromStatus derives a code from an HTTP status for bodies without an envelope.
func FromStatus(status int) domain.ErrorCode {
	switch {
	case status == http.StatusNotFound:
		return domain.CodeResourceNotFound
	case status == http.StatusBadRequest:
		return domain.CodeBodyNotValid
	case status == http.StatusForbidden || status == http.StatusUnauthorized:
		return domain.CodeAppIDNotExist
	case status >= 500:
		return domain.CodeServerError
	}
	return domain.CodeUnknown
}

// Classify resolves a raw failure string to a code. It understands a JSON
// envelope, a "CODE: detail" prefix, and the plain phrases the repository
// produces.
func Classify(raw string) domain.ErrorCode {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.CodeUnknown
	}
	if strings.HasPrefix(s, "{") {
		return Parse([]byte(s)).Code
	}
	if head, _, ok := strings.Cut(s, ":"); ok {
		if code := domain.ErrorCode(strings.TrimSpace(head)); Known(code) {
			return code
		}
	}
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "not found"):
		return domain.CodeResourceNotFound
	case strings.HasPrefix(lower, "network error"):
		return domain.CodeNetworkError
	case strings.Contains(lower, "server error"):
		return domain.CodeServerError
	}
	return domain.CodeUnknown
}

// Describe returns the user-facing sentence for a raw failure string.
func Describe(raw string) string {
	return Message(Classify(raw))
}

// ForResult picks the sentence for a failed Result, preferring its code and
// falling back to classifying its message.
func ForResult[T any](r domain.Result[T]) string {
	if r.Code != "" && r.Code != domain.CodeUnknown {
		return Message(r.Code)
	}
	return Describe(r.Message)
}
