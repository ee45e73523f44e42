package userform

import (
	"strings"

	"userdeck/internal/apierror"
	"userdeck/internal/domain"
)

const (
	msgEmailTaken     = "Email already exists. Please use a different email address."
	msgGenderInvalid  = "Invalid gender value. Please select a valid gender."
	msgLastNameNeeded = "Last name is required."
)

// ServerMessage turns a failed submit's raw message into the sentence shown
// on the form. Server validation failures are narrowed by the field they
// mention; other known failures use the shared error table and anything else
// is assumed to be readable already.
func ServerMessage(raw string) string {
	if strings.Contains(raw, string(domain.CodeBodyNotValid)) {
		switch {
		case strings.Contains(raw, "email"):
			return msgEmailTaken
		case strings.Contains(raw, "gender"):
			return msgGenderInvalid
		case strings.Contains(raw, "lastName"):
			return msgLastNameNeeded
		}
		return apierror.Message(domain.CodeBodyNotValid)
	}
	if apierror.Classify(raw) != domain.CodeUnknown {
		return apierror.Describe(raw)
	}
	if strings.TrimSpace(raw) == "" {
		return apierror.Message(domain.CodeUnknown)
	}
	return raw
}

func submitMessage[T any](r domain.Result[T]) string {
	switch r.Code {
	case "", domain.CodeUnknown, domain.CodeBodyNotValid:
		return ServerMessage(r.Message)
	}
	return apierror.Message(r.Code)
}
