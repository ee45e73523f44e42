package userform

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"userdeck/internal/domain"
)

// DateLayout is the accepted date-of-birth format.
const DateLayout = "2006-01-02"

// ValidationError names the first field that failed local validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// rule checks one field. blank is reported with required, any tag failure
// with invalid.
type rule struct {
	field    string
	value    func(domain.UserFields) string
	tag      string
	required string
	invalid  string
}

var rules = []rule{
	{"title", func(f domain.UserFields) string { return strings.ToLower(f.Title) }, "oneof=mr ms mrs miss",
		"Title is required", "Please select a valid title"},
	{"firstName", func(f domain.UserFields) string { return f.FirstName }, "min=2",
		"First name is required", "First name must be at least 2 characters"},
	{"lastName", func(f domain.UserFields) string { return f.LastName }, "min=2",
		"Last name is required", "Last name must be at least 2 characters"},
	{"gender", func(f domain.UserFields) string { return strings.ToLower(f.Gender) }, "oneof=male female",
		"Gender is required", "Please select a valid gender"},
	{"email", func(f domain.UserFields) string { return f.Email }, "email",
		"Email is required", "Please enter a valid email address"},
	{"dateOfBirth", func(f domain.UserFields) string { return f.DateOfBirth }, "datetime=" + DateLayout,
		"Date of birth is required", "Please enter a valid date in YYYY-MM-DD format"},
	{"phone", func(f domain.UserFields) string { return f.Phone }, "number,min=10",
		"Phone is required", "Phone must be numeric with at least 10 digits"},
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func checker() *validator.Validate {
	validateOnce.Do(func() { validate = validator.New() })
	return validate
}

// Validate returns the first violated rule as a *ValidationError, checking
// title, first name, last name, gender, email, date of birth and phone in that
// order. Values are trimmed before checking.
func Validate(f domain.UserFields) error {
	v := checker()
	for _, r := range rules {
		s := strings.TrimSpace(r.value(f))
		if s == "" {
			return &ValidationError{Field: r.field, Message: r.required}
		}
		if err := v.Var(s, r.tag); err != nil {
			return &ValidationError{Field: r.field, Message: r.invalid}
		}
	}
	return nil
}

// Normalize trims every field and lower-cases title and gender.
func Normalize(f domain.UserFields) domain.UserFields {
	return domain.UserFields{
		Title:       strings.ToLower(strings.TrimSpace(f.Title)),
		FirstName:   strings.TrimSpace(f.FirstName),
		LastName:    strings.TrimSpace(f.LastName),
		Gender:      strings.ToLower(strings.TrimSpace(f.Gender)),
		Email:       strings.TrimSpace(f.Email),
		DateOfBirth: strings.TrimSpace(f.DateOfBirth),
		Phone:       strings.TrimSpace(f.Phone),
		Picture:     strings.TrimSpace(f.Picture),
	}
}

// FieldsOf pre-fills a form from a stored record. The server reports dates
// as full timestamps; only the date part is kept.
func FieldsOf(u domain.UserDetail) domain.UserFields {
	dob := u.DateOfBirth
	if len(dob) > len(DateLayout) {
		dob = dob[:len(DateLayout)]
	}
	return domain.UserFields{
		Title:       u.Title,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Gender:      u.Gender,
		Email:       u.Email,
		DateOfBirth: dob,
		Phone:       u.Phone,
		Picture:     u.Picture,
	}
}
