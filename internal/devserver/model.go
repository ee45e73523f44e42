package devserver

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"userdeck/internal/domain"
)

// timeLayout is the timestamp format used on the wire.
const timeLayout = "2006-01-02T15:04:05.000Z"

// User is a stored record.
type User struct {
	ID           string
	Title        string
	FirstName    string
	LastName     string
	Picture      string
	Gender       string
	Email        string
	DateOfBirth  string
	Phone        string
	Location     *domain.LocationDTO
	RegisterDate time.Time
	UpdatedDate  time.Time
}

// NewID returns a fresh 24-hex-character record id.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
}

// validID reports whether id has the shape NewID produces.
func validID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for _, c := range id {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

func (u User) preview() domain.UserPreviewDTO {
	return domain.UserPreviewDTO{
		ID:        u.ID,
		Title:     u.Title,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Picture:   u.Picture,
	}
}

func (u User) full() domain.UserFullDTO {
	return domain.UserFullDTO{
		ID:           u.ID,
		Title:        u.Title,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Gender:       u.Gender,
		Email:        u.Email,
		DateOfBirth:  u.DateOfBirth,
		RegisterDate: formatTime(u.RegisterDate),
		UpdatedDate:  formatTime(u.UpdatedDate),
		Phone:        u.Phone,
		Picture:      u.Picture,
		Location:     u.Location,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

// normalizeDate accepts YYYY-MM-DD or a full timestamp and returns the wire
// form. ok is false for anything else.
func normalizeDate(s string) (string, bool) {
	if s == "" {
		return "", true
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Format(timeLayout), true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC().Format(timeLayout), true
	}
	return "", false
}
