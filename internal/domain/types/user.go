package types

// UserPreview is the list-row projection of a user.
type UserPreview struct {
	ID        UserID `json:"id"`
	Title     string `json:"title"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Picture   string `json:"picture"`
}

// FullName joins the first and last name.
func (u UserPreview) FullName() string { return joinName(u.FirstName, u.LastName) }

// Location is a postal address attached to a user.
type Location struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// UserDetail is the full user record. ID is assigned by the server on create
// and Email cannot change afterwards.
type UserDetail struct {
	ID           UserID    `json:"id"`
	Title        string    `json:"title"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Picture      string    `json:"picture"`
	Gender       string    `json:"gender"`
	Email        string    `json:"email"`
	DateOfBirth  string    `json:"date_of_birth"`
	Phone        string    `json:"phone"`
	Location     *Location `json:"location,omitempty"`
	RegisterDate string    `json:"register_date"`
	UpdatedDate  string    `json:"updated_date"`
}

// FullName joins the first and last name.
func (u UserDetail) FullName() string { return joinName(u.FirstName, u.LastName) }

// Clone returns a copy that shares no memory with u.
func (u UserDetail) Clone() UserDetail {
	if u.Location != nil {
		loc := *u.Location
		u.Location = &loc
	}
	return u
}

// Preview projects the record onto its list-row form.
func (u UserDetail) Preview() UserPreview {
	return UserPreview{
		ID:        u.ID,
		Title:     u.Title,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Picture:   u.Picture,
	}
}

// UserFields is raw create/edit form input before validation.
type UserFields struct {
	Title       string
	FirstName   string
	LastName    string
	Gender      string
	Email       string
	DateOfBirth string
	Phone       string
	Picture     string
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
