package types

// The DTO types below are the user service wire format (camelCase JSON).

// UserPreviewDTO is a row of GET /user.
type UserPreviewDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Picture   string `json:"picture"`
}

// ListResponseDTO is the paged envelope of GET /user.
type ListResponseDTO struct {
	Data  []UserPreviewDTO `json:"data"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

// LocationDTO is the wire form of Location.
type LocationDTO struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// UserFullDTO is returned by GET /user/{id}, POST /user/create and PUT /user/{id}.
type UserFullDTO struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Gender       string       `json:"gender"`
	Email        string       `json:"email"`
	DateOfBirth  string       `json:"dateOfBirth"`
	RegisterDate string       `json:"registerDate"`
	UpdatedDate  string       `json:"updatedDate"`
	Phone        string       `json:"phone"`
	Picture      string       `json:"picture"`
	Location     *LocationDTO `json:"location,omitempty"`
}

// UserCreateDTO is the body of POST /user/create. FirstName, LastName and
// Email are required by the service.
type UserCreateDTO struct {
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Email       string       `json:"email"`
	Title       string       `json:"title,omitempty"`
	Gender      string       `json:"gender,omitempty"`
	DateOfBirth string       `json:"dateOfBirth,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Picture     string       `json:"picture,omitempty"`
	Location    *LocationDTO `json:"location,omitempty"`
}

// UserUpdateDTO is the body of PUT /user/{id}. Email is not updatable and is
// therefore absent.
type UserUpdateDTO struct {
	Title       string       `json:"title,omitempty"`
	FirstName   string       `json:"firstName,omitempty"`
	LastName    string       `json:"lastName,omitempty"`
	Gender      string       `json:"gender,omitempty"`
	DateOfBirth string       `json:"dateOfBirth,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Picture     string       `json:"picture,omitempty"`
	Location    *LocationDTO `json:"location,omitempty"`
}

// DeleteResponseDTO confirms DELETE /user/{id}.
type DeleteResponseDTO struct {
	ID string `json:"id"`
}

// ErrorEnvelopeDTO is the body of every non-2xx response. Data lists
// per-field reasons for BODY_NOT_VALID.
type ErrorEnvelopeDTO struct {
	Error string            `json:"error"`
	Data  map[string]string `json:"data,omitempty"`
}
