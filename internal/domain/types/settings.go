package types

// Settings are the locally persisted client preferences.
type Settings struct {
	BaseURL  string `json:"base_url,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
}
