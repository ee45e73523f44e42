package types

// PagedResult is one page of user previews as returned by the service.
type PagedResult struct {
	Items []UserPreview `json:"items"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int           `json:"total"`
}

// HasMore reports whether pages exist after this one.
func (p PagedResult) HasMore() bool {
	if p.Limit <= 0 {
		return false
	}
	return (p.Page+1)*p.Limit < p.Total
}

// PageCount is the number of pages needed to cover Total at this page size.
func (p PagedResult) PageCount() int {
	if p.Limit <= 0 || p.Total <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}
