package repository

import "userdeck/internal/domain"

func previewFromDTO(d domain.UserPreviewDTO) domain.UserPreview {
	return domain.UserPreview{
		ID:        domain.UserID(d.ID),
		Title:     d.Title,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Picture:   d.Picture,
	}
}

func pageFromDTO(d domain.ListResponseDTO) domain.PagedResult {
	items := make([]domain.UserPreview, 0, len(d.Data))
	for _, u := range d.Data {
		items = append(items, previewFromDTO(u))
	}
	return domain.PagedResult{Items: items, Page: d.Page, Limit: d.Limit, Total: d.Total}
}

func detailFromDTO(d domain.UserFullDTO) domain.UserDetail {
	return domain.UserDetail{
		ID:           domain.UserID(d.ID),
		Title:        d.Title,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Picture:      d.Picture,
		Gender:       d.Gender,
		Email:        d.Email,
		DateOfBirth:  d.DateOfBirth,
		Phone:        d.Phone,
		Location:     locationFromDTO(d.Location),
		RegisterDate: d.RegisterDate,
		UpdatedDate:  d.UpdatedDate,
	}
}

func locationFromDTO(d *domain.LocationDTO) *domain.Location {
	if d == nil {
		return nil
	}
	return &domain.Location{
		Street:   d.Street,
		City:     d.City,
		State:    d.State,
		Country:  d.Country,
		Timezone: d.Timezone,
	}
}

func locationToDTO(l *domain.Location) *domain.LocationDTO {
	if l == nil {
		return nil
	}
	return &domain.LocationDTO{
		Street:   l.Street,
		City:     l.City,
		State:    l.State,
		Country:  l.Country,
		Timezone: l.Timezone,
	}
}

func createDTO(u domain.UserDetail) domain.UserCreateDTO {
	return domain.UserCreateDTO{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Title:       u.Title,
		Gender:      u.Gender,
		DateOfBirth: u.DateOfBirth,
		Phone:       u.Phone,
		Picture:     u.Picture,
		Location:    locationToDTO(u.Location),
	}
}

func updateDTO(u domain.UserDetail) domain.UserUpdateDTO {
	return domain.UserUpdateDTO{
		Title:       u.Title,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Gender:      u.Gender,
		DateOfBirth: u.DateOfBirth,
		Phone:       u.Phone,
		Picture:     u.Picture,
		Location:    locationToDTO(u.Location),
	}
}
