package handler

import "github.com/petowners/petregistry/internal/core/domain"

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Roles:     u.EffectiveRoles(),
	}
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Roles:     u.EffectiveRoles(),
	}
}

func toAddressResponse(a *domain.Address) addressResponse {
	return addressResponse{
		ID:       a.ID,
		Street:   a.Street,
		Number:   a.Number,
		District: a.District,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
	}
}

func toAddressList(in []domain.Address) []addressResponse {
	out := make([]addressResponse, 0, len(in))
	for i := range in {
		out = append(out, toAddressResponse(&in[i]))
	}
	return out
}

func toBreedResponse(b *domain.Breed) breedResponse {
	return breedResponse{ID: b.ID, Name: b.Name, Species: b.Species}
}

func toBreedList(in []domain.Breed) []breedResponse {
	out := make([]breedResponse, 0, len(in))
	for i := range in {
		out = append(out, toBreedResponse(&in[i]))
	}
	return out
}

func toPetListItem(d *domain.PetDetail) petListItem {
	item := petListItem{
		ID:        d.ID,
		Name:      d.Name,
		Gender:    d.Gender,
		BirthDate: domain.FormatDate(d.BirthDate),
		Breed:     d.BreedID,
		Owner:     d.OwnerID,
	}
	if d.Breed != nil {
		name := d.Breed.Name
		item.BreedName = &name
	}
	return item
}

func toPetList(in []domain.PetDetail) []petListItem {
	out := make([]petListItem, 0, len(in))
	for i := range in {
		out = append(out, toPetListItem(&in[i]))
	}
	return out
}

func toPetDetailResponse(d *domain.PetDetail) petDetailResponse {
	resp := petDetailResponse{
		ID:        d.ID,
		Name:      d.Name,
		Gender:    d.Gender,
		BirthDate: domain.FormatDate(d.BirthDate),
	}
	if d.Breed != nil {
		resp.Breed = &petBreedRef{ID: d.Breed.ID, Name: d.Breed.Name}
	}
	if d.Owner != nil {
		resp.Owner = &petOwnerRef{ID: d.Owner.ID, Email: d.Owner.Email}
	}
	return resp
}
