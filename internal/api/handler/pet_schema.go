package handler

type petListItem struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Gender    string  `json:"gender"`
	BirthDate *string `json:"birthDate"`
	Breed     int64   `json:"breed"`
	BreedName *string `json:"breedName"`
	Owner     int64   `json:"owner"`
}

type petBreedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type petOwnerRef struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type petDetailResponse struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Gender    string       `json:"gender"`
	BirthDate *string      `json:"birthDate"`
	Breed     *petBreedRef `json:"breed"`
	Owner     *petOwnerRef `json:"owner"`
}

type petDeletedName struct {
	Name string `json:"name"`
}

type petDeletedResponse struct {
	Message string         `json:"message"`
	Pet     petDeletedName `json:"pet"`
}
