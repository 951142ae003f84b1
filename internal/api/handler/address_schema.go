package handler

type addressResponse struct {
	ID       int64   `json:"id"`
	Street   string  `json:"street"`
	Number   *string `json:"number"`
	District *string `json:"district"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	ZipCode  string  `json:"zipCode"`
}

type addressCreatedResponse struct {
	Message string          `json:"message"`
	Address addressResponse `json:"address"`
}
