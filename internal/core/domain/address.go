package domain

// Address is a postal address owned by exactly one user.
type Address struct {
	ID       int64   `json:"id"       bson:"_id"`
	Street   string  `json:"street"   bson:"street"`
	Number   *string `json:"number"   bson:"number"`
	District *string `json:"district" bson:"district"`
	City     string  `json:"city"     bson:"city"`
	State    string  `json:"state"    bson:"state"`
	ZipCode  string  `json:"zipCode"  bson:"zip_code"`
	UserID   int64   `json:"-"        bson:"user_id"`
}
