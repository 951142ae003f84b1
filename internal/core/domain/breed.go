package domain

// Breed is an entry of the global breed catalog.
type Breed struct {
	ID      int64  `json:"id"      bson:"_id"`
	Name    string `json:"name"    bson:"name"`
	Species string `json:"species" bson:"species"`
}
