package domain

import "time"

// DateLayout is the calendar-date wire format for birth dates.
const DateLayout = "2006-01-02"

// Pet is an animal owned by one user and classified by one catalog breed.
type Pet struct {
	ID        int64      `json:"id"        bson:"_id"`
	Name      string     `json:"name"      bson:"name"`
	Gender    string     `json:"gender"    bson:"gender"`
	BirthDate *time.Time `json:"birthDate" bson:"birth_date"`
	BreedID   int64      `json:"breedId"   bson:"breed_id"`
	OwnerID   int64      `json:"ownerId"   bson:"owner_id"`
}

// PetDetail is a pet with its relations resolved. Breed or Owner is nil when
// the referenced row no longer resolves.
type PetDetail struct {
	Pet
	Breed *Breed
	Owner *User
}

// ParseBirthDate parses a strict YYYY-MM-DD calendar date. Impossible dates
// such as 2020-02-30 are rejected.
func ParseBirthDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidBirthDate
	}
	return t, nil
}

// FormatDate renders an optional date, nil stays nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
