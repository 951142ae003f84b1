package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User models a registered account. Password holds the bcrypt hash once the
// user has been persisted; before that it carries the candidate plaintext so
// it can be validated.
type User struct {
	ID        int64     `json:"id"        bson:"_id"`
	Email     string    `json:"email"     bson:"email"      validate:"required,email,max=180"`
	Password  string    `json:"-"         bson:"password"   validate:"required,min=8,max=72"`
	FirstName string    `json:"firstName" bson:"first_name" validate:"required,max=100"`
	LastName  string    `json:"lastName"  bson:"last_name"  validate:"required,max=100"`
	Phone     *string   `json:"phone"     bson:"phone"      validate:"omitempty,max=20"`
	Roles     RoleList  `json:"roles"     bson:"roles"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// EffectiveRoles returns the stored roles with RoleUser guaranteed present.
func (u *User) EffectiveRoles() []string {
	return u.Roles.With(RoleUser)
}

// RoleList is a set of role tags persisted as a JSON array in SQL stores.
type RoleList []string

// Has reports whether role is in the list.
func (r RoleList) Has(role string) bool {
	for _, v := range r {
		if v == role {
			return true
		}
	}
	return false
}

// With returns a copy of the list that contains role.
func (r RoleList) With(role string) RoleList {
	out := make(RoleList, 0, len(r)+1)
	out = append(out, r...)
	if !r.Has(role) {
		out = append(out, role)
	}
	return out
}

// Value implements driver.Valuer.
func (r RoleList) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(r))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSON text or bytes.
func (r *RoleList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*r = RoleList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into RoleList", src)
	}

	var roles []string
	if err := json.Unmarshal(raw, &roles); err != nil {
		return fmt.Errorf("decode roles: %w", err)
	}
	*r = roles
	return nil
}
