package domain

// Principal is the authenticated caller. A nil *Principal means anonymous.
type Principal struct {
	ID    int64
	Email string
	Roles RoleList
}

// HasRole reports whether the principal carries role.
func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	return p.Roles.Has(role)
}

// PrincipalFor builds the principal a user authenticates as.
func PrincipalFor(u *User) *Principal {
	return &Principal{ID: u.ID, Email: u.Email, Roles: u.EffectiveRoles()}
}
