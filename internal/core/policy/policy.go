// Package policy decides whether a principal may perform an action on a
// resource. It only answers yes or no; callers choose the error to report.
package policy

import "github.com/petowners/petregistry/internal/core/domain"

// Action is an operation on a resource.
type Action string

const (
	ActionList   Action = "list"
	ActionShow   Action = "show"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource is a value CanAccess knows how to judge.
type Resource interface {
	resource()
}

// AddressResource describes an address by its owner. For list and create
// the owner is the caller.
type AddressResource struct {
	OwnerID int64
}

// PetResource describes a pet by its owner's email.
type PetResource struct {
	OwnerEmail string
}

// BreedResource is the breed catalog.
type BreedResource struct{}

func (AddressResource) resource() {}
func (PetResource) resource()     {}
func (BreedResource) resource()   {}

// CanAccess reports whether principal (nil for anonymous) may perform
// action on r.
func CanAccess(principal *domain.Principal, r Resource, action Action) bool {
	switch r := r.(type) {
	case AddressResource:
		// Owner only, for every action. No admin override.
		return principal != nil && r.OwnerID == principal.ID
	case PetResource:
		return canAccessPet(principal, r, action)
	case BreedResource:
		return true
	default:
		return false
	}
}

func canAccessPet(principal *domain.Principal, r PetResource, action Action) bool {
	switch action {
	case ActionShow:
		return true
	case ActionList, ActionCreate:
		return principal != nil
	case ActionUpdate, ActionDelete:
		if principal == nil {
			return false
		}
		return (r.OwnerEmail != "" && r.OwnerEmail == principal.Email) || principal.HasRole(domain.RoleAdmin)
	default:
		return false
	}
}
