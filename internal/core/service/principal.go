package service

import (
	"errors"
	"fmt"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

// requirePrincipal fails with Unauthorized for anonymous callers.
func requirePrincipal(p *domain.Principal) error {
	if p == nil {
		return domain.ErrNotAuthenticated
	}
	return nil
}

// lookupErr turns a repository miss into the resource-specific error and
// wraps anything else.
func lookupErr(err error, notFound *domain.Error, what string, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("find %s %d: %w", what, id, err)
}

// validateInput reports tag violations on a decoded body as a field-level
// BadRequest.
func validateInput(v ports.InputValidator, in any) error {
	if violations := v.Struct(in); len(violations) > 0 {
		return domain.ValidationFailed(violations)
	}
	return nil
}
