package ports

import "github.com/petowners/petregistry/internal/core/domain"

// Payload is a request body the services decode only once the caller has
// been authenticated and authorized. Decode returns domain.ErrInvalidJSON
// for malformed or empty bodies.
type Payload interface {
	Decode(dst any) error
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Compare returns nil when plaintext matches hash.
	Compare(hash, plaintext string) error
}

// UserValidator checks a candidate user and returns field → message for
// every violation. An empty map means the user is valid.
type UserValidator interface {
	ValidateUser(user *domain.User) map[string]string
}

// InputValidator checks a decoded request body against its `validate` tags
// and returns field → message for every violation.
type InputValidator interface {
	Struct(s any) map[string]string
}

// TokenIssuer mints the bearer token a principal is later rebuilt from.
type TokenIssuer interface {
	Issue(principal *domain.Principal) (string, error)
}
