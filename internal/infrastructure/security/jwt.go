package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/petowners/petregistry/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// JWT issues and verifies HS256 bearer tokens. Claims: sub (user id),
// email, roles, exp.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWT(secret string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWT{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (j *JWT) Issue(p *domain.Principal) (string, error) {
	if p == nil {
		return "", errors.New("issue token: nil principal")
	}
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(p.ID, 10),
		"email": p.Email,
		"roles": []string(p.Roles),
		"exp":   j.now().Add(j.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(j.secret)
}

// Verify parses a signed token back into the principal it was issued for.
// Any failure is reported as domain.ErrNotAuthenticated.
func (j *JWT) Verify(token string) (*domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return j.secret, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrNotAuthenticated
	}

	p, err := principalFromClaims(claims)
	if err != nil {
		return nil, domain.ErrNotAuthenticated
	}
	return p, nil
}

func principalFromClaims(claims jwt.MapClaims) (*domain.Principal, error) {
	sub, err := claims.GetSubject()
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid subject %q", sub)
	}

	email, _ := claims["email"].(string)
	p := &domain.Principal{ID: id, Email: email}

	if raw, ok := claims["roles"].([]interface{}); ok {
		for _, r := range raw {
			if s, ok := r.(string); ok {
				p.Roles = append(p.Roles, s)
			}
		}
	}
	p.Roles = p.Roles.With(domain.RoleUser)
	return p, nil
}
