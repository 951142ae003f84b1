package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/petowners/petregistry/internal/core/domain"
)

type stubVerifier struct {
	verifyFn func(token string) (*domain.Principal, error)
}

func (s *stubVerifier) Verify(token string) (*domain.Principal, error) {
	return s.verifyFn(token)
}

func newContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthenticate_ValidToken(t *testing.T) {
	verifier := &stubVerifier{verifyFn: func(token string) (*domain.Principal, error) {
		if token != "good" {
			t.Fatalf("unexpected token %q", token)
		}
		return &domain.Principal{ID: 3, Email: "ana@example.com"}, nil
	}}
	c := newContext("Bearer good")

	called := false
	handler := Authenticate(verifier)(func(c echo.Context) error {
		called = true
		p := PrincipalFrom(c)
		if p == nil || p.ID != 3 {
			t.Fatalf("principal not set: %+v", p)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeaderIsAnonymous(t *testing.T) {
	verifier := &stubVerifier{verifyFn: func(string) (*domain.Principal, error) {
		t.Fatal("verifier must not be called without a header")
		return nil, nil
	}}
	c := newContext("")

	called := false
	handler := Authenticate(verifier)(func(c echo.Context) error {
		called = true
		if PrincipalFrom(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_RejectsBadHeaders(t *testing.T) {
	verifier := &stubVerifier{verifyFn: func(string) (*domain.Principal, error) {
		return nil, domain.ErrNotAuthenticated
	}}

	for _, header := range []string{"Basic abc", "Bearer", "Bearer ", "Bearer invalid"} {
		t.Run(header, func(t *testing.T) {
			handler := Authenticate(verifier)(func(echo.Context) error {
				t.Fatal("next must not be called")
				return nil
			})

			err := handler(newContext(header))
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected unauthorized, got %v", err)
			}
		})
	}
}

func TestRequirePrincipal(t *testing.T) {
	handler := RequirePrincipal()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(newContext("")); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for anonymous, got %v", err)
	}

	c := newContext("")
	c.Set(principalKey, &domain.Principal{ID: 1})
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
