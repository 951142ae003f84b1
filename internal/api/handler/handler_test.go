package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, body ports.Payload) (*domain.User, error)
	loginFn    func(ctx context.Context, body ports.Payload) (string, *domain.User, error)
	profileFn  func(ctx context.Context, p *domain.Principal) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, body ports.Payload) (*domain.User, error) {
	return s.registerFn(ctx, body)
}

func (s *stubAuthService) Login(ctx context.Context, body ports.Payload) (string, *domain.User, error) {
	return s.loginFn(ctx, body)
}

func (s *stubAuthService) Profile(ctx context.Context, p *domain.Principal) (*domain.User, error) {
	return s.profileFn(ctx, p)
}

type stubPetService struct {
	ports.PetService
	getFn    func(ctx context.Context, p *domain.Principal, id int64) (*domain.PetDetail, error)
	listFn   func(ctx context.Context, p *domain.Principal) ([]domain.PetDetail, error)
	deleteFn func(ctx context.Context, p *domain.Principal, id int64) (*domain.Pet, error)
}

func (s *stubPetService) Get(ctx context.Context, p *domain.Principal, id int64) (*domain.PetDetail, error) {
	return s.getFn(ctx, p, id)
}

func (s *stubPetService) List(ctx context.Context, p *domain.Principal) ([]domain.PetDetail, error) {
	return s.listFn(ctx, p)
}

func (s *stubPetService) Delete(ctx context.Context, p *domain.Principal, id int64) (*domain.Pet, error) {
	return s.deleteFn(ctx, p, id)
}

type stubAddressService struct {
	ports.AddressService
	createFn func(ctx context.Context, p *domain.Principal, body ports.Payload) (*domain.Address, error)
}

func (s *stubAddressService) Create(ctx context.Context, p *domain.Principal, body ports.Payload) (*domain.Address, error) {
	return s.createFn(ctx, p, body)
}

func newCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	phone := "555"
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, body ports.Payload) (*domain.User, error) {
			var in ports.RegisterInput
			if err := body.Decode(&in); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if in.Email != "ana@example.com" {
				t.Fatalf("unexpected email %q", in.Email)
			}
			return &domain.User{ID: 1, Email: in.Email, Password: "hash", FirstName: "Ana", LastName: "Lima", Phone: &phone, Roles: domain.RoleList{domain.RoleUser}}, nil
		},
	}

	c, rec := newCtx(http.MethodPost, "/auth/register", `{"email":"ana@example.com","password":"s3cretpass"}`)
	if err := NewAuthHandler(stub).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decode(t, rec)
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "ana@example.com" || user["firstName"] != "Ana" || user["phone"] != "555" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatal("password must never be serialized")
	}
}

func TestAuthHandler_Register_PropagatesError(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, body ports.Payload) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}

	c, _ := newCtx(http.MethodPost, "/auth/register", `{"email":"ana@example.com"}`)
	if err := NewAuthHandler(stub).Register(c); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthHandler_Profile_Shape(t *testing.T) {
	stub := &stubAuthService{
		profileFn: func(ctx context.Context, p *domain.Principal) (*domain.User, error) {
			return &domain.User{ID: 4, Email: "ana@example.com", FirstName: "Ana", LastName: "Lima"}, nil
		},
	}

	c, rec := newCtx(http.MethodGet, "/api/profile", "")
	if err := NewAuthHandler(stub).Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decode(t, rec)
	roles, _ := resp["roles"].([]any)
	if len(roles) != 1 || roles[0] != domain.RoleUser {
		t.Fatalf("expected effective roles [ROLE_USER], got %v", resp["roles"])
	}
	if resp["phone"] != nil {
		t.Fatalf("expected null phone, got %v", resp["phone"])
	}
}

func TestPetHandler_Show_NestsRelations(t *testing.T) {
	born := time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)
	stub := &stubPetService{
		getFn: func(ctx context.Context, p *domain.Principal, id int64) (*domain.PetDetail, error) {
			if id != 7 {
				t.Fatalf("unexpected id %d", id)
			}
			return &domain.PetDetail{
				Pet:   domain.Pet{ID: 7, Name: "Rex", Gender: "male", BirthDate: &born, BreedID: 2, OwnerID: 3},
				Breed: &domain.Breed{ID: 2, Name: "Beagle"},
				Owner: &domain.User{ID: 3, Email: "ana@example.com"},
			}, nil
		},
	}

	c, rec := newCtx(http.MethodGet, "/api/pets/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := NewPetHandler(stub).Show(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decode(t, rec)
	if resp["birthDate"] != "2020-02-29" {
		t.Fatalf("unexpected birthDate %v", resp["birthDate"])
	}
	breed, _ := resp["breed"].(map[string]any)
	owner, _ := resp["owner"].(map[string]any)
	if breed["name"] != "Beagle" || owner["email"] != "ana@example.com" {
		t.Fatalf("unexpected relations: %v %v", breed, owner)
	}
}

func TestPetHandler_Show_NonNumericID(t *testing.T) {
	stub := &stubPetService{
		getFn: func(context.Context, *domain.Principal, int64) (*domain.PetDetail, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	c, _ := newCtx(http.MethodGet, "/api/pets/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if err := NewPetHandler(stub).Show(c); !errors.Is(err, domain.ErrPetNotFound) {
		t.Fatalf("expected pet not found, got %v", err)
	}
}

func TestPetHandler_List_Shape(t *testing.T) {
	stub := &stubPetService{
		listFn: func(context.Context, *domain.Principal) ([]domain.PetDetail, error) {
			return []domain.PetDetail{{
				Pet:   domain.Pet{ID: 1, Name: "Rex", Gender: "male", BreedID: 2, OwnerID: 3},
				Breed: &domain.Breed{ID: 2, Name: "Beagle"},
			}}, nil
		},
	}

	c, rec := newCtx(http.MethodGet, "/api/pets", "")
	if err := NewPetHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item["breed"] != float64(2) || item["breedName"] != "Beagle" || item["owner"] != float64(3) || item["birthDate"] != nil {
		t.Fatalf("unexpected item: %v", item)
	}
}

func TestPetHandler_Delete_EchoesName(t *testing.T) {
	stub := &stubPetService{
		deleteFn: func(context.Context, *domain.Principal, int64) (*domain.Pet, error) {
			return &domain.Pet{ID: 1, Name: "Rex"}, nil
		},
	}

	c, rec := newCtx(http.MethodDelete, "/api/pets/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set("principal", &domain.Principal{ID: 3})
	if err := NewPetHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"Pet deleted","pet":{"name":"Rex"}}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestAddressHandler_Create_Shape(t *testing.T) {
	stub := &stubAddressService{
		createFn: func(ctx context.Context, p *domain.Principal, body ports.Payload) (*domain.Address, error) {
			return &domain.Address{ID: 5, Street: "Main", City: "Lisbon", State: "LX", ZipCode: "1000", UserID: 3}, nil
		},
	}

	c, rec := newCtx(http.MethodPost, "/api/addresses", `{"street":"Main"}`)
	if err := NewAddressHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decode(t, rec)
	address, _ := resp["address"].(map[string]any)
	if resp["message"] != "Address created" || address["zipCode"] != "1000" || address["number"] != nil {
		t.Fatalf("unexpected body: %v", resp)
	}
	if _, leaked := address["userId"]; leaked {
		t.Fatal("owner id must not be serialized")
	}
}
