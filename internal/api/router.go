package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/petowners/petregistry/internal/api/handler"
	"github.com/petowners/petregistry/internal/api/metrics"
	"github.com/petowners/petregistry/internal/api/middleware"
	"github.com/petowners/petregistry/internal/core/ports"
	"github.com/petowners/petregistry/internal/infrastructure/http/handlers"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	Auth      ports.AuthService
	Addresses ports.AddressService
	Breeds    ports.BreedService
	Pets      ports.PetService

	Tokens    middleware.TokenVerifier
	Readiness []handlers.Dependency
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(metrics.Middleware())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.Recover())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	addressHandler := handler.NewAddressHandler(d.Addresses)
	breedHandler := handler.NewBreedHandler(d.Breeds)
	petHandler := handler.NewPetHandler(d.Pets)

	authenticate := middleware.Authenticate(d.Tokens)
	required := middleware.RequirePrincipal()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	api := e.Group("/api", authenticate)
	api.GET("/profile", authHandler.Profile, required)

	addresses := api.Group("/addresses", required)
	addresses.GET("", addressHandler.List)
	addresses.POST("", addressHandler.Create)
	addresses.GET("/:id", addressHandler.Show)
	addresses.PUT("/:id", addressHandler.Update)
	addresses.PATCH("/:id", addressHandler.Update)
	addresses.DELETE("/:id", addressHandler.Delete)

	breeds := api.Group("/breeds")
	breeds.GET("", breedHandler.List)
	breeds.POST("", breedHandler.Create)
	breeds.GET("/:id", breedHandler.Show)
	breeds.PUT("/:id", breedHandler.Update)
	breeds.PATCH("/:id", breedHandler.Update)
	breeds.DELETE("/:id", breedHandler.Delete)

	// GET /api/pets/:id is public; everything else needs a caller.
	pets := api.Group("/pets")
	pets.GET("", petHandler.List, required)
	pets.POST("", petHandler.Create, required)
	pets.GET("/:id", petHandler.Show)
	pets.PUT("/:id", petHandler.Update, required)
	pets.PATCH("/:id", petHandler.Update, required)
	pets.DELETE("/:id", petHandler.Delete, required)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(d.Readiness...).Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// requestLogger emits one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("remote_ip", v.RemoteIP).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
