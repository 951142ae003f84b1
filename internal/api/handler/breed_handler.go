package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petowners/petregistry/internal/api/metrics"
	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

type BreedHandler struct {
	service ports.BreedService
}

func NewBreedHandler(service ports.BreedService) *BreedHandler {
	return &BreedHandler{service: service}
}

// List returns the breed catalog.
//
// @Summary      List breeds
// @Tags         breeds
// @Produce      json
// @Success      200  {array}  breedResponse
// @Router       /api/breeds [get]
func (h *BreedHandler) List(c echo.Context) error {
	breeds, err := h.service.List(c.Request().Context(), principal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBreedList(breeds))
}

// Show returns a single breed.
//
// @Summary      Get a breed
// @Tags         breeds
// @Produce      json
// @Param        id   path      int  true  "Breed ID"
// @Success      200  {object}  breedResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/breeds/{id} [get]
func (h *BreedHandler) Show(c echo.Context) error {
	id, err := pathID(c, domain.ErrBreedNotFound)
	if err != nil {
		return err
	}

	b, err := h.service.Get(c.Request().Context(), principal(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBreedResponse(b))
}

// Create adds a breed to the catalog.
//
// @Summary      Create a breed
// @Tags         breeds
// @Accept       json
// @Produce      json
// @Param        body  body      ports.CreateBreedInput  true  "Breed"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/breeds [post]
func (h *BreedHandler) Create(c echo.Context) error {
	b, err := h.service.Create(c.Request().Context(), principal(c), newPayload(c.Request().Body))
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("breed", "create").Inc()
	return c.JSON(http.StatusCreated, createdResponse{Message: "Breed created", ID: b.ID})
}

// Update applies a partial update to a breed.
//
// @Summary      Update a breed
// @Tags         breeds
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Breed ID"
// @Param        body  body      ports.UpdateBreedInput  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/breeds/{id} [put]
func (h *BreedHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrBreedNotFound)
	if err != nil {
		return err
	}

	if _, err := h.service.Update(c.Request().Context(), principal(c), id, newPayload(c.Request().Body)); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("breed", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Breed updated"})
}

// Delete removes a breed that no pet references.
//
// @Summary      Delete a breed
// @Tags         breeds
// @Produce      json
// @Param        id   path      int  true  "Breed ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/breeds/{id} [delete]
func (h *BreedHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrBreedNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal(c), id); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("breed", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Breed deleted"})
}
