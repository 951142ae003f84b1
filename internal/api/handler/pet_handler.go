package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petowners/petregistry/internal/api/metrics"
	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

type PetHandler struct {
	service ports.PetService
}

func NewPetHandler(service ports.PetService) *PetHandler {
	return &PetHandler{service: service}
}

// List returns the caller's pets.
//
// @Summary      List own pets
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   petListItem
// @Failure      401  {object}  map[string]string
// @Router       /api/pets [get]
func (h *PetHandler) List(c echo.Context) error {
	pets, err := h.service.List(c.Request().Context(), principal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPetList(pets))
}

// Show returns any pet with its breed and owner.
//
// @Summary      Get a pet
// @Tags         pets
// @Produce      json
// @Param        id   path      int  true  "Pet ID"
// @Success      200  {object}  petDetailResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/pets/{id} [get]
func (h *PetHandler) Show(c echo.Context) error {
	id, err := pathID(c, domain.ErrPetNotFound)
	if err != nil {
		return err
	}

	pet, err := h.service.Get(c.Request().Context(), principal(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPetDetailResponse(pet))
}

// Create registers a pet owned by the caller.
//
// @Summary      Create a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.CreatePetInput  true  "Pet"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/pets [post]
func (h *PetHandler) Create(c echo.Context) error {
	pet, err := h.service.Create(c.Request().Context(), principal(c), newPayload(c.Request().Body))
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("pet", "create").Inc()
	return c.JSON(http.StatusCreated, createdResponse{Message: "Pet created", ID: pet.ID})
}

// Update applies a partial update to a pet.
//
// @Summary      Update a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Pet ID"
// @Param        body  body      ports.UpdatePetInput  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/pets/{id} [put]
func (h *PetHandler) Update(c echo.Context) error {
	p := principal(c)
	id, err := h.id(c, p)
	if err != nil {
		return err
	}

	if _, err := h.service.Update(c.Request().Context(), p, id, newPayload(c.Request().Body)); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("pet", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Pet updated"})
}

// Delete removes a pet and echoes its name.
//
// @Summary      Delete a pet
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Pet ID"
// @Success      200  {object}  petDeletedResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/pets/{id} [delete]
func (h *PetHandler) Delete(c echo.Context) error {
	p := principal(c)
	id, err := h.id(c, p)
	if err != nil {
		return err
	}

	pet, err := h.service.Delete(c.Request().Context(), p, id)
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("pet", "delete").Inc()
	return c.JSON(http.StatusOK, petDeletedResponse{
		Message: "Pet deleted",
		Pet:     petDeletedName{Name: pet.Name},
	})
}

func (h *PetHandler) id(c echo.Context, p *domain.Principal) (int64, error) {
	if p == nil {
		return 0, domain.ErrNotAuthenticated
	}
	return pathID(c, domain.ErrPetNotFound)
}
