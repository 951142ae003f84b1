package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petowners/petregistry/internal/api/metrics"
	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

// List returns the caller's addresses.
//
// @Summary      List own addresses
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   addressResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/addresses [get]
func (h *AddressHandler) List(c echo.Context) error {
	addresses, err := h.service.List(c.Request().Context(), principal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAddressList(addresses))
}

// Show returns one of the caller's addresses.
//
// @Summary      Get an address
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Address ID"
// @Success      200  {object}  addressResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/addresses/{id} [get]
func (h *AddressHandler) Show(c echo.Context) error {
	p := principal(c)
	id, err := h.id(c, p)
	if err != nil {
		return err
	}

	a, err := h.service.Get(c.Request().Context(), p, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAddressResponse(a))
}

// Create adds an address owned by the caller.
//
// @Summary      Create an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.CreateAddressInput  true  "Address"
// @Success      201   {object}  addressCreatedResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/addresses [post]
func (h *AddressHandler) Create(c echo.Context) error {
	a, err := h.service.Create(c.Request().Context(), principal(c), newPayload(c.Request().Body))
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("address", "create").Inc()
	return c.JSON(http.StatusCreated, addressCreatedResponse{
		Message: "Address created",
		Address: toAddressResponse(a),
	})
}

// Update applies a partial update to one of the caller's addresses.
//
// @Summary      Update an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Address ID"
// @Param        body  body      ports.UpdateAddressInput  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/addresses/{id} [put]
func (h *AddressHandler) Update(c echo.Context) error {
	p := principal(c)
	id, err := h.id(c, p)
	if err != nil {
		return err
	}

	if _, err := h.service.Update(c.Request().Context(), p, id, newPayload(c.Request().Body)); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("address", "update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Address updated"})
}

// Delete removes one of the caller's addresses.
//
// @Summary      Delete an address
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Address ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/addresses/{id} [delete]
func (h *AddressHandler) Delete(c echo.Context) error {
	p := principal(c)
	id, err := h.id(c, p)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, id); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("address", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Address deleted"})
}

// id parses the path id. Anonymous callers get 401 before a bad id is
// reported, matching the service's authenticate-first order.
func (h *AddressHandler) id(c echo.Context, p *domain.Principal) (int64, error) {
	if p == nil {
		return 0, domain.ErrNotAuthenticated
	}
	return pathID(c, domain.ErrAddressNotFound)
}
