package handler

import (
	"errors"

	"loadharbour/internal/core/filter"
	"loadharbour/internal/core/server"
	"loadharbour/internal/features/trucks/domain"
	"loadharbour/internal/features/trucks/ports"
	"loadharbour/internal/features/trucks/service"

	"github.com/gofiber/fiber/v2"
)

// TruckHandler handles HTTP requests for trucks.
type TruckHandler struct {
	service ports.TruckService
}

// NewTruckHandler creates a new TruckHandler.
func NewTruckHandler(service ports.TruckService) *TruckHandler {
	return &TruckHandler{
		service: service,
	}
}

// Register mounts the truck routes on the router.
func (h *TruckHandler) Register(r fiber.Router) {
	r.Get("/trucks", h.List)
	r.Post("/trucks", h.Create)
	r.Put("/trucks/:id", h.Update)
	r.Delete("/trucks/:id", h.Delete)
}

var searchFields = []func(domain.Truck) string{
	func(t domain.Truck) string { return t.UnitNo },
	func(t domain.Truck) string { return t.PlateNo },
	func(t domain.Truck) string { return t.VIN },
	func(t domain.Truck) string { return t.Make },
	func(t domain.Truck) string { return t.Model },
}

// List handles GET /api/trucks.
// @Summary List trucks
// @Description Returns the truck collection, optionally narrowed by search term and status.
// @Tags Trucks
// @Produce json
// @Param search query string false "Free-text search over unit, plate, VIN, make, model"
// @Param status query string false "Exact status filter"
// @Success 200 {object} server.List[domain.Truck]
// @Router /api/trucks [get]
func (h *TruckHandler) List(c *fiber.Ctx) error {
	trucks, err := h.service.List(c.Context())
	if err != nil {
		return server.RespondError(c, err)
	}

	trucks = filter.Apply(trucks, filter.Query[domain.Truck]{
		Term:         c.Query("search"),
		SearchFields: searchFields,
		Filters: []filter.Exact[domain.Truck]{
			{Value: c.Query("status"), Field: func(t domain.Truck) string { return string(t.Status) }},
		},
	})

	return c.JSON(server.List[domain.Truck]{Items: trucks, Total: len(trucks)})
}

// Create handles POST /api/trucks.
// @Summary Create a truck
// @Tags Trucks
// @Accept json
// @Produce json
// @Param truck body domain.Truck true "Truck details (id ignored)"
// @Success 201 {object} domain.Truck
// @Failure 400 {object} server.ErrorBody
// @Failure 409 {object} server.ErrorBody
// @Router /api/trucks [post]
func (h *TruckHandler) Create(c *fiber.Ctx) error {
	var truck domain.Truck
	if err := c.BodyParser(&truck); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, server.CodeValidation, "Invalid request body")
	}

	created, err := h.service.Create(c.Context(), truck)
	if err != nil {
		return server.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/trucks/:id.
// @Summary Update a truck
// @Description Applies a partial update; only supplied fields change.
// @Tags Trucks
// @Accept json
// @Produce json
// @Param id path string true "Truck ID"
// @Param patch body domain.TruckPatch true "Fields to update"
// @Success 200 {object} domain.Truck
// @Failure 404 {object} server.ErrorBody
// @Failure 409 {object} server.ErrorBody
// @Router /api/trucks/{id} [put]
func (h *TruckHandler) Update(c *fiber.Ctx) error {
	var patch domain.TruckPatch
	if err := c.BodyParser(&patch); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, server.CodeValidation, "Invalid request body")
	}

	updated, err := h.service.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return server.RespondError(c, err)
	}

	return c.JSON(updated)
}

// Delete handles DELETE /api/trucks/:id.
// @Summary Delete a truck
// @Description Removes a truck permanently. Blocked while a load references it.
// @Tags Trucks
// @Produce json
// @Param id path string true "Truck ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} server.ErrorBody
// @Failure 409 {object} server.ErrorBody
// @Router /api/trucks/{id} [delete]
func (h *TruckHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, service.ErrTruckInUse) {
			return server.Fail(c, fiber.StatusConflict, server.CodeReferenceConflict, err.Error())
		}
		return server.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
