package handler

import (
	"errors"

	"loadharbour/internal/core/filter"
	"loadharbour/internal/core/server"
	"loadharbour/internal/features/drivers/domain"
	"loadharbour/internal/features/drivers/ports"
	"loadharbour/internal/features/drivers/service"

	"github.com/gofiber/fiber/v2"
)

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	service ports.DriverService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(service ports.DriverService) *DriverHandler {
	return &DriverHandler{
		service: service,
	}
}

// Register mounts the driver routes on the router.
func (h *DriverHandler) Register(r fiber.Router) {
	r.Get("/drivers", h.List)
	r.Post("/drivers", h.Create)
	r.Put("/drivers/:id", h.Update)
	r.Delete("/drivers/:id", h.Delete)
}

var searchFields = []func(domain.Driver) string{
	func(d domain.Driver) string { return d.FirstName },
	func(d domain.Driver) string { return d.LastName },
	func(d domain.Driver) string { return d.Email },
	func(d domain.Driver) string { return d.Phone },
	func(d domain.Driver) string { return d.LicenseNumber },
}

// List handles GET /api/drivers.
// @Summary List drivers
// @Tags Drivers
// @Produce json
// @Param search query string false "Free-text search over name, email, phone, license"
// @Param status query string false "Exact status filter"
// @Success 200 {object} server.List[domain.Driver]
// @Router /api/drivers [get]
func (h *DriverHandler) List(c *fiber.Ctx) error {
	drivers, err := h.service.List(c.Context())
	if err != nil {
		return server.RespondError(c, err)
	}

	drivers = filter.Apply(drivers, filter.Query[domain.Driver]{
		Term:         c.Query("search"),
		SearchFields: searchFields,
		Filters: []filter.Exact[domain.Driver]{
			{Value: c.Query("status"), Field: func(d domain.Driver) string { return string(d.Status) }},
		},
	})

	return c.JSON(server.List[domain.Driver]{Items: drivers, Total: len(drivers)})
}

// Create handles POST /api/drivers.
// @Summary Create a driver
// @Tags Drivers
// @Accept json
// @Produce json
// @Param driver body domain.Driver true "Driver details (id ignored)"
// @Success 201 {object} domain.Driver
// @Failure 400 {object} server.ErrorBody
// @Router /api/drivers [post]
func (h *DriverHandler) Create(c *fiber.Ctx) error {
	var driver domain.Driver
	if err := c.BodyParser(&driver); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, server.CodeValidation, "Invalid request body")
	}

	created, err := h.service.Create(c.Context(), driver)
	if err != nil {
		return server.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/drivers/:id.
// @Summary Update a driver
// @Tags Drivers
// @Accept json
// @Produce json
// @Param id path string true "Driver ID"
// @Param patch body domain.DriverPatch true "Fields to update"
// @Success 200 {object} domain.Driver
// @Failure 404 {object} server.ErrorBody
// @Router /api/drivers/{id} [put]
func (h *DriverHandler) Update(c *fiber.Ctx) error {
	var patch domain.DriverPatch
	if err := c.BodyParser(&patch); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, server.CodeValidation, "Invalid request body")
	}

	updated, err := h.service.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return server.RespondError(c, err)
	}

	return c.JSON(updated)
}

// Delete handles DELETE /api/drivers/:id.
// @Summary Delete a driver
// @Description Removes a driver permanently. Blocked while a load references them.
// @Tags Drivers
// @Produce json
// @Param id path string true "Driver ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} server.ErrorBody
// @Failure 409 {object} server.ErrorBody
// @Router /api/drivers/{id} [delete]
func (h *DriverHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, service.ErrDriverInUse) {
			return server.Fail(c, fiber.StatusConflict, server.CodeReferenceConflict, err.Error())
		}
		return server.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
