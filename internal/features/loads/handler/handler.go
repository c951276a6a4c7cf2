package handler

import (
	"loadharbour/internal/core/filter"
	"loadharbour/internal/core/server"
	"loadharbour/internal/features/loads/domain"
	"loadharbour/internal/features/loads/ports"

	"github.com/gofiber/fiber/v2"
)

// LoadHandler handles HTTP requests for loads.
type LoadHandler struct {
	service ports.LoadService
}

// NewLoadHandler creates a new LoadHandler.
func NewLoadHandler(service ports.LoadService) *LoadHandler {
	return &LoadHandler{
		service: service,
	}
}

// Register mounts the load routes on the router.
func (h *LoadHandler) Register(r fiber.Router) {
	r.Get("/loads", h.List)
	r.Post("/loads", h.Create)
	r.Put("/loads/:id", h.Update)
	r.Delete("/loads/:id", h.Delete)
}

var searchFields = []func(domain.Load) string{
	func(l domain.Load) string { return l.ReferenceNo },
	func(l domain.Load) string { return l.BrokerName },
	func(l domain.Load) string { return l.PickupLocation.City },
	func(l domain.Load) string { return l.DeliveryLocation.City },
}

// List handles GET /api/loads.
// @Summary List loads
// @Tags Loads
// @Produce json
// @Param search query string false "Free-text search over reference, broker, cities"
// @Param status query string false "Exact status filter"
// @Param driverId query string false "Exact driver filter"
// @Success 200 {object} server.List[domain.Load]
// @Router /api/loads [get]
func (h *LoadHandler) List(c *fiber.Ctx) error {
	loads, err := h.service.List(c.Context())
	if err != nil {
		return server.RespondError(c, err)
	}

	loads = filter.Apply(loads, filter.Query[domain.Load]{
		Term:         c.Query("search"),
		SearchFields: searchFields,
		Filters: []filter.Exact[domain.Load]{
			{Value: c.Query("status"), Field: func(l domain.Load) string { return string(l.Status) }},
			{Value: c.Query("driverId"), Field: func(l domain.Load) string { return l.DriverID }},
		},
	})

	return c.JSON(server.List[domain.Load]{Items: loads, Total: len(loads)})
}

// Create handles POST /api/loads.
// @Summary Create a load
// @Tags Loads
// @Accept json
// @Produce json
// @Param load body domain.Load true "Load details (id ignored)"
// @Success 201 {object} domain.Load
// @Failure 400 {object} server.ErrorBody
// @Failure 409 {object} server.ErrorBody
// @Router /api/loads [post]
func (h *LoadHandler) Create(c *fiber.Ctx) error {
	var load domain.Load
	if err := c.BodyParser(&load); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, server.CodeValidation, "Invalid request body")
	}

	created, err := h.service.Create(c.Context(), load)
	if err != nil {
		return server.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/loads/:id.
// @Summary Update a load
// @Tags Loads
// @Accept json
// @Produce json
// @Param id path string true "Load ID"
// @Param patch body domain.LoadPatch true "Fields to update"
// @Success 200 {object} domain.Load
// @Failure 404 {object} server.ErrorBody
// @Router /api/loads/{id} [put]
func (h *LoadHandler) Update(c *fiber.Ctx) error {
	var patch domain.LoadPatch
	if err := c.BodyParser(&patch); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, server.CodeValidation, "Invalid request body")
	}

	updated, err := h.service.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return server.RespondError(c, err)
	}

	return c.JSON(updated)
}

// Delete handles DELETE /api/loads/:id.
// @Summary Delete a load
// @Tags Loads
// @Produce json
// @Param id path string true "Load ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} server.ErrorBody
// @Router /api/loads/{id} [delete]
func (h *LoadHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return server.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
