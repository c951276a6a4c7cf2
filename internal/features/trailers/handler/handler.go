package handler

import (
	"errors"

	"loadharbour/internal/core/filter"
	"loadharbour/internal/core/server"
	"loadharbour/internal/features/trailers/domain"
	"loadharbour/internal/features/trailers/ports"
	"loadharbour/internal/features/trailers/service"

	"github.com/gofiber/fiber/v2"
)

// TrailerHandler handles HTTP requests for trailers.
type TrailerHandler struct {
	service ports.TrailerService
}

// NewTrailerHandler creates a new TrailerHandler.
func NewTrailerHandler(service ports.TrailerService) *TrailerHandler {
	return &TrailerHandler{
		service: service,
	}
}

// Register mounts the trailer routes on the router.
func (h *TrailerHandler) Register(r fiber.Router) {
	r.Get("/trailers", h.List)
	r.Post("/trailers", h.Create)
	r.Put("/trailers/:id", h.Update)
	r.Delete("/trailers/:id", h.Delete)
}

var searchFields = []func(domain.Trailer) string{
	func(t domain.Trailer) string { return t.UnitNo },
	func(t domain.Trailer) string { return t.PlateNo },
	func(t domain.Trailer) string { return t.VIN },
	func(t domain.Trailer) string { return string(t.Type) },
}

// List handles GET /api/trailers.
// @Summary List trailers
// @Tags Trailers
// @Produce json
// @Param search query string false "Free-text search over unit, plate, VIN, type"
// @Param status query string false "Exact status filter"
// @Param type query string false "Exact trailer type filter"
// @Success 200 {object} server.List[domain.Trailer]
// @Router /api/trailers [get]
func (h *TrailerHandler) List(c *fiber.Ctx) error {
	trailers, err := h.service.List(c.Context())
	if err != nil {
		return server.RespondError(c, err)
	}

	trailers = filter.Apply(trailers, filter.Query[domain.Trailer]{
		Term:         c.Query("search"),
		SearchFields: searchFields,
		Filters: []filter.Exact[domain.Trailer]{
			{Value: c.Query("status"), Field: func(t domain.Trailer) string { return string(t.Status) }},
			{Value: c.Query("type"), Field: func(t domain.Trailer) string { return string(t.Type) }},
		},
	})

	return c.JSON(server.List[domain.Trailer]{Items: trailers, Total: len(trailers)})
}

// Create handles POST /api/trailers.
// @Summary Create a trailer
// @Tags Trailers
// @Accept json
// @Produce json
// @Param trailer body domain.Trailer true "Trailer details (id ignored)"
// @Success 201 {object} domain.Trailer
// @Failure 400 {object} server.ErrorBody
// @Failure 409 {object} server.ErrorBody
// @Router /api/trailers [post]
func (h *TrailerHandler) Create(c *fiber.Ctx) error {
	var trailer domain.Trailer
	if err := c.BodyParser(&trailer); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, server.CodeValidation, "Invalid request body")
	}

	created, err := h.service.Create(c.Context(), trailer)
	if err != nil {
		return server.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/trailers/:id.
// @Summary Update a trailer
// @Tags Trailers
// @Accept json
// @Produce json
// @Param id path string true "Trailer ID"
// @Param patch body domain.TrailerPatch true "Fields to update"
// @Success 200 {object} domain.Trailer
// @Failure 404 {object} server.ErrorBody
// @Failure 409 {object} server.ErrorBody
// @Router /api/trailers/{id} [put]
func (h *TrailerHandler) Update(c *fiber.Ctx) error {
	var patch domain.TrailerPatch
	if err := c.BodyParser(&patch); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, server.CodeValidation, "Invalid request body")
	}

	updated, err := h.service.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return server.RespondError(c, err)
	}

	return c.JSON(updated)
}

// Delete handles DELETE /api/trailers/:id.
// @Summary Delete a trailer
// @Tags Trailers
// @Produce json
// @Param id path string true "Trailer ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} server.ErrorBody
// @Failure 409 {object} server.ErrorBody
// @Router /api/trailers/{id} [delete]
func (h *TrailerHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, service.ErrTrailerInUse) {
			return server.Fail(c, fiber.StatusConflict, server.CodeReferenceConflict, err.Error())
		}
		return server.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
