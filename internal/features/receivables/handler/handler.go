package handler

import (
	"loadharbour/internal/core/filter"
	"loadharbour/internal/core/server"
	"loadharbour/internal/features/receivables/domain"
	"loadharbour/internal/features/receivables/ports"

	"github.com/gofiber/fiber/v2"
)

// ReceivableHandler handles HTTP requests for account receivables.
type ReceivableHandler struct {
	service ports.ReceivableService
}

// NewReceivableHandler creates a new ReceivableHandler.
func NewReceivableHandler(service ports.ReceivableService) *ReceivableHandler {
	return &ReceivableHandler{
		service: service,
	}
}

// Register mounts the receivable routes on the router.
func (h *ReceivableHandler) Register(r fiber.Router) {
	r.Get("/receivables", h.List)
	r.Post("/receivables", h.Create)
	r.Put("/receivables/:id", h.Update)
	r.Delete("/receivables/:id", h.Delete)
}

var searchFields = []func(domain.AccountReceivable) string{
	func(ar domain.AccountReceivable) string { return ar.LoadID },
	func(ar domain.AccountReceivable) string { return ar.RateConfirmation },
	func(ar domain.AccountReceivable) string { return ar.Broker.Company },
	func(ar domain.AccountReceivable) string { return ar.Broker.MC },
	func(ar domain.AccountReceivable) string { return ar.Status.InvoiceNumber },
}

// List handles GET /api/receivables.
// @Summary List receivables
// @Description Returns the receivable collection, optionally narrowed by search term and billing status.
// @Tags Receivables
// @Produce json
// @Param search query string false "Free-text search over load, rate confirmation, broker, invoice number"
// @Param status query string false "Exact billing status filter"
// @Success 200 {object} server.List[domain.AccountReceivable]
// @Router /api/receivables [get]
func (h *ReceivableHandler) List(c *fiber.Ctx) error {
	items, err := h.service.List(c.Context())
	if err != nil {
		return server.RespondError(c, err)
	}

	items = filter.Apply(items, filter.Query[domain.AccountReceivable]{
		Term:         c.Query("search"),
		SearchFields: searchFields,
		Filters: []filter.Exact[domain.AccountReceivable]{
			{Value: c.Query("status"), Field: func(ar domain.AccountReceivable) string { return string(ar.Status.Status) }},
		},
	})

	return c.JSON(server.List[domain.AccountReceivable]{Items: items, Total: len(items)})
}

// Create handles POST /api/receivables.
// @Summary Create a receivable
// @Tags Receivables
// @Accept json
// @Produce json
// @Param receivable body domain.AccountReceivable true "Receivable details (id and totals ignored)"
// @Success 201 {object} domain.AccountReceivable
// @Failure 400 {object} server.ErrorBody
// @Router /api/receivables [post]
func (h *ReceivableHandler) Create(c *fiber.Ctx) error {
	var ar domain.AccountReceivable
	if err := c.BodyParser(&ar); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, server.CodeValidation, "Invalid request body")
	}

	created, err := h.service.Create(c.Context(), ar)
	if err != nil {
		return server.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/receivables/:id.
// @Summary Update a receivable
// @Description Applies a partial update; totals are recomputed server-side.
// @Tags Receivables
// @Accept json
// @Produce json
// @Param id path string true "Receivable ID"
// @Param patch body domain.ReceivablePatch true "Fields to update"
// @Success 200 {object} domain.AccountReceivable
// @Failure 404 {object} server.ErrorBody
// @Router /api/receivables/{id} [put]
func (h *ReceivableHandler) Update(c *fiber.Ctx) error {
	var patch domain.ReceivablePatch
	if err := c.BodyParser(&patch); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, server.CodeValidation, "Invalid request body")
	}

	updated, err := h.service.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return server.RespondError(c, err)
	}

	return c.JSON(updated)
}

// Delete handles DELETE /api/receivables/:id.
// @Summary Delete a receivable
// @Tags Receivables
// @Produce json
// @Param id path string true "Receivable ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} server.ErrorBody
// @Router /api/receivables/{id} [delete]
func (h *ReceivableHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return server.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}
