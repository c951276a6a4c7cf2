package handler

import (
	"loadharbour/internal/core/server"
	"loadharbour/internal/features/stats/service"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler serves the dashboard aggregate.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// Register mounts the stats route on the router.
func (h *StatsHandler) Register(r fiber.Router) {
	r.Get("/stats", h.Get)
}

// Get handles GET /stats.
// @Summary Dashboard statistics
// @Description Counts loads per status, fleet availability, and receivable totals.
// @Tags Stats
// @Produce json
// @Success 200 {object} domain.Stats
// @Router /stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats, err := h.service.Collect(c.Context())
	if err != nil {
		return server.RespondError(c, err)
	}
	return c.JSON(stats)
}
