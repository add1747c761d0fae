package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/services"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/stats"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/utils"
	"gorm.io/gorm"
)

// StatsHandler handles roll-up routes.
type StatsHandler struct {
	DB *gorm.DB
}

// GetStats handles GET /api/stats/:kind/:id
// @Summary Entity roll-up
// @Description Compute the lead and invoice roll-up for one agent, franchise or bank
// @Tags Stats
// @Produce json
// @Param kind path string true "Entity kind (agent | franchise | bank)"
// @Param id path string true "Entity ID"
// @Success 200 {object} stats.Record
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /stats/{kind}/{id} [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if !stats.ValidKind(kind) {
		return utils.ErrorResponse(c, "Invalid entity kind", fiber.StatusBadRequest, "stats.validation.kind")
	}
	record, err := services.StatsFor(c.Context(), h.DB, kind, c.Params("id"))
	if err != nil {
		return respondError(c, err, "getStats")
	}
	return utils.SuccessResponse(c, record, fiber.StatusOK)
}
