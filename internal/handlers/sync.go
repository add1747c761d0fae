package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/services"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/stats"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/utils"
)

// SyncHandler handles the ingest and listing of lead and invoice records
// pushed from the origination system.
type SyncHandler struct {
	Service *services.SyncService
}

// IngestLeads handles POST /api/sync/leads
// @Summary Ingest lead records
// @Description Upsert a batch of raw lead records; malformed records are skipped, not fatal
// @Tags Sync
// @Accept json
// @Produce json
// @Param body body []object true "Raw lead records"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /sync/leads [post]
func (h *SyncHandler) IngestLeads(c *fiber.Ctx) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(c.Body(), &raws); err != nil {
		return utils.ErrorResponse(c, "Invalid input, expected an array of records", fiber.StatusBadRequest, "sync.validation.input")
	}
	stored, err := h.Service.IngestLeads(c.Context(), raws)
	if err != nil {
		return respondError(c, err, "ingestLeads")
	}
	return utils.SuccessResponse(c, fiber.Map{"stored": stored, "received": len(raws)}, fiber.StatusOK)
}

// IngestInvoices handles POST /api/sync/invoices
// @Summary Ingest invoice records
// @Tags Sync
// @Accept json
// @Produce json
// @Param body body []object true "Raw invoice records"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /sync/invoices [post]
func (h *SyncHandler) IngestInvoices(c *fiber.Ctx) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(c.Body(), &raws); err != nil {
		return utils.ErrorResponse(c, "Invalid input, expected an array of records", fiber.StatusBadRequest, "sync.validation.input")
	}
	stored, err := h.Service.IngestInvoices(c.Context(), raws)
	if err != nil {
		return respondError(c, err, "ingestInvoices")
	}
	return utils.SuccessResponse(c, fiber.Map{"stored": stored, "received": len(raws)}, fiber.StatusOK)
}

// ListLeads handles GET /api/leads/:kind/:id
// @Summary List leads by owner
// @Tags Sync
// @Produce json
// @Param kind path string true "Owner kind (agent | franchise | bank)"
// @Param id path string true "Owner ID"
// @Success 200 {array} models.Lead
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /leads/{kind}/{id} [get]
func (h *SyncHandler) ListLeads(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if !stats.ValidKind(kind) {
		return utils.ErrorResponse(c, "Invalid owner kind", fiber.StatusBadRequest, "sync.validation.kind")
	}
	leads, err := h.Service.ListLeads(c.Context(), kind, c.Params("id"))
	if err != nil {
		return respondError(c, err, "listLeads")
	}
	return utils.SuccessResponse(c, fiber.Map{"data": leads}, fiber.StatusOK)
}

// ListInvoices handles GET /api/invoices/:kind/:id
// @Summary List invoices by owner
// @Tags Sync
// @Produce json
// @Param kind path string true "Owner kind (agent | franchise | bank)"
// @Param id path string true "Owner ID"
// @Success 200 {array} models.Invoice
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /invoices/{kind}/{id} [get]
func (h *SyncHandler) ListInvoices(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if !stats.ValidKind(kind) {
		return utils.ErrorResponse(c, "Invalid owner kind", fiber.StatusBadRequest, "sync.validation.kind")
	}
	invoices, err := h.Service.ListInvoices(c.Context(), kind, c.Params("id"))
	if err != nil {
		return respondError(c, err, "listInvoices")
	}
	return utils.SuccessResponse(c, fiber.Map{"data": invoices}, fiber.StatusOK)
}
