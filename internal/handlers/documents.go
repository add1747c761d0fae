package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/attachments"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/services"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/utils"
)

// DocumentHandler handles direct document routes for entities that already
// exist. Documents for entities still being created go through the drafts
// API instead.
type DocumentHandler struct {
	Service *services.DocumentService
}

// UploadDocument handles POST /api/documents
// @Summary Upload a document
// @Description Upload one file for an existing entity; the object lands in storage and a document row records it
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param entityType formData string true "Entity type (user | franchise)"
// @Param entityId formData string true "Entity ID"
// @Param docType formData string true "Document type (pan | aadhaar | gst | bank_statement | shop_act | additional)"
// @Param label formData string false "Display label"
// @Param file formData file true "File content"
// @Success 201 {object} models.Document
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /documents [post]
func (h *DocumentHandler) UploadDocument(c *fiber.Ctx) error {
	file, err := formFile(c, "file")
	if err != nil {
		return utils.ErrorResponse(c, "Missing file", fiber.StatusBadRequest, "documents.validation.file")
	}

	doc, err := h.Service.Upload(c.Context(), attachments.UploadRequest{
		EntityType:   c.FormValue("entityType"),
		EntityID:     c.FormValue("entityId"),
		DocumentType: c.FormValue("docType"),
		Label:        c.FormValue("label"),
		File:         file,
	})
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "uploadDocument")
	}
	return utils.SuccessResponse(c, doc, fiber.StatusCreated)
}

// ListDocuments handles GET /api/documents/:entityType/:entityId
// @Summary List an entity's documents
// @Tags Documents
// @Produce json
// @Param entityType path string true "Entity type"
// @Param entityId path string true "Entity ID"
// @Success 200 {array} models.Document
// @Router /documents/{entityType}/{entityId} [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	docs, err := h.Service.ListDocuments(c.Context(), c.Params("entityType"), c.Params("entityId"))
	if err != nil {
		return respondError(c, err, "listDocuments")
	}
	return utils.SuccessResponse(c, fiber.Map{"data": docs}, fiber.StatusOK)
}

// DeleteDocument handles DELETE /api/documents/:id
// @Summary Delete a document
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	if err := h.Service.DeleteDocument(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Document '%s' not found", c.Params("id")))
		}
		return respondError(c, err, "deleteDocument")
	}
	return utils.SuccessResponse(c, fiber.Map{"ok": true}, fiber.StatusOK)
}
