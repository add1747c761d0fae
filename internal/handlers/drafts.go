package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/attachments"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/models"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/utils"
)

// DraftHandler handles the attachment staging area of form sessions. A
// draft is opened when a create form opens, filled with files while the
// entity has no id yet, and flushed when the entity create submits with
// the draft id.
type DraftHandler struct {
	Registry *attachments.Registry
}

// CreateDraft handles POST /api/drafts
// @Summary Open a draft
// @Tags Drafts
// @Accept json
// @Produce json
// @Param body body object{entityType=string} true "Draft payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /drafts [post]
func (h *DraftHandler) CreateDraft(c *fiber.Ctx) error {
	var body struct {
		EntityType string `json:"entityType"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "drafts.validation.input")
	}
	if body.EntityType != models.DocumentEntityUser && body.EntityType != models.DocumentEntityFranchise {
		return utils.ErrorResponse(c, "Invalid entity type", fiber.StatusBadRequest, "drafts.validation.entityType")
	}
	id := h.Registry.Create(body.EntityType)
	return utils.SuccessResponse(c, fiber.Map{"draftId": id}, fiber.StatusCreated)
}

// StageAttachment handles POST /api/drafts/:id/attachments
// @Summary Stage a file in a draft
// @Description Hold one file in the draft's staging area; it uploads when the owning entity is created
// @Tags Drafts
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Draft ID"
// @Param docType formData string true "Document type"
// @Param label formData string false "Display label"
// @Param file formData file true "File content"
// @Success 200 {array} attachments.Staged
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /drafts/{id}/attachments [post]
func (h *DraftHandler) StageAttachment(c *fiber.Ctx) error {
	stager, ok := h.Registry.Get(c.Params("id"))
	if !ok {
		return utils.NotFoundResponse(c, "Draft not found or expired")
	}

	file, err := formFile(c, "file")
	if err != nil {
		return utils.ErrorResponse(c, "Missing file", fiber.StatusBadRequest, "drafts.validation.file")
	}
	if _, err := stager.Stage(c.Context(), c.FormValue("docType"), file, c.FormValue("label")); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "stageAttachment")
	}
	return utils.SuccessResponse(c, fiber.Map{"staged": stager.StagedEntries()}, fiber.StatusOK)
}

// ListStaged handles GET /api/drafts/:id/attachments
// @Summary List a draft's staged files
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {array} attachments.Staged
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /drafts/{id}/attachments [get]
func (h *DraftHandler) ListStaged(c *fiber.Ctx) error {
	stager, ok := h.Registry.Get(c.Params("id"))
	if !ok {
		return utils.NotFoundResponse(c, "Draft not found or expired")
	}
	return utils.SuccessResponse(c, fiber.Map{"staged": stager.StagedEntries()}, fiber.StatusOK)
}

// RemoveStaged handles DELETE /api/drafts/:id/attachments/:docType
// @Summary Remove a staged file
// @Description Remove the staged file of a docType; for the additional list an index query selects the entry
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Param docType path string true "Document type"
// @Param index query int false "Entry index for the additional list"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /drafts/{id}/attachments/{docType} [delete]
func (h *DraftHandler) RemoveStaged(c *fiber.Ctx) error {
	stager, ok := h.Registry.Get(c.Params("id"))
	if !ok {
		return utils.NotFoundResponse(c, "Draft not found or expired")
	}

	docType := c.Params("docType")
	var removed bool
	if docType == models.DocTypeAdditional {
		index, err := strconv.Atoi(c.Query("index", "-1"))
		if err != nil {
			return utils.ErrorResponse(c, "Invalid index", fiber.StatusBadRequest, "drafts.validation.index")
		}
		removed = stager.RemoveAdditional(index)
	} else {
		removed = stager.Remove(docType)
	}
	if !removed {
		return utils.NotFoundResponse(c, "Nothing staged for that document type")
	}
	return utils.SuccessResponse(c, fiber.Map{"staged": stager.StagedEntries()}, fiber.StatusOK)
}

// PreviewStaged handles GET /api/drafts/:id/attachments/:docType/preview
// @Summary Stream a staged file
// @Tags Drafts
// @Produce octet-stream
// @Param id path string true "Draft ID"
// @Param docType path string true "Document type"
// @Param index query int false "Entry index for the additional list"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /drafts/{id}/attachments/{docType}/preview [get]
func (h *DraftHandler) PreviewStaged(c *fiber.Ctx) error {
	stager, ok := h.Registry.Get(c.Params("id"))
	if !ok {
		return utils.NotFoundResponse(c, "Draft not found or expired")
	}

	index, _ := strconv.Atoi(c.Query("index", "0"))
	file, ok := stager.Open(c.Params("docType"), index)
	if !ok {
		return utils.NotFoundResponse(c, "Nothing staged for that document type")
	}
	if file.ContentType != "" {
		c.Set(fiber.HeaderContentType, file.ContentType)
	}
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+file.Name+`"`)
	return c.Send(file.Content)
}

// DiscardDraft handles DELETE /api/drafts/:id
// @Summary Discard a draft
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} map[string]interface{}
// @Router /drafts/{id} [delete]
func (h *DraftHandler) DiscardDraft(c *fiber.Ctx) error {
	h.Registry.Discard(c.Params("id"))
	return utils.SuccessResponse(c, fiber.Map{"ok": true}, fiber.StatusOK)
}
