package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/services"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/utils"
)

// DirectoryHandler handles franchise, relationship-manager and bank routes
type DirectoryHandler struct {
	Service *services.DirectoryService
}

// CreateFranchise handles POST /api/franchises
// @Summary Create a franchise
// @Tags Directory
// @Accept json
// @Produce json
// @Param body body services.FranchiseInput true "Franchise payload"
// @Success 201 {object} models.Franchise
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /franchises [post]
func (h *DirectoryHandler) CreateFranchise(c *fiber.Ctx) error {
	var input services.FranchiseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "directory.validation.input")
	}
	f, err := h.Service.CreateFranchise(c.Context(), input)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "createFranchise")
	}
	return utils.SuccessResponse(c, f, fiber.StatusCreated)
}

// ListFranchises handles GET /api/franchises
// @Summary List franchises
// @Tags Directory
// @Produce json
// @Param search query string false "Name search"
// @Success 200 {array} models.Franchise
// @Router /franchises [get]
func (h *DirectoryHandler) ListFranchises(c *fiber.Ctx) error {
	out, err := h.Service.ListFranchises(c.Context(), c.Query("search"))
	if err != nil {
		return respondError(c, err, "listFranchises")
	}
	return utils.SuccessResponse(c, fiber.Map{"data": out}, fiber.StatusOK)
}

// GetFranchise handles GET /api/franchises/:id
// @Summary Get a franchise
// @Tags Directory
// @Produce json
// @Param id path string true "Franchise ID"
// @Success 200 {object} models.Franchise
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /franchises/{id} [get]
func (h *DirectoryHandler) GetFranchise(c *fiber.Ctx) error {
	f, err := h.Service.GetFranchise(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Franchise '%s' not found", c.Params("id")))
		}
		return respondError(c, err, "getFranchise")
	}
	return utils.SuccessResponse(c, f, fiber.StatusOK)
}

// UpdateFranchise handles PUT /api/franchises/:id
// @Summary Update a franchise
// @Tags Directory
// @Accept json
// @Produce json
// @Param id path string true "Franchise ID"
// @Param body body services.FranchiseInput true "Franchise payload"
// @Success 200 {object} models.Franchise
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /franchises/{id} [put]
func (h *DirectoryHandler) UpdateFranchise(c *fiber.Ctx) error {
	var input services.FranchiseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "directory.validation.input")
	}
	f, err := h.Service.UpdateFranchise(c.Context(), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Franchise '%s' not found", c.Params("id")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "updateFranchise")
	}
	return utils.SuccessResponse(c, f, fiber.StatusOK)
}

// DeleteFranchise handles DELETE /api/franchises/:id
// @Summary Deactivate a franchise
// @Tags Directory
// @Produce json
// @Param id path string true "Franchise ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /franchises/{id} [delete]
func (h *DirectoryHandler) DeleteFranchise(c *fiber.Ctx) error {
	if err := h.Service.DeleteFranchise(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Franchise '%s' not found", c.Params("id")))
		}
		return respondError(c, err, "deleteFranchise")
	}
	return utils.SuccessResponse(c, fiber.Map{"ok": true}, fiber.StatusOK)
}

// CreateRelationshipManager handles POST /api/relationship-managers
// @Summary Create a relationship manager
// @Tags Directory
// @Accept json
// @Produce json
// @Param body body services.RelationshipManagerInput true "Manager payload"
// @Success 201 {object} models.RelationshipManager
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /relationship-managers [post]
func (h *DirectoryHandler) CreateRelationshipManager(c *fiber.Ctx) error {
	var input services.RelationshipManagerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "directory.validation.input")
	}
	rm, err := h.Service.CreateRelationshipManager(c.Context(), input)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "createRelationshipManager")
	}
	return utils.SuccessResponse(c, rm, fiber.StatusCreated)
}

// ListRelationshipManagers handles GET /api/relationship-managers
// @Summary List relationship managers
// @Tags Directory
// @Produce json
// @Param search query string false "Name search"
// @Success 200 {array} models.RelationshipManager
// @Router /relationship-managers [get]
func (h *DirectoryHandler) ListRelationshipManagers(c *fiber.Ctx) error {
	out, err := h.Service.ListRelationshipManagers(c.Context(), c.Query("search"))
	if err != nil {
		return respondError(c, err, "listRelationshipManagers")
	}
	return utils.SuccessResponse(c, fiber.Map{"data": out}, fiber.StatusOK)
}

// GetRelationshipManager handles GET /api/relationship-managers/:id
// @Summary Get a relationship manager
// @Tags Directory
// @Produce json
// @Param id path string true "Manager ID"
// @Success 200 {object} models.RelationshipManager
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /relationship-managers/{id} [get]
func (h *DirectoryHandler) GetRelationshipManager(c *fiber.Ctx) error {
	rm, err := h.Service.GetRelationshipManager(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Relationship manager '%s' not found", c.Params("id")))
		}
		return respondError(c, err, "getRelationshipManager")
	}
	return utils.SuccessResponse(c, rm, fiber.StatusOK)
}

// UpdateRelationshipManager handles PUT /api/relationship-managers/:id
// @Summary Update a relationship manager
// @Tags Directory
// @Accept json
// @Produce json
// @Param id path string true "Manager ID"
// @Param body body services.RelationshipManagerInput true "Manager payload"
// @Success 200 {object} models.RelationshipManager
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /relationship-managers/{id} [put]
func (h *DirectoryHandler) UpdateRelationshipManager(c *fiber.Ctx) error {
	var input services.RelationshipManagerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "directory.validation.input")
	}
	rm, err := h.Service.UpdateRelationshipManager(c.Context(), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Relationship manager '%s' not found", c.Params("id")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "updateRelationshipManager")
	}
	return utils.SuccessResponse(c, rm, fiber.StatusOK)
}

// DeleteRelationshipManager handles DELETE /api/relationship-managers/:id
// @Summary Deactivate a relationship manager
// @Tags Directory
// @Produce json
// @Param id path string true "Manager ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /relationship-managers/{id} [delete]
func (h *DirectoryHandler) DeleteRelationshipManager(c *fiber.Ctx) error {
	if err := h.Service.DeleteRelationshipManager(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Relationship manager '%s' not found", c.Params("id")))
		}
		return respondError(c, err, "deleteRelationshipManager")
	}
	return utils.SuccessResponse(c, fiber.Map{"ok": true}, fiber.StatusOK)
}

// CreateBank handles POST /api/banks
// @Summary Create a bank
// @Tags Directory
// @Accept json
// @Produce json
// @Param body body services.BankInput true "Bank payload"
// @Success 201 {object} models.Bank
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /banks [post]
func (h *DirectoryHandler) CreateBank(c *fiber.Ctx) error {
	var input services.BankInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "directory.validation.input")
	}
	b, err := h.Service.CreateBank(c.Context(), input)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "createBank")
	}
	return utils.SuccessResponse(c, b, fiber.StatusCreated)
}

// ListBanks handles GET /api/banks
// @Summary List banks
// @Tags Directory
// @Produce json
// @Success 200 {array} models.Bank
// @Router /banks [get]
func (h *DirectoryHandler) ListBanks(c *fiber.Ctx) error {
	out, err := h.Service.ListBanks(c.Context())
	if err != nil {
		return respondError(c, err, "listBanks")
	}
	return utils.SuccessResponse(c, fiber.Map{"data": out}, fiber.StatusOK)
}

// UpdateBank handles PUT /api/banks/:id
// @Summary Update a bank
// @Tags Directory
// @Accept json
// @Produce json
// @Param id path string true "Bank ID"
// @Param body body services.BankInput true "Bank payload"
// @Success 200 {object} models.Bank
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /banks/{id} [put]
func (h *DirectoryHandler) UpdateBank(c *fiber.Ctx) error {
	var input services.BankInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "directory.validation.input")
	}
	b, err := h.Service.UpdateBank(c.Context(), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Bank '%s' not found", c.Params("id")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "updateBank")
	}
	return utils.SuccessResponse(c, b, fiber.StatusOK)
}

// DeleteBank handles DELETE /api/banks/:id
// @Summary Deactivate a bank
// @Tags Directory
// @Produce json
// @Param id path string true "Bank ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /banks/{id} [delete]
func (h *DirectoryHandler) DeleteBank(c *fiber.Ctx) error {
	if err := h.Service.DeleteBank(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Bank '%s' not found", c.Params("id")))
		}
		return respondError(c, err, "deleteBank")
	}
	return utils.SuccessResponse(c, fiber.Map{"ok": true}, fiber.StatusOK)
}
