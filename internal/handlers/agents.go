package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/ownership"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/services"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/utils"
)

// AgentHandler handles agent routes
type AgentHandler struct {
	Service *services.AgentService
}

// agentRequest is the wire payload for agent create/update. FixedOwner is
// injected by parent workflows ("create agent under this manager") and
// locks the ownership selection.
type agentRequest struct {
	services.AgentInput
	FixedOwner *ownership.Owner `json:"fixedOwner"`
}

// CreateAgent handles POST /api/agents
// @Summary Create an agent
// @Description Create an agent, resolving its franchise or relationship-manager ownership for the acting role, then flush any staged draft attachments against the new id
// @Tags Agents
// @Accept json
// @Produce json
// @Param body body agentRequest true "Agent payload"
// @Success 201 {object} services.AgentResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *fiber.Ctx) error {
	var req agentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "agents.validation.input")
	}

	role, act := actor(c)
	result, err := h.Service.CreateAgent(c.Context(), role, act, req.FixedOwner, req.AgentInput)
	if err != nil {
		return respondError(c, err, "createAgent")
	}

	return utils.SuccessResponse(c, result, fiber.StatusCreated)
}

// UpdateAgent handles PUT /api/agents/:id
// @Summary Update an agent
// @Tags Agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID"
// @Param body body agentRequest true "Agent payload"
// @Success 200 {object} services.AgentResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /agents/{id} [put]
func (h *AgentHandler) UpdateAgent(c *fiber.Ctx) error {
	var req agentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "agents.validation.input")
	}

	role, act := actor(c)
	result, err := h.Service.UpdateAgent(c.Context(), role, act, req.FixedOwner, c.Params("id"), req.AgentInput)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Agent '%s' not found", c.Params("id")))
		}
		return respondError(c, err, "updateAgent")
	}

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}

// GetAgent handles GET /api/agents/:id
// @Summary Get an agent
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} models.Agent
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *fiber.Ctx) error {
	agent, err := h.Service.GetAgent(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Agent '%s' not found", c.Params("id")))
		}
		return respondError(c, err, "getAgent")
	}
	return utils.SuccessResponse(c, agent, fiber.StatusOK)
}

// ListAgents handles GET /api/agents
// @Summary List agents
// @Tags Agents
// @Produce json
// @Param ownerKind query string false "Owner kind filter (franchise | relationship_manager)"
// @Param ownerId query string false "Owner id filter"
// @Param status query string false "Status filter"
// @Success 200 {array} models.Agent
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *fiber.Ctx) error {
	agents, err := h.Service.ListAgents(c.Context(), c.Query("ownerKind"), c.Query("ownerId"), c.Query("status"))
	if err != nil {
		return respondError(c, err, "listAgents")
	}
	return utils.SuccessResponse(c, fiber.Map{"data": agents}, fiber.StatusOK)
}

// DeleteAgent handles DELETE /api/agents/:id
// @Summary Delete an agent
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *fiber.Ctx) error {
	if err := h.Service.DeleteAgent(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Agent '%s' not found", c.Params("id")))
		}
		return respondError(c, err, "deleteAgent")
	}
	return utils.SuccessResponse(c, fiber.Map{"ok": true}, fiber.StatusOK)
}
