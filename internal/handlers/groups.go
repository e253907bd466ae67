package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/groupdir/backend/internal/models"
	"github.com/groupdir/backend/internal/services"
	"github.com/groupdir/backend/internal/validation"
	"github.com/groupdir/backend/pkg/logger"
	"github.com/groupdir/backend/pkg/utils"
)

type GroupsHandler struct {
	Groups *services.GroupService
}

func NewGroupsHandler(groups *services.GroupService) *GroupsHandler {
	return &GroupsHandler{Groups: groups}
}

func (h *GroupsHandler) List(c *fiber.Ctx) error {
	groups, err := h.Groups.List(c.Context())
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}
	return utils.Success(c, fiber.StatusOK, groups)
}

func (h *GroupsHandler) Get(c *fiber.Ctx) error {
	id, err := validation.GroupID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, err.Error())
	}

	group, err := h.Groups.Get(c.Context(), id)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}
	if group == nil {
		return utils.Error(c, fiber.StatusNotFound, "Group not found")
	}

	return utils.Success(c, fiber.StatusOK, group)
}

type createGroupRequest struct {
	Name string `json:"name"`
}

func (h *GroupsHandler) Create(c *fiber.Ctx) error {
	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return utils.Error(c, fiber.StatusBadRequest, "name is required")
	}

	id, err := h.Groups.Create(c.Context(), models.Group{Name: req.Name})
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}

	logger.Info("group_created", map[string]interface{}{"group_id": id, "group_name": req.Name})
	return utils.Success(c, fiber.StatusCreated, fiber.Map{
		"id":      id,
		"message": "Group created successfully",
	})
}

func (h *GroupsHandler) Update(c *fiber.Ctx) error {
	id, err := validation.GroupID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}

	if err := h.Groups.Update(c.Context(), id, updates); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Delete removes the group row only; membership edges referencing it are
// not cascaded.
func (h *GroupsHandler) Delete(c *fiber.Ctx) error {
	id, err := validation.GroupID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.Groups.Delete(c.Context(), id); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}

	logger.Info("group_deleted", map[string]interface{}{"group_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// flexibleID carries an identifier sent either as a JSON number or a
// JSON string; the shared validator decides whether it parses.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	*f = flexibleID(strings.Trim(string(data), `"`))
	return nil
}

type memberRequest struct {
	UserID flexibleID `json:"userId"`
}

func (h *GroupsHandler) AddMember(c *fiber.Ctx) error {
	groupID, err := validation.GroupID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req memberRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	userID, err := validation.UserID(string(req.UserID))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.Groups.AddMember(c.Context(), userID, groupID); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *GroupsHandler) RemoveMember(c *fiber.Ctx) error {
	groupID, err := validation.GroupID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req memberRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	userID, err := validation.UserID(string(req.UserID))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.Groups.RemoveMember(c.Context(), userID, groupID); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *GroupsHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := validation.UserID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, err.Error())
	}

	groups, err := h.Groups.ListForUser(c.Context(), userID)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}

	return utils.Success(c, fiber.StatusOK, groups)
}
