package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/groupdir/backend/internal/services"
	"github.com/groupdir/backend/internal/validation"
	"github.com/groupdir/backend/pkg/logger"
	"github.com/groupdir/backend/pkg/utils"
)

type UsersHandler struct {
	Users *services.UserService
}

func NewUsersHandler(users *services.UserService) *UsersHandler {
	return &UsersHandler{Users: users}
}

func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req validation.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, validation.FirstError(err))
	}

	id, err := h.Users.Create(c.Context(), req.User())
	if err != nil {
		// Creation forwards the underlying message, including the
		// duplicate signal.
		return utils.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	logger.Info("user_created", map[string]interface{}{"user_id": id})
	return utils.Success(c, fiber.StatusCreated, fiber.Map{"id": id})
}

func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := validation.UserID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.Users.Get(c.Context(), id)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}
	if user == nil {
		return utils.Error(c, fiber.StatusNotFound, "User not found")
	}

	return utils.Success(c, fiber.StatusOK, user)
}

func (h *UsersHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)

	users, err := h.Users.List(c.Context(), limit, offset)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}
	if len(users) == 0 {
		return utils.Error(c, fiber.StatusNotFound, "User list is empty")
	}

	return utils.Success(c, fiber.StatusOK, users)
}

// ListByGroup returns 200 with an empty list when the group has no
// members, unlike List.
func (h *UsersHandler) ListByGroup(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	groupName := c.Params("groupName")

	users, err := h.Users.ListByGroup(c.Context(), groupName, limit, offset)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}

	return utils.Success(c, fiber.StatusOK, users)
}

func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := validation.UserID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req validation.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, validation.FirstError(err))
	}

	if err := h.Users.Update(c.Context(), id, req.Updates()); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}

	return utils.Success(c, fiber.StatusCreated, req)
}

func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := validation.UserID(c.Params("id"))
	if err != nil {
		return utils.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.Users.Delete(c.Context(), id); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, internalServerError)
	}

	logger.Info("user_deleted", map[string]interface{}{"user_id": id})
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("User with id %d deleted successfully", id),
	})
}
