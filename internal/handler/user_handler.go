package handler

import (
	"github.com/gin-gonic/gin"

	"prorent/internal/service"
)

// UserHandler exposes account reads to the admin surface.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /api/admin/users
// @Summary List all registered accounts
// @Tags admin
// @Produce json
// @Success 200 {object} APIResponse
// @Router /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, users)
}

// Get handles GET /api/admin/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}
