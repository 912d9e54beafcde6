package handlers

import (
	"net/http"

	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// userHandler manages a church's member accounts.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers member management routes on the per-church group.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
		users.POST("/:id/approve", h.approveUser)
		users.POST("/:id/toggle-accounting", h.toggleAccounting)
	}
}

// listUsers godoc
// @Summary List church members
// @Tags users
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	_, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	users, err := h.userService.ListUsersByChurch(c.Request.Context(), churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// updateUser godoc
// @Summary Update a member
// @Description Church-admin only. Applies a partial update to a member's profile.
// @Tags users
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	if _, _, ok := requireChurchAdmin(c); !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Remove a member
// @Description Church-admin only. Deletes the account; records referencing it keep their dangling ids.
// @Tags users
// @Param church_id path string true "Church ID"
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	if _, _, ok := requireChurchAdmin(c); !ok {
		return
	}
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

// approveUser godoc
// @Summary Approve a pending member
// @Description Church-admin only. Moves a pending registration to APPROVED; idempotent.
// @Tags users
// @Produce json
// @Param church_id path string true "Church ID"
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/users/{id}/approve [post]
func (h *userHandler) approveUser(c *gin.Context) {
	if _, _, ok := requireChurchAdmin(c); !ok {
		return
	}
	user, err := h.userService.ApproveUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to approve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// toggleAccounting godoc
// @Summary Toggle a worker's accounting access
// @Description Church-admin only. Flips the bookkeeping visibility flag; there is no way to set it directly.
// @Tags users
// @Produce json
// @Param church_id path string true "Church ID"
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/users/{id}/toggle-accounting [post]
func (h *userHandler) toggleAccounting(c *gin.Context) {
	if _, _, ok := requireChurchAdmin(c); !ok {
		return
	}
	user, err := h.userService.ToggleAccountingAccess(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to toggle accounting access")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
