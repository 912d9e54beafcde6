package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/authz"
	"github.com/ecclesia-hq/ecclesia_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// getSession pulls the session placed by the gate middleware. When absent the
// request is aborted with 401; routes under the v1 group always have one.
func getSession(c *gin.Context) (*middleware.Session, bool) {
	session, ok := middleware.GetSessionFromCtx(c.Request.Context())
	if !ok || session.User == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return session, true
}

// requireChurchAccess resolves the :church_id path parameter and verifies the
// session user may read that tenant at all.
func requireChurchAccess(c *gin.Context) (*middleware.Session, string, bool) {
	session, ok := getSession(c)
	if !ok {
		return nil, "", false
	}
	churchID := c.Param("church_id")
	if !authz.CanAccessChurch(session.User, churchID) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return nil, "", false
	}
	return session, churchID, true
}

// requireChurchAdmin additionally demands the church-admin role for the
// tenant (or the platform owner).
func requireChurchAdmin(c *gin.Context) (*middleware.Session, string, bool) {
	session, churchID, ok := requireChurchAccess(c)
	if !ok {
		return nil, "", false
	}
	if !authz.IsChurchAdmin(session.User, churchID) && !authz.IsPlatformOwner(session.User) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return nil, "", false
	}
	return session, churchID, true
}

// requirePlatformOwner guards the owner console routes.
func requirePlatformOwner(c *gin.Context) (*middleware.Session, bool) {
	session, ok := getSession(c)
	if !ok {
		return nil, false
	}
	if !authz.IsPlatformOwner(session.User) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return nil, false
	}
	return session, true
}

// respondAdvisoryError renders advisory failures: known sentinels map as
// usual, anything else means the external service misbehaved.
func respondAdvisoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Advisory service is not configured"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Advisory suggestion unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to get suggestion. Please try again later."})
	}
}

// respondServiceError maps service-layer sentinel errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrPendingApproval):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Account pending approval"})
	case errors.Is(err, apperrors.ErrChurchSuspended):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Church is suspended"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
