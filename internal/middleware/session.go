package middleware

import (
	"context"
	"net/http"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/authz"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portsrepo "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/repositories"
	"github.com/gin-gonic/gin"
)

// Session is the explicit session-context object derived per request: the
// authenticated user, their church, and the gate classification. Handlers
// take it from the request context instead of consulting any global state.
type Session struct {
	User   *domain.User
	Church *domain.Church
	State  authz.GateState
}

const sessionCtxKey = contextKey("session")

// SessionGate derives the session from the store and blocks tenant routes
// for pending users and for members of suspended churches (the platform
// owner passes). It must run after AuthMiddleware.
func SessionGate(store portsrepo.TenantStoreFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user := store.FindUserByID(userID)
		var church *domain.Church
		if user != nil && user.ChurchID != domain.PlatformChurchID {
			church = store.FindChurchByID(user.ChurchID)
		}

		session := &Session{User: user, Church: church, State: authz.Gate(user, church)}
		switch session.State {
		case authz.GateNoSession:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		case authz.GatePendingApproval:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account pending approval"})
			return
		case authz.GateSuspended:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Church is suspended"})
			return
		}

		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), sessionCtxKey, session))
		c.Next()
	}
}

// GetSessionFromCtx retrieves the session placed by SessionGate.
func GetSessionFromCtx(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionCtxKey).(*Session)
	return session, ok
}
