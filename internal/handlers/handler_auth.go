package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/ecclesia-hq/ecclesia_backend/internal/middleware"
	"github.com/ecclesia-hq/ecclesia_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService   portssvc.UserSvcFacade
	churchService portssvc.ChurchSvcFacade
	tokenService  portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, cs portssvc.ChurchSvcFacade, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:   us,
		churchService: cs,
		tokenService:  ts,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Church, services.Token)

	// 5 requests per minute per IP on credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register", h.RegisterChurch)
		auth.POST("/join", h.JoinChurch)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.Logout)
	}
}

// buildAuthResponse issues a token for the user and bundles their church when
// they belong to one.
func (h *AuthHandler) buildAuthResponse(c *gin.Context, user dto.UserResponse, churchID string) (*dto.AuthResponse, error) {
	ctx := c.Request.Context()

	domainUser, err := h.userService.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, domainUser)
	if err != nil {
		return nil, err
	}

	resp := &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}
	if churchID != "" {
		if church, err := h.churchService.GetChurchByID(ctx, churchID); err == nil {
			churchResp := dto.ToChurchResponse(church)
			resp.Church = &churchResp
		}
	}
	return resp, nil
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Pending approval or suspended church"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "Failed to authenticate")
		return
	}

	resp, err := h.buildAuthResponse(c, dto.ToUserResponse(user), user.ChurchID)
	if err != nil {
		logger.Error("Failed to issue token after login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.ID))
	c.JSON(http.StatusOK, resp)
}

// RegisterChurch godoc
// @Summary Register a new church
// @Description Creates a new church together with its founding admin account and logs the admin in.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterChurchRequest true "Church and admin details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) RegisterChurch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	admin, church, err := h.userService.RegisterChurch(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to register church")
		return
	}

	resp, err := h.buildAuthResponse(c, dto.ToUserResponse(admin), church.ID)
	if err != nil {
		logger.Error("Failed to issue token after registration", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// JoinChurch godoc
// @Summary Join an existing church
// @Description Registers a worker against a church's join link. The account stays pending until approved; no token is issued.
// @Tags auth
// @Accept json
// @Produce json
// @Param join body dto.JoinChurchRequest true "Registration details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Church not found"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/join [post]
func (h *AuthHandler) JoinChurch(c *gin.Context) {
	var req dto.JoinChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.JoinChurch(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to register")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Logout godoc
// @Summary Log out
// @Description Clears the persisted session. The JWT itself stays valid until expiry.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	_ = h.userService.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}
