package handlers

import (
	"net/http"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// churchHandler serves a single tenant's profile.
type churchHandler struct {
	churchService portssvc.ChurchSvcFacade
}

func newChurchHandler(cs portssvc.ChurchSvcFacade) *churchHandler {
	return &churchHandler{churchService: cs}
}

// registerChurchRoutes registers the tenant profile routes on the per-church
// group.
func registerChurchRoutes(rg *gin.RouterGroup, churchService portssvc.ChurchSvcFacade) {
	h := newChurchHandler(churchService)

	rg.GET("", h.getChurch)
	rg.PUT("", h.updateChurch)
	rg.PUT("/currency", h.setCurrency)
}

// getChurch godoc
// @Summary Get church profile
// @Tags churches
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {object} dto.ChurchResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id} [get]
func (h *churchHandler) getChurch(c *gin.Context) {
	_, churchID, ok := requireChurchAccess(c)
	if !ok {
		return
	}
	church, err := h.churchService.GetChurchByID(c.Request.Context(), churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to get church")
		return
	}
	c.JSON(http.StatusOK, dto.ToChurchResponse(church))
}

// updateChurch godoc
// @Summary Update church profile
// @Description Church-admin only. Applies a partial update to the tenant profile.
// @Tags churches
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param church body dto.UpdateChurchRequest true "Fields to update"
// @Success 200 {object} dto.ChurchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id} [put]
func (h *churchHandler) updateChurch(c *gin.Context) {
	_, churchID, ok := requireChurchAdmin(c)
	if !ok {
		return
	}
	var req dto.UpdateChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	church, err := h.churchService.UpdateChurch(c.Request.Context(), churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update church")
		return
	}
	c.JSON(http.StatusOK, dto.ToChurchResponse(church))
}

// setCurrency godoc
// @Summary Set the church's display currency
// @Description Church-admin only. Rescales every stored transaction and budget amount to the new currency. Setting the current currency is a no-op.
// @Tags churches
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param currency body dto.SetCurrencyRequest true "Target currency"
// @Success 200 {object} dto.ChurchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/currency [put]
func (h *churchHandler) setCurrency(c *gin.Context) {
	_, churchID, ok := requireChurchAdmin(c)
	if !ok {
		return
	}
	var req dto.SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	church, err := h.churchService.SetCurrency(c.Request.Context(), churchID, domain.CurrencyCode(req.Currency))
	if err != nil {
		respondServiceError(c, err, "Failed to set currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToChurchResponse(church))
}
