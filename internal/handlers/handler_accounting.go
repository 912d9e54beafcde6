package handlers

import (
	"net/http"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/authz"
	portssvc "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/services"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
	"github.com/ecclesia-hq/ecclesia_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountingHandler serves the bookkeeping module: the ledger, budgets and
// the dashboard summary.
type accountingHandler struct {
	financeService portssvc.FinanceSvcFacade
}

func newAccountingHandler(fs portssvc.FinanceSvcFacade) *accountingHandler {
	return &accountingHandler{financeService: fs}
}

// registerAccountingRoutes registers bookkeeping routes on the per-church group.
func registerAccountingRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade) {
	h := newAccountingHandler(financeService)

	accounting := rg.Group("/accounting")
	{
		accounting.GET("/summary", h.summary)
		accounting.GET("/transactions", h.listTransactions)
		accounting.POST("/transactions", h.recordTransaction)
		accounting.GET("/budgets", h.listBudgets)
		accounting.POST("/budgets", h.createBudget)
		accounting.DELETE("/budgets/:id", h.deleteBudget)
	}
}

// requireAccountingAccess layers the bookkeeping visibility rule on top of
// tenant access: admins always, workers only when toggled on.
func requireAccountingAccess(c *gin.Context) (*middleware.Session, string, bool) {
	session, churchID, ok := requireChurchAccess(c)
	if !ok {
		return nil, "", false
	}
	if !authz.CanAccessAccounting(session.User) && !authz.IsPlatformOwner(session.User) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Accounting access has not been granted"})
		return nil, "", false
	}
	return session, churchID, true
}

// summary godoc
// @Summary Bookkeeping summary
// @Description Headline totals in the church's current display currency.
// @Tags accounting
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {object} dto.FinanceSummaryResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/accounting/summary [get]
func (h *accountingHandler) summary(c *gin.Context) {
	_, churchID, ok := requireAccountingAccess(c)
	if !ok {
		return
	}
	summary, err := h.financeService.Summary(c.Request.Context(), churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to build summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// listTransactions godoc
// @Summary List ledger entries
// @Tags accounting
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/accounting/transactions [get]
func (h *accountingHandler) listTransactions(c *gin.Context) {
	_, churchID, ok := requireAccountingAccess(c)
	if !ok {
		return
	}
	txs, err := h.financeService.ListTransactionsByChurch(c.Request.Context(), churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txs))
}

// recordTransaction godoc
// @Summary Record a ledger entry
// @Description Expense entries accrue onto every budget of the church whose category matches exactly.
// @Tags accounting
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/accounting/transactions [post]
func (h *accountingHandler) recordTransaction(c *gin.Context) {
	session, churchID, ok := requireAccountingAccess(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	tx, err := h.financeService.RecordTransaction(c.Request.Context(), churchID, session.User.ID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to record transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// listBudgets godoc
// @Summary List budgets
// @Tags accounting
// @Produce json
// @Param church_id path string true "Church ID"
// @Success 200 {array} dto.BudgetResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/accounting/budgets [get]
func (h *accountingHandler) listBudgets(c *gin.Context) {
	_, churchID, ok := requireAccountingAccess(c)
	if !ok {
		return
	}
	budgets, err := h.financeService.ListBudgetsByChurch(c.Request.Context(), churchID)
	if err != nil {
		respondServiceError(c, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetResponse(budgets))
}

// createBudget godoc
// @Summary Create a budget
// @Tags accounting
// @Accept json
// @Produce json
// @Param church_id path string true "Church ID"
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/accounting/budgets [post]
func (h *accountingHandler) createBudget(c *gin.Context) {
	_, churchID, ok := requireAccountingAccess(c)
	if !ok {
		return
	}
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	budget, err := h.financeService.CreateBudget(c.Request.Context(), churchID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create budget")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags accounting
// @Param church_id path string true "Church ID"
// @Param id path string true "Budget ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{church_id}/accounting/budgets/{id} [delete]
func (h *accountingHandler) deleteBudget(c *gin.Context) {
	if _, _, ok := requireAccountingAccess(c); !ok {
		return
	}
	if err := h.financeService.DeleteBudget(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}
