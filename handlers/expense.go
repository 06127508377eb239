package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Austinjohnson7039/saffar/database"
	"github.com/Austinjohnson7039/saffar/expense"
)

// Amount is a pointer so a literal 0 passes the required check.
type ExpenseRequest struct {
	Amount      *float64 `json:"amount" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Date        string   `json:"date"`
	Currency    string   `json:"currency"`
}

func (h *Handler) AddExpense(c *gin.Context) {
	planID := c.Param("id")
	if _, err := h.store.GetPlan(planID); errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	entry, err := h.ledgers.Add(planID, *req.Amount, expense.Category(req.Category), req.Description, req.Date, req.Currency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expense": entry,
		"summary": h.ledgers.Summary(planID),
	})
}

func (h *Handler) ListExpenses(c *gin.Context) {
	planID := c.Param("id")
	plan, err := h.store.GetPlan(planID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}

	resp := gin.H{
		"expenses": h.ledgers.Entries(planID),
		"summary":  h.ledgers.Summary(planID),
	}

	// Budget usage only makes sense when the plan carries a budget.
	if plan.Budget > 0 {
		if pct, err := h.ledgers.BudgetUsedPercent(planID, plan.Budget); err == nil {
			resp["budget_used_percent"] = pct
		}
	}

	c.JSON(http.StatusOK, resp)
}
