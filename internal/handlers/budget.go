package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/dhansakhi/backend/internal/assistant"
	"example.com/dhansakhi/backend/internal/content"
	"example.com/dhansakhi/backend/internal/session"
)

type BudgetHandler struct {
	Store *session.Store
}

// NewBudgetHandler creates the budget facet handler.
func NewBudgetHandler(store *session.Store) *BudgetHandler {
	return &BudgetHandler{Store: store}
}

type SetIncomeRequest struct {
	Income string `json:"income"`
}

type SetExpensesRequest struct {
	Expenses string `json:"expenses"`
}

type BudgetResponse struct {
	Budget  assistant.BudgetView  `json:"budget"`
	Savings assistant.SavingsView `json:"savings"`
}

// SetIncome stores the raw income value.
func (h *BudgetHandler) SetIncome(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	var req SetIncomeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	sess.SetIncome(req.Income)
	return c.JSON(http.StatusOK, BudgetResponse{Budget: sess.Budget(), Savings: sess.Savings()})
}

// SetExpenses applies the budget entry rule; a rejected value keeps the prior
// state and carries the locale-appropriate warning.
func (h *BudgetHandler) SetExpenses(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	var req SetExpensesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	if err := sess.SetExpenses(req.Expenses); err != nil {
		if errors.Is(err, assistant.ErrExpensesExceedIncome) {
			return unprocessable(c, sess.Label(content.LabelBudgetRejected))
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, BudgetResponse{Budget: sess.Budget(), Savings: sess.Savings()})
}

// Savings returns the derived savings result.
func (h *BudgetHandler) Savings(c echo.Context) error {
	sess, err := lookupSession(c, h.Store)
	if sess == nil {
		return err
	}

	return c.JSON(http.StatusOK, BudgetResponse{Budget: sess.Budget(), Savings: sess.Savings()})
}
