package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/andriyanf/kasresto/app/models"
	"github.com/gorilla/mux"
)

// GET /api/expenses?startDate=...&endDate=...
func (server *Server) ExpensesIndex(w http.ResponseWriter, r *http.Request) {
	var expenses []models.Expense
	var err error

	if start, end, ok := dateRangeParams(r); ok {
		expenses, err = server.Store.ExpensesByDateRange(start, end)
	} else {
		expenses, err = server.Store.Expenses()
	}

	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch expenses"})
		return
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}

	_ = ren.JSON(w, http.StatusOK, expenses)
}

// POST /api/expenses
func (server *Server) ExpensesCreate(w http.ResponseWriter, r *http.Request) {
	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid expense data"})
		return
	}

	if expense.Category == "" || expense.Description == "" || expense.Datetime.IsZero() {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid expense data"})
		return
	}

	created, err := server.Store.CreateExpense(&expense)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to create expense"})
		return
	}

	_ = ren.JSON(w, http.StatusCreated, created)
}

// DELETE /api/expenses/{id}
func (server *Server) ExpensesDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deleted, err := server.Store.DeleteExpense(vars["id"])
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to delete expense"})
		return
	}

	if !deleted {
		_ = ren.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Expense record not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
