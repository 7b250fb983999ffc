package controllers

import (
	"net/http"
	"time"

	"github.com/andriyanf/kasresto/app/finance"
	"github.com/andriyanf/kasresto/app/models"
)

// GET /api/financial-summary
// Penjualan dan pengeluaran dihitung untuk hari ini; aset, modal,
// dan kewajiban dihitung dari seluruh riwayat.
func (server *Server) FinancialSummary(w http.ResponseWriter, r *http.Request) {
	startOfDay, endOfDay := finance.TodayRange(time.Now())

	salesOfDay, err := server.Store.SalesByDateRange(startOfDay, endOfDay)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch financial summary"})
		return
	}

	expensesOfDay, err := server.Store.ExpensesByDateRange(startOfDay, endOfDay)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch financial summary"})
		return
	}

	assets, err := server.Store.Assets()
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch financial summary"})
		return
	}

	capital, err := server.Store.Capital()
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch financial summary"})
		return
	}

	liabilities, err := server.Store.Liabilities()
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch financial summary"})
		return
	}

	summary := finance.BuildDailySummary(salesOfDay, expensesOfDay, assets, capital, liabilities)

	_ = ren.JSON(w, http.StatusOK, summary)
}

// periodRecords mengambil penjualan dan pengeluaran sesuai rentang query;
// tanpa rentang, seluruh riwayat yang dipakai.
func (server *Server) periodRecords(r *http.Request) ([]models.Sale, []models.Expense, error) {
	if start, end, ok := dateRangeParams(r); ok {
		sales, err := server.Store.SalesByDateRange(start, end)
		if err != nil {
			return nil, nil, err
		}

		expenses, err := server.Store.ExpensesByDateRange(start, end)
		if err != nil {
			return nil, nil, err
		}

		return sales, expenses, nil
	}

	sales, err := server.Store.Sales()
	if err != nil {
		return nil, nil, err
	}

	expenses, err := server.Store.Expenses()
	if err != nil {
		return nil, nil, err
	}

	return sales, expenses, nil
}

// GET /api/balance-sheet?startDate=...&endDate=...
func (server *Server) BalanceSheetShow(w http.ResponseWriter, r *http.Request) {
	sales, expenses, err := server.periodRecords(r)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch balance sheet"})
		return
	}

	assets, err := server.Store.Assets()
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch balance sheet"})
		return
	}

	capital, err := server.Store.Capital()
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch balance sheet"})
		return
	}

	liabilities, err := server.Store.Liabilities()
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch balance sheet"})
		return
	}

	balanceSheet := finance.ComputeBalanceSheet(sales, expenses, assets, capital, liabilities)

	_ = ren.JSON(w, http.StatusOK, balanceSheet)
}

// GET /api/menu-performance?startDate=...&endDate=...
func (server *Server) MenuPerformance(w http.ResponseWriter, r *http.Request) {
	sales, _, err := server.periodRecords(r)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch menu performance"})
		return
	}

	stats := finance.RankMenuPerformance(sales)

	_ = ren.JSON(w, http.StatusOK, stats)
}
