package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/andriyanf/kasresto/app/models"
	"github.com/gorilla/mux"
)

// GET /api/sales?startDate=...&endDate=...
func (server *Server) SalesIndex(w http.ResponseWriter, r *http.Request) {
	var sales []models.Sale
	var err error

	if start, end, ok := dateRangeParams(r); ok {
		sales, err = server.Store.SalesByDateRange(start, end)
	} else {
		sales, err = server.Store.Sales()
	}

	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch sales"})
		return
	}

	if sales == nil {
		sales = []models.Sale{}
	}

	_ = ren.JSON(w, http.StatusOK, sales)
}

// POST /api/sales
func (server *Server) SalesCreate(w http.ResponseWriter, r *http.Request) {
	var sale models.Sale
	if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid sales data"})
		return
	}

	if sale.MenuItem == "" || sale.Quantity <= 0 || sale.Datetime.IsZero() {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid sales data"})
		return
	}

	created, err := server.Store.CreateSale(&sale)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to create sales"})
		return
	}

	_ = ren.JSON(w, http.StatusCreated, created)
}

// DELETE /api/sales/{id}
func (server *Server) SalesDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deleted, err := server.Store.DeleteSale(vars["id"])
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to delete sales"})
		return
	}

	if !deleted {
		_ = ren.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Sales record not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
