package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/andriyanf/kasresto/app/models"
	"github.com/gorilla/mux"
)

// GET /api/capital
func (server *Server) CapitalIndex(w http.ResponseWriter, r *http.Request) {
	capital, err := server.Store.Capital()
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch capital"})
		return
	}

	if capital == nil {
		capital = []models.Capital{}
	}

	_ = ren.JSON(w, http.StatusOK, capital)
}

// POST /api/capital
func (server *Server) CapitalCreate(w http.ResponseWriter, r *http.Request) {
	var capital models.Capital
	if err := json.NewDecoder(r.Body).Decode(&capital); err != nil {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid capital data"})
		return
	}

	if capital.Source == "" || capital.Date.IsZero() {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid capital data"})
		return
	}

	created, err := server.Store.CreateCapital(&capital)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to create capital"})
		return
	}

	_ = ren.JSON(w, http.StatusCreated, created)
}

// DELETE /api/capital/{id}
func (server *Server) CapitalDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deleted, err := server.Store.DeleteCapital(vars["id"])
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to delete capital"})
		return
	}

	if !deleted {
		_ = ren.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Capital record not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
