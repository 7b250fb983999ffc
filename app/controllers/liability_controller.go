package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/andriyanf/kasresto/app/models"
	"github.com/gorilla/mux"
)

// GET /api/liabilities
func (server *Server) LiabilitiesIndex(w http.ResponseWriter, r *http.Request) {
	liabilities, err := server.Store.Liabilities()
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch liabilities"})
		return
	}

	if liabilities == nil {
		liabilities = []models.Liability{}
	}

	_ = ren.JSON(w, http.StatusOK, liabilities)
}

// POST /api/liabilities
func (server *Server) LiabilitiesCreate(w http.ResponseWriter, r *http.Request) {
	var liability models.Liability
	if err := json.NewDecoder(r.Body).Decode(&liability); err != nil {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid liability data"})
		return
	}

	if liability.Type == "" || liability.Creditor == "" || liability.DueDate.IsZero() {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid liability data"})
		return
	}

	created, err := server.Store.CreateLiability(&liability)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to create liability"})
		return
	}

	_ = ren.JSON(w, http.StatusCreated, created)
}

// DELETE /api/liabilities/{id}
func (server *Server) LiabilitiesDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deleted, err := server.Store.DeleteLiability(vars["id"])
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to delete liability"})
		return
	}

	if !deleted {
		_ = ren.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Liability record not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
