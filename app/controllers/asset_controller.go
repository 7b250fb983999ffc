package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/andriyanf/kasresto/app/models"
	"github.com/gorilla/mux"
)

// GET /api/assets
func (server *Server) AssetsIndex(w http.ResponseWriter, r *http.Request) {
	assets, err := server.Store.Assets()
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch assets"})
		return
	}

	if assets == nil {
		assets = []models.Asset{}
	}

	_ = ren.JSON(w, http.StatusOK, assets)
}

// POST /api/assets
func (server *Server) AssetsCreate(w http.ResponseWriter, r *http.Request) {
	var asset models.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid asset data"})
		return
	}

	if asset.Type == "" || asset.Name == "" || asset.AcquisitionDate.IsZero() {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid asset data"})
		return
	}

	created, err := server.Store.CreateAsset(&asset)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to create asset"})
		return
	}

	_ = ren.JSON(w, http.StatusCreated, created)
}

// DELETE /api/assets/{id}
func (server *Server) AssetsDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deleted, err := server.Store.DeleteAsset(vars["id"])
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to delete asset"})
		return
	}

	if !deleted {
		_ = ren.JSON(w, http.StatusNotFound, map[string]interface{}{"message": "Asset record not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
