package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/andriyanf/kasresto/app/models"
)

type registerPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (server *Server) DoRegister(w http.ResponseWriter, r *http.Request) {
	var payload registerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid register data"})
		return
	}

	if payload.FirstName == "" || payload.LastName == "" || payload.Email == "" || payload.Password == "" {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "First name, last name, email and password are required!"})
		return
	}

	existUser, _ := server.Store.FindUserByEmail(payload.Email)
	if existUser != nil {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Sorry, email already registered"})
		return
	}

	hashedPassword, _ := MakePassword(payload.Password)
	params := &models.User{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  hashedPassword,
	}

	user, err := server.Store.CreateUser(params)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Sorry, registration failed"})
		return
	}

	session, _ := sessionStore.Get(r, sessionUser)
	session.Values["id"] = user.ID
	session.Save(r, w)

	_ = ren.JSON(w, http.StatusCreated, user)
}

func (server *Server) DoLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		_ = ren.JSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid login data"})
		return
	}

	user, err := server.Store.FindUserByEmail(payload.Email)
	if err != nil {
		_ = ren.JSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "email or password invalid"})
		return
	}

	if !ComparePassword(payload.Password, user.Password) {
		_ = ren.JSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "email or password invalid"})
		return
	}

	session, _ := sessionStore.Get(r, sessionUser)
	session.Values["id"] = user.ID
	session.Save(r, w)

	_ = ren.JSON(w, http.StatusOK, user)
}

func (server *Server) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionStore.Get(r, sessionUser)

	session.Values["id"] = nil
	session.Save(r, w)

	_ = ren.JSON(w, http.StatusOK, map[string]interface{}{"message": "logged out"})
}

func (server *Server) AuthUser(w http.ResponseWriter, r *http.Request) {
	user := server.CurrentUser(w, r)
	if user == nil {
		_ = ren.JSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "Unauthorized"})
		return
	}

	_ = ren.JSON(w, http.StatusOK, user)
}
