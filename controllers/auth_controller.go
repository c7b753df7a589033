package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"whisperchat_server/helpers"
	"whisperchat_server/services"
)

// AuthController handles the simulated login screen
type AuthController struct {
	SessionService *services.SessionService
}

func NewAuthController(service *services.SessionService) *AuthController {
	return &AuthController{SessionService: service}
}

// HandleLogin waits the simulated delay and returns a session token
func (c *AuthController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := c.SessionService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, session)
}

// HandleLogout closes the session named by the bearer token
func (c *AuthController) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Missing bearer token")
		return
	}

	if err := c.SessionService.Logout(r.Context(), token); err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "success"})
}
