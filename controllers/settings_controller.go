package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"whisperchat_server/helpers"
	"whisperchat_server/models"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
)

// SettingsController handles the settings panel
type SettingsController struct {
	SettingsService *services.SettingsService
}

func NewSettingsController(service *services.SettingsService) *SettingsController {
	return &SettingsController{SettingsService: service}
}

func (c *SettingsController) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, c.SettingsService.Get(r.Context()))
}

// HandleUpdateSetting sets the named switch when the body carries a value,
// otherwise toggles it
func (c *SettingsController) HandleUpdateSetting(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var request struct {
		Value *bool `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var (
		settings models.Settings
		err      error
	)
	if request.Value != nil {
		settings, err = c.SettingsService.Set(r.Context(), name, *request.Value)
	} else {
		settings, err = c.SettingsService.Toggle(r.Context(), name)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, settings)
}
