package routes

import (
	"whisperchat_server/controllers"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
)

// RegisterSettingsRoutes sets up routes for the settings panel under /api/settings
func RegisterSettingsRoutes(r *mux.Router, settingsService *services.SettingsService) {
	controller := controllers.NewSettingsController(settingsService)

	settingsRouter := r.PathPrefix("/api/settings").Subrouter()
	settingsRouter.HandleFunc("", controller.HandleGetSettings).Methods("GET")
	settingsRouter.HandleFunc("/{name}", controller.HandleUpdateSetting).Methods("PATCH")
}
