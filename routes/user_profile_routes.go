package routes

import (
	"whisperchat_server/controllers"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for the profile screen under /api/profile
func RegisterUserProfileRoutes(r *mux.Router, profileService *services.ProfileService) {
	controller := controllers.NewUserProfileController(profileService)

	profileRouter := r.PathPrefix("/api/profile").Subrouter()
	profileRouter.HandleFunc("", controller.HandleGetProfile).Methods("GET")
	profileRouter.HandleFunc("/tabs/{tab}", controller.HandleGetTab).Methods("GET")
}
