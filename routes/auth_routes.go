package routes

import (
	"whisperchat_server/controllers"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up the simulated login routes under /api/auth
func RegisterAuthRoutes(r *mux.Router, sessionService *services.SessionService) {
	controller := controllers.NewAuthController(sessionService)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/login", controller.HandleLogin).Methods("POST")
	authRouter.HandleFunc("/logout", controller.HandleLogout).Methods("POST")
}
