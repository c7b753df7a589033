package routes

import (
	"whisperchat_server/controllers"

	"github.com/gorilla/mux"
)

func RegisterThemeRoutes(r *mux.Router) {
	r.HandleFunc("/api/theme/{scheme}", controllers.GetPaletteHandler).Methods("GET")
}
