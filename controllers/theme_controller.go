package controllers

import (
	"net/http"

	"whisperchat_server/helpers"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
)

// GetPaletteHandler returns the colour palette of a scheme
func GetPaletteHandler(w http.ResponseWriter, r *http.Request) {
	scheme := mux.Vars(r)["scheme"]
	helpers.WriteJSONResponse(w, http.StatusOK, services.PaletteFor(scheme))
}
