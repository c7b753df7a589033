package routes

import (
	"whisperchat_server/controllers"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for composer media uploads under /api/media
func RegisterS3Routes(r *mux.Router, mediaService *services.MediaService) {
	controller := controllers.NewMediaController(mediaService)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()
	mediaRouter.HandleFunc("/upload-url", controller.GeneratePresignedURL).Methods("POST")
	mediaRouter.HandleFunc("/read-url", controller.GetPresignedReadURL).Methods("POST")
}
