package routes

import (
	"whisperchat_server/controllers"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
)

// RegisterPostRoutes sets up the composer route under /api/posts
func RegisterPostRoutes(r *mux.Router, postService *services.PostService) {
	controller := controllers.NewPostController(postService)
	r.HandleFunc("/api/posts", controller.HandleCreatePost).Methods("POST")
}
