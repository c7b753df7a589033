package routes

import (
	"whisperchat_server/controllers"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
)

// RegisterFeedRoutes sets up routes for the reel feed under /api/feed
func RegisterFeedRoutes(r *mux.Router, feedService *services.FeedService) {
	controller := controllers.NewFeedController(feedService)

	feedRouter := r.PathPrefix("/api/feed").Subrouter()
	feedRouter.HandleFunc("", controller.HandleGetFeed).Methods("GET")
	feedRouter.HandleFunc("/{id}/like", controller.HandleLikeReel).Methods("PATCH")
	feedRouter.HandleFunc("/{id}/save", controller.HandleSaveReel).Methods("PATCH")
}
