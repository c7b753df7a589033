package routes

import (
	"time"

	"whisperchat_server/controllers"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for the chat list under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, now func() time.Time) {
	controller := controllers.NewChatController(chatService, now)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/conversations", controller.HandleListConversations).Methods("GET")
	chatRouter.HandleFunc("/conversations/{id}", controller.HandleGetConversation).Methods("GET")
}
