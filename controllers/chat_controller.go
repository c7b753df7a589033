package controllers

import (
	"log"
	"net/http"
	"time"

	"whisperchat_server/helpers"
	"whisperchat_server/services"

	"github.com/gorilla/mux"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
	Now         func() time.Time
}

// NewChatController initializes the chat controller. now supplies the current
// time in the zone used for calendar day comparisons.
func NewChatController(service *services.ChatService, now func() time.Time) *ChatController {
	return &ChatController{ChatService: service, Now: now}
}

// HandleListConversations returns the chat list filtered by the q parameter
func (c *ChatController) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	conversations, err := c.ChatService.ListConversations(r.Context(), query)
	if err != nil {
		log.Printf("❌ Error listing conversations: %v", err)
		writeServiceError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"conversations": services.ConversationViews(conversations, c.Now()),
		"total":         len(conversations),
	})
}

// HandleGetConversation returns a single conversation
func (c *ChatController) HandleGetConversation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	conversation, err := c.ChatService.GetConversation(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, services.ConversationViewOf(conversation, c.Now()))
}
